// Package tips serves short labor-law tips for the client's idle screens.
// The recent-history set is owned by the service instance, not process
// state, so two services never share it.
package tips

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	"k8s.io/klog/v2"

	"github.com/contractcheck/backend/internal/pkg/engine"
	"github.com/contractcheck/backend/internal/pkg/prompts"
)

const fallbackTip = "💡 2026년 최저임금은 시간급 10,320원이에요."

// every generatedInterval-th request asks the engine for a fresh tip instead
// of the curated list
const generatedInterval = 5

var curatedTips = []string{
	"💡 2026년 최저임금은 시간급 10,320원이에요.",
	"💡 근로계약서는 반드시 서면으로 작성해서 근로자에게 교부해야 해요.",
	"💡 1주 15시간 이상 일하면 주휴수당을 받을 수 있어요.",
	"💡 근로시간이 4시간이면 30분, 8시간이면 1시간 이상의 휴게시간이 보장돼요.",
	"💡 연장·야간·휴일근로에는 통상임금의 50% 이상을 가산해서 받아야 해요.",
	"💡 1년 이상 계속 일했다면 퇴직금을 받을 수 있어요.",
	"💡 1년간 80% 이상 출근하면 15일의 연차유급휴가가 생겨요.",
	"💡 수습기간에도 최저임금의 90% 이상은 받아야 해요.",
	"💡 임금은 매월 1회 이상, 정해진 날짜에 전액을 직접 받아야 해요.",
	"💡 기간제 근로자는 2년을 초과해서 사용하면 무기계약으로 전환돼요.",
	"💡 사업장이 5인 이상이면 부당해고 구제신청을 할 수 있어요.",
	"💡 4대보험 가입은 사업주의 의무예요.",
}

type Service struct {
	engine  engine.Engine // optional; nil serves curated tips only
	prompts *prompts.Prompts

	mu     sync.Mutex
	tips   []string
	recent map[string]bool
	order  []string
	rng    *rand.Rand
	served int
}

// NewService builds a tip service. eng may be nil, in which case every tip
// comes from the curated list.
func NewService(eng engine.Engine, p *prompts.Prompts, seed int64) *Service {
	return &Service{
		engine:  eng,
		prompts: p,
		tips:    curatedTips,
		recent:  make(map[string]bool),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Random returns a tip, avoiding the most recently served half of the list.
// Periodically a fresh tip is generated by the engine instead; any engine
// failure falls back to the curated list. Never fails: an empty tip list
// yields the fixed fallback.
func (s *Service) Random(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.served++
	if s.engine != nil && s.served%generatedInterval == 0 {
		if tip, ok := s.generate(ctx); ok {
			return tip
		}
	}

	if len(s.tips) == 0 {
		klog.Warningf("tip list empty, serving fallback")
		return fallbackTip
	}

	candidates := make([]string, 0, len(s.tips))
	for _, tip := range s.tips {
		if !s.recent[tip] {
			candidates = append(candidates, tip)
		}
	}
	if len(candidates) == 0 {
		candidates = s.tips
	}

	tip := candidates[s.rng.Intn(len(candidates))]
	s.remember(tip)
	return tip
}

// generate asks the engine for one new tip. Called with the mutex held.
func (s *Service) generate(ctx context.Context) (string, bool) {
	seedTip := fallbackTip
	if len(s.tips) > 0 {
		seedTip = s.tips[s.rng.Intn(len(s.tips))]
	}
	raw, err := s.engine.Invoke(ctx, s.prompts.Tip.SystemPrompt,
		"다음 팁과 겹치지 않는 새로운 노동법 꿀팁 하나를 만들어주세요: "+seedTip)
	if err != nil {
		klog.Warningf("tip generation failed, falling back to curated list: %v", err)
		return "", false
	}

	tip := strings.TrimSpace(raw)
	if tip == "" || !strings.HasPrefix(tip, "💡") {
		klog.V(6).Infof("generated tip rejected: %q", tip)
		return "", false
	}
	return tip, true
}

// remember records a served tip, evicting the oldest entry once the history
// covers half the list.
func (s *Service) remember(tip string) {
	if s.recent[tip] {
		return
	}
	s.recent[tip] = true
	s.order = append(s.order, tip)
	for len(s.order) > len(s.tips)/2 {
		delete(s.recent, s.order[0])
		s.order = s.order[1:]
	}
}
