// Package analysis implements the parallel group-analysis orchestrator: the
// applicable review items are partitioned into fixed topical groups, each
// group's legal-reference material is resolved, one engine call per group
// runs concurrently, and the settled outcomes merge into one report.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"k8s.io/klog/v2"

	"github.com/contractcheck/backend/internal/pkg/engine"
	"github.com/contractcheck/backend/internal/pkg/prompts"
	"github.com/contractcheck/backend/internal/service/catalog"
	"github.com/contractcheck/backend/internal/utils"
)

type Service struct {
	engine  engine.Engine
	store   *catalog.ReferenceStore
	prompts *prompts.Prompts
}

func NewService(eng engine.Engine, store *catalog.ReferenceStore, p *prompts.Prompts) *Service {
	return &Service{engine: eng, store: store, prompts: p}
}

// Run executes the full analysis: assignment, concurrent guideline
// resolution, concurrent group dispatch, merge. It always returns a
// well-formed report; per-group failures surface only in the report's meta.
func (s *Service) Run(ctx context.Context, structured any, userCtx UserContext, applicable []catalog.ReviewItem) *MergedReport {
	totalStart := time.Now()

	assignments := AssignItems(applicable)
	names := make([]string, 0, len(assignments))
	for _, a := range assignments {
		names = append(names, fmt.Sprintf("%s(%d)", a.Group.Name, len(a.Items)))
	}
	klog.V(6).Infof("analysis split into %d groups: %s", len(assignments), strings.Join(names, ", "))

	// phase 1: resolve guideline material for every group concurrently.
	// Resolve never fails, so this phase has no failure handling; each
	// resolution is independent and waits on nothing but the row cache.
	guidelines := make([]catalog.GuidelineResult, len(assignments))
	var resolveWG sync.WaitGroup
	for i := range assignments {
		resolveWG.Add(1)
		go func(i int) {
			defer resolveWG.Done()
			guidelines[i] = s.store.Resolve(assignments[i].Topics)
		}(i)
	}
	resolveWG.Wait()

	// phase 2: dispatch one engine call per group and wait for every one to
	// settle. A failed group must not cancel or fail its siblings: the merge
	// depends on seeing all available results.
	outcomes := make([]GroupOutcome, len(assignments))
	var dispatchWG sync.WaitGroup
	for i := range assignments {
		dispatchWG.Add(1)
		go func(i int) {
			defer dispatchWG.Done()
			defer func() {
				if r := recover(); r != nil {
					klog.Errorf("group analysis panic: group=%s, err=%v", assignments[i].Group.Name, r)
					outcomes[i] = GroupOutcome{Group: assignments[i].Group, Err: fmt.Errorf("panic: %v", r)}
				}
			}()

			groupPrompt := BuildGroupPrompt(s.prompts.Analysis.SystemPrompt, assignments[i].ItemNames())
			outcomes[i] = s.analyzeGroup(ctx, assignments[i], structured, userCtx, guidelines[i].Text, groupPrompt)
		}(i)
	}
	dispatchWG.Wait()

	report := Merge(outcomes, assignments, guidelines)

	klog.V(6).Infof("parallel analysis done: elapsed=%.1fs, %d/%d groups succeeded",
		time.Since(totalStart).Seconds(), report.Meta.SuccessGroups, report.Meta.TotalGroups)
	return report
}

// analyzeGroup runs one group's engine call. Engine errors and unparseable
// responses never escape as raw errors: an error becomes a Failure outcome,
// an unparseable body degrades to an empty result set.
func (s *Service) analyzeGroup(ctx context.Context, a Assignment, structured any, userCtx UserContext, guidelineText, groupPrompt string) GroupOutcome {
	klog.V(6).Infof("[%s] analysis start (%d items)", a.Group.Name, len(a.Items))
	start := time.Now()

	content := fmt.Sprintf(`
[사용자 정보]
- 사업장 규모: %s
- 근로자 유형: %s

[상세 법령 가이드라인(참고자료 DB)]
%s

[구조화된 근로계약서 데이터]
%s

[검토 대상 항목]
이 요청에서는 다음 항목만 검토하세요: %s
`,
		userCtx.BusinessSize,
		strings.Join(userCtx.WorkerTypes, ", "),
		guidelineText,
		utils.ToPrettyJSON(structured),
		strings.Join(a.ItemNames(), ", "))

	raw, err := s.engine.Invoke(ctx, groupPrompt, content)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		klog.Errorf("[%s] analysis failed (%.1fs): %v", a.Group.Name, elapsed, err)
		return GroupOutcome{Group: a.Group, Err: err}
	}

	var parsed struct {
		Results []ReviewVerdict `json:"results"`
	}
	if !utils.SafeUnmarshal(raw, &parsed) {
		klog.Warningf("[%s] unparseable engine response, using empty results", a.Group.Name)
	}

	klog.V(6).Infof("[%s] analysis done (%.1fs, %d results)", a.Group.Name, elapsed, len(parsed.Results))
	return GroupOutcome{Group: a.Group, Results: parsed.Results}
}
