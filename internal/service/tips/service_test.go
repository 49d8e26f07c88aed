package tips

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/contractcheck/backend/internal/pkg/prompts"
)

type stubEngine struct {
	resp  string
	err   error
	calls int
}

func (s *stubEngine) Invoke(ctx context.Context, system, user string) (string, error) {
	s.calls++
	return s.resp, s.err
}

func (s *stubEngine) InvokeVision(ctx context.Context, prompt, imageURL string) (string, error) {
	return "", errors.New("not used")
}

func testPrompts() *prompts.Prompts {
	return &prompts.Prompts{Tip: prompts.Prompt{SystemPrompt: "노동법 꿀팁을 만들어주세요."}}
}

func TestRandomReturnsTip(t *testing.T) {
	svc := NewService(nil, testPrompts(), 1)
	tip := svc.Random(context.Background())
	if !strings.HasPrefix(tip, "💡") {
		t.Fatalf("tip missing emoji prefix: %q", tip)
	}
}

func TestRandomAvoidsRecentRepeats(t *testing.T) {
	svc := NewService(nil, testPrompts(), 42)

	history := len(curatedTips) / 2
	seen := make(map[string]int)
	var window []string
	for i := 0; i < 100; i++ {
		tip := svc.Random(context.Background())
		for _, recent := range window {
			if recent == tip {
				t.Fatalf("tip %q repeated within history window of %d", tip, history)
			}
		}
		window = append(window, tip)
		if len(window) > history {
			window = window[1:]
		}
		seen[tip]++
	}

	if len(seen) < history+1 {
		t.Fatalf("only %d distinct tips served", len(seen))
	}
}

func TestRandomServesGeneratedTipPeriodically(t *testing.T) {
	eng := &stubEngine{resp: "💡 새로 생성된 노동법 꿀팁이에요."}
	svc := NewService(eng, testPrompts(), 1)

	var got []string
	for i := 0; i < generatedInterval; i++ {
		got = append(got, svc.Random(context.Background()))
	}

	if eng.calls != 1 {
		t.Fatalf("engine invoked %d times over %d requests, want 1", eng.calls, generatedInterval)
	}
	if got[generatedInterval-1] != eng.resp {
		t.Fatalf("generated tip not served: %q", got[generatedInterval-1])
	}
}

func TestRandomGenerationFailureFallsBack(t *testing.T) {
	eng := &stubEngine{err: errors.New("engine down")}
	svc := NewService(eng, testPrompts(), 1)

	for i := 0; i < generatedInterval*2; i++ {
		tip := svc.Random(context.Background())
		if !strings.HasPrefix(tip, "💡") {
			t.Fatalf("fallback tip malformed: %q", tip)
		}
	}
	if eng.calls != 2 {
		t.Fatalf("engine invoked %d times, want 2", eng.calls)
	}
}

func TestRandomRejectsMalformedGeneratedTip(t *testing.T) {
	eng := &stubEngine{resp: "이모지가 없는 응답"}
	svc := NewService(eng, testPrompts(), 1)

	for i := 0; i < generatedInterval; i++ {
		if tip := svc.Random(context.Background()); !strings.HasPrefix(tip, "💡") {
			t.Fatalf("malformed generated tip leaked: %q", tip)
		}
	}
	if eng.calls != 1 {
		t.Fatalf("engine invoked %d times, want 1", eng.calls)
	}
}

func TestRandomEmptyListFallsBack(t *testing.T) {
	svc := NewService(nil, testPrompts(), 1)
	svc.tips = nil
	if got := svc.Random(context.Background()); got != fallbackTip {
		t.Fatalf("expected fallback tip, got %q", got)
	}
}
