// Package contractgen renders a corrected standard labor contract from a
// finished analysis report.
package contractgen

import (
	"context"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/contractcheck/backend/internal/pkg/engine"
	"github.com/contractcheck/backend/internal/pkg/prompts"
	"github.com/contractcheck/backend/internal/service/analysis"
	"github.com/contractcheck/backend/internal/utils"
)

type Service struct {
	engine  engine.Engine
	prompts *prompts.Prompts
}

func NewService(eng engine.Engine, p *prompts.Prompts) *Service {
	return &Service{engine: eng, prompts: p}
}

// Generate produces the full text of a standard contract with the report's
// violations and warnings corrected.
func (s *Service) Generate(ctx context.Context, report *analysis.MergedReport) (string, error) {
	klog.V(6).Infof("contract generation start: results=%d, risk=%s", len(report.Results), report.RiskLevel)

	userContent := "다음 분석 결과를 바탕으로 완벽한 표준근로계약서를 작성해주세요:\n\n" + utils.ToPrettyJSON(report)
	text, err := s.engine.Invoke(ctx, s.prompts.Generation.SystemPrompt, userContent)
	if err != nil {
		klog.Errorf("contract generation failed: %v", err)
		return "", fmt.Errorf("generate contract: %w", err)
	}

	klog.V(6).Infof("contract generation done: length=%d", len(text))
	return text, nil
}
