// Package document turns an uploaded contract into the structured data the
// analysis orchestrator consumes: OCR extraction from the image, then
// structuring of the extracted text.
package document

import (
	"context"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/contractcheck/backend/internal/pkg/engine"
	"github.com/contractcheck/backend/internal/pkg/prompts"
	"github.com/contractcheck/backend/internal/utils"
)

type Service struct {
	engine  engine.Engine
	prompts *prompts.Prompts
}

func NewService(eng engine.Engine, p *prompts.Prompts) *Service {
	return &Service{engine: eng, prompts: p}
}

// ExtractText runs OCR over a base64-encoded contract image.
func (s *Service) ExtractText(ctx context.Context, base64Image, mimeType string) (string, error) {
	klog.V(6).Infof("OCR extraction start: imageSize=%dKB", len(base64Image)/1024)

	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64Image)

	text, err := s.engine.InvokeVision(ctx, s.prompts.OCRExtraction.SystemPrompt, dataURL)
	if err != nil {
		klog.Errorf("OCR extraction failed: %v", err)
		return "", fmt.Errorf("ocr extraction: %w", err)
	}

	klog.V(6).Infof("OCR extraction done: textLength=%d", len(text))
	return text, nil
}

// Structure converts extracted contract text into the structured JSON form.
// The engine response is salvaged for an embedded JSON object; a response
// with no parseable object is an error the caller reports to the client.
func (s *Service) Structure(ctx context.Context, extractedText string) (map[string]any, error) {
	klog.V(6).Infof("structuring start: inputLength=%d", len(extractedText))

	userContent := "다음 OCR 텍스트를 위 양식에 맞춰 구조화해주세요:\n\n" + extractedText
	raw, err := s.engine.Invoke(ctx, s.prompts.Structure.SystemPrompt, userContent)
	if err != nil {
		klog.Errorf("structuring failed: %v", err)
		return nil, fmt.Errorf("structure text: %w", err)
	}

	var structured map[string]any
	if !utils.SafeUnmarshal(raw, &structured) {
		return nil, fmt.Errorf("structure text: response contained no valid JSON")
	}

	klog.V(6).Infof("structuring done: fields=%d", len(structured))
	return structured, nil
}
