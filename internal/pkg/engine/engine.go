// Package engine wraps the OpenAI ChatModel from eino-ext behind the small
// surface the analysis services need. The model is treated as an opaque
// judgment engine: prompts in, text out.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"k8s.io/klog/v2"

	"github.com/contractcheck/backend/config"
)

// Engine is the analysis engine contract. Implementations must be safe for
// concurrent use; the orchestrator fans out one call per group.
type Engine interface {
	// Invoke sends a system+user chat request and returns the raw response text.
	Invoke(ctx context.Context, systemPrompt, userContent string) (string, error)
	// InvokeVision sends a text prompt alongside an image data URL.
	InvokeVision(ctx context.Context, prompt, imageURL string) (string, error)
}

// ChatEngine implements Engine on top of the eino OpenAI ChatModel.
type ChatEngine struct {
	chatModel model.ToolCallingChatModel
	modelName string
}

func NewChatEngine(cfg *config.Config) (*ChatEngine, error) {
	klog.V(6).Infof("[ChatEngine] creating OpenAI ChatModel: model=%s, baseURL=%s", cfg.LLM.Model, cfg.LLM.APIURL)

	mc := &openai.ChatModelConfig{
		APIKey: cfg.LLM.APIKey,
		Model:  cfg.LLM.Model,
	}
	if cfg.LLM.APIURL != "" {
		mc.BaseURL = cfg.LLM.APIURL
	}
	if cfg.LLM.MaxTokens > 0 {
		maxTokens := cfg.LLM.MaxTokens
		mc.MaxTokens = &maxTokens
	}

	chatModel, err := openai.NewChatModel(context.Background(), mc)
	if err != nil {
		klog.Errorf("[ChatEngine] ChatModel creation failed: %v", err)
		return nil, fmt.Errorf("create chat model: %w", err)
	}

	return &ChatEngine{chatModel: chatModel, modelName: cfg.LLM.Model}, nil
}

func (e *ChatEngine) Invoke(ctx context.Context, systemPrompt, userContent string) (string, error) {
	return e.generate(ctx, []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(userContent),
	})
}

func (e *ChatEngine) InvokeVision(ctx context.Context, prompt, imageURL string) (string, error) {
	msg := &schema.Message{
		Role: schema.User,
		MultiContent: []schema.ChatMessagePart{
			{Type: schema.ChatMessagePartTypeText, Text: prompt},
			{Type: schema.ChatMessagePartTypeImageURL, ImageURL: &schema.ChatMessageImageURL{URL: imageURL}},
		},
	}
	return e.generate(ctx, []*schema.Message{msg})
}

func (e *ChatEngine) generate(ctx context.Context, input []*schema.Message) (string, error) {
	start := time.Now()
	klog.V(6).Infof("[ChatEngine] Generate start: model=%s, messageCount=%d", e.modelName, len(input))
	for i, msg := range input {
		klog.V(8).Infof("[ChatEngine]   Message[%d]: role=%s, contentLength=%d", i, msg.Role, len(msg.Content))
	}

	resp, err := e.chatModel.Generate(ctx, input)
	if err != nil {
		klog.Errorf("[ChatEngine] Generate failed after %.1fs: %v", time.Since(start).Seconds(), err)
		return "", err
	}

	klog.V(6).Infof("[ChatEngine] Generate done: responseLength=%d, elapsed=%.1fs", len(resp.Content), time.Since(start).Seconds())
	return resp.Content, nil
}
