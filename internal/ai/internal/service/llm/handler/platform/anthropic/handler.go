// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/ecodeclub/aihr/internal/ai/internal/domain"
)

const (
	defaultModel     = "claude-3-5-haiku-latest"
	defaultMaxTokens = 1024
)

type Handler struct {
	client anthropic.Client
	model  string
}

func NewHandler(apikey, model string) *Handler {
	if model == "" {
		model = defaultModel
	}
	return &Handler{
		client: anthropic.NewClient(option.WithAPIKey(apikey)),
		model:  model,
	}
}

func (h *Handler) Name() string {
	return "anthropic"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	message, err := h.client.Messages.New(ctx, h.buildParams(&req))
	if err != nil {
		return domain.LLMResponse{}, domain.WrapExternal(h.Name(), err)
	}
	var sb strings.Builder
	for _, content := range message.Content {
		// 只关心文本块
		if content.Type == "text" {
			sb.WriteString(content.Text)
		}
	}
	return domain.LLMResponse{
		Tokens: message.Usage.InputTokens + message.Usage.OutputTokens,
		Answer: sb.String(),
	}, nil
}

func (h *Handler) buildParams(req *domain.LLMRequest) anthropic.MessageNewParams {
	model := req.Config.Model
	if model == "" {
		model = h.model
	}
	maxTokens := req.Config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt())),
		},
	}
	if req.Config.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.Config.SystemPrompt}}
	}
	if req.Config.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Config.Temperature)
	}
	return params
}
