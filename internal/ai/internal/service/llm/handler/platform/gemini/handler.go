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

package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/ecodeclub/aihr/internal/ai/internal/domain"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

type Handler struct {
	client *genai.Client
	model  string
}

func NewHandler(ctx context.Context, apikey, model string) (*Handler, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apikey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = defaultModel
	}
	return &Handler{client: client, model: model}, nil
}

func (h *Handler) Name() string {
	return "gemini"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	model := req.Config.Model
	if model == "" {
		model = h.model
	}
	resp, err := h.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt()), h.buildConfig(req.Config))
	if err != nil {
		return domain.LLMResponse{}, domain.WrapExternal(h.Name(), err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(part.Text)
		}
	}
	if builder.Len() == 0 {
		return domain.LLMResponse{}, domain.WrapExternal(h.Name(), errors.New("返回了空结果"))
	}
	res := domain.LLMResponse{Answer: builder.String()}
	if resp.UsageMetadata != nil {
		res.Tokens = int64(resp.UsageMetadata.TotalTokenCount)
	}
	return res, nil
}

func (h *Handler) buildConfig(cfg domain.BizConfig) *genai.GenerateContentConfig {
	res := &genai.GenerateContentConfig{}
	if cfg.SystemPrompt != "" {
		res.SystemInstruction = genai.NewContentFromText(cfg.SystemPrompt, genai.RoleUser)
	}
	if cfg.Temperature > 0 {
		res.Temperature = genai.Ptr(float32(cfg.Temperature))
	}
	if cfg.TopP > 0 {
		res.TopP = genai.Ptr(float32(cfg.TopP))
	}
	if cfg.MaxTokens > 0 {
		res.MaxOutputTokens = int32(cfg.MaxTokens)
	}
	return res
}
