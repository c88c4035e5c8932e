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

package embedding

import (
	"context"
	"fmt"

	"github.com/ecodeclub/aihr/internal/ai/internal/domain"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIBackend struct {
	client *openai.Client
	model  string
}

func NewOpenAIBackend(baseURL, apikey, model string) *OpenAIBackend {
	opts := []option.RequestOption{option.WithAPIKey(apikey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = openai.EmbeddingModelTextEmbedding3Small
	}
	return &OpenAIBackend{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (o *OpenAIBackend) Name() string {
	return "openai"
}

func (o *OpenAIBackend) Model() string {
	return o.model
}

func (o *OpenAIBackend) Embed(ctx context.Context, texts []string) ([]domain.Vector, error) {
	resp, err := o.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input:          openai.F[openai.EmbeddingNewParamsInputUnion](openai.EmbeddingNewParamsInputArrayOfStrings(texts)),
		Model:          openai.F(o.model),
		EncodingFormat: openai.F(openai.EmbeddingNewParamsEncodingFormatFloat),
	})
	if err != nil {
		return nil, err
	}
	// 按照 index 放回去，不依赖返回顺序
	res := make([]domain.Vector, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || int(d.Index) >= len(res) {
			return nil, fmt.Errorf("非法的向量下标 %d", d.Index)
		}
		res[d.Index] = d.Embedding
	}
	for i := range res {
		if res[i] == nil {
			return nil, fmt.Errorf("缺少第 %d 个向量", i)
		}
	}
	return res, nil
}
