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

	"github.com/ecodeclub/aihr/internal/ai/internal/domain"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ollama/ollama/api"
)

const defaultOllamaModel = "nomic-embed-text"

type OllamaBackend struct {
	client *api.Client
	model  string
}

func NewOllamaBackend(client *api.Client, model string) *OllamaBackend {
	if model == "" {
		model = defaultOllamaModel
	}
	return &OllamaBackend{client: client, model: model}
}

func (o *OllamaBackend) Name() string {
	return "ollama"
}

func (o *OllamaBackend) Model() string {
	return o.model
}

func (o *OllamaBackend) Embed(ctx context.Context, texts []string) ([]domain.Vector, error) {
	resp, err := o.client.Embed(ctx, &api.EmbedRequest{
		Model: o.model,
		Input: texts,
	})
	if err != nil {
		return nil, err
	}
	return slice.Map(resp.Embeddings, func(idx int, src []float32) domain.Vector {
		return domain.VectorOf32(src)
	}), nil
}
