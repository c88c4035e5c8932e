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
	"github.com/ecodeclub/ekit/slice"
)

// Service 输入若干文本，按照顺序返回单位长度的向量
//
//go:generate mockgen -source=./embedding.go -destination=../../../mocks/embedding.mock.go -package=aimocks -typed=true -mock_names=Service=MockEmbeddingService Service
type Service interface {
	Embed(ctx context.Context, texts []string) ([]domain.Vector, error)
}

// Backend 具体的模型平台，只负责把文本变成向量
type Backend interface {
	Name() string
	// Model 模型名字带上版本，用于缓存的 key
	Model() string
	Embed(ctx context.Context, texts []string) ([]domain.Vector, error)
}

type service struct {
	backend Backend
}

func NewService(backend Backend) Service {
	return &service{backend: backend}
}

func (s *service) Embed(ctx context.Context, texts []string) ([]domain.Vector, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	vectors, err := s.backend.Embed(ctx, texts)
	if err != nil {
		return nil, domain.WrapExternal(s.backend.Name(), err)
	}
	if len(vectors) != len(texts) {
		return nil, domain.WrapExternal(s.backend.Name(),
			fmt.Errorf("向量数量 %d 和文本数量 %d 不一致", len(vectors), len(texts)))
	}
	// 平台不一定保证归一化，这里统一处理
	return slice.Map(vectors, func(idx int, src domain.Vector) domain.Vector {
		return src.Normalize()
	}), nil
}
