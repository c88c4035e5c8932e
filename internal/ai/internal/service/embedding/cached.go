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
	"errors"

	"github.com/ecodeclub/aihr/internal/ai/internal/domain"
	"github.com/ecodeclub/aihr/internal/ai/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
)

// CachedService 先查缓存，只把没有命中的文本交给下游
// 缓存出错的时候直接绕过缓存
type CachedService struct {
	svc    Service
	model  string
	cache  cache.EmbeddingCache
	logger *elog.Component
}

func NewCachedService(svc Service, model string, c cache.EmbeddingCache) *CachedService {
	return &CachedService{
		svc:    svc,
		model:  model,
		cache:  c,
		logger: elog.DefaultLogger.With(elog.FieldComponent("ai.embedding")),
	}
}

func (c *CachedService) Embed(ctx context.Context, texts []string) ([]domain.Vector, error) {
	res := make([]domain.Vector, len(texts))
	// 同一个文本只请求一次
	missIdx := make(map[string][]int, len(texts))
	missing := make([]string, 0, len(texts))
	for i, text := range texts {
		vec, err := c.cache.Get(ctx, c.model, text)
		if err == nil {
			res[i] = vec
			continue
		}
		if !errors.Is(err, cache.ErrVectorNotFound) {
			c.logger.Warn("查询向量缓存失败", elog.FieldErr(err))
		}
		if _, ok := missIdx[text]; !ok {
			missing = append(missing, text)
		}
		missIdx[text] = append(missIdx[text], i)
	}
	if len(missing) == 0 {
		return res, nil
	}

	vectors, err := c.svc.Embed(ctx, missing)
	if err != nil {
		return nil, err
	}
	for i, text := range missing {
		for _, idx := range missIdx[text] {
			res[idx] = vectors[i]
		}
		if err1 := c.cache.Set(ctx, c.model, text, vectors[i]); err1 != nil {
			c.logger.Warn("写入向量缓存失败", elog.FieldErr(err1))
		}
	}
	return res, nil
}
