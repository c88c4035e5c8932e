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
	"testing"

	"github.com/ecodeclub/aihr/internal/ai/internal/domain"
	"github.com/ecodeclub/aihr/internal/ai/internal/repository/cache"
	cachemocks "github.com/ecodeclub/aihr/internal/ai/internal/repository/cache/mocks"
	aimocks "github.com/ecodeclub/aihr/internal/ai/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCachedService_Embed(t *testing.T) {
	const model = "openai:text-embedding-3-small"
	testCases := []struct {
		name    string
		texts   []string
		mock    func(ctrl *gomock.Controller) (Service, cache.EmbeddingCache)
		wantRes []domain.Vector
		wantErr error
	}{
		{
			name:  "全部命中",
			texts: []string{"go", "java"},
			mock: func(ctrl *gomock.Controller) (Service, cache.EmbeddingCache) {
				c := cachemocks.NewMockEmbeddingCache(ctrl)
				c.EXPECT().Get(gomock.Any(), model, "go").Return(domain.Vector{1, 0}, nil)
				c.EXPECT().Get(gomock.Any(), model, "java").Return(domain.Vector{0, 1}, nil)
				return aimocks.NewMockEmbeddingService(ctrl), c
			},
			wantRes: []domain.Vector{{1, 0}, {0, 1}},
		},
		{
			name:  "部分命中，重复的文本只请求一次",
			texts: []string{"go", "rust", "rust"},
			mock: func(ctrl *gomock.Controller) (Service, cache.EmbeddingCache) {
				c := cachemocks.NewMockEmbeddingCache(ctrl)
				c.EXPECT().Get(gomock.Any(), model, "go").Return(domain.Vector{1, 0}, nil)
				c.EXPECT().Get(gomock.Any(), model, "rust").Return(nil, cache.ErrVectorNotFound).Times(2)
				c.EXPECT().Set(gomock.Any(), model, "rust", domain.Vector{0, 1}).Return(nil)
				svc := aimocks.NewMockEmbeddingService(ctrl)
				svc.EXPECT().Embed(gomock.Any(), []string{"rust"}).Return([]domain.Vector{{0, 1}}, nil)
				return svc, c
			},
			wantRes: []domain.Vector{{1, 0}, {0, 1}, {0, 1}},
		},
		{
			name:  "缓存出错直接绕过",
			texts: []string{"go"},
			mock: func(ctrl *gomock.Controller) (Service, cache.EmbeddingCache) {
				c := cachemocks.NewMockEmbeddingCache(ctrl)
				c.EXPECT().Get(gomock.Any(), model, "go").Return(nil, errors.New("redis down"))
				c.EXPECT().Set(gomock.Any(), model, "go", gomock.Any()).Return(errors.New("redis down"))
				svc := aimocks.NewMockEmbeddingService(ctrl)
				svc.EXPECT().Embed(gomock.Any(), []string{"go"}).Return([]domain.Vector{{1, 0}}, nil)
				return svc, c
			},
			wantRes: []domain.Vector{{1, 0}},
		},
		{
			name:  "下游出错",
			texts: []string{"go"},
			mock: func(ctrl *gomock.Controller) (Service, cache.EmbeddingCache) {
				c := cachemocks.NewMockEmbeddingCache(ctrl)
				c.EXPECT().Get(gomock.Any(), model, "go").Return(nil, cache.ErrVectorNotFound)
				svc := aimocks.NewMockEmbeddingService(ctrl)
				svc.EXPECT().Embed(gomock.Any(), []string{"go"}).Return(nil, domain.ErrExternalService)
				return svc, c
			},
			wantErr: domain.ErrExternalService,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, c := tc.mock(ctrl)
			res, err := NewCachedService(svc, model, c).Embed(context.Background(), tc.texts)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
