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

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/aihr/internal/intake/internal/domain"
	"github.com/ecodeclub/aihr/internal/intake/internal/repository/cache"
	cachemocks "github.com/ecodeclub/aihr/internal/intake/internal/repository/cache/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUploadRepository_Save(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) cache.UploadCache
		upload  domain.PendingUpload
		wantErr error
	}{
		{
			name: "按照剩余时间保存",
			mock: func(ctrl *gomock.Controller) cache.UploadCache {
				c := cachemocks.NewMockUploadCache(ctrl)
				c.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u cache.PendingUpload, expiration time.Duration) error {
						assert.Equal(t, int64(1), u.ChatID)
						assert.Equal(t, int64(2), u.Nonce)
						assert.Equal(t, "vacancy", u.VacancyText)
						assert.True(t, expiration > 9*time.Minute && expiration <= 10*time.Minute)
						return nil
					})
				return c
			},
			upload: domain.PendingUpload{
				ChatID:      1,
				Nonce:       2,
				VacancyText: "vacancy",
				ExpireAt:    time.Now().Add(10 * time.Minute).UnixMilli(),
			},
		},
		{
			name: "已经过期",
			mock: func(ctrl *gomock.Controller) cache.UploadCache {
				return cachemocks.NewMockUploadCache(ctrl)
			},
			upload: domain.PendingUpload{
				ChatID:   1,
				Nonce:    2,
				ExpireAt: time.Now().Add(-time.Second).UnixMilli(),
			},
			wantErr: domain.ErrUploadNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewUploadRepository(tc.mock(ctrl))
			err := repo.Save(context.Background(), tc.upload)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestUploadRepository_Take(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) cache.UploadCache
		want    domain.PendingUpload
		wantErr error
	}{
		{
			name: "取出成功",
			mock: func(ctrl *gomock.Controller) cache.UploadCache {
				c := cachemocks.NewMockUploadCache(ctrl)
				c.EXPECT().Take(gomock.Any(), int64(1), int64(2)).Return(cache.PendingUpload{
					ChatID:      1,
					Nonce:       2,
					VacancyName: "v.txt",
					Resumes:     []byte("zip"),
				}, nil)
				return c
			},
			want: domain.PendingUpload{ChatID: 1, Nonce: 2, VacancyName: "v.txt", Resumes: []byte("zip")},
		},
		{
			name: "不存在",
			mock: func(ctrl *gomock.Controller) cache.UploadCache {
				c := cachemocks.NewMockUploadCache(ctrl)
				c.EXPECT().Take(gomock.Any(), int64(1), int64(2)).Return(cache.PendingUpload{}, cache.ErrUploadNotFound)
				return c
			},
			wantErr: domain.ErrUploadNotFound,
		},
		{
			name: "缓存出错",
			mock: func(ctrl *gomock.Controller) cache.UploadCache {
				c := cachemocks.NewMockUploadCache(ctrl)
				c.EXPECT().Take(gomock.Any(), int64(1), int64(2)).Return(cache.PendingUpload{}, errors.New("redis down"))
				return c
			},
			wantErr: errors.New("redis down"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewUploadRepository(tc.mock(ctrl))
			res, err := repo.Take(context.Background(), 1, 2)
			if tc.wantErr != nil {
				assert.Equal(t, tc.wantErr.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}
