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

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/aihr/internal/intake/internal/domain"
	"github.com/ecodeclub/aihr/internal/intake/internal/event"
	"github.com/ecodeclub/aihr/internal/intake/internal/repository"
	repomocks "github.com/ecodeclub/aihr/internal/intake/internal/repository/mocks"
	"github.com/ecodeclub/aihr/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedNonce int64

func (n fixedNonce) Next() int64 {
	return int64(n)
}

func newScreeningQueue(t *testing.T) (mqx.Producer[event.ScreeningRequestedEvent], mq.Consumer) {
	t.Helper()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), event.ScreeningRequestedEventName, 1))
	producer, err := mqx.NewGeneralProducer[event.ScreeningRequestedEvent](q, event.ScreeningRequestedEventName)
	require.NoError(t, err)
	consumer, err := q.Consumer(event.ScreeningRequestedEventName, "test")
	require.NoError(t, err)
	return producer, consumer
}

func TestUploadService_CreateVacancy(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.UploadRepository
		filename string
		data     []byte
		wantErr  error
		want     int64
	}{
		{
			name: "创建成功",
			mock: func(ctrl *gomock.Controller) repository.UploadRepository {
				repo := repomocks.NewMockUploadRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u domain.PendingUpload) error {
						assert.Equal(t, int64(3), u.ChatID)
						assert.Equal(t, int64(42), u.Nonce)
						assert.Equal(t, "backend.txt", u.VacancyName)
						assert.Equal(t, "Go developer", u.VacancyText)
						assert.False(t, u.HasResumes())
						ttl := u.TTL(time.Now())
						assert.True(t, ttl > 29*time.Minute && ttl <= 30*time.Minute)
						return nil
					})
				return repo
			},
			filename: "backend.txt",
			data:     []byte(" Go developer \n"),
			want:     42,
		},
		{
			name: "岗位描述为空",
			mock: func(ctrl *gomock.Controller) repository.UploadRepository {
				return repomocks.NewMockUploadRepository(ctrl)
			},
			filename: "backend.txt",
			data:     []byte("   "),
			wantErr:  domain.ErrVacancyMissing,
		},
		{
			name: "格式不支持",
			mock: func(ctrl *gomock.Controller) repository.UploadRepository {
				return repomocks.NewMockUploadRepository(ctrl)
			},
			filename: "backend.rtf",
			data:     []byte("Go developer"),
			wantErr:  domain.ErrVacancyMissing,
		},
		{
			name: "保存失败",
			mock: func(ctrl *gomock.Controller) repository.UploadRepository {
				repo := repomocks.NewMockUploadRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis 错误"))
				return repo
			},
			filename: "backend.txt",
			data:     []byte("Go developer"),
			wantErr:  errors.New("redis 错误"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			producer, _ := newScreeningQueue(t)
			svc := NewUploadService(tc.mock(ctrl), NewDecoder(10, 10<<20), fixedNonce(42), producer, 30*time.Minute)
			nonce, err := svc.CreateVacancy(context.Background(), 3, tc.filename, tc.data)
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, nonce)
		})
	}
}

func TestUploadService_AttachResumes(t *testing.T) {
	t.Parallel()
	pending := domain.PendingUpload{
		ChatID:      3,
		Nonce:       42,
		VacancyName: "backend.txt",
		VacancyText: "Go developer",
		ExpireAt:    time.Now().Add(10 * time.Minute).UnixMilli(),
	}
	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) repository.UploadRepository
		filename  string
		data      []byte
		wantErr   error
		wantEvent bool
	}{
		{
			name: "上传成功",
			mock: func(ctrl *gomock.Controller) repository.UploadRepository {
				repo := repomocks.NewMockUploadRepository(ctrl)
				repo.EXPECT().Find(gomock.Any(), int64(3), int64(42)).Return(pending, nil)
				want := pending
				want.ResumesName = "resumes.zip"
				want.Resumes = []byte("zip")
				repo.EXPECT().Save(gomock.Any(), want).Return(nil)
				return repo
			},
			filename:  "resumes.zip",
			data:      []byte("zip"),
			wantEvent: true,
		},
		{
			name: "没有上传岗位",
			mock: func(ctrl *gomock.Controller) repository.UploadRepository {
				repo := repomocks.NewMockUploadRepository(ctrl)
				repo.EXPECT().Find(gomock.Any(), int64(3), int64(42)).Return(domain.PendingUpload{}, domain.ErrUploadNotFound)
				return repo
			},
			filename: "resumes.zip",
			data:     []byte("zip"),
			wantErr:  domain.ErrUploadNotFound,
		},
		{
			name: "不是压缩包",
			mock: func(ctrl *gomock.Controller) repository.UploadRepository {
				return repomocks.NewMockUploadRepository(ctrl)
			},
			filename: "alice.pdf",
			data:     []byte("pdf"),
			wantErr:  domain.ErrInvalidArchive,
		},
		{
			name: "批次已经过期",
			mock: func(ctrl *gomock.Controller) repository.UploadRepository {
				repo := repomocks.NewMockUploadRepository(ctrl)
				repo.EXPECT().Find(gomock.Any(), int64(3), int64(42)).Return(pending, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(domain.ErrUploadNotFound)
				return repo
			},
			filename: "resumes.zip",
			data:     []byte("zip"),
			wantErr:  domain.ErrUploadNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			producer, consumer := newScreeningQueue(t)
			svc := NewUploadService(tc.mock(ctrl), NewDecoder(10, 10<<20), fixedNonce(42), producer, 30*time.Minute)
			err := svc.AttachResumes(context.Background(), 3, 42, tc.filename, tc.data)
			assert.ErrorIs(t, err, tc.wantErr)
			if !tc.wantEvent {
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			msg, err := consumer.Consume(ctx)
			require.NoError(t, err)
			var evt event.ScreeningRequestedEvent
			require.NoError(t, json.Unmarshal(msg.Value, &evt))
			assert.Equal(t, event.ScreeningRequestedEvent{ChatID: 3, Nonce: 42}, evt)
		})
	}
}
