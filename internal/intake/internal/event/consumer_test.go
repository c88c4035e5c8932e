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

package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/aihr/internal/intake/internal/domain"
	intakemocks "github.com/ecodeclub/aihr/internal/intake/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScreeningEventConsumer_Consume(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		value   []byte
		mock    func(ctrl *gomock.Controller) Screener
		wantErr error
	}{
		{
			name:  "筛选成功",
			value: mustMarshal(t, ScreeningRequestedEvent{ChatID: 3, Nonce: 42}),
			mock: func(ctrl *gomock.Controller) Screener {
				svc := intakemocks.NewMockScreeningService(ctrl)
				svc.EXPECT().Screen(gomock.Any(), int64(3), int64(42)).
					Return(domain.Summary{Results: []domain.ScreeningResult{{Outcome: domain.OutcomeAccepted}}}, nil)
				return svc
			},
		},
		{
			name:  "批次已经过期",
			value: mustMarshal(t, ScreeningRequestedEvent{ChatID: 3, Nonce: 42}),
			mock: func(ctrl *gomock.Controller) Screener {
				svc := intakemocks.NewMockScreeningService(ctrl)
				svc.EXPECT().Screen(gomock.Any(), int64(3), int64(42)).
					Return(domain.Summary{}, domain.ErrUploadNotFound)
				return svc
			},
			wantErr: domain.ErrUploadNotFound,
		},
		{
			name:  "消息格式错误",
			value: []byte("not json"),
			mock: func(ctrl *gomock.Controller) Screener {
				return intakemocks.NewMockScreeningService(ctrl)
			},
			wantErr: errors.New("解析消息失败"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(context.Background(), ScreeningRequestedEventName, 1))
			producer, err := q.Producer(ScreeningRequestedEventName)
			require.NoError(t, err)
			c, err := NewScreeningEventConsumer(q, tc.mock(ctrl))
			require.NoError(t, err)

			_, err = producer.Produce(context.Background(), &mq.Message{Value: tc.value})
			require.NoError(t, err)
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			err = c.Consume(ctx)
			switch {
			case tc.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(tc.wantErr, domain.ErrUploadNotFound):
				assert.ErrorIs(t, err, tc.wantErr)
			default:
				assert.ErrorContains(t, err, tc.wantErr.Error())
			}
		})
	}
}

func mustMarshal(t *testing.T, evt ScreeningRequestedEvent) []byte {
	t.Helper()
	data, err := json.Marshal(evt)
	require.NoError(t, err)
	return data
}
