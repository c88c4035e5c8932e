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

package job

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/aihr/internal/interview/internal/domain"
	"github.com/ecodeclub/aihr/internal/interview/internal/service"
	interviewmocks "github.com/ecodeclub/aihr/internal/interview/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCloseExpiredInterviewsJob_Run(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) service.InterviewService
		wantErr bool
	}{
		{
			name: "分批关闭",
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				svc := interviewmocks.NewMockInterviewService(ctrl)
				gomock.InOrder(
					svc.EXPECT().FindExpired(gomock.Any(), gomock.Any(), 0, 2).
						Return([]domain.Interview{{ID: 1}, {ID: 2}}, nil),
					svc.EXPECT().CloseExpired(gomock.Any(), []int64{1, 2}, gomock.Any()).Return(int64(2), nil),
					svc.EXPECT().FindExpired(gomock.Any(), gomock.Any(), 0, 2).
						Return([]domain.Interview{{ID: 3}}, nil),
					svc.EXPECT().CloseExpired(gomock.Any(), []int64{3}, gomock.Any()).Return(int64(1), nil),
				)
				return svc
			},
		},
		{
			name: "没有过期面试",
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				svc := interviewmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().FindExpired(gomock.Any(), gomock.Any(), 0, 2).Return(nil, nil)
				svc.EXPECT().CloseExpired(gomock.Any(), []int64{}, gomock.Any()).Return(int64(0), nil)
				return svc
			},
		},
		{
			name: "查询失败",
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				svc := interviewmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().FindExpired(gomock.Any(), gomock.Any(), 0, 2).Return(nil, errors.New("db error"))
				return svc
			},
			wantErr: true,
		},
		{
			name: "关闭失败",
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				svc := interviewmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().FindExpired(gomock.Any(), gomock.Any(), 0, 2).
					Return([]domain.Interview{{ID: 1}}, nil)
				svc.EXPECT().CloseExpired(gomock.Any(), []int64{1}, gomock.Any()).Return(int64(0), errors.New("db error"))
				return svc
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			job := NewCloseExpiredInterviewsJob(tc.mock(ctrl), 2)
			err := job.Run(context.Background())
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}
