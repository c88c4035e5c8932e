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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/aihr/internal/interview/internal/domain"
	"github.com/ecodeclub/aihr/internal/interview/internal/repository"
	repomocks "github.com/ecodeclub/aihr/internal/interview/internal/repository/mocks"
	interviewmocks "github.com/ecodeclub/aihr/internal/interview/mocks"
	"github.com/ecodeclub/aihr/internal/notification"
	notificationmocks "github.com/ecodeclub/aihr/internal/notification/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func openInterview() domain.Interview {
	return domain.Interview{
		ID:      1,
		AliasID: "alias",
		ChatID:  3,
		State:   domain.StateOpen,
		Questions: []domain.Question{
			{Idx: 0, Question: "q1"},
			{Idx: 1, Question: "q2"},
		},
	}
}

func TestInterviewService_SubmitAnswers(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.InterviewRepository, AnswerEvaluator, notification.Channel)
		answers []domain.Answer
		wantErr error
	}{
		{
			name: "提交成功_答案按照题目顺序保存",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, AnswerEvaluator, notification.Channel) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				evaluator := interviewmocks.NewMockAnswerEvaluator(ctrl)
				channel := notificationmocks.NewMockChannel(ctrl)
				repo.EXPECT().FindByAlias(gomock.Any(), "alias").Return(openInterview(), nil)
				repo.EXPECT().SubmitAnswers(gomock.Any(), int64(1), []string{"a1", "a2"}).Return(nil)
				evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, iv domain.Interview) domain.Report {
						assert.Equal(t, domain.StateFinished, iv.State)
						assert.Equal(t, "a2", iv.Questions[1].Answer)
						return domain.Report{AliasID: "alias", QuestionCount: 2, Text: "ok"}
					})
				repo.EXPECT().FindChatByID(gomock.Any(), int64(3)).Return(domain.Chat{ID: 3, ExternalID: "chat-3"}, nil)
				channel.EXPECT().Send(gomock.Any(), "chat-3", "Interview alias finished, 2 questions answered.\nok").Return(nil)
				return repo, evaluator, channel
			},
			answers: []domain.Answer{{ID: 1, Answer: " a2 "}, {ID: 0, Answer: "a1"}},
		},
		{
			name: "通知失败不影响提交",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, AnswerEvaluator, notification.Channel) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				evaluator := interviewmocks.NewMockAnswerEvaluator(ctrl)
				channel := notificationmocks.NewMockChannel(ctrl)
				repo.EXPECT().FindByAlias(gomock.Any(), "alias").Return(openInterview(), nil)
				repo.EXPECT().SubmitAnswers(gomock.Any(), int64(1), []string{"a1", "a2"}).Return(nil)
				evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
					Return(domain.Report{AliasID: "alias", QuestionCount: 2, FailureReason: domain.ReasonServiceUnavailable})
				repo.EXPECT().FindChatByID(gomock.Any(), int64(3)).Return(domain.Chat{ID: 3, ExternalID: "chat-3"}, nil)
				channel.EXPECT().Send(gomock.Any(), "chat-3", gomock.Any()).Return(errors.New("mq error"))
				return repo, evaluator, channel
			},
			answers: []domain.Answer{{ID: 0, Answer: "a1"}, {ID: 1, Answer: "a2"}},
		},
		{
			name: "没有关联会话不发通知",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, AnswerEvaluator, notification.Channel) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				evaluator := interviewmocks.NewMockAnswerEvaluator(ctrl)
				channel := notificationmocks.NewMockChannel(ctrl)
				iv := openInterview()
				iv.ChatID = 0
				repo.EXPECT().FindByAlias(gomock.Any(), "alias").Return(iv, nil)
				repo.EXPECT().SubmitAnswers(gomock.Any(), int64(1), gomock.Any()).Return(nil)
				evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(domain.Report{})
				return repo, evaluator, channel
			},
			answers: []domain.Answer{{ID: 0, Answer: "a1"}, {ID: 1, Answer: "a2"}},
		},
		{
			name: "面试不存在",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, AnswerEvaluator, notification.Channel) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				repo.EXPECT().FindByAlias(gomock.Any(), "alias").Return(domain.Interview{}, domain.ErrNotFound)
				return repo, interviewmocks.NewMockAnswerEvaluator(ctrl), notificationmocks.NewMockChannel(ctrl)
			},
			answers: []domain.Answer{{ID: 0, Answer: "a1"}},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "面试已经结束",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, AnswerEvaluator, notification.Channel) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				iv := openInterview()
				iv.State = domain.StateFinished
				repo.EXPECT().FindByAlias(gomock.Any(), "alias").Return(iv, nil)
				return repo, interviewmocks.NewMockAnswerEvaluator(ctrl), notificationmocks.NewMockChannel(ctrl)
			},
			answers: []domain.Answer{{ID: 0, Answer: "a1"}, {ID: 1, Answer: "a2"}},
			wantErr: domain.ErrStateConflict,
		},
		{
			name: "面试已经过期但是还没有被关闭",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, AnswerEvaluator, notification.Channel) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				iv := openInterview()
				iv.ExpireAt = time.Now().Add(-time.Minute).UnixMilli()
				repo.EXPECT().FindByAlias(gomock.Any(), "alias").Return(iv, nil)
				return repo, interviewmocks.NewMockAnswerEvaluator(ctrl), notificationmocks.NewMockChannel(ctrl)
			},
			answers: []domain.Answer{{ID: 0, Answer: "a1"}, {ID: 1, Answer: "a2"}},
			wantErr: domain.ErrStateConflict,
		},
		{
			name: "还没有过期",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, AnswerEvaluator, notification.Channel) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				iv := openInterview()
				iv.ChatID = 0
				iv.ExpireAt = time.Now().Add(time.Hour).UnixMilli()
				repo.EXPECT().FindByAlias(gomock.Any(), "alias").Return(iv, nil)
				repo.EXPECT().SubmitAnswers(gomock.Any(), int64(1), []string{"a1", "a2"}).Return(nil)
				evaluator := interviewmocks.NewMockAnswerEvaluator(ctrl)
				evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(domain.Report{})
				return repo, evaluator, notificationmocks.NewMockChannel(ctrl)
			},
			answers: []domain.Answer{{ID: 0, Answer: "a1"}, {ID: 1, Answer: "a2"}},
		},
		{
			name: "答案少了一个",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, AnswerEvaluator, notification.Channel) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				repo.EXPECT().FindByAlias(gomock.Any(), "alias").Return(openInterview(), nil)
				return repo, interviewmocks.NewMockAnswerEvaluator(ctrl), notificationmocks.NewMockChannel(ctrl)
			},
			answers: []domain.Answer{{ID: 0, Answer: "a1"}},
			wantErr: domain.ErrValidation,
		},
		{
			name: "答案多了一个",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, AnswerEvaluator, notification.Channel) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				repo.EXPECT().FindByAlias(gomock.Any(), "alias").Return(openInterview(), nil)
				return repo, interviewmocks.NewMockAnswerEvaluator(ctrl), notificationmocks.NewMockChannel(ctrl)
			},
			answers: []domain.Answer{{ID: 0}, {ID: 1}, {ID: 2}},
			wantErr: domain.ErrValidation,
		},
		{
			name: "重复回答同一道题",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, AnswerEvaluator, notification.Channel) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				repo.EXPECT().FindByAlias(gomock.Any(), "alias").Return(openInterview(), nil)
				return repo, interviewmocks.NewMockAnswerEvaluator(ctrl), notificationmocks.NewMockChannel(ctrl)
			},
			answers: []domain.Answer{{ID: 0}, {ID: 0}},
			wantErr: domain.ErrValidation,
		},
		{
			name: "题目编号越界",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, AnswerEvaluator, notification.Channel) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				repo.EXPECT().FindByAlias(gomock.Any(), "alias").Return(openInterview(), nil)
				return repo, interviewmocks.NewMockAnswerEvaluator(ctrl), notificationmocks.NewMockChannel(ctrl)
			},
			answers: []domain.Answer{{ID: 0}, {ID: -1}},
			wantErr: domain.ErrValidation,
		},
		{
			name: "并发提交失败",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, AnswerEvaluator, notification.Channel) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				repo.EXPECT().FindByAlias(gomock.Any(), "alias").Return(openInterview(), nil)
				repo.EXPECT().SubmitAnswers(gomock.Any(), int64(1), gomock.Any()).Return(domain.ErrStateConflict)
				return repo, interviewmocks.NewMockAnswerEvaluator(ctrl), notificationmocks.NewMockChannel(ctrl)
			},
			answers: []domain.Answer{{ID: 0}, {ID: 1}},
			wantErr: domain.ErrStateConflict,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, evaluator, channel := tc.mock(ctrl)
			svc := NewInterviewService(repo, evaluator, channel, time.Second)
			err := svc.SubmitAnswers(context.Background(), "alias", tc.answers)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestInterviewService_SubmitAnswers_CallerCanceled(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	repo := repomocks.NewMockInterviewRepository(ctrl)
	evaluator := interviewmocks.NewMockAnswerEvaluator(ctrl)
	channel := notificationmocks.NewMockChannel(ctrl)
	repo.EXPECT().FindByAlias(gomock.Any(), "alias").Return(openInterview(), nil)
	repo.EXPECT().SubmitAnswers(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id int64, answers []string) error {
			// 答案已经提交之后调用方才断开
			cancel()
			return nil
		})
	evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, iv domain.Interview) domain.Report {
			assert.NoError(t, ctx.Err())
			return domain.Report{AliasID: "alias"}
		})
	repo.EXPECT().FindChatByID(gomock.Any(), int64(3)).Return(domain.Chat{ExternalID: "chat-3"}, nil)
	channel.EXPECT().Send(gomock.Any(), "chat-3", gomock.Any()).Return(nil)

	svc := NewInterviewService(repo, evaluator, channel, time.Second)
	err := svc.SubmitAnswers(ctx, "alias", []domain.Answer{{ID: 0}, {ID: 1}})
	require.NoError(t, err)
}

func TestInterviewService_CreateInterview(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		mock       func(ctrl *gomock.Controller) repository.InterviewRepository
		questions  []string
		expiration time.Duration
		wantErr    error
	}{
		{
			name: "创建成功",
			mock: func(ctrl *gomock.Controller) repository.InterviewRepository {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				repo.EXPECT().CreateInterview(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, iv domain.Interview) (int64, error) {
						assert.Equal(t, int64(7), iv.CandidateID)
						assert.Equal(t, domain.StateOpen, iv.State)
						assert.NotEmpty(t, iv.AliasID)
						assert.Greater(t, iv.ExpireAt, time.Now().UnixMilli())
						assert.Equal(t, []domain.Question{
							{Idx: 0, Question: "q1"},
							{Idx: 1, Question: "q2"},
						}, iv.Questions)
						return 1, nil
					})
				return repo
			},
			questions:  []string{"q1", "q2"},
			expiration: time.Hour,
		},
		{
			name: "候选人不存在",
			mock: func(ctrl *gomock.Controller) repository.InterviewRepository {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				repo.EXPECT().CreateInterview(gomock.Any(), gomock.Any()).Return(int64(0), domain.ErrCandidateNotFound)
				return repo
			},
			questions: []string{"q1"},
			wantErr:   domain.ErrNotFound,
		},
		{
			name: "没有题目",
			mock: func(ctrl *gomock.Controller) repository.InterviewRepository {
				return repomocks.NewMockInterviewRepository(ctrl)
			},
			wantErr: domain.ErrValidation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewInterviewService(tc.mock(ctrl), interviewmocks.NewMockAnswerEvaluator(ctrl),
				notificationmocks.NewMockChannel(ctrl), time.Second)
			alias, err := svc.CreateInterview(context.Background(), 7, tc.questions, tc.expiration)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.NotEmpty(t, alias)
			}
		})
	}
}
