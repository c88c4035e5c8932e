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
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/aihr/internal/interview/internal/domain"
	"github.com/ecodeclub/aihr/internal/interview/internal/repository"
	"github.com/ecodeclub/aihr/internal/notification"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

// InterviewService 面试的生命周期
//
//go:generate mockgen -source=./interview.go -destination=../../mocks/interview.mock.go -package=interviewmocks -typed=true InterviewService
type InterviewService interface {
	CreateCandidate(ctx context.Context, c domain.Candidate) (int64, error)
	// GetCandidate 只给服务端内部使用
	GetCandidate(ctx context.Context, id int64) (domain.Candidate, error)

	// CreateInterview 返回 alias，这是面试唯一对外的标识
	CreateInterview(ctx context.Context, candidateID int64, questions []string, expiration time.Duration) (string, error)
	// Admit 在同一个事务里面创建候选人和面试
	Admit(ctx context.Context, c domain.Candidate, questions []string, expiration time.Duration) (domain.Interview, error)
	GetByAlias(ctx context.Context, aliasID string) (domain.Interview, error)
	ListQuestions(ctx context.Context, iv domain.Interview) ([]domain.Question, error)
	// SubmitAnswers 只能成功一次，答案提交之后会生成评估报告并通知招聘方
	// 评估和通知失败不会影响已经提交的答案
	SubmitAnswers(ctx context.Context, aliasID string, answers []domain.Answer) error

	FindExpired(ctx context.Context, now int64, offset, limit int) ([]domain.Interview, error)
	CloseExpired(ctx context.Context, ids []int64, now int64) (int64, error)
}

type interviewService struct {
	repo            repository.InterviewRepository
	evaluator       AnswerEvaluator
	channel         notification.Channel
	evaluateTimeout time.Duration
	logger          *elog.Component
}

func NewInterviewService(repo repository.InterviewRepository,
	evaluator AnswerEvaluator,
	channel notification.Channel,
	evaluateTimeout time.Duration) InterviewService {
	return &interviewService{
		repo:            repo,
		evaluator:       evaluator,
		channel:         channel,
		evaluateTimeout: evaluateTimeout,
		logger:          elog.DefaultLogger.With(elog.FieldComponent("interview.service")),
	}
}

func (s *interviewService) CreateCandidate(ctx context.Context, c domain.Candidate) (int64, error) {
	return s.repo.CreateCandidate(ctx, c)
}

func (s *interviewService) GetCandidate(ctx context.Context, id int64) (domain.Candidate, error) {
	return s.repo.FindCandidateByID(ctx, id)
}

func (s *interviewService) CreateInterview(ctx context.Context,
	candidateID int64, questions []string, expiration time.Duration) (string, error) {
	iv, err := s.newInterview(questions, expiration)
	if err != nil {
		return "", err
	}
	iv.CandidateID = candidateID
	_, err = s.repo.CreateInterview(ctx, iv)
	if err != nil {
		return "", err
	}
	return iv.AliasID, nil
}

func (s *interviewService) Admit(ctx context.Context, c domain.Candidate,
	questions []string, expiration time.Duration) (domain.Interview, error) {
	iv, err := s.newInterview(questions, expiration)
	if err != nil {
		return domain.Interview{}, err
	}
	return s.repo.Admit(ctx, c, iv)
}

func (s *interviewService) newInterview(questions []string, expiration time.Duration) (domain.Interview, error) {
	if len(questions) == 0 {
		return domain.Interview{}, fmt.Errorf("%w: 面试至少要有一道题目", domain.ErrValidation)
	}
	return domain.Interview{
		AliasID:  shortuuid.New(),
		State:    domain.StateOpen,
		ExpireAt: domain.ExpireAtOf(time.Now(), expiration),
		Questions: slice.Map(questions, func(idx int, src string) domain.Question {
			return domain.Question{Idx: idx, Question: src}
		}),
	}, nil
}

func (s *interviewService) GetByAlias(ctx context.Context, aliasID string) (domain.Interview, error) {
	return s.repo.FindByAlias(ctx, aliasID)
}

func (s *interviewService) ListQuestions(ctx context.Context, iv domain.Interview) ([]domain.Question, error) {
	return s.repo.FindQuestions(ctx, iv.ID)
}

func (s *interviewService) SubmitAnswers(ctx context.Context, aliasID string, answers []domain.Answer) error {
	iv, err := s.repo.FindByAlias(ctx, aliasID)
	if err != nil {
		return err
	}
	if !iv.IsOpen(time.Now()) {
		return fmt.Errorf("%w: 当前状态 %s，过期时间 %d", domain.ErrStateConflict, iv.State, iv.ExpireAt)
	}
	ordered, err := s.orderAnswers(iv.Questions, answers)
	if err != nil {
		return err
	}
	err = s.repo.SubmitAnswers(ctx, iv.ID, ordered)
	if err != nil {
		return err
	}
	iv.State = domain.StateFinished
	for i := range iv.Questions {
		iv.Questions[i].Answer = ordered[i]
		iv.Questions[i].Answered = true
	}
	// 答案已经提交，调用方断开也要把报告发出去
	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.evaluateTimeout)
	defer cancel()
	s.finalize(fctx, iv)
	return nil
}

// orderAnswers 答案的 ID 必须恰好覆盖所有的题目
func (s *interviewService) orderAnswers(questions []domain.Question, answers []domain.Answer) ([]string, error) {
	if len(answers) != len(questions) {
		return nil, fmt.Errorf("%w: 需要 %d 个答案，实际 %d 个", domain.ErrValidation, len(questions), len(answers))
	}
	res := make([]string, len(questions))
	seen := make([]bool, len(questions))
	for _, a := range answers {
		if a.ID < 0 || a.ID >= len(questions) {
			return nil, fmt.Errorf("%w: 题目 %d 不存在", domain.ErrValidation, a.ID)
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("%w: 题目 %d 重复回答", domain.ErrValidation, a.ID)
		}
		seen[a.ID] = true
		res[a.ID] = strings.TrimSpace(a.Answer)
	}
	return res, nil
}

func (s *interviewService) finalize(ctx context.Context, iv domain.Interview) {
	report := s.evaluator.Evaluate(ctx, iv)
	if report.Failed() {
		s.logger.Warn("面试评估失败",
			elog.String("alias", iv.AliasID),
			elog.String("reason", report.FailureReason))
	}
	if iv.ChatID == 0 {
		s.logger.Info("面试没有关联的会话，跳过通知", elog.String("alias", iv.AliasID))
		return
	}
	chat, err := s.repo.FindChatByID(ctx, iv.ChatID)
	if err != nil {
		s.logger.Error("查找会话失败",
			elog.String("alias", iv.AliasID),
			elog.Int64("chatId", iv.ChatID),
			elog.FieldErr(err))
		return
	}
	err = s.channel.Send(ctx, chat.ExternalID, report.String())
	if err != nil {
		s.logger.Error("发送面试报告失败",
			elog.String("alias", iv.AliasID),
			elog.FieldErr(err))
	}
}

func (s *interviewService) FindExpired(ctx context.Context, now int64, offset, limit int) ([]domain.Interview, error) {
	return s.repo.FindExpired(ctx, now, offset, limit)
}

func (s *interviewService) CloseExpired(ctx context.Context, ids []int64, now int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.repo.CloseExpired(ctx, ids, now)
}
