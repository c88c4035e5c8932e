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
	"database/sql"
	"errors"
	"time"

	"github.com/ecodeclub/aihr/internal/interview/internal/domain"
	"github.com/ecodeclub/aihr/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"gorm.io/gorm"
)

// InterviewRepository 候选人，面试和题目只能通过它修改
//
//go:generate mockgen -source=./interview.go -destination=./mocks/interview.mock.go -package=repomocks -typed=true InterviewRepository
type InterviewRepository interface {
	FindOrCreateChat(ctx context.Context, externalID string) (domain.Chat, error)
	FindChatByID(ctx context.Context, id int64) (domain.Chat, error)
	DeleteChat(ctx context.Context, id int64) error

	CreateCandidate(ctx context.Context, c domain.Candidate) (int64, error)
	FindCandidateByID(ctx context.Context, id int64) (domain.Candidate, error)

	CreateInterview(ctx context.Context, iv domain.Interview) (int64, error)
	Admit(ctx context.Context, c domain.Candidate, iv domain.Interview) (domain.Interview, error)
	// FindByAlias 带上全部题目
	FindByAlias(ctx context.Context, aliasID string) (domain.Interview, error)
	FindQuestions(ctx context.Context, interviewID int64) ([]domain.Question, error)
	SubmitAnswers(ctx context.Context, interviewID int64, answers []string) error

	FindExpired(ctx context.Context, now int64, offset, limit int) ([]domain.Interview, error)
	CloseExpired(ctx context.Context, ids []int64, now int64) (int64, error)
}

type interviewRepository struct {
	dao dao.InterviewDAO
}

func NewInterviewRepository(interviewDAO dao.InterviewDAO) InterviewRepository {
	return &interviewRepository{dao: interviewDAO}
}

func (r *interviewRepository) FindOrCreateChat(ctx context.Context, externalID string) (domain.Chat, error) {
	c, err := r.dao.FindOrCreateChat(ctx, externalID)
	if err != nil {
		return domain.Chat{}, err
	}
	return r.toChatDomain(c), nil
}

func (r *interviewRepository) FindChatByID(ctx context.Context, id int64) (domain.Chat, error) {
	c, err := r.dao.FindChatByID(ctx, id)
	if err != nil {
		return domain.Chat{}, r.convertErr(err)
	}
	return r.toChatDomain(c), nil
}

func (r *interviewRepository) DeleteChat(ctx context.Context, id int64) error {
	return r.dao.DeleteChat(ctx, id)
}

func (r *interviewRepository) CreateCandidate(ctx context.Context, c domain.Candidate) (int64, error) {
	return r.dao.CreateCandidate(ctx, r.toCandidateEntity(c))
}

func (r *interviewRepository) FindCandidateByID(ctx context.Context, id int64) (domain.Candidate, error) {
	c, err := r.dao.FindCandidateByID(ctx, id)
	if err != nil {
		return domain.Candidate{}, r.convertErr(err)
	}
	return domain.Candidate{
		ID:     c.ID,
		ChatID: c.ChatID.V,
		CV:     c.CV,
		CVName: c.CVName,
		Ctime:  time.UnixMilli(c.Ctime),
	}, nil
}

func (r *interviewRepository) CreateInterview(ctx context.Context, iv domain.Interview) (int64, error) {
	id, err := r.dao.CreateInterview(ctx, r.toInterviewEntity(iv), r.toQuestionEntities(iv.Questions))
	return id, r.convertErr(err)
}

func (r *interviewRepository) Admit(ctx context.Context, c domain.Candidate, iv domain.Interview) (domain.Interview, error) {
	cid, id, err := r.dao.Admit(ctx, r.toCandidateEntity(c), r.toInterviewEntity(iv), r.toQuestionEntities(iv.Questions))
	if err != nil {
		return domain.Interview{}, r.convertErr(err)
	}
	iv.ID = id
	iv.CandidateID = cid
	iv.ChatID = c.ChatID
	return iv, nil
}

func (r *interviewRepository) FindByAlias(ctx context.Context, aliasID string) (domain.Interview, error) {
	iv, err := r.dao.FindInterviewByAlias(ctx, aliasID)
	if err != nil {
		return domain.Interview{}, r.convertErr(err)
	}
	qs, err := r.FindQuestions(ctx, iv.ID)
	if err != nil {
		return domain.Interview{}, err
	}
	res := r.toInterviewDomain(iv)
	res.Questions = qs
	return res, nil
}

func (r *interviewRepository) FindQuestions(ctx context.Context, interviewID int64) ([]domain.Question, error) {
	qs, err := r.dao.FindQuestions(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	return slice.Map(qs, func(_ int, src dao.Question) domain.Question {
		return domain.Question{
			Idx:      src.Idx,
			Question: src.Question,
			Answer:   src.Answer.String,
			Answered: src.Answer.Valid,
		}
	}), nil
}

func (r *interviewRepository) SubmitAnswers(ctx context.Context, interviewID int64, answers []string) error {
	return r.convertErr(r.dao.SubmitAnswers(ctx, interviewID, answers))
}

func (r *interviewRepository) FindExpired(ctx context.Context, now int64, offset, limit int) ([]domain.Interview, error) {
	ivs, err := r.dao.FindExpired(ctx, now, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ivs, func(_ int, src dao.Interview) domain.Interview {
		return r.toInterviewDomain(src)
	}), nil
}

func (r *interviewRepository) CloseExpired(ctx context.Context, ids []int64, now int64) (int64, error) {
	return r.dao.CloseExpired(ctx, ids, now)
}

func (r *interviewRepository) convertErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, dao.ErrCandidateNotFound):
		return domain.ErrCandidateNotFound
	case errors.Is(err, dao.ErrStateConflict):
		return domain.ErrStateConflict
	default:
		return err
	}
}

func (r *interviewRepository) toChatDomain(c dao.Chat) domain.Chat {
	return domain.Chat{
		ID:         c.ID,
		ExternalID: c.ExternalID,
		Ctime:      time.UnixMilli(c.Ctime),
	}
}

func (r *interviewRepository) toCandidateEntity(c domain.Candidate) dao.Candidate {
	return dao.Candidate{
		ID:     c.ID,
		ChatID: sql.Null[int64]{V: c.ChatID, Valid: c.ChatID != 0},
		CV:     c.CV,
		CVName: c.CVName,
	}
}

func (r *interviewRepository) toInterviewEntity(iv domain.Interview) dao.Interview {
	return dao.Interview{
		ID:          iv.ID,
		AliasID:     iv.AliasID,
		CandidateID: iv.CandidateID,
		ChatID:      iv.ChatID,
		State:       iv.State.String(),
		ExpireAt:    iv.ExpireAt,
	}
}

func (r *interviewRepository) toQuestionEntities(qs []domain.Question) []dao.Question {
	return slice.Map(qs, func(idx int, src domain.Question) dao.Question {
		return dao.Question{
			Idx:      idx,
			Question: src.Question,
		}
	})
}

func (r *interviewRepository) toInterviewDomain(iv dao.Interview) domain.Interview {
	return domain.Interview{
		ID:          iv.ID,
		AliasID:     iv.AliasID,
		CandidateID: iv.CandidateID,
		ChatID:      iv.ChatID,
		State:       domain.State(iv.State),
		ExpireAt:    iv.ExpireAt,
		Ctime:       time.UnixMilli(iv.Ctime),
		Utime:       time.UnixMilli(iv.Utime),
	}
}
