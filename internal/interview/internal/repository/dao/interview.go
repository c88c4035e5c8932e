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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCandidateNotFound = errors.New("候选人不存在")
	// ErrStateConflict 条件更新没有命中，说明面试已经不是 OPEN 了，或者已经过期
	ErrStateConflict = errors.New("面试状态不是 OPEN")
)

// Chat 招聘方的会话
type Chat struct {
	ID         int64  `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	ExternalID string `gorm:"type:VARCHAR(128);NOT NULL;uniqueIndex:uniq_external_id;comment:'聊天平台上的会话标识'"`
	Ctime      int64
	Utime      int64
}

func (Chat) TableName() string {
	return "chats"
}

type Candidate struct {
	ID     int64           `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	ChatID sql.Null[int64] `gorm:"type:BIGINT;index:idx_chat_id;comment:'所属会话ID，可为空'"`
	CV     []byte          `gorm:"type:LONGBLOB;comment:'简历原始文件'"`
	CVName string          `gorm:"type:VARCHAR(255);NOT NULL;default:'';comment:'简历文件名'"`
	Ctime  int64
	Utime  int64
}

func (Candidate) TableName() string {
	return "candidates"
}

type Interview struct {
	ID          int64  `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	AliasID     string `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:uniq_alias_id;comment:'对外暴露的随机标识'"`
	CandidateID int64  `gorm:"type:BIGINT;NOT NULL;uniqueIndex:uniq_candidate_id;comment:'候选人ID'"`
	ChatID      int64  `gorm:"type:BIGINT;NOT NULL;default:0;index:idx_chat_id;comment:'所属会话ID，0 表示没有'"`
	State       string `gorm:"type:ENUM('OPEN','FINISHED','CLOSED');NOT NULL;default:'OPEN';index:idx_state_expire_at,priority:1;comment:'面试状态'"`
	ExpireAt    int64  `gorm:"type:BIGINT;NOT NULL;default:0;index:idx_state_expire_at,priority:2;comment:'过期时间，毫秒，0 表示不过期'"`
	Ctime       int64
	Utime       int64
}

func (Interview) TableName() string {
	return "interviews"
}

type Question struct {
	ID          int64          `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	InterviewID int64          `gorm:"type:BIGINT;NOT NULL;uniqueIndex:uniq_interview_idx,priority:1;comment:'所属面试ID'"`
	Idx         int            `gorm:"type:INT;NOT NULL;uniqueIndex:uniq_interview_idx,priority:2;comment:'题目顺序，从 0 开始'"`
	Question    string         `gorm:"type:TEXT;NOT NULL;comment:'题目'"`
	Answer      sql.NullString `gorm:"type:TEXT;comment:'答案，只会写一次'"`
	Ctime       int64
	Utime       int64
}

func (Question) TableName() string {
	return "questions"
}

type InterviewDAO interface {
	FindOrCreateChat(ctx context.Context, externalID string) (Chat, error)
	FindChatByID(ctx context.Context, id int64) (Chat, error)
	// DeleteChat 级联删除候选人，面试和题目
	DeleteChat(ctx context.Context, id int64) error

	CreateCandidate(ctx context.Context, c Candidate) (int64, error)
	FindCandidateByID(ctx context.Context, id int64) (Candidate, error)

	// CreateInterview 候选人不存在的时候返回 ErrCandidateNotFound，什么都不会写入
	CreateInterview(ctx context.Context, iv Interview, qs []Question) (int64, error)
	// Admit 在同一个事务里面创建候选人和面试
	Admit(ctx context.Context, c Candidate, iv Interview, qs []Question) (int64, int64, error)
	FindInterviewByAlias(ctx context.Context, aliasID string) (Interview, error)
	FindQuestions(ctx context.Context, interviewID int64) ([]Question, error)
	// SubmitAnswers answers 按照 Idx 排列，和状态迁移一起提交
	SubmitAnswers(ctx context.Context, interviewID int64, answers []string) error

	FindExpired(ctx context.Context, now int64, offset, limit int) ([]Interview, error)
	CloseExpired(ctx context.Context, ids []int64, now int64) (int64, error)
}

type GORMInterviewDAO struct {
	db *egorm.Component
}

func NewGORMInterviewDAO(db *egorm.Component) InterviewDAO {
	return &GORMInterviewDAO{db: db}
}

func (g *GORMInterviewDAO) FindOrCreateChat(ctx context.Context, externalID string) (Chat, error) {
	now := time.Now().UnixMilli()
	c := Chat{ExternalID: externalID, Ctime: now, Utime: now}
	// 并发登录的时候依赖唯一索引兜底
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoNothing: true,
	}).Create(&c).Error
	if err != nil {
		return Chat{}, err
	}
	var res Chat
	err = g.db.WithContext(ctx).Where("external_id = ?", externalID).First(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) FindChatByID(ctx context.Context, id int64) (Chat, error) {
	var res Chat
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) DeleteChat(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ivIDs []int64
		err := tx.Model(&Interview{}).Where("chat_id = ?", id).Pluck("id", &ivIDs).Error
		if err != nil {
			return err
		}
		if len(ivIDs) > 0 {
			if err = tx.Where("interview_id IN ?", ivIDs).Delete(&Question{}).Error; err != nil {
				return err
			}
			if err = tx.Where("id IN ?", ivIDs).Delete(&Interview{}).Error; err != nil {
				return err
			}
		}
		if err = tx.Where("chat_id = ?", id).Delete(&Candidate{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Chat{}).Error
	})
}

func (g *GORMInterviewDAO) CreateCandidate(ctx context.Context, c Candidate) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Create(&c).Error
	return c.ID, err
}

func (g *GORMInterviewDAO) FindCandidateByID(ctx context.Context, id int64) (Candidate, error) {
	var res Candidate
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) CreateInterview(ctx context.Context, iv Interview, qs []Question) (int64, error) {
	var id int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c Candidate
		err := tx.Where("id = ?", iv.CandidateID).First(&c).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCandidateNotFound
		}
		if err != nil {
			return err
		}
		if c.ChatID.Valid {
			iv.ChatID = c.ChatID.V
		}
		id, err = g.createInterview(tx, iv, qs)
		return err
	})
	return id, err
}

func (g *GORMInterviewDAO) Admit(ctx context.Context, c Candidate, iv Interview, qs []Question) (int64, int64, error) {
	var cid, ivID int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		c.Ctime, c.Utime = now, now
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		cid = c.ID
		iv.CandidateID = cid
		if c.ChatID.Valid {
			iv.ChatID = c.ChatID.V
		}
		var err error
		ivID, err = g.createInterview(tx, iv, qs)
		return err
	})
	return cid, ivID, err
}

func (g *GORMInterviewDAO) createInterview(tx *gorm.DB, iv Interview, qs []Question) (int64, error) {
	now := time.Now().UnixMilli()
	iv.Ctime, iv.Utime = now, now
	if err := tx.Create(&iv).Error; err != nil {
		return 0, err
	}
	if len(qs) == 0 {
		return iv.ID, nil
	}
	for i := range qs {
		qs[i].InterviewID = iv.ID
		qs[i].Idx = i
		qs[i].Ctime, qs[i].Utime = now, now
	}
	return iv.ID, tx.Create(&qs).Error
}

func (g *GORMInterviewDAO) FindInterviewByAlias(ctx context.Context, aliasID string) (Interview, error) {
	var res Interview
	err := g.db.WithContext(ctx).Where("alias_id = ?", aliasID).First(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) FindQuestions(ctx context.Context, interviewID int64) ([]Question, error) {
	var res []Question
	err := g.db.WithContext(ctx).Where("interview_id = ?", interviewID).
		Order("idx ASC").Find(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) SubmitAnswers(ctx context.Context, interviewID int64, answers []string) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先抢占状态，并发提交的时候只有一个能成功
		now := time.Now().UnixMilli()
		if err := g.markFinished(tx, interviewID, now); err != nil {
			return err
		}
		for idx, answer := range answers {
			res := tx.Model(&Question{}).
				Where("interview_id = ? AND idx = ? AND answer IS NULL", interviewID, idx).
				Updates(map[string]any{
					"answer": answer,
					"utime":  now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrStateConflict
			}
		}
		return nil
	})
}

// markFinished OPEN -> FINISHED，只在提交答案的事务里面使用
// 已经过期但是定时任务还没有关闭的面试同样不能提交
func (g *GORMInterviewDAO) markFinished(tx *gorm.DB, interviewID int64, now int64) error {
	res := tx.Model(&Interview{}).
		Where("id = ? AND state = ? AND (expire_at = 0 OR expire_at > ?)", interviewID, "OPEN", now).
		Updates(map[string]any{
			"state": "FINISHED",
			"utime": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStateConflict
	}
	return nil
}

func (g *GORMInterviewDAO) FindExpired(ctx context.Context, now int64, offset, limit int) ([]Interview, error) {
	var res []Interview
	err := g.db.WithContext(ctx).
		Where("state = ? AND expire_at > 0 AND expire_at <= ?", "OPEN", now).
		Order("expire_at ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) CloseExpired(ctx context.Context, ids []int64, now int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	// 带上状态条件，和提交答案竞争的时候只有一方生效
	res := g.db.WithContext(ctx).Model(&Interview{}).
		Where("id IN ? AND state = ? AND expire_at > 0 AND expire_at <= ?", ids, "OPEN", now).
		Updates(map[string]any{
			"state": "CLOSED",
			"utime": time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}
