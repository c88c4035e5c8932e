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

	"github.com/ecodeclub/aihr/internal/interview/internal/domain"
	"github.com/ecodeclub/aihr/internal/interview/internal/repository"
)

//go:generate mockgen -source=./chat.go -destination=../../mocks/chat.mock.go -package=interviewmocks -typed=true ChatService
type ChatService interface {
	// FindOrCreate 按照聊天平台上的会话标识查找，不存在就创建
	FindOrCreate(ctx context.Context, externalID string) (domain.Chat, error)
	Detail(ctx context.Context, id int64) (domain.Chat, error)
	// Delete 会级联删除候选人、面试和题目
	Delete(ctx context.Context, id int64) error
}

type chatService struct {
	repo repository.InterviewRepository
}

func NewChatService(repo repository.InterviewRepository) ChatService {
	return &chatService{repo: repo}
}

func (s *chatService) FindOrCreate(ctx context.Context, externalID string) (domain.Chat, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return domain.Chat{}, fmt.Errorf("%w: 会话标识不能为空", domain.ErrValidation)
	}
	return s.repo.FindOrCreateChat(ctx, externalID)
}

func (s *chatService) Detail(ctx context.Context, id int64) (domain.Chat, error) {
	return s.repo.FindChatByID(ctx, id)
}

func (s *chatService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteChat(ctx, id)
}
