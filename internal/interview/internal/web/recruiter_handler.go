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

package web

import (
	"crypto/subtle"
	"errors"

	"github.com/ecodeclub/aihr/internal/interview/internal/domain"
	"github.com/ecodeclub/aihr/internal/interview/internal/errs"
	"github.com/ecodeclub/aihr/internal/interview/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &RecruiterHandler{}

// RecruiterHandler 招聘方管理自己的会话，候选人和面试
// 登录之后 session 里面的 uid 就是会话的内部 ID
type RecruiterHandler struct {
	chatSvc      service.ChatService
	interviewSvc service.InterviewService
	accessToken  string
}

func NewRecruiterHandler(chatSvc service.ChatService,
	interviewSvc service.InterviewService, accessToken string) *RecruiterHandler {
	return &RecruiterHandler{
		chatSvc:      chatSvc,
		interviewSvc: interviewSvc,
		accessToken:  accessToken,
	}
}

func (h *RecruiterHandler) PublicRoutes(server *gin.Engine) {
	server.POST("/recruiters/login", ginx.B[LoginReq](h.Login))
}

func (h *RecruiterHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/chats/detail", ginx.S(h.ChatDetail))
	server.POST("/chats/delete", ginx.S(h.DeleteChat))
	server.POST("/candidates/detail", ginx.BS[CandidateDetailReq](h.CandidateDetail))
	server.POST("/interviews/detail", ginx.BS[InterviewDetailReq](h.InterviewDetail))
}

func (h *RecruiterHandler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	// 没有配置 token 的时候不允许任何人登录
	if h.accessToken == "" ||
		subtle.ConstantTimeCompare([]byte(h.accessToken), []byte(req.Token)) != 1 {
		return errorResult(errs.InvalidToken), nil
	}
	chat, err := h.chatSvc.FindOrCreate(ctx, req.ChatID)
	if errors.Is(err, domain.ErrValidation) {
		return errorResult(errs.ChatNotFound), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, chat.ID).
		SetJwtData(map[string]string{"chat": chat.ExternalID}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg:  "OK",
		Data: h.toChatVO(chat),
	}, nil
}

func (h *RecruiterHandler) ChatDetail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	chat, err := h.chatSvc.Detail(ctx, sess.Claims().Uid)
	if errors.Is(err, domain.ErrNotFound) {
		return errorResult(errs.ChatNotFound), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toChatVO(chat)}, nil
}

func (h *RecruiterHandler) DeleteChat(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	// 会话删除之后，这个 session 再访问只会得到会话不存在
	err := h.chatSvc.Delete(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *RecruiterHandler) CandidateDetail(ctx *ginx.Context,
	req CandidateDetailReq, sess session.Session) (ginx.Result, error) {
	c, err := h.interviewSvc.GetCandidate(ctx, req.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return errorResult(errs.CandidateNotFound), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	if c.ChatID != sess.Claims().Uid {
		return errorResult(errs.PermissionDenied), nil
	}
	return ginx.Result{
		Data: Candidate{
			ID:     c.ID,
			CVName: c.CVName,
			CVSize: len(c.CV),
			Ctime:  c.Ctime.UnixMilli(),
		},
	}, nil
}

func (h *RecruiterHandler) InterviewDetail(ctx *ginx.Context,
	req InterviewDetailReq, sess session.Session) (ginx.Result, error) {
	iv, err := h.interviewSvc.GetByAlias(ctx, req.AliasID)
	if errors.Is(err, domain.ErrNotFound) {
		return errorResult(errs.InterviewNotFound), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	if iv.ChatID != sess.Claims().Uid {
		return errorResult(errs.PermissionDenied), nil
	}
	return ginx.Result{
		Data: Interview{
			AliasID:  iv.AliasID,
			State:    iv.State.String(),
			ExpireAt: iv.ExpireAt,
			Questions: slice.Map(iv.Questions, func(idx int, src domain.Question) InterviewQuestion {
				return InterviewQuestion{
					ID:       src.Idx,
					Question: src.Question,
					Answer:   src.Answer,
					Answered: src.Answered,
				}
			}),
			Ctime: iv.Ctime.UnixMilli(),
			Utime: iv.Utime.UnixMilli(),
		},
	}, nil
}

func (h *RecruiterHandler) toChatVO(chat domain.Chat) Chat {
	return Chat{
		ID:         chat.ID,
		ExternalID: chat.ExternalID,
		Ctime:      chat.Ctime.UnixMilli(),
	}
}
