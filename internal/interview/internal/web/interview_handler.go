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
	"errors"
	"net/http"
	"time"

	"github.com/ecodeclub/aihr/internal/interview/internal/domain"
	"github.com/ecodeclub/aihr/internal/interview/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &InterviewHandler{}

// InterviewHandler 候选人使用的接口，只认 alias，不需要登录
// 直接返回 HTTP 状态码，而不是 ginx.Result
type InterviewHandler struct {
	svc    service.InterviewService
	logger *elog.Component
}

func NewInterviewHandler(svc service.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("interview.web")),
	}
}

func (h *InterviewHandler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/interviews")
	g.GET("/:aliasId/questions", h.Questions)
	g.POST("/:aliasId/answers", h.SubmitAnswers)
}

func (h *InterviewHandler) PrivateRoutes(_ *gin.Engine) {}

func (h *InterviewHandler) Questions(ctx *gin.Context) {
	iv, err := h.svc.GetByAlias(ctx.Request.Context(), ctx.Param("aliasId"))
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	if !iv.IsOpen(time.Now()) {
		h.writeError(ctx, domain.ErrStateConflict)
		return
	}
	ctx.JSON(http.StatusOK, QuestionsResp{
		Questions: slice.Map(iv.Questions, func(idx int, src domain.Question) Question {
			return Question{ID: src.Idx, Question: src.Question}
		}),
	})
}

func (h *InterviewHandler) SubmitAnswers(ctx *gin.Context) {
	var req SubmitAnswersReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResp{Error: "请求体格式错误"})
		return
	}
	err := h.svc.SubmitAnswers(ctx.Request.Context(), ctx.Param("aliasId"),
		slice.Map(req.Answers, func(idx int, src Answer) domain.Answer {
			return domain.Answer{ID: src.ID, Answer: src.Answer}
		}))
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusCreated)
}

func (h *InterviewHandler) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResp{Error: "面试不存在"})
	case errors.Is(err, domain.ErrStateConflict):
		ctx.JSON(http.StatusNotAcceptable, ErrorResp{Error: "面试已经结束"})
	case errors.Is(err, domain.ErrValidation):
		ctx.JSON(http.StatusBadRequest, ErrorResp{Error: err.Error()})
	default:
		h.logger.Error("处理面试请求失败",
			elog.String("alias", ctx.Param("aliasId")),
			elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, ErrorResp{Error: "系统错误"})
	}
}
