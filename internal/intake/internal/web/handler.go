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
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/ecodeclub/aihr/internal/intake/internal/domain"
	"github.com/ecodeclub/aihr/internal/intake/internal/errs"
	"github.com/ecodeclub/aihr/internal/intake/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var (
	_ ginx.Handler = &Handler{}

	errFileTooLarge = errors.New("文件太大")
)

// Handler 招聘方先上传岗位描述，再用返回的 nonce 上传简历压缩包
type Handler struct {
	svc service.UploadService
	// maxBytes 单个文件的大小上限
	maxBytes int64
}

func NewHandler(svc service.UploadService, maxBytes int64) *Handler {
	return &Handler{svc: svc, maxBytes: maxBytes}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/intake")
	g.POST("/vacancy", ginx.S(h.UploadVacancy))
	g.POST("/resumes", ginx.S(h.UploadResumes))
}

func (h *Handler) UploadVacancy(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	name, data, err := h.readFile(ctx)
	if err != nil {
		return errorResult(errs.InvalidFile), nil
	}
	nonce, err := h.svc.CreateVacancy(ctx, sess.Claims().Uid, name, data)
	switch {
	case errors.Is(err, domain.ErrVacancyMissing):
		return errorResult(errs.VacancyMissing), nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
		Data: VacancyResp{
			Nonce: strconv.FormatInt(nonce, 10),
			Name:  name,
		},
	}, nil
}

func (h *Handler) UploadResumes(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	nonce, err := strconv.ParseInt(ctx.PostForm("nonce"), 10, 64)
	if err != nil {
		return errorResult(errs.UploadNotFound), nil
	}
	name, data, err := h.readFile(ctx)
	if err != nil {
		return errorResult(errs.InvalidFile), nil
	}
	err = h.svc.AttachResumes(ctx, sess.Claims().Uid, nonce, name, data)
	switch {
	case errors.Is(err, domain.ErrUploadNotFound):
		return errorResult(errs.UploadNotFound), nil
	case errors.Is(err, domain.ErrInvalidArchive):
		return errorResult(errs.InvalidArchive), nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) readFile(ctx *ginx.Context) (string, []byte, error) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return "", nil, err
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return "", nil, fmt.Errorf("%w: %d", errFileTooLarge, fh.Size)
	}
	data, err := readAll(fh)
	return fh.Filename, data, err
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
