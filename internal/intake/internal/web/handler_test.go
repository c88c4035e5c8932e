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
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/ecodeclub/aihr/internal/intake/internal/domain"
	"github.com/ecodeclub/aihr/internal/intake/internal/errs"
	"github.com/ecodeclub/aihr/internal/intake/internal/service"
	intakemocks "github.com/ecodeclub/aihr/internal/intake/mocks"
	"github.com/ecodeclub/aihr/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uid = int64(3)

func newServer(svc service.UploadService, maxBytes int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(test.LoginAs(uid))
	NewHandler(svc, maxBytes).PrivateRoutes(server)
	return server
}

func newUploadRequest(t *testing.T, path, filename string, data []byte, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req, err := http.NewRequest(http.MethodPost, path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHandler_UploadVacancy(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.UploadService
		filename string
		data     []byte
		want     test.Result[VacancyResp]
	}{
		{
			name: "上传成功",
			mock: func(ctrl *gomock.Controller) service.UploadService {
				svc := intakemocks.NewMockUploadService(ctrl)
				svc.EXPECT().CreateVacancy(gomock.Any(), uid, "backend.txt", []byte("Go developer")).
					Return(int64(1848652336441069568), nil)
				return svc
			},
			filename: "backend.txt",
			data:     []byte("Go developer"),
			want: test.Result[VacancyResp]{
				Msg:  "OK",
				Data: VacancyResp{Nonce: "1848652336441069568", Name: "backend.txt"},
			},
		},
		{
			name: "没有文件",
			mock: func(ctrl *gomock.Controller) service.UploadService {
				return intakemocks.NewMockUploadService(ctrl)
			},
			want: test.Result[VacancyResp]{Code: errs.InvalidFile.Code, Msg: errs.InvalidFile.Msg},
		},
		{
			name: "文件太大",
			mock: func(ctrl *gomock.Controller) service.UploadService {
				return intakemocks.NewMockUploadService(ctrl)
			},
			filename: "backend.txt",
			data:     bytes.Repeat([]byte("a"), 2048),
			want:     test.Result[VacancyResp]{Code: errs.InvalidFile.Code, Msg: errs.InvalidFile.Msg},
		},
		{
			name: "岗位描述为空",
			mock: func(ctrl *gomock.Controller) service.UploadService {
				svc := intakemocks.NewMockUploadService(ctrl)
				svc.EXPECT().CreateVacancy(gomock.Any(), uid, "backend.pdf", gomock.Any()).
					Return(int64(0), domain.ErrVacancyMissing)
				return svc
			},
			filename: "backend.pdf",
			data:     []byte("broken"),
			want:     test.Result[VacancyResp]{Code: errs.VacancyMissing.Code, Msg: errs.VacancyMissing.Msg},
		},
		{
			name: "系统错误",
			mock: func(ctrl *gomock.Controller) service.UploadService {
				svc := intakemocks.NewMockUploadService(ctrl)
				svc.EXPECT().CreateVacancy(gomock.Any(), uid, "backend.txt", gomock.Any()).
					Return(int64(0), errors.New("redis 错误"))
				return svc
			},
			filename: "backend.txt",
			data:     []byte("Go developer"),
			want:     test.Result[VacancyResp]{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl), 1024)
			req := newUploadRequest(t, "/intake/vacancy", tc.filename, tc.data, nil)
			recorder := test.NewJSONResponseRecorder[VacancyResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.want, recorder.MustScan())
		})
	}
}

func TestHandler_UploadResumes(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		mock   func(ctrl *gomock.Controller) service.UploadService
		fields map[string]string
		want   test.Result[any]
	}{
		{
			name: "上传成功",
			mock: func(ctrl *gomock.Controller) service.UploadService {
				svc := intakemocks.NewMockUploadService(ctrl)
				svc.EXPECT().AttachResumes(gomock.Any(), uid, int64(42), "resumes.zip", []byte("zip")).Return(nil)
				return svc
			},
			fields: map[string]string{"nonce": "42"},
			want:   test.Result[any]{Msg: "OK"},
		},
		{
			name: "nonce 格式错误",
			mock: func(ctrl *gomock.Controller) service.UploadService {
				return intakemocks.NewMockUploadService(ctrl)
			},
			fields: map[string]string{"nonce": "abc"},
			want:   test.Result[any]{Code: errs.UploadNotFound.Code, Msg: errs.UploadNotFound.Msg},
		},
		{
			name: "还没有上传岗位",
			mock: func(ctrl *gomock.Controller) service.UploadService {
				svc := intakemocks.NewMockUploadService(ctrl)
				svc.EXPECT().AttachResumes(gomock.Any(), uid, int64(42), "resumes.zip", gomock.Any()).
					Return(domain.ErrUploadNotFound)
				return svc
			},
			fields: map[string]string{"nonce": "42"},
			want:   test.Result[any]{Code: errs.UploadNotFound.Code, Msg: "Upload the vacancy first"},
		},
		{
			name: "不是压缩包",
			mock: func(ctrl *gomock.Controller) service.UploadService {
				svc := intakemocks.NewMockUploadService(ctrl)
				svc.EXPECT().AttachResumes(gomock.Any(), uid, int64(42), "resumes.zip", gomock.Any()).
					Return(domain.ErrInvalidArchive)
				return svc
			},
			fields: map[string]string{"nonce": "42"},
			want:   test.Result[any]{Code: errs.InvalidArchive.Code, Msg: errs.InvalidArchive.Msg},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl), 1024)
			req := newUploadRequest(t, "/intake/resumes", "resumes.zip", []byte("zip"), tc.fields)
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.want, recorder.MustScan())
		})
	}
}
