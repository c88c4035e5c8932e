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

package ioc

import (
	"net/http"

	"github.com/ecodeclub/aihr/internal/interview"
	"github.com/ecodeclub/aihr/internal/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

// initGinxServer 候选人访问的公开接口，只认面试的 alias
func initGinxServer(hdl *interview.Handler) *egin.Component {
	res := egin.Load("server.web").Build()
	res.Use(metricsMiddleware("web"))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	hdl.PublicRoutes(res.Engine)
	return res
}

func metricsMiddleware(server string) gin.HandlerFunc {
	builder := middleware.NewMetricsBuilder("aihr", server)
	err := builder.Register(prometheus.DefaultRegisterer)
	if err != nil {
		panic(err)
	}
	return builder.Build()
}
