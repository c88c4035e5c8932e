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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsBuilder 统计 HTTP 请求的耗时、次数和正在处理的请求数
type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
	inflight   prometheus.Gauge
}

// NewMetricsBuilder server 用来区分同一个进程里面的多个 gin server
func NewMetricsBuilder(namespace, server string) *MetricsBuilder {
	labels := []string{"method", "path", "status_code"}
	constLabels := prometheus.Labels{"server": server}
	return &MetricsBuilder{
		summaryVec: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		}, labels),
		counterVec: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, labels),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "http_requests_inflight",
			Help:        "HTTP requests being served",
			ConstLabels: constLabels,
		}),
	}
}

// Register 重复注册会返回错误
func (b *MetricsBuilder) Register(registerer prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{b.summaryVec, b.counterVec, b.inflight} {
		if err := registerer.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		b.inflight.Inc()
		defer b.inflight.Dec()

		ctx.Next()

		// 没有匹配到路由的时候用原始路径会导致标签爆炸
		path := ctx.FullPath()
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		method := ctx.Request.Method
		b.summaryVec.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		b.counterVec.WithLabelValues(method, path, status).Inc()
	}
}
