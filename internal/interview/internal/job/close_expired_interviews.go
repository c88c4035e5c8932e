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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/aihr/internal/interview/internal/domain"
	"github.com/ecodeclub/aihr/internal/interview/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*CloseExpiredInterviewsJob)(nil)

// CloseExpiredInterviewsJob 把过期还没有提交的面试关闭
type CloseExpiredInterviewsJob struct {
	svc    service.InterviewService
	limit  int
	logger *elog.Component
}

func NewCloseExpiredInterviewsJob(svc service.InterviewService, limit int) *CloseExpiredInterviewsJob {
	return &CloseExpiredInterviewsJob{
		svc:    svc,
		limit:  limit,
		logger: elog.DefaultLogger.With(elog.FieldComponent("interview.job.close_expired")),
	}
}

func (c *CloseExpiredInterviewsJob) Name() string {
	return "CloseExpiredInterviewsJob"
}

func (c *CloseExpiredInterviewsJob) Run(ctx context.Context) error {
	now := time.Now().UnixMilli()
	var total int64
	for {
		// 关闭之后就查不到了，所以 offset 一直是 0
		interviews, err := c.svc.FindExpired(ctx, now, 0, c.limit)
		if err != nil {
			return fmt.Errorf("获取过期面试失败: %w", err)
		}
		ids := slice.Map(interviews, func(idx int, src domain.Interview) int64 {
			return src.ID
		})
		cnt, err := c.svc.CloseExpired(ctx, ids, now)
		if err != nil {
			return fmt.Errorf("关闭过期面试失败: %w", err)
		}
		total += cnt
		if len(interviews) < c.limit {
			break
		}
	}
	if total > 0 {
		c.logger.Info("关闭过期面试", elog.Int64("count", total))
	}
	return nil
}
