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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/aihr/internal/intake/internal/domain"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// Screener 消费者只关心怎么处理一次上传
type Screener interface {
	Screen(ctx context.Context, chatID, nonce int64) (domain.Summary, error)
}

type ScreeningEventConsumer struct {
	consumer mq.Consumer
	screener Screener
	logger   *elog.Component
}

func NewScreeningEventConsumer(q mq.MQ, screener Screener) (*ScreeningEventConsumer, error) {
	groupID := "intake.screening"
	consumer, err := q.Consumer(ScreeningRequestedEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &ScreeningEventConsumer{
		consumer: consumer,
		screener: screener,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("intake.screening.consumer")),
	}, nil
}

func (c *ScreeningEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费筛选事件失败", elog.FieldErr(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

func (c *ScreeningEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt ScreeningRequestedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	summary, err := c.screener.Screen(ctx, evt.ChatID, evt.Nonce)
	if err != nil {
		return fmt.Errorf("筛选失败 chatId=%d nonce=%d: %w", evt.ChatID, evt.Nonce, err)
	}
	c.logger.Info("筛选完成",
		elog.Int64("chatId", evt.ChatID),
		elog.Int64("nonce", evt.Nonce),
		elog.Int("resumes", len(summary.Results)))
	return nil
}
