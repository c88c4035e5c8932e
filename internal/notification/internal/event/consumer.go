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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

var ErrUnknownRecipient = errors.New("没有配置接收方的 webhook")

type WebhookConfig struct {
	// Webhooks 接收方 -> webhook 地址
	Webhooks map[string]string `yaml:"webhooks"`
	// DefaultWebhook 没有单独配置的接收方使用它，%s 会被替换成接收方
	DefaultWebhook string `yaml:"defaultWebhook"`
	// MaxBytes 消息体里面 text 的最大字节数
	MaxBytes int `yaml:"maxBytes"`
	Retry    struct {
		InitialInterval time.Duration `yaml:"initialInterval"`
		MaxInterval     time.Duration `yaml:"maxInterval"`
		MaxRetries      int32         `yaml:"maxRetries"`
	} `yaml:"retry"`
}

func (c *WebhookConfig) URLOf(recipient string) (string, bool) {
	if u, ok := c.Webhooks[recipient]; ok {
		return u, true
	}
	if c.DefaultWebhook == "" {
		return "", false
	}
	if strings.Contains(c.DefaultWebhook, "%s") {
		return fmt.Sprintf(c.DefaultWebhook, recipient), true
	}
	return c.DefaultWebhook, true
}

type WebhookMessage struct {
	Recipient string `json:"recipient"`
	Text      string `json:"text"`
}

type ReportEventConsumer struct {
	consumer mq.Consumer
	config   *WebhookConfig
	client   *http.Client
	logger   *elog.Component
}

func NewReportEventConsumer(q mq.MQ, config *WebhookConfig, client *http.Client) (*ReportEventConsumer, error) {
	groupID := "notification.report"
	consumer, err := q.Consumer(ReportEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &ReportEventConsumer{
		consumer: consumer,
		config:   config,
		client:   client,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.report.consumer")),
	}, nil
}

func (c *ReportEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费报告事件失败", elog.FieldErr(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

func (c *ReportEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt ReportEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	webhookURL, ok := c.config.URLOf(evt.Recipient)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRecipient, evt.Recipient)
	}
	text := evt.Text
	if c.config.MaxBytes > 0 {
		text = truncate(text, c.config.MaxBytes)
	}
	data, err := json.Marshal(&WebhookMessage{Recipient: evt.Recipient, Text: text})
	if err != nil {
		return fmt.Errorf("序列化消息失败: %w", err)
	}
	return c.deliverWithRetry(ctx, webhookURL, data)
}

func (c *ReportEventConsumer) deliverWithRetry(ctx context.Context, webhookURL string, data []byte) error {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(
		c.config.Retry.InitialInterval,
		c.config.Retry.MaxInterval,
		c.config.Retry.MaxRetries)
	if err != nil {
		return fmt.Errorf("创建重试策略失败: %w", err)
	}
	for {
		err = c.deliver(ctx, webhookURL, data)
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("超过最大重试次数: %w", err)
		}
		c.logger.Warn("发送报告失败，准备重试", elog.FieldErr(err), elog.String("next", next.String()))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(next):
		}
	}
}

func (c *ReportEventConsumer) deliver(ctx context.Context, webhookURL string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("构造请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("发送请求失败: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook 处理请求失败: %s", http.StatusText(resp.StatusCode))
	}
	return nil
}

// truncate 按照字节截断，但是不会截断在一个字符的中间
func truncate(content string, limit int) string {
	if limit < 0 {
		panic("limit 不能为负数")
	}
	if len(content) <= limit {
		return content
	}
	for limit > 0 && !utf8.RuneStart(content[limit]) {
		limit--
	}
	return content[:limit]
}
