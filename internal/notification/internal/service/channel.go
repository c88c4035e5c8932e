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
	"errors"
	"strings"

	"github.com/ecodeclub/aihr/internal/notification/internal/event"
	"github.com/ecodeclub/aihr/internal/pkg/mqx"
)

var ErrEmptyRecipient = errors.New("接收方不能为空")

// Channel 给招聘方发送文本消息
// 发送是异步的，返回 nil 只代表消息已经投递到了消息队列
//
//go:generate mockgen -source=./channel.go -destination=../../mocks/channel.mock.go -package=notificationmocks -typed=true Channel
type Channel interface {
	Send(ctx context.Context, recipient, text string) error
}

type mqChannel struct {
	producer mqx.Producer[event.ReportEvent]
}

func NewChannel(producer mqx.Producer[event.ReportEvent]) Channel {
	return &mqChannel{producer: producer}
}

func (c *mqChannel) Send(ctx context.Context, recipient, text string) error {
	if strings.TrimSpace(recipient) == "" {
		return ErrEmptyRecipient
	}
	return c.producer.Produce(ctx, event.ReportEvent{
		Recipient: recipient,
		Text:      text,
	})
}
