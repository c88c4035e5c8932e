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

package mqx

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

// Producer 发送一种业务事件
type Producer[T any] interface {
	Produce(ctx context.Context, evt T) error
}

// GeneralProducer 把事件序列化成 JSON 发到固定的 topic
type GeneralProducer[T any] struct {
	producer mq.Producer
	topic    string
	// keyFunc 决定消息的 key，同一个 key 会进入同一个分区
	keyFunc func(evt T) string
}

type Option[T any] func(p *GeneralProducer[T])

func WithKeyFunc[T any](fn func(evt T) string) Option[T] {
	return func(p *GeneralProducer[T]) {
		p.keyFunc = fn
	}
}

func NewGeneralProducer[T any](q mq.MQ, topic string, opts ...Option[T]) (*GeneralProducer[T], error) {
	p, err := q.Producer(topic)
	if err != nil {
		return nil, fmt.Errorf("创建 topic=%s 的生产者失败: %w", topic, err)
	}
	res := &GeneralProducer[T]{
		producer: p,
		topic:    topic,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res, nil
}

func (p *GeneralProducer[T]) Produce(ctx context.Context, evt T) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	msg := &mq.Message{Value: data, Topic: p.topic}
	if p.keyFunc != nil {
		msg.Key = []byte(p.keyFunc(evt))
	}
	_, err = p.producer.Produce(ctx, msg)
	if err != nil {
		return fmt.Errorf("向 topic=%s 发送消息失败: %w", p.topic, err)
	}
	return nil
}
