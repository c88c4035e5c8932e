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

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/aihr/internal/pkg/mqx"

// TraceMQ 给生产和消费打点
type TraceMQ struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTraceMQ(q mq.MQ) *TraceMQ {
	return &TraceMQ{MQ: q, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t *TraceMQ) Producer(topic string) (mq.Producer, error) {
	p, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &traceProducer{Producer: p, topic: topic, tracer: t.tracer}, nil
}

func (t *TraceMQ) Consumer(topic, groupID string) (mq.Consumer, error) {
	c, err := t.MQ.Consumer(topic, groupID)
	if err != nil {
		return nil, err
	}
	return &traceConsumer{Consumer: c, topic: topic, groupID: groupID, tracer: t.tracer}, nil
}

type traceProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (t *traceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, m)
	defer span.End()
	res, err := t.Producer.Produce(ctx, m)
	endWith(span, err)
	return res, err
}

func (t *traceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, m)
	defer span.End()
	span.SetAttributes(attribute.Int("messaging.partition", partition))
	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	endWith(span, err)
	return res, err
}

func (t *traceProducer) start(ctx context.Context, m *mq.Message) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, t.topic+" publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.operation", "publish"),
			attribute.String("messaging.destination", t.topic),
			attribute.Int("messaging.message_length", len(m.Value)),
		))
}

// traceConsumer 只记录 Consume 这一次拉取，ConsumeChan 直接透传
type traceConsumer struct {
	mq.Consumer
	topic   string
	groupID string
	tracer  trace.Tracer
}

func (t *traceConsumer) Consume(ctx context.Context) (*mq.Message, error) {
	ctx, span := t.tracer.Start(ctx, t.topic+" receive",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.operation", "receive"),
			attribute.String("messaging.destination", t.topic),
			attribute.String("messaging.consumer_group", t.groupID),
		))
	defer span.End()
	msg, err := t.Consumer.Consume(ctx)
	if err == nil {
		span.SetAttributes(attribute.Int("messaging.message_length", len(msg.Value)))
	}
	endWith(span, err)
	return msg, err
}

func endWith(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
