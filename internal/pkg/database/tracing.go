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

package database

import (
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/aihr/internal/pkg/database"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 给 gorm 的每一类操作打点
type GormTracingPlugin struct {
	tracer trace.Tracer
	// system 数据库类型，例如 mysql
	system string
}

func NewGormTracingPlugin(system string) *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
		system: system,
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

type register interface {
	Register(name string, fn func(*gorm.DB)) error
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	ops := []struct {
		operation string
		before    register
		after     register
	}{
		{operation: "SELECT", before: cb.Query().Before("gorm:query"), after: cb.Query().After("gorm:query")},
		{operation: "INSERT", before: cb.Create().Before("gorm:create"), after: cb.Create().After("gorm:create")},
		{operation: "UPDATE", before: cb.Update().Before("gorm:update"), after: cb.Update().After("gorm:update")},
		{operation: "DELETE", before: cb.Delete().Before("gorm:delete"), after: cb.Delete().After("gorm:delete")},
		{operation: "RAW", before: cb.Raw().Before("gorm:raw"), after: cb.Raw().After("gorm:raw")},
		{operation: "ROW", before: cb.Row().Before("gorm:row"), after: cb.Row().After("gorm:row")},
	}
	for _, op := range ops {
		name := strings.ToLower(op.operation)
		if err := op.before.Register("tracing:before_"+name, p.before(op.operation)); err != nil {
			return err
		}
		if err := op.after.Register("tracing:after_"+name, p.after); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(operation string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		ctx, span := p.tracer.Start(db.Statement.Context, db.Statement.Table+" "+operation,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("db.system", p.system),
				attribute.String("db.operation", operation),
			))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	val, ok := db.InstanceGet(spanKey)
	if !ok {
		return
	}
	span, ok := val.(trace.Span)
	if !ok {
		return
	}
	defer span.End()

	attrs := []attribute.KeyValue{
		attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
	}
	if table := tableOf(db); table != "" {
		attrs = append(attrs, attribute.String("db.table", table))
	}
	if sql := db.Statement.SQL.String(); sql != "" {
		attrs = append(attrs, attribute.String("db.statement", sql))
	}
	span.SetAttributes(attrs...)

	// 查不到数据不算错误
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.RecordError(db.Error)
		span.SetStatus(codes.Error, db.Error.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

func tableOf(db *gorm.DB) string {
	if db.Statement.Schema != nil {
		return db.Statement.Schema.Table
	}
	return db.Statement.Table
}
