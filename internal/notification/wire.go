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

//go:build wireinject

package notification

import (
	"net/http"
	"time"

	"github.com/ecodeclub/aihr/internal/notification/internal/event"
	"github.com/ecodeclub/aihr/internal/notification/internal/service"
	"github.com/ecodeclub/aihr/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(q mq.MQ) (*Module, error) {
	wire.Build(
		initProducer,
		service.NewChannel,
		initReportEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

type config struct {
	Webhook event.WebhookConfig `yaml:"webhook"`
	Timeout time.Duration       `yaml:"timeout"`
}

func loadConfig() config {
	cfg := config{Timeout: 10 * time.Second}
	cfg.Webhook.MaxBytes = 4096
	cfg.Webhook.Retry.InitialInterval = time.Second
	cfg.Webhook.Retry.MaxInterval = 10 * time.Second
	cfg.Webhook.Retry.MaxRetries = 3
	if econf.Get("notification") == nil {
		return cfg
	}
	err := econf.UnmarshalKey("notification", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initProducer(q mq.MQ) (mqx.Producer[event.ReportEvent], error) {
	return mqx.NewGeneralProducer[event.ReportEvent](q, event.ReportEventName)
}

func initReportEventConsumer(q mq.MQ) (*event.ReportEventConsumer, error) {
	cfg := loadConfig()
	return event.NewReportEventConsumer(q, &cfg.Webhook, &http.Client{Timeout: cfg.Timeout})
}
