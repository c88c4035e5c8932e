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

package intake

import (
	"fmt"
	"time"

	"github.com/ecodeclub/aihr/internal/intake/internal/event"
	"github.com/ecodeclub/aihr/internal/intake/internal/repository"
	"github.com/ecodeclub/aihr/internal/intake/internal/repository/cache"
	"github.com/ecodeclub/aihr/internal/intake/internal/service"
	"github.com/ecodeclub/aihr/internal/intake/internal/web"
	"github.com/ecodeclub/aihr/internal/interview"
	"github.com/ecodeclub/aihr/internal/matching"
	"github.com/ecodeclub/aihr/internal/notification"
	"github.com/ecodeclub/aihr/internal/pkg/mqx"
	"github.com/ecodeclub/aihr/internal/pkg/snowflake"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitModule(ec ecache.Cache,
	q mq.MQ,
	matchingModule *matching.Module,
	interviewModule *interview.Module,
	notificationModule *notification.Module) (*Module, error) {
	wire.Build(
		cache.NewUploadECache,
		repository.NewUploadRepository,
		initDecoder,
		initNonceGenerator,
		initProducer,
		initUploadService,
		initScreeningService,
		initScreeningEventConsumer,
		initHandler,
		wire.FieldsOf(new(*notification.Module), "Channel"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

type config struct {
	// TTL 岗位上传之后，等待简历的最长时间
	TTL            time.Duration `yaml:"ttl"`
	MaxUploadBytes int64         `yaml:"maxUploadBytes"`
	// MaxResumes 一个压缩包里面最多筛选多少份简历
	MaxResumes int `yaml:"maxResumes"`
	// MaxUnzipBytes 简历压缩包解压之后的总大小上限
	MaxUnzipBytes int64 `yaml:"maxUnzipBytes"`
	NodeID        int64 `yaml:"nodeId"`
	// UnipdfKey unidoc 的 metered key，为空的时候 PDF 简历解析不出文本
	UnipdfKey string `yaml:"unipdfKey"`
}

func loadConfig() config {
	cfg := config{
		TTL:            30 * time.Minute,
		MaxUploadBytes: 20 << 20,
		MaxResumes:     200,
		MaxUnzipBytes:  200 << 20,
	}
	if econf.Get("intake") == nil {
		return cfg
	}
	err := econf.UnmarshalKey("intake", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func loadScreeningConfig() service.ScreeningConfig {
	cfg := service.ScreeningConfig{
		Concurrency:   4,
		MinMatchScore: 50,
		ResumeTimeout: 5 * time.Minute,
		PublicBaseURL: "http://localhost:8080",
	}
	if econf.Get("screening") == nil {
		return cfg
	}
	err := econf.UnmarshalKey("screening", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initDecoder() (service.Decoder, error) {
	cfg := loadConfig()
	if cfg.UnipdfKey == "" {
		elog.DefaultLogger.Warn("没有配置 intake.unipdfKey，PDF 简历无法提取文本")
	} else if err := service.SetPDFLicense(cfg.UnipdfKey); err != nil {
		return nil, fmt.Errorf("设置 unipdf license 失败: %w", err)
	}
	return service.NewDecoder(cfg.MaxResumes, cfg.MaxUnzipBytes), nil
}

func initNonceGenerator() (service.NonceGenerator, error) {
	g, err := snowflake.NewGenerator(loadConfig().NodeID)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func initProducer(q mq.MQ) (mqx.Producer[event.ScreeningRequestedEvent], error) {
	return mqx.NewGeneralProducer[event.ScreeningRequestedEvent](q, event.ScreeningRequestedEventName)
}

func initUploadService(repo repository.UploadRepository,
	decoder service.Decoder,
	nonce service.NonceGenerator,
	producer mqx.Producer[event.ScreeningRequestedEvent]) service.UploadService {
	return service.NewUploadService(repo, decoder, nonce, producer, loadConfig().TTL)
}

func initScreeningService(repo repository.UploadRepository,
	decoder service.Decoder,
	matchingModule *matching.Module,
	interviewModule *interview.Module,
	channel notification.Channel) service.ScreeningService {
	return service.NewScreeningService(repo, decoder, matchingModule, interviewModule, channel, loadScreeningConfig())
}

func initScreeningEventConsumer(q mq.MQ, svc service.ScreeningService) (*event.ScreeningEventConsumer, error) {
	return event.NewScreeningEventConsumer(q, svc)
}

func initHandler(svc service.UploadService) *web.Handler {
	return web.NewHandler(svc, loadConfig().MaxUploadBytes)
}
