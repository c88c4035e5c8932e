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

package intake

import (
	"github.com/ecodeclub/aihr/internal/intake/internal/domain"
	"github.com/ecodeclub/aihr/internal/intake/internal/event"
	"github.com/ecodeclub/aihr/internal/intake/internal/service"
	"github.com/ecodeclub/aihr/internal/intake/internal/web"
)

type Handler = web.Handler
type UploadService = service.UploadService
type ScreeningService = service.ScreeningService
type ScreeningEventConsumer = event.ScreeningEventConsumer
type ScreeningRequestedEvent = event.ScreeningRequestedEvent

type Summary = domain.Summary
type ScreeningResult = domain.ScreeningResult
type Outcome = domain.Outcome
type Reason = domain.Reason

const ScreeningRequestedEventName = event.ScreeningRequestedEventName

var (
	ErrUploadNotFound = domain.ErrUploadNotFound
	ErrVacancyMissing = domain.ErrVacancyMissing
	ErrInvalidArchive = domain.ErrInvalidArchive
)
