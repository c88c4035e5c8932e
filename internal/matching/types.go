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

package matching

import (
	"github.com/ecodeclub/aihr/internal/matching/internal/domain"
	"github.com/ecodeclub/aihr/internal/matching/internal/service"
)

type EntityExtractor = service.EntityExtractor
type MatchEngine = service.MatchEngine
type ScoreGate = service.ScoreGate

type EntityMap = domain.EntityMap
type MatchOptions = domain.MatchOptions
type MatchResult = domain.MatchResult
type CategoryResult = domain.CategoryResult
type Pair = domain.Pair
type Weights = domain.Weights
type ScoreResult = domain.ScoreResult

var (
	ErrParseFailure   = service.ErrParseFailure
	ErrInvalidWeights = domain.ErrInvalidWeights
)
