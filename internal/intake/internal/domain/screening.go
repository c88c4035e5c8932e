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

package domain

import (
	"fmt"
	"strings"
)

type Outcome string

const (
	OutcomeAccepted Outcome = "ACCEPTED"
	OutcomeRejected Outcome = "REJECTED"
	// OutcomeUnscored 没法给出结论，不是拒绝
	OutcomeUnscored Outcome = "UNSCORED"
)

var Outcomes = []Outcome{OutcomeAccepted, OutcomeRejected, OutcomeUnscored}

type Reason string

const (
	ReasonNone                     Reason = ""
	ReasonLowScore                 Reason = "LOW_SCORE"
	ReasonSkillMismatch            Reason = "SKILL_MISMATCH"
	ReasonParseFailure             Reason = "PARSE_FAILURE"
	ReasonServiceUnavailable       Reason = "SERVICE_UNAVAILABLE"
	ReasonQuestionGenerationFailed Reason = "QUESTION_GENERATION_FAILED"
	ReasonEmptyResume              Reason = "EMPTY_RESUME"
	ReasonAdmissionFailed          Reason = "ADMISSION_FAILED"
)

// MatchedPair 简历和岗位里面对上的实体
type MatchedPair struct {
	Category   string
	Vacancy    string
	Resume     string
	Similarity float64
}

type ScreeningResult struct {
	ResumeName string
	Outcome    Outcome
	Reason     Reason

	HasScore bool
	Score    float64

	HasMatch   bool
	MatchScore float64
	Pairs      []MatchedPair

	// InterviewURL 只有 ACCEPTED 才有
	InterviewURL string
}

func (r ScreeningResult) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %s", r.ResumeName, r.Outcome))
	if r.Reason != ReasonNone {
		sb.WriteString(fmt.Sprintf(" (%s)", r.Reason))
	}
	if r.HasScore {
		sb.WriteString(fmt.Sprintf("\nScore: %.0f/100", r.Score))
	}
	if r.HasMatch {
		sb.WriteString(fmt.Sprintf("\nMatch: %.1f/100", r.MatchScore))
		for _, p := range r.Pairs {
			sb.WriteString(fmt.Sprintf("\n  %s: %s ~ %s (%.2f)", p.Category, p.Vacancy, p.Resume, p.Similarity))
		}
	}
	if r.InterviewURL != "" {
		sb.WriteString("\nInterview: ")
		sb.WriteString(r.InterviewURL)
	}
	return sb.String()
}

type Summary struct {
	VacancyName string
	Results     []ScreeningResult
}

func (s Summary) Count(outcome Outcome) int {
	cnt := 0
	for _, r := range s.Results {
		if r.Outcome == outcome {
			cnt++
		}
	}
	return cnt
}

func (s Summary) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Screening for %s finished, %d resumes processed.", s.VacancyName, len(s.Results)))
	for _, o := range Outcomes {
		sb.WriteString(fmt.Sprintf("\n%s: %d", o, s.Count(o)))
	}
	return sb.String()
}
