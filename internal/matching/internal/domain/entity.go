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

const (
	LabelSkill          = "SKILL"
	LabelSoftSkill      = "SOFT_SKILL"
	LabelTool           = "TOOL"
	LabelLanguage       = "LANGUAGE"
	LabelEducation      = "EDUCATION"
	LabelDegree         = "DEGREE"
	LabelUniversity     = "UNIVERSITY"
	LabelGradYear       = "GRAD_YEAR"
	LabelExperience     = "EXPERIENCE"
	LabelCompany        = "COMPANY"
	LabelPosition       = "POSITION"
	LabelYears          = "YEARS"
	LabelAchievement    = "ACHIEVEMENT"
	LabelPerson         = "PERSON"
	LabelLocation       = "LOCATION"
	LabelContact        = "CONTACT"
	LabelBirthdate      = "BIRTHDATE"
	LabelResponsibility = "RESPONSIBILITY"
	LabelRequirement    = "REQUIREMENT"
	LabelCondition      = "CONDITION"
)

// Labels 抽取的时候允许出现的全部标签，顺序固定
var Labels = []string{
	LabelSkill, LabelSoftSkill, LabelTool, LabelLanguage,
	LabelEducation, LabelDegree, LabelUniversity, LabelGradYear,
	LabelExperience, LabelCompany, LabelPosition, LabelYears,
	LabelAchievement, LabelPerson, LabelLocation, LabelContact,
	LabelBirthdate, LabelResponsibility, LabelRequirement, LabelCondition,
}

// EntityMap 标签 -> 归一化之后的实体列表
type EntityMap map[string][]string

func (m EntityMap) Get(label string) []string {
	if m == nil {
		return nil
	}
	return m[label]
}
