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
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ecodeclub/aihr/internal/matching/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

var (
	thinkRegexp   = regexp.MustCompile(`(?s)<think>.*?</think>`)
	fenceRegexp   = regexp.MustCompile("(?m)^\\s*```[a-zA-Z]*\\s*$")
	objectRegexp  = regexp.MustCompile(`(?s)\{.*\}`)
	illegalRegexp = regexp.MustCompile(`[^a-zа-яё0-9\p{Han}@+/#.\- ,;:()]+`)
	spaceRegexp   = regexp.MustCompile(`\s+`)
)

// CleanOutput 去掉推理模型的 <think> 段落和 markdown 代码块标记
func CleanOutput(raw string) string {
	res := thinkRegexp.ReplaceAllString(raw, "")
	res = fenceRegexp.ReplaceAllString(res, "")
	res = strings.ReplaceAll(res, "```", "")
	return strings.TrimSpace(res)
}

// ParseEntities 从模型输出里面解析出实体
// 先整体按照 JSON 解析，失败了再找第一个 {...} 片段
// 只保留 labels 里面的标签，字符串会变成只有一个元素的列表，数字会转成字符串
func ParseEntities(raw string, labels []string) (domain.EntityMap, error) {
	cleaned := CleanOutput(raw)
	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		fragment := objectRegexp.FindString(cleaned)
		if fragment == "" {
			return nil, fmt.Errorf("%w: 没有找到 JSON 对象", ErrParseFailure)
		}
		if err = json.Unmarshal([]byte(fragment), &obj); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
		}
	}

	res := make(domain.EntityMap, len(labels))
	for key, val := range obj {
		label := strings.ToUpper(strings.TrimSpace(key))
		if !slice.Contains(labels, label) {
			continue
		}
		items := Normalize(toStrings(val))
		if len(items) > 0 {
			res[label] = append(res[label], items...)
		}
	}
	// 大小写不同的 key 合并之后可能有重复
	for label, items := range res {
		res[label] = Normalize(items)
	}
	return res, nil
}

func toStrings(val any) []string {
	switch v := val.(type) {
	case string:
		return []string{v}
	case float64:
		return []string{strconv.FormatFloat(v, 'f', -1, 64)}
	case []any:
		res := make([]string, 0, len(v))
		for _, item := range v {
			switch iv := item.(type) {
			case string:
				res = append(res, iv)
			case float64:
				res = append(res, strconv.FormatFloat(iv, 'f', -1, 64))
			}
		}
		return res
	default:
		return nil
	}
}

// Normalize 小写，去掉非法字符，合并空白，丢弃只有一个字符的条目，保序去重
func Normalize(items []string) []string {
	res := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		s := strings.ToLower(strings.TrimSpace(item))
		s = illegalRegexp.ReplaceAllString(s, "")
		s = strings.TrimSpace(spaceRegexp.ReplaceAllString(s, " "))
		if utf8.RuneCountInString(s) <= 1 {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		res = append(res, s)
	}
	return res
}
