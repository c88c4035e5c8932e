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

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

const maxNode int64 = 1023

var ErrExceedNode = errors.New("node超出限制")

// +----------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp | 10 Bit NodeID | 12 Bit Sequence ID |
// +----------------------------------------------------------------------+

// Generator 并发安全，同一个 node 生成的 ID 不会重复
type Generator struct {
	node *snowflake.Node
}

// NewGenerator 多个实例部署的时候 nodeID 必须不同
func NewGenerator(nodeID int64) (*Generator, error) {
	if nodeID < 0 || nodeID > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeID)
	}
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &Generator{node: n}, nil
}

func (g *Generator) Next() int64 {
	return g.node.Generate().Int64()
}

// NodeOf 解析出生成这个 ID 的节点
func NodeOf(id int64) int64 {
	return snowflake.ID(id).Node()
}
