// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import (
	"fmt"
	"iter"
	"strings"
)

// InOrder returns the keys in ascending order.
func (tree *Tree[K]) InOrder() []K {
	keys := make([]K, 0, tree.count)
	for key := range tree.All() {
		keys = append(keys, key)
	}
	return keys
}

// All returns an iterator over the keys in ascending order.
func (tree *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		tree.root.ascend(yield)
	}
}

// Backward returns an iterator over the keys in descending order.
func (tree *Tree[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		tree.root.descend(yield)
	}
}

// ascend calls yield for each key in order; false means stop
func (n *node[K]) ascend(yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return n.left.ascend(yield) && yield(n.key) && n.right.ascend(yield)
}

func (n *node[K]) descend(yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return n.right.descend(yield) && yield(n.key) && n.left.descend(yield)
}

// String lists the keys in ascending order, each in square brackets.
func (tree *Tree[K]) String() string {
	var b strings.Builder
	for key := range tree.All() {
		fmt.Fprintf(&b, "[%v]", key)
	}
	return b.String()
}
