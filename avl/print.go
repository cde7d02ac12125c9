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
	"io"
	"strings"
)

// DefaultIndent is the number of spaces per depth level used by Render.
const DefaultIndent = 4

// Line is one row of the sideways layout of a tree.
type Line[K any] struct {
	Key   K
	Depth int // 0 for the root
}

// Layout returns the rows of the sideways rendering: right subtree first,
// then the node, then the left subtree. Read from bottom to top the keys
// are in ascending order.
func (tree *Tree[K]) Layout() []Line[K] {
	lines := make([]Line[K], 0, tree.count)
	layout(tree.root, 0, &lines)
	return lines
}

func layout[K any](n *node[K], depth int, lines *[]Line[K]) {
	if n == nil {
		return
	}
	layout(n.right, depth+1, lines)
	*lines = append(*lines, Line[K]{Key: n.key, Depth: depth})
	layout(n.left, depth+1, lines)
}

// Render draws the tree sideways with DefaultIndent spaces per level.
// An empty tree renders as the empty string.
func (tree *Tree[K]) Render() string {
	return tree.RenderIndent(DefaultIndent)
}

// RenderIndent draws the tree sideways with indent spaces per level.
func (tree *Tree[K]) RenderIndent(indent int) string {
	var b strings.Builder
	_, _ = tree.writeLayout(&b, indent)
	return b.String()
}

// WriteTo writes the output of Render to w.
func (tree *Tree[K]) WriteTo(w io.Writer) (int64, error) {
	return tree.writeLayout(w, DefaultIndent)
}

func (tree *Tree[K]) writeLayout(w io.Writer, indent int) (int64, error) {
	if indent < 0 {
		indent = 0
	}
	total := int64(0)
	for _, line := range tree.Layout() {
		n, err := fmt.Fprintf(w, "%s%v\n", strings.Repeat(" ", line.Depth*indent), line.Key)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
