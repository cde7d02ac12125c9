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

// a node in the tree, owned by exactly one parent slot (or the root)
type node[K any] struct {
	key    K
	height int // 1 for a leaf
	left   *node[K]
	right  *node[K]
}

func newLeaf[K any](key K) *node[K] {
	return &node[K]{key: key, height: 1}
}

// height of a nil subtree is zero
func heightOf[K any](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[K]) updateHeight() {
	n.height = max(heightOf(n.left), heightOf(n.right)) + 1
}

// left height minus right height
func (n *node[K]) balanceFactor() int {
	if n == nil {
		return 0
	}
	return heightOf(n.left) - heightOf(n.right)
}

func (n *node[K]) first() *node[K] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K]) last() *node[K] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
