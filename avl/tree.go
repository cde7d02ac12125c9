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

import "cmp"

// Tree is an AVL tree over a set of keys of type K.
//
// The zero value is not usable; create trees with New or NewFunc.
type Tree[K any] struct {
	root      *node[K]
	count     int
	compare   func(a, b K) int
	rotations int
}

// New returns an empty tree ordered by the natural ordering of K.
func New[K cmp.Ordered]() *Tree[K] {
	return NewFunc[K](cmp.Compare[K])
}

// NewFunc returns an empty tree ordered by compare, which must be a total
// order returning a negative number when a < b, zero when a == b and a
// positive number when a > b.
func NewFunc[K any](compare func(a, b K) int) *Tree[K] {
	if compare == nil {
		panic("avl: nil compare function")
	}
	return &Tree[K]{compare: compare}
}

// Size returns the number of keys in the tree.
func (tree *Tree[K]) Size() int {
	return tree.count
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the height of the tree, zero when it is empty.
func (tree *Tree[K]) Height() int {
	return heightOf(tree.root)
}

// Rotations returns the number of single rotations performed since the tree
// was created or last cleared. A double rotation counts as two.
func (tree *Tree[K]) Rotations() int {
	return tree.rotations
}

// Contains reports whether key is in the tree.
func (tree *Tree[K]) Contains(key K) bool {
	n := tree.root
	for n != nil {
		c := tree.compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest key, or false if the tree is empty.
func (tree *Tree[K]) Min() (K, bool) {
	n := tree.root.first()
	if n == nil {
		var zero K
		return zero, false
	}
	return n.key, true
}

// Max returns the largest key, or false if the tree is empty.
func (tree *Tree[K]) Max() (K, bool) {
	n := tree.root.last()
	if n == nil {
		var zero K
		return zero, false
	}
	return n.key, true
}

// Clear removes every key. The tree can be reused afterwards.
func (tree *Tree[K]) Clear() {
	tree.root = nil
	tree.count = 0
	tree.rotations = 0
}
