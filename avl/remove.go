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

import "fmt"

// Remove deletes key from the tree. It returns false, leaving the tree
// untouched, if the key is not present.
func (tree *Tree[K]) Remove(key K) bool {
	root, removed := tree.remove(tree.root, key)
	tree.root = root
	if removed {
		tree.count -= 1
	}
	return removed
}

// remove deletes key from the subtree rooted at n and returns the new
// subtree root and whether a node was unlinked. When nothing is removed no
// node along the search path is modified.
func (tree *Tree[K]) remove(n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return nil, false
	}

	removed := false
	c := tree.compare(key, n.key)
	switch {
	case c < 0:
		n.left, removed = tree.remove(n.left, key)
	case c > 0:
		n.right, removed = tree.remove(n.right, key)
	default:
		// Leaf or single child: splice the child (possibly nil) into the slot
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}

		// Two children: take over the in-order successor's key and unlink
		// the successor, which has no left child
		successor := tree.findMin(n.right)
		n.key = successor.key
		n.right = tree.removeMin(n.right)
		removed = true
	}

	if !removed {
		return n, false
	}
	return tree.rebalance(n), true
}

// findMin returns the leftmost node of a non-empty subtree.
func (tree *Tree[K]) findMin(n *node[K]) *node[K] {
	if n == nil {
		panic(fmt.Errorf("avl: find minimum: %w", ErrEmptySubtree))
	}
	return n.first()
}

// removeMin unlinks the leftmost node of a non-empty subtree and returns the
// rebalanced subtree root
func (tree *Tree[K]) removeMin(n *node[K]) *node[K] {
	if n == nil {
		panic(fmt.Errorf("avl: remove minimum: %w", ErrEmptySubtree))
	}
	if n.left == nil {
		return n.right
	}
	n.left = tree.removeMin(n.left)
	return tree.rebalance(n)
}
