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

// Insert adds key to the tree. It returns false, leaving the tree untouched,
// if an equal key is already present.
func (tree *Tree[K]) Insert(key K) bool {
	root, inserted := tree.insert(tree.root, key)
	tree.root = root
	if inserted {
		tree.count += 1
	}
	return inserted
}

// insert places key below n and returns the new subtree root and whether a
// node was created
func (tree *Tree[K]) insert(n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return newLeaf(key), true
	}

	inserted := false
	c := tree.compare(key, n.key)
	switch {
	case c < 0:
		n.left, inserted = tree.insert(n.left, key)
	case c > 0:
		n.right, inserted = tree.insert(n.right, key)
	default:
		return n, false
	}

	if !inserted {
		return n, false
	}
	return tree.rebalance(n), true
}
