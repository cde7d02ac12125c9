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

// the largest height difference allowed between the two subtrees of a node
const maxImbalance = 1

// promote the right child of n; returns the new subtree root
func (tree *Tree[K]) rotateLeft(n *node[K]) *node[K] {
	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	n.updateHeight()
	pivot.updateHeight()

	tree.rotations += 1
	return pivot
}

// promote the left child of n; returns the new subtree root
func (tree *Tree[K]) rotateRight(n *node[K]) *node[K] {
	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	n.updateHeight()
	pivot.updateHeight()

	tree.rotations += 1
	return pivot
}

// rebalance refreshes the height of n and restores the balance invariant
// for the subtree rooted at n, assuming both children are already balanced.
// It returns the root of the (possibly rotated) subtree.
func (tree *Tree[K]) rebalance(n *node[K]) *node[K] {
	n.updateHeight()

	balance := n.balanceFactor()

	// Left-heavy
	if balance > maxImbalance {
		if n.left.balanceFactor() < 0 {
			n.left = tree.rotateLeft(n.left)
		}
		return tree.rotateRight(n)
	}

	// Right-heavy
	if balance < -maxImbalance {
		if n.right.balanceFactor() > 0 {
			n.right = tree.rotateRight(n.right)
		}
		return tree.rotateLeft(n)
	}

	return n
}
