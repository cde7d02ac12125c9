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

// Check validates the tree: search order, balance, cached heights and the
// element count. Heights are recomputed from the structure rather than read
// from the cache. It returns nil for a consistent tree, otherwise an error
// wrapping one of ErrOrder, ErrImbalance, ErrHeight or ErrSize.
func (tree *Tree[K]) Check() error {
	nodes, _, err := tree.check(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if nodes != tree.count {
		return fmt.Errorf("%w: count %d, reachable nodes %d", ErrSize, tree.count, nodes)
	}
	return nil
}

// check validates the subtree at n whose keys must lie strictly between
// low and high (nil means unbounded); returns node count and real height
func (tree *Tree[K]) check(n *node[K], low, high *K) (int, int, error) {
	if n == nil {
		return 0, 0, nil
	}

	if low != nil && tree.compare(n.key, *low) <= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not greater than %v", ErrOrder, n.key, *low)
	}
	if high != nil && tree.compare(n.key, *high) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not less than %v", ErrOrder, n.key, *high)
	}

	leftNodes, leftHeight, err := tree.check(n.left, low, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rightNodes, rightHeight, err := tree.check(n.right, &n.key, high)
	if err != nil {
		return 0, 0, err
	}

	height := max(leftHeight, rightHeight) + 1
	if n.height != height {
		return 0, 0, fmt.Errorf("%w: key %v cached %d, actual %d", ErrHeight, n.key, n.height, height)
	}
	if diff := leftHeight - rightHeight; diff > maxImbalance || diff < -maxImbalance {
		return 0, 0, fmt.Errorf("%w: key %v left %d, right %d", ErrImbalance, n.key, leftHeight, rightHeight)
	}

	return leftNodes + rightNodes + 1, height, nil
}
