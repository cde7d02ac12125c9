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

// Package avl provides a height-balanced binary search tree holding a set of
// unique keys.
//
// Every node caches the height of its subtree. Insert and Remove recurse to
// the edit point and rebalance each ancestor on the way back up, so after any
// public call the tree satisfies:
//
//   - search order: keys in a left subtree are smaller, keys in a right
//     subtree are larger than the node's key
//   - balance: the heights of the two subtrees of any node differ by at most 1
//   - the cached height of every node is 1 + the larger child height
//   - no key is stored twice
//
// Check verifies all of them independently of the cached heights.
//
// Note: a tree is not safe for concurrent use. Access it from a single
// goroutine or guard it with a mutex.
package avl
