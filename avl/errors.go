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

import "errors"

// Internal consistency faults
var (
	// ErrEmptySubtree is the panic value (wrapped) raised when the minimum of
	// an empty subtree is requested. Remove only asks for the minimum of a
	// right subtree it knows to be non-empty, so seeing it means a broken tree.
	ErrEmptySubtree = errors.New("empty subtree")
)

// Invariant violations reported by Check
var (
	// ErrOrder indicates a key that is out of search order.
	ErrOrder = errors.New("search order violated")

	// ErrImbalance indicates a node whose subtree heights differ by more than one.
	ErrImbalance = errors.New("balance violated")

	// ErrHeight indicates a cached height that does not match the subtree.
	ErrHeight = errors.New("cached height mismatch")

	// ErrSize indicates that the element count disagrees with the node count.
	ErrSize = errors.New("element count mismatch")
)
