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

package avl_test

import (
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/keytree/avl"
)

// heightBound is the worst-case AVL height for a tree of size keys
func heightBound(size int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(size+2))))
}

func TestTreeOperations(t *testing.T) {
	testCases := []struct {
		name     string
		insert   []int
		remove   []int
		expected []int
	}{
		{
			name:     "empty",
			expected: []int{},
		},
		{
			name:     "single key",
			insert:   []int{42},
			expected: []int{42},
		},
		{
			name:     "round trip",
			insert:   []int{5, 3, 8, 1, 4, 7, 9},
			remove:   []int{3, 8},
			expected: []int{1, 4, 5, 7, 9},
		},
		{
			name:     "left-right case",
			insert:   []int{30, 10, 20},
			expected: []int{10, 20, 30},
		},
		{
			name:     "right-left case",
			insert:   []int{10, 30, 20},
			expected: []int{10, 20, 30},
		},
		{
			name:     "remove root repeatedly",
			insert:   []int{50, 25, 75, 10, 30, 60, 80, 5, 15, 27, 35},
			remove:   []int{50, 30, 27},
			expected: []int{5, 10, 15, 25, 35, 60, 75, 80},
		},
		{
			name:     "remove everything",
			insert:   []int{3, 1, 2},
			remove:   []int{1, 2, 3},
			expected: []int{},
		},
		{
			name:     "descending inserts",
			insert:   []int{9, 8, 7, 6, 5, 4, 3, 2, 1},
			remove:   []int{4},
			expected: []int{1, 2, 3, 5, 6, 7, 8, 9},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := avl.New[int]()
			for _, key := range tc.insert {
				require.True(t, tree.Insert(key), "insert %d", key)
				require.NoError(t, tree.Check(), "after insert %d", key)
			}
			for _, key := range tc.remove {
				require.True(t, tree.Remove(key), "remove %d", key)
				require.NoError(t, tree.Check(), "after remove %d", key)
			}
			assert.Equal(t, tc.expected, tree.InOrder())
			assert.Equal(t, len(tc.expected), tree.Size())
			assert.LessOrEqual(t, tree.Height(), heightBound(tree.Size()))
		})
	}
}

func TestAscendingInsertRotates(t *testing.T) {
	tree := avl.New[int]()

	tree.Insert(1)
	tree.Insert(2)
	assert.Equal(t, 0, tree.Rotations())

	tree.Insert(3)
	assert.Equal(t, 1, tree.Rotations(), "third ascending insert must rotate")

	for key := 4; key <= 7; key += 1 {
		tree.Insert(key)
		require.NoError(t, tree.Check())
		assert.LessOrEqual(t, tree.Height(), heightBound(tree.Size()))
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tree.InOrder())
	assert.Equal(t, 3, tree.Height())
}

func TestDuplicateInsert(t *testing.T) {
	tree := avl.New[string]()
	for _, key := range []string{"dog", "cat", "elephant", "bird"} {
		require.True(t, tree.Insert(key))
	}

	before := tree.InOrder()
	rotations := tree.Rotations()

	assert.False(t, tree.Insert("cat"))
	assert.False(t, tree.Insert("bird"))

	assert.Equal(t, before, tree.InOrder())
	assert.Equal(t, 4, tree.Size())
	assert.Equal(t, rotations, tree.Rotations())
}

func TestRemoveAbsent(t *testing.T) {
	tree := avl.New[int]()
	for _, key := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(key)
	}

	layout := tree.Layout()
	rendered := tree.Render()

	for _, key := range []int{0, 2, 6, 10} {
		assert.False(t, tree.Remove(key), "remove %d", key)
	}

	assert.Equal(t, layout, tree.Layout())
	assert.Equal(t, rendered, tree.Render())
	assert.Equal(t, 7, tree.Size())

	empty := avl.New[int]()
	assert.False(t, empty.Remove(1))
	assert.Equal(t, 0, empty.Size())
}

func TestContains(t *testing.T) {
	tree := avl.New[int]()
	for _, key := range []int{10, 5, 15, 7} {
		tree.Insert(key)
	}

	for _, key := range []int{10, 5, 15, 7} {
		assert.True(t, tree.Contains(key), "contains %d", key)
	}
	for _, key := range []int{0, 6, 8, 11, 20} {
		assert.False(t, tree.Contains(key), "contains %d", key)
	}

	tree.Remove(7)
	assert.False(t, tree.Contains(7))
}

func TestMinMaxAndClear(t *testing.T) {
	tree := avl.New[int]()

	_, ok := tree.Min()
	assert.False(t, ok)
	_, ok = tree.Max()
	assert.False(t, ok)

	for _, key := range []int{4, 2, 9, -3, 6} {
		tree.Insert(key)
	}
	lowest, ok := tree.Min()
	require.True(t, ok)
	assert.Equal(t, -3, lowest)
	highest, ok := tree.Max()
	require.True(t, ok)
	assert.Equal(t, 9, highest)

	tree.Clear()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, 0, tree.Height())
	assert.Equal(t, 0, tree.Rotations())
	assert.NoError(t, tree.Check())

	assert.True(t, tree.Insert(1))
	assert.Equal(t, []int{1}, tree.InOrder())
}

func TestIterators(t *testing.T) {
	tree := avl.New[int]()
	for _, key := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(key)
	}

	var forward []int
	for key := range tree.All() {
		forward = append(forward, key)
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, forward)

	var backward []int
	for key := range tree.Backward() {
		backward = append(backward, key)
	}
	assert.Equal(t, []int{9, 8, 7, 5, 4, 3, 1}, backward)

	// stopping early must not visit further keys
	var head []int
	for key := range tree.All() {
		if key > 4 {
			break
		}
		head = append(head, key)
	}
	assert.Equal(t, []int{1, 3, 4}, head)

	// restartable
	assert.Equal(t, forward, slices.Collect(tree.All()))
}

func TestCustomOrdering(t *testing.T) {
	descending := func(a, b string) int {
		return strings.Compare(b, a)
	}
	tree := avl.NewFunc(descending)
	for _, key := range []string{"banana", "apple", "cherry"} {
		tree.Insert(key)
	}

	require.NoError(t, tree.Check())
	assert.Equal(t, []string{"cherry", "banana", "apple"}, tree.InOrder())
	assert.True(t, tree.Contains("apple"))

	assert.Panics(t, func() {
		avl.NewFunc[string](nil)
	})
}

func TestStringAndRender(t *testing.T) {
	tree := avl.New[int]()
	assert.Equal(t, "", tree.String())
	assert.Equal(t, "", tree.Render())

	for _, key := range []int{1, 2, 3} {
		tree.Insert(key)
	}
	assert.Equal(t, "[1][2][3]", tree.String())
	assert.Equal(t, "    3\n2\n    1\n", tree.Render())
	assert.Equal(t, "  3\n2\n  1\n", tree.RenderIndent(2))

	var b strings.Builder
	n, err := tree.WriteTo(&b)
	require.NoError(t, err)
	assert.Equal(t, int64(len(tree.Render())), n)
	assert.Equal(t, tree.Render(), b.String())
}

// reading the render bottom-to-top must give ascending keys
func TestRenderOrder(t *testing.T) {
	tree := avl.New[int]()
	for _, key := range []int{50, 20, 80, 10, 30, 70, 90, 25, 35} {
		tree.Insert(key)
	}

	lines := strings.Split(strings.TrimRight(tree.Render(), "\n"), "\n")
	slices.Reverse(lines)
	keys := make([]string, 0, len(lines))
	for _, line := range lines {
		keys = append(keys, strings.TrimSpace(line))
	}
	assert.Equal(t, []string{"10", "20", "25", "30", "35", "50", "70", "80", "90"}, keys)

	layout := tree.Layout()
	require.Len(t, layout, 9)
	for _, line := range layout {
		if line.Depth == 0 {
			assert.Equal(t, 50, line.Key)
		}
	}
}

// random workload checked against a map model after every operation
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewPCG(20251018, 1))
	tree := avl.New[int]()
	model := make(map[int]struct{})

	for i := 0; i < 5000; i += 1 {
		key := rng.IntN(500)
		_, present := model[key]

		if rng.IntN(10) < 6 {
			inserted := tree.Insert(key)
			require.Equal(t, !present, inserted, "step %d insert %d", i, key)
			model[key] = struct{}{}
		} else {
			removed := tree.Remove(key)
			require.Equal(t, present, removed, "step %d remove %d", i, key)
			delete(model, key)
		}

		require.NoError(t, tree.Check(), "step %d", i)
		require.Equal(t, len(model), tree.Size(), "step %d", i)
		require.LessOrEqual(t, tree.Height(), heightBound(tree.Size()), "step %d", i)
	}

	expected := make([]int, 0, len(model))
	for key := range model {
		expected = append(expected, key)
	}
	slices.Sort(expected)
	assert.Equal(t, expected, tree.InOrder())

	for _, key := range expected {
		require.True(t, tree.Remove(key))
	}
	assert.True(t, tree.IsEmpty())
	assert.NoError(t, tree.Check())
}
