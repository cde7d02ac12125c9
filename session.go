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

package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/keytree/avl"
)

var (
	errUnknownOperation = errors.New("unknown operation")
	errMissingKey       = errors.New("missing key")
	errEmptyTree        = errors.New("empty tree")
)

const sessionHelp = `insert KEY...     add keys (alias: add)
remove KEY...     remove keys (aliases: rm, delete)
contains KEY      report whether a key is present (alias: has)
size              number of keys
walk              keys in ascending order (alias: list)
render            sideways tree, root on the left (alias: print)
check             validate the tree invariants
min, max          smallest or largest key
stats             size, height, rotations and the AVL height bound
clear             remove every key`

// Session is one key tree together with the settings used to feed and
// display it. The shell, the explorer and the one-shot commands all work on
// a Session.
type Session struct {
	tree       *avl.Tree[string]
	order      KeyOrder
	indent     int
	generation uint64 // bumped by every mutation that changed the tree
	renders    *cache.Cache
}

// Stats summarises the shape of the tree.
type Stats struct {
	Size        int
	Height      int
	Rotations   int
	HeightBound int
}

func (s Stats) String() string {
	return fmt.Sprintf("size=%d height=%d rotations=%d bound=%d", s.Size, s.Height, s.Rotations, s.HeightBound)
}

// heightBound is the largest height an AVL tree of size keys may reach
func heightBound(size int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(size+2))))
}

func NewSession(config *Config) *Session {
	return &Session{
		tree:    avl.NewFunc(config.Keys.Order.compareFunc()),
		order:   config.Keys.Order,
		indent:  config.Render.Indent,
		renders: NewRenderCache(),
	}
}

func (s *Session) Tree() *avl.Tree[string] {
	return s.tree
}

func (s *Session) Generation() uint64 {
	return s.generation
}

func (s *Session) mutated() {
	DropRender(s.renders, s.generation)
	s.generation += 1
}

// Insert adds keys, returning how many were new and how many were already
// present.
func (s *Session) Insert(keys ...string) (inserted int, duplicates int) {
	for _, key := range s.order.cleanKeys(keys) {
		if s.tree.Insert(key) {
			inserted += 1
		} else {
			duplicates += 1
		}
	}
	if inserted > 0 {
		s.mutated()
	}
	return inserted, duplicates
}

// Remove deletes keys, returning how many were removed and how many were
// not present.
func (s *Session) Remove(keys ...string) (removed int, missing int) {
	for _, key := range s.order.cleanKeys(keys) {
		if s.tree.Remove(key) {
			removed += 1
		} else {
			missing += 1
		}
	}
	if removed > 0 {
		s.mutated()
	}
	return removed, missing
}

func (s *Session) Contains(key string) bool {
	return s.tree.Contains(s.order.normalize(key))
}

func (s *Session) Clear() {
	if s.tree.IsEmpty() {
		return
	}
	s.tree.Clear()
	s.mutated()
}

// Render returns the sideways drawing of the tree, reusing the cached text
// while the tree is unchanged.
func (s *Session) Render() string {
	if rendered, ok := GetRender(s.renders, s.generation); ok {
		return rendered
	}
	rendered := s.tree.RenderIndent(s.indent)
	CacheRender(s.renders, s.generation, rendered)
	return rendered
}

func (s *Session) Stats() Stats {
	return Stats{
		Size:        s.tree.Size(),
		Height:      s.tree.Height(),
		Rotations:   s.tree.Rotations(),
		HeightBound: heightBound(s.tree.Size()),
	}
}

// Exec runs one operation, args[0] being its name, and returns the text to
// show for it.
func (s *Session) Exec(args []string) (string, error) {
	if len(args) == 0 {
		return "", nil
	}

	op := strings.ToLower(args[0])
	keys := args[1:]

	switch op {
	case "insert", "add":
		if len(keys) == 0 {
			return "", fmt.Errorf("%s: %w", op, errMissingKey)
		}
		inserted, duplicates := s.Insert(keys...)
		return fmt.Sprintf("inserted %d, duplicate %d", inserted, duplicates), nil

	case "remove", "rm", "delete":
		if len(keys) == 0 {
			return "", fmt.Errorf("%s: %w", op, errMissingKey)
		}
		removed, missing := s.Remove(keys...)
		return fmt.Sprintf("removed %d, missing %d", removed, missing), nil

	case "contains", "has":
		if len(keys) != 1 {
			return "", fmt.Errorf("%s: %w: expected exactly one key", op, errMissingKey)
		}
		return strconv.FormatBool(s.Contains(keys[0])), nil

	case "size":
		return strconv.Itoa(s.tree.Size()), nil

	case "walk", "list":
		return strings.Join(s.tree.InOrder(), " "), nil

	case "render", "print":
		return strings.TrimSuffix(s.Render(), "\n"), nil

	case "check":
		if err := s.tree.Check(); err != nil {
			return "", err
		}
		return "ok", nil

	case "min":
		key, ok := s.tree.Min()
		if !ok {
			return "", fmt.Errorf("%s: %w", op, errEmptyTree)
		}
		return key, nil

	case "max":
		key, ok := s.tree.Max()
		if !ok {
			return "", fmt.Errorf("%s: %w", op, errEmptyTree)
		}
		return key, nil

	case "stats":
		return s.Stats().String(), nil

	case "clear":
		s.Clear()
		return "cleared", nil
	}

	return "", fmt.Errorf("%w: %q", errUnknownOperation, args[0])
}
