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
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Keep rendered trees for 10 minutes; a session that keeps mutating
	// leaves old generations behind
	renderCacheExpiration = 10 * time.Minute
	// Clean up expired entries every 5 minutes
	renderCacheCleanup = 5 * time.Minute
)

// NewRenderCache creates a cache for rendered tree text keyed by session
// generation
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

func renderKey(generation uint64) string {
	return strconv.FormatUint(generation, 10)
}

func CacheRender(c *cache.Cache, generation uint64, rendered string) {
	c.Set(renderKey(generation), rendered, cache.DefaultExpiration)
}

func GetRender(c *cache.Cache, generation uint64) (string, bool) {
	val, ok := c.Get(renderKey(generation))
	if !ok {
		return "", false
	}
	return val.(string), true
}

// DropRender forgets the rendering of a generation that can no longer be
// displayed
func DropRender(c *cache.Cache, generation uint64) {
	c.Delete(renderKey(generation))
}
