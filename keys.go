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
	"cmp"
	"strconv"
	"strings"
)

// KeyOrder selects how string keys are compared.
type KeyOrder string

const (
	// OrderNatural sorts integer keys numerically, ahead of every other key.
	OrderNatural KeyOrder = "natural"
	// OrderLexical sorts keys byte-wise.
	OrderLexical KeyOrder = "lexical"
)

func (o KeyOrder) valid() bool {
	return o == OrderNatural || o == OrderLexical
}

// compareFunc returns the three-way comparison used for the order
func (o KeyOrder) compareFunc() func(a, b string) int {
	if o == OrderLexical {
		return strings.Compare
	}
	return naturalCompare
}

// normalize canonicalises a key so that equal keys under the order are
// equal strings: "007" and "+7" both become "7" in natural order.
func (o KeyOrder) normalize(key string) string {
	key = strings.TrimSpace(key)
	if o != OrderNatural {
		return key
	}
	if n, err := strconv.ParseInt(key, 10, 64); err == nil {
		return strconv.FormatInt(n, 10)
	}
	return key
}

// naturalCompare orders base-10 integers numerically before all other
// strings, which compare lexically.
func naturalCompare(a, b string) int {
	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)

	switch {
	case aErr == nil && bErr == nil:
		if c := cmp.Compare(ai, bi); c != 0 {
			return c
		}
		// "07" and "7" only meet here if a caller skipped normalize
		return strings.Compare(a, b)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}
	return strings.Compare(a, b)
}

// cleanKeys normalises keys for the order and drops empty entries
func (o KeyOrder) cleanKeys(keys []string) []string {
	cleaned := make([]string, 0, len(keys))
	for _, key := range keys {
		if key = o.normalize(key); key != "" {
			cleaned = append(cleaned, key)
		}
	}
	return cleaned
}
