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
	"strings"
	"testing"
)

func TestRunShell(t *testing.T) {
	s := newTestSession(OrderNatural)
	input := strings.Join([]string{
		"insert 10 5 15 7",
		"",
		"remove 5",
		"walk",
		`insert "hello world"`,
		"contains 'hello world'",
		"bogus",
		`insert "unterminated`,
		"quit",
		"insert 99",
	}, "\n")

	var out strings.Builder
	if err := runShell(s, strings.NewReader(input), &out, "> "); err != nil {
		t.Fatalf("runShell returned error: %v", err)
	}

	expected := []string{
		"> inserted 4, duplicate 0",
		"> > removed 1, missing 0",
		"> 7 10 15",
		"> inserted 1, duplicate 0",
		"> true",
		"> error: unknown operation: \"bogus\"",
		"> error: failed to parse",
	}
	lines := strings.Split(out.String(), "\n")
	if len(lines) < len(expected) {
		t.Fatalf("output has %d lines; want at least %d:\n%s", len(lines), len(expected), out.String())
	}
	for i, want := range expected {
		if !strings.HasPrefix(lines[i], want) {
			t.Errorf("line %d = %q; want prefix %q", i, lines[i], want)
		}
	}

	// quit stops before the last line
	if s.Contains("99") {
		t.Error("input after quit was executed")
	}
}

func TestRunShellHelp(t *testing.T) {
	s := newTestSession(OrderNatural)

	var out strings.Builder
	if err := runShell(s, strings.NewReader("help\n"), &out, ""); err != nil {
		t.Fatalf("runShell returned error: %v", err)
	}
	if !strings.Contains(out.String(), "insert KEY...") {
		t.Errorf("help output missing operations:\n%s", out.String())
	}
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"insert 1 2 3", []string{"insert", "1", "2", "3"}},
		{`insert "git commit -m" ls`, []string{"insert", "git commit -m", "ls"}},
		{"walk", []string{"walk"}},
		{"", []string{}},
	}

	for _, tc := range tests {
		parts, err := splitCommand(tc.input)
		if err != nil {
			t.Errorf("splitCommand(%q) returned error: %v", tc.input, err)
			continue
		}
		if len(parts) != len(tc.expected) {
			t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
			continue
		}
		for i := range parts {
			if parts[i] != tc.expected[i] {
				t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
				break
			}
		}
	}
}
