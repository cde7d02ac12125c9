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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// KeyInput describes where a one-shot command gets its keys from.
type KeyInput struct {
	Keys    []string // given on the command line
	File    string   // newline-delimited key file, "-" for stdin
	History bool     // the current user's shell history
	Remove  []string // removed after everything else is inserted
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for long keys and large files
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	return scanner
}

// scanKeys reads one key per line, skipping blank lines and # comments.
func scanKeys(r io.Reader) ([]string, error) {
	var keys []string
	scanner := newScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keys = append(keys, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// readKeysFile reads keys from path, or from stdin when path is "-".
func readKeysFile(path string) ([]string, error) {
	if path == "-" {
		return scanKeys(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("key file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	return scanKeys(file)
}

// parseZshHistory extracts commands from a zsh history file. Extended
// history lines look like ": 1673291850:0;ls -la"; anything else is taken
// as a plain command.
func parseZshHistory(r io.Reader) ([]string, error) {
	var commands []string
	scanner := newScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, ": ") {
			if strings.TrimSpace(line) != "" {
				commands = append(commands, line)
			}
			continue
		}

		// Break on the first 2 colons (split into 3 parts)
		parts := strings.SplitN(line, ":", 3)
		if len(parts) < 3 {
			continue
		}

		// parts[2] is "0;ls -la": elapsed time, then the command
		subParts := strings.SplitN(parts[2], ";", 2)
		if len(subParts) < 2 || strings.TrimSpace(subParts[1]) == "" {
			continue
		}
		commands = append(commands, subParts[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return commands, nil
}

// parseBashHistory extracts commands from a bash history file, skipping the
// "#epoch" lines written when HISTTIMEFORMAT is set.
func parseBashHistory(r io.Reader) ([]string, error) {
	var commands []string
	scanner := newScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		commands = append(commands, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return commands, nil
}

// detectCurrentShell detects the type of Unix shell: Bash, Zshell etc.
func detectCurrentShell() string {
	currentShellPath, ok := os.LookupEnv("SHELL")
	if !ok {
		// Default to bash when SHELL is not set
		return "bash"
	}
	return filepath.Base(currentShellPath)
}

// readShellHistory returns the commands in the current shell's history file.
func readShellHistory() ([]string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	shell := detectCurrentShell()
	var historyPath string
	var parse func(io.Reader) ([]string, error)
	switch shell {
	case "zsh":
		historyPath = filepath.Join(homeDir, ".zsh_history")
		parse = parseZshHistory
	case "bash":
		historyPath = filepath.Join(homeDir, ".bash_history")
		parse = parseBashHistory
	default:
		return nil, fmt.Errorf("unknown shell: %s", shell)
	}

	file, err := os.Open(historyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s history file not found at %s", shell, historyPath)
		}
		return nil, err
	}
	defer file.Close()

	return parse(file)
}

// populateSession feeds every source of input into the session and then
// applies the removals.
func populateSession(s *Session, input KeyInput) error {
	s.Insert(input.Keys...)

	if input.File != "" {
		keys, err := readKeysFile(input.File)
		if err != nil {
			return err
		}
		s.Insert(keys...)
	}

	if input.History {
		commands, err := readShellHistory()
		if err != nil {
			return err
		}
		s.Insert(commands...)
	}

	s.Remove(input.Remove...)
	return nil
}
