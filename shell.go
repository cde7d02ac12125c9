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
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
)

func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %v", line, err)
	}
	return args, nil
}

// runShell reads operations line by line from in and writes results to out
// until end of input or quit.
func runShell(s *Session, in io.Reader, out io.Writer, prompt string) error {
	scanner := newScanner(in)

	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		args, err := splitCommand(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			fmt.Fprint(out, prompt)
			continue
		}

		if len(args) > 0 {
			switch strings.ToLower(args[0]) {
			case "quit", "exit":
				return nil
			case "help", "?":
				fmt.Fprintln(out, sessionHelp)
			default:
				result, err := s.Exec(args)
				if err != nil {
					fmt.Fprintf(out, "error: %v\n", err)
				} else if result != "" {
					fmt.Fprintln(out, result)
				}
			}
		}
		fmt.Fprint(out, prompt)
	}

	return scanner.Err()
}
