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
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
)

var usageLines = []string{
	"",
	" **Keytree %s**",
	"",
	"Build, inspect and explore a height-balanced (AVL) set of keys from the terminal.",
	"",
	"Built with Go %s",
	"",
	"# 1. Feeding keys",
	"* `--keys 5,3,8` on the command line",
	"* `--file keys.txt` one key per line, `-` reads stdin, `#` starts a comment",
	"* `--history` the commands in your zsh or bash history",
	"* `--remove 3,8` removed after everything else is inserted",
	"",
	"# 2. Commands",
	"* **walk** prints keys in ascending order",
	"* **render** draws the tree sideways, root on the left",
	"* **check** validates ordering, balance and cached heights",
	"* **shell** line-oriented session, type `help` for operations",
	"* **run** interactive explorer",
	"* **bench** random insert/remove workload",
	"",
	"# 3. Shell and explorer operations",
	"```",
	"%s",
	"```",
	"",
	"# 4. Key order",
	"* **natural** integers sort numerically before every other key (default)",
	"* **lexical** keys sort byte-wise",
	"",
	"Set it in ~/.keytree.yaml, see `keytree settings`.",
	"",
	"# License",
	"Licensed under the Apache License, Version 2.0",
	"Copyright © 2025 Naren Yellavula",
	"",
}

// usageMarkdown is shared by the usage command and the explorer help pane
func usageMarkdown() string {
	return fmt.Sprintf(strings.Join(usageLines, "\n"), version, runtime.Version(), sessionHelp)
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}
