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
	"log"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// loadConfig never fails; broken files fall back to the defaults
func loadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		return defaults()
	}
	return config
}

// addKeyInputFlags registers the flags that feed keys into a session
func addKeyInputFlags(cmd *cobra.Command, input *KeyInput) {
	cmd.Flags().StringSliceVarP(&input.Keys, "keys", "k", nil, "comma separated keys to insert")
	cmd.Flags().StringVarP(&input.File, "file", "f", "", "file with one key per line (- for stdin)")
	cmd.Flags().BoolVar(&input.History, "history", false, "insert the commands from your shell history")
	cmd.Flags().StringSliceVarP(&input.Remove, "remove", "r", nil, "comma separated keys to remove afterwards")
}

// openSession builds a session from the config and the key flags
func openSession(input KeyInput) (*Session, *Config) {
	config := loadConfig()
	session := NewSession(config)
	if err := populateSession(session, input); err != nil {
		log.Fatalf("Error reading keys: %v", err)
	}
	return session, config
}

func main() {
	asciiLogo := `
██╗  ██╗███████╗██╗   ██╗████████╗██████╗ ███████╗███████╗
██║ ██╔╝██╔════╝╚██╗ ██╔╝╚══██╔══╝██╔══██╗██╔════╝██╔════╝
█████╔╝ █████╗   ╚████╔╝    ██║   ██████╔╝█████╗  █████╗
██╔═██╗ ██╔══╝    ╚██╔╝     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██╗███████╗   ██║      ██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝╚══════╝   ╚═╝      ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Balanced key trees you can build, check and explore from the terminal [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var runInput KeyInput
	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the explorer: type operations, watch the tree rebalance`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			session, config := openSession(runInput)
			if err := runExplorer(session, config); err != nil {
				log.Fatalf("Error running explorer: %v", err)
			}
		},
	}
	addKeyInputFlags(cmdRun, &runInput)

	var walkInput KeyInput
	var cmdWalk = &cobra.Command{
		Use:   "walk",
		Short: "Print keys in ascending order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			session, _ := openSession(walkInput)
			for key := range session.Tree().All() {
				fmt.Println(key)
			}
		},
	}
	addKeyInputFlags(cmdWalk, &walkInput)

	var renderInput KeyInput
	var cmdRender = &cobra.Command{
		Use:   "render",
		Short: "Draw the tree sideways, root on the left",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			session, config := openSession(renderInput)
			plain, _ := cmd.Flags().GetBool("plain")
			if config.Render.Color && !plain {
				InitializeColors()
				fmt.Print(styledRender(session.Tree().Layout(), config.Render.Indent, GetColorScheme()))
				return
			}
			fmt.Print(session.Render())
		},
	}
	addKeyInputFlags(cmdRender, &renderInput)
	cmdRender.Flags().Bool("plain", false, "disable colours")

	var checkInput KeyInput
	var cmdCheck = &cobra.Command{
		Use:   "check",
		Short: "Validate ordering, balance and cached heights",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			session, _ := openSession(checkInput)
			fmt.Println(session.Stats())
			if err := session.Tree().Check(); err != nil {
				log.Fatalf("%sinvalid tree%s: %v", Error, Reset, err)
			}
			fmt.Printf("%sok%s\n", Green, Reset)
		},
	}
	addKeyInputFlags(cmdCheck, &checkInput)

	var shellInput KeyInput
	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Line-oriented session over a key tree",
		Long:  fmt.Sprintf("%s\n%s\n\n%s", asciiLogo, "Operations:", sessionHelp),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			session, config := openSession(shellInput)
			if err := runShell(session, os.Stdin, os.Stdout, config.Shell.Prompt); err != nil {
				log.Fatalf("Error reading input: %v", err)
			}
		},
	}
	addKeyInputFlags(cmdShell, &shellInput)

	var benchOpts BenchOptions
	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Run a random insert/remove workload and validate the result",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
				benchOpts.Progress = os.Stderr
			}
			report, err := runBench(benchOpts)
			if err != nil {
				log.Fatalf("%sbench failed%s: %v", Error, Reset, err)
			}
			fmt.Println(report)
		},
	}
	cmdBench.Flags().IntVar(&benchOpts.Ops, "ops", 100000, "number of operations")
	cmdBench.Flags().IntVar(&benchOpts.Span, "span", 10000, "keys are drawn from [0, span)")
	cmdBench.Flags().Uint64Var(&benchOpts.Seed, "seed", 1, "random seed")
	cmdBench.Flags().IntVar(&benchOpts.CheckEvery, "check-every", 0, "validate the tree every N operations (0: only at the end)")
	cmdBench.Flags().Bool("quiet", false, "hide the progress bar")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Keytree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the keytree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating it when missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Keytree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootInput KeyInput
	var rootCmd = &cobra.Command{
		Use:     "keytree",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the explorer when no subcommand is provided
			session, config := openSession(rootInput)
			if err := runExplorer(session, config); err != nil {
				log.Fatalf("Error running explorer: %v", err)
			}
		},
	}
	addKeyInputFlags(rootCmd, &rootInput)

	rootCmd.AddCommand(cmdRun, cmdWalk, cmdRender, cmdCheck, cmdShell, cmdBench, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
