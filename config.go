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
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".keytree.yaml"

type KeysConfig struct {
	Order KeyOrder `yaml:"order"`
}

type RenderConfig struct {
	Indent int  `yaml:"indent"`
	Color  bool `yaml:"color"`
}

type ShellConfig struct {
	Prompt string `yaml:"prompt"`
}

type Config struct {
	Keys   KeysConfig   `yaml:"keys"`
	Render RenderConfig `yaml:"render"`
	Shell  ShellConfig  `yaml:"shell"`
}

var defaultConfig = Config{
	Keys: KeysConfig{
		Order: OrderNatural,
	},
	Render: RenderConfig{
		Indent: 4,
		Color:  true,
	},
	Shell: ShellConfig{
		Prompt: "keytree> ",
	},
}

// LoadConfig reads ~/.keytree.yaml. Any problem with the file yields the
// default configuration.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFile(configPath)
}

func defaults() *Config {
	config := defaultConfig
	return &config
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Printf("Failed to read %s: %v. Using default settings.", configPath, err)
		return defaults(), nil
	}

	// Unmarshal over the defaults so omitted fields keep their default value
	config := defaultConfig
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		log.Printf("Failed to parse %s: %v. Using default settings.", configPath, err)
		return defaults(), nil
	}

	config.validate()
	return &config, nil
}

func (c *Config) validate() {
	if !c.Keys.Order.valid() {
		log.Printf("Unknown key order %q, using %q", c.Keys.Order, defaultConfig.Keys.Order)
		c.Keys.Order = defaultConfig.Keys.Order
	}
	if c.Render.Indent < 1 {
		log.Printf("Render indent %d is too small, using %d", c.Render.Indent, defaultConfig.Render.Indent)
		c.Render.Indent = defaultConfig.Render.Indent
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 Keytree Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s %s(newly created)%s\n", configPath, Warning, Reset)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🔑 %sKeys:%s\n", Green, Reset)
	fmt.Printf("  • %sorder%s: %s\n", Green, Reset, config.Keys.Order)
	if config.Keys.Order == OrderNatural {
		fmt.Printf("    Integers sort numerically before all other keys\n\n")
	} else {
		fmt.Printf("    Keys sort byte-wise as plain strings\n\n")
	}

	fmt.Printf("🌳 %sRender:%s\n", Green, Reset)
	fmt.Printf("  • %sindent%s: %d\n", Green, Reset, config.Render.Indent)
	fmt.Printf("  • %scolor%s: %t\n\n", Green, Reset, config.Render.Color)

	fmt.Printf("💻 %sShell:%s\n", Green, Reset)
	fmt.Printf("  • %sprompt%s: %q\n\n", Green, Reset, config.Shell.Prompt)

	fmt.Printf("💡 %sTo sort keys as plain strings, edit %s:%s\n", Info, configPath, Reset)
	fmt.Printf("   keys:\n     order: lexical\n")
}
