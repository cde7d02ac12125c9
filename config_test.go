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
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
	}{
		{
			name:    "full file",
			content: "keys:\n  order: lexical\nrender:\n  indent: 2\n  color: false\nshell:\n  prompt: \"> \"\n",
			want: Config{
				Keys:   KeysConfig{Order: OrderLexical},
				Render: RenderConfig{Indent: 2, Color: false},
				Shell:  ShellConfig{Prompt: "> "},
			},
		},
		{
			name:    "partial file keeps defaults",
			content: "render:\n  indent: 6\n",
			want: Config{
				Keys:   KeysConfig{Order: OrderNatural},
				Render: RenderConfig{Indent: 6, Color: true},
				Shell:  ShellConfig{Prompt: "keytree> "},
			},
		},
		{
			name:    "invalid values are replaced",
			content: "keys:\n  order: random\nrender:\n  indent: 0\n",
			want:    defaultConfig,
		},
		{
			name:    "malformed yaml",
			content: "keys: [unclosed\n",
			want:    defaultConfig,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			config, err := loadConfigFile(writeConfig(t, tc.content))
			if err != nil {
				t.Fatalf("loadConfigFile returned error: %v", err)
			}
			if *config != tc.want {
				t.Errorf("config = %+v; want %+v", *config, tc.want)
			}
		})
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	config, err := loadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("loadConfigFile returned error: %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("config = %+v; want defaults", *config)
	}

	// the defaults must not be shared
	config.Render.Indent = 99
	if defaultConfig.Render.Indent == 99 {
		t.Error("modifying a loaded config changed the defaults")
	}
}

func TestCreateDefaultConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := createDefaultConfigFile(path); err != nil {
		t.Fatalf("createDefaultConfigFile returned error: %v", err)
	}

	config, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile returned error: %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("round trip config = %+v; want %+v", *config, defaultConfig)
	}
}
