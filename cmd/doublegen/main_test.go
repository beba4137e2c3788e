/*
 * Copyright 2026 The standin Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseGenerate builds the command tree and parses args against the
// generate subcommand, without running it.
func parseGenerate(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	root := newRootCmd()
	cmd, _, err := root.Find([]string{"generate"})
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(parseGenerate(t))
	require.NoError(t, err)

	assert.Equal(t, ".", config.Package)
	assert.Equal(t, "", config.Interface)
	assert.Equal(t, "", config.Output)
}

func TestLoadConfigFromFlags(t *testing.T) {
	config, err := LoadConfig(parseGenerate(t,
		"--package", "./examples", "--interface", "PaymentService", "-o", "out.go"))
	require.NoError(t, err)

	assert.Equal(t, "./examples", config.Package)
	assert.Equal(t, "PaymentService", config.Interface)
	assert.Equal(t, "out.go", config.Output)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doublegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: ./examples\ninterface: IntList\n"), 0o644))

	config, err := LoadConfig(parseGenerate(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "./examples", config.Package)
	assert.Equal(t, "IntList", config.Interface)

	// explicitly set flags beat file values
	config, err = LoadConfig(parseGenerate(t, "--config", path, "--interface", "PaymentService"))
	require.NoError(t, err)
	assert.Equal(t, "./examples", config.Package)
	assert.Equal(t, "PaymentService", config.Interface)
}

func TestLoadConfigMissingExplicitFileFails(t *testing.T) {
	_, err := LoadConfig(parseGenerate(t, "--config", filepath.Join(t.TempDir(), "nope.yaml")))
	require.ErrorContains(t, err, "nope.yaml")
}

func TestRunGenerateRequiresInterface(t *testing.T) {
	err := runGenerate(&Config{Package: "."})
	require.ErrorContains(t, err, "interface")
}
