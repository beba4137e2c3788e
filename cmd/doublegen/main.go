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
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/standin-dev/standin/internal/gen"
	"github.com/standin-dev/standin/internal/logging"
)

// Set by build flags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbosity int

	root := &cobra.Command{
		Use:   "doublegen",
		Short: "doublegen generates wrapper test doubles for Go interfaces",
		Long: `doublegen inspects a Go interface and generates a wrapper double
for it: a struct embedding the interface whose methods record every
call and dispatch through the standin behavior table, so tests can
stub, fake, spy on and verify interactions with the interface.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity")
	root.PersistentFlags().String("config", ".doublegen.yaml", "Config file for setting defaults.")

	root.AddCommand(newGenerateCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a wrapper double for an interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(cmd)
			if err != nil {
				return err
			}
			return runGenerate(config)
		},
	}

	cmd.Flags().StringP("package", "p", ".", "Package pattern containing the interface")
	cmd.Flags().StringP("interface", "i", "", "Name of the interface to generate a double for")
	cmd.Flags().StringP("output", "o", "", "Output file path (default <interface>_double_test.go)")

	return cmd
}

// Config holds the parsed flags and config file values.
type Config struct {
	Package   string `yaml:"package"`
	Interface string `yaml:"interface"`
	Output    string `yaml:"output"`
}

// LoadConfig merges the config file and the command's flags, with
// explicitly set flags taking precedence over file values.
func LoadConfig(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	configFlag := cmd.Flag("config")
	configPath := configFlag.Value.String()
	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		// ignore "not exists" errors, unless user specified the "--config" flag
		if !os.IsNotExist(err) || configFlag.Changed {
			return nil, fmt.Errorf("load file %s: %w", configPath, err)
		}
	}

	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return nil, fmt.Errorf("load flags: %w", err)
	}

	var config Config
	if err := k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{
		Tag: "yaml",
	}); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &config, nil
}

func runGenerate(config *Config) error {
	if config.Interface == "" {
		return fmt.Errorf("no interface named: use --interface or set it in the config file")
	}

	logger := logging.GetLogger("doublegen")
	logger.Debug().Str("package", config.Package).Str("interface", config.Interface).Msg("loading interface")

	model, err := gen.Load(config.Package, config.Interface)
	if err != nil {
		return err
	}

	output := config.Output
	if output == "" {
		output = strings.ToLower(config.Interface) + "_double_test.go"
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := model.Render(f); err != nil {
		return err
	}

	logger.Info().Str("output", output).Int("methods", len(model.Methods)).Msg("generated double")
	return nil
}
