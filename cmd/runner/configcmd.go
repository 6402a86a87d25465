package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
)

var flagValidate bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the runner configuration after applying the config search
order and the --difficulty preset.

Config search order:
  1. --config <path>
  2. ~/.lanerunner/runner.yaml
  3. ./configs/runner.yaml
  4. Built-in defaults

Examples:
  runner config
  runner config --difficulty hard
  runner config --config ./runner.yaml --validate`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagValidate, "validate", false, "Only check the config and report the result")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if flagValidate {
		fmt.Fprintf(out, "%s: ok\n", source)
		return nil
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
