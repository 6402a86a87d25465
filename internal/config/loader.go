package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the lane runner configuration.
// Search order: customPath -> ~/.lanerunner/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are decoded over the defaults, so partial files are fine.
// The returned config has passed Validate.
func LoadRunner(customPath string) (RunnerConfig, error) {
	cfg, _, err := LoadRunnerWithSource(customPath)
	return cfg, err
}

// LoadRunnerWithSource is LoadRunner that also reports where the config came from.
func LoadRunnerWithSource(customPath string) (RunnerConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			cfg, err := Parse(data)
			if err != nil {
				return RunnerConfig{}, "", fmt.Errorf("failed to parse config %s: %w", userCfgPath, err)
			}
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	const localPath = "configs/runner.yaml"
	if data, err := os.ReadFile(localPath); err == nil {
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, "", fmt.Errorf("failed to parse config %s: %w", localPath, err)
		}
		return cfg, localPath, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// Parse decodes YAML over the default config and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := Validate(cfg); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lanerunner", filename)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.InitialSpeed = 6
		cfg.Difficulty.InitialSpawnInterval = 1.5
	case DifficultyNormal:
		cfg.Difficulty.InitialSpeed = 8
		cfg.Difficulty.InitialSpawnInterval = 1.2
	case DifficultyHard:
		cfg.Difficulty.InitialSpeed = 11
		cfg.Difficulty.InitialSpawnInterval = 0.9
	}

	if cfg.Difficulty.InitialSpawnInterval < cfg.Difficulty.SpawnIntervalFloor {
		cfg.Difficulty.InitialSpawnInterval = cfg.Difficulty.SpawnIntervalFloor
	}
}
