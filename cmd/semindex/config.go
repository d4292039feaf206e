package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the contents of semindex.yaml, the project-level
// configuration the CLI's index/serve subcommands load on startup.
type Config struct {
	Root       string   `yaml:"root"`
	Patterns   []string `yaml:"patterns"`
	CacheSize  int      `yaml:"cache_size"`
	PoolSize   int      `yaml:"pool_size"`
	LogLevel   string   `yaml:"log_level"`
	MCPLogPath string   `yaml:"mcp_log_path"`
}

// defaultConfig returns the configuration used when no semindex.yaml is
// present: index the current directory with every recognised language's
// default extensions, a 1000-entry cache and an auto-sized worker pool.
func defaultConfig() Config {
	return Config{
		Root:      ".",
		CacheSize: 1000,
		LogLevel:  "info",
	}
}

// loadConfig reads path (semindex.yaml by default). A missing file is not
// an error — the CLI falls back to defaultConfig().
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
