// Package config handles the application settings of the renderer CLI.
package config

// Config holds all application settings. Scene-level parameters such as bias
// and recursion depth belong to the scene file, not here.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds settings for the render command.
type RenderConfig struct {
	Workers  int  `yaml:"workers"` // 0 means one per CPU
	Progress bool `yaml:"progress"`
	Stats    bool `yaml:"stats"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Workers:  0,
			Progress: true,
			Stats:    false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
