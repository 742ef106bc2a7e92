package config

import (
	"os"
	"strconv"
)

// Settings holds process-level settings for the command line tool.
type Settings struct {
	LogLevel   string
	LogFormat  string
	NoProgress bool
}

// Load reads settings from environment variables.
func Load() *Settings {
	s := &Settings{
		LogLevel:  os.Getenv("AFFINE_LOG_LEVEL"),
		LogFormat: os.Getenv("AFFINE_LOG_FORMAT"),
	}

	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.LogFormat == "" {
		s.LogFormat = "text"
	}
	if v, err := strconv.ParseBool(os.Getenv("AFFINE_NO_PROGRESS")); err == nil {
		s.NoProgress = v
	}

	return s
}
