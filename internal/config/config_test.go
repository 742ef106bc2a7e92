package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AFFINE_LOG_LEVEL", "")
	t.Setenv("AFFINE_LOG_FORMAT", "")
	t.Setenv("AFFINE_NO_PROGRESS", "")

	s := Load()
	if s.LogLevel != "info" {
		t.Errorf("expected default level info, got %q", s.LogLevel)
	}
	if s.LogFormat != "text" {
		t.Errorf("expected default format text, got %q", s.LogFormat)
	}
	if s.NoProgress {
		t.Error("expected progress enabled by default")
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("AFFINE_LOG_LEVEL", "debug")
	t.Setenv("AFFINE_LOG_FORMAT", "json")
	t.Setenv("AFFINE_NO_PROGRESS", "true")

	s := Load()
	if s.LogLevel != "debug" || s.LogFormat != "json" || !s.NoProgress {
		t.Errorf("unexpected settings: %+v", s)
	}
}

func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv("AFFINE_NO_PROGRESS", "maybe")

	if Load().NoProgress {
		t.Error("invalid bool should leave progress enabled")
	}
}
