package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func fixture(name string) string {
	return filepath.Join("..", "..", "fixtures", name)
}

func runCLI(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv("AFFINE_LOG_LEVEL", "")
	t.Setenv("AFFINE_LOG_FORMAT", "")
	t.Setenv("AFFINE_NO_PROGRESS", "")

	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestRun_ConcreteScenario(t *testing.T) {
	stdout, stderr, code := runCLI(t, "-config", fixture("config_abc.json"))
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}

	if !regexp.MustCompile(`Plaintext\s+abc`).MatchString(stdout) {
		t.Errorf("expected plaintext row in:\n%s", stdout)
	}
	if !regexp.MustCompile(`Key a\s+2\n`).MatchString(stdout) {
		t.Errorf("expected key row in:\n%s", stdout)
	}
}

func TestRun_ShortFlagAndLegacyConfig(t *testing.T) {
	stdout, stderr, code := runCLI(t, "-c", fixture("config_legacy.json"), "-log-format", "json")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}

	if !strings.Contains(stdout, "hola mundo, esto es una prueba!") {
		t.Errorf("expected decoded message in:\n%s", stdout)
	}
	if !strings.Contains(stderr, `"msg":"Decoding message"`) {
		t.Errorf("expected JSON log lines on stderr:\n%s", stderr)
	}
}

func TestRun_AlphabetOverride(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "alphabet.csv")
	// Same symbols, different codes: a=1, b=0, c=2. The pairs still fit a=2.
	if err := os.WriteFile(csvPath, []byte("code,symbol\n1,a\n0,b\n2,c\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, code := runCLI(t, "-config", fixture("config_abc.json"), "-alphabet", csvPath)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s\nstdout:\n%s", code, stderr, stdout)
	}
	if !strings.Contains(stderr, "Replaced table from CSV") {
		t.Errorf("expected override log line:\n%s", stderr)
	}
	if !regexp.MustCompile(`Plaintext\s+abc`).MatchString(stdout) {
		t.Errorf("expected plaintext row in:\n%s", stdout)
	}
}

func TestRun_InsufficientEvidence(t *testing.T) {
	stdout, _, code := runCLI(t, "-config", fixture("config_insufficient.json"))
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stdout, "insufficient evidence") {
		t.Errorf("expected failure report in:\n%s", stdout)
	}
	if strings.Contains(stdout, "Plaintext") {
		t.Error("failure must not print a plaintext")
	}
}

func TestRun_MissingConfigFlag(t *testing.T) {
	_, stderr, code := runCLI(t)
	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(stderr, "-config is required") {
		t.Errorf("unexpected stderr:\n%s", stderr)
	}
}

func TestRun_BadInputs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"missing file", []string{"-config", fixture("nonexistent.json")}, 1},
		{"duplicate codes", []string{"-config", fixture("config_duplicate_codes.json")}, 1},
		{"missing alphabet", []string{"-config", fixture("config_abc.json"), "-alphabet", fixture("nonexistent.csv")}, 1},
		{"bad log level", []string{"-config", fixture("config_abc.json"), "-log-level", "loud"}, 2},
		{"unknown flag", []string{"-verbose"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, code := runCLI(t, tt.args...)
			if code != tt.code {
				t.Errorf("expected exit code %d, got %d", tt.code, code)
			}
		})
	}
}
