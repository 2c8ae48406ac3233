package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettingsApplyDefaults(t *testing.T) {
	s := Settings{}
	s.ApplyDefaults()
	if s.Logging.Level != "info" {
		t.Errorf("expected default level info, got %q", s.Logging.Level)
	}
	if s.Exec.Format != "cmdline" {
		t.Errorf("expected default format cmdline, got %q", s.Exec.Format)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults are valid", func(s *Settings) {}, false},
		{"bad log level", func(s *Settings) { s.Logging.Level = "noisy" }, true},
		{"bad exec format", func(s *Settings) { s.Exec.Format = "xml" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{}
			s.ApplyDefaults()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipekit.yml")
	content := "logging:\n  level: debug\nexec:\n  prefix: \"convert\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write settings file: %v", err)
	}

	settings, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %q", settings.Logging.Level)
	}
	if settings.Exec.Prefix != "convert" {
		t.Errorf("expected prefix convert, got %q", settings.Exec.Prefix)
	}
	if settings.Exec.Format != "cmdline" {
		t.Errorf("expected default format, got %q", settings.Exec.Format)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PIPEKIT_LOGGING_LEVEL", "warn")
	settings, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Logging.Level != "warn" {
		t.Errorf("expected level warn from environment, got %q", settings.Logging.Level)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("PIPEKIT_EXEC_PREFIX=magick\n"), 0o644); err != nil {
		t.Fatalf("cannot write env file: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("PIPEKIT_EXEC_PREFIX") })

	settings, err := Load(WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Exec.Prefix != "magick" {
		t.Errorf("expected prefix magick, got %q", settings.Exec.Prefix)
	}
}

type fakeFS struct {
	files map[string]bool
}

func (f *fakeFS) Exists(path string) bool   { return f.files[path] }
func (f *fakeFS) LoadEnv(path string) error { return nil }

func TestResolveFiles(t *testing.T) {
	fs := &fakeFS{files: map[string]bool{
		"./config/pipekit.yml": true,
		"./.env":               true,
	}}
	resolver := &Resolver{FileSystem: fs}
	resolved := resolver.ResolveFiles(LoaderConfig{})
	if resolved.ConfigFile != "./config/pipekit.yml" {
		t.Errorf("unexpected settings file: %q", resolved.ConfigFile)
	}
	if resolved.EnvFile != "./.env" {
		t.Errorf("unexpected env file: %q", resolved.EnvFile)
	}

	explicit := resolver.ResolveFiles(LoaderConfig{ConfigFile: "custom.yml"})
	if explicit.ConfigFile != "custom.yml" {
		t.Errorf("explicit path not honored: %q", explicit.ConfigFile)
	}
}
