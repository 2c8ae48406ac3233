package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Fatalf("expected default level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Fatalf("expected default format console, got %s", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Fatalf("expected default output stderr, got %s", cfg.Output)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Level: "verbose", Format: "console"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for bad level")
	}
	cfg = Config{Level: "debug", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetLevel(t *testing.T) {
	if err := SetLevel("warn"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("global level not applied: %v", zerolog.GlobalLevel())
	}
	if err := SetLevel("chatty"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestGet_FallsBackToComponentTag(t *testing.T) {
	l := Get("list-files")
	if l == nil {
		t.Fatal("expected logger")
	}
	if l.component != "list-files" {
		t.Fatalf("expected component tag, got %q", l.component)
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Fatalf("unexpected map: %v", m)
	}
	// trailing key without value is dropped
	m = Fields("a", 1, "dangling")
	if _, ok := m["dangling"]; ok {
		t.Fatal("dangling key should be dropped")
	}
}
