package placeholder

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTable_Builtins(t *testing.T) {
	tab := NewTable()
	cwd, _ := os.Getwd()
	if got := tab.Expand("{CWD}/data"); got != cwd+"/data" {
		t.Fatalf("expected %q, got %q", cwd+"/data", got)
	}
}

func TestTable_SetAndExpand(t *testing.T) {
	tab := NewTable()
	tab.Set("dataset", "/data/train")
	if got := tab.Expand("{dataset}/images"); got != "/data/train/images" {
		t.Fatalf("unexpected expansion: %q", got)
	}
}

func TestTable_UnknownLeftUntouched(t *testing.T) {
	tab := NewTable()
	if got := tab.Expand("{unbound}/x"); got != "{unbound}/x" {
		t.Fatalf("unknown placeholder must stay verbatim, got %q", got)
	}
}

func TestTable_ResolverEvaluatedAtExpansion(t *testing.T) {
	tab := NewTable()
	value := "first"
	tab.Add("current", "tracks the current item", func() string { return value })
	if got := tab.Expand("{current}"); got != "first" {
		t.Fatalf("got %q", got)
	}
	value = "second"
	if got := tab.Expand("{current}"); got != "second" {
		t.Fatalf("resolver must be re-evaluated, got %q", got)
	}
}

func TestTable_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "placeholders.txt")
	if err := os.WriteFile(path, []byte("input=/data/in\noutput=/data/out\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tab := NewTable()
	if err := tab.LoadFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tab.Expand("{input}:{output}"); got != "/data/in:/data/out" {
		t.Fatalf("unexpected expansion: %q", got)
	}
}

func TestTable_LoadFileMissing(t *testing.T) {
	tab := NewTable()
	if err := tab.LoadFile("/no/such/file"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
