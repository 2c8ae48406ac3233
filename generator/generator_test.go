package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
)

func testRegistry() *flow.Registry {
	reg := flow.NewRegistry()
	Register(reg)
	return reg
}

func TestBinding_Order(t *testing.T) {
	b := NewBinding().Set("dir", "/a").Set("name", "x").Set("dir", "/b")
	keys := b.Keys()
	if len(keys) != 2 || keys[0] != "dir" || keys[1] != "name" {
		t.Fatalf("keys must keep insertion order: %v", keys)
	}
	if v, _ := b.Get("dir"); v != "/b" {
		t.Fatalf("re-set must update value, got %q", v)
	}
}

func TestBinding_Merge(t *testing.T) {
	outer := NewBinding().Set("a", "1").Set("b", "2")
	inner := NewBinding().Set("b", "9").Set("c", "3")
	merged := outer.Merge(inner)
	keys := merged.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Fatalf("unexpected key order: %v", keys)
	}
	if v, _ := merged.Get("b"); v != "9" {
		t.Fatalf("inner value must win, got %q", v)
	}
	// merge must not mutate the inputs
	if v, _ := outer.Get("b"); v != "2" {
		t.Fatal("merge mutated the outer binding")
	}
}

func TestList_Produce(t *testing.T) {
	g := NewList()
	g.VarName = "v"
	g.Values = []string{"x", "y"}
	bindings, err := Generate(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(bindings))
	}
	if v, _ := bindings[1].Get("v"); v != "y" {
		t.Fatalf("unexpected value: %q", v)
	}
}

func TestList_CheckFails(t *testing.T) {
	g := NewList()
	g.VarName = "v"
	_, err := Generate(g)
	if err == nil {
		t.Fatal("expected validation error for empty values")
	}
	if !errors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRange_Produce(t *testing.T) {
	g := NewRange()
	g.VarName = "i"
	g.From = 0
	g.To = 6
	g.Step = 2
	bindings, err := Generate(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []string
	for _, b := range bindings {
		v, _ := b.Get("i")
		got = append(got, v)
	}
	if strings.Join(got, ",") != "0,2,4" {
		t.Fatalf("unexpected sequence: %v", got)
	}
}

func TestRange_Descending(t *testing.T) {
	g := NewRange()
	g.VarName = "i"
	g.From = 3
	g.To = 0
	g.Step = -1
	bindings, err := Generate(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bindings) != 3 {
		t.Fatalf("expected 3 bindings, got %d", len(bindings))
	}
}

func TestRange_ZeroStep(t *testing.T) {
	g := NewRange()
	g.VarName = "i"
	g.From = 0
	g.To = 5
	g.Step = 0
	if _, err := Generate(g); err == nil {
		t.Fatal("expected validation error for zero step")
	}
}

func TestDirs_Produce(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b", "a"} {
		if err := os.Mkdir(filepath.Join(root, name), 0o755); err != nil {
			t.Fatalf("cannot create dir: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "file.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("cannot create file: %v", err)
	}

	g := NewDirs()
	g.VarName = "dir"
	g.Input = root
	bindings, err := Generate(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(bindings))
	}
	first, _ := bindings[0].Get("dir")
	if filepath.Base(first) != "a" {
		t.Fatalf("sub-directories must be sorted, got %q first", first)
	}
}

func TestNull_Produce(t *testing.T) {
	bindings, err := Generate(NewNull())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bindings) != 1 || bindings[0].Len() != 0 {
		t.Fatalf("expected one empty binding, got %v", bindings)
	}
}

func TestPrompt_Produce(t *testing.T) {
	g := NewPrompt()
	g.VarNames = []string{"dir", "name"}
	g.In = strings.NewReader("/data\nsample\n")
	g.Out = &strings.Builder{}
	bindings, err := Generate(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bindings) != 1 {
		t.Fatalf("expected one binding, got %d", len(bindings))
	}
	if v, _ := bindings[0].Get("name"); v != "sample" {
		t.Fatalf("unexpected value: %q", v)
	}
}

func TestPrompt_BadMessage(t *testing.T) {
	g := NewPrompt()
	g.VarNames = []string{"a"}
	g.Message = "no placeholder here"
	if err := g.Check(); err == nil {
		t.Fatal("expected validation error for message without a value slot")
	}
}

func TestTextFile_Produce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	content := "alpha\n\n# comment\nbeta\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write file: %v", err)
	}
	g := NewTextFile()
	g.VarName = "line"
	g.File = path
	bindings, err := Generate(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bindings) != 2 {
		t.Fatalf("empty and comment lines must be skipped: %d bindings", len(bindings))
	}
	if v, _ := bindings[1].Get("line"); v != "beta" {
		t.Fatalf("unexpected value: %q", v)
	}
}

func TestTextFile_MissingFile(t *testing.T) {
	g := NewTextFile()
	g.VarName = "line"
	g.File = "/no/such/file"
	if _, err := Generate(g); err == nil {
		t.Fatal("expected validation error for missing file")
	}
}

func TestCSVFile_Produce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.csv")
	content := "dir,name\n/a,x\n/a,y\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write file: %v", err)
	}
	g := NewCSVFile()
	g.File = path
	bindings, err := Generate(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(bindings))
	}
	keys := bindings[0].Keys()
	if len(keys) != 2 || keys[0] != "dir" || keys[1] != "name" {
		t.Fatalf("headers must become variable names in column order: %v", keys)
	}
}

func TestCompose_CartesianProduct(t *testing.T) {
	outer := NewList()
	outer.VarName = "a"
	outer.Values = []string{"1", "2", "3"}
	inner := NewList()
	inner.VarName = "b"
	inner.Values = []string{"x", "y"}

	bindings, err := Compose([]Generator{outer, inner})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bindings) != 6 {
		t.Fatalf("expected 3x2 bindings, got %d", len(bindings))
	}
	// outer-major order: the first two share the same outer value
	for i, want := range []string{"1", "1", "2", "2", "3", "3"} {
		if v, _ := bindings[i].Get("a"); v != want {
			t.Fatalf("binding %d: a=%q, want %q", i, v, want)
		}
	}
	if v, _ := bindings[1].Get("b"); v != "y" {
		t.Fatalf("inner must advance fastest, got b=%q", v)
	}
}

func TestCompose_InnerWins(t *testing.T) {
	outer := NewList()
	outer.VarName = "v"
	outer.Values = []string{"outer"}
	inner := NewList()
	inner.VarName = "v"
	inner.Values = []string{"inner"}

	bindings, err := Compose([]Generator{outer, inner})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := bindings[0].Get("v"); v != "inner" {
		t.Fatalf("inner generator value must win, got %q", v)
	}
}

func TestCompose_NoGenerators(t *testing.T) {
	if _, err := Compose(nil); err == nil {
		t.Fatal("expected configuration error")
	}
}

func TestParseOne(t *testing.T) {
	reg := testRegistry()
	g, err := ParseOne("range -f 1 -t 4", reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := g.(*Range)
	if !ok {
		t.Fatalf("expected range generator, got %T", g)
	}
	if r.From != 1 || r.To != 4 || r.Step != 1 {
		t.Fatalf("options not parsed: %+v", r)
	}
	if r.VarName != "i" {
		t.Fatalf("default variable name not applied: %q", r.VarName)
	}
}

func TestParseOne_TwoGenerators(t *testing.T) {
	reg := testRegistry()
	if _, err := ParseOne("null null", reg); err == nil {
		t.Fatal("expected arity error")
	}
}

func TestParseSpecs_Order(t *testing.T) {
	reg := testRegistry()
	gens, err := ParseSpecs([]string{"list -v a -n outer", "range -f 0 -t 2"}, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gens) != 2 {
		t.Fatalf("expected 2 generators, got %d", len(gens))
	}
	if gens[0].Name() != "list" || gens[1].Name() != "range" {
		t.Fatal("spec order must be preserved")
	}
}
