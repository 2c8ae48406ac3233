package flow

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPipeline_Cmdline(t *testing.T) {
	tokens := []string{"readerA", "#skip", "-i", "dir", "writerB"}
	got, err := LoadPipeline(tokens, FormatCmdline, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("comments must be stripped: %v", got)
	}
}

func TestLoadPipeline_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.txt")
	content := "readerA -i \"my dir\"\nfilterA -s _x\nwriterB -o out\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write template: %v", err)
	}
	got, err := LoadPipeline([]string{path}, FormatFile, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"readerA", "-i", "my dir", "filterA", "-s", "_x", "writerB", "-o", "out"}
	if len(got) != len(want) {
		t.Fatalf("unexpected tokens: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadPipeline_FileExpandsPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipeline.txt")
	if err := os.WriteFile(path, []byte("readerA writerB"), 0o644); err != nil {
		t.Fatalf("cannot write template: %v", err)
	}
	expand := func(s string) string {
		if s == "{dir}/pipeline.txt" {
			return path
		}
		return s
	}
	got, err := LoadPipeline([]string{"{dir}/pipeline.txt"}, FormatFile, expand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected tokens: %v", got)
	}
}

func TestLoadPipeline_FileMissing(t *testing.T) {
	_, err := LoadPipeline([]string{"/no/such/file"}, FormatFile, nil)
	if err == nil {
		t.Fatal("expected load error")
	}
}

func TestParsePipelineFormat(t *testing.T) {
	if _, err := ParsePipelineFormat("cmdline"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParsePipelineFormat("yaml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestStripProgram(t *testing.T) {
	tokens := []string{"pipekit-exec", "readerA", "writerB"}
	got := StripProgram(tokens, "pipekit")
	if len(got) != 2 || got[0] != "readerA" {
		t.Fatalf("program token not stripped: %v", got)
	}
	got = StripProgram(tokens, "other")
	if len(got) != 3 {
		t.Fatalf("unrelated program must not strip: %v", got)
	}
}
