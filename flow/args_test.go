package flow

import (
	"testing"

	"github.com/kbukum/pipekit/errors"
)

func TestSplitCmdline(t *testing.T) {
	tokens, err := SplitCmdline(`readerA -i "my dir" filterA -s _x`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"readerA", "-i", "my dir", "filterA", "-s", "_x"}
	if len(tokens) != len(want) {
		t.Fatalf("unexpected token count: %v", tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("token %d = %q, want %q", i, tokens[i], want[i])
		}
	}
}

func TestJoinCmdline_Quotes(t *testing.T) {
	joined := JoinCmdline([]string{"readerA", "-i", "my dir"})
	tokens, err := SplitCmdline(joined)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 3 || tokens[2] != "my dir" {
		t.Fatalf("round trip lost quoting: %q -> %v", joined, tokens)
	}
}

func TestStripComments(t *testing.T) {
	tokens := StripComments([]string{"readerA", "#note", "-i", "dir", "#"})
	if len(tokens) != 3 {
		t.Fatalf("unexpected tokens: %v", tokens)
	}
}

func TestSplitGroups(t *testing.T) {
	names := []string{"readerA", "filterA", "writerB"}
	tokens := []string{"readerA", "-i", "dir", "filterA", "writerB", "-o", "out"}
	groups, err := SplitGroups(tokens, names)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].Name != "readerA" || len(groups[0].Args) != 2 {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	if groups[1].Name != "filterA" || len(groups[1].Args) != 0 {
		t.Fatalf("unexpected second group: %+v", groups[1])
	}
	if groups[2].Name != "writerB" || groups[2].Args[1] != "out" {
		t.Fatalf("unexpected third group: %+v", groups[2])
	}
}

func TestSplitGroups_StrayLeadingToken(t *testing.T) {
	_, err := SplitGroups([]string{"-i", "dir", "readerA"}, []string{"readerA"})
	if err == nil {
		t.Fatal("expected composition error")
	}
	if !errors.IsComposition(err) {
		t.Fatalf("expected composition error, got %v", err)
	}
}
