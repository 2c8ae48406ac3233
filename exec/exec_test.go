package exec

import (
	"strings"
	"testing"

	"github.com/kbukum/pipekit/flow"
	"github.com/kbukum/pipekit/generator"
)

func testRegistry() *flow.Registry {
	reg := flow.NewRegistry()
	generator.Register(reg)
	return reg
}

func TestExpandVars(t *testing.T) {
	binding := generator.NewBinding().Set("dir", "/a").Set("name", "x")
	tokens := ExpandVars([]string{"-i", "{dir}/{name}.png", "{missing}"}, binding)
	if tokens[1] != "/a/x.png" {
		t.Fatalf("unexpected expansion: %q", tokens[1])
	}
	if tokens[2] != "{missing}" {
		t.Fatalf("unbound variables must stay verbatim: %q", tokens[2])
	}
}

func TestExpandVars_NoRecursion(t *testing.T) {
	binding := generator.NewBinding().Set("a", "{b}").Set("b", "deep")
	tokens := ExpandVars([]string{"{a}", "{a}-{b}"}, binding)
	if tokens[0] != "{b}" {
		t.Fatalf("substituted values must not be re-expanded: %q", tokens[0])
	}
	if tokens[1] != "{b}-deep" {
		t.Fatalf("original occurrences must still expand: %q", tokens[1])
	}
}

func TestExpandVars_InputUntouched(t *testing.T) {
	binding := generator.NewBinding().Set("v", "x")
	in := []string{"{v}"}
	ExpandVars(in, binding)
	if in[0] != "{v}" {
		t.Fatal("expansion must not mutate the template")
	}
}

func TestDriver_DryRun(t *testing.T) {
	var out strings.Builder
	driver := NewDriver(testRegistry(), nil)
	driver.Out = &out

	err := driver.Run(&Options{
		Generators: []string{"list -n dir -v /a", "list -n name -v x,y"},
		Template:   []string{"convert", "-i", "{dir}/{name}.png"},
		Format:     flow.FormatCmdline,
		DryRun:     true,
		Program:    "convert",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out.String())
	}
	if lines[0] != "-i /a/x.png" || lines[1] != "-i /a/y.png" {
		t.Fatalf("unexpected output: %v", lines)
	}
}

func TestDriver_DryRunPrefix(t *testing.T) {
	var out strings.Builder
	driver := NewDriver(testRegistry(), nil)
	driver.Out = &out

	err := driver.Run(&Options{
		Generators: []string{"list -n name -v x"},
		Template:   []string{"-i", "{name}.png"},
		DryRun:     true,
		Prefix:     "convert",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "convert -i x.png" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestDriver_Dispatch(t *testing.T) {
	var calls [][]string
	entry := func(args []string) error {
		calls = append(calls, args)
		return nil
	}
	driver := NewDriver(testRegistry(), entry)

	err := driver.Run(&Options{
		Generators: []string{"range -f 1 -t 3"},
		Template:   []string{"step-{i}"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 2 {
		t.Fatalf("expected 2 dispatches, got %d", len(calls))
	}
	if calls[0][0] != "step-1" || calls[1][0] != "step-2" {
		t.Fatalf("unexpected dispatches: %v", calls)
	}
}

func TestDriver_Hooks(t *testing.T) {
	var order []string
	driver := NewDriver(testRegistry(), func(args []string) error {
		order = append(order, "run")
		return nil
	})
	driver.PreHook = func(opts *Options) error {
		order = append(order, "pre")
		return nil
	}
	driver.PostHook = func(opts *Options) error {
		order = append(order, "post")
		return nil
	}

	err := driver.Run(&Options{
		Generators: []string{"null"},
		Template:   []string{"noop"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(order, ",") != "pre,run,post" {
		t.Fatalf("unexpected hook order: %v", order)
	}
}

func TestDriver_NoGenerators(t *testing.T) {
	driver := NewDriver(testRegistry(), nil)
	if err := driver.Run(&Options{Template: []string{"noop"}}); err == nil {
		t.Fatal("expected configuration error")
	}
}

func TestDriver_CompositionCount(t *testing.T) {
	var calls int
	driver := NewDriver(testRegistry(), func(args []string) error {
		calls++
		return nil
	})
	err := driver.Run(&Options{
		Generators: []string{"range -f 0 -t 3", "list -n v -v a,b"},
		Template:   []string{"x"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 6 {
		t.Fatalf("expected 3x2 executions, got %d", calls)
	}
}
