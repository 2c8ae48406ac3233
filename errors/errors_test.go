package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestFlowError_Error(t *testing.T) {
	err := Configuration("no value for gate field")
	if got := err.Error(); got != "CONFIGURATION: no value for gate field" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestFlowError_ErrorWithCause(t *testing.T) {
	cause := stderrors.New("open failed")
	err := Load("/no/such/file", cause)
	if !strings.Contains(err.Error(), "open failed") {
		t.Fatalf("cause not included: %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected Is to match wrapped cause")
	}
}

func TestFlowError_WithDetail(t *testing.T) {
	err := Composition("more than one reader defined").WithDetail("plugin", "list-files")
	if err.Details["plugin"] != "list-files" {
		t.Fatalf("detail not set: %v", err.Details)
	}
}

func TestArity(t *testing.T) {
	err := Arity("filter", 1, 3)
	if err.Code != ErrCodeComposition {
		t.Fatalf("expected composition code, got %s", err.Code)
	}
	if got := err.Error(); !strings.Contains(got, "expected 1 filter plugin(s), but got 3") {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		err   error
		check func(error) bool
		want  bool
	}{
		{Configuration("x"), IsConfiguration, true},
		{Composition("x"), IsComposition, true},
		{Validation("x"), IsValidation, true},
		{Configuration("x"), IsComposition, false},
		{stderrors.New("plain"), IsConfiguration, false},
		{fmt.Errorf("wrapped: %w", Validation("x")), IsValidation, true},
	}
	for i, tt := range tests {
		if got := tt.check(tt.err); got != tt.want {
			t.Errorf("case %d: got %v, want %v", i, got, tt.want)
		}
	}
}

func TestIsSetup(t *testing.T) {
	if !IsSetup(Composition("two readers")) {
		t.Fatal("composition errors are setup errors")
	}
	if IsSetup(New(ErrCodeRuntime, "inner pipeline failed")) {
		t.Fatal("runtime errors are not setup errors")
	}
}
