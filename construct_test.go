// construct_test.go — verification of constructors and foreign-error conversion.
package snag

import (
	"errors"
	"testing"
)

func TestErr_ReturnsFreshFailure(t *testing.T) {
	t.Parallel()

	err := Err("directory not writable")
	s := asSnag(t, err)
	if s.Issue() != "directory not writable" || s.Depth() != 0 {
		t.Fatalf("Err should wrap New(issue); got %#v", s)
	}
}

func TestFrom_NilStaysNil(t *testing.T) {
	t.Parallel()

	if got := From(nil); got != nil {
		t.Fatalf("From(nil): want=nil got=%#v", got)
	}
}

func TestFrom_SnagPassesThroughUnchanged(t *testing.T) {
	t.Parallel()

	s := New("root").Layer("top")
	if got := From(s); got != s {
		t.Fatalf("From(*Snag) must return the same value, not a copy")
	}
}

func TestFrom_ForeignErrorBecomesRootCause(t *testing.T) {
	t.Parallel()

	got := From(errors.New("permission denied"))
	if !got.Equal(New("permission denied")) {
		t.Fatalf("foreign error should become a fresh root cause; got %#v", got)
	}
}
