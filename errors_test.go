package relaxed_test

import (
	"errors"
	"testing"

	relaxed "github.com/maotv/json-relaxed"
)

func TestNewDecodeError(t *testing.T) {
	err := relaxed.NewDecodeError("boom")
	if err.Error() != "boom" {
		t.Fatalf("expected message boom, got %q", err.Error())
	}
}

func TestTypeMismatchSharedRecords(t *testing.T) {
	if err := relaxed.TypeMismatch(relaxed.KindArray); !errors.Is(err, relaxed.ErrTypeMismatchArray) {
		t.Fatalf("expected the shared array record, got %v", err)
	}
	if err := relaxed.TypeMismatch(relaxed.KindObject); !errors.Is(err, relaxed.ErrTypeMismatchObject) {
		t.Fatalf("expected the shared object record, got %v", err)
	}

	other := relaxed.TypeMismatch(relaxed.KindBool)
	if other.Error() != "type mismatch: bool" {
		t.Fatalf("expected \"type mismatch: bool\", got %q", other.Error())
	}
	if errors.Is(other, relaxed.ErrTypeMismatchArray) {
		t.Fatalf("fresh records must not alias the shared ones")
	}
}
