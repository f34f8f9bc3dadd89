package types

import (
	"errors"
	"testing"
)

type lookupError struct {
	id string
}

func (e *lookupError) Error() string {
	return "item " + e.id + " not found"
}

type codeError struct {
	code int
}

func (e codeError) Error() string {
	return "code error"
}

func TestFailed_PointerFailure(t *testing.T) {
	if Failed[*lookupError](nil) {
		t.Errorf("expected nil pointer to be a success")
	}
	if !Failed(&lookupError{id: "2"}) {
		t.Errorf("expected non-nil pointer to be a failure")
	}
}

func TestFailed_ValueFailure(t *testing.T) {
	if Failed(codeError{}) {
		t.Errorf("expected zero struct to be a success")
	}
	if !Failed(codeError{code: 42}) {
		t.Errorf("expected non-zero struct to be a failure")
	}
}

func TestFailed_ErrorInterface(t *testing.T) {
	if Failed[error](nil) {
		t.Errorf("expected nil error to be a success")
	}
	if !Failed(errors.New("boom")) {
		t.Errorf("expected non-nil error to be a failure")
	}

	// a typed nil pointer stored in the error interface is not nil
	var typedNil *lookupError
	var err error = typedNil
	if !Failed(err) {
		t.Errorf("expected typed nil inside the error interface to be a failure")
	}
}

func TestFailed_Never(t *testing.T) {
	var n Never
	if Failed(n) {
		t.Errorf("expected Never to never fail")
	}
}

func TestNever_IsNilPointer(t *testing.T) {
	var n Never
	var err error = n

	// unlike an interface, a Never can't be implemented by embedding: its zero value is the nil pointer
	if n != nil {
		t.Errorf("expected zero Never to be nil")
	}
	if err.Error() != "never" {
		t.Errorf("expected the nil Never to be printable, got %q", err.Error())
	}
}
