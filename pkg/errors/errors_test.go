package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNewFormatsMessage(t *testing.T) {
	err := New(ErrCodeMalformedRow, "line %d: %q", 3, "7")

	if err.Code != ErrCodeMalformedRow || err.Cause != nil {
		t.Fatalf("New() = %+v", err)
	}
	if want := `MALFORMED_ROW: line 3: "7"`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("no such file")
	err := Wrap(ErrCodeFileNotFound, cause, "open %s", "g.npz")

	if want := "FILE_NOT_FOUND: open g.npz: no such file"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
}

func TestIsAndGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"Direct", New(ErrCodeInvalidDataset, "empty"), ErrCodeInvalidDataset},
		{"FmtWrapped", fmt.Errorf("convert #1: %w", New(ErrCodeFileNotFound, "x")), ErrCodeFileNotFound},
		{"OutermostWins", Wrap(ErrCodeNetwork, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeNetwork},
		{"Plain", errors.New("plain"), ""},
		{"Nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
			if tt.want != "" && !Is(tt.err, tt.want) {
				t.Errorf("Is(%q) = false", tt.want)
			}
			if Is(tt.err, ErrCodeUnsupported) {
				t.Error("Is(UNSUPPORTED) = true")
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(Wrap(ErrCodeFilesystem, errors.New("EACCES"), "create data/")); got != "create data/" {
		t.Errorf("UserMessage(coded) = %q", got)
	}
	if got := UserMessage(errors.New("plain error")); got != "plain error" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Nil", nil, ExitOK},
		{"Canceled", fmt.Errorf("run: %w", context.Canceled), ExitInterrupted},
		{"BadRow", New(ErrCodeMalformedRow, "x"), ExitUsage},
		{"BadDataset", New(ErrCodeInvalidDataset, "x"), ExitUsage},
		{"Missing", New(ErrCodeFileNotFound, "x"), ExitNotFound},
		{"Disk", New(ErrCodeFilesystem, "x"), ExitIO},
		{"Upload", New(ErrCodeNetwork, "x"), ExitIO},
		{"Internal", New(ErrCodeInternal, "x"), ExitFailure},
		{"Plain", errors.New("x"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
