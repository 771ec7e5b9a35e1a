package features

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphprep/pkg/errors"
)

func TestWriteNumeric(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNumeric(&buf, [][]int{{1, 2, 3}, {4, 5}}); err != nil {
		t.Fatalf("WriteNumeric: %v", err)
	}
	if got, want := buf.String(), "1,2,3\n4,5\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteNumericFloats(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNumeric(&buf, [][]float64{{0.5, 1}, {}, {-2.25}}); err != nil {
		t.Fatalf("WriteNumeric: %v", err)
	}
	if got, want := buf.String(), "0.5,1\n\n-2.25\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSaveNumeric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feat", "x.csv")
	if err := SaveNumeric(log.New(&bytes.Buffer{}), path, [][]int64{{7}}); err != nil {
		t.Fatalf("SaveNumeric: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "7\n" {
		t.Errorf("content = %q", data)
	}
}

func TestReadNumeric(t *testing.T) {
	rows, err := ReadNumeric(strings.NewReader("# header\n1 2 3\n\n  4\t5  \n"))
	if err != nil {
		t.Fatalf("ReadNumeric: %v", err)
	}
	if len(rows) != 2 || len(rows[0]) != 3 || rows[1][1] != 5 {
		t.Errorf("rows = %v", rows)
	}

	_, err = ReadNumeric(strings.NewReader("1 x\n"))
	if !errors.Is(err, errors.ErrCodeMalformedRow) {
		t.Errorf("ReadNumeric bad = %v, want MALFORMED_ROW", err)
	}
}

func TestParseTokenRow(t *testing.T) {
	tests := []struct {
		row     string
		want    string
		wantErr bool
	}{
		{"a b c \n", "a,b,c", false},
		{"a b c ", "a,b,c", false},
		{"a b c", "a,b", false},
		{"x ", "x", false},
		{"a  b ", "a,,b", false},
		{"single", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTokenRow(tt.row)
		if tt.wantErr {
			if !errors.Is(err, errors.ErrCodeMalformedRow) {
				t.Errorf("ParseTokenRow(%q) err = %v, want MALFORMED_ROW", tt.row, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTokenRow(%q): %v", tt.row, err)
			continue
		}
		if strings.Join(got, ",") != tt.want {
			t.Errorf("ParseTokenRow(%q) = %q, want %q", tt.row, got, tt.want)
		}
	}
}

func TestWriteTokens(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTokens(&buf, []string{"a b c \n", "1 0 1 0.25"}); err != nil {
		t.Fatalf("WriteTokens: %v", err)
	}
	if got, want := buf.String(), "a,b,c\n1,0,1\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteTokensMalformedWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTokens(&buf, []string{"a b ", "bad"})
	if !errors.Is(err, errors.ErrCodeMalformedRow) {
		t.Fatalf("err = %v, want MALFORMED_ROW", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %q before failing", buf.String())
	}
}

func TestSaveTokensMalformedCreatesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.csv")
	err := SaveTokens(log.New(&bytes.Buffer{}), path, []string{"bad"})
	if !errors.Is(err, errors.ErrCodeMalformedRow) {
		t.Fatalf("err = %v, want MALFORMED_ROW", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("file exists after failed save: %v", statErr)
	}
}

func TestReadTokenRows(t *testing.T) {
	rows, err := ReadTokenRows(strings.NewReader("a b \r\n\n  \nc d e\n"))
	if err != nil {
		t.Fatalf("ReadTokenRows: %v", err)
	}
	if len(rows) != 2 || rows[0] != "a b " || rows[1] != "c d e" {
		t.Errorf("rows = %q", rows)
	}
}
