package features

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphprep/pkg/errors"
	"github.com/matzehuels/graphprep/pkg/fsutil"
)

// ParseTokenRow splits row on single spaces and drops the final segment.
//
//	"a b c \n" -> [a b c]
//	"a b c"    -> [a b]
//
// A row with fewer than two segments has nothing left to keep and is
// reported as ErrCodeMalformedRow.
func ParseTokenRow(row string) ([]string, error) {
	parts := strings.Split(row, " ")
	if len(parts) < 2 {
		return nil, errors.New(errors.ErrCodeMalformedRow, "token row %q has fewer than two segments", row)
	}
	return parts[:len(parts)-1], nil
}

// WriteTokens writes each row as its parsed tokens joined by commas.
// All rows are parsed before anything is written.
func WriteTokens(w io.Writer, rows []string) error {
	parsed, err := parseTokenRows(rows)
	if err != nil {
		return err
	}
	return writeTokenRows(w, parsed)
}

// SaveTokens writes rows to path with [WriteTokens]. A malformed row is
// reported before path is created.
func SaveTokens(logger *log.Logger, path string, rows []string) error {
	parsed, err := parseTokenRows(rows)
	if err != nil {
		return err
	}
	return fsutil.WriteFile(logger, path, func(w io.Writer) error {
		return writeTokenRows(w, parsed)
	})
}

// ReadTokenRows returns the non-blank lines of r without their line endings.
func ReadTokenRows(r io.Reader) ([]string, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return rows, nil
}

func parseTokenRows(rows []string) ([][]string, error) {
	out := make([][]string, len(rows))
	for i, row := range rows {
		toks, err := ParseTokenRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out[i] = toks
	}
	return out, nil
}

func writeTokenRows(w io.Writer, rows [][]string) error {
	bw := bufio.NewWriter(w)
	for _, toks := range rows {
		if _, err := bw.WriteString(strings.Join(toks, ",") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
