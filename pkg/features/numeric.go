package features

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphprep/pkg/errors"
	"github.com/matzehuels/graphprep/pkg/fsutil"
)

// Number is any integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// WriteNumeric writes each row as its values joined by commas.
// [[1 2 3] [4 5]] becomes "1,2,3\n4,5\n". An empty row is an empty line.
func WriteNumeric[T Number](w io.Writer, rows [][]T) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for i, v := range row {
			if i > 0 {
				bw.WriteByte(',')
			}
			bw.WriteString(fmt.Sprint(v))
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveNumeric writes rows to path with [WriteNumeric], creating the parent
// directory if needed.
func SaveNumeric[T Number](logger *log.Logger, path string, rows [][]T) error {
	return fsutil.WriteFile(logger, path, func(w io.Writer) error {
		return WriteNumeric(w, rows)
	})
}

// ReadNumeric parses a whitespace-separated numeric table. Blank lines and
// lines starting with '#' are skipped; rows may differ in length.
func ReadNumeric(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeMalformedRow, err, "line %d: column %d", lineNo, i+1)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return rows, nil
}
