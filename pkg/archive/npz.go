package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sbinet/npyio"

	"github.com/matzehuels/graphprep/pkg/errors"
	"github.com/matzehuels/graphprep/pkg/fsutil"
	"github.com/matzehuels/graphprep/pkg/sparse"
)

// Ext is the archive file extension.
const Ext = ".npz"

// Write encodes a as a deflate-compressed npz stream.
func (a *Archive) Write(w io.Writer) error {
	zw := zip.NewWriter(w)
	fields := a.Fields()
	for _, name := range fieldOrder {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: name + ".npy", Method: zip.Deflate})
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := npyio.Write(fw, fields[name]); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return zw.Close()
}

// Save writes a to path, appending ".npz" when path lacks it, and returns
// the written path.
func (a *Archive) Save(logger *log.Logger, path string) (string, error) {
	if !strings.HasSuffix(path, Ext) {
		path += Ext
	}
	if err := fsutil.WriteFile(logger, path, a.Write); err != nil {
		return "", err
	}
	return path, nil
}

// Open reads the archive at path.
func Open(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "archive %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "open %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "stat %s", path)
	}
	a, err := Read(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Read decodes an archive from r. Every field except adj_shape is
// required.
func Read(r io.ReaderAt, size int64) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "not an npz archive")
	}
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[strings.TrimSuffix(f.Name, ".npy")] = f
	}

	fr := fieldReader{files: files}
	a := &Archive{
		Adj: &sparse.CSR{
			Data:    fr.floats(FieldAdjData),
			Indices: fr.indices(FieldAdjIndices),
			Indptr:  fr.indices(FieldAdjIndptr),
		},
		Attr: &sparse.CSR{
			Data:    fr.floats(FieldAttrData),
			Indices: fr.indices(FieldAttrIndices),
			Indptr:  fr.indices(FieldAttrIndptr),
			Shape:   fr.shape(FieldAttrShape),
		},
		Labels: fr.ints(FieldLabels),
	}
	if _, ok := files[FieldAdjShape]; ok {
		a.Adj.Shape = fr.shape(FieldAdjShape)
	} else if n := int64(len(a.Adj.Indptr) - 1); n >= 0 {
		a.Adj.Shape = [2]int64{n, n}
	}
	if fr.err != nil {
		return nil, fr.err
	}

	if err := a.Adj.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "adjacency matrix")
	}
	if err := a.Attr.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "attribute matrix")
	}
	return a, nil
}

// fieldReader reads named arrays and keeps the first error.
type fieldReader struct {
	files map[string]*zip.File
	err   error
}

func (fr *fieldReader) file(name string) *zip.File {
	if fr.err != nil {
		return nil
	}
	f, ok := fr.files[name]
	if !ok {
		fr.err = errors.New(errors.ErrCodeInvalidFormat, "missing field %s", name)
		return nil
	}
	return f
}

func (fr *fieldReader) fail(name string, err error) {
	fr.err = errors.Wrap(errors.ErrCodeInvalidFormat, err, "field %s", name)
}

func (fr *fieldReader) floats(name string) []float64 {
	f := fr.file(name)
	if f == nil {
		return nil
	}
	out, err := readFloats(f)
	if err != nil {
		fr.fail(name, err)
	}
	return out
}

func (fr *fieldReader) ints(name string) []int64 {
	f := fr.file(name)
	if f == nil {
		return nil
	}
	out, err := readInts(f)
	if err != nil {
		fr.fail(name, err)
	}
	return out
}

func (fr *fieldReader) indices(name string) []int32 {
	vs := fr.ints(name)
	if vs == nil {
		return nil
	}
	out := make([]int32, len(vs))
	for i, v := range vs {
		if v < 0 || v > 1<<31-1 {
			fr.fail(name, fmt.Errorf("index %d out of int32 range", v))
			return nil
		}
		out[i] = int32(v)
	}
	return out
}

func (fr *fieldReader) shape(name string) [2]int64 {
	vs := fr.ints(name)
	if fr.err != nil {
		return [2]int64{}
	}
	if len(vs) != 2 {
		fr.fail(name, fmt.Errorf("shape has %d entries, want 2", len(vs)))
		return [2]int64{}
	}
	return [2]int64{vs[0], vs[1]}
}

// readAs decodes f into a []T. npyio refuses a dtype that differs from
// T, so callers try the dtypes numpy writers pick in turn.
func readAs[T any](f *zip.File) ([]T, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	var out []T
	if err := npyio.Read(rc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func readFloats(f *zip.File) ([]float64, error) {
	if vs, err := readAs[float64](f); err == nil {
		return vs, nil
	}
	if vs, err := readAs[float32](f); err == nil {
		return convert[float32, float64](vs), nil
	}
	if vs, err := readAs[int64](f); err == nil {
		return convert[int64, float64](vs), nil
	}
	vs, err := readAs[int32](f)
	if err != nil {
		return nil, fmt.Errorf("unsupported dtype: %w", err)
	}
	return convert[int32, float64](vs), nil
}

func readInts(f *zip.File) ([]int64, error) {
	if vs, err := readAs[int64](f); err == nil {
		return vs, nil
	}
	if vs, err := readAs[int32](f); err == nil {
		return convert[int32, int64](vs), nil
	}
	vs, err := readAs[float64](f)
	if err != nil {
		return nil, fmt.Errorf("unsupported dtype: %w", err)
	}
	out := make([]int64, len(vs))
	for i, v := range vs {
		if v != float64(int64(v)) {
			return nil, fmt.Errorf("non-integral value %v", v)
		}
		out[i] = int64(v)
	}
	return out, nil
}

func convert[S, D int32 | int64 | float32 | float64](in []S) []D {
	out := make([]D, len(in))
	for i, v := range in {
		out[i] = D(v)
	}
	return out
}
