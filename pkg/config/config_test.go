package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/graphprep/pkg/errors"
)

func lookup(env map[string]string) func(string) string {
	return func(k string) string { return env[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(lookup(nil))
	if cfg.BasePath != DefaultBasePath {
		t.Errorf("BasePath = %q", cfg.BasePath)
	}
	if cfg.Storage.Region != DefaultRegion || cfg.Storage.Bucket != DefaultBucket {
		t.Errorf("Storage = %+v", cfg.Storage)
	}
	if !cfg.Storage.UseSSL {
		t.Error("UseSSL should default to true")
	}
	if cfg.Storage.Enabled() {
		t.Error("storage enabled without endpoint")
	}
}

func TestFromEnv(t *testing.T) {
	cfg := FromEnv(lookup(map[string]string{
		"GRAPHPREP_BASE_PATH":   "/srv/data/",
		"GRAPHPREP_ATTR_MODE":   " values ",
		"GRAPHPREP_S3_ENDPOINT": "minio:9000",
		"GRAPHPREP_S3_USE_SSL":  "false",
		"MINIO_ROOT_USER":       "minio",
		"MINIO_ROOT_PASSWORD":   "secret",
	}))
	if cfg.BasePath != "/srv/data/" || cfg.AttrMode != "values" {
		t.Errorf("cfg = %+v", cfg)
	}
	s := cfg.Storage
	if !s.Enabled() || s.UseSSL || s.AccessKey != "minio" || s.SecretKey != "secret" {
		t.Errorf("Storage = %+v", s)
	}
}

func TestFromEnvExplicitKeysWin(t *testing.T) {
	cfg := FromEnv(lookup(map[string]string{
		"GRAPHPREP_S3_ACCESS_KEY": "ak",
		"MINIO_ROOT_USER":         "minio",
		"GRAPHPREP_S3_USE_SSL":    "maybe",
	}))
	if cfg.Storage.AccessKey != "ak" {
		t.Errorf("AccessKey = %q", cfg.Storage.AccessKey)
	}
	if !cfg.Storage.UseSSL {
		t.Error("unparsable UseSSL should fall back to true")
	}
}

const jobsFile = `
base_path = "out/"
attr_mode = "values"

[[convert]]
input  = "raw/blogs.gml"
output = "out/blogs/blogs"

[[magfit]]
dataset    = "blogs"
input      = "raw/blogs.gml"
attributes = 2

[[export]]
input  = "raw/blogs.gml"
format = "adjlist"
output = "out/blogs/blogs.adjlist"

[[features]]
input  = "out/blogs/blogs.txt"
output = "out/blogs/features.csv"
`

func TestParseJobs(t *testing.T) {
	jobs, err := ParseJobs([]byte(jobsFile))
	if err != nil {
		t.Fatalf("ParseJobs: %v", err)
	}
	if jobs.BasePath != "out/" || jobs.AttrMode != "values" {
		t.Errorf("header = %q %q", jobs.BasePath, jobs.AttrMode)
	}
	if jobs.Len() != 4 {
		t.Errorf("Len = %d, want 4", jobs.Len())
	}
	if jobs.MAGFit[0].Attributes != 2 || jobs.Export[0].Format != "adjlist" {
		t.Errorf("jobs = %+v", jobs)
	}
}

func TestParseJobsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code errors.Code
	}{
		{"Syntax", "[[convert]\n", errors.ErrCodeInvalidFormat},
		{"UnknownKey", "[[convert]]\ninput = \"a\"\noutput = \"b\"\nbogus = 1\n", errors.ErrCodeInvalidInput},
		{"ConvertMissingOutput", "[[convert]]\ninput = \"a\"\n", errors.ErrCodeInvalidInput},
		{"MAGFitBadDataset", "[[magfit]]\ndataset = \"a/b\"\ninput = \"g.gml\"\n", errors.ErrCodeInvalidDataset},
		{"ExportMissingFormat", "[[export]]\ninput = \"a\"\noutput = \"b\"\n", errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJobs([]byte(tt.src))
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoadJobs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.toml")
	if err := os.WriteFile(path, []byte(jobsFile), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadJobs(path); err != nil {
		t.Fatalf("LoadJobs: %v", err)
	}

	_, err := LoadJobs(filepath.Join(t.TempDir(), "none.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file err = %v", err)
	}
}
