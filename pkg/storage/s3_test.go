package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/graphprep/pkg/config"
	"github.com/matzehuels/graphprep/pkg/errors"
)

func validConfig() config.StorageConfig {
	return config.StorageConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "datasets",
	}
}

func TestNewS3Store(t *testing.T) {
	s, err := NewS3Store(validConfig(), log.New(&bytes.Buffer{}))
	require.NoError(t, err)
	assert.Equal(t, "datasets", s.Bucket())
	assert.Equal(t, config.DefaultRegion, s.region)
	assert.Equal(t, "s3://datasets (localhost:9000)", s.String())
}

func TestNewS3StoreValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.StorageConfig)
	}{
		{"NoEndpoint", func(c *config.StorageConfig) { c.Endpoint = "" }},
		{"EndpointWithScheme", func(c *config.StorageConfig) { c.Endpoint = "http://localhost:9000" }},
		{"NoAccessKey", func(c *config.StorageConfig) { c.AccessKey = " " }},
		{"NoSecretKey", func(c *config.StorageConfig) { c.SecretKey = "" }},
		{"NoBucket", func(c *config.StorageConfig) { c.Bucket = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			_, err := NewS3Store(cfg, nil)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "got %v", err)
		})
	}
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "run-1/polblogs/graph.txt", objectKey(" run-1 ", "/polblogs/graph.txt"))
	assert.Equal(t, "run-1/a.npz", objectKey("run-1", "a.npz"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/zip", contentType("x/polblogs.npz"))
	assert.Equal(t, "text/csv", contentType("FEATURES.CSV"))
	assert.Equal(t, "application/octet-stream", contentType("blob"))
}

func TestCollectFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "polblogs")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	for _, name := range []string{"graph.txt", "inti.config", filepath.Join("sub", "x.csv")} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	files, err := collectFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "graph.txt"),
		filepath.Join(dir, "inti.config"),
		filepath.Join(dir, "sub", "x.csv"),
	}, files)
}

func TestPublishMissingDir(t *testing.T) {
	s, err := NewS3Store(validConfig(), log.New(&bytes.Buffer{}))
	require.NoError(t, err)

	_, err = s.Publish(context.Background(), "run", filepath.Join(t.TempDir(), "none"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "got %v", err)
}

func TestPublishNotADir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	s, err := NewS3Store(validConfig(), log.New(&bytes.Buffer{}))
	require.NoError(t, err)

	_, err = s.Publish(context.Background(), "run", path)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidPath), "got %v", err)
}

func TestPutRequiresRunID(t *testing.T) {
	s, err := NewS3Store(validConfig(), log.New(&bytes.Buffer{}))
	require.NoError(t, err)

	err = s.Put(context.Background(), " ", "a.txt", bytes.NewReader(nil), 0)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "got %v", err)
}
