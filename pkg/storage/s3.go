// Package storage publishes prepared dataset directories to an
// S3-compatible object store (AWS S3, MinIO).
//
// Objects are keyed <run-id>/<dataset>/<file>, so every batch run gets its
// own prefix and re-running never overwrites an earlier publication.
package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/matzehuels/graphprep/pkg/config"
	"github.com/matzehuels/graphprep/pkg/errors"
	"github.com/matzehuels/graphprep/pkg/observability"
)

// S3Store uploads files to one bucket. The bucket is created on first use.
type S3Store struct {
	client     *minio.Client
	bucketName string
	region     string
	logger     *log.Logger
	initOnce   sync.Once
	initErr    error
}

// NewS3Store validates cfg and creates a client. No request is made until
// the first upload or listing.
func NewS3Store(cfg config.StorageConfig, logger *log.Logger) (*S3Store, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if err := errors.ValidateEndpoint(endpoint); err != nil {
		return nil, err
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "s3 access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "s3 bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = config.DefaultRegion
	}
	if logger == nil {
		logger = log.Default()
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "init s3 client")
	}

	return &S3Store{
		client:     client,
		bucketName: bucket,
		region:     region,
		logger:     logger,
	}, nil
}

// Bucket returns the target bucket name.
func (s *S3Store) Bucket() string { return s.bucketName }

func (s *S3Store) ensureBucket(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucketName)
		if err != nil {
			s.initErr = err
			return
		}
		if exists {
			return
		}
		s.logger.Info("creating bucket", "bucket", s.bucketName, "region", s.region)
		s.initErr = s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{Region: s.region})
	})
	if s.initErr != nil {
		return errors.Wrap(errors.ErrCodeNetwork, s.initErr, "ensure bucket %s", s.bucketName)
	}
	return nil
}

// Put uploads size bytes from r to <runID>/<path>.
func (s *S3Store) Put(ctx context.Context, runID, path string, r io.Reader, size int64) error {
	runID = strings.TrimSpace(runID)
	path = strings.TrimSpace(path)
	if runID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "run id is required")
	}
	if path == "" {
		return errors.New(errors.ErrCodeInvalidInput, "object path is required")
	}
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	key := objectKey(runID, path)
	start := time.Now()
	_, err := s.client.PutObject(ctx, s.bucketName, key, r, size, minio.PutObjectOptions{
		ContentType: contentType(path),
	})
	observability.Storage().OnUpload(ctx, s.bucketName, key, size, time.Since(start), err)
	if err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "put %s", key)
	}
	return nil
}

// Publish uploads every regular file under dir. Keys keep the directory's
// own name, so publishing data/polblogs yields <runID>/polblogs/... keys.
// It returns the uploaded keys in upload order.
func (s *S3Store) Publish(ctx context.Context, runID, dir string) ([]string, error) {
	files, err := collectFiles(dir)
	if err != nil {
		return nil, err
	}

	root := filepath.Dir(filepath.Clean(dir))
	keys := make([]string, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return keys, err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return keys, errors.Wrap(errors.ErrCodeInvalidPath, err, "relative path of %s", path)
		}
		if err := s.putFile(ctx, runID, filepath.ToSlash(rel), path); err != nil {
			return keys, err
		}
		key := objectKey(runID, filepath.ToSlash(rel))
		s.logger.Debug("uploaded", "key", key)
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *S3Store) putFile(ctx context.Context, runID, rel, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFilesystem, err, "open %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errors.Wrap(errors.ErrCodeFilesystem, err, "stat %s", path)
	}
	return s.Put(ctx, runID, rel, f, info.Size())
}

// List returns the object paths stored under runID, relative to it, sorted.
func (s *S3Store) List(ctx context.Context, runID string) ([]string, error) {
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "run id is required")
	}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	prefix := strings.TrimSuffix(runID, "/") + "/"
	paths := make([]string, 0, 32)
	for obj := range s.client.ListObjects(ctx, s.bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, errors.Wrap(errors.ErrCodeNetwork, obj.Err, "list %s", prefix)
		}
		if obj.Key == "" {
			continue
		}
		paths = append(paths, strings.TrimPrefix(obj.Key, prefix))
	}
	sort.Strings(paths)
	return paths, nil
}

// collectFiles lists the regular files under dir in lexical order.
func collectFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "dataset directory %s", dir)
		}
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "stat %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "%s is not a directory", dir)
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "walk %s", dir)
	}
	return files, nil
}

func objectKey(runID, path string) string {
	normalized := strings.TrimLeft(strings.TrimSpace(path), "/")
	return strings.TrimSpace(runID) + "/" + normalized
}

var contentTypes = map[string]string{
	".npz":     "application/zip",
	".csv":     "text/csv",
	".json":    "application/json",
	".svg":     "image/svg+xml",
	".gml":     "text/plain",
	".txt":     "text/plain",
	".adjlist": "text/plain",
	".edges":   "text/plain",
	".dot":     "text/vnd.graphviz",
	".config":  "text/plain",
}

func contentType(path string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// String describes the store for log output.
func (s *S3Store) String() string {
	return fmt.Sprintf("s3://%s (%s)", s.bucketName, s.client.EndpointURL().Host)
}
