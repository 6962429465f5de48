package inventory

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"inventory-reconciler/core/storage"

	"github.com/spf13/afero"
)

const (
	contentTypeTSV  = "text/tab-separated-values"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Archiver copies the files produced by a session to object storage.
type Archiver struct {
	client storage.Client
	bucket string
	prefix string
	region string
	now    func() time.Time
	ready  bool
}

// NewArchiver creates an archiver for the configured bucket.
func NewArchiver(client storage.Client, cfg storage.Config) *Archiver {
	return &Archiver{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		region: cfg.Region,
		now:    time.Now,
	}
}

// ObjectName returns the key a local file is archived under.
func (a *Archiver) ObjectName(sessionID, localPath string) string {
	return path.Join(a.prefix, a.now().Format("2006-01-02"), sessionID, filepath.Base(localPath))
}

// Archive uploads every non-empty path. The bucket is created on first use.
func (a *Archiver) Archive(ctx context.Context, fs afero.Fs, sessionID string, paths ...string) error {
	if !a.ready {
		if err := storage.EnsureBucket(ctx, a.client, a.bucket, a.region); err != nil {
			return err
		}
		a.ready = true
	}

	for _, p := range paths {
		if p == "" {
			continue
		}
		data, err := afero.ReadFile(fs, p)
		if err != nil {
			return fmt.Errorf("failed to read %s for archiving: %w", p, err)
		}
		contentType := contentTypeTSV
		if strings.HasSuffix(p, ".xlsx") {
			contentType = contentTypeXLSX
		}
		if err := storage.Upload(ctx, a.client, a.bucket, a.ObjectName(sessionID, p), data, contentType); err != nil {
			return err
		}
	}
	return nil
}
