// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so reconciled inventory files, their backups
// and exported reports can be archived to AWS S3 or a self-hosted MinIO
// instance. Archiving is optional and disabled by default.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket (through EnsureBucket): prepare the archive bucket.
//   - PutObject (through Upload): store one archived file.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, "inventory", "")
//	err = storage.Upload(ctx, client, "inventory", "reconciled/inv.tsv", data, "text/tab-separated-values")
package storage
