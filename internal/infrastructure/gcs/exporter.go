package gcs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/oksasatya/go-ddd-user-management/internal/application"
)

const exportPageSize = 100

// NewClient creates a Google Cloud Storage client. If credsPath is empty, ADC is used.
func NewClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

// ObjectWriter stores one object and returns where it ended up.
type ObjectWriter interface {
	WriteObject(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// Bucket writes objects into a single GCS bucket.
type Bucket struct {
	client *storage.Client
	name   string
}

func NewBucket(client *storage.Client, name string) *Bucket {
	return &Bucket{client: client, name: name}
}

func (b *Bucket) WriteObject(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	wc := b.client.Bucket(b.name).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}
	return fmt.Sprintf("gs://%s/%s", b.name, objectPath), nil
}

// UserLister is satisfied by application.ListUsersUseCase.
type UserLister interface {
	Execute(ctx context.Context, req application.ListUsersRequest) (application.UserListDTO, error)
}

// Exporter writes every user projection as newline-delimited JSON.
type Exporter struct {
	users  UserLister
	out    ObjectWriter
	prefix string
}

func NewExporter(users UserLister, out ObjectWriter, prefix string) *Exporter {
	return &Exporter{users: users, out: out, prefix: prefix}
}

// Export walks the listing page by page until a short page and uploads the
// snapshot as <prefix>/users-<at>.ndjson. It returns the object location and
// how many users were written.
func (e *Exporter) Export(ctx context.Context, at time.Time) (string, int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	written := 0
	for page := 1; ; page++ {
		res, err := e.users.Execute(ctx, application.ListUsersRequest{Page: page, PerPage: exportPageSize})
		if err != nil {
			return "", written, fmt.Errorf("list page %d: %w", page, err)
		}
		for _, u := range res.Users {
			if err := enc.Encode(u); err != nil {
				return "", written, err
			}
			written++
		}
		if len(res.Users) < exportPageSize || page >= res.TotalPages {
			break
		}
	}

	name := path.Join(e.prefix, fmt.Sprintf("users-%s.ndjson", at.UTC().Format("20060102T150405Z")))
	loc, err := e.out.WriteObject(ctx, name, "application/x-ndjson", &buf)
	if err != nil {
		return "", written, fmt.Errorf("upload %s: %w", name, err)
	}
	return loc, written, nil
}
