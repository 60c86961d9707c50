// Package source loads read-only roster snapshots from wherever an event
// keeps them: the bundled snapshot, a local file, S3, GCS or Postgres.
package source

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/guestmatch/guestmatch/pkg/roster"
)

// ErrUnsupportedSource is returned for source URIs with an unknown scheme.
var ErrUnsupportedSource = errors.New("source: unsupported roster source")

// Source loads a roster snapshot.
type Source interface {
	Load(ctx context.Context) (*roster.Roster, error)
	// Close releases any client held by the source.
	Close() error
	String() string
}

// Options carries backend settings shared by all sources.
type Options struct {
	S3 S3Config
	// DatabaseURL is used by a bare "postgres:" source.
	DatabaseURL string
}

// Open picks a Source implementation from the URI scheme. The event slug is
// used by sources that hold several events side by side.
func Open(ctx context.Context, uri, event string, opts Options) (Source, error) {
	if uri == "" || uri == "bundled:" {
		return BundledSource{}, nil
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 { // bare path or drive letter
		return &FileSource{Path: uri}, nil
	}

	switch u.Scheme {
	case "file":
		return &FileSource{Path: u.Path}, nil
	case "s3":
		bucket, key, err := splitBucketURI(u)
		if err != nil {
			return nil, err
		}
		return NewS3Source(ctx, opts.S3, bucket, key)
	case "gs":
		bucket, object, err := splitBucketURI(u)
		if err != nil {
			return nil, err
		}
		return NewGCSSource(ctx, bucket, object)
	case "postgres", "postgresql":
		dsn := uri
		if u.Host == "" && u.Opaque == "" {
			if opts.DatabaseURL == "" {
				return nil, fmt.Errorf("source %q: database.url is not set", uri)
			}
			dsn = opts.DatabaseURL
		}
		return NewPostgresSource(dsn, event)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, u.Scheme)
	}
}

func splitBucketURI(u *url.URL) (bucket, key string, err error) {
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%s URI %q needs a bucket and an object key", u.Scheme, u.String())
	}
	return bucket, key, nil
}

// BundledSource serves the snapshot compiled into the binary.
type BundledSource struct{}

func (BundledSource) Load(ctx context.Context) (*roster.Roster, error) {
	return roster.Bundled()
}

func (BundledSource) Close() error   { return nil }
func (BundledSource) String() string { return "bundled" }

// FileSource reads a snapshot from the local filesystem.
type FileSource struct {
	Path string
}

func (s *FileSource) Load(ctx context.Context) (*roster.Roster, error) {
	r, err := roster.Load(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s, err)
	}
	return r, nil
}

func (s *FileSource) Close() error   { return nil }
func (s *FileSource) String() string { return "file://" + s.Path }

func parse(s Source, data []byte) (*roster.Roster, error) {
	r, err := roster.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s, err)
	}
	return r, nil
}
