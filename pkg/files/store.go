package files

import (
	"context"
	"net/url"
	"os"
)

// Store abstracts the filesystem the navigator browses.
type Store interface {
	RootTitle() string
	RootURL() url.URL
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	CreateDir(ctx context.Context, path string) error
	CreateFile(ctx context.Context, path string) error
	Delete(ctx context.Context, path string) error
	Rename(ctx context.Context, oldPath, newPath string) error
	Copy(ctx context.Context, srcPath, dstPath string) error
}
