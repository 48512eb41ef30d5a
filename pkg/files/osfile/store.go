package osfile

import (
	"context"
	"net/url"
	"os"
	"path/filepath"

	"github.com/filevoy/filevoy/pkg/files"
	"github.com/filevoy/filevoy/pkg/fsutils"
)

var osReadDir = os.ReadDir
var osHostname = os.Hostname
var osMkdir = os.Mkdir
var osCreate = os.Create
var osRemove = os.Remove
var osRename = os.Rename
var osStat = os.Stat

var _ files.Store = (*Store)(nil)

// Store browses the local filesystem.
type Store struct {
	title string
	root  string
}

func NewStore(root string) *Store {
	if root == "" {
		panic("osfile store root is empty")
	}
	store := Store{root: root}
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = err.Error()
	}
	store.title = "🖥️" + store.title
	return &store
}

func (s Store) RootURL() url.URL {
	return url.URL{
		Scheme: "file",
	}
}

func (s Store) RootTitle() string {
	return s.title
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := osReadDir(name)
	if err != nil {
		return nil, files.MapOSError(err)
	}
	return entries, nil
}

func (s Store) CreateDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return files.MapOSError(osMkdir(path, 0o755))
}

func (s Store) CreateFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := osStat(path); err == nil {
		return files.ErrNameCollision
	}
	f, err := osCreate(path)
	if err != nil {
		return files.MapOSError(err)
	}
	return f.Close()
}

// Delete removes a file or an empty directory. Non-empty directories are
// refused with ErrDirNotEmpty.
func (s Store) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return files.MapOSError(osRemove(path))
}

func (s Store) Rename(ctx context.Context, oldPath, newPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := osStat(newPath); err == nil {
		return files.ErrNameCollision
	}
	return files.MapOSError(osRename(oldPath, newPath))
}

// Copy copies a file or a directory tree to dstPath.
func (s Store) Copy(ctx context.Context, srcPath, dstPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := osStat(srcPath)
	if err != nil {
		return files.MapOSError(err)
	}
	if _, err = osStat(dstPath); err == nil {
		return files.ErrNameCollision
	}
	if info.IsDir() {
		return files.MapOSError(fsutils.CopyDir(srcPath, dstPath))
	}
	return files.MapOSError(fsutils.CopyFile(srcPath, dstPath))
}

// Root returns the starting directory the store was created with.
func (s Store) Root() string {
	return filepath.Clean(s.root)
}
