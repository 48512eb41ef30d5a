package files

import (
	"errors"
	"os"
	"syscall"
)

// Error taxonomy for user-facing notices. Every store operation failure maps
// to one of these so the UI can phrase it without inspecting OS errors.
var (
	ErrPathNotFound     = errors.New("path not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNameCollision    = errors.New("an entry with this name already exists")
	ErrDirNotEmpty      = errors.New("directory is not empty")
	ErrNoDefaultHandler = errors.New("no default handler for this file type")
)

// MapOSError translates an error returned by the os package into the
// corresponding sentinel, wrapping it so errors.Is matches both.
func MapOSError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case os.IsNotExist(err):
		return joinErr(ErrPathNotFound, err)
	case os.IsPermission(err):
		return joinErr(ErrPermissionDenied, err)
	// ENOTEMPTY must be checked before os.IsExist: on unix both map to ErrExist.
	case errors.Is(err, syscall.ENOTEMPTY):
		return joinErr(ErrDirNotEmpty, err)
	case os.IsExist(err):
		return joinErr(ErrNameCollision, err)
	}
	return err
}

func joinErr(sentinel, cause error) error {
	return errors.Join(sentinel, cause)
}
