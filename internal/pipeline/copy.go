package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/pkg/xattr"
)

// ErrSameFile is returned by [CopyFile] when src and dst are the same file.
var ErrSameFile = errors.New("source and destination are the same file")

// CopyFile copies src over dst and carries across permission bits,
// extended attributes and the modification time. It returns the number of
// bytes written. Extended attributes are best effort: filesystems that do not
// support them, or attributes the caller may not set, are ignored.
func CopyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, err
	}

	// Opening dst with O_TRUNC would empty src when both name the same file.
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return 0, fmt.Errorf("%w: %s and %s", ErrSameFile, src, dst)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, err
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return n, err
	}
	if err := copyXattrs(src, dst); err != nil && !ignorableXattrErr(err) {
		return n, fmt.Errorf("copy xattrs: %w", err)
	}
	// Access time is not portable through os.FileInfo; both times take the
	// source modification time.
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return n, err
	}
	return n, nil
}

func copyXattrs(src, dst string) error {
	if !xattr.XATTR_SUPPORTED {
		return nil
	}
	names, err := xattr.List(src)
	if err != nil {
		return err
	}
	for _, name := range names {
		v, err := xattr.Get(src, name)
		if err != nil {
			return err
		}
		if err := xattr.Set(dst, name, v); err != nil && !ignorableXattrErr(err) {
			return err
		}
	}
	return nil
}

func ignorableXattrErr(err error) bool {
	var xerr *xattr.Error
	if errors.As(err, &xerr) {
		err = xerr.Err
	}
	return errors.Is(err, syscall.ENOTSUP) ||
		errors.Is(err, syscall.EPERM) ||
		errors.Is(err, syscall.EINVAL)
}
