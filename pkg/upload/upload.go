// Package upload stages multipart image uploads on local disk until they are
// pushed to object storage.
package upload

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"chat-backend/pkg/apperror"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

const filePrefix = "upload-"

var (
	ErrUnsupportedType = apperror.Validation("Only jpg, jpeg, png and gif images are allowed")
	ErrTooLarge        = apperror.Validation("File too large")
	ErrBadForm         = apperror.Validation("Invalid multipart form")
)

var allowed = []string{"image/jpeg", "image/png", "image/gif"}

// File is a staged upload. Remove must be called on every exit path.
type File struct {
	Path        string
	ContentType string
	Size        int64

	once sync.Once
	err  error
}

// Remove deletes the staged file. Repeated calls are no-ops.
func (f *File) Remove() error {
	if f == nil {
		return nil
	}
	f.once.Do(func() {
		if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			f.err = err
		}
	})
	return f.err
}

// formOverhead is the room left for the other form fields and multipart
// framing on top of the file limit.
const formOverhead = 1 << 20

// Save copies the multipart field into dir. It returns (nil, nil) when the
// request carries no such field. The body is capped before parsing, so an
// oversized request is cut off instead of being spooled to disk.
func Save(c *gin.Context, field, dir string, maxBytes int64) (*File, error) {
	if maxBytes > 0 {
		limit := maxBytes + formOverhead
		if c.Request.ContentLength > limit {
			return nil, ErrTooLarge.Wrap(fmt.Errorf("request of %d bytes exceeds %d", c.Request.ContentLength, limit))
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	}

	header, err := c.FormFile(field)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart):
			return nil, nil
		case errors.As(err, &tooLarge):
			return nil, ErrTooLarge.Wrap(err)
		}
		return nil, ErrBadForm.Wrap(err)
	}
	if maxBytes > 0 && header.Size > maxBytes {
		return nil, ErrTooLarge.Wrap(fmt.Errorf("%d bytes exceeds %d", header.Size, maxBytes))
	}

	src, err := header.Open()
	if err != nil {
		return nil, ErrBadForm.Wrap(err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return nil, ErrBadForm.Wrap(err)
	}
	if !mimetype.EqualsAny(mtype.String(), allowed...) {
		return nil, ErrUnsupportedType.Wrap(fmt.Errorf("detected %s", mtype.String()))
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind upload: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	dst, err := os.CreateTemp(dir, filePrefix+"*"+mtype.Extension())
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	file := &File{Path: dst.Name(), ContentType: mtype.String()}
	written, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = file.Remove()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	file.Size = written
	return file, nil
}

// IsStaged reports whether name looks like a file created by Save.
func IsStaged(name string) bool {
	ok, _ := filepath.Match(filePrefix+"*", name)
	return ok
}
