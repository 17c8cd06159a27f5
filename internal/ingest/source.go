package ingest

import (
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// PlainText is the only media type a Parser accepts.
const PlainText = "text/plain"

// Source is an uploaded file: a declared content type plus a way to open it.
type Source interface {
	ContentType() string
	Open() (io.ReadCloser, error)
}

// isPlainText reports whether a declared content type is text/plain.
// Media type parameters (charset) are ignored.
func isPlainText(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == PlainText
}

// FileHeaderSource adapts a file received in a multipart form.
type FileHeaderSource struct {
	Header *multipart.FileHeader
}

func (s FileHeaderSource) ContentType() string { return s.Header.Header.Get("Content-Type") }

func (s FileHeaderSource) Open() (io.ReadCloser, error) { return s.Header.Open() }

// Name returns the client-supplied file name.
func (s FileHeaderSource) Name() string { return s.Header.Filename }

// FileSource is a file on local disk. It has no declared type, so the type is
// sniffed from the first 512 bytes.
type FileSource struct {
	Path string
}

func (s FileSource) ContentType() string {
	f, err := os.Open(s.Path)
	if err != nil {
		return ""
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return ""
	}
	return http.DetectContentType(head[:n])
}

func (s FileSource) Open() (io.ReadCloser, error) { return os.Open(s.Path) }

// Name returns the base name of the file.
func (s FileSource) Name() string { return filepath.Base(s.Path) }

// ReaderSource wraps an already open reader with a declared type.
// Open returns the same reader every time, so it can be parsed only once.
type ReaderSource struct {
	Type   string
	Reader io.Reader
}

// TextSource declares r as plain text.
func TextSource(r io.Reader) ReaderSource {
	return ReaderSource{Type: PlainText, Reader: r}
}

func (s ReaderSource) ContentType() string { return s.Type }

func (s ReaderSource) Open() (io.ReadCloser, error) {
	if rc, ok := s.Reader.(io.ReadCloser); ok {
		return rc, nil
	}
	return io.NopCloser(s.Reader), nil
}
