// Package document turns brand documents on disk into raw text for extraction.
package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrNotFound is returned when the document path does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrUnsupported is returned for file types the decoder cannot read.
	ErrUnsupported = errors.New("unsupported document type")
)

// Decoder extracts plain text from a document.
type Decoder interface {
	Decode(ctx context.Context, path string) (string, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(ctx context.Context, path string) (string, error)

// Decode implements Decoder.
func (f DecoderFunc) Decode(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}

// FileDecoder reads documents from the local filesystem.
// PDFs are decoded page by page; .txt and .md files are read as-is.
type FileDecoder struct{}

// NewFileDecoder returns a decoder for local files.
func NewFileDecoder() *FileDecoder {
	return &FileDecoder{}
}

// Decode implements Decoder.
func (d *FileDecoder) Decode(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrUnsupported, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return decodePDF(path)
	case ".txt", ".md", ".markdown", ".text":
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
	}
}

// decodePDF concatenates the plain text of every page.
// The pdf reader panics on some malformed inputs, so panics become errors.
func decodePDF(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decode pdf %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("decode pdf %s: %w", path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read pdf text %s: %w", path, err)
	}

	return buf.String(), nil
}
