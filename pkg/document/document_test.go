package document

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDecoder(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "guide.txt")
	require.NoError(t, os.WriteFile(txt, []byte("Brand: Acme #ff0000"), 0o644))

	md := filepath.Join(dir, "guide.MD")
	require.NoError(t, os.WriteFile(md, []byte("# Acme"), 0o644))

	docx := filepath.Join(dir, "guide.docx")
	require.NoError(t, os.WriteFile(docx, []byte("binary"), 0o644))

	brokenPDF := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(brokenPDF, []byte("not a pdf"), 0o644))

	d := NewFileDecoder()
	ctx := context.Background()

	t.Run("text file", func(t *testing.T) {
		got, err := d.Decode(ctx, txt)
		require.NoError(t, err)
		assert.Equal(t, "Brand: Acme #ff0000", got)
	})

	t.Run("markdown extension is case-insensitive", func(t *testing.T) {
		got, err := d.Decode(ctx, md)
		require.NoError(t, err)
		assert.Equal(t, "# Acme", got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := d.Decode(ctx, filepath.Join(dir, "nope.pdf"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := d.Decode(ctx, docx)
		assert.ErrorIs(t, err, ErrUnsupported)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := d.Decode(ctx, dir)
		assert.ErrorIs(t, err, ErrUnsupported)
	})

	t.Run("malformed pdf", func(t *testing.T) {
		_, err := d.Decode(ctx, brokenPDF)
		assert.Error(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := d.Decode(cctx, txt)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDecoderFunc(t *testing.T) {
	var d Decoder = DecoderFunc(func(_ context.Context, path string) (string, error) {
		return "text of " + path, nil
	})

	got, err := d.Decode(context.Background(), "a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "text of a.pdf", got)
}
