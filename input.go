package curve3

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// openInput opens the file at path for reading. Files ending in .zst or .lz4
// are decompressed transparently. The returned ReadCloser releases the
// decoder as well as the file.
func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open zstd stream: %w", err)
		}
		return &input{Reader: dec, close: func() error {
			dec.Close()
			return f.Close()
		}}, nil
	case ".lz4":
		return &input{Reader: lz4.NewReader(f), close: f.Close}, nil
	default:
		return f, nil
	}
}

type input struct {
	io.Reader
	close func() error
}

func (in *input) Close() error { return in.close() }
