package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// safeName keeps letters, digits, dash and underscore so owners and ids can be used in file names
func safeName(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	if sb.Len() == 0 {
		return "unknown"
	}
	return sb.String()
}

func prepareDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	return nil
}

func outputPath(dir, name string) string {
	return filepath.Join(dir, name)
}

// freePath returns dir/base+ext, or the first dir/base_N+ext that does not exist yet
func freePath(dir, base, ext string) (string, error) {
	path := outputPath(dir, base+ext)
	for n := 2; ; n++ {
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("check export path: %w", err)
		}
		path = outputPath(dir, fmt.Sprintf("%s_%d%s", base, n, ext))
	}
}
