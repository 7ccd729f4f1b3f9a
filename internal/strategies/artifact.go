package strategies

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// replaceFile overwrites dst with the contents of src, preserving dst's
// file mode. The new content is written to a temporary file next to dst and
// moved into place with a rename, so a crash mid-copy cannot leave a
// truncated artifact behind.
func replaceFile(dst, src string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open replacement %q: %w", src, err)
	}
	defer in.Close()

	info, err := os.Stat(dst)
	if err != nil {
		return fmt.Errorf("stat artifact %q: %w", dst, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), filepath.Base(dst)+".new-*")
	if err != nil {
		return fmt.Errorf("create staging file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("copy replacement: %w", err)
	}
	if err := tmp.Chmod(info.Mode()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("chmod staging file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close staging file: %w", err)
	}

	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("move replacement into place: %w", err)
	}
	return nil
}
