package preview

import (
	"fmt"
	"os"
	"path/filepath"
)

// FontLoadError reports that a font asset could not be loaded from any of
// the configured locations. It carries the last attempted path and the
// underlying cause.
type FontLoadError struct {
	Path string
	Err  error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("preview: cannot load font %s: %v", e.Path, e.Err)
}

func (e *FontLoadError) Unwrap() error {
	return e.Err
}

// defaultFontDirs returns the font search path: an assets folder relative
// to the working directory, then a fonts directory next to the binary.
func defaultFontDirs() []string {
	dirs := []string{filepath.Join("assets", "fonts")}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Join(filepath.Dir(exe), "fonts"))
	}
	return dirs
}

// loadFontBytes reads the named font file from the first directory that
// yields it. All locations failing produces a FontLoadError.
func loadFontBytes(dirs []string, name string) ([]byte, error) {
	var lastPath string
	var lastErr error
	for _, dir := range dirs {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		lastPath, lastErr = path, err
	}
	return nil, &FontLoadError{Path: lastPath, Err: lastErr}
}
