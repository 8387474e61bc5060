package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName     = "exticons"
	IconsDirName   = "icons"
	ConfigFileName = "exticons-config.json"
	DirPerm        = 0755
	FilePerm       = 0644
)

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. An existing file at path is replaced. The parent
// directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// ExecutableDir returns the directory containing the running binary with
// symlinks resolved. Falls back to the working directory if the executable
// path cannot be determined.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		if wd, werr := os.Getwd(); werr == nil {
			return wd
		}
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// DefaultIconsDir returns the icons/ directory next to the binary, so the
// output location does not depend on the caller's working directory.
func DefaultIconsDir() string {
	return filepath.Join(ExecutableDir(), IconsDirName)
}
