package game

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// screenshotDir resolves the capture directory. Relative paths live next
// to the executable, or in the working directory under "go run".
func screenshotDir(dir string) string {
	if dir == "" {
		dir = "screenshots"
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		if !isTempExeDir(exeDir) {
			return filepath.Join(exeDir, dir)
		}
	}
	if cwd, err := os.Getwd(); err == nil {
		return filepath.Join(cwd, dir)
	}
	return dir
}

// screenshotName is unique to the millisecond.
func screenshotName(t time.Time) string {
	return "wall-" + t.Format("20060102-150405.000") + ".png"
}

// isTempExeDir returns true when the executable directory looks like a Go temp build path.
func isTempExeDir(dir string) bool {
	clean := filepath.Clean(dir)
	if strings.Contains(clean, string(filepath.Separator)+"go-build") {
		return true
	}
	if strings.HasPrefix(clean, filepath.Clean(os.TempDir())+string(filepath.Separator)) {
		return true
	}
	return false
}
