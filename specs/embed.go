package specs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var SpecsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// LoadScript reads an embedded scene script by name.
func LoadScript(name string) ([]byte, error) {
	return ScriptsFS.ReadFile(cleanScriptPath(name))
}

// Load reads a definition file, preferring a copy on disk under specs/ over
// the embedded one so definitions can be edited without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanSpecPath(name)
	if data, err := os.ReadFile(diskSpecPath(clean)); err == nil {
		return data, nil
	}
	return SpecsFS.ReadFile(clean)
}

// ModTime returns the on-disk modification time of a definition file, when a
// disk copy exists.
func ModTime(name string) (time.Time, bool) {
	clean := cleanSpecPath(name)
	info, err := os.Stat(diskSpecPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanSpecPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "specs/") {
		return strings.TrimPrefix(s, "specs/")
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "specs/scripts/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "specs/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}
	return "scripts/" + s
}

func diskSpecPath(clean string) string {
	return filepath.Join("specs", filepath.FromSlash(clean))
}
