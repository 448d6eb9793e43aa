// Package embedded gives the rest of the module read access to the game data
// files (the YAML configs under data/).
//
// The embed.FS has to be declared next to data/ in the module root (embed.go),
// so main hands it over with Init. A development build can point at an on-disk
// directory instead with InitDir, which is what config hot reload watches.
//
// Init or InitDir must run before any config is loaded.
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const dataPrefix = "data/"

var (
	dataFS      fs.FS
	dataDir     string
	initialized bool
)

// Init installs the embedded filesystem. root must contain a "data" directory.
func Init(root fs.FS) error {
	sub, err := fs.Sub(root, "data")
	if err != nil {
		return fmt.Errorf("failed to open embedded data directory: %w", err)
	}
	dataFS = sub
	dataDir = ""
	initialized = true
	return nil
}

// InitDir serves data files from an on-disk directory. dir plays the role of
// "data/".
func InitDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to open data directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data path %s is not a directory", dir)
	}
	dataFS = os.DirFS(dir)
	dataDir = dir
	initialized = true
	return nil
}

// InitFS installs an arbitrary filesystem rooted at the data directory.
// Tests use it with fstest.MapFS.
func InitFS(fsys fs.FS) {
	dataFS = fsys
	dataDir = ""
	initialized = true
}

// IsInitialized reports whether a data source has been installed.
func IsInitialized() bool {
	return initialized
}

// Dir returns the on-disk directory installed by InitDir, or "" when data
// comes from the binary.
func Dir() string {
	return dataDir
}

func resolve(path string) (string, error) {
	if !initialized {
		return "", fmt.Errorf("embedded package not initialized, call Init() first")
	}
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	if !strings.HasPrefix(path, dataPrefix) {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return strings.TrimPrefix(path, dataPrefix), nil
}

// ReadFile reads a data file. path must start with "data/".
func ReadFile(path string) ([]byte, error) {
	name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, name)
}

// Exists reports whether a data file exists.
func Exists(path string) bool {
	name, err := resolve(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, name)
	return err == nil
}

// Glob matches data files. The pattern must start with "data/"; results keep
// the prefix.
func Glob(pattern string) ([]string, error) {
	name, err := resolve(pattern)
	if err != nil {
		return nil, err
	}
	matches, err := fs.Glob(dataFS, name)
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = dataPrefix + m
	}
	return matches, nil
}
