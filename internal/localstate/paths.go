// Package localstate owns the on-disk state of the terminal client: the data
// directory and the SQLite key/value store kept inside it.
package localstate

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	envHome    = "INKWELL_HOME" // override for tests
	dirName    = ".inkwell"     // default under $HOME
	dbFilename = "state.db"
)

// DataDir returns the directory where local state is stored. override wins
// when non-empty, then $INKWELL_HOME, then ~/.inkwell. The directory is
// created with 0700 permissions if it does not exist.
func DataDir(override string) (string, error) {
	dir := override
	if dir == "" {
		dir = os.Getenv(envHome)
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine user home: %w", err)
		}
		dir = filepath.Join(home, dirName)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// DBPath returns the absolute path to the SQLite database file.
func DBPath(override string) (string, error) {
	dir, err := DataDir(override)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFilename), nil
}
