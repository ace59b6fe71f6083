package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/pomodesk/internal/domain"
)

const (
	appDirName    = "pomodesk"
	dataDirName   = "data"
	backupDirName = "backups"
	dataDirMode   = 0o700
)

// userConfigDir is the host's per-user application data root.
var userConfigDir = os.UserConfigDir

type Paths struct {
	Root      string
	DataDir   string
	BackupDir string
}

// AppDataRoot asks the host environment for this installation's data root.
func AppDataRoot() (string, error) {
	base, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDirectoryResolution, err)
	}
	if strings.TrimSpace(base) == "" {
		return "", fmt.Errorf("%w: host returned an empty config directory", domain.ErrDirectoryResolution)
	}

	return filepath.Join(base, appDirName), nil
}

// ResolvePaths derives <root>/data and <root>/data/backups and creates both.
func ResolvePaths(root string) (Paths, error) {
	if strings.TrimSpace(root) == "" {
		return Paths{}, fmt.Errorf("%w: data root is empty", domain.ErrDirectoryResolution)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return Paths{}, fmt.Errorf("%w: %v", domain.ErrDirectoryResolution, err)
	}

	paths := Paths{
		Root:      filepath.Clean(absRoot),
		DataDir:   filepath.Join(absRoot, dataDirName),
		BackupDir: filepath.Join(absRoot, dataDirName, backupDirName),
	}

	for _, dir := range []string{paths.DataDir, paths.BackupDir} {
		if err := os.MkdirAll(dir, dataDirMode); err != nil {
			return Paths{}, &domain.IOError{Op: "create directory", Document: dir, Err: err}
		}
	}

	return paths, nil
}
