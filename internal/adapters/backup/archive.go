package backup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bnema/pomodesk/internal/domain"
	"github.com/bnema/pomodesk/internal/ports"
	"go.uber.org/zap"
)

const (
	archiveDirMode  = 0o700
	archiveFileMode = 0o600
	dayLayout       = "20060102"
	tempPattern     = ".backup-*.tmp"
)

// Archive keeps dated, verbatim copies of documents. At most one copy exists
// per document per local calendar day; the first write of the day wins.
type Archive struct {
	dir    string
	logger *zap.Logger
	mu     sync.RWMutex
}

var _ ports.BackupArchive = (*Archive)(nil)

func NewArchive(dir string, logger *zap.Logger) *Archive {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Archive{dir: filepath.Clean(dir), logger: logger.Named("backup")}
}

// Name returns the backup file name for document on day, e.g. "20240101_todos.json".
func Name(day time.Time, document string) string {
	return day.Format(dayLayout) + "_" + document
}

// SnapshotOnce copies srcPath into the archive unless today's copy of document
// already exists. A missing source is not an error; there is nothing to keep.
func (a *Archive) SnapshotOnce(ctx context.Context, day time.Time, document string, srcPath string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	name, err := backupName(day, document)
	if err != nil {
		return false, err
	}
	target := filepath.Join(a.dir, name)

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := os.Stat(srcPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, &domain.IOError{Op: "stat", Document: document, Err: err}
	}

	if _, err := os.Stat(target); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, &domain.IOError{Op: "stat backup", Document: name, Err: err}
	}

	if err := os.MkdirAll(a.dir, archiveDirMode); err != nil {
		return false, &domain.IOError{Op: "create backup directory", Err: err}
	}

	if err := copyFile(srcPath, target); err != nil {
		return false, &domain.IOError{Op: "copy backup", Document: name, Err: err}
	}

	a.logger.Info("backup created", zap.String("document", document), zap.String("backup", name))
	return true, nil
}

func (a *Archive) List(ctx context.Context) ([]ports.BackupEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	entries, err := os.ReadDir(a.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &domain.IOError{Op: "list backups", Err: err}
	}

	backups := make([]ports.BackupEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		day, document, ok := parseName(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, &domain.IOError{Op: "stat backup", Document: entry.Name(), Err: err}
		}
		backups = append(backups, ports.BackupEntry{
			Name:     entry.Name(),
			Day:      day,
			Document: document,
			Size:     info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Name < backups[j].Name
	})

	return backups, nil
}

func backupName(day time.Time, document string) (string, error) {
	trimmed := strings.TrimSpace(document)
	if trimmed == "" {
		return "", errors.New("backup document name is empty")
	}
	if trimmed != filepath.Base(trimmed) || trimmed == "." || trimmed == ".." {
		return "", fmt.Errorf("invalid backup document name %q", document)
	}

	return Name(day, trimmed), nil
}

func parseName(name string) (string, string, bool) {
	day, document, ok := strings.Cut(name, "_")
	if !ok || document == "" || len(day) != len(dayLayout) {
		return "", "", false
	}
	if _, err := time.Parse(dayLayout, day); err != nil {
		return "", "", false
	}

	return day, document, true
}

// copyFile writes through a sibling temp file so a listed backup is never a
// partial copy.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), tempPattern)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(archiveFileMode); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return err
	}

	cleanup = false
	return nil
}
