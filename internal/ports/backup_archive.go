package ports

import (
	"context"
	"time"
)

type BackupEntry struct {
	Name     string
	Day      string
	Document string
	Size     int64
}

type BackupArchive interface {
	SnapshotOnce(ctx context.Context, day time.Time, document string, srcPath string) (bool, error)
	List(ctx context.Context) ([]BackupEntry, error)
}
