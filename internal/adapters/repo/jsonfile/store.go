package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/pomodesk/internal/adapters/backup"
	"github.com/bnema/pomodesk/internal/domain"
	"github.com/bnema/pomodesk/internal/ports"
	"go.uber.org/zap"
)

const (
	TodosDocument    = "todos.json"
	PomodoroDocument = "pomodoro.json"
	SessionsDocument = "sessions.json"
	SettingsDocument = "settings.json"

	documentFileMode = 0o600
)

// Documents lists every document the store knows about, in bootstrap order.
var Documents = []string{TodosDocument, SessionsDocument, PomodoroDocument, SettingsDocument}

// Store persists the application's JSON documents. A single mutex serializes
// every load and save across all documents, so calls are linearizable.
type Store struct {
	paths   Paths
	archive ports.BackupArchive
	clock   ports.Clock
	logger  *zap.Logger
	mu      sync.Mutex

	writeTemp func(f *os.File, data []byte) error
}

var _ ports.DocumentStore = (*Store)(nil)

// Open builds a store over paths and materializes defaults for any missing
// document. A failure here leaves the application without a usable store.
func Open(ctx context.Context, paths Paths, clock ports.Clock, logger *zap.Logger) (*Store, error) {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	store := &Store{
		paths:     paths,
		archive:   backup.NewArchive(paths.BackupDir, logger),
		clock:     clock,
		logger:    logger.Named("store"),
		writeTemp: writeAndSync,
	}

	if err := store.bootstrap(ctx); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *Store) Paths() Paths {
	return s.paths
}

func (s *Store) Archive() ports.BackupArchive {
	return s.archive
}

func (s *Store) LoadTodos(ctx context.Context) ([]domain.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := readDocument(s, TodosDocument, []todoSchema{})
	if err != nil {
		return nil, err
	}

	todos := make([]domain.Todo, 0, len(file))
	for _, entry := range file {
		todo, err := fromTodoSchema(entry)
		if err != nil {
			return nil, &domain.CodecError{Op: "decode", Document: TodosDocument, Err: err}
		}
		todos = append(todos, todo)
	}

	return todos, nil
}

func (s *Store) SaveTodos(ctx context.Context, todos []domain.Todo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded := make([]todoSchema, 0, len(todos))
	for _, todo := range todos {
		encoded = append(encoded, toTodoSchema(todo))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return writeDocument(ctx, s, TodosDocument, encoded)
}

func (s *Store) LoadPomodoroConfig(ctx context.Context) (domain.PomodoroConfig, error) {
	if err := ctx.Err(); err != nil {
		return domain.PomodoroConfig{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := readDocument(s, PomodoroDocument, defaultPomodoroConfigSchema())
	if err != nil {
		return domain.PomodoroConfig{}, err
	}

	return fromPomodoroConfigSchema(file), nil
}

func (s *Store) SavePomodoroConfig(ctx context.Context, config domain.PomodoroConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return writeDocument(ctx, s, PomodoroDocument, toPomodoroConfigSchema(config))
}

func (s *Store) LoadSessions(ctx context.Context) ([]domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := readDocument(s, SessionsDocument, []sessionSchema{})
	if err != nil {
		return nil, err
	}

	sessions := make([]domain.Session, 0, len(file))
	for _, entry := range file {
		session, err := fromSessionSchema(entry)
		if err != nil {
			return nil, &domain.CodecError{Op: "decode", Document: SessionsDocument, Err: err}
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

func (s *Store) SaveSessions(ctx context.Context, sessions []domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded := make([]sessionSchema, 0, len(sessions))
	for _, session := range sessions {
		encoded = append(encoded, toSessionSchema(session))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return writeDocument(ctx, s, SessionsDocument, encoded)
}

func (s *Store) LoadSettings(ctx context.Context) (domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return domain.Settings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := readDocument(s, SettingsDocument, defaultSettingsSchema())
	if err != nil {
		return domain.Settings{}, err
	}

	settings, err := fromSettingsSchema(file)
	if err != nil {
		return domain.Settings{}, &domain.CodecError{Op: "decode", Document: SettingsDocument, Err: err}
	}

	return settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return writeDocument(ctx, s, SettingsDocument, toSettingsSchema(settings))
}

// tempPattern names the scratch file a save writes before renaming it over
// the document.
func tempPattern(document string) string {
	return "." + document + "-*.tmp"
}

func (s *Store) pathFor(document string) string {
	return filepath.Join(s.paths.DataDir, document)
}

// readDocument decodes document on top of fallback. A missing file or one
// holding only whitespace yields fallback unchanged; anything else that does
// not decode is a CodecError. Callers hold s.mu.
func readDocument[S any](s *Store, document string, fallback S) (S, error) {
	data, err := os.ReadFile(s.pathFor(document))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fallback, nil
		}
		return fallback, &domain.IOError{Op: "read", Document: document, Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return fallback, nil
	}

	decoded := fallback
	if err := json.Unmarshal(data, &decoded); err != nil {
		var zero S
		return zero, &domain.CodecError{Op: "decode", Document: document, Err: err}
	}

	return decoded, nil
}

// writeDocument snapshots the current file into today's backup if none exists
// yet, then atomically replaces it with value. Callers hold s.mu.
func writeDocument[S any](ctx context.Context, s *Store, document string, value S) error {
	path := s.pathFor(document)

	if err := os.MkdirAll(filepath.Dir(path), dataDirMode); err != nil {
		return &domain.IOError{Op: "create data directory", Document: document, Err: err}
	}

	if _, err := s.archive.SnapshotOnce(ctx, s.clock.Now(), document, path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return &domain.CodecError{Op: "encode", Document: document, Err: err}
	}
	data = append(data, '\n')

	if err := s.replaceFile(document, path, data); err != nil {
		return err
	}

	s.logger.Debug("document saved", zap.String("document", document), zap.Int("bytes", len(data)))
	return nil
}

// replaceFile writes data to a sibling temp file and renames it over path, so
// readers observe either the previous complete file or the new one.
func (s *Store) replaceFile(document, path string, data []byte) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), tempPattern(document))
	if err != nil {
		return &domain.IOError{Op: "create temp file", Document: document, Err: err}
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if err := s.writeTemp(tempFile, data); err != nil {
		_ = tempFile.Close()
		return &domain.IOError{Op: "write temp file", Document: document, Err: err}
	}

	if err := tempFile.Chmod(documentFileMode); err != nil {
		_ = tempFile.Close()
		return &domain.IOError{Op: "chmod temp file", Document: document, Err: err}
	}

	if err := tempFile.Close(); err != nil {
		return &domain.IOError{Op: "close temp file", Document: document, Err: err}
	}

	if err := os.Rename(tempName, path); err != nil {
		return &domain.IOError{Op: "replace", Document: document, Err: err}
	}

	cleanup = false
	return nil
}

func writeAndSync(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		return err
	}

	return f.Sync()
}
