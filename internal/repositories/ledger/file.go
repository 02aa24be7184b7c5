package ledger

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/KirkDiggler/gamblebot/internal/models"
)

// FileConfig holds configuration for the file-backed ledger repository
type FileConfig struct {
	// Dir is the directory holding one <game>.json document per game type
	Dir string
}

// fileRepository implements the Repository interface with JSON documents on disk
type fileRepository struct {
	dir string

	// mu serializes read-modify-write cycles within the process
	mu sync.Mutex
}

// NewFile creates a new file-backed ledger repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Dir == "" {
		return nil, errors.New("ledger directory cannot be empty")
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create ledger directory: %w", err)
	}

	return &fileRepository{
		dir: cfg.Dir,
	}, nil
}

// GetLedger reads the ledger document for a game type
func (r *fileRepository) GetLedger(ctx context.Context, input *GetLedgerInput) (*GetLedgerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := validateGameName(input.GameName); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ledger, err := r.load(input.GameName)
	if err != nil {
		return nil, err
	}

	return &GetLedgerOutput{
		Ledger: ledger,
	}, nil
}

// SaveLedger overwrites the ledger document for a game type
func (r *fileRepository) SaveLedger(ctx context.Context, input *SaveLedgerInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := validateGameName(input.GameName); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(input.GameName, input.Ledger)
}

// RecordResult applies a game result to the stored ledger
func (r *fileRepository) RecordResult(ctx context.Context, input *RecordResultInput) (*RecordResultOutput, error) {
	if err := validateRecordResult(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ledger, err := r.load(input.GameName)
	if err != nil {
		return nil, err
	}

	applyResult(ledger, input)

	if err := r.save(input.GameName, ledger); err != nil {
		return nil, err
	}

	return &RecordResultOutput{
		Ledger: ledger,
	}, nil
}

func (r *fileRepository) path(gameName string) string {
	return filepath.Join(r.dir, gameName+".json")
}

func (r *fileRepository) load(gameName string) (models.Ledger, error) {
	data, err := os.ReadFile(r.path(gameName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Ledger{}, nil
		}
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	return decodeLedger(data)
}

// save writes to a temp file and renames it over the old document so a crash
// mid-write never leaves a truncated ledger behind
func (r *fileRepository) save(gameName string, ledger models.Ledger) error {
	data, err := encodeLedger(ledger)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(r.dir, gameName+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp ledger file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write ledger: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write ledger: %w", err)
	}

	if err := os.Rename(tmpName, r.path(gameName)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace ledger: %w", err)
	}

	return nil
}
