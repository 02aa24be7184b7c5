package ledger

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/KirkDiggler/gamblebot/internal/models"
	"github.com/stretchr/testify/suite"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	dir  string
	repo Repository
	ctx  context.Context
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.ctx = context.Background()

	repo, err := NewFile(&FileConfig{
		Dir: s.dir,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) TestNewFile_InvalidConfig() {
	_, err := NewFile(nil)
	s.Error(err)

	_, err = NewFile(&FileConfig{})
	s.Error(err)
}

func (s *FileRepositoryTestSuite) TestGetLedger_NeverSaved() {
	output, err := s.repo.GetLedger(s.ctx, &GetLedgerInput{GameName: "gamble"})
	s.Require().NoError(err)
	s.Empty(output.Ledger)
	s.NotNil(output.Ledger)
}

func (s *FileRepositoryTestSuite) TestSaveAndGetLedger() {
	ledger := models.Ledger{
		"1": {ID: "1", DisplayName: "Volkner", Score: 70},
		"2": {ID: "2", DisplayName: "Zaahn", Score: -70},
	}

	err := s.repo.SaveLedger(s.ctx, &SaveLedgerInput{GameName: "gamble", Ledger: ledger})
	s.Require().NoError(err)

	output, err := s.repo.GetLedger(s.ctx, &GetLedgerInput{GameName: "gamble"})
	s.Require().NoError(err)
	s.Equal(ledger, output.Ledger)
}

func (s *FileRepositoryTestSuite) TestSaveLedger_WritesOriginalFormat() {
	err := s.repo.SaveLedger(s.ctx, &SaveLedgerInput{
		GameName: "gamble",
		Ledger:   models.Ledger{"1": {ID: "1", DisplayName: "Volkner", Score: 5}},
	})
	s.Require().NoError(err)

	data, err := os.ReadFile(filepath.Join(s.dir, "gamble.json"))
	s.Require().NoError(err)
	s.JSONEq(`{"1": {"id": "1", "username": "Volkner", "score": 5}}`, string(data))

	// no temp files left behind
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.tmp"))
	s.Require().NoError(err)
	s.Empty(matches)
}

func (s *FileRepositoryTestSuite) TestGetLedger_LegacyEntryWithoutID() {
	err := os.WriteFile(filepath.Join(s.dir, "gamble.json"), []byte(`{"42": {"username": "Old", "score": 3}}`), 0o644)
	s.Require().NoError(err)

	output, err := s.repo.GetLedger(s.ctx, &GetLedgerInput{GameName: "gamble"})
	s.Require().NoError(err)
	s.Require().Contains(output.Ledger, "42")
	s.Equal("42", output.Ledger["42"].ID)
	s.Equal(int64(3), output.Ledger["42"].Score)
}

func (s *FileRepositoryTestSuite) TestGetLedger_EmptyFile() {
	err := os.WriteFile(filepath.Join(s.dir, "gamble.json"), nil, 0o644)
	s.Require().NoError(err)

	output, err := s.repo.GetLedger(s.ctx, &GetLedgerInput{GameName: "gamble"})
	s.Require().NoError(err)
	s.Empty(output.Ledger)
}

func (s *FileRepositoryTestSuite) TestGetLedger_Corrupt() {
	err := os.WriteFile(filepath.Join(s.dir, "gamble.json"), []byte(`{not json`), 0o644)
	s.Require().NoError(err)

	_, err = s.repo.GetLedger(s.ctx, &GetLedgerInput{GameName: "gamble"})
	s.Require().Error(err)
	s.ErrorIs(err, ErrCorruptLedger)
}

func (s *FileRepositoryTestSuite) TestRecordResult_Corrupt_DoesNotOverwrite() {
	path := filepath.Join(s.dir, "gamble.json")
	err := os.WriteFile(path, []byte(`{not json`), 0o644)
	s.Require().NoError(err)

	_, err = s.repo.RecordResult(s.ctx, &RecordResultInput{
		GameName: "gamble",
		Winner:   Participant{ID: "b"},
		Loser:    Participant{ID: "a"},
		Payout:   10,
	})
	s.Require().ErrorIs(err, ErrCorruptLedger)

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal(`{not json`, string(data))
}

func (s *FileRepositoryTestSuite) TestInvalidGameName() {
	for _, name := range []string{"", "../etc/passwd", "a/b", "with space"} {
		_, err := s.repo.GetLedger(s.ctx, &GetLedgerInput{GameName: name})
		s.ErrorIs(err, ErrInvalidGameName, name)

		err = s.repo.SaveLedger(s.ctx, &SaveLedgerInput{GameName: name})
		s.ErrorIs(err, ErrInvalidGameName, name)
	}
}

func (s *FileRepositoryTestSuite) TestRecordResult() {
	output, err := s.repo.RecordResult(s.ctx, &RecordResultInput{
		GameName: "gamble",
		Winner:   Participant{ID: "b", DisplayName: "Bee"},
		Loser:    Participant{ID: "a", DisplayName: "Ay"},
		Payout:   70,
	})
	s.Require().NoError(err)
	s.Equal(int64(70), output.Ledger["b"].Score)
	s.Equal(int64(-70), output.Ledger["a"].Score)

	// A second result accumulates and refreshes names
	_, err = s.repo.RecordResult(s.ctx, &RecordResultInput{
		GameName: "gamble",
		Winner:   Participant{ID: "a", DisplayName: "Ay Renamed"},
		Loser:    Participant{ID: "b", DisplayName: "Bee"},
		Payout:   20,
	})
	s.Require().NoError(err)

	stored, err := s.repo.GetLedger(s.ctx, &GetLedgerInput{GameName: "gamble"})
	s.Require().NoError(err)
	s.Equal(int64(50), stored.Ledger["b"].Score)
	s.Equal(int64(-50), stored.Ledger["a"].Score)
	s.Equal("Ay Renamed", stored.Ledger["a"].DisplayName)
}

func (s *FileRepositoryTestSuite) TestRecordResult_SamePlayer() {
	output, err := s.repo.RecordResult(s.ctx, &RecordResultInput{
		GameName: "gamble",
		Winner:   Participant{ID: "a", DisplayName: "Ay"},
		Loser:    Participant{ID: "a", DisplayName: "Ay"},
		Payout:   0,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Ledger, 1)
	s.Equal(int64(0), output.Ledger["a"].Score)
}

func (s *FileRepositoryTestSuite) TestRecordResult_InvalidInput() {
	_, err := s.repo.RecordResult(s.ctx, nil)
	s.Error(err)

	_, err = s.repo.RecordResult(s.ctx, &RecordResultInput{
		GameName: "gamble",
		Winner:   Participant{ID: "a"},
		Loser:    Participant{ID: "b"},
		Payout:   -1,
	})
	s.Error(err)
}

func (s *FileRepositoryTestSuite) TestRecordResult_Concurrent() {
	const n = 25

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := s.repo.RecordResult(s.ctx, &RecordResultInput{
				GameName: "gamble",
				Winner:   Participant{ID: "w"},
				Loser:    Participant{ID: "l"},
				Payout:   2,
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	output, err := s.repo.GetLedger(s.ctx, &GetLedgerInput{GameName: "gamble"})
	s.Require().NoError(err)
	s.Equal(int64(2*n), output.Ledger["w"].Score)
	s.Equal(int64(-2*n), output.Ledger["l"].Score)
}
