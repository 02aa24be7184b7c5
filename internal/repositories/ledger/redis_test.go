package ledger

import (
	"context"
	"testing"

	"github.com/KirkDiggler/gamblebot/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&RedisConfig{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedis_InvalidConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&RedisConfig{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestGetLedger_NeverSaved() {
	output, err := s.repo.GetLedger(s.ctx, &GetLedgerInput{GameName: "gamble"})
	s.Require().NoError(err)
	s.NotNil(output.Ledger)
	s.Empty(output.Ledger)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetLedger() {
	ledger := models.Ledger{
		"1": {ID: "1", DisplayName: "Volkner", Score: 70},
		"2": {ID: "2", DisplayName: "Zaahn", Score: -70},
	}

	err := s.repo.SaveLedger(s.ctx, &SaveLedgerInput{GameName: "gamble", Ledger: ledger})
	s.Require().NoError(err)

	// Stored under the ledger key
	s.True(s.mr.Exists("ledger:gamble"))

	output, err := s.repo.GetLedger(s.ctx, &GetLedgerInput{GameName: "gamble"})
	s.Require().NoError(err)
	s.Equal(ledger, output.Ledger)
}

func (s *RedisRepositoryTestSuite) TestGetLedger_Corrupt() {
	s.Require().NoError(s.mr.Set("ledger:gamble", "{not json"))

	_, err := s.repo.GetLedger(s.ctx, &GetLedgerInput{GameName: "gamble"})
	s.Require().Error(err)
	s.ErrorIs(err, ErrCorruptLedger)
}

func (s *RedisRepositoryTestSuite) TestRecordResult() {
	_, err := s.repo.RecordResult(s.ctx, &RecordResultInput{
		GameName: "gamble",
		Winner:   Participant{ID: "b", DisplayName: "Bee"},
		Loser:    Participant{ID: "a", DisplayName: "Ay"},
		Payout:   70,
	})
	s.Require().NoError(err)

	output, err := s.repo.GetLedger(s.ctx, &GetLedgerInput{GameName: "gamble"})
	s.Require().NoError(err)
	s.Require().Len(output.Ledger, 2)
	s.Equal(int64(70), output.Ledger["b"].Score)
	s.Equal("Bee", output.Ledger["b"].DisplayName)
	s.Equal(int64(-70), output.Ledger["a"].Score)
}

func (s *RedisRepositoryTestSuite) TestRecordResult_SeparateGameNames() {
	_, err := s.repo.RecordResult(s.ctx, &RecordResultInput{
		GameName: "gamble",
		Winner:   Participant{ID: "b"},
		Loser:    Participant{ID: "a"},
		Payout:   5,
	})
	s.Require().NoError(err)

	output, err := s.repo.GetLedger(s.ctx, &GetLedgerInput{GameName: "other"})
	s.Require().NoError(err)
	s.Empty(output.Ledger)
}

func (s *RedisRepositoryTestSuite) TestRecordResult_ConnectionError() {
	s.mr.Close()

	_, err := s.repo.RecordResult(s.ctx, &RecordResultInput{
		GameName: "gamble",
		Winner:   Participant{ID: "b"},
		Loser:    Participant{ID: "a"},
		Payout:   5,
	})
	s.Error(err)
}
