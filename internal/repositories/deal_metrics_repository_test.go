package repositories

import (
	"testing"

	"mca-underwriting/internal/database"
	"mca-underwriting/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestDealMetricsRepository(t *testing.T) {
	suite.Run(t, new(DealMetricsRepositorySuite))
}

type DealMetricsRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo DealMetricsRepositoryInterface
	deal *models.Deal
}

func (s *DealMetricsRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewDealMetricsRepository(s.db.DB)

	underwriter := database.CreateTestUser(s.T(), s.db, "uw@example.com")
	s.deal = database.CreateTestDeal(s.T(), s.db, underwriter, "Blue Harbor Seafood LLC")
}

func (s *DealMetricsRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *DealMetricsRepositorySuite) snapshot(score float64, tier, verdict string) *models.DealMetrics {
	return &models.DealMetrics{
		DealID: s.deal.ID,
		Metrics: models.MetricsDocument{
			MonthsAnalyzed: 6,
		},
		Scorecard: models.ScorecardDocument{
			OverallScore: score,
			RiskTier:     tier,
			Verdict:      verdict,
		},
		OverallScore: score,
		RiskTier:     tier,
		Verdict:      verdict,
	}
}

func (s *DealMetricsRepositorySuite) TestDealMetricsRepository_UpsertAndGet() {
	err := s.repo.Upsert(s.snapshot(82.5, models.RiskTierA, models.VerdictApprove))
	s.NoError(err)

	found, err := s.repo.GetByDealID(s.deal.ID)
	s.NoError(err)
	s.Equal(s.deal.ID, found.DealID)
	s.InDelta(82.5, found.OverallScore, 0.0001)
	s.Equal(models.RiskTierA, found.RiskTier)
	s.Equal(6, found.Metrics.MonthsAnalyzed)
}

func (s *DealMetricsRepositorySuite) TestDealMetricsRepository_UpsertReplacesPreviousRun() {
	s.NoError(s.repo.Upsert(s.snapshot(82.5, models.RiskTierA, models.VerdictApprove)))
	s.NoError(s.repo.Upsert(s.snapshot(58.0, models.RiskTierC, models.VerdictCaution)))

	found, err := s.repo.GetByDealID(s.deal.ID)
	s.NoError(err)
	s.InDelta(58.0, found.OverallScore, 0.0001)
	s.Equal(models.VerdictCaution, found.Verdict)

	var count int64
	s.NoError(s.db.Model(&models.DealMetrics{}).Where("deal_id = ?", s.deal.ID).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *DealMetricsRepositorySuite) TestDealMetricsRepository_GetByDealID_NotFound() {
	_, err := s.repo.GetByDealID(uuid.New())
	s.ErrorIs(err, ErrMetricsNotFound)
}

func (s *DealMetricsRepositorySuite) TestDealMetricsRepository_ListByVerdict() {
	s.NoError(s.repo.Upsert(s.snapshot(40.0, models.RiskTierD, models.VerdictDecline)))

	snapshots, total, err := s.repo.ListByVerdict(models.VerdictDecline, 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(snapshots, 1)

	snapshots, total, err = s.repo.ListByVerdict(models.VerdictApprove, 0, 10)
	s.NoError(err)
	s.Equal(int64(0), total)
	s.Empty(snapshots)
}
