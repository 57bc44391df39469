package repositories

import (
	"testing"

	"mca-underwriting/internal/database"
	"mca-underwriting/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestDealRepository(t *testing.T) {
	suite.Run(t, new(DealRepositorySuite))
}

type DealRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo DealRepositoryInterface
}

func (s *DealRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewDealRepository(s.db.DB)
}

func (s *DealRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *DealRepositorySuite) newDeal(underwriterID uuid.UUID, merchant string) *models.Deal {
	return &models.Deal{
		UnderwriterID:   underwriterID,
		MerchantName:    merchant,
		Industry:        "restaurant",
		RequestedAmount: decimal.NewFromInt(75000),
	}
}

func (s *DealRepositorySuite) TestDealRepository_Create() {
	underwriter := database.CreateTestUser(s.T(), s.db, "uw@example.com")

	deal := s.newDeal(underwriter.ID, "Blue Harbor Seafood LLC")
	err := s.repo.Create(deal)
	s.NoError(err)
	s.NotEqual(uuid.Nil, deal.ID)
	s.Equal(models.DealStatusNew, deal.Status)
	s.NotZero(deal.CreatedAt)
}

func (s *DealRepositorySuite) TestDealRepository_GetByID() {
	underwriter := database.CreateTestUser(s.T(), s.db, "uw@example.com")

	deal := s.newDeal(underwriter.ID, "Blue Harbor Seafood LLC")
	s.NoError(s.repo.Create(deal))

	found, err := s.repo.GetByID(deal.ID)
	s.NoError(err)
	s.Equal(deal.ID, found.ID)
	s.Equal("Blue Harbor Seafood LLC", found.MerchantName)
	s.True(found.RequestedAmount.Equal(decimal.NewFromInt(75000)))

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrDealNotFound)
}

func (s *DealRepositorySuite) TestDealRepository_GetByUnderwriterID() {
	owner := database.CreateTestUser(s.T(), s.db, "owner@example.com")
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")

	s.NoError(s.repo.Create(s.newDeal(owner.ID, "Merchant One")))
	s.NoError(s.repo.Create(s.newDeal(owner.ID, "Merchant Two")))
	s.NoError(s.repo.Create(s.newDeal(other.ID, "Merchant Three")))

	deals, total, err := s.repo.GetByUnderwriterID(owner.ID, 0, 10)
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(deals, 2)
	for _, d := range deals {
		s.Equal(owner.ID, d.UnderwriterID)
	}
}

func (s *DealRepositorySuite) TestDealRepository_UpdateStatus() {
	underwriter := database.CreateTestUser(s.T(), s.db, "uw@example.com")

	deal := s.newDeal(underwriter.ID, "Blue Harbor Seafood LLC")
	s.NoError(s.repo.Create(deal))

	err := s.repo.UpdateStatus(deal.ID, models.DealStatusInReview)
	s.NoError(err)

	found, err := s.repo.GetByID(deal.ID)
	s.NoError(err)
	s.Equal(models.DealStatusInReview, found.Status)
}

func (s *DealRepositorySuite) TestDealRepository_UpdateStatus_Invalid() {
	underwriter := database.CreateTestUser(s.T(), s.db, "uw@example.com")

	deal := s.newDeal(underwriter.ID, "Blue Harbor Seafood LLC")
	s.NoError(s.repo.Create(deal))

	err := s.repo.UpdateStatus(deal.ID, "funded")
	s.ErrorIs(err, models.ErrInvalidDealStatus)

	err = s.repo.UpdateStatus(uuid.New(), models.DealStatusApproved)
	s.ErrorIs(err, ErrDealNotFound)
}
