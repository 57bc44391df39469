package repositories

import (
	"testing"
	"time"

	"mca-underwriting/internal/database"
	"mca-underwriting/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo TransactionRepositoryInterface
	deal *models.Deal
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)

	underwriter := database.CreateTestUser(s.T(), s.db, "uw@example.com")
	s.deal = database.CreateTestDeal(s.T(), s.db, underwriter, gofakeit.Company())
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) makeTransactions(n int, documentID *uuid.UUID) []models.Transaction {
	transactions := make([]models.Transaction, 0, n)
	base := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < n; i++ {
		transactions = append(transactions, models.Transaction{
			DealID:          s.deal.ID,
			DocumentID:      documentID,
			Date:            base.AddDate(0, 0, i),
			Description:     gofakeit.ProductName(),
			Amount:          decimal.NewFromFloat(gofakeit.Price(10, 5000)),
			TransactionType: models.TransactionTypeCredit,
			Category:        models.CategorySalesRevenue,
		})
	}

	return transactions
}

func (s *TransactionRepositorySuite) TestTransactionRepository_CreateBatch() {
	transactions := s.makeTransactions(5, nil)

	err := s.repo.CreateBatch(transactions)
	s.NoError(err)

	count, err := s.repo.CountByDealID(s.deal.ID)
	s.NoError(err)
	s.Equal(int64(5), count)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_CreateBatch_Empty() {
	err := s.repo.CreateBatch(nil)
	s.Error(err)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetByDealID_OrderedByDate() {
	transactions := s.makeTransactions(4, nil)
	// Insert out of order; reads must come back date-ascending
	transactions[0], transactions[3] = transactions[3], transactions[0]

	s.NoError(s.repo.CreateBatch(transactions))

	found, err := s.repo.GetByDealID(s.deal.ID)
	s.NoError(err)
	s.Require().Len(found, 4)
	for i := 1; i < len(found); i++ {
		s.False(found[i].Date.Before(found[i-1].Date))
	}
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetByDealIDPaged() {
	s.NoError(s.repo.CreateBatch(s.makeTransactions(7, nil)))

	page, total, err := s.repo.GetByDealIDPaged(s.deal.ID, 0, 5)
	s.NoError(err)
	s.Equal(int64(7), total)
	s.Len(page, 5)

	page, total, err = s.repo.GetByDealIDPaged(s.deal.ID, 5, 5)
	s.NoError(err)
	s.Equal(int64(7), total)
	s.Len(page, 2)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_DeleteByDocumentID() {
	docID := uuid.New()
	s.NoError(s.repo.CreateBatch(s.makeTransactions(3, &docID)))
	s.NoError(s.repo.CreateBatch(s.makeTransactions(2, nil)))

	deleted, err := s.repo.DeleteByDocumentID(docID)
	s.NoError(err)
	s.Equal(int64(3), deleted)

	count, err := s.repo.CountByDealID(s.deal.ID)
	s.NoError(err)
	s.Equal(int64(2), count)
}
