package repositories

import (
	"testing"

	"mca-underwriting/internal/database"
	"mca-underwriting/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

func (s *UserRepositorySuite) TestCreateAndGetByEmail() {
	user := &models.User{
		Email:        gofakeit.Email(),
		PasswordHash: "$2a$12$hash",
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		Role:         models.RoleUnderwriter,
	}

	s.Require().NoError(s.repo.Create(user))
	s.NotEqual(uuid.Nil, user.ID)

	found, err := s.repo.GetByEmail(user.Email)
	s.NoError(err)
	s.Equal(user.ID, found.ID)
	s.Equal(models.RoleUnderwriter, found.Role)
}

func (s *UserRepositorySuite) TestCreate_DuplicateEmail() {
	user := database.CreateTestUser(s.T(), s.db, "dup@fundco.test")

	duplicate := &models.User{
		Email:        user.Email,
		PasswordHash: "$2a$12$hash",
		FirstName:    "Other",
		LastName:     "Person",
		Role:         models.RoleUnderwriter,
	}
	s.ErrorIs(s.repo.Create(duplicate), ErrUserAlreadyExists)
}

func (s *UserRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestUpdateLastLogin() {
	user := database.CreateTestUser(s.T(), s.db, "login@fundco.test")
	s.Require().Nil(user.LastLoginAt)

	s.NoError(s.repo.UpdateLastLogin(user.ID))

	found, err := s.repo.GetByID(user.ID)
	s.Require().NoError(err)
	s.NotNil(found.LastLoginAt)
}

func (s *UserRepositorySuite) TestUpdateLastLogin_UnknownUser() {
	s.ErrorIs(s.repo.UpdateLastLogin(uuid.New()), ErrUserNotFound)
}
