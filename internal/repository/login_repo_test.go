package repository_test

import (
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/domain"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/storage"
)

func (s *RepositorySuite) TestLoginSaveAndFind() {
	saved, err := s.Logins.Save(s.Ctx, &domain.Login{
		Email:        "login@example.com",
		PasswordHash: "$2a$12$fakehash",
		UserType:     domain.UserTypeCustomer,
		Status:       domain.StatusActive,
	})

	s.Require().NoError(err)
	s.Require().NotZero(saved.LoginID)

	found, err := s.Logins.FindByEmail(s.Ctx, "login@example.com")
	s.Require().NoError(err)

	login, ok := found.Get()
	s.Require().True(ok)
	s.Require().Equal(domain.UserTypeCustomer, login.UserType)
	s.Require().Equal(domain.StatusActive, login.Status)
	s.Require().Equal("$2a$12$fakehash", login.PasswordHash)
}

func (s *RepositorySuite) TestLoginDuplicateEmail() {
	_, err := s.Logins.Save(s.Ctx, &domain.Login{
		Email:        "taken@example.com",
		PasswordHash: "hash1",
		UserType:     domain.UserTypeCustomer,
		Status:       domain.StatusActive,
	})
	s.Require().NoError(err)

	_, err = s.Logins.Save(s.Ctx, &domain.Login{
		Email:        "taken@example.com",
		PasswordHash: "hash2",
		UserType:     domain.UserTypeCustomer,
		Status:       domain.StatusActive,
	})

	s.Require().Error(err)
	s.Require().ErrorContains(err, "email already exists: taken@example.com")
	s.Require().True(storage.IsUniqueViolation(err))
}

func (s *RepositorySuite) TestLoginExistsByEmail() {
	exists, err := s.Logins.ExistsByEmail(s.Ctx, "nobody@example.com")
	s.Require().NoError(err)
	s.Require().False(exists)

	_, err = s.Logins.Save(s.Ctx, &domain.Login{
		Email:        "somebody@example.com",
		PasswordHash: "hash",
		UserType:     domain.UserTypeAdmin,
		Status:       domain.StatusActive,
	})
	s.Require().NoError(err)

	exists, err = s.Logins.ExistsByEmail(s.Ctx, "somebody@example.com")
	s.Require().NoError(err)
	s.Require().True(exists)
}

func (s *RepositorySuite) TestLoginUpdateStatus() {
	saved, err := s.Logins.Save(s.Ctx, &domain.Login{
		Email:        "status@example.com",
		PasswordHash: "hash",
		UserType:     domain.UserTypeCustomer,
		Status:       domain.StatusActive,
	})
	s.Require().NoError(err)

	saved.Status = domain.StatusInactive
	_, err = s.Logins.Update(s.Ctx, saved)
	s.Require().NoError(err)

	found, err := s.Logins.FindByID(s.Ctx, saved.LoginID)
	s.Require().NoError(err)

	login, ok := found.Get()
	s.Require().True(ok)
	s.Require().Equal(domain.StatusInactive, login.Status)
}
