package service_test

import (
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/domain"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/service"
)

func (s *ServiceSuite) register(email string) *domain.Customer {
	s.T().Helper()

	customer, err := s.AuthService.Register(s.Ctx, service.RegisterInput{
		Name:     "Test Customer",
		Email:    email,
		Password: "supersecret",
		Contact:  "9876543210",
		Address:  "1 Test Lane",
	})
	s.Require().NoError(err)
	return customer
}

func (s *ServiceSuite) TestRegister_Success() {
	customer := s.register("new@example.com")

	s.Require().NotZero(customer.ID)
	s.Require().Equal("new@example.com", customer.Email)

	found, err := s.Logins.FindByEmail(s.Ctx, "new@example.com")
	s.Require().NoError(err)

	login, ok := found.Get()
	s.Require().True(ok)
	s.Require().Equal(domain.UserTypeCustomer, login.UserType)
	s.Require().Equal(domain.StatusActive, login.Status)
	s.Require().NotEqual("supersecret", login.PasswordHash)
}

func (s *ServiceSuite) TestRegister_DuplicateEmail() {
	s.register("dup@example.com")

	_, err := s.AuthService.Register(s.Ctx, service.RegisterInput{
		Name:     "Second",
		Email:    "dup@example.com",
		Password: "anotherpass",
	})
	s.Require().ErrorIs(err, service.ErrEmailTaken)
}

func (s *ServiceSuite) TestRegister_InvalidInput() {
	_, err := s.AuthService.Register(s.Ctx, service.RegisterInput{
		Name:     "X",
		Email:    "short@example.com",
		Password: "longenough",
	})
	s.Require().Error(err)

	_, err = s.AuthService.Register(s.Ctx, service.RegisterInput{
		Name:     "Valid Name",
		Email:    "not-an-email",
		Password: "longenough",
	})
	s.Require().Error(err)

	_, err = s.AuthService.Register(s.Ctx, service.RegisterInput{
		Name:     "Valid Name",
		Email:    "weak@example.com",
		Password: "tiny",
	})
	s.Require().Error(err)
}

func (s *ServiceSuite) TestLogin_Success() {
	customer := s.register("login@example.com")

	token, login, err := s.AuthService.Login(s.Ctx, "login@example.com", "supersecret")
	s.Require().NoError(err)
	s.Require().NotEmpty(token)
	s.Require().Equal("login@example.com", login.Email)

	claims, err := s.Sessions.Validate(token)
	s.Require().NoError(err)
	s.Require().Equal(login.LoginID, claims.LoginID)
	s.Require().Equal(customer.ID, claims.CustomerID)
	s.Require().Equal(domain.UserTypeCustomer, claims.UserType)
}

func (s *ServiceSuite) TestLogin_WrongPassword() {
	s.register("wrongpw@example.com")

	_, _, err := s.AuthService.Login(s.Ctx, "wrongpw@example.com", "not-the-password")
	s.Require().ErrorIs(err, service.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLogin_UnknownEmail() {
	_, _, err := s.AuthService.Login(s.Ctx, "ghost@example.com", "whatever")
	s.Require().ErrorIs(err, service.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestProfile() {
	customer := s.register("profile@example.com")

	got, err := s.AuthService.Profile(s.Ctx, customer.ID)
	s.Require().NoError(err)
	s.Require().Equal(customer.Email, got.Email)

	_, err = s.AuthService.Profile(s.Ctx, 99999)
	s.Require().ErrorIs(err, service.ErrCustomerNotFound)
}

func (s *ServiceSuite) TestLogin_InactiveAccount() {
	s.register("inactive@example.com")

	found, err := s.Logins.FindByEmail(s.Ctx, "inactive@example.com")
	s.Require().NoError(err)

	login, ok := found.Get()
	s.Require().True(ok)

	login.Status = domain.StatusInactive
	_, err = s.Logins.Update(s.Ctx, &login)
	s.Require().NoError(err)

	_, _, err = s.AuthService.Login(s.Ctx, "inactive@example.com", "supersecret")
	s.Require().ErrorIs(err, service.ErrAccountInactive)
}
