package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/domain"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/repository"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/session"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/storage"
	"github.com/saitejaboorla/Online-Grocery-Bolt/pkg/validation"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Contact  string
	Address  string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Customer, error)
	// Login returns a signed session token alongside the login record.
	Login(ctx context.Context, email, password string) (string, *domain.Login, error)
	Profile(ctx context.Context, customerID int64) (*domain.Customer, error)
}

type authService struct {
	customerRepo repository.CustomerRepository
	loginRepo    repository.LoginRepository
	sessions     *session.Manager
	logger       *zap.Logger
}

func NewAuthService(
	customerRepo repository.CustomerRepository,
	loginRepo repository.LoginRepository,
	sessions *session.Manager,
	logger *zap.Logger,
) AuthService {
	return &authService{
		customerRepo: customerRepo,
		loginRepo:    loginRepo,
		sessions:     sessions,
		logger:       logger,
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*domain.Customer, error) {
	if err := validation.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	if err := validation.ValidatePhone(input.Contact); err != nil {
		return nil, err
	}

	exists, err := s.loginRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), 12)
	if err != nil {
		s.logger.Error("error hashing password", zap.Error(err))
		return nil, err
	}

	customer, err := s.customerRepo.Save(ctx, &domain.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Contact: input.Contact,
		Address: input.Address,
	})
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	// The customer and login rows are written in two statements; a
	// failure here leaves a customer without a login, same as the
	// per-statement atomicity of the rest of the storage layer.
	if _, err := s.loginRepo.Save(ctx, &domain.Login{
		Email:        input.Email,
		PasswordHash: string(hash),
		UserType:     domain.UserTypeCustomer,
		Status:       domain.StatusActive,
	}); err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.logger.Info("customer registered", zap.String("email", customer.Email), zap.Int64("customer_id", customer.ID))
	return customer, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.Login, error) {
	found, err := s.loginRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	login, ok := found.Get()
	if !ok {
		return "", nil, ErrInvalidCredentials
	}

	if login.Status != domain.StatusActive {
		return "", nil, ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(login.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// Admin logins have no customer row; the claim carries zero then.
	var customerID int64
	if customer, err := s.customerRepo.FindByEmail(ctx, email); err == nil {
		if c, ok := customer.Get(); ok {
			customerID = c.ID
		}
	}

	token, err := s.sessions.Generate(login.LoginID, customerID, login.Email, login.UserType)
	if err != nil {
		s.logger.Error("error generating session token", zap.Error(err))
		return "", nil, err
	}

	return token, &login, nil
}

func (s *authService) Profile(ctx context.Context, customerID int64) (*domain.Customer, error) {
	found, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	customer, ok := found.Get()
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return &customer, nil
}
