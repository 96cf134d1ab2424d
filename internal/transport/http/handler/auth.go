package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/service"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/transport/http/middleware"
	"github.com/saitejaboorla/Online-Grocery-Bolt/pkg/utils"
)

type AuthHandler struct {
	auth       service.AuthService
	validate   *validator.Validate
	logger     *zap.Logger
	sessionTTL time.Duration
}

func NewAuthHandler(auth service.AuthService, sessionTTL time.Duration, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:       auth,
		validate:   validator.New(),
		logger:     logger,
		sessionTTL: sessionTTL,
	}
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Contact  string `json:"contact" validate:"omitempty,min=10,max=16"`
	Address  string `json:"address" validate:"max=500"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	input := new(RegisterInput)

	if err := c.BodyParser(input); err != nil {
		h.logger.Warn("failed to parse body in register", zap.Error(err))

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		h.logger.Warn("failed to validate register input", zap.Error(err))

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": utils.FormatValidationError(err),
		})
	}

	customer, err := h.auth.Register(c.UserContext(), service.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Contact:  input.Contact,
		Address:  input.Address,
	})

	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "email already registered",
			})
		}

		h.logger.Warn("register failed",
			zap.String("email", input.Email),
			zap.Error(err),
		)

		return serviceError(c, err)
	}

	h.logger.Info("register succeeded",
		zap.Int64("customer_id", customer.ID),
		zap.String("email", customer.Email),
	)

	return c.Status(fiber.StatusCreated).JSON(customer)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	input := new(LoginInput)

	if err := c.BodyParser(input); err != nil {
		h.logger.Warn("failed to parse body in login", zap.Error(err))

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": utils.FormatValidationError(err),
		})
	}

	token, login, err := h.auth.Login(c.UserContext(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid email or password",
			})
		case errors.Is(err, service.ErrAccountInactive):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "account is inactive",
			})
		}

		h.logger.Warn("login failed",
			zap.String("email", input.Email),
			zap.Error(err),
		)

		return serviceError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(h.sessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	h.logger.Info("login succeeded",
		zap.Int64("login_id", login.LoginID),
		zap.String("email", login.Email),
	)

	redirect := c.Query("redirect")
	if redirect != "" && strings.HasPrefix(redirect, "/") {
		return c.Redirect(redirect)
	}

	return c.JSON(fiber.Map{
		"token":     token,
		"user_type": login.UserType,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) GetMe(c *fiber.Ctx) error {
	loginID, ok := c.Locals("loginId").(int64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "loginId parsing error"})
	}

	res := fiber.Map{
		"login_id":  loginID,
		"email":     c.Locals("email"),
		"user_type": c.Locals("userType"),
	}

	// Admin sessions carry no customer row.
	if customerID, ok := middleware.CustomerID(c); ok {
		customer, err := h.auth.Profile(c.UserContext(), customerID)
		if err != nil && !errors.Is(err, service.ErrCustomerNotFound) {
			h.logger.Warn("profile lookup failed", zap.Int64("customer_id", customerID), zap.Error(err))
			return serviceError(c, err)
		}
		res["customer_id"] = customerID
		if customer != nil {
			res["customer"] = customer
		}
	}

	return c.JSON(res)
}

// serviceError hides storage details from the client.
func serviceError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}
