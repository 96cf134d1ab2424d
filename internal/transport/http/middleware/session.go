package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/domain"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/session"
)

// SessionCookie is the cookie the login handler sets on success.
const SessionCookie = "session"

// NewSessionMiddleware checks the session cookie or the Authorization
// header. Browser requests without a valid session are redirected to
// the login page with the original path preserved; API clients get 401.
func NewSessionMiddleware(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			authHeader := c.Get("Authorization")
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				token = parts[1]
			}
		}

		if token == "" {
			return reject(c, "Unauthorized: missing session")
		}

		claims, err := sessions.Validate(token)
		if err != nil {
			return reject(c, "Unauthorized: invalid session")
		}

		c.Locals("loginId", claims.LoginID)
		c.Locals("customerId", claims.CustomerID)
		c.Locals("email", claims.Email)
		c.Locals("userType", claims.UserType)
		return c.Next()
	}
}

func reject(c *fiber.Ctx, msg string) error {
	if strings.Contains(c.Get("Accept"), "text/html") {
		return c.Redirect("/login?redirect=" + c.Path())
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}

// NewRequireAdminMiddleware gates catalog mutations behind the Admin
// user type.
func NewRequireAdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		val := c.Locals("userType")
		userType, ok := val.(domain.UserType)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized: missing user"})
		}

		if userType != domain.UserTypeAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		}

		return c.Next()
	}
}

// CustomerID pulls the authenticated customer id set by the session
// middleware.
func CustomerID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals("customerId").(int64)
	return id, ok && id != 0
}
