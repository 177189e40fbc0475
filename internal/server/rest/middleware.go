package rest

import (
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/gofiber/fiber/v2"
)

const identityLocal = "identity"

// requireAuth lets the request through only with a valid bearer token and
// stores the caller identity in Locals and the user context.
func (s *HTTPServer) requireAuth(c *fiber.Ctx) error {
	id, err := s.authenticator.Authenticate(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}

	c.Locals(identityLocal, id)
	c.SetUserContext(auth.WithIdentity(c.UserContext(), id))

	return c.Next()
}
