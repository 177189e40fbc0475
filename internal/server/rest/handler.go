package rest

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"github.com/gofiber/fiber/v2"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountView struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type identityView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (s *HTTPServer) register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Failed to parse request body"})
	}

	account, err := s.auth.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return s.fail(c, err)
	}

	s.logger.Info(c.UserContext(), "Registered", "id", account.ID)

	return c.JSON(accountView{
		ID:     account.ID,
		Name:   account.Name,
		Email:  account.Email,
		Avatar: account.ProfileImage,
		Date:   account.CreatedAt,
	})
}

func (s *HTTPServer) login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Failed to parse request body"})
	}

	token, err := s.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(loginResponse{Success: true, Token: auth.BearerToken(token)})
}

func (s *HTTPServer) current(c *fiber.Ctx) error {
	id, ok := c.Locals(identityLocal).(models.CallerIdentity)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}
	return c.JSON(identityView{ID: id.ID, Name: id.Name, Avatar: id.ProfileImage})
}

// fail writes the response for a service error: field messages for what
// the caller got wrong, a generic body (and a log line) for the rest.
func (s *HTTPServer) fail(c *fiber.Ctx, err error) error {
	if fields := services.FieldErrors(err); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fields)
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "Request cancelled"})
	case errors.Is(err, common.ErrStoreUnavailable):
		s.logger.Error(c.UserContext(), "store unavailable", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "Service unavailable"})
	}

	s.logger.Error(c.UserContext(), "internal error", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
}
