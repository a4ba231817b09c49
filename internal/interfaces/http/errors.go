package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventory-console/internal/application/dto"
	"github.com/jhoicas/inventory-console/internal/domain"
)

// upstreamMessager lo implementan los errores que traen un mensaje de la API remota.
type upstreamMessager interface {
	UpstreamMessage() string
}

type errorMapping struct {
	target error
	status int
	code   string
}

// El orden importa: ErrPasswordMismatch antes que ErrInvalidInput.
var errorMappings = []errorMapping{
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrPasswordMismatch, fiber.StatusBadRequest, "PASSWORD_MISMATCH"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrUpstreamUnavailable, fiber.StatusBadGateway, "UPSTREAM_UNAVAILABLE"},
	{context.DeadlineExceeded, fiber.StatusBadGateway, "UPSTREAM_UNAVAILABLE"},
}

// writeError responde con el status y código que corresponden al error de dominio.
func writeError(c *fiber.Ctx, err error) error {
	status, code, msg := fiber.StatusInternalServerError, "INTERNAL", "error interno"
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			status, code, msg = m.status, m.code, m.target.Error()
			break
		}
	}

	var um upstreamMessager
	switch {
	case errors.As(err, &um):
		if um.UpstreamMessage() != "" {
			msg = um.UpstreamMessage()
		}
	case status == fiber.StatusBadRequest || status == fiber.StatusUnauthorized:
		// errores de validación de la consola: el texto ya es para el usuario
		msg = err.Error()
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
