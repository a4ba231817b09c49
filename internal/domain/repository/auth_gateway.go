package repository

import (
	"context"

	"github.com/jhoicas/inventory-console/internal/domain/entity"
)

// AuthResult resultado de un login o callback OAuth en la API remota.
type AuthResult struct {
	Token string
	User  *entity.User // puede venir vacío
}

// RegisterInput datos de alta que se reenvían a la API remota.
type RegisterInput struct {
	Email      string
	Password   string
	InviteCode string
}

// AuthGateway define el puerto hacia los endpoints de autenticación de la API remota.
// La consola no emite ni almacena tokens.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	GoogleCallback(ctx context.Context, code string) (*AuthResult, error)
}
