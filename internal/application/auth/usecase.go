package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventory-console/internal/application/dto"
	"github.com/jhoicas/inventory-console/internal/domain"
	"github.com/jhoicas/inventory-console/internal/domain/entity"
	"github.com/jhoicas/inventory-console/internal/domain/repository"
	"github.com/jhoicas/inventory-console/pkg/jwt"
)

// MinPasswordLength longitud mínima de contraseña al restablecerla.
const MinPasswordLength = 6

// ForgotPasswordMessage respuesta neutra: no revela si el correo existe.
const ForgotPasswordMessage = "Si existe una cuenta con ese correo, recibirás un enlace para restablecer la contraseña."

// JWTConfig configuración de inspección de tokens. Secret vacío = solo decodificar y revisar exp.
type JWTConfig struct {
	Secret string
	Issuer string
}

// AuthUseCase casos de uso de autenticación. Reenvía a la API remota, que es la que emite
// los tokens; aquí solo se valida la entrada y se inspeccionan tokens.
type AuthUseCase struct {
	gateway repository.AuthGateway
	jwtCfg  JWTConfig
	now     func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(gateway repository.AuthGateway, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{gateway: gateway, jwtCfg: jwtCfg, now: time.Now}
}

// Login valida email/password y pide el token a la API remota.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y contraseña son obligatorios", domain.ErrInvalidInput)
	}
	res, err := uc.gateway.Login(ctx, email, in.Password)
	if err != nil {
		return nil, err
	}
	return toLoginResponse(res)
}

// Register valida confirmación e invitación y registra en la API remota.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	switch {
	case email == "" || in.Password == "":
		return nil, fmt.Errorf("%w: email y contraseña son obligatorios", domain.ErrInvalidInput)
	case in.Password != in.ConfirmPassword:
		return nil, domain.ErrPasswordMismatch
	case strings.TrimSpace(in.InviteCode) == "":
		return nil, fmt.Errorf("%w: el código de invitación es obligatorio", domain.ErrInvalidInput)
	}
	res, err := uc.gateway.Register(ctx, repository.RegisterInput{
		Email:      email,
		Password:   in.Password,
		InviteCode: strings.TrimSpace(in.InviteCode),
	})
	if err != nil {
		return nil, err
	}
	out := &dto.LoginResponse{Token: res.Token, User: dto.FromUser(res.User)}
	return out, nil
}

// ForgotPassword pide el correo de recuperación. Solo falla si la API no está disponible;
// cualquier otra respuesta devuelve el mensaje neutro.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, in dto.ForgotPasswordRequest) (*dto.MessageResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email requerido", domain.ErrInvalidInput)
	}
	if err := uc.gateway.ForgotPassword(ctx, email); err != nil {
		if errors.Is(err, domain.ErrUpstreamUnavailable) || ctx.Err() != nil {
			return nil, err
		}
	}
	return &dto.MessageResponse{Message: ForgotPasswordMessage}, nil
}

// ResetPassword fija la contraseña nueva con el token recibido por correo.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) (*dto.MessageResponse, error) {
	switch {
	case strings.TrimSpace(in.Token) == "":
		return nil, fmt.Errorf("%w: token de recuperación requerido", domain.ErrInvalidInput)
	case in.Password != in.ConfirmPassword:
		return nil, domain.ErrPasswordMismatch
	case len([]rune(in.Password)) < MinPasswordLength:
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, MinPasswordLength)
	}
	if err := uc.gateway.ResetPassword(ctx, strings.TrimSpace(in.Token), in.Password); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Contraseña actualizada"}, nil
}

// GoogleCallback canjea el código OAuth por un token de la API remota.
func (uc *AuthUseCase) GoogleCallback(ctx context.Context, code string) (*dto.LoginResponse, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: código de autorización ausente", domain.ErrUnauthorized)
	}
	res, err := uc.gateway.GoogleCallback(ctx, code)
	if err != nil {
		return nil, err
	}
	return toLoginResponse(res)
}

// Session inspecciona el token: verifica firma si hay secreto, siempre revisa expiración.
// Cualquier fallo se reporta como ErrUnauthorized.
func (uc *AuthUseCase) Session(token string) (*entity.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: token requerido", domain.ErrUnauthorized)
	}
	var (
		claims *jwt.Claims
		err    error
	)
	verified := uc.jwtCfg.Secret != ""
	if verified {
		claims, err = jwt.Parse(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, token)
	} else {
		claims, err = jwt.Inspect(token, uc.now())
	}
	if errors.Is(err, jwt.ErrExpired) {
		return nil, fmt.Errorf("%w: token expirado", domain.ErrUnauthorized)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: token inválido", domain.ErrUnauthorized)
	}
	return &entity.Session{
		Subject:   claims.UserRef(),
		Email:     claims.Email,
		Role:      claims.Role,
		Issuer:    claims.Issuer,
		ExpiresAt: claims.Expiry(),
		Verified:  verified,
	}, nil
}

// SessionResponse convierte la sesión a su DTO.
func SessionResponse(s *entity.Session) dto.SessionResponse {
	out := dto.SessionResponse{
		Subject:  s.Subject,
		Email:    s.Email,
		Role:     s.Role,
		Issuer:   s.Issuer,
		Verified: s.Verified,
	}
	if !s.ExpiresAt.IsZero() {
		exp := s.ExpiresAt
		out.ExpiresAt = &exp
	}
	return out
}

func toLoginResponse(res *repository.AuthResult) (*dto.LoginResponse, error) {
	if res == nil || res.Token == "" {
		return nil, fmt.Errorf("%w: la API no devolvió token", domain.ErrUnauthorized)
	}
	return &dto.LoginResponse{Token: res.Token, User: dto.FromUser(res.User)}, nil
}
