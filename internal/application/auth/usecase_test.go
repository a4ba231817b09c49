package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-console/internal/application/dto"
	"github.com/jhoicas/inventory-console/internal/domain"
	"github.com/jhoicas/inventory-console/internal/domain/entity"
	"github.com/jhoicas/inventory-console/internal/domain/repository"
	"github.com/jhoicas/inventory-console/pkg/jwt"
)

type fakeGateway struct {
	result   *repository.AuthResult
	err      error
	register repository.RegisterInput
	resetTok string
	calls    int
}

func (g *fakeGateway) Login(context.Context, string, string) (*repository.AuthResult, error) {
	g.calls++
	return g.result, g.err
}

func (g *fakeGateway) Register(_ context.Context, in repository.RegisterInput) (*repository.AuthResult, error) {
	g.calls++
	g.register = in
	return g.result, g.err
}

func (g *fakeGateway) ForgotPassword(context.Context, string) error {
	g.calls++
	return g.err
}

func (g *fakeGateway) ResetPassword(_ context.Context, token, _ string) error {
	g.calls++
	g.resetTok = token
	return g.err
}

func (g *fakeGateway) GoogleCallback(context.Context, string) (*repository.AuthResult, error) {
	g.calls++
	return g.result, g.err
}

func TestLogin(t *testing.T) {
	gw := &fakeGateway{result: &repository.AuthResult{Token: "t", User: &entity.User{ID: "1", Email: "a@b.c"}}}
	uc := NewAuthUseCase(gw, JWTConfig{})

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: " a@b.c ", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "t", out.Token)
	assert.Equal(t, "1", out.User.ID)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.c"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_SinTokenEsNoAutorizado(t *testing.T) {
	uc := NewAuthUseCase(&fakeGateway{result: &repository.AuthResult{}}, JWTConfig{})
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegister_Validaciones(t *testing.T) {
	gw := &fakeGateway{result: &repository.AuthResult{}}
	uc := NewAuthUseCase(gw, JWTConfig{})

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.c", Password: "123456", ConfirmPassword: "654321", InviteCode: "X"})
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.c", Password: "123456", ConfirmPassword: "123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, gw.calls)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.c", Password: "123456", ConfirmPassword: "123456", InviteCode: " INV-1 "})
	require.NoError(t, err)
	assert.Equal(t, "INV-1", gw.register.InviteCode)
}

func TestForgotPassword_MensajeNeutro(t *testing.T) {
	gw := &fakeGateway{err: fmt.Errorf("x: %w", domain.ErrNotFound)}
	uc := NewAuthUseCase(gw, JWTConfig{})

	out, err := uc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{Email: "nadie@x.com"})
	require.NoError(t, err)
	assert.Equal(t, ForgotPasswordMessage, out.Message)

	gw.err = fmt.Errorf("x: %w", domain.ErrUpstreamUnavailable)
	_, err = uc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{Email: "nadie@x.com"})
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestResetPassword_Validaciones(t *testing.T) {
	gw := &fakeGateway{}
	uc := NewAuthUseCase(gw, JWTConfig{})

	_, err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Password: "123456", ConfirmPassword: "123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Token: "t", Password: "123456", ConfirmPassword: "1234567"})
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
	_, err = uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Token: "t", Password: "12345", ConfirmPassword: "12345"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, gw.calls)

	_, err = uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Token: " t ", Password: "123456", ConfirmPassword: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "t", gw.resetTok)
}

func TestGoogleCallback(t *testing.T) {
	gw := &fakeGateway{result: &repository.AuthResult{Token: "g"}}
	uc := NewAuthUseCase(gw, JWTConfig{})

	_, err := uc.GoogleCallback(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	out, err := uc.GoogleCallback(context.Background(), "code")
	require.NoError(t, err)
	assert.Equal(t, "g", out.Token)

	gw.result = &repository.AuthResult{}
	_, err = uc.GoogleCallback(context.Background(), "code")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSession_SinSecretoSoloDecodifica(t *testing.T) {
	token, err := jwt.Generate("otro-secreto", "u1", "a@b.c", "admin", "api", 10)
	require.NoError(t, err)

	uc := NewAuthUseCase(&fakeGateway{}, JWTConfig{})
	s, err := uc.Session(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", s.Subject)
	assert.Equal(t, "admin", s.Role)
	assert.False(t, s.Verified)

	resp := SessionResponse(s)
	require.NotNil(t, resp.ExpiresAt)
}

func TestSession_ConSecretoVerificaFirma(t *testing.T) {
	token, err := jwt.Generate("secreto", "u1", "a@b.c", "", "api", 10)
	require.NoError(t, err)

	ok := NewAuthUseCase(&fakeGateway{}, JWTConfig{Secret: "secreto", Issuer: "api"})
	s, err := ok.Session(token)
	require.NoError(t, err)
	assert.True(t, s.Verified)

	bad := NewAuthUseCase(&fakeGateway{}, JWTConfig{Secret: "otro"})
	_, err = bad.Session(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSession_Expirado(t *testing.T) {
	token, err := jwt.Generate("secreto", "u1", "", "", "", 1)
	require.NoError(t, err)

	uc := NewAuthUseCase(&fakeGateway{}, JWTConfig{})
	uc.now = func() time.Time { return time.Now().Add(time.Hour) }
	_, err = uc.Session(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Session("no.es.jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Session("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
