package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/inventory-console/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "inventory-api-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "ana@example.com", "admin", testIssuer, 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, testIssuer, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserRef())
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "", "", testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", testIssuer, tok)
	assert.Error(t, err)
}

func TestParse_EmisorDistinto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "", "", "otro-emisor", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "", "", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrExpired)
}

func TestInspect_SinVerificarFirma(t *testing.T) {
	tok, err := pkgjwt.Generate("secreto-de-la-api", testUserID, "ana@example.com", "", testIssuer, 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Inspect(tok, time.Now())
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserRef())
	assert.False(t, claims.Expiry().IsZero())
}

func TestInspect_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "", "", testIssuer, 5)
	require.NoError(t, err)

	_, err = pkgjwt.Inspect(tok, time.Now().Add(10*time.Minute))
	assert.ErrorIs(t, err, pkgjwt.ErrExpired)
}

func TestInspect_Malformado(t *testing.T) {
	_, err := pkgjwt.Inspect("token.invalido.aqui", time.Now())
	assert.Error(t, err)
}

func TestInspect_SinExpYConID(t *testing.T) {
	// Tokens de APIs Node suelen traer {"id": ...} sin sub ni exp.
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{"id": "42"}).
		SignedString([]byte("x"))
	require.NoError(t, err)

	claims, err := pkgjwt.Inspect(tok, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserRef())
	assert.True(t, claims.Expiry().IsZero())
}

func TestInspect_IDNumerico(t *testing.T) {
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{"id": 7}).
		SignedString([]byte("x"))
	require.NoError(t, err)

	claims, err := pkgjwt.Inspect(tok, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "7", claims.UserRef())
}
