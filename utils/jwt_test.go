package utils

import (
	"testing"

	"github.com/ChristianMoraLopez/nutriplanbackend/config"
	"github.com/ChristianMoraLopez/nutriplanbackend/models"
)

func testJWTSettings() config.JWTSettings {
	return config.JWTSettings{
		Secret:   "test_secret_key_1234567890",
		Issuer:   "nutriplan",
		Audience: "nutriplan-users",
		Realm:    "nutriplan",
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	cfg := testJWTSettings()
	usuario := &models.Usuario{UsuarioID: 42, Email: "ana@example.com", Rol: "usuario"}

	token, err := GenerateJWT(cfg, usuario)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(cfg, token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UsuarioID != 42 {
		t.Fatalf("expected userId 42, got %d", claims.UsuarioID)
	}
	if claims.Email != "ana@example.com" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}
	if claims.Rol != "usuario" {
		t.Fatalf("expected rol claim, got %q", claims.Rol)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	cfg := testJWTSettings()
	usuario := &models.Usuario{UsuarioID: 42, Email: "ana@example.com", Rol: "usuario"}

	token, err := GenerateJWT(cfg, usuario)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	bad := cfg
	bad.Secret = "another_secret"
	if _, err := ParseJWT(bad, token); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestParseJWTWrongAudience(t *testing.T) {
	cfg := testJWTSettings()
	usuario := &models.Usuario{UsuarioID: 42, Email: "ana@example.com", Rol: "usuario"}

	token, err := GenerateJWT(cfg, usuario)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	other := cfg
	other.Audience = "other-app"
	if _, err := ParseJWT(other, token); err == nil {
		t.Fatalf("expected error for wrong audience")
	}
}

func TestParseJWTRejectsZeroUserID(t *testing.T) {
	cfg := testJWTSettings()
	usuario := &models.Usuario{UsuarioID: 0, Email: "ana@example.com", Rol: "usuario"}

	token, err := GenerateJWT(cfg, usuario)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(cfg, token); err == nil {
		t.Fatalf("expected error for token without user id")
	}
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	cfg := testJWTSettings()
	cfg.Secret = ""
	if _, err := GenerateJWT(cfg, &models.Usuario{UsuarioID: 1}); err == nil {
		t.Fatalf("expected error for missing secret")
	}
}
