package services

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"
)

// GoogleIdentity is the subset of a verified provider token the app needs.
type GoogleIdentity struct {
	Email  string
	Nombre string
}

// TokenVerifier validates an externally issued identity token. It is injected
// into the auth controller so tests can substitute a fake and so the provider
// client is configured exactly once at startup.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*GoogleIdentity, error)
}

type googleVerifier struct {
	clientID string
}

// NewGoogleVerifier returns a TokenVerifier backed by Google's public key
// infrastructure. The clientID is the OAuth audience the tokens must carry.
func NewGoogleVerifier(clientID string) (TokenVerifier, error) {
	if clientID == "" {
		return nil, errors.New("google client id is not configured")
	}
	return &googleVerifier{clientID: clientID}, nil
}

func (v *googleVerifier) Verify(ctx context.Context, rawToken string) (*GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, rawToken, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("validate google token: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("google token has no email claim")
	}
	nombre, _ := payload.Claims["name"].(string)
	if nombre == "" {
		nombre = email
	}

	return &GoogleIdentity{Email: email, Nombre: nombre}, nil
}
