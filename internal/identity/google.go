// Package identity verifies federated sign-in assertions against the
// identity provider. The provider already authenticated the email; this
// package only checks the assertion is genuine and extracts its claims.
package identity

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"
)

// ErrAssertionInvalid means the assertion failed external verification.
var ErrAssertionInvalid = errors.New("identity assertion invalid")

// Assertion is the validated payload of a provider-signed ID token.
type Assertion struct {
	SubjectID     string
	Email         string
	EmailVerified bool
	Name          string
}

// Verifier validates a raw federated assertion string.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (*Assertion, error)
}

type googleVerifier struct {
	clientID string
}

// NewGoogleVerifier returns a Verifier backed by Google's public signing
// keys. The audience is pinned to the configured OAuth client id.
func NewGoogleVerifier(clientID string) Verifier {
	return &googleVerifier{clientID: clientID}
}

func (v *googleVerifier) Verify(ctx context.Context, rawToken string) (*Assertion, error) {
	payload, err := idtoken.Validate(ctx, rawToken, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssertionInvalid, err)
	}

	assertion := &Assertion{SubjectID: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		assertion.Email = email
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		assertion.EmailVerified = verified
	}
	if name, ok := payload.Claims["name"].(string); ok {
		assertion.Name = name
	}

	if assertion.Email == "" {
		return nil, fmt.Errorf("%w: assertion missing email claim", ErrAssertionInvalid)
	}

	return assertion, nil
}
