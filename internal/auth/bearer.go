package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/google/uuid"
)

const verifyTimeout = 5 * time.Second

// Claims are identity token claims used by the service.
// Client claim holds id of brand the user acts for.
type Claims struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Client  string `json:"client"`
}

//go:generate mockery --name TokenVerifier --filename tokenverifier.go

// TokenVerifier verifies raw identity token and returns its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*Claims, error)
}

// OIDCVerifier verifies identity tokens issued by OIDC provider.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier discovers OIDC provider of issuer and returns verifier of tokens issued for audience.
func NewOIDCVerifier(ctx context.Context, issuer, audience string) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("can't discover oidc provider %q: %w", issuer, err)
	}

	return &OIDCVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: audience}),
	}, nil
}

// Verify verifies token signature, issuer, audience and expiry.
func (v *OIDCVerifier) Verify(ctx context.Context, rawToken string) (*Claims, error) {
	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token: %w", platform.ErrAuthentication, err)
	}

	var claims Claims
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%w: can't parse claims: %w", platform.ErrAuthentication, err)
	}

	return &claims, nil
}

// Bearer authenticates users by bearer identity tokens.
type Bearer struct {
	verifier TokenVerifier
}

// NewBearer returns new Bearer.
func NewBearer(verifier TokenVerifier) *Bearer {
	return &Bearer{verifier: verifier}
}

// Authenticate returns user identified by Authorization header value.
func (b *Bearer) Authenticate(ctx context.Context, authorization string) (models.User, error) {
	raw, ok := strings.CutPrefix(authorization, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return models.User{}, fmt.Errorf("%w: missing bearer token", platform.ErrAuthentication)
	}

	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	claims, err := b.verifier.Verify(ctx, strings.TrimSpace(raw))
	if err != nil {
		return models.User{}, err
	}

	brandID, err := uuid.Parse(claims.Client)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: token without valid client claim", platform.ErrAuthentication)
	}
	if claims.Subject == "" {
		return models.User{}, fmt.Errorf("%w: token without subject", platform.ErrAuthentication)
	}

	return models.User{ID: claims.Subject, Email: claims.Email, BrandID: brandID}, nil
}
