package auth_test

import (
	"context"
	"testing"

	"github.com/MichalMitros/shelf-analytics/internal/auth"
	"github.com/MichalMitros/shelf-analytics/internal/auth/mocks"
	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitBearerAuthenticate(t *testing.T) {
	brandID := uuid.New()
	subject := faker.UUIDDigit()
	email := faker.Email()

	tests := map[string]struct {
		header    string
		claims    *auth.Claims
		verifyErr error
		verifies  bool
		want      models.User
		wantErr   error
	}{
		"ok": {
			header:   "Bearer token",
			claims:   &auth.Claims{Subject: subject, Email: email, Client: brandID.String()},
			verifies: true,
			want:     models.User{ID: subject, Email: email, BrandID: brandID},
		},
		"missing header": {
			wantErr: platform.ErrAuthentication,
		},
		"not bearer": {
			header:  "Basic token",
			wantErr: platform.ErrAuthentication,
		},
		"empty token": {
			header:  "Bearer  ",
			wantErr: platform.ErrAuthentication,
		},
		"invalid token": {
			header:    "Bearer token",
			verifyErr: platform.ErrAuthentication,
			verifies:  true,
			wantErr:   platform.ErrAuthentication,
		},
		"invalid client claim": {
			header:   "Bearer token",
			claims:   &auth.Claims{Subject: subject, Client: "acme"},
			verifies: true,
			wantErr:  platform.ErrAuthentication,
		},
		"missing subject": {
			header:   "Bearer token",
			claims:   &auth.Claims{Client: brandID.String()},
			verifies: true,
			wantErr:  platform.ErrAuthentication,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			verifier := mocks.NewTokenVerifier(t)
			if tt.verifies {
				verifier.On("Verify", mock.Anything, "token").Return(tt.claims, tt.verifyErr)
			}

			user, err := auth.NewBearer(verifier).Authenticate(context.TODO(), tt.header)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr, "should return correct error")
				return
			}
			require.NoError(t, err, "should authenticate")
			assert.Equal(t, tt.want, user, "should return user from claims")
		})
	}
}
