package services

import (
	"crypto/rand"
	"errors"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const planTokenIssuer = "tripplanner"

// PlanTokens signs reconciled plans so a client can come back for the PDF
// without the server keeping any state between the two requests.
type PlanTokens struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

type planClaims struct {
	Plan models.ReconciledItinerary `json:"plan"`
	jwt.RegisteredClaims
}

var errNoSecret = errors.New("plan token secret is not configured")

// planSecretSize matches the HS256 output size.
const planSecretSize = 32

// NewPlanSecret returns random key material for signing plan tokens.
func NewPlanSecret() ([]byte, error) {
	secret := make([]byte, planSecretSize)
	if _, err := rand.Read(secret); err != nil {
		return nil, domain.InternalError{Msg: "gagal membuat secret token", Err: err}
	}
	return secret, nil
}

func (t PlanTokens) Sign(plan models.ReconciledItinerary) (string, error) {
	if len(t.Secret) == 0 {
		return "", domain.InternalError{Msg: "gagal membuat token", Err: errNoSecret}
	}
	now := t.now()
	ttl := t.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	claims := planClaims{
		Plan: plan,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    planTokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.Secret)
	if err != nil {
		return "", domain.InternalError{Msg: "gagal membuat token", Err: err}
	}
	return signed, nil
}

// Verify checks signature, issuer and expiry and returns the embedded plan.
func (t PlanTokens) Verify(token string) (models.ReconciledItinerary, error) {
	if len(t.Secret) == 0 {
		return models.ReconciledItinerary{}, domain.InternalError{Msg: "gagal memeriksa token", Err: errNoSecret}
	}
	var claims planClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(planTokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return models.ReconciledItinerary{}, domain.InvalidRequestError{Field: "token", Msg: "plan token is invalid or expired", Err: err}
	}
	return claims.Plan, nil
}

func (t PlanTokens) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}
