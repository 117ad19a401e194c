package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"gearshare/config"
	"gearshare/internal/domain/entity"
	"gearshare/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte           // HMAC key shared by issue and verify.
	issuer string           // "iss" claim written and required.
	now    func() time.Time // Clock used for iat, exp and verification.
}

// NewJWTService is the constructor for jwtService.
// The signing secret is read once from configuration and never logged.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	issuer := ""
	if cfg.Auth != nil {
		issuer = cfg.Auth.Issuer
	}

	return newJWTService(cfg.SecretKey.Session, issuer, time.Now), nil
}

func newJWTService(secret, issuer string, now func() time.Time) *jwtService {
	return &jwtService{
		secret: []byte(secret),
		issuer: issuer,
		now:    now,
	}
}

// Issue signs an HS256 token binding the principal id to its namespace.
func (s *jwtService) Issue(principalID int64, namespace entity.Namespace, ttl time.Duration) (string, error) {
	if !namespace.IsValid() {
		return "", errors.Errorf("unknown namespace %q", namespace)
	}
	if ttl <= 0 {
		return "", errors.New("token ttl must be positive")
	}

	issuedAt := s.now()
	claims := service.SessionClaims{
		PrincipalID: principalID,
		Namespace:   namespace,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(principalID, 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks signature, algorithm, issuer and expiry. A token is valid
// strictly before its expiry instant. Every failure is reported as
// service.ErrInvalidToken.
func (s *jwtService) Verify(tokenString string) (*service.SessionClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &service.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, service.ErrInvalidToken
	}

	if !claims.Namespace.IsValid() {
		return nil, errors.Wrap(service.ErrInvalidToken, "unknown namespace")
	}
	if claims.Subject != strconv.FormatInt(claims.PrincipalID, 10) {
		return nil, errors.Wrap(service.ErrInvalidToken, "subject does not match principal")
	}

	return claims, nil
}
