package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"arches/config"
	"arches/internal/domain/entity"
	"arches/internal/domain/service"
)

const tokenIssuer = "arches"

// jwtService is a concrete implementation of the TokenService and
// IdentityResolver interfaces using HS256 signed JWTs.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	now          func() time.Time
}

// JWTService is both a TokenService and an IdentityResolver.
type JWTService interface {
	service.TokenService
	service.IdentityResolver
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (JWTService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		now:          time.Now,
	}, nil
}

// GenerateToken creates a signed access token for the user.
func (s *jwtService) GenerateToken(userID int64, username string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.accessTTL)

	claims := &service.Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign access token")
	}

	return signed, expiresAt, nil
}

// ValidateToken checks the signature, issuer and expiry of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidCredential, err.Error())
	}
	if !token.Valid || claims.UserID <= 0 {
		return nil, service.ErrInvalidCredential
	}

	return claims, nil
}

// ResolveIdentity implements service.IdentityResolver over ValidateToken.
func (s *jwtService) ResolveIdentity(_ context.Context, credential string) (*entity.Identity, error) {
	if credential == "" {
		return nil, service.ErrInvalidCredential
	}

	claims, err := s.ValidateToken(credential)
	if err != nil {
		return nil, err
	}

	return &entity.Identity{UserID: claims.UserID, Username: claims.Username}, nil
}
