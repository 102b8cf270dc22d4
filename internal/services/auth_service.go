package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"growe/internal/caching"
	"growe/internal/common"
	"growe/internal/models"
	"growe/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer     = "growe-auth"
	denylistKeyFmt  = "token_denylist:%s"
	DefaultTokenTTL = 24 * time.Hour
)

var (
	placeholderOnce sync.Once
	placeholder     []byte
)

// placeholderHash is compared against when there is no stored hash to check
func placeholderHash() []byte {
	placeholderOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Failed to generate placeholder hash: %v", err)
		}
		placeholder = hash
	})
	return placeholder
}

// AuthService authenticates credentials and issues, verifies and revokes session tokens
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.Identity, error)
	IssueToken(identity *models.Identity) (string, error)
	VerifyToken(ctx context.Context, token string) (*TokenClaims, error)
	RevokeToken(ctx context.Context, claims *TokenClaims) error
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Register(ctx context.Context, email, password, role, companyName string) (*models.User, error)
}

// TokenClaims represents JWT claims
type TokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type authService struct {
	userRepo  repositories.UserRepository
	cacheSvc  caching.CacheService
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

// AuthOption customises an AuthService
type AuthOption func(*authService)

// WithClock replaces time.Now for issuing and verifying tokens
func WithClock(now func() time.Time) AuthOption {
	return func(s *authService) { s.now = now }
}

// WithTokenTTL overrides the 24h token lifetime
func WithTokenTTL(ttl time.Duration) AuthOption {
	return func(s *authService) {
		if ttl > 0 {
			s.tokenTTL = ttl
		}
	}
}

// NewAuthService creates a new authentication service. cacheSvc may be nil, in
// which case tokens cannot be revoked.
func NewAuthService(userRepo repositories.UserRepository, cacheSvc caching.CacheService, jwtSecret string, opts ...AuthOption) AuthService {
	s := &authService{
		userRepo:  userRepo,
		cacheSvc:  cacheSvc,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  DefaultTokenTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (*models.Identity, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, common.ErrNotFound) {
		// Pay the same bcrypt cost as a real account so response time
		// does not reveal which emails exist.
		_ = bcrypt.CompareHashAndPassword(placeholderHash(), []byte(password))
		return nil, common.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.PasswordHash == "" {
		_ = bcrypt.CompareHashAndPassword(placeholderHash(), []byte(password))
		return nil, common.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	role, ok := common.NormalizeRole(user.Role)
	if !ok {
		log.Printf("User %s has unrecognised role %q", user.ID, user.Role)
		return nil, common.ErrInvalidCredentials
	}

	return &models.Identity{
		UserID:      user.ID,
		Email:       user.Email,
		Role:        role,
		CompanyName: user.CompanyName,
	}, nil
}

func (s *authService) IssueToken(identity *models.Identity) (string, error) {
	now := s.now()
	claims := TokenClaims{
		UserID: identity.UserID,
		Email:  identity.Email,
		Role:   identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   identity.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT: %w", err)
	}
	return token, nil
}

// VerifyToken returns common.ErrTokenExpired, common.ErrTokenRevoked or
// common.ErrTokenInvalid when the token cannot be accepted.
func (s *authService) VerifyToken(ctx context.Context, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrTokenInvalid
	}

	role, ok := common.NormalizeRole(claims.Role)
	if !ok {
		return nil, common.ErrTokenInvalid
	}
	claims.Role = role

	if s.cacheSvc != nil && claims.ID != "" {
		revoked, err := s.cacheSvc.GetString(ctx, fmt.Sprintf(denylistKeyFmt, claims.ID))
		if err != nil {
			log.Printf("Token denylist lookup failed: %v", err)
		} else if revoked != "" {
			return nil, common.ErrTokenRevoked
		}
	}

	return claims, nil
}

// RevokeToken denylists the token id until the token would have expired anyway
func (s *authService) RevokeToken(ctx context.Context, claims *TokenClaims) error {
	if s.cacheSvc == nil {
		return errors.New("token revocation is not configured")
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return common.ErrTokenInvalid
	}

	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.cacheSvc.SetString(ctx, fmt.Sprintf(denylistKeyFmt, claims.ID), "revoked", ttl); err != nil {
		return fmt.Errorf("failed to denylist token: %w", err)
	}
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	identity, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, err := s.IssueToken(identity)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User: models.UserResponse{
			ID:          identity.UserID,
			Email:       identity.Email,
			Role:        identity.Role,
			CompanyName: identity.CompanyName,
		},
	}, nil
}

// Register stores a new credential with a bcrypt hash of password
func (s *authService) Register(ctx context.Context, email, password, role, companyName string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, common.NewValidationError("email", "field required")
	}
	if len(password) < 6 {
		return nil, common.NewValidationError("password", "must be at least 6 characters")
	}
	normalized, ok := common.NormalizeRole(role)
	if !ok {
		return nil, common.NewValidationError("role", "must be one of: admin partner viewer")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         normalized,
		CompanyName:  companyName,
	}
	user.SetID(uuid.NewString())
	user.SetCreatedAt(s.now())

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
