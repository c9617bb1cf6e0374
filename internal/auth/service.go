package auth

import (
	"errors"
	"fmt"
	"time"

	"maintenance-portal-backend/internal/database/models"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthConfig holds the settings the auth service signs and validates tokens with
type AuthConfig struct {
	JWTSecret       string
	TokenTTLMinutes int
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTLMinutes <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               string `json:"user_id" example:"6f1f9fb0-0c0e-4b63-9c68-15a26c43a7cd"`
	Email                string `json:"email" example:"worker@example.com"`
	Role                 string `json:"role" example:"worker"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService provides password authentication and JWT issuance
type AuthService struct {
	config   *AuthConfig
	profiles repository.ProfileRepositoryInterface
}

// LoginRequest represents the request for the login endpoint
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response from the login endpoint
type LoginResponse struct {
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64           `json:"expiresIn" example:"28800"`
	Profile     ProfileResponse `json:"profile"`
}

// ProfileResponse represents the authenticated user's profile
type ProfileResponse struct {
	ID           uuid.UUID          `json:"id"`
	Email        string             `json:"email"`
	Name         string             `json:"name"`
	Role         models.ProfileRole `json:"role"`
	BuildingName string             `json:"building_name,omitempty"`
	RoomNumber   string             `json:"room_number,omitempty"`
	Phone        string             `json:"phone,omitempty"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, profiles repository.ProfileRepositoryInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config, profiles: profiles}, nil
}

// Login verifies the credentials and returns a signed JWT with the profile
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	profile, err := s.profiles.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}
	if !profile.IsActive {
		return nil, apperrors.ErrProfileInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.TokenTTLMinutes) * 60,
		Profile:     toProfileResponse(profile),
	}, nil
}

// GetProfile returns the profile of an authenticated user
func (s *AuthService) GetProfile(userID uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.profiles.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	response := toProfileResponse(profile)
	return &response, nil
}

// HashPassword hashes a plaintext password for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// GenerateJWT creates a JWT token for the profile
func (s *AuthService) GenerateJWT(profile *models.Profile) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: profile.ID.String(),
		Email:  profile.Email,
		Role:   string(profile.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.config.TokenTTLMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "maintenance-portal-backend",
			Subject:   profile.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

func toProfileResponse(p *models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:           p.ID,
		Email:        p.Email,
		Name:         p.Name,
		Role:         p.Role,
		BuildingName: p.BuildingName,
		RoomNumber:   p.RoomNumber,
		Phone:        p.Phone,
	}
}
