package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const (
	TokenTypeAdmin = "admin"
	TokenTypeGuest = "guest"

	issuer = "wedibox"
)

// AdminClaims identify an authenticated admin
type AdminClaims struct {
	AdminID uuid.UUID `json:"admin_id"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	Type    string    `json:"type"`
	jwt.RegisteredClaims
}

// GuestClaims prove that the holder entered the access code of EventID
type GuestClaims struct {
	EventID string `json:"event_id"`
	Type    string `json:"type"`
	jwt.RegisteredClaims
}

// Service handles JWT operations
type Service struct {
	secret   []byte
	adminTTL time.Duration
	guestTTL time.Duration
}

// NewService creates JWT service
func NewService(secret string, adminTTL, guestTTL time.Duration) *Service {
	return &Service{secret: []byte(secret), adminTTL: adminTTL, guestTTL: guestTTL}
}

// GenerateAdminToken signs an admin session token
func (s *Service) GenerateAdminToken(adminID uuid.UUID, email, role string) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		AdminID: adminID,
		Email:   email,
		Role:    role,
		Type:    TokenTypeAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID.String(),
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.adminTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// GenerateGuestToken signs a token unlocking restricted albums of one event
func (s *Service) GenerateGuestToken(eventID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.guestTTL)
	claims := GuestClaims{
		EventID: eventID,
		Type:    TokenTypeGuest,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   eventID,
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	return token, expiresAt, err
}

// ValidateAdminToken validates and parses an admin token
func (s *Service) ValidateAdminToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.Type != TokenTypeAdmin {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateGuestToken validates and parses a guest token
func (s *Service) ValidateGuestToken(tokenString string) (*GuestClaims, error) {
	claims := &GuestClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.Type != TokenTypeGuest || claims.EventID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *Service) parse(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredToken
		}
		return ErrInvalidToken
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

func (s *Service) AdminTTL() time.Duration { return s.adminTTL }
