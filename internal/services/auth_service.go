package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
)

const tokenTTL = 24 * time.Hour

var (
	// ErrInvalidCredentials is returned for a wrong email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDisabled is returned for a deactivated staff account.
	ErrAccountDisabled = errors.New("account is disabled")
)

// StaffClaims are the JWT claims issued to back-office users.
type StaffClaims struct {
	UserID string           `json:"userId"`
	Email  string           `json:"email"`
	Role   models.StaffRole `json:"role"`
	jwt.RegisteredClaims
}

// AuthService authenticates staff users and issues JWT tokens.
type AuthService struct {
	staffRepo *repository.StaffRepository
	jwtSecret []byte
	logger    *logrus.Logger
}

func NewAuthService(staffRepo *repository.StaffRepository, jwtSecret string, logger *logrus.Logger) *AuthService {
	return &AuthService{
		staffRepo: staffRepo,
		jwtSecret: []byte(jwtSecret),
		logger:    logger,
	}
}

// Login checks the credentials and issues a signed token.
func (s *AuthService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.staffRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(tokenTTL)
	claims := &StaffClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   user.ID.String(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	if err := s.staffRepo.UpdateLastLogin(user.ID, time.Now()); err != nil {
		s.logger.WithError(err).Warn("Failed to update last login")
	}

	return &models.LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (*StaffClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StaffClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*StaffClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// SeedAdmin creates the initial admin account when no staff users exist.
func (s *AuthService) SeedAdmin(email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	count, err := s.staffRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.StaffUser{
		ID:           uuid.New(),
		Email:        email,
		FirstName:    "Admin",
		PasswordHash: string(hash),
		Role:         models.StaffRoleAdmin,
		IsActive:     true,
	}
	if err := s.staffRepo.Create(admin); err != nil {
		return err
	}

	s.logger.WithField("email", email).Info("Seeded initial admin account")
	return nil
}
