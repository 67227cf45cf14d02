package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"skibidi-db/config"
	"skibidi-db/models"
	"skibidi-db/repositories"
)

const (
	passwordResetTTL     = time.Hour
	emailVerificationTTL = 48 * time.Hour
)

type Claims struct {
	UserID   string          `json:"user_id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller of a request.
type Identity struct {
	ProfileID uuid.UUID
	Username  string
	Role      models.UserRole
	TokenID   string
	ExpiresAt time.Time
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == models.RoleAdmin
}

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, identity *Identity) error
	Authenticate(ctx context.Context, tokenString string) (*Identity, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	VerifyEmail(ctx context.Context, token string) error
}

type authService struct {
	profileRepo repositories.ProfileRepository
	tokenRepo   repositories.TokenRepository
	mailer      Mailer
	cfg         *config.Config
	logger      *zap.Logger
}

func NewAuthService(profileRepo repositories.ProfileRepository, tokenRepo repositories.TokenRepository, mailer Mailer, cfg *config.Config, logger *zap.Logger) AuthService {
	return &authService{
		profileRepo: profileRepo,
		tokenRepo:   tokenRepo,
		mailer:      mailer,
		cfg:         cfg,
		logger:      logger,
	}
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	if err := ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	if _, err := s.profileRepo.GetByEmail(ctx, email); err == nil {
		return nil, models.ErrorConflict{Message: "user already exists"}
	} else if !repositories.IsNotFound(err) {
		return nil, models.Internal("Failed to create account. Please try again.", err)
	}
	if _, err := s.profileRepo.GetByUsername(ctx, username); err == nil {
		return nil, models.ErrorConflict{Message: "username already taken"}
	} else if !repositories.IsNotFound(err) {
		return nil, models.Internal("Failed to create account. Please try again.", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.Internal("Failed to create account. Please try again.", err)
	}

	role := models.RoleUser
	for _, adminEmail := range s.cfg.AdminEmails {
		if adminEmail == email {
			role = models.RoleAdmin
		}
	}

	profile := &models.Profile{
		Email:        email,
		Username:     username,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: string(hashedPassword),
		Role:         role,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, models.Internal("Failed to create account. Please try again.", err)
	}

	// The account is usable right away; a failed verification mail is only logged.
	if err := s.sendEmailVerification(ctx, profile); err != nil {
		s.logger.Warn("failed to send verification email", zap.Error(err), zap.String("profile_id", profile.ID.String()))
	}

	s.logger.Info("account registered", zap.String("profile_id", profile.ID.String()), zap.String("role", string(profile.Role)))
	return s.issue(profile)
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	profile, err := s.profileRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
		}
		return nil, models.Internal("Failed to sign in. Please try again.", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
	}

	if profile.Suspended {
		return nil, models.ErrorForbidden{Message: "account suspended"}
	}

	return s.issue(profile)
}

func (s *authService) Logout(ctx context.Context, identity *Identity) error {
	if identity == nil {
		return models.ErrorUnauthorized{Message: "not signed in"}
	}
	if err := s.tokenRepo.Revoke(ctx, identity.TokenID, identity.ExpiresAt); err != nil {
		return models.Internal("Failed to sign out. Please try again.", err)
	}
	if err := s.tokenRepo.PurgeExpired(ctx, time.Now()); err != nil {
		s.logger.Warn("failed to purge expired tokens", zap.Error(err))
	}
	return nil
}

// Authenticate turns a bearer token into an identity. The profile is re-read
// so that suspensions and role changes apply to tokens already issued.
func (s *authService) Authenticate(ctx context.Context, tokenString string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.cfg.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrorUnauthorized{Message: "Token is not valid"}
	}

	profileID, err := uuid.Parse(claims.UserID)
	if err != nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, models.ErrorUnauthorized{Message: "Token is not valid"}
	}

	revoked, err := s.tokenRepo.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, models.Internal("Failed to check session.", err)
	}
	if revoked {
		return nil, models.ErrorUnauthorized{Message: "Session has ended"}
	}

	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, models.ErrorUnauthorized{Message: "User not found"}
		}
		return nil, models.Internal("Failed to check session.", err)
	}
	if profile.Suspended {
		return nil, models.ErrorForbidden{Message: "account suspended"}
	}

	return &Identity{
		ProfileID: profile.ID,
		Username:  profile.Username,
		Role:      profile.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *authService) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, models.ErrorNotFound{Message: "User not found"}
		}
		return nil, models.Internal("Failed to load profile.", err)
	}
	return profile, nil
}

// RequestPasswordReset answers the same way whether or not the email is known.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	profile, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		if repositories.IsNotFound(err) {
			s.logger.Info("password reset requested for unknown email")
			return nil
		}
		return models.Internal("Failed to send reset email. Please try again.", err)
	}

	token, err := s.createToken(ctx, profile.ID, models.PurposePasswordReset, passwordResetTTL)
	if err != nil {
		return models.Internal("Failed to send reset email. Please try again.", err)
	}

	link := fmt.Sprintf("%s?token=%s", s.cfg.PasswordResetURL(), token)
	body := fmt.Sprintf("Hi %s,\n\nReset your SkibidiDB password here: %s\n\nThe link expires in one hour.", profile.Username, link)
	if err := s.mailer.Send(ctx, profile.Email, "Reset your SkibidiDB password", body); err != nil {
		return models.Internal("Failed to send reset email. Please try again.", err)
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	authToken, err := s.consumeToken(ctx, token, models.PurposePasswordReset)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.Internal("Failed to reset password. Please try again.", err)
	}
	if _, err := s.profileRepo.UpdateFields(ctx, authToken.ProfileID, map[string]interface{}{"password_hash": string(hashedPassword)}); err != nil {
		return models.Internal("Failed to reset password. Please try again.", err)
	}
	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, token string) error {
	authToken, err := s.consumeToken(ctx, token, models.PurposeEmailVerification)
	if err != nil {
		return err
	}
	if _, err := s.profileRepo.UpdateFields(ctx, authToken.ProfileID, map[string]interface{}{"email_verified": true}); err != nil {
		return models.Internal("Failed to verify email. Please try again.", err)
	}
	return nil
}

func (s *authService) sendEmailVerification(ctx context.Context, profile *models.Profile) error {
	token, err := s.createToken(ctx, profile.ID, models.PurposeEmailVerification, emailVerificationTTL)
	if err != nil {
		return err
	}
	link := fmt.Sprintf("%s?token=%s", s.cfg.EmailVerificationURL(), token)
	body := fmt.Sprintf("Welcome to SkibidiDB, %s!\n\nConfirm your email address: %s", profile.Username, link)
	return s.mailer.Send(ctx, profile.Email, "Confirm your SkibidiDB account", body)
}

func (s *authService) createToken(ctx context.Context, profileID uuid.UUID, purpose models.TokenPurpose, ttl time.Duration) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)

	err := s.tokenRepo.Create(ctx, &models.AuthToken{
		Token:     token,
		ProfileID: profileID,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(ttl),
	})
	return token, err
}

func (s *authService) consumeToken(ctx context.Context, token string, purpose models.TokenPurpose) (*models.AuthToken, error) {
	authToken, err := s.tokenRepo.Find(ctx, token, purpose)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, models.ErrorValidation{Field: "token", Message: "This link is invalid or has already been used"}
		}
		return nil, models.Internal("Failed to check token.", err)
	}

	if err := s.tokenRepo.Delete(ctx, token); err != nil {
		return nil, models.Internal("Failed to check token.", err)
	}
	if time.Now().After(authToken.ExpiresAt) {
		return nil, models.ErrorValidation{Field: "token", Message: "This link has expired"}
	}
	return authToken, nil
}

func (s *authService) issue(profile *models.Profile) (*models.AuthResponse, error) {
	token, err := s.generateToken(profile)
	if err != nil {
		return nil, models.Internal("Failed to sign in. Please try again.", err)
	}
	return &models.AuthResponse{Token: token, User: *profile}, nil
}

func (s *authService) generateToken(profile *models.Profile) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:   profile.ID.String(),
		Username: profile.Username,
		Role:     profile.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   profile.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.cfg.JWTSecret)
}

// ValidatePassword enforces at least 8 characters with an upper-case letter,
// a lower-case letter and a digit.
func ValidatePassword(password string) error {
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if len(password) < 8 || !upper || !lower || !digit {
		return models.ErrorValidation{Field: "password", Message: "Password does not meet requirements"}
	}
	return nil
}
