package services_test

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"skibidi-db/models"
	"skibidi-db/services"
)

func (s *ServiceTestSuite) TestRegisterIssuesSessionAndVerificationMail() {
	resp, err := s.auth.Register(s.ctx, models.RegisterRequest{
		Email:    " New.User@Skibidi.test ",
		Password: testPassword,
		Username: "newuser",
		FullName: "New User",
	})
	s.Require().NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal("new.user@skibidi.test", resp.User.Email)
	s.Equal(models.RoleUser, resp.User.Role)
	s.False(resp.User.EmailVerified)

	token := s.mailbox.LastToken("new.user@skibidi.test")
	s.Require().NotEmpty(token)
	s.Require().NoError(s.auth.VerifyEmail(s.ctx, token))

	profile, err := s.auth.GetProfile(s.ctx, resp.User.ID)
	s.Require().NoError(err)
	s.True(profile.EmailVerified)

	var validation models.ErrorValidation
	s.True(errors.As(s.auth.VerifyEmail(s.ctx, token), &validation), "tokens are single use")
}

func (s *ServiceTestSuite) TestRegisterRejectsDuplicatesAndWeakPasswords() {
	s.signUp("user@skibidi.test", "user")
	var conflict models.ErrorConflict
	var validation models.ErrorValidation

	_, err := s.auth.Register(s.ctx, models.RegisterRequest{Email: "USER@skibidi.test", Password: testPassword, Username: "another"})
	s.True(errors.As(err, &conflict))

	_, err = s.auth.Register(s.ctx, models.RegisterRequest{Email: "fresh@skibidi.test", Password: testPassword, Username: "user"})
	s.True(errors.As(err, &conflict))

	_, err = s.auth.Register(s.ctx, models.RegisterRequest{Email: "weak@skibidi.test", Password: "password", Username: "weak"})
	s.True(errors.As(err, &validation))
	s.Equal("password", validation.Field)
}

func (s *ServiceTestSuite) TestRegisterStillSucceedsWhenMailFails() {
	s.mailbox.Err = errors.New("smtp down")

	resp, err := s.auth.Register(s.ctx, models.RegisterRequest{Email: "user@skibidi.test", Password: testPassword, Username: "user"})
	s.Require().NoError(err)
	s.NotEmpty(resp.Token)
}

func (s *ServiceTestSuite) TestLoginFailures() {
	s.signUp("user@skibidi.test", "user")
	var unauthorized models.ErrorUnauthorized

	_, err := s.auth.Login(s.ctx, models.LoginRequest{Email: "user@skibidi.test", Password: "Wr0ngPassword"})
	s.Require().True(errors.As(err, &unauthorized))
	s.Equal("invalid credentials", unauthorized.Message)

	_, err = s.auth.Login(s.ctx, models.LoginRequest{Email: "nobody@skibidi.test", Password: testPassword})
	s.Require().True(errors.As(err, &unauthorized))
	s.Equal("invalid credentials", unauthorized.Message)
}

func (s *ServiceTestSuite) TestLogoutRevokesToken() {
	s.signUp("user@skibidi.test", "user")
	login, err := s.auth.Login(s.ctx, models.LoginRequest{Email: "user@skibidi.test", Password: testPassword})
	s.Require().NoError(err)

	identity, err := s.auth.Authenticate(s.ctx, login.Token)
	s.Require().NoError(err)
	s.Require().NoError(s.auth.Logout(s.ctx, identity))
	s.Require().NoError(s.auth.Logout(s.ctx, identity), "signing out twice is harmless")

	var unauthorized models.ErrorUnauthorized
	_, err = s.auth.Authenticate(s.ctx, login.Token)
	s.True(errors.As(err, &unauthorized))

	s.True(errors.As(s.auth.Logout(s.ctx, nil), &unauthorized))
}

func (s *ServiceTestSuite) TestAuthenticateRejectsForeignAndExpiredTokens() {
	identity := s.signUp("user@skibidi.test", "user")
	var unauthorized models.ErrorUnauthorized

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, services.Claims{
		UserID: identity.ProfileID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "forged",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := forged.SignedString([]byte("some-other-secret"))
	s.Require().NoError(err)
	_, err = s.auth.Authenticate(s.ctx, signed)
	s.True(errors.As(err, &unauthorized))

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, services.Claims{
		UserID: identity.ProfileID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "expired",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err = expired.SignedString(s.cfg.JWTSecret)
	s.Require().NoError(err)
	_, err = s.auth.Authenticate(s.ctx, signed)
	s.True(errors.As(err, &unauthorized))

	_, err = s.auth.Authenticate(s.ctx, "not-a-jwt")
	s.True(errors.As(err, &unauthorized))
}

func (s *ServiceTestSuite) TestPasswordResetFlow() {
	s.signUp("user@skibidi.test", "user")

	// Unknown addresses get the same answer and no mail.
	before := len(s.mailbox.Messages())
	s.Require().NoError(s.auth.RequestPasswordReset(s.ctx, "ghost@skibidi.test"))
	s.Len(s.mailbox.Messages(), before)

	s.Require().NoError(s.auth.RequestPasswordReset(s.ctx, "user@skibidi.test"))
	messages := s.mailbox.Messages()
	s.Require().Len(messages, before+1)
	s.Contains(messages[before].Body, "http://localhost:5173/reset-password?token=")

	token := s.mailbox.LastToken("user@skibidi.test")
	var validation models.ErrorValidation
	s.True(errors.As(s.auth.ResetPassword(s.ctx, token, "short"), &validation))
	s.Require().NoError(s.auth.ResetPassword(s.ctx, token, "Br4ndNewPass"))
	s.True(errors.As(s.auth.ResetPassword(s.ctx, token, "Br4ndNewPass"), &validation))

	_, err := s.auth.Login(s.ctx, models.LoginRequest{Email: "user@skibidi.test", Password: "Br4ndNewPass"})
	s.NoError(err)
}

func (s *ServiceTestSuite) TestExpiredResetTokenIsRefused() {
	identity := s.signUp("user@skibidi.test", "user")
	s.Require().NoError(s.db.Create(&models.AuthToken{
		Token:     "stale",
		ProfileID: identity.ProfileID,
		Purpose:   models.PurposePasswordReset,
		ExpiresAt: time.Now().Add(-time.Minute),
	}).Error)

	err := s.auth.ResetPassword(s.ctx, "stale", "Br4ndNewPass")

	var validation models.ErrorValidation
	s.Require().True(errors.As(err, &validation))
	s.Equal("This link has expired", validation.Message)
}
