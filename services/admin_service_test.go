package services_test

import (
	"errors"

	"skibidi-db/models"
)

func (s *ServiceTestSuite) TestSuspendBlocksSignInAndSessions() {
	admin := s.signUpAdmin()
	user := s.signUp("user@skibidi.test", "user")
	login, err := s.auth.Login(s.ctx, models.LoginRequest{Email: "user@skibidi.test", Password: testPassword})
	s.Require().NoError(err)

	profile, err := s.admin.SetSuspended(s.ctx, admin.ProfileID, user.ProfileID, true)
	s.Require().NoError(err)
	s.True(profile.Suspended)

	var forbidden models.ErrorForbidden
	_, err = s.auth.Login(s.ctx, models.LoginRequest{Email: "user@skibidi.test", Password: testPassword})
	s.True(errors.As(err, &forbidden))
	_, err = s.auth.Authenticate(s.ctx, login.Token)
	s.True(errors.As(err, &forbidden))

	profile, err = s.admin.SetSuspended(s.ctx, admin.ProfileID, user.ProfileID, false)
	s.Require().NoError(err)
	s.False(profile.Suspended)
	_, err = s.auth.Authenticate(s.ctx, login.Token)
	s.NoError(err)
}

func (s *ServiceTestSuite) TestAdminCannotTargetThemselves() {
	admin := s.signUpAdmin()
	var forbidden models.ErrorForbidden

	_, err := s.admin.SetSuspended(s.ctx, admin.ProfileID, admin.ProfileID, true)
	s.True(errors.As(err, &forbidden))
	_, err = s.admin.SetRole(s.ctx, admin.ProfileID, admin.ProfileID, models.RoleUser)
	s.True(errors.As(err, &forbidden))
	s.True(errors.As(s.admin.DeleteUser(s.ctx, admin.ProfileID, admin.ProfileID), &forbidden))

	users, err := s.admin.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal(models.RoleAdmin, users[0].Role)
	s.False(users[0].Suspended)
}

func (s *ServiceTestSuite) TestSetRolePromotesAndDemotes() {
	admin := s.signUpAdmin()
	user := s.signUp("user@skibidi.test", "user")

	profile, err := s.admin.SetRole(s.ctx, admin.ProfileID, user.ProfileID, models.RoleAdmin)
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, profile.Role)

	profile, err = s.admin.SetRole(s.ctx, admin.ProfileID, user.ProfileID, models.RoleUser)
	s.Require().NoError(err)
	s.Equal(models.RoleUser, profile.Role)

	var validation models.ErrorValidation
	_, err = s.admin.SetRole(s.ctx, admin.ProfileID, user.ProfileID, "owner")
	s.True(errors.As(err, &validation))

	var notFound models.ErrorNotFound
	_, err = s.admin.SetRole(s.ctx, admin.ProfileID, s.randomID(), models.RoleAdmin)
	s.True(errors.As(err, &notFound))
}

func (s *ServiceTestSuite) TestDeleteUser() {
	admin := s.signUpAdmin()
	user := s.signUp("user@skibidi.test", "user")

	s.Require().NoError(s.admin.DeleteUser(s.ctx, admin.ProfileID, user.ProfileID))

	var notFound models.ErrorNotFound
	s.True(errors.As(s.admin.DeleteUser(s.ctx, admin.ProfileID, user.ProfileID), &notFound))
	s.Equal(int64(1), s.count(&models.Profile{}))
}

func (s *ServiceTestSuite) TestResetUserPasswordMailsLink() {
	user := s.signUp("user@skibidi.test", "user")

	s.Require().NoError(s.admin.ResetUserPassword(s.ctx, user.ProfileID))

	token := s.mailbox.LastToken("user@skibidi.test")
	s.Require().NotEmpty(token)
	s.Require().NoError(s.auth.ResetPassword(s.ctx, token, "N3wPassword"))

	_, err := s.auth.Login(s.ctx, models.LoginRequest{Email: "user@skibidi.test", Password: "N3wPassword"})
	s.NoError(err)

	var notFound models.ErrorNotFound
	s.True(errors.As(s.admin.ResetUserPassword(s.ctx, s.randomID()), &notFound))
}

func (s *ServiceTestSuite) TestStatisticsCountsEverything() {
	admin := s.signUpAdmin()
	user := s.signUp("user@skibidi.test", "user")
	s.signUp("other@skibidi.test", "other")

	term := s.publish(user, admin, "Sus")
	s.submit(user, "Pending")
	rejected := s.submit(user, "Nope")
	_, err := s.moderation.Reject(s.ctx, rejected.ID, admin.ProfileID, "")
	s.Require().NoError(err)
	_, err = s.reports.Create(s.ctx, term.ID, user.ProfileID, models.CreateReportRequest{Reason: "spam"})
	s.Require().NoError(err)
	_, err = s.admin.SetSuspended(s.ctx, admin.ProfileID, user.ProfileID, true)
	s.Require().NoError(err)

	stats, err := s.admin.Statistics(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.Statistics{
		TotalTerms:            1,
		PublishedTerms:        1,
		TotalContributions:    3,
		PendingContributions:  1,
		ApprovedContributions: 1,
		RejectedContributions: 1,
		TotalUsers:            3,
		AdminUsers:            1,
		SuspendedUsers:        1,
		OpenReports:           1,
	}, *stats)
}
