package services_test

import (
	"errors"

	"skibidi-db/models"
)

func (s *ServiceTestSuite) TestReportLifecycle() {
	user := s.signUp("user@skibidi.test", "user")
	admin := s.signUpAdmin()
	term := s.publish(user, admin, "Gyatt")

	report, err := s.reports.Create(s.ctx, term.ID, user.ProfileID, models.CreateReportRequest{Reason: "  offensive  "})
	s.Require().NoError(err)
	s.Equal(models.ReportOpen, report.Status)
	s.Equal(models.ContentTerm, report.ContentType)
	s.Equal("offensive", report.Reason)

	open, err := s.reports.List(s.ctx, models.ReportListParams{Status: models.ReportOpen})
	s.Require().NoError(err)
	s.Len(open, 1)

	resolved, err := s.reports.Resolve(s.ctx, report.ID, admin.ProfileID)
	s.Require().NoError(err)
	s.Equal(models.ReportResolved, resolved.Status)
	s.Equal(admin.ProfileID, *resolved.ResolvedBy)
	s.NotNil(resolved.ResolvedAt)

	var conflict models.ErrorConflict
	_, err = s.reports.Resolve(s.ctx, report.ID, admin.ProfileID)
	s.True(errors.As(err, &conflict))

	open, err = s.reports.List(s.ctx, models.ReportListParams{Status: models.ReportOpen})
	s.Require().NoError(err)
	s.Empty(open)
}

func (s *ServiceTestSuite) TestReportUnknownTerm() {
	user := s.signUp("user@skibidi.test", "user")

	_, err := s.reports.Create(s.ctx, s.randomID(), user.ProfileID, models.CreateReportRequest{Reason: "spam"})

	var notFound models.ErrorNotFound
	s.True(errors.As(err, &notFound))
	s.Equal(int64(0), s.count(&models.Report{}))
}

func (s *ServiceTestSuite) TestDeleteReportedContentResolvesAllReports() {
	user := s.signUp("user@skibidi.test", "user")
	other := s.signUp("other@skibidi.test", "other")
	admin := s.signUpAdmin()
	term := s.publish(user, admin, "Ohio")
	kept := s.publish(user, admin, "Rizz")

	first, err := s.reports.Create(s.ctx, term.ID, user.ProfileID, models.CreateReportRequest{Reason: "spam"})
	s.Require().NoError(err)
	_, err = s.reports.Create(s.ctx, term.ID, other.ProfileID, models.CreateReportRequest{Reason: "also spam"})
	s.Require().NoError(err)
	_, err = s.reports.Create(s.ctx, kept.ID, other.ProfileID, models.CreateReportRequest{Reason: "unrelated"})
	s.Require().NoError(err)

	s.Require().NoError(s.reports.DeleteContent(s.ctx, first.ID, admin.ProfileID))

	var notFound models.ErrorNotFound
	_, err = s.terms.GetBySlug(s.ctx, "ohio")
	s.True(errors.As(err, &notFound))

	open, err := s.reports.List(s.ctx, models.ReportListParams{Status: models.ReportOpen})
	s.Require().NoError(err)
	s.Require().Len(open, 1)
	s.Equal(kept.ID, open[0].ContentID)

	s.True(errors.As(s.reports.DeleteContent(s.ctx, s.randomID(), admin.ProfileID), &notFound))
}

func (s *ServiceTestSuite) TestListReportsRejectsUnknownStatus() {
	_, err := s.reports.List(s.ctx, models.ReportListParams{Status: "closed"})

	var validation models.ErrorValidation
	s.True(errors.As(err, &validation))
}
