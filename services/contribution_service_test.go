package services_test

import (
	"errors"

	"skibidi-db/models"
	"skibidi-db/services"
)

func (s *ServiceTestSuite) TestSubmitWithoutIdentityPromptsSignIn() {
	_, err := s.contributions.Submit(s.ctx, nil, contributionRequest("Rizz"))

	var unauthorized models.ErrorUnauthorized
	s.Require().True(errors.As(err, &unauthorized))
	s.Equal("Please sign in to contribute terms", unauthorized.Message)
	s.Equal(int64(1000), unauthorized.Data["auth_prompt_after_ms"])
	s.Equal(int64(0), s.count(&models.Contribution{}))
}

func (s *ServiceTestSuite) TestSubmitValidatesFieldsInOrder() {
	user := s.signUp("user@skibidi.test", "user")

	cases := []struct {
		name    string
		mutate  func(*models.CreateContributionRequest)
		field   string
		message string
	}{
		{"blank title", func(r *models.CreateContributionRequest) { r.Title = "   " }, "title", "Term title is required"},
		{"title checked before definition", func(r *models.CreateContributionRequest) { r.Title = ""; r.Definition = "" }, "title", "Term title is required"},
		{"blank definition", func(r *models.CreateContributionRequest) { r.Definition = "\t" }, "definition", "Definition is required"},
		{"missing category", func(r *models.CreateContributionRequest) { r.Category = "" }, "category", "Category is required"},
		{"unknown category", func(r *models.CreateContributionRequest) { r.Category = "Cooking" }, "category", "Category is invalid"},
		{"no examples", func(r *models.CreateContributionRequest) { r.Examples = nil }, "examples", "At least one usage example is required"},
		{"only blank examples", func(r *models.CreateContributionRequest) { r.Examples = []string{"", "  "} }, "examples", "At least one usage example is required"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := contributionRequest("Rizz")
			tc.mutate(&req)

			_, err := s.contributions.Submit(s.ctx, user, req)

			var validation models.ErrorValidation
			s.Require().True(errors.As(err, &validation))
			s.Equal(tc.field, validation.Field)
			s.Equal(tc.message, validation.Message)
		})
	}
	s.Equal(int64(0), s.count(&models.Contribution{}))
}

func (s *ServiceTestSuite) TestSubmitStoresPendingContribution() {
	user := s.signUp("user@skibidi.test", "user")

	contribution, err := s.contributions.Submit(s.ctx, user, models.CreateContributionRequest{
		Title:        "  Yeet  ",
		Category:     "Slang",
		Definition:   " To throw with force ",
		Examples:     []string{"", "He yeeted the ball", "  "},
		RelatedTerms: []string{" ", "Throw"},
	})
	s.Require().NoError(err)

	s.Equal(models.ContributionPending, contribution.Status)
	s.Equal(user.ProfileID, contribution.SubmittedBy)
	s.Equal("Yeet", contribution.Title)
	s.Equal("To throw with force", contribution.Definition)
	s.Equal(models.DefaultIcon, contribution.Icon)
	s.Equal([]string{"He yeeted the ball"}, []string(contribution.Examples))
	s.Equal([]string{"Throw"}, []string(contribution.RelatedTerms))
	s.False(contribution.SubmittedAt.IsZero())
	s.Nil(contribution.ModeratedBy)
	s.Nil(contribution.TermID)

	mine, err := s.contributions.ListMine(s.ctx, user.ProfileID)
	s.Require().NoError(err)
	s.Require().Len(mine, 1)
	s.Equal(contribution.ID, mine[0].ID)
}

func (s *ServiceTestSuite) TestSubmitKeepsCustomIcon() {
	user := s.signUp("user@skibidi.test", "user")
	req := contributionRequest("Sigma")
	req.Icon = "🐺"

	contribution, err := s.contributions.Submit(s.ctx, user, req)
	s.Require().NoError(err)
	s.Equal("🐺", contribution.Icon)
}

func (s *ServiceTestSuite) TestValidateContributionAcceptsEveryCategory() {
	for _, category := range models.Categories {
		req := contributionRequest("Gyatt")
		req.Category = category
		s.NoError(services.ValidateContribution(req), category)
	}
}
