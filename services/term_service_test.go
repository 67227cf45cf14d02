package services_test

import (
	"errors"
	"fmt"

	"skibidi-db/models"
)

func titles(terms []models.Term) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		out = append(out, t.Title)
	}
	return out
}

// Submitting "Yeet", approving it, then finding it by slug and by search.
func (s *ServiceTestSuite) TestApprovedTermIsBrowsable() {
	user := s.signUp("user@skibidi.test", "user")
	admin := s.signUpAdmin()
	s.publish(user, admin, "Yeet")

	term, err := s.terms.GetBySlug(s.ctx, "yeet")
	s.Require().NoError(err)
	s.Equal("Yeet", term.Title)

	suggestions, err := s.terms.Suggest(s.ctx, "YEE")
	s.Require().NoError(err)
	s.Equal([]string{"Yeet"}, titles(suggestions))

	list, total, err := s.terms.ListPublished(s.ctx, models.TermListParams{Query: "yeet"})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal([]string{"Yeet"}, titles(list))
}

func (s *ServiceTestSuite) TestGetBySlugNormalizesAndHidesUnpublished() {
	user := s.signUp("user@skibidi.test", "user")
	admin := s.signUpAdmin()
	term := s.publish(user, admin, "Main Character")

	found, err := s.terms.GetBySlug(s.ctx, "Main Character")
	s.Require().NoError(err)
	s.Equal(term.ID, found.ID)
	s.Equal("main-character", found.Slug)

	_, err = s.terms.Update(s.ctx, term.ID, models.UpdateTermRequest{Title: term.Title, Status: models.TermRejected}, admin.ProfileID)
	s.Require().NoError(err)

	var notFound models.ErrorNotFound
	_, err = s.terms.GetBySlug(s.ctx, "main-character")
	s.True(errors.As(err, &notFound))
	_, err = s.terms.GetBySlug(s.ctx, "does-not-exist")
	s.True(errors.As(err, &notFound))
}

func (s *ServiceTestSuite) TestSuggestLimitsAndEmptyQuery() {
	user := s.signUp("user@skibidi.test", "user")
	admin := s.signUpAdmin()
	for i := 0; i < 10; i++ {
		s.publish(user, admin, fmt.Sprintf("Vibe %02d", i))
	}

	suggestions, err := s.terms.Suggest(s.ctx, "vibe")
	s.Require().NoError(err)
	s.Len(suggestions, 8)

	empty, err := s.terms.Suggest(s.ctx, "   ")
	s.Require().NoError(err)
	s.NotNil(empty)
	s.Empty(empty)

	// Matches on the definition as well as the title.
	byDefinition, err := s.terms.Suggest(s.ctx, "impressive")
	s.Require().NoError(err)
	s.Len(byDefinition, 8)
}

func (s *ServiceTestSuite) TestSuggestTreatsWildcardsLiterally() {
	user := s.signUp("user@skibidi.test", "user")
	admin := s.signUpAdmin()
	s.publish(user, admin, "Rizz")

	suggestions, err := s.terms.Suggest(s.ctx, "%")
	s.Require().NoError(err)
	s.Empty(suggestions)
}

func (s *ServiceTestSuite) TestListPublishedPaginatesAndFilters() {
	user := s.signUp("user@skibidi.test", "user")
	admin := s.signUpAdmin()
	for _, title := range []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"} {
		s.publish(user, admin, title)
	}
	gaming := contributionRequest("GG")
	gaming.Category = "Gaming"
	contribution, err := s.contributions.Submit(s.ctx, user, gaming)
	s.Require().NoError(err)
	_, _, err = s.moderation.Approve(s.ctx, contribution.ID, admin.ProfileID, "")
	s.Require().NoError(err)

	page, total, err := s.terms.ListPublished(s.ctx, models.TermListParams{Page: 2, Limit: 2})
	s.Require().NoError(err)
	s.Equal(int64(6), total)
	s.Equal([]string{"Charlie", "Delta"}, titles(page))

	games, total, err := s.terms.ListPublished(s.ctx, models.TermListParams{Category: "Gaming"})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal([]string{"GG"}, titles(games))

	var validation models.ErrorValidation
	_, _, err = s.terms.ListPublished(s.ctx, models.TermListParams{Category: "Cooking"})
	s.True(errors.As(err, &validation))
}

// Search and status filters narrow the admin list together.
func (s *ServiceTestSuite) TestAdminListComposesSearchAndStatus() {
	user := s.signUp("user@skibidi.test", "user")
	admin := s.signUpAdmin()
	s.publish(user, admin, "Skibidi")
	hidden := s.publish(user, admin, "Skibidi Toilet")
	s.publish(user, admin, "Ohio")

	_, err := s.terms.Update(s.ctx, hidden.ID, models.UpdateTermRequest{Title: hidden.Title, Status: models.TermPending}, admin.ProfileID)
	s.Require().NoError(err)

	all, err := s.terms.AdminList(s.ctx, models.AdminTermFilter{})
	s.Require().NoError(err)
	s.Len(all, 3)

	search, err := s.terms.AdminList(s.ctx, models.AdminTermFilter{Search: "skib"})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"Skibidi", "Skibidi Toilet"}, titles(search))

	composed, err := s.terms.AdminList(s.ctx, models.AdminTermFilter{Search: "Skib", Status: models.TermPublished})
	s.Require().NoError(err)
	s.Equal([]string{"Skibidi"}, titles(composed))

	pending, err := s.terms.AdminList(s.ctx, models.AdminTermFilter{Status: models.TermPending})
	s.Require().NoError(err)
	s.Equal([]string{"Skibidi Toilet"}, titles(pending))

	var validation models.ErrorValidation
	_, err = s.terms.AdminList(s.ctx, models.AdminTermFilter{Status: "archived"})
	s.True(errors.As(err, &validation))
}

func (s *ServiceTestSuite) TestUpdateWritesVersionHistory() {
	user := s.signUp("user@skibidi.test", "user")
	admin := s.signUpAdmin()
	term := s.publish(user, admin, "Fanum Tax")

	updated, err := s.terms.Update(s.ctx, term.ID, models.UpdateTermRequest{Title: "Fanum  Tax Season", Status: models.TermPublished}, admin.ProfileID)
	s.Require().NoError(err)
	s.Equal("Fanum  Tax Season", updated.Title)
	s.Equal("fanum-tax-season", updated.Slug)

	_, err = s.terms.Update(s.ctx, term.ID, models.UpdateTermRequest{Title: "Fanum Tax", Status: models.TermRejected}, admin.ProfileID)
	s.Require().NoError(err)

	versions, err := s.terms.Versions(s.ctx, term.ID)
	s.Require().NoError(err)
	s.Require().Len(versions, 3)
	s.Equal(3, versions[0].VersionNumber)
	s.Equal(models.ChangeUpdate, versions[0].ChangeType)
	s.Equal(models.TermRejected, versions[0].Status)
	s.Equal("Fanum  Tax Season", versions[1].Title)
	s.Equal(models.ChangeCreation, versions[2].ChangeType)
}

func (s *ServiceTestSuite) TestUpdateRefusesTakenSlug() {
	user := s.signUp("user@skibidi.test", "user")
	admin := s.signUpAdmin()
	s.publish(user, admin, "Rizz Up")
	other := s.publish(user, admin, "Delulu")

	var conflict models.ErrorConflict
	_, err := s.terms.Update(s.ctx, other.ID, models.UpdateTermRequest{Title: "rizz-up", Status: models.TermPublished}, admin.ProfileID)
	s.Require().True(errors.As(err, &conflict), "unexpected error: %v", err)

	unchanged, err := s.terms.GetBySlug(s.ctx, "delulu")
	s.Require().NoError(err)
	s.Equal(other.ID, unchanged.ID)

	hidden, err := s.terms.Update(s.ctx, other.ID, models.UpdateTermRequest{Title: "Rizz  Up", Status: models.TermPending}, admin.ProfileID)
	s.Require().NoError(err, "unpublished terms may share a slug")
	s.Equal("rizz-up", hidden.Slug)

	_, err = s.terms.Update(s.ctx, other.ID, models.UpdateTermRequest{Title: "Rizz  Up", Status: models.TermPublished}, admin.ProfileID)
	s.True(errors.As(err, &conflict))

	versions, err := s.terms.Versions(s.ctx, other.ID)
	s.Require().NoError(err)
	s.Len(versions, 2, "refused updates leave no version behind")
}

func (s *ServiceTestSuite) TestUpdateAndDeleteUnknownTerm() {
	admin := s.signUpAdmin()
	var notFound models.ErrorNotFound

	_, err := s.terms.Update(s.ctx, s.randomID(), models.UpdateTermRequest{Title: "x", Status: models.TermPublished}, admin.ProfileID)
	s.True(errors.As(err, &notFound))
	s.True(errors.As(s.terms.Delete(s.ctx, s.randomID()), &notFound))
	_, err = s.terms.Versions(s.ctx, s.randomID())
	s.True(errors.As(err, &notFound))
}

func (s *ServiceTestSuite) TestDeleteRemovesTermFromBrowsing() {
	user := s.signUp("user@skibidi.test", "user")
	admin := s.signUpAdmin()
	term := s.publish(user, admin, "Aura")

	s.Require().NoError(s.terms.Delete(s.ctx, term.ID))

	_, err := s.terms.GetBySlug(s.ctx, "aura")
	var notFound models.ErrorNotFound
	s.True(errors.As(err, &notFound))

	all, err := s.terms.AdminList(s.ctx, models.AdminTermFilter{})
	s.Require().NoError(err)
	s.Empty(all)
}
