package models

// Statistics is the result of the get_statistics aggregate.
type Statistics struct {
	TotalTerms            int64 `json:"total_terms"`
	PublishedTerms        int64 `json:"published_terms"`
	TotalContributions    int64 `json:"total_contributions"`
	PendingContributions  int64 `json:"pending_contributions"`
	ApprovedContributions int64 `json:"approved_contributions"`
	RejectedContributions int64 `json:"rejected_contributions"`
	TotalUsers            int64 `json:"total_users"`
	AdminUsers            int64 `json:"admin_users"`
	SuspendedUsers        int64 `json:"suspended_users"`
	OpenReports           int64 `json:"open_reports"`
}

// AllModels lists every table the service owns, in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&Profile{},
		&Contribution{},
		&Term{},
		&TermVersion{},
		&Report{},
		&AuthToken{},
		&RevokedToken{},
	}
}
