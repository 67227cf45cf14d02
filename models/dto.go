package models

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	FullName string `json:"full_name" validate:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetConfirmRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

// CreateContributionRequest is validated by the contribution service rather
// than by tags so that every field gets its own message.
type CreateContributionRequest struct {
	Title        string   `json:"title"`
	Icon         string   `json:"icon"`
	Category     string   `json:"category"`
	Definition   string   `json:"definition"`
	Origin       string   `json:"origin"`
	Examples     []string `json:"examples"`
	RelatedTerms []string `json:"related_terms"`
}

type ModerationRequest struct {
	Note string `json:"note" validate:"max=1000"`
}

type UpdateTermRequest struct {
	Title  string     `json:"title" validate:"required,min=1,max=255"`
	Status TermStatus `json:"status" validate:"required,oneof=published pending rejected"`
}

type TermListParams struct {
	Query    string `form:"q"`
	Category string `form:"category"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=20"`
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Normalize clamps Page and Limit into their accepted ranges.
func (p *TermListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
}

// AdminTermFilter narrows the admin term list. Search and Status compose.
type AdminTermFilter struct {
	Search string     `form:"search"`
	Status TermStatus `form:"status"`
}

type SuspendUserRequest struct {
	Suspended bool `json:"suspended"`
}

type SetRoleRequest struct {
	Role UserRole `json:"role" validate:"required,oneof=user admin"`
}

type CreateReportRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=1000"`
}

type ReportListParams struct {
	Status ReportStatus `form:"status"`
}
