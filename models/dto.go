package models

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// TranslationInput carries one language's content, keyed by language id in
// the request maps below.
type TranslationInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateDraftRequest struct {
	Translations map[string]TranslationInput `json:"translations" binding:"required"`
	CategoryID   uint                        `json:"category_id" binding:"required"`
	LabelIDs     []uint                      `json:"label_ids"`
}

type CreateVersionRequest struct {
	Translations map[string]TranslationInput `json:"translations" binding:"required"`
}

type UpdateDraftRequest struct {
	Translations map[string]TranslationInput `json:"translations" binding:"required"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type CreateLabelRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type CreateCommentRequest struct {
	Body     string `json:"body" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

// VersionListParams filters the admin review listing. Search is a
// case-sensitive substring match over translated name/description in the
// required languages.
type VersionListParams struct {
	Status     string `form:"status"`
	Search     string `form:"search"`
	CategoryID uint   `form:"category_id"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=10"`
}

type GlossaryListParams struct {
	CategoryID uint `form:"category_id"`
	Page       int  `form:"page,default=1"`
	Limit      int  `form:"limit,default=20"`
}

// Lifecycle operation results. Success is always true when the operation
// returns without error; failures surface as typed errors instead.

type CreateDraftResult struct {
	Success   bool `json:"success"`
	TermID    uint `json:"term_id"`
	VersionID uint `json:"version_id"`
}

type VersionResult struct {
	Success   bool `json:"success"`
	VersionID uint `json:"version_id"`
}

type DeleteVersionResult struct {
	Success         bool  `json:"success"`
	TermDeleted     bool  `json:"term_deleted"`
	ActiveVersionID *uint `json:"active_version_id,omitempty"`
}
