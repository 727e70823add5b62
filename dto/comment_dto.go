package dto

// CreateCommentRequest represents the payload for commenting on a project.
// Rating is optional; when present it feeds the project's average.
type CreateCommentRequest struct {
	Body   string `json:"body" binding:"required"`
	Rating *int   `json:"rating"`
}
