package request

// Reply is the payload for replying to a comment.
type Reply struct {
	Content string `json:"content" validate:"required"`
}
