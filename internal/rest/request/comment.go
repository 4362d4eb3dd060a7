package request

// Comment is the payload for commenting on a thread.
type Comment struct {
	Content string `json:"content" validate:"required"`
}
