package request

import "github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"

// Thread is the payload for creating a thread.
type Thread struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

func (t *Thread) ToDomain() domain.NewThread {
	return domain.NewThread{
		Title: t.Title,
		Body:  t.Body,
	}
}
