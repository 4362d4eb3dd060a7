package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type Reply struct {
	ID        string     `gorm:"primaryKey;type:varchar(50)"`
	Content   string     `gorm:"type:text;not null"`
	CommentID string     `gorm:"column:comment_id;type:varchar(50);not null"`
	Owner     string     `gorm:"column:owner;type:varchar(50);not null"`
	CreatedAt time.Time  `gorm:"type:datetime"`
	DeletedAt *time.Time `gorm:"type:datetime"`
}

func (Reply) TableName() string {
	return "thread_comment_replies"
}

func (m *Reply) ToDomain() domain.Reply {
	return domain.Reply{
		ID:        m.ID,
		Content:   m.Content,
		CommentID: m.CommentID,
		Owner:     m.Owner,
		CreatedAt: m.CreatedAt,
		DeletedAt: m.DeletedAt,
	}
}

func NewReplyFromDomain(r *domain.Reply) *Reply {
	return &Reply{
		ID:        r.ID,
		Content:   r.Content,
		CommentID: r.CommentID,
		Owner:     r.Owner,
		CreatedAt: r.CreatedAt,
		DeletedAt: r.DeletedAt,
	}
}
