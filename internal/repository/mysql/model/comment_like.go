package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type CommentLike struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);not null"`
	Owner     string    `gorm:"column:owner;type:varchar(50);not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (CommentLike) TableName() string {
	return "thread_comment_likes"
}

func (m *CommentLike) ToDomain() domain.CommentLike {
	return domain.CommentLike{
		ID:        m.ID,
		CommentID: m.CommentID,
		Owner:     m.Owner,
		CreatedAt: m.CreatedAt,
	}
}

func NewCommentLikeFromDomain(l domain.CommentLike) CommentLike {
	return CommentLike{
		ID:        l.ID,
		CommentID: l.CommentID,
		Owner:     l.Owner,
		CreatedAt: l.CreatedAt,
	}
}
