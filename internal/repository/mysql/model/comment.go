package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type Comment struct {
	ID        string     `gorm:"primaryKey;type:varchar(50)"`
	Content   string     `gorm:"type:text;not null"`
	ThreadID  string     `gorm:"column:thread_id;type:varchar(50);not null"`
	Owner     string     `gorm:"column:owner;type:varchar(50);not null"`
	CreatedAt time.Time  `gorm:"type:datetime"`
	DeletedAt *time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "thread_comments"
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		Content:   m.Content,
		ThreadID:  m.ThreadID,
		Owner:     m.Owner,
		CreatedAt: m.CreatedAt,
		DeletedAt: m.DeletedAt,
	}
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		Content:   c.Content,
		ThreadID:  c.ThreadID,
		Owner:     c.Owner,
		CreatedAt: c.CreatedAt,
		DeletedAt: c.DeletedAt,
	}
}
