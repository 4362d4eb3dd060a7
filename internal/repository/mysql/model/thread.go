package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type Thread struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Title     string    `gorm:"type:varchar(150);not null"`
	Body      string    `gorm:"type:text;not null"`
	Owner     string    `gorm:"column:owner;type:varchar(50);not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Thread) TableName() string {
	return "threads"
}

func (m *Thread) ToDomain() domain.Thread {
	return domain.Thread{
		ID:        m.ID,
		Title:     m.Title,
		Body:      m.Body,
		Owner:     m.Owner,
		CreatedAt: m.CreatedAt,
	}
}

func NewThreadFromDomain(t *domain.Thread) *Thread {
	return &Thread{
		ID:        t.ID,
		Title:     t.Title,
		Body:      t.Body,
		Owner:     t.Owner,
		CreatedAt: t.CreatedAt,
	}
}
