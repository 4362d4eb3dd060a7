package model

import "time"

// Authentication stores issued refresh tokens. Rows are removed on logout
// and swept by the purge worker once expired.
type Authentication struct {
	Token     string    `gorm:"primaryKey;type:varchar(512)"`
	ExpiresAt time.Time `gorm:"column:expires_at;type:datetime;not null"`
}

func (Authentication) TableName() string {
	return "authentications"
}
