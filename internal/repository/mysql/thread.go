package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type threadRepository struct {
	DB    *gorm.DB
	idGen domain.IDGenerator
	now   domain.Clock
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

// NewThreadRepository will create an implementation of domain.ThreadRepository
func NewThreadRepository(db *gorm.DB, idGen domain.IDGenerator, now domain.Clock) *threadRepository {
	return &threadRepository{
		DB:    db,
		idGen: idGen,
		now:   now,
	}
}

func (r *threadRepository) Store(ctx context.Context, t domain.NewThread, owner string) (domain.AddedThread, error) {
	thread := model.Thread{
		ID:        "thread-" + r.idGen(),
		Title:     t.Title,
		Body:      t.Body,
		Owner:     owner,
		CreatedAt: r.now(),
	}
	if err := r.DB.WithContext(ctx).Create(&thread).Error; err != nil {
		return domain.AddedThread{}, err
	}
	return domain.AddedThread{ID: thread.ID, Title: thread.Title, Owner: thread.Owner}, nil
}

type threadDetailRow struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
	Username  string
}

func (r *threadRepository) GetByID(ctx context.Context, id string) (domain.ThreadRow, error) {
	var row threadDetailRow
	err := r.DB.WithContext(ctx).Model(&model.Thread{}).
		Select("threads.id, threads.title, threads.body, threads.created_at, users.username").
		Joins("JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ThreadRow{}, domain.ErrNotFound
		}
		return domain.ThreadRow{}, err
	}

	return domain.ThreadRow{
		ID:       row.ID,
		Title:    row.Title,
		Body:     row.Body,
		Date:     row.CreatedAt,
		Username: row.Username,
	}, nil
}

func (r *threadRepository) VerifyAvailability(ctx context.Context, id string) error {
	var thread model.Thread
	err := r.DB.WithContext(ctx).Select("id").First(&thread, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
