package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type commentRepository struct {
	DB    *gorm.DB
	idGen domain.IDGenerator
	now   domain.Clock
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB, idGen domain.IDGenerator, now domain.Clock) *commentRepository {
	return &commentRepository{
		DB:    db,
		idGen: idGen,
		now:   now,
	}
}

func (r *commentRepository) Store(ctx context.Context, c domain.NewComment) (domain.AddedComment, error) {
	comment := model.Comment{
		ID:        "comment-" + r.idGen(),
		Content:   c.Content,
		ThreadID:  c.ThreadID,
		Owner:     c.Owner,
		CreatedAt: r.now(),
	}
	if err := r.DB.WithContext(ctx).Create(&comment).Error; err != nil {
		return domain.AddedComment{}, err
	}
	return domain.AddedComment{ID: comment.ID, Content: comment.Content, Owner: comment.Owner}, nil
}

// SoftDelete only touches undeleted rows, so a second delete on the same id
// affects nothing and surfaces as ErrNotFound.
func (r *commentRepository) SoftDelete(ctx context.Context, id string) (domain.DeletedComment, error) {
	deletedAt := r.now()
	result := r.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", deletedAt)
	if result.Error != nil {
		return domain.DeletedComment{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.DeletedComment{}, domain.ErrNotFound
	}
	return domain.DeletedComment{ID: id, DeletedAt: deletedAt}, nil
}

type commentListRow struct {
	ID        string
	Content   string
	CreatedAt time.Time
	DeletedAt *time.Time
	Username  string
	LikeCount int64
}

func (r *commentRepository) FetchByThreadID(ctx context.Context, threadID string) ([]domain.CommentRow, error) {
	var rows []commentListRow
	err := r.DB.WithContext(ctx).Model(&model.Comment{}).
		Select("thread_comments.id, thread_comments.content, thread_comments.created_at,"+
			" thread_comments.deleted_at, users.username,"+
			" (SELECT COUNT(id) FROM thread_comment_likes WHERE comment_id = thread_comments.id) AS like_count").
		Joins("JOIN users ON users.id = thread_comments.owner").
		Where("thread_comments.thread_id = ?", threadID).
		Order("thread_comments.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.CommentRow, len(rows))
	for i := range rows {
		res[i] = domain.CommentRow{
			ID:        rows[i].ID,
			Content:   rows[i].Content,
			Username:  rows[i].Username,
			Date:      rows[i].CreatedAt,
			DeletedAt: rows[i].DeletedAt,
			LikeCount: rows[i].LikeCount,
		}
	}
	return res, nil
}

func (r *commentRepository) VerifyAvailability(ctx context.Context, id string) error {
	var comment model.Comment
	err := r.DB.WithContext(ctx).Select("id").
		First(&comment, "id = ? AND deleted_at IS NULL", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// VerifyOwner deliberately sees deleted rows: ownership of a deleted comment
// still resolves, the delete itself then fails with ErrNotFound.
func (r *commentRepository) VerifyOwner(ctx context.Context, id, owner string) error {
	var comment model.Comment
	err := r.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if comment.Owner != owner {
		return domain.ErrForbidden
	}
	return nil
}
