package mysql

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type commentLikeRepository struct {
	DB    *gorm.DB
	idGen domain.IDGenerator
	now   domain.Clock
}

var _ domain.CommentLikeRepository = (*commentLikeRepository)(nil)

func NewCommentLikeRepository(db *gorm.DB, idGen domain.IDGenerator, now domain.Clock) *commentLikeRepository {
	return &commentLikeRepository{
		DB:    db,
		idGen: idGen,
		now:   now,
	}
}

func (r *commentLikeRepository) Store(ctx context.Context, commentID, owner string) error {
	like := model.CommentLike{
		ID:        "commentlike-" + r.idGen(),
		CommentID: commentID,
		Owner:     owner,
		CreatedAt: r.now(),
	}
	return r.DB.WithContext(ctx).Create(&like).Error
}

func (r *commentLikeRepository) Delete(ctx context.Context, commentID, owner string) error {
	return r.DB.WithContext(ctx).
		Where("comment_id = ? AND owner = ?", commentID, owner).
		Delete(&model.CommentLike{}).Error
}

func (r *commentLikeRepository) IsLiked(ctx context.Context, commentID, owner string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.CommentLike{}).
		Where("comment_id = ? AND owner = ?", commentID, owner).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
