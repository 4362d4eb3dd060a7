package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type replyRepository struct {
	DB    *gorm.DB
	idGen domain.IDGenerator
	now   domain.Clock
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB, idGen domain.IDGenerator, now domain.Clock) *replyRepository {
	return &replyRepository{
		DB:    db,
		idGen: idGen,
		now:   now,
	}
}

func (r *replyRepository) Store(ctx context.Context, nr domain.NewReply) (domain.AddedReply, error) {
	reply := model.Reply{
		ID:        "reply-" + r.idGen(),
		Content:   nr.Content,
		CommentID: nr.CommentID,
		Owner:     nr.Owner,
		CreatedAt: r.now(),
	}
	if err := r.DB.WithContext(ctx).Create(&reply).Error; err != nil {
		return domain.AddedReply{}, err
	}
	return domain.AddedReply{ID: reply.ID, Content: reply.Content, Owner: reply.Owner}, nil
}

func (r *replyRepository) SoftDelete(ctx context.Context, id string) (domain.DeletedReply, error) {
	deletedAt := r.now()
	result := r.DB.WithContext(ctx).Model(&model.Reply{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", deletedAt)
	if result.Error != nil {
		return domain.DeletedReply{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.DeletedReply{}, domain.ErrNotFound
	}
	return domain.DeletedReply{ID: id, DeletedAt: deletedAt}, nil
}

type replyListRow struct {
	ID        string
	CommentID string
	Content   string
	CreatedAt time.Time
	DeletedAt *time.Time
	Username  string
}

// FetchByCommentIDs loads the replies of every given comment in one IN query,
// keeping load proportional to comment count instead of reply count.
func (r *replyRepository) FetchByCommentIDs(ctx context.Context, commentIDs []string) ([]domain.ReplyRow, error) {
	if len(commentIDs) == 0 {
		return []domain.ReplyRow{}, nil
	}

	var rows []replyListRow
	err := r.DB.WithContext(ctx).Model(&model.Reply{}).
		Select("thread_comment_replies.id, thread_comment_replies.comment_id,"+
			" thread_comment_replies.content, thread_comment_replies.created_at,"+
			" thread_comment_replies.deleted_at, users.username").
		Joins("JOIN users ON users.id = thread_comment_replies.owner").
		Where("thread_comment_replies.comment_id IN ?", commentIDs).
		Order("thread_comment_replies.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.ReplyRow, len(rows))
	for i := range rows {
		res[i] = domain.ReplyRow{
			ID:        rows[i].ID,
			CommentID: rows[i].CommentID,
			Content:   rows[i].Content,
			Username:  rows[i].Username,
			Date:      rows[i].CreatedAt,
			DeletedAt: rows[i].DeletedAt,
		}
	}
	return res, nil
}

func (r *replyRepository) VerifyOwner(ctx context.Context, id, owner string) error {
	var reply model.Reply
	err := r.DB.WithContext(ctx).First(&reply, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if reply.Owner != owner {
		return domain.ErrForbidden
	}
	return nil
}
