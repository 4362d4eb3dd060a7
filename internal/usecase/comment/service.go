package comment

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	likeRepo    domain.CommentLikeRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(threadRepo domain.ThreadRepository, commentRepo domain.CommentRepository, likeRepo domain.CommentLikeRepository) *service {
	return &service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
	}
}

func (s *service) Store(ctx context.Context, c domain.NewComment) (domain.AddedComment, error) {
	if err := c.Validate(); err != nil {
		return domain.AddedComment{}, err
	}
	if err := s.threadRepo.VerifyAvailability(ctx, c.ThreadID); err != nil {
		return domain.AddedComment{}, err
	}
	return s.commentRepo.Store(ctx, c)
}

// Delete checks in a fixed order, ancestor then ownership, so the most
// specific error wins: a missing thread is reported before a missing comment,
// a missing comment before a foreign owner.
func (s *service) Delete(ctx context.Context, threadID, commentID, owner string) (domain.DeletedComment, error) {
	if err := s.threadRepo.VerifyAvailability(ctx, threadID); err != nil {
		return domain.DeletedComment{}, err
	}
	if err := s.commentRepo.VerifyOwner(ctx, commentID, owner); err != nil {
		return domain.DeletedComment{}, err
	}
	return s.commentRepo.SoftDelete(ctx, commentID)
}

// ToggleLike re-checks the current like state before every write, which is
// the only guard against double likes; there is no uniqueness constraint on
// (comment, user).
func (s *service) ToggleLike(ctx context.Context, threadID, commentID, owner string) error {
	if err := s.threadRepo.VerifyAvailability(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyAvailability(ctx, commentID); err != nil {
		return err
	}

	liked, err := s.likeRepo.IsLiked(ctx, commentID, owner)
	if err != nil {
		return err
	}
	if liked {
		return s.likeRepo.Delete(ctx, commentID, owner)
	}
	return s.likeRepo.Store(ctx, commentID, owner)
}
