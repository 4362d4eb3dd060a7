package reply

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(threadRepo domain.ThreadRepository, commentRepo domain.CommentRepository, replyRepo domain.ReplyRepository) *service {
	return &service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
	}
}

// Store checks both ancestors before writing: a reply cannot be created when
// either the thread or the comment is gone.
func (s *service) Store(ctx context.Context, r domain.NewReply) (domain.AddedReply, error) {
	if err := r.Validate(); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.threadRepo.VerifyAvailability(ctx, r.ThreadID); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.commentRepo.VerifyAvailability(ctx, r.CommentID); err != nil {
		return domain.AddedReply{}, err
	}
	return s.replyRepo.Store(ctx, r)
}

func (s *service) Delete(ctx context.Context, threadID, commentID, replyID, owner string) (domain.DeletedReply, error) {
	if err := s.threadRepo.VerifyAvailability(ctx, threadID); err != nil {
		return domain.DeletedReply{}, err
	}
	if err := s.commentRepo.VerifyAvailability(ctx, commentID); err != nil {
		return domain.DeletedReply{}, err
	}
	if err := s.replyRepo.VerifyOwner(ctx, replyID, owner); err != nil {
		return domain.DeletedReply{}, err
	}
	return s.replyRepo.SoftDelete(ctx, replyID)
}
