package thread

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
}

var _ domain.ThreadUsecase = (*service)(nil)

func NewService(threadRepo domain.ThreadRepository, commentRepo domain.CommentRepository, replyRepo domain.ReplyRepository) *service {
	return &service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
	}
}

func (s *service) Store(ctx context.Context, t domain.NewThread, owner string) (domain.AddedThread, error) {
	if err := t.Validate(); err != nil {
		return domain.AddedThread{}, err
	}
	return s.threadRepo.Store(ctx, t, owner)
}

// GetByID assembles the full thread view. The thread fetch doubles as the
// existence check; comments come back in creation order and the replies of
// all comments are loaded in one batched call instead of one per comment.
func (s *service) GetByID(ctx context.Context, id string) (domain.DetailThread, error) {
	row, err := s.threadRepo.GetByID(ctx, id)
	if err != nil {
		return domain.DetailThread{}, err
	}
	thread, err := domain.NewDetailThread(row)
	if err != nil {
		return domain.DetailThread{}, err
	}

	commentRows, err := s.commentRepo.FetchByThreadID(ctx, id)
	if err != nil {
		return domain.DetailThread{}, err
	}

	commentIDs := make([]string, 0, len(commentRows))
	comments := make([]domain.DetailComment, 0, len(commentRows))
	for _, cr := range commentRows {
		comment, err := domain.NewDetailComment(cr)
		if err != nil {
			return domain.DetailThread{}, err
		}
		commentIDs = append(commentIDs, comment.ID)
		comments = append(comments, comment)
	}

	replyRows, err := s.replyRepo.FetchByCommentIDs(ctx, commentIDs)
	if err != nil {
		return domain.DetailThread{}, err
	}

	// Group replies by their parent comment. A reply whose comment id
	// matches none of the fetched comments simply produces no match.
	replyMap := make(map[string][]domain.DetailReply)
	for _, rr := range replyRows {
		reply, err := domain.NewDetailReply(rr)
		if err != nil {
			return domain.DetailThread{}, err
		}
		replyMap[rr.CommentID] = append(replyMap[rr.CommentID], reply)
	}
	for i := range comments {
		if list, ok := replyMap[comments[i].ID]; ok {
			comments[i].Replies = list
		}
	}

	thread.Comments = comments
	return thread, nil
}
