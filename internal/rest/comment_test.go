package rest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type commentUsecaseMock struct {
	storeFn      func(ctx context.Context, c domain.NewComment) (domain.AddedComment, error)
	deleteFn     func(ctx context.Context, threadID, commentID, owner string) (domain.DeletedComment, error)
	toggleLikeFn func(ctx context.Context, threadID, commentID, owner string) error
}

func (m *commentUsecaseMock) Store(ctx context.Context, c domain.NewComment) (domain.AddedComment, error) {
	return m.storeFn(ctx, c)
}

func (m *commentUsecaseMock) Delete(ctx context.Context, threadID, commentID, owner string) (domain.DeletedComment, error) {
	return m.deleteFn(ctx, threadID, commentID, owner)
}

func (m *commentUsecaseMock) ToggleLike(ctx context.Context, threadID, commentID, owner string) error {
	return m.toggleLikeFn(ctx, threadID, commentID, owner)
}

func commentTestRouter(svc domain.CommentUsecase, mws ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := rest.NewCommentHandler(svc)
	r := gin.New()
	grp := r.Group("/", mws...)
	grp.POST("/threads/:id/comments", h.Store)
	grp.DELETE("/threads/:id/comments/:commentId", h.Delete)
	grp.PUT("/threads/:id/comments/:commentId/likes", h.Like)
	return r
}

func TestCommentHandler_Store(t *testing.T) {
	var got domain.NewComment
	svc := &commentUsecaseMock{
		storeFn: func(ctx context.Context, c domain.NewComment) (domain.AddedComment, error) {
			got = c
			return domain.AddedComment{ID: "comment-1", Content: c.Content, Owner: c.Owner}, nil
		},
	}

	r := commentTestRouter(svc, asUser("user-1"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/threads/thread-1/comments",
		strings.NewReader(`{"content":"nice"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "thread-1", got.ThreadID)
	assert.Equal(t, "user-1", got.Owner)
	assert.Contains(t, rec.Body.String(), `"addedComment"`)
}

func TestCommentHandler_StoreThreadNotFound(t *testing.T) {
	svc := &commentUsecaseMock{
		storeFn: func(ctx context.Context, c domain.NewComment) (domain.AddedComment, error) {
			return domain.AddedComment{}, domain.ErrNotFound
		},
	}

	r := commentTestRouter(svc, asUser("user-1"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/threads/missing/comments",
		strings.NewReader(`{"content":"nice"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommentHandler_Delete(t *testing.T) {
	var gotThread, gotComment, gotOwner string
	svc := &commentUsecaseMock{
		deleteFn: func(ctx context.Context, threadID, commentID, owner string) (domain.DeletedComment, error) {
			gotThread, gotComment, gotOwner = threadID, commentID, owner
			return domain.DeletedComment{ID: commentID, DeletedAt: time.Now()}, nil
		},
	}

	r := commentTestRouter(svc, asUser("user-1"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/threads/thread-1/comments/comment-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "thread-1", gotThread)
	assert.Equal(t, "comment-1", gotComment)
	assert.Equal(t, "user-1", gotOwner)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
}

func TestCommentHandler_DeleteForbidden(t *testing.T) {
	svc := &commentUsecaseMock{
		deleteFn: func(ctx context.Context, threadID, commentID, owner string) (domain.DeletedComment, error) {
			return domain.DeletedComment{}, domain.ErrForbidden
		},
	}

	r := commentTestRouter(svc, asUser("user-2"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/threads/thread-1/comments/comment-1", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCommentHandler_Like(t *testing.T) {
	var gotComment string
	svc := &commentUsecaseMock{
		toggleLikeFn: func(ctx context.Context, threadID, commentID, owner string) error {
			gotComment = commentID
			return nil
		},
	}

	r := commentTestRouter(svc, asUser("user-1"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/threads/thread-1/comments/comment-1/likes", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "comment-1", gotComment)
}

func TestCommentHandler_LikeUnauthenticated(t *testing.T) {
	svc := &commentUsecaseMock{
		toggleLikeFn: func(ctx context.Context, threadID, commentID, owner string) error {
			t.Fatal("usecase should not be called without a user")
			return nil
		},
	}

	r := commentTestRouter(svc)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/threads/thread-1/comments/comment-1/likes", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
