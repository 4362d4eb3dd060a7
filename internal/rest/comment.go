package rest

import (
	"net/http"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/request"
	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// Store will add a comment to the thread in the path
func (h *CommentHandler) Store(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		failResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if ok, err := isRequestValid(&req); !ok {
		failResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	owner, ok := userID(c)
	if !ok {
		failResponse(c, http.StatusUnauthorized, domain.ErrUnauthorized.Error())
		return
	}

	added, err := h.Service.Store(c.Request.Context(), domain.NewComment{
		Content:  req.Content,
		ThreadID: c.Param("id"),
		Owner:    owner,
	})
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"addedComment": added},
	})
}

// Delete will soft delete the comment, owner only
func (h *CommentHandler) Delete(c *gin.Context) {
	owner, ok := userID(c)
	if !ok {
		failResponse(c, http.StatusUnauthorized, domain.ErrUnauthorized.Error())
		return
	}

	_, err := h.Service.Delete(c.Request.Context(), c.Param("id"), c.Param("commentId"), owner)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// Like toggles the authenticated user's like on the comment
func (h *CommentHandler) Like(c *gin.Context) {
	owner, ok := userID(c)
	if !ok {
		failResponse(c, http.StatusUnauthorized, domain.ErrUnauthorized.Error())
		return
	}

	err := h.Service.ToggleLike(c.Request.Context(), c.Param("id"), c.Param("commentId"), owner)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
