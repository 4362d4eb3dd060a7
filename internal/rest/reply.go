package rest

import (
	"net/http"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/request"
	"github.com/gin-gonic/gin"
)

type ReplyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *ReplyHandler {
	return &ReplyHandler{
		Service: svc,
	}
}

// Store will add a reply to the comment in the path
func (h *ReplyHandler) Store(c *gin.Context) {
	var req request.Reply
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

	added, err := h.Service.Store(c.Request.Context(), domain.NewReply{
		Content:   req.Content,
		ThreadID:  c.Param("id"),
		CommentID: c.Param("commentId"),
		Owner:     owner,
	})
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"addedReply": added},
	})
}

// Delete will soft delete the reply, owner only
func (h *ReplyHandler) Delete(c *gin.Context) {
	owner, ok := userID(c)
	if !ok {
		failResponse(c, http.StatusUnauthorized, domain.ErrUnauthorized.Error())
		return
	}

	_, err := h.Service.Delete(c.Request.Context(),
		c.Param("id"), c.Param("commentId"), c.Param("replyId"), owner)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
