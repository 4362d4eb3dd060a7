package rest

import (
	"errors"
	"net/http"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/request"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// ContextUserKey is where the auth middleware stores the acting user's id.
const ContextUserKey = "user_id"

// ThreadHandler represent the http handler for threads
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// Store will create a thread owned by the authenticated user
func (h *ThreadHandler) Store(c *gin.Context) {
	var req request.Thread
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

	added, err := h.Service.Store(c.Request.Context(), req.ToDomain(), owner)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"addedThread": added},
	})
}

// GetByID will get the full thread detail with nested comments and replies
func (h *ThreadHandler) GetByID(c *gin.Context) {
	detail, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"thread": detail},
	})
}

func isRequestValid(m any) (bool, error) {
	validate := validator.New()
	if err := validate.Struct(m); err != nil {
		return false, err
	}
	return true, nil
}

func userID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return "", false
	}
	uid, ok := v.(string)
	return uid, ok && uid != ""
}

func failResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "fail", "message": message})
}

func errorResponse(c *gin.Context, err error) {
	failResponse(c, getStatusCode(err), err.Error())
}

// getStatusCode maps a domain error to its HTTP status
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadParamInput), errors.Is(err, domain.ErrTitleTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
