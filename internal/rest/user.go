package rest

import (
	"net/http"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/request"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

// Register will create a new user account
func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterUser
	if err := c.ShouldBindJSON(&req); err != nil {
		failResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if ok, err := isRequestValid(&req); !ok {
		failResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	added, err := h.Service.Register(c.Request.Context(), req.Username, req.Password, req.Fullname)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"addedUser": added},
	})
}

// Login verifies credentials and issues an access/refresh token pair
func (h *UserHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		failResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if ok, err := isRequestValid(&req); !ok {
		failResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	pair, err := h.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   pair,
	})
}

// Refresh exchanges a valid refresh token for a new access token
func (h *UserHandler) Refresh(c *gin.Context) {
	var req request.RefreshToken
	if err := c.ShouldBindJSON(&req); err != nil {
		failResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if ok, err := isRequestValid(&req); !ok {
		failResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	accessToken, err := h.Service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"accessToken": accessToken},
	})
}

// Logout revokes the refresh token so it can no longer be exchanged
func (h *UserHandler) Logout(c *gin.Context) {
	var req request.RefreshToken
	if err := c.ShouldBindJSON(&req); err != nil {
		failResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if ok, err := isRequestValid(&req); !ok {
		failResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Service.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
