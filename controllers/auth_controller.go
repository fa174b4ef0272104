package controllers

import (
	"github.com/anantkataria/Anant-Restaurant-API/pkg/resp"
	"github.com/anantkataria/Anant-Restaurant-API/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

type registerReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": user.ID, "username": user.Username})
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.Svc.Login(req.Username, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "username": user.Username})
}
