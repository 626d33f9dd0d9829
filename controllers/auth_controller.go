package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

type registerReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
	Address  string `json:"address"`
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password, req.Name, req.Address)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, user)
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	user, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}
