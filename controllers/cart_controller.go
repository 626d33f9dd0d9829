package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	view, err := h.Svc.Get(c.Request.Context(), uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view, err := h.Svc.Add(c.Request.Context(), uid, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, view)
}

// PATCH /cart/items
func (h *CartController) UpdateQty(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var body struct {
		FoodID   uint `json:"foodId" binding:"required"`
		Quantity int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view, err := h.Svc.UpdateQty(c.Request.Context(), uid, body.FoodID, body.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart/items/:foodId
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	foodID, err := strconv.ParseUint(c.Param("foodId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid food id")
		return
	}
	view, err := h.Svc.RemoveItem(c.Request.Context(), uid, uint(foodID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	if err := h.Svc.Clear(c.Request.Context(), uid); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
