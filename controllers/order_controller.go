package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	req.IdempotencyKey = c.GetHeader("Idempotency-Key")
	order, err := h.Svc.CreateFromCart(c.Request.Context(), uid, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders?status=
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	orders, err := h.Svc.ListForUser(c.Request.Context(), uid, c.Query("status"), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(orders), "orders": orders})
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.Svc.DetailForUser(c.Request.Context(), uid, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.Svc.Cancel(c.Request.Context(), uid, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /admin/orders/:id/status
// Body: {"action":"advance"} or {"paymentStatus":"completed"}.
func (h *OrderController) AdminUpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var body struct {
		Action        string `json:"action"`
		PaymentStatus string `json:"paymentStatus"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if body.PaymentStatus != "" {
		ps := entity.PaymentStatus(body.PaymentStatus)
		if !ps.Valid() {
			resp.BadRequest(c, "unknown payment status: "+body.PaymentStatus)
			return
		}
		order, err := h.Svc.MarkPayment(c.Request.Context(), uint(id), ps)
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, order)
		return
	}
	if body.Action != "advance" {
		resp.BadRequest(c, "unknown action: "+body.Action)
		return
	}
	order, err := h.Svc.Advance(c.Request.Context(), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}
