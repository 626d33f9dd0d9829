package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type DeliveryController struct{ Svc *services.AreaService }

func NewDeliveryController(s *services.AreaService) *DeliveryController {
	return &DeliveryController{Svc: s}
}

// POST /delivery/check
func (h *DeliveryController) Check(c *gin.Context) {
	var req services.CheckDeliveryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.CheckDelivery(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /delivery/areas
func (h *DeliveryController) ListAreas(c *gin.Context) {
	areas, err := h.Svc.ListAreas(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(areas), "areas": areas})
}

// GET /delivery/areas/:id
func (h *DeliveryController) AreaDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid area id")
		return
	}
	out, err := h.Svc.AreaDetail(c.Request.Context(), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
