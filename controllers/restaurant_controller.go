package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurants?area=&lat=&lng=
func (h *RestaurantController) List(c *gin.Context) {
	in := services.RestaurantListIn{
		Area: pickArea(c),
		Lat:  floatQuery(c, "lat"),
		Lng:  floatQuery(c, "lng"),
	}
	out, err := h.Svc.List(c.Request.Context(), &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/:id?area=&lat=&lng=
func (h *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	in := services.RestaurantDetailIn{
		ID:   uint(id),
		Area: pickArea(c),
		Lat:  floatQuery(c, "lat"),
		Lng:  floatQuery(c, "lng"),
	}
	out, err := h.Svc.Detail(c.Request.Context(), &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
