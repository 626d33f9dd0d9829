package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct{ Svc *services.FoodService }

func NewFoodController(s *services.FoodService) *FoodController { return &FoodController{Svc: s} }

// GET /foods?area=&page=&limit=
func (h *FoodController) List(c *gin.Context) {
	in := services.FoodListIn{
		Area:  pickArea(c),
		Page:  intQuery(c, "page"),
		Limit: intQuery(c, "limit"),
	}
	out, err := h.Svc.List(c.Request.Context(), &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /foods/search?q=&cuisine=&area=&priceMin=&priceMax=&page=&limit=
func (h *FoodController) Search(c *gin.Context) {
	in := services.FoodSearchIn{
		Text:     c.Query("q"),
		Cuisine:  c.Query("cuisine"),
		Area:     pickArea(c),
		PriceMin: moneyQuery(c, "priceMin"),
		PriceMax: moneyQuery(c, "priceMax"),
		Page:     intQuery(c, "page"),
		Limit:    intQuery(c, "limit"),
	}
	out, err := h.Svc.Search(c.Request.Context(), &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /foods/:id
func (h *FoodController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid food id")
		return
	}
	food, err := h.Svc.Get(c.Request.Context(), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, food)
}

// pickArea accepts both ?area= and ?areaName=.
func pickArea(c *gin.Context) string {
	if v := c.Query("area"); v != "" {
		return v
	}
	return c.Query("areaName")
}

func intQuery(c *gin.Context, key string) int {
	v, _ := strconv.Atoi(c.Query(key))
	return v
}

func moneyQuery(c *gin.Context, key string) *int64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func floatQuery(c *gin.Context, key string) float64 {
	v, _ := strconv.ParseFloat(c.Query(key), 64)
	return v
}
