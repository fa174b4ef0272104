package controllers

import (
	"github.com/anantkataria/Anant-Restaurant-API/pkg/resp"
	"github.com/anantkataria/Anant-Restaurant-API/services"
	"github.com/anantkataria/Anant-Restaurant-API/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart/menu-items
func (h *CartController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	lines, err := h.Svc.List(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": lines})
}

// POST /cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(uid, &req); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item added to cart"})
}

// DELETE /cart/menu-items
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if err := h.Svc.Clear(uid); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.NoContent(c)
}
