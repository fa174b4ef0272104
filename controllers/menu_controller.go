package controllers

import (
	"strconv"

	"github.com/anantkataria/Anant-Restaurant-API/pkg/resp"
	"github.com/anantkataria/Anant-Restaurant-API/repository"
	"github.com/anantkataria/Anant-Restaurant-API/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu-items?category=&search=&ordering=&page=&limit=
func (h *MenuController) ListItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := h.Svc.ListItems(repository.MenuItemQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

// GET /menu-items/:id
func (h *MenuController) GetItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := h.Svc.GetItem(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /menu-items
func (h *MenuController) CreateItem(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.CreateItem(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT/PATCH /menu-items/:id
func (h *MenuController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.UpdateItem(uint(id), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu-items/:id
func (h *MenuController) DeleteItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.DeleteItem(uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /category-list
func (h *MenuController) ListCategories(c *gin.Context) {
	cats, err := h.Svc.ListCategories()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// POST /category-list
func (h *MenuController) CreateCategory(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, cat)
}
