package controllers

import (
	"strconv"

	"github.com/anantkataria/Anant-Restaurant-API/middlewares"
	"github.com/anantkataria/Anant-Restaurant-API/pkg/resp"
	"github.com/anantkataria/Anant-Restaurant-API/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	caller := middlewares.CallerFromContext(c)
	if caller == nil {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	orders, err := h.Svc.List(caller)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// POST /orders converts the caller's cart into an order.
func (h *OrderController) Place(c *gin.Context) {
	caller := middlewares.CallerFromContext(c)
	if caller == nil {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	res, err := h.Svc.Place(caller.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, res)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	caller := middlewares.CallerFromContext(c)
	if caller == nil {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := h.Svc.Get(caller, uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT/PATCH /orders/:id
func (h *OrderController) Update(c *gin.Context) {
	caller := middlewares.CallerFromContext(c)
	if caller == nil {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Update(caller, uint(id), &req); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order updated successfully"})
}

// DELETE /orders/:id
func (h *OrderController) Delete(c *gin.Context) {
	caller := middlewares.CallerFromContext(c)
	if caller == nil {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.Delete(caller, uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.NoContent(c)
}
