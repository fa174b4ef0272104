package controllers

import (
	"strconv"

	"github.com/anantkataria/Anant-Restaurant-API/pkg/resp"
	"github.com/anantkataria/Anant-Restaurant-API/services"

	"github.com/gin-gonic/gin"
)

// GroupController exposes membership management for one role group per
// registered route; the group name is bound at route registration.
type GroupController struct{ Svc *services.GroupService }

func NewGroupController(s *services.GroupService) *GroupController { return &GroupController{Svc: s} }

// GET /groups/<group>/users
func (h *GroupController) List(group string) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := h.Svc.Members(group)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		resp.OK(c, gin.H{"items": users})
	}
}

// POST /groups/<group>/users
func (h *GroupController) Add(group string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.GroupMemberIn
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		if err := h.Svc.Add(group, req.Username); err != nil {
			writeServiceError(c, err)
			return
		}
		resp.OK(c, gin.H{"message": req.Username + " added to " + group})
	}
}

// DELETE /groups/<group>/users/:id
func (h *GroupController) Remove(group string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))
		if err := h.Svc.Remove(group, uint(id)); err != nil {
			writeServiceError(c, err)
			return
		}
		resp.OK(c, gin.H{"message": "user removed from " + group})
	}
}
