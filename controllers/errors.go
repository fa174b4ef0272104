package controllers

import (
	"errors"

	"github.com/anantkataria/Anant-Restaurant-API/pkg/resp"
	"github.com/anantkataria/Anant-Restaurant-API/services"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps service error kinds onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrDuplicateLine),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidAssignee),
		errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrAlreadyMember),
		errors.Is(err, services.ErrUsernameTaken):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
