package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/techreads/backend/internal/domain/model"
	"github.com/techreads/backend/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentRole extracts the authenticated user role from context.
func CurrentRole(c *gin.Context) model.Role {
	val, ok := c.Get(middleware.UserRoleContextKey)
	if !ok {
		return model.RoleUser
	}
	role, _ := val.(model.Role)
	return role
}

// IsAdmin reports whether the caller holds the operator role.
func IsAdmin(c *gin.Context) bool {
	return CurrentRole(c) == model.RoleAdmin
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
