package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/directory"
)

type UserHandler struct {
	users *directory.Directory
}

func NewUserHandler(users *directory.Directory) *UserHandler {
	return &UserHandler{users: users}
}

// ListUsers handles GET /users with the fixed member table.
func (h *UserHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.users.Members())
}
