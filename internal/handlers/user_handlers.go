package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fullnessapp/fullness-server/internal/auth"
	"github.com/fullnessapp/fullness-server/internal/database"
	"github.com/fullnessapp/fullness-server/models"
)

// userRequest is the body of POST/PUT /users. Unlike the generic resources,
// users bind a dedicated request type because the password must be hashed
// and must never round-trip into a response.
type userRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	RoleID   int    `json:"role_id"`
}

func ListUsers(q database.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := database.ListUsers(c.Request.Context(), q)
		if err != nil {
			serverError(c, err)
			return
		}
		if users == nil {
			users = []models.User{}
		}
		c.JSON(http.StatusOK, users)
	}
}

func GetUser(q database.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathInt(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
			return
		}
		user, err := database.GetUser(c.Request.Context(), q, id)
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func CreateUser(q database.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req userRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request body", err)
			return
		}
		user, err := database.CreateUser(c.Request.Context(), q, newUserFromRequest(req))
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

func UpdateUser(q database.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathInt(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
			return
		}
		var req userRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request body", err)
			return
		}
		user, err := database.UpdateUser(c.Request.Context(), q, id, newUserFromRequest(req))
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func DeleteUser(q database.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathInt(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
			return
		}
		if err := database.DeleteUser(c.Request.Context(), q, id); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}

func newUserFromRequest(req userRequest) database.NewUser {
	if req.RoleID == 0 {
		req.RoleID = auth.RoleMember
	}
	return database.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	}
}
