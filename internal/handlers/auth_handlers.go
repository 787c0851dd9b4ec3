package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fullnessapp/fullness-server/internal/auth"
	"github.com/fullnessapp/fullness-server/internal/database"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	RoleID   int    `json:"role_id"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account. Duplicate emails are a 409; the response
// carries the created id, name and email and never the password or its hash.
func Register(q database.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request body", err)
			return
		}
		if req.RoleID == 0 {
			req.RoleID = auth.RoleMember
		}

		user, err := database.RegisterUser(c.Request.Context(), q, database.NewUser{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			RoleID:   req.RoleID,
		})
		if errors.Is(err, database.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
			return
		}
		if err != nil {
			serverError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		}})
	}
}

// Login verifies credentials and issues a signed token embedding the user's
// id and role id. Unknown email and wrong password answer identically.
func Login(q database.Querier, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request body", err)
			return
		}

		user, err := database.AuthenticateUser(c.Request.Context(), q, req.Email, req.Password)
		if errors.Is(err, database.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		if err != nil {
			serverError(c, err)
			return
		}

		token, err := auth.IssueToken(secret, user.ID, user.RoleID)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
