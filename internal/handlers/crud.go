package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fullnessapp/fullness-server/internal/database"
)

// RegisterCRUD wires the standard list/get/create/update/delete routes for
// one table-backed resource under the given path. noun appears in not-found
// and deleted messages ("Income source not found").
func RegisterCRUD[T any](r gin.IRouter, path string, q database.Querier, res database.Resource[T], noun string) {
	r.GET(path, listResource(q, res))
	r.GET(path+"/:id", getResource(q, res, noun))
	r.POST(path, createResource(q, res))
	r.PUT(path+"/:id", updateResource(q, res, noun))
	r.DELETE(path+"/:id", deleteResource(q, res, noun))
}

func listResource[T any](q database.Querier, res database.Resource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := res.List(c.Request.Context(), q)
		if err != nil {
			serverError(c, err)
			return
		}
		if items == nil {
			items = []T{}
		}
		c.JSON(http.StatusOK, items)
	}
}

func getResource[T any](q database.Querier, res database.Resource[T], noun string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathInt(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
			return
		}
		item, err := res.Get(c.Request.Context(), q, id)
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": noun + " not found"})
			return
		}
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func createResource[T any](q database.Querier, res database.Resource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item T
		if err := c.ShouldBindJSON(&item); err != nil {
			badRequest(c, "Invalid request body", err)
			return
		}
		created, err := res.Create(c.Request.Context(), q, &item)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateResource[T any](q database.Querier, res database.Resource[T], noun string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathInt(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
			return
		}
		var item T
		if err := c.ShouldBindJSON(&item); err != nil {
			badRequest(c, "Invalid request body", err)
			return
		}
		updated, err := res.Update(c.Request.Context(), q, id, &item)
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": noun + " not found"})
			return
		}
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteResource[T any](q database.Querier, res database.Resource[T], noun string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathInt(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
			return
		}
		// Delete reports success even when nothing matched; see the
		// repository's idempotent-delete contract.
		if err := res.Delete(c.Request.Context(), q, id); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": noun + " deleted"})
	}
}
