package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fullnessapp/fullness-server/internal/database"
	"github.com/fullnessapp/fullness-server/models"
)

// IncomesByMonth lists the user's incomes from the trailing twelve months,
// joined with the user and source names.
func IncomesByMonth(q database.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := pathInt(c, "userId")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		report, err := database.IncomesByMonth(c.Request.Context(), q, userID)
		if err != nil {
			serverError(c, err)
			return
		}
		if report == nil {
			report = []models.IncomeReportRow{}
		}
		c.JSON(http.StatusOK, report)
	}
}

// IncomesByDateRange lists the user's incomes inside an inclusive date
// window taken from the route.
func IncomesByDateRange(q database.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := pathInt(c, "userId")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		start, err := models.ParseDate(c.Param("startDate"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
			return
		}
		end, err := models.ParseDate(c.Param("endDate"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date"})
			return
		}
		report, err := database.IncomesByDateRange(c.Request.Context(), q, userID, start, end)
		if err != nil {
			serverError(c, err)
			return
		}
		if report == nil {
			report = []models.IncomeReportRow{}
		}
		c.JSON(http.StatusOK, report)
	}
}

// CurrentIncome answers the trailing-month income sum; the amount is null
// when the window matched no rows.
func CurrentIncome(q database.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := pathInt(c, "userId")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		total, err := database.CurrentIncomeTotal(c.Request.Context(), q, userID)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, total)
	}
}

// PreviousIncome answers the income sum for the window one to two months
// back.
func PreviousIncome(q database.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := pathInt(c, "userId")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		total, err := database.PreviousIncomeTotal(c.Request.Context(), q, userID)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, total)
	}
}
