package controllers

import (
	"net/http"

	"github.com/jiamdoescs/AnnenBites/config"
	"github.com/jiamdoescs/AnnenBites/pkg/logger"
	"github.com/jiamdoescs/AnnenBites/services"

	"github.com/gin-gonic/gin"
)

var dashboardLog = logger.New("dashboard")

// GetDashboard returns recommendations, the admissible menu, logged-item ids,
// ratings, and daily totals for ?date=YYYY-MM-DD&meal=breakfast|lunch|dinner.
// Both query params are optional.
func GetDashboard(c *gin.Context) {
	userID := c.GetUint("userID")

	svc := services.NewDashboardService(config.DB, dashboardLog)
	view, err := svc.View(userID, c.Query("date"), c.Query("meal"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}
