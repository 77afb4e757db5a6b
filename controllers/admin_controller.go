package controllers

import (
	"net/http"
	"time"

	"github.com/jiamdoescs/AnnenBites/config"
	"github.com/jiamdoescs/AnnenBites/pkg/logger"
	"github.com/jiamdoescs/AnnenBites/services"

	"github.com/gin-gonic/gin"
)

var scrapeLog = logger.New("scraper")

// TriggerScrape ingests the HUDS menu for ?date=YYYY-MM-DD (default today),
// replacing any existing items for that date.
func TriggerScrape(c *gin.Context) {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	svc := services.NewScraperService(config.DB, scrapeLog)
	if err := svc.ScrapeDay(c.Request.Context(), day); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "menu ingested", "date": day.Format("2006-01-02")})
}
