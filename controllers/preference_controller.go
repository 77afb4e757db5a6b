package controllers

import (
	"net/http"

	"github.com/jiamdoescs/AnnenBites/config"
	"github.com/jiamdoescs/AnnenBites/services"

	"github.com/gin-gonic/gin"
)

// GetPreferences returns the user's saved preferences together with their own
// feedback posts (most-liked first), matching what the preferences page shows.
// prefs is null when the user has never saved anything.
func GetPreferences(c *gin.Context) {
	userID := c.GetUint("userID")

	prefSvc := services.NewPreferenceService(config.DB)
	prefs, err := prefSvc.Get(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	fbSvc := services.NewFeedbackService(config.DB)
	userFeedback, err := fbSvc.ForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"preferences":   prefs,
		"user_feedback": userFeedback,
	})
}

func SavePreferences(c *gin.Context) {
	var input services.PreferencesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	prefSvc := services.NewPreferenceService(config.DB)
	prefs, err := prefSvc.Save(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, prefs)
}
