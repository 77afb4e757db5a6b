package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jiamdoescs/AnnenBites/config"
	"github.com/jiamdoescs/AnnenBites/services"

	"github.com/gin-gonic/gin"
)

type LogMealInput struct {
	MenuItemID uint   `json:"menu_item_id" binding:"required"`
	Meal       string `json:"meal"`
	Date       string `json:"date"`
}

// LogMeal records "I ate this". Meal defaults to breakfast, date to today.
func LogMeal(c *gin.Context) {
	var input LogMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Meal == "" {
		input.Meal = "breakfast"
	}
	if input.Date == "" {
		input.Date = time.Now().Format("2006-01-02")
	}

	userID := c.GetUint("userID")
	svc := services.NewIntakeService(config.DB)
	logged, err := svc.Log(userID, input.Date, input.Meal, input.MenuItemID)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, logged)
}

// RemoveMeal deletes one logged meal by id.
func RemoveMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid logged meal id"})
		return
	}

	userID := c.GetUint("userID")
	svc := services.NewIntakeService(config.DB)
	if err := svc.Remove(userID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged meal removed"})
}

// ResetIntake clears everything the user logged for ?date= (default today).
func ResetIntake(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	userID := c.GetUint("userID")
	svc := services.NewIntakeService(config.DB)
	if err := svc.ResetDay(userID, date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "intake reset", "date": date})
}
