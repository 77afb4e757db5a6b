package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jiamdoescs/AnnenBites/config"
	"github.com/jiamdoescs/AnnenBites/services"

	"github.com/gin-gonic/gin"
)

// ListFeedback shows the feedback wall plus which posts the viewer liked.
func ListFeedback(c *gin.Context) {
	userID := c.GetUint("userID")

	svc := services.NewFeedbackService(config.DB)
	posts, liked, err := svc.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	likedIDs := make([]uint, 0, len(liked))
	for id := range liked {
		likedIDs = append(likedIDs, id)
	}

	c.JSON(http.StatusOK, gin.H{"feedback": posts, "liked_ids": likedIDs})
}

type PostFeedbackInput struct {
	Text string `json:"text" binding:"required"`
}

func PostFeedback(c *gin.Context) {
	var input PostFeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	svc := services.NewFeedbackService(config.DB)
	post, err := svc.Post(userID, input.Text)
	if err != nil {
		if errors.Is(err, services.ErrFeedbackText) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ToggleFeedbackLike likes a post the viewer hasn't liked, unlikes otherwise.
func ToggleFeedbackLike(c *gin.Context) {
	feedbackID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feedback id"})
		return
	}

	userID := c.GetUint("userID")
	svc := services.NewFeedbackService(config.DB)
	liked, err := svc.ToggleLike(userID, uint(feedbackID))
	if err != nil {
		if errors.Is(err, services.ErrFeedbackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
