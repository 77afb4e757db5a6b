package controllers

import (
	"errors"
	"net/http"

	"github.com/jiamdoescs/AnnenBites/config"
	"github.com/jiamdoescs/AnnenBites/services"

	"github.com/gin-gonic/gin"
)

// GetCommunity returns club posts plus the top-rated menu items.
func GetCommunity(c *gin.Context) {
	commSvc := services.NewCommunityService(config.DB)
	posts, err := commSvc.ListPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ratingSvc := services.NewRatingService(config.DB)
	favorites, err := ratingSvc.TopRated(10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "favorites": favorites})
}

func CreateClubPost(c *gin.Context) {
	var input services.ClubPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewCommunityService(config.DB)
	post, err := svc.CreatePost(input)
	if err != nil {
		if errors.Is(err, services.ErrClubPostFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ClubPostsAPI is the public JSON hook the React community widget posts to.
func ClubPostsAPI(c *gin.Context) {
	var input services.ClubPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewCommunityService(config.DB)
	if _, err := svc.CreatePost(input); err != nil {
		if errors.Is(err, services.ErrClubPostFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
