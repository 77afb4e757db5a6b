package services

import (
	"errors"

	"github.com/jiamdoescs/AnnenBites/config"
	"github.com/jiamdoescs/AnnenBites/models"
	"github.com/jiamdoescs/AnnenBites/utils"
)

var ErrUsernameTaken = errors.New("username already taken")

func RegisterUser(username, password, fullName string) (*models.User, error) {
	var existing models.User
	if err := config.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Password: hashedPassword,
		FullName: fullName,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(username, password string) (string, error) {
	var user models.User
	result := config.DB.Where("username = ?", username).First(&user)
	if result.Error != nil {
		return "", errors.New("invalid username or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid username or password")
	}

	return utils.GenerateJWT(user.ID, user.Username)
}
