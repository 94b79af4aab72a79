package services

import (
	"errors"
	"fmt"

	"github.com/Suchith04/Calorie-Catcher/config"
	"github.com/Suchith04/Calorie-Catcher/models"
	"github.com/Suchith04/Calorie-Catcher/utils"

	"gorm.io/gorm"
)

func RegisterUser(name, email, password string) (*models.User, error) {
	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: user already exists", ErrValidation)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:                  name,
		Email:                 email,
		Password:              hashedPassword,
		DailyCalorieTarget:    2000,
		AdjustedCalorieTarget: 2000,
		LastSleepHours:        8,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (string, *models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, ErrUserNotFound
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}
