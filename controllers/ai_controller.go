package controllers

import (
	"errors"
	"net/http"

	"github.com/Gaganabm30/fitconnect/models"
	"github.com/Gaganabm30/fitconnect/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AIProfileInput struct {
	Age               int     `json:"age" binding:"required,gt=0"`
	Height            float64 `json:"height" binding:"required,gt=0"`
	Weight            float64 `json:"weight" binding:"required,gt=0"`
	Gender            string  `json:"gender" binding:"required,oneof=Male Female Other"`
	FitnessLevel      string  `json:"fitnessLevel" binding:"required,oneof=Beginner Intermediate Advanced"`
	Goal              string  `json:"goal" binding:"required,oneof='Weight Loss' 'Muscle Gain' Endurance Maintenance"`
	DietaryPreference string  `json:"dietaryPreference" binding:"omitempty,oneof=Veg Non-Veg Vegan Pescatarian"`
	DaysPerWeek       int     `json:"daysPerWeek" binding:"omitempty,min=1,max=7"`
}

// UpsertAIProfile creates or updates the coaching profile for the user.
func UpsertAIProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input AIProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	profile, err := services.UpsertAIProfile(userID, &models.AIProfile{
		Age:               input.Age,
		Height:            input.Height,
		Weight:            input.Weight,
		Gender:            input.Gender,
		FitnessLevel:      input.FitnessLevel,
		Goal:              input.Goal,
		DietaryPreference: input.DietaryPreference,
		DaysPerWeek:       input.DaysPerWeek,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func GetAIProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	profile, err := services.GetAIProfile(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetAIRecommendations runs the rule engine over the stored profile. Nothing
// is persisted; only the profile that generates it is.
func GetAIRecommendations(c *gin.Context) {
	userID := c.GetUint("userID")

	profile, err := services.GetAIProfile(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Please create an AI Profile first"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.BuildRecommendation(profile))
}
