package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Gaganabm30/fitconnect/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	meals, err := services.ListMeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func AddMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please add required fields"})
		return
	}

	meal, err := services.AddMeal(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func DeleteMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid meal id"})
		return
	}

	err = services.DeleteMeal(userID, uint(mealID))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found"})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authorized"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"id": mealID})
	}
}

type EstimateInput struct {
	Query string `json:"query" binding:"required"`
}

// EstimateCalories resolves a free-text meal description through the model
// path with the offline table as fallback; either way the call is logged.
func EstimateCalories(c *gin.Context) {
	userID := c.GetUint("userID")

	var input EstimateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "query is required"})
		return
	}

	estimator := services.NewEstimatorService()
	entry, err := estimator.Estimate(userID, input.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GetFoodLogs returns the append-only estimator audit trail, newest first.
func GetFoodLogs(c *gin.Context) {
	userID := c.GetUint("userID")

	logs, err := services.ListFoodLogs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
