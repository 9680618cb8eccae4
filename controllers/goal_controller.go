package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Gaganabm30/fitconnect/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	goals, err := services.ListGoals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func CreateGoal(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	goal, err := services.CreateGoal(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// CurrentValue is a pointer so that an explicit 0 (resetting progress)
// still passes the required check.
type GoalProgressInput struct {
	CurrentValue *float64 `json:"currentValue" binding:"required"`
}

func UpdateGoal(c *gin.Context) {
	userID := c.GetUint("userID")
	goalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid goal id"})
		return
	}

	var input GoalProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	goal, err := services.UpdateGoalProgress(userID, uint(goalID), *input.CurrentValue)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Goal not found"})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authorized"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusOK, goal)
	}
}

func DeleteGoal(c *gin.Context) {
	userID := c.GetUint("userID")
	goalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid goal id"})
		return
	}

	err = services.DeleteGoal(userID, uint(goalID))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Goal not found"})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authorized"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"id": goalID})
	}
}
