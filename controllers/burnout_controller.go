package controllers

import (
	"net/http"

	"github.com/Gaganabm30/fitconnect/services"

	"github.com/gin-gonic/gin"
)

func GetBurnoutStatus(c *gin.Context) {
	userID := c.GetUint("userID")

	metrics, err := services.GetBurnoutStatus(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func EvaluateBurnout(c *gin.Context) {
	userID := c.GetUint("userID")

	metrics, err := services.EvaluateBurnout(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func GetRecoveryRecommendations(c *gin.Context) {
	userID := c.GetUint("userID")

	suggestion, err := services.LatestRecoverySuggestion(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if suggestion == nil {
		c.JSON(http.StatusOK, gin.H{
			"burnoutLevel":     "Low Risk",
			"suggestedActions": []string{"Keep active and listen to your body!"},
		})
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

type FeedbackInput struct {
	FeedbackType string `json:"feedbackType" binding:"required"`
}

// BurnoutFeedback accepts a 'tired'/'good' tag and acknowledges it.
func BurnoutFeedback(c *gin.Context) {
	userID := c.GetUint("userID")

	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	services.RecordBurnoutFeedback(userID, input.FeedbackType)
	c.JSON(http.StatusOK, gin.H{"message": "Feedback received"})
}
