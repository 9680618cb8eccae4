package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Gaganabm30/fitconnect/services"

	"github.com/gin-gonic/gin"
)

func AddFriend(c *gin.Context) {
	userID := c.GetUint("userID")
	friendID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}

	err = services.AddFriend(userID, uint(friendID))
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, services.ErrAlreadyFriends):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Already friends"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Friend added"})
	}
}

func GetLeaderboard(c *gin.Context) {
	leaderboard, err := services.Leaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, leaderboard)
}
