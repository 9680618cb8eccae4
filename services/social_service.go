package services

import (
	"errors"

	"github.com/Gaganabm30/fitconnect/config"
	"github.com/Gaganabm30/fitconnect/models"

	"gorm.io/gorm"
)

var (
	ErrAlreadyFriends = errors.New("already friends")
	ErrUserNotFound   = errors.New("user not found")
)

func AddFriend(userID, friendID uint) error {
	var user models.User
	if err := config.DB.Preload("Friends").First(&user, userID).Error; err != nil {
		return err
	}

	var friend models.User
	err := config.DB.First(&friend, friendID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	for _, f := range user.Friends {
		if f.ID == friend.ID {
			return ErrAlreadyFriends
		}
	}

	return config.DB.Model(&user).Association("Friends").Append(&friend)
}

type LeaderboardEntry struct {
	UserID        uint   `json:"user_id"`
	Name          string `json:"name"`
	TotalCalories int    `json:"totalCalories"`
	TotalDuration int    `json:"totalDuration"`
}

// Leaderboard ranks the top 10 users by total calories burned.
func Leaderboard() ([]LeaderboardEntry, error) {
	var rows []LeaderboardEntry
	err := config.DB.
		Table("workouts").
		Select("workouts.user_id, users.name, SUM(workouts.calories) AS total_calories, SUM(workouts.duration) AS total_duration").
		Joins("JOIN users ON users.id = workouts.user_id").
		Where("workouts.deleted_at IS NULL").
		Group("workouts.user_id, users.name").
		Order("total_calories DESC").
		Limit(10).
		Scan(&rows).Error
	return rows, err
}
