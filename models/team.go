package models

import (
	"gorm.io/gorm"
)

// Activity feed entry types.
const (
	FeedJoin               = "JOIN"
	FeedWorkout            = "WORKOUT"
	FeedChallengeCreated   = "CHALLENGE_CREATED"
	FeedChallengeCompleted = "CHALLENGE_COMPLETED"
)

type Team struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	AdminID     uint   `gorm:"not null" json:"admin_id"`
	InviteCode  string `gorm:"uniqueIndex;not null" json:"inviteCode"`
	TotalScore  int    `json:"totalScore"`

	Members []TeamMember      `json:"members"`
	Feed    []TeamActivity    `json:"activityFeed"`
	Chat    []TeamChatMessage `json:"chat"`
}

// TeamMember is the reverse-reference membership row; the unique index on
// user_id is what enforces "one team per user".
type TeamMember struct {
	gorm.Model
	TeamID   uint   `gorm:"index;not null" json:"team_id"`
	UserID   uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	UserName string `json:"name"`
}

type TeamActivity struct {
	gorm.Model
	TeamID   uint   `gorm:"index;not null" json:"-"`
	UserID   uint   `json:"user_id"`
	UserName string `json:"name"`
	Message  string `json:"message"`
	Type     string `json:"type"`
}

type TeamChatMessage struct {
	gorm.Model
	TeamID   uint   `gorm:"index;not null" json:"-"`
	UserID   uint   `json:"user_id"`
	UserName string `json:"name"`
	Message  string `gorm:"not null" json:"message"`
}
