package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/Gaganabm30/fitconnect/config"
	"github.com/Gaganabm30/fitconnect/models"
	"github.com/Gaganabm30/fitconnect/utils"

	"gorm.io/gorm"
)

const activityFeedCap = 50

var (
	ErrAlreadyInTeam = errors.New("user already in a team")
	ErrNotInTeam     = errors.New("user is not in a team")
	ErrTeamNotFound  = errors.New("team not found")
)

// TeamForUser resolves membership via the indexed team_members table instead
// of scanning member arrays.
func TeamForUser(userID uint) (*models.Team, error) {
	var membership models.TeamMember
	err := config.DB.Where("user_id = ?", userID).First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var team models.Team
	if err := config.DB.
		Preload("Members").
		Preload("Feed", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Chat", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&team, membership.TeamID).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func CreateTeam(user *models.User, name, description string) (*models.Team, error) {
	existing, err := TeamForUser(user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyInTeam
	}

	// Retry on invite-code collisions; the unique index is the backstop.
	var team models.Team
	for attempt := 0; attempt < 5; attempt++ {
		team = models.Team{
			Name:        name,
			Description: description,
			AdminID:     user.ID,
			InviteCode:  utils.GenerateInviteCode(6),
			Members: []models.TeamMember{
				{UserID: user.ID, UserName: user.Name},
			},
			Feed: []models.TeamActivity{
				{UserID: user.ID, UserName: user.Name, Message: "created the team", Type: models.FeedJoin},
			},
		}
		if err = config.DB.Create(&team).Error; err == nil {
			return &team, nil
		}
	}
	return nil, fmt.Errorf("failed to create team: %w", err)
}

func JoinTeam(user *models.User, inviteCode string) (*models.Team, error) {
	existing, err := TeamForUser(user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyInTeam
	}

	var team models.Team
	err = config.DB.Where("invite_code = ?", inviteCode).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := config.DB.Create(&models.TeamMember{
		TeamID:   team.ID,
		UserID:   user.ID,
		UserName: user.Name,
	}).Error; err != nil {
		return nil, err
	}

	AppendTeamActivity(team.ID, user.ID, user.Name, "joined the team", models.FeedJoin)

	return TeamForUser(user.ID)
}

// LeaveTeam removes the user. An empty team is deleted outright; when the
// admin leaves, the first remaining member becomes admin.
func LeaveTeam(user *models.User) (deleted bool, err error) {
	team, err := TeamForUser(user.ID)
	if err != nil {
		return false, err
	}
	if team == nil {
		return false, ErrNotInTeam
	}

	// Hard delete: a soft-deleted row would keep holding the unique index
	// on user_id and lock the user out of ever joining another team.
	if err := config.DB.Unscoped().
		Where("team_id = ? AND user_id = ?", team.ID, user.ID).
		Delete(&models.TeamMember{}).Error; err != nil {
		return false, err
	}

	var remaining []models.TeamMember
	if err := config.DB.
		Where("team_id = ?", team.ID).
		Order("created_at ASC").
		Find(&remaining).Error; err != nil {
		return false, err
	}

	if len(remaining) == 0 {
		if err := config.DB.Select("Members", "Feed", "Chat").Delete(team).Error; err != nil {
			return false, err
		}
		return true, nil
	}

	if team.AdminID == user.ID {
		team.AdminID = remaining[0].UserID
		if err := config.DB.Save(team).Error; err != nil {
			return false, err
		}
	}

	AppendTeamActivity(team.ID, user.ID, user.Name, "left the team", models.FeedJoin)
	return false, nil
}

// AppendTeamActivity prepends a feed entry and trims the feed to the newest
// 50. Best-effort: feed loss is cosmetic, so failures only log.
func AppendTeamActivity(teamID, userID uint, userName, message, entryType string) {
	entry := models.TeamActivity{
		TeamID:   teamID,
		UserID:   userID,
		UserName: userName,
		Message:  message,
		Type:     entryType,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		log.Printf("failed to append team activity: %v", err)
		return
	}

	// Drop everything older than the newest 50 entries. The row ID is the
	// cutoff rather than created_at, which can tie across entries.
	var cutoff models.TeamActivity
	err := config.DB.
		Where("team_id = ?", teamID).
		Order("id DESC").
		Offset(activityFeedCap - 1).
		First(&cutoff).Error
	if err == nil {
		config.DB.
			Where("team_id = ? AND id < ?", teamID, cutoff.ID).
			Delete(&models.TeamActivity{})
	}
}

func PostChatMessage(user *models.User, message string) (*models.TeamChatMessage, error) {
	team, err := TeamForUser(user.ID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrNotInTeam
	}

	msg := models.TeamChatMessage{
		TeamID:   team.ID,
		UserID:   user.ID,
		UserName: user.Name,
		Message:  message,
	}
	if err := config.DB.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// ActiveChallenges lists a team's challenges still in play.
func ActiveChallenges(teamID uint) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := config.DB.
		Preload("Contributors").
		Where("team_id = ? AND status = ?", teamID, models.ChallengeActive).
		Find(&challenges).Error
	return challenges, err
}
