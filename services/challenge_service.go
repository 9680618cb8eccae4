package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Gaganabm30/fitconnect/config"
	"github.com/Gaganabm30/fitconnect/models"

	"gorm.io/gorm"
)

var ErrNotTeamMember = errors.New("not authorized to create challenge for this team")

type ChallengeInput struct {
	TeamID      uint      `json:"teamId" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Type        string    `json:"type" binding:"required,oneof=Steps Calories Workouts Minutes"`
	TargetValue int       `json:"targetValue" binding:"required,gt=0"`
	EndDate     time.Time `json:"endDate" binding:"required"`
}

func CreateChallenge(user *models.User, input ChallengeInput) (*models.Challenge, error) {
	var team models.Team
	err := config.DB.First(&team, input.TeamID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}

	var membership models.TeamMember
	if err := config.DB.
		Where("team_id = ? AND user_id = ?", team.ID, user.ID).
		First(&membership).Error; err != nil {
		return nil, ErrNotTeamMember
	}

	challenge := models.Challenge{
		TeamID:      team.ID,
		Title:       input.Title,
		Type:        input.Type,
		TargetValue: input.TargetValue,
		StartDate:   time.Now(),
		EndDate:     input.EndDate,
		Status:      models.ChallengeActive,
	}
	if err := config.DB.Create(&challenge).Error; err != nil {
		return nil, err
	}

	AppendTeamActivity(team.ID, user.ID, user.Name,
		fmt.Sprintf("created a new challenge: %s", input.Title), models.FeedChallengeCreated)

	return &challenge, nil
}

// ChallengeIncrement maps a challenge type to its progress contribution from
// one workout. Steps challenges are fed manually, never by workout logging.
func ChallengeIncrement(challengeType string, workout *models.Workout) int {
	switch challengeType {
	case "Calories":
		return workout.Calories
	case "Minutes":
		return workout.Duration
	case "Workouts":
		return 1
	default:
		return 0
	}
}

// ApplyProgress bumps the challenge and the user's contributor row in memory
// and reports whether this increment completed the challenge. The Completed
// transition is one-way: a completed challenge is never bumped again.
func ApplyProgress(challenge *models.Challenge, userID uint, increment int) (completed bool) {
	if increment <= 0 || challenge.Status != models.ChallengeActive {
		return false
	}

	challenge.CurrentProgress += increment

	found := false
	for i := range challenge.Contributors {
		if challenge.Contributors[i].UserID == userID {
			challenge.Contributors[i].Value += increment
			found = true
			break
		}
	}
	if !found {
		challenge.Contributors = append(challenge.Contributors, models.ChallengeContributor{
			ChallengeID: challenge.ID,
			UserID:      userID,
			Value:       increment,
		})
	}

	if challenge.CurrentProgress >= challenge.TargetValue {
		challenge.Status = models.ChallengeCompleted
		return true
	}
	return false
}
