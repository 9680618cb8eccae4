package controllers

import (
	"errors"
	"net/http"

	"github.com/Gaganabm30/fitconnect/services"

	"github.com/gin-gonic/gin"
)

// TeamController carries the hub so chat/feed mutations can be streamed to
// connected members.
type TeamController struct {
	Hub *services.TeamHub
}

func NewTeamController(hub *services.TeamHub) *TeamController {
	return &TeamController{Hub: hub}
}

type CreateTeamInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (tc *TeamController) CreateTeam(c *gin.Context) {
	userID := c.GetUint("userID")

	var input CreateTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := services.FindUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	team, err := services.CreateTeam(user, input.Name, input.Description)
	if errors.Is(err, services.ErrAlreadyInTeam) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already in a team"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, team)
}

type JoinTeamInput struct {
	InviteCode string `json:"inviteCode" binding:"required"`
}

func (tc *TeamController) JoinTeam(c *gin.Context) {
	userID := c.GetUint("userID")

	var input JoinTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := services.FindUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	team, err := services.JoinTeam(user, input.InviteCode)
	switch {
	case errors.Is(err, services.ErrAlreadyInTeam):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already in this team"})
	case errors.Is(err, services.ErrTeamNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	default:
		tc.Hub.Broadcast(team.ID, gin.H{"kind": "team.member_joined", "name": user.Name})
		c.JSON(http.StatusOK, team)
	}
}

func (tc *TeamController) GetMyTeam(c *gin.Context) {
	userID := c.GetUint("userID")

	team, err := services.TeamForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if team == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	challenges, err := services.ActiveChallenges(team.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": team, "challenges": challenges})
}

func (tc *TeamController) LeaveTeam(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := services.FindUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	deleted, err := services.LeaveTeam(user)
	if errors.Is(err, services.ErrNotInTeam) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if deleted {
		c.JSON(http.StatusOK, gin.H{"message": "Team deleted as last member left"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Left team successfully"})
}

type ChatInput struct {
	Message string `json:"message" binding:"required"`
}

func (tc *TeamController) SendMessage(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := services.FindUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	msg, err := services.PostChatMessage(user, input.Message)
	if errors.Is(err, services.ErrNotInTeam) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	tc.Hub.Broadcast(msg.TeamID, gin.H{"kind": "team.chat", "message": msg})
	c.JSON(http.StatusOK, msg)
}

func (tc *TeamController) CreateChallenge(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.ChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := services.FindUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	challenge, err := services.CreateChallenge(user, input)
	switch {
	case errors.Is(err, services.ErrTeamNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
	case errors.Is(err, services.ErrNotTeamMember):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	default:
		tc.Hub.Broadcast(challenge.TeamID, gin.H{"kind": "challenge.created", "challenge": challenge})
		c.JSON(http.StatusCreated, challenge)
	}
}
