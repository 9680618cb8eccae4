package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Gaganabm30/fitconnect/config"
	"github.com/Gaganabm30/fitconnect/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTeamDB points the package at a fresh in-memory database, named per
// test so parallel suites never share state.
func setupTeamDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Team{}, &models.TeamMember{}, &models.TeamActivity{},
		&models.TeamChatMessage{}, &models.Challenge{}, &models.ChallengeContributor{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
}

func teamUser(id uint, name string) *models.User {
	return &models.User{Model: gorm.Model{ID: id}, Name: name}
}

func TestLeaveThenRejoin(t *testing.T) {
	setupTeamDB(t)
	asha := teamUser(1, "Asha")
	ravi := teamUser(2, "Ravi")

	team, err := CreateTeam(asha, "Morning Runners", "early birds")
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if _, err := JoinTeam(ravi, team.InviteCode); err != nil {
		t.Fatalf("join team: %v", err)
	}

	if _, err := LeaveTeam(ravi); err != nil {
		t.Fatalf("leave team: %v", err)
	}

	// The dead membership row must not keep holding the user_id unique
	// index, or the user could never join or create a team again.
	rejoined, err := JoinTeam(ravi, team.InviteCode)
	if err != nil {
		t.Fatalf("rejoin after leaving: %v", err)
	}
	if len(rejoined.Members) != 2 {
		t.Errorf("expected 2 members after rejoin, got %d", len(rejoined.Members))
	}

	if _, err := LeaveTeam(ravi); err != nil {
		t.Fatalf("leave again: %v", err)
	}
	if _, err := CreateTeam(ravi, "Night Owls", ""); err != nil {
		t.Fatalf("create own team after leaving: %v", err)
	}
}

func TestLeaveLastMemberDeletesTeam(t *testing.T) {
	setupTeamDB(t)
	asha := teamUser(1, "Asha")

	team, err := CreateTeam(asha, "Solo Squad", "")
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	deleted, err := LeaveTeam(asha)
	if err != nil {
		t.Fatalf("leave team: %v", err)
	}
	if !deleted {
		t.Error("last member leaving must delete the team")
	}

	var gone models.Team
	if err := config.DB.First(&gone, team.ID).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected team row to be gone, got err=%v", err)
	}

	current, err := TeamForUser(asha.ID)
	if err != nil {
		t.Fatalf("team lookup: %v", err)
	}
	if current != nil {
		t.Errorf("user must have no team after it was deleted, got %+v", current)
	}
}

func TestAdminLeaveReassignsToOldestMember(t *testing.T) {
	setupTeamDB(t)
	asha := teamUser(1, "Asha")
	ravi := teamUser(2, "Ravi")
	meera := teamUser(3, "Meera")

	team, err := CreateTeam(asha, "Lifters", "")
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if _, err := JoinTeam(ravi, team.InviteCode); err != nil {
		t.Fatalf("ravi join: %v", err)
	}
	if _, err := JoinTeam(meera, team.InviteCode); err != nil {
		t.Fatalf("meera join: %v", err)
	}

	deleted, err := LeaveTeam(asha)
	if err != nil {
		t.Fatalf("admin leave: %v", err)
	}
	if deleted {
		t.Error("team with remaining members must not be deleted")
	}

	var after models.Team
	if err := config.DB.First(&after, team.ID).Error; err != nil {
		t.Fatalf("reload team: %v", err)
	}
	if after.AdminID != ravi.ID {
		t.Errorf("expected admin reassigned to first remaining member %d, got %d", ravi.ID, after.AdminID)
	}
}

func TestJoinWhileAlreadyInTeam(t *testing.T) {
	setupTeamDB(t)
	asha := teamUser(1, "Asha")
	ravi := teamUser(2, "Ravi")

	if _, err := CreateTeam(asha, "Alpha", ""); err != nil {
		t.Fatalf("create first team: %v", err)
	}
	second, err := CreateTeam(ravi, "Beta", "")
	if err != nil {
		t.Fatalf("create second team: %v", err)
	}

	if _, err := JoinTeam(asha, second.InviteCode); !errors.Is(err, ErrAlreadyInTeam) {
		t.Errorf("expected ErrAlreadyInTeam, got %v", err)
	}
	if _, err := CreateTeam(asha, "Gamma", ""); !errors.Is(err, ErrAlreadyInTeam) {
		t.Errorf("expected ErrAlreadyInTeam on second create, got %v", err)
	}
}

func TestActivityFeedStaysCapped(t *testing.T) {
	setupTeamDB(t)
	asha := teamUser(1, "Asha")

	team, err := CreateTeam(asha, "Streakers", "")
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	// Rapid appends share created_at timestamps; the cap must hold anyway.
	for i := 0; i < 60; i++ {
		AppendTeamActivity(team.ID, asha.ID, asha.Name, fmt.Sprintf("logged workout %d", i), models.FeedWorkout)
	}

	var count int64
	if err := config.DB.Model(&models.TeamActivity{}).
		Where("team_id = ?", team.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count feed: %v", err)
	}
	if count != activityFeedCap {
		t.Errorf("expected feed trimmed to %d entries, got %d", activityFeedCap, count)
	}

	// The survivors must be the newest entries.
	var newest models.TeamActivity
	if err := config.DB.
		Where("team_id = ?", team.ID).
		Order("id DESC").
		First(&newest).Error; err != nil {
		t.Fatalf("load newest entry: %v", err)
	}
	if newest.Message != "logged workout 59" {
		t.Errorf("expected newest entry kept, got %q", newest.Message)
	}
}
