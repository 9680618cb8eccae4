package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gaganabm30/fitconnect/config"
	"github.com/Gaganabm30/fitconnect/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGoalRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Goal{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", uint(1)) })
	r.PUT("/api/goals/:id", UpdateGoal)
	return r
}

func TestUpdateGoalAcceptsZeroProgress(t *testing.T) {
	r := setupGoalRouter(t)

	goal := models.Goal{UserID: 1, Type: "Weight", TargetValue: 70, CurrentValue: 5, Status: models.GoalInProgress}
	if err := config.DB.Create(&goal).Error; err != nil {
		t.Fatalf("seed goal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/api/goals/%d", goal.ID),
		strings.NewReader(`{"currentValue":0}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("resetting progress to 0 must succeed, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Goal
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if updated.CurrentValue != 0 {
		t.Errorf("expected currentValue 0, got %f", updated.CurrentValue)
	}
	if updated.Status != models.GoalInProgress {
		t.Errorf("expected status unchanged, got %s", updated.Status)
	}
}

func TestUpdateGoalRejectsMissingProgress(t *testing.T) {
	r := setupGoalRouter(t)

	goal := models.Goal{UserID: 1, Type: "Steps", TargetValue: 10000, Status: models.GoalInProgress}
	if err := config.DB.Create(&goal).Error; err != nil {
		t.Fatalf("seed goal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/api/goals/%d", goal.ID),
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("missing currentValue must be rejected, got %d", w.Code)
	}
}
