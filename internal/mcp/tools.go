// ABOUTME: MCP tool implementations for drink, activity, and BAC operations.
// ABOUTME: Exposes logging, session, and estimation tools over the protocol.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/tipsy/internal/alcohol"
	"github.com/harperreed/tipsy/internal/models"
	"github.com/harperreed/tipsy/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_drink
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_drink",
		Description: "Log a consumed drink (beer, wine, cocktail, shot, champagne, soft, other)",
	}, s.handleLogDrink)

	// list_drinks
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_drinks",
		Description: "List recent drinks, optionally filtered by user",
	}, s.handleListDrinks)

	// delete_drink
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_drink",
		Description: "Delete a drink by ID or ID prefix",
	}, s.handleDeleteDrink)

	// log_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_activity",
		Description: "Log a step-counter activity sample (walking and dancing steps)",
	}, s.handleLogActivity)

	// set_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_profile",
		Description: "Set the body profile used for personalized BAC estimation",
	}, s.handleSetProfile)

	// get_status
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_status",
		Description: "Get current remaining units, estimated BAC, and time to sober",
	}, s.handleGetStatus)

	// get_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_session",
		Description: "Get the current drinking session with pace classification",
	}, s.handleGetSession)

	// group_round
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "group_round",
		Description: "Get group session statistics for a set of member ids",
	}, s.handleGroupRound)
}

// Tool input/output types

type logDrinkInput struct {
	Category   string  `json:"category" jsonschema:"Drink category (beer, wine, cocktail, shot, champagne, soft, other)"`
	VolumeCl   float64 `json:"volume_cl,omitempty" jsonschema:"Serving volume in centiliters, defaults to the category serving"`
	Strength   float64 `json:"strength_percent,omitempty" jsonschema:"Alcohol by volume percentage, defaults to the category serving"`
	ConsumedAt string  `json:"consumed_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
	Notes      string  `json:"notes,omitempty" jsonschema:"Optional notes"`
	UserID     string  `json:"user_id,omitempty" jsonschema:"Subject id, defaults to the configured user"`
}

type drinkOutput struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Units    float64 `json:"units"`
	Message  string  `json:"message"`
}

type listDrinksInput struct {
	UserID string `json:"user_id,omitempty" jsonschema:"Filter by subject id"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type deleteDrinkInput struct {
	ID string `json:"id" jsonschema:"Drink ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type logActivityInput struct {
	Walking    float64 `json:"walking_steps" jsonschema:"Walking steps in the sampling interval"`
	Dancing    float64 `json:"dancing_steps,omitempty" jsonschema:"Dancing steps in the sampling interval"`
	RecordedAt string  `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
}

type setProfileInput struct {
	Age           int     `json:"age,omitempty" jsonschema:"Age in years"`
	Gender        string  `json:"gender,omitempty" jsonschema:"male or female"`
	HeightCm      float64 `json:"height_cm,omitempty" jsonschema:"Height in centimeters"`
	WeightKg      float64 `json:"weight_kg,omitempty" jsonschema:"Weight in kilograms"`
	ActivityLevel string  `json:"activity_level,omitempty" jsonschema:"sedentary, light, moderate, active, or very_active"`
	UserID        string  `json:"user_id,omitempty" jsonschema:"Subject id, defaults to the configured user"`
}

type statusInput struct {
	UserID string `json:"user_id,omitempty" jsonschema:"Subject id, defaults to the configured user"`
}

type statusOutput struct {
	RemainingUnits   float64 `json:"remaining_units"`
	BloodAlcohol     float64 `json:"blood_alcohol_g_per_l"`
	BreathAlcohol    float64 `json:"breath_alcohol_mg_per_l"`
	TimeToSoberHours float64 `json:"time_to_sober_hours"`
	Pattern          string  `json:"pattern"`
	SpeedFactor      float64 `json:"speed_factor"`
	SessionDrinks    int     `json:"session_drinks"`
}

type sessionOutput struct {
	Drinks            []*models.DrinkEvent `json:"drinks"`
	TotalUnits        float64              `json:"total_units"`
	Pattern           string               `json:"pattern"`
	AverageGapMinutes float64              `json:"average_gap_minutes"`
}

type groupRoundInput struct {
	Members []string `json:"members" jsonschema:"Member ids to aggregate"`
}

// Tool handlers

func (s *Server) handleLogDrink(ctx context.Context, req *mcp.CallToolRequest, input logDrinkInput) (*mcp.CallToolResult, drinkOutput, error) {
	if !models.IsValidCategory(input.Category) {
		return nil, drinkOutput{}, fmt.Errorf("unknown drink category: %s", input.Category)
	}
	category := models.Category(input.Category)

	volume, strength := input.VolumeCl, input.Strength
	if volume == 0 && strength == 0 {
		serving := models.DefaultServings[category]
		volume, strength = serving.VolumeCl, serving.StrengthPercent
	}

	userID := input.UserID
	if userID == "" {
		userID = s.defaultUser
	}

	d := models.NewDrink(userID, category, volume, strength)
	if input.ConsumedAt != "" {
		t, err := time.Parse(time.RFC3339, input.ConsumedAt)
		if err != nil {
			t, err = time.Parse("2006-01-02 15:04", input.ConsumedAt)
		}
		if err == nil {
			d.WithConsumedAt(t)
		}
	}
	if input.Notes != "" {
		d.WithNotes(input.Notes)
	}

	if err := s.repo.CreateDrink(d); err != nil {
		return nil, drinkOutput{}, fmt.Errorf("failed to create drink: %w", err)
	}

	return nil, drinkOutput{
		ID:       d.ID.String()[:8],
		Category: input.Category,
		Units:    d.Units,
		Message:  fmt.Sprintf("Logged %s: %.2f units (ID: %s)", input.Category, d.Units, d.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListDrinks(ctx context.Context, req *mcp.CallToolRequest, input listDrinksInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var userID *string
	if input.UserID != "" {
		userID = &input.UserID
	}

	drinks, err := s.repo.ListDrinks(userID, false, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list drinks: %w", err)
	}
	if len(drinks) == 0 {
		return nil, map[string]interface{}{"message": "No drinks found."}, nil
	}
	return nil, drinks, nil
}

func (s *Server) handleDeleteDrink(ctx context.Context, req *mcp.CallToolRequest, input deleteDrinkInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteDrink(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete drink: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted drink: %s", input.ID),
	}, nil
}

func (s *Server) handleLogActivity(ctx context.Context, req *mcp.CallToolRequest, input logActivityInput) (*mcp.CallToolResult, simpleOutput, error) {
	a := models.NewActivitySample(input.Walking, input.Dancing)
	if input.RecordedAt != "" {
		if t, err := time.Parse(time.RFC3339, input.RecordedAt); err == nil {
			a.WithRecordedAt(t)
		}
	}

	if err := s.repo.CreateActivitySample(a); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to create activity sample: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged activity: %.0f steps", a.Steps.Total),
	}, nil
}

func (s *Server) handleSetProfile(ctx context.Context, req *mcp.CallToolRequest, input setProfileInput) (*mcp.CallToolResult, simpleOutput, error) {
	p := &models.BodyProfile{}
	if input.Age > 0 {
		p.Age = &input.Age
	}
	if input.Gender != "" {
		if !models.IsValidGender(input.Gender) {
			return nil, simpleOutput{}, fmt.Errorf("unknown gender: %s", input.Gender)
		}
		g := models.Gender(input.Gender)
		p.Gender = &g
	}
	if input.HeightCm > 0 {
		p.HeightCm = &input.HeightCm
	}
	if input.WeightKg > 0 {
		p.WeightKg = &input.WeightKg
	}
	if input.ActivityLevel != "" {
		if !models.IsValidActivityLevel(input.ActivityLevel) {
			return nil, simpleOutput{}, fmt.Errorf("unknown activity level: %s", input.ActivityLevel)
		}
		l := models.ActivityLevel(input.ActivityLevel)
		p.ActivityLevel = &l
	}

	userID := input.UserID
	if userID == "" {
		userID = s.defaultUser
	}

	if err := s.repo.SaveProfile(userID, p); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save profile: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Saved profile for %s", userID),
	}, nil
}

func (s *Server) handleGetStatus(ctx context.Context, req *mcp.CallToolRequest, input statusInput) (*mcp.CallToolResult, statusOutput, error) {
	userID := input.UserID
	if userID == "" {
		userID = s.defaultUser
	}

	status, err := s.currentStatus(userID, time.Now())
	if err != nil {
		return nil, statusOutput{}, err
	}
	return nil, status, nil
}

func (s *Server) handleGetSession(ctx context.Context, req *mcp.CallToolRequest, input statusInput) (*mcp.CallToolResult, sessionOutput, error) {
	userID := input.UserID
	if userID == "" {
		userID = s.defaultUser
	}

	drinks, err := s.repo.ListDrinks(nil, false, 0)
	if err != nil {
		return nil, sessionOutput{}, fmt.Errorf("failed to list drinks: %w", err)
	}
	samples, err := s.repo.ListActivitySamples(nil, 0)
	if err != nil {
		return nil, sessionOutput{}, fmt.Errorf("failed to list activity samples: %w", err)
	}

	own := session.DrinksWithActivity(drinks, samples, userID)
	pace := alcohol.AnalyzePace(own)

	var units float64
	for _, d := range own {
		units += d.Units
	}

	return nil, sessionOutput{
		Drinks:            own,
		TotalUnits:        models.Round2(units),
		Pattern:           string(pace.Pattern),
		AverageGapMinutes: pace.AverageGapMinutes,
	}, nil
}

func (s *Server) handleGroupRound(ctx context.Context, req *mcp.CallToolRequest, input groupRoundInput) (*mcp.CallToolResult, any, error) {
	drinks, err := s.repo.ListDrinks(nil, false, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list drinks: %w", err)
	}
	return nil, session.GroupSessionStats(drinks, input.Members), nil
}

// currentStatus assembles a status snapshot for a user at a point in time.
func (s *Server) currentStatus(userID string, asOf time.Time) (statusOutput, error) {
	drinks, err := s.repo.ListDrinks(nil, false, 0)
	if err != nil {
		return statusOutput{}, fmt.Errorf("failed to list drinks: %w", err)
	}
	samples, err := s.repo.ListActivitySamples(nil, 0)
	if err != nil {
		return statusOutput{}, fmt.Errorf("failed to list activity samples: %w", err)
	}
	profile, err := s.repo.GetProfile(userID)
	if err != nil {
		return statusOutput{}, fmt.Errorf("failed to get profile: %w", err)
	}

	own := session.DrinksWithActivity(drinks, samples, userID)
	pace := alcohol.AnalyzePace(own)
	remaining := alcohol.RemainingUnits(own, asOf)
	est := alcohol.EstimateAdvanced(remaining, profile)

	blood := models.Round2(est.BloodAlcohol * pace.SpeedFactor)
	return statusOutput{
		RemainingUnits:   remaining,
		BloodAlcohol:     blood,
		BreathAlcohol:    models.Round2(blood * 0.5),
		TimeToSoberHours: est.TimeToSoberHours,
		Pattern:          string(pace.Pattern),
		SpeedFactor:      pace.SpeedFactor,
		SessionDrinks:    len(own),
	}, nil
}
