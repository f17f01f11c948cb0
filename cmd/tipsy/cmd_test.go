// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Tests parseTime, truncate, padRight, and command flags.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/tipsy/internal/models"
	"github.com/harperreed/tipsy/internal/storage"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "date and time with space",
			input:   "2026-08-30 21:30",
			wantErr: false,
		},
		{
			name:    "date and time with T",
			input:   "2026-08-30T21:30",
			wantErr: false,
		},
		{
			name:    "date only",
			input:   "2026-08-30",
			wantErr: false,
		},
		{
			name:    "RFC3339",
			input:   "2026-08-30T21:30:00Z",
			wantErr: false,
		},
		{
			name:    "RFC3339 with offset",
			input:   "2026-08-30T21:30:00+05:00",
			wantErr: false,
		},
		{
			name:    "invalid format",
			input:   "30-08-2026",
			wantErr: true,
		},
		{
			name:    "invalid random string",
			input:   "not a date",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseTime(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTime(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("parseTime(%q) unexpected error: %v", tt.input, err)
				return
			}

			if result.IsZero() {
				t.Errorf("parseTime(%q) returned zero time", tt.input)
			}
		})
	}
}

func TestParseTimeValues(t *testing.T) {
	// Test specific date value parsing
	result, err := parseTime("2026-06-15")
	if err != nil {
		t.Fatalf("parseTime failed: %v", err)
	}

	if result.Year() != 2026 || result.Month() != time.June || result.Day() != 15 {
		t.Errorf("parseTime returned wrong date: got %v", result)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "short string no truncation",
			input:  "hello",
			maxLen: 10,
			want:   "hello",
		},
		{
			name:   "exact length",
			input:  "hello",
			maxLen: 5,
			want:   "hello",
		},
		{
			name:   "needs truncation",
			input:  "hello world this is a long string",
			maxLen: 10,
			want:   "hello w...",
		},
		{
			name:   "empty string",
			input:  "",
			maxLen: 10,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{
			name:   "needs padding",
			input:  "hi",
			length: 5,
			want:   "hi   ",
		},
		{
			name:   "exact length",
			input:  "hello",
			length: 5,
			want:   "hello",
		},
		{
			name:   "longer than length",
			input:  "hello world",
			length: 5,
			want:   "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padRight(tt.input, tt.length)
			if got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestRootCmdFlags(t *testing.T) {
	if rootCmd.Use != "tipsy" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "tipsy")
	}

	if rootCmd.Short == "" {
		t.Error("Expected rootCmd.Short to be non-empty")
	}
}

func TestAddCmdFlags(t *testing.T) {
	for _, name := range []string{"at", "notes", "user", "template"} {
		if addCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected --%s flag on add command", name)
		}
	}
}

func TestListCmdFlags(t *testing.T) {
	if listCmd.Flags().Lookup("user") == nil {
		t.Error("Expected --user flag on list command")
	}

	limitFlag := listCmd.Flags().Lookup("limit")
	if limitFlag == nil {
		t.Fatal("Expected --limit flag on list command")
	}
	if limitFlag.DefValue != "20" {
		t.Errorf("Expected default limit 20, got %s", limitFlag.DefValue)
	}
}

func TestSessionCmdFlags(t *testing.T) {
	if sessionCmd.Flags().Lookup("sleep-aware") == nil {
		t.Error("Expected --sleep-aware flag on session command")
	}
}

func TestProfileCmdSubcommands(t *testing.T) {
	subcommands := profileCmd.Commands()
	expectedSubcmds := []string{"set", "show"}

	cmdNames := make(map[string]bool)
	for _, cmd := range subcommands {
		cmdNames[cmd.Name()] = true
	}

	for _, expected := range expectedSubcmds {
		if !cmdNames[expected] {
			t.Errorf("Expected profile subcommand %q not found", expected)
		}
	}
}

func TestAddCmdAliases(t *testing.T) {
	found := false
	for _, alias := range addCmd.Aliases {
		if alias == "a" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'a' alias for addCmd")
	}
}

func TestDeleteCmdAliases(t *testing.T) {
	expectedAliases := map[string]bool{"del": false, "rm": false}

	for _, alias := range deleteCmd.Aliases {
		if _, ok := expectedAliases[alias]; ok {
			expectedAliases[alias] = true
		}
	}

	for alias, found := range expectedAliases {
		if !found {
			t.Errorf("Expected alias %q for deleteCmd", alias)
		}
	}
}

func TestExportCmdValidArgs(t *testing.T) {
	validArgs := exportCmd.ValidArgs
	expected := map[string]bool{"json": false, "yaml": false}

	for _, arg := range validArgs {
		if _, ok := expected[arg]; ok {
			expected[arg] = true
		}
	}

	for arg, found := range expected {
		if !found {
			t.Errorf("Expected valid arg %q for exportCmd", arg)
		}
	}
}

func TestMcpCmdExists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "mcp" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected mcp command to be registered")
	}
}

func TestImportCmdExists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "import" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected import command to be registered")
	}
}

// setupTestCLI redirects the database and config to a temp directory.
func setupTestCLI(t *testing.T) (*storage.DB, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "tipsy-cli-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	originalData := os.Getenv("XDG_DATA_HOME")
	originalConfig := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_DATA_HOME", tmpDir)
	os.Setenv("XDG_CONFIG_HOME", tmpDir)

	// Pre-open the database to create the schema
	dbPath := filepath.Join(tmpDir, "tipsy", "tipsy.db")
	testDB, err := storage.Open(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		os.Setenv("XDG_DATA_HOME", originalData)
		os.Setenv("XDG_CONFIG_HOME", originalConfig)
		t.Fatalf("Failed to open database: %v", err)
	}

	cleanup := func() {
		if repo != nil {
			repo.Close()
			repo = nil
		}
		testDB.Close()
		os.RemoveAll(tmpDir)
		os.Setenv("XDG_DATA_HOME", originalData)
		os.Setenv("XDG_CONFIG_HOME", originalConfig)
	}

	return testDB, cleanup
}

func resetAddFlags() {
	addAt = ""
	addNotes = ""
	addUser = ""
	addTemplate = false
}

func TestAddCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	resetAddFlags()

	rootCmd.SetArgs([]string{"add", "beer", "50", "5"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("add command failed: %v", err)
	}

	// Verify drink was created
	drinks, err := testDB.ListDrinks(nil, false, 0)
	if err != nil {
		t.Fatalf("ListDrinks failed: %v", err)
	}
	if len(drinks) != 1 {
		t.Fatalf("Expected 1 drink, got %d", len(drinks))
	}
	if drinks[0].Units != 2.00 {
		t.Errorf("Expected 2.00 units, got %f", drinks[0].Units)
	}
	if drinks[0].UserID != "me" {
		t.Errorf("Expected default user 'me', got %s", drinks[0].UserID)
	}
}

func TestAddCmdDefaultServing(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	resetAddFlags()

	rootCmd.SetArgs([]string{"add", "shot"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("add command failed: %v", err)
	}

	drinks, err := testDB.ListDrinks(nil, false, 0)
	if err != nil {
		t.Fatalf("ListDrinks failed: %v", err)
	}
	if len(drinks) != 1 {
		t.Fatalf("Expected 1 drink, got %d", len(drinks))
	}
	// 4cl at 40% = 1.28 units
	if drinks[0].Units != 1.28 {
		t.Errorf("Expected 1.28 units for default shot, got %f", drinks[0].Units)
	}
}

func TestAddCmdWithNotes(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	resetAddFlags()

	rootCmd.SetArgs([]string{"add", "wine", "--notes", "house red"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("add command with notes failed: %v", err)
	}

	drinks, err := testDB.ListDrinks(nil, false, 0)
	if err != nil {
		t.Fatalf("ListDrinks failed: %v", err)
	}
	if len(drinks) != 1 {
		t.Fatalf("Expected 1 drink, got %d", len(drinks))
	}
	if drinks[0].Notes == nil || *drinks[0].Notes != "house red" {
		t.Error("Notes not set correctly")
	}
}

func TestAddCmdWithTimestamp(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	resetAddFlags()

	rootCmd.SetArgs([]string{"add", "beer", "--at", "2026-08-30 21:00"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("add command with timestamp failed: %v", err)
	}

	drinks, err := testDB.ListDrinks(nil, false, 0)
	if err != nil {
		t.Fatalf("ListDrinks failed: %v", err)
	}
	if len(drinks) != 1 {
		t.Fatalf("Expected 1 drink, got %d", len(drinks))
	}
	if drinks[0].ConsumedAt.Hour() != 21 {
		t.Errorf("Expected consumed at 21:00, got %v", drinks[0].ConsumedAt)
	}
}

func TestAddCmdTemplate(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	resetAddFlags()

	rootCmd.SetArgs([]string{"add", "cocktail", "--template"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("add command with template failed: %v", err)
	}

	// Templates are excluded from the default listing
	drinks, err := testDB.ListDrinks(nil, false, 0)
	if err != nil {
		t.Fatalf("ListDrinks failed: %v", err)
	}
	if len(drinks) != 0 {
		t.Errorf("Expected template excluded from default list, got %d drinks", len(drinks))
	}

	all, err := testDB.ListDrinks(nil, true, 0)
	if err != nil {
		t.Fatalf("ListDrinks failed: %v", err)
	}
	if len(all) != 1 || !all[0].IsTemplate {
		t.Error("Expected template drink in full listing")
	}
}

func TestAddCmdInvalidCategory(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	resetAddFlags()

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"add", "mead"})
	err := rootCmd.Execute()

	if err == nil {
		t.Error("Expected error for invalid drink category")
	}
}

func TestAddCmdInvalidVolume(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	resetAddFlags()

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"add", "beer", "not_a_number"})
	err := rootCmd.Execute()

	if err == nil {
		t.Error("Expected error for invalid volume")
	}
}

func TestAddCmdInvalidTimestamp(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	resetAddFlags()

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"add", "beer", "--at", "invalid-date"})
	err := rootCmd.Execute()

	if err == nil {
		t.Error("Expected error for invalid timestamp")
	}
}

func TestListCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	listUser = ""
	listLimit = 20
	listTemplates = false

	testDB.CreateDrink(models.NewDrink("me", models.CategoryBeer, 50, 5))
	testDB.CreateDrink(models.NewDrink("me", models.CategoryWine, 12.5, 12))

	rootCmd.SetArgs([]string{"list"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("list command failed: %v", err)
	}
}

func TestListCmdEmptyDB(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	listUser = ""
	listLimit = 20
	listTemplates = false

	rootCmd.SetArgs([]string{"list"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("list command on empty DB failed: %v", err)
	}
}

func TestListCmdWithUserFilter(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	listUser = ""
	listLimit = 20
	listTemplates = false

	testDB.CreateDrink(models.NewDrink("me", models.CategoryBeer, 50, 5))
	testDB.CreateDrink(models.NewDrink("alice", models.CategoryWine, 12.5, 12))

	rootCmd.SetArgs([]string{"list", "--user", "alice"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("list command with user filter failed: %v", err)
	}
}

func TestDeleteCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	d := models.NewDrink("me", models.CategoryBeer, 50, 5)
	testDB.CreateDrink(d)

	rootCmd.SetArgs([]string{"delete", d.ID.String()[:8]})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("delete command failed: %v", err)
	}

	// Verify drink was deleted
	_, err = testDB.GetDrink(d.ID.String())
	if err == nil {
		t.Error("Expected drink to be deleted")
	}
}

func TestDeleteCmdNotFound(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"delete", "nonexistent"})
	err := rootCmd.Execute()

	if err == nil {
		t.Error("Expected error for non-existent drink")
	}
}

func TestActivityCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	activityAt = ""

	rootCmd.SetArgs([]string{"activity", "120", "80"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("activity command failed: %v", err)
	}

	samples, err := testDB.ListActivitySamples(nil, 0)
	if err != nil {
		t.Fatalf("ListActivitySamples failed: %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("Expected 1 sample, got %d", len(samples))
	}
	if samples[0].Steps.Total != 200 {
		t.Errorf("Expected 200 total steps, got %f", samples[0].Steps.Total)
	}
}

func TestActivityCmdInvalidSteps(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	activityAt = ""

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"activity", "not_a_number"})
	err := rootCmd.Execute()

	if err == nil {
		t.Error("Expected error for invalid step count")
	}
}

func TestProfileSetAndShow(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	profileUser = ""

	rootCmd.SetArgs([]string{"profile", "set", "--weight", "63.5", "--gender", "female", "--age", "28"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("profile set command failed: %v", err)
	}

	p, err := testDB.GetProfile("me")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if p == nil || p.WeightKg == nil || *p.WeightKg != 63.5 {
		t.Errorf("Expected stored weight 63.5, got %+v", p)
	}
	if p.Gender == nil || *p.Gender != models.GenderFemale {
		t.Error("Expected stored gender female")
	}

	rootCmd.SetArgs([]string{"profile", "show"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("profile show command failed: %v", err)
	}
}

func TestProfileSetMergesExisting(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	profileUser = ""

	rootCmd.SetArgs([]string{"profile", "set", "--weight", "80"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("profile set failed: %v", err)
	}

	rootCmd.SetArgs([]string{"profile", "set", "--age", "45"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("second profile set failed: %v", err)
	}

	p, err := testDB.GetProfile("me")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if p.WeightKg == nil || *p.WeightKg != 80 {
		t.Error("Expected weight to survive second set")
	}
	if p.Age == nil || *p.Age != 45 {
		t.Error("Expected age to be updated")
	}
}

func TestProfileSetInvalidGender(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	profileUser = ""

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"profile", "set", "--gender", "unknown"})
	err := rootCmd.Execute()

	if err == nil {
		t.Error("Expected error for invalid gender")
	}
}

func TestStatusCmdEmpty(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	statusUser = ""

	rootCmd.SetArgs([]string{"status"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("status command on empty DB failed: %v", err)
	}
}

func TestStatusCmdWithDrinks(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	statusUser = ""

	d := models.NewDrink("me", models.CategoryBeer, 50, 5).
		WithConsumedAt(time.Now().Add(-30 * time.Minute))
	testDB.CreateDrink(d)

	rootCmd.SetArgs([]string{"status"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("status command failed: %v", err)
	}
}

func TestSessionCmdEmpty(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	sessionUser = ""
	sessionSleepAware = false

	rootCmd.SetArgs([]string{"session"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("session command on empty DB failed: %v", err)
	}
}

func TestSessionCmdWithDrinks(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	sessionUser = ""
	sessionSleepAware = false

	now := time.Now()
	testDB.CreateDrink(models.NewDrink("me", models.CategoryBeer, 50, 5).
		WithConsumedAt(now.Add(-50 * time.Minute)))
	testDB.CreateDrink(models.NewDrink("me", models.CategoryWine, 12.5, 12).
		WithConsumedAt(now.Add(-25 * time.Minute)))

	rootCmd.SetArgs([]string{"session"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("session command failed: %v", err)
	}
}

func TestSessionCmdSleepAware(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	sessionUser = ""
	sessionSleepAware = false

	testDB.CreateDrink(models.NewDrink("me", models.CategoryBeer, 50, 5))

	rootCmd.SetArgs([]string{"session", "--sleep-aware"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("session --sleep-aware command failed: %v", err)
	}
}

func TestGroupCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	now := time.Now()
	testDB.CreateDrink(models.NewDrink("alice", models.CategoryBeer, 50, 5).
		WithConsumedAt(now.Add(-30 * time.Minute)))
	testDB.CreateDrink(models.NewDrink("bob", models.CategoryShot, 4, 40).
		WithConsumedAt(now.Add(-20 * time.Minute)))

	rootCmd.SetArgs([]string{"group", "alice", "bob", "carol"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("group command failed: %v", err)
	}
}

func TestGroupCmdEmpty(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	rootCmd.SetArgs([]string{"group", "alice"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("group command on empty DB failed: %v", err)
	}
}

func TestExportJSONCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	exportOutput = ""

	testDB.CreateDrink(models.NewDrink("me", models.CategoryBeer, 50, 5))

	rootCmd.SetArgs([]string{"export", "json"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("export json command failed: %v", err)
	}
}

func TestExportYAMLCmdWithDB(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	exportOutput = ""

	testDB.CreateDrink(models.NewDrink("me", models.CategoryBeer, 50, 5))

	rootCmd.SetArgs([]string{"export", "yaml"})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("export yaml command failed: %v", err)
	}
}

func TestExportToFile(t *testing.T) {
	testDB, cleanup := setupTestCLI(t)
	defer cleanup()

	exportOutput = ""

	testDB.CreateDrink(models.NewDrink("me", models.CategoryBeer, 50, 5))

	tmpFile := filepath.Join(t.TempDir(), "export.json")

	rootCmd.SetArgs([]string{"export", "json", "--output", tmpFile})
	err := rootCmd.Execute()

	if err != nil {
		t.Errorf("export to file command failed: %v", err)
	}

	if _, err := os.Stat(tmpFile); os.IsNotExist(err) {
		t.Error("Expected export file to be created")
	}
}

func TestExportInvalidFormat(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	exportOutput = ""

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"export", "xml"})
	err := rootCmd.Execute()

	if err == nil {
		t.Error("Expected error for invalid export format")
	}
}

func TestImportCmdWithFile(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	tmpDir := t.TempDir()
	importFile := filepath.Join(tmpDir, "import.json")

	jsonData := `{
		"version": "1.0",
		"exported_at": "2026-08-30T12:00:00Z",
		"tool": "tipsy",
		"drinks": [],
		"activity_samples": [],
		"profiles": {}
	}`
	err := os.WriteFile(importFile, []byte(jsonData), 0644)
	if err != nil {
		t.Fatalf("Failed to write import file: %v", err)
	}

	rootCmd.SetArgs([]string{"import", importFile})
	err = rootCmd.Execute()

	if err != nil {
		t.Errorf("import command failed: %v", err)
	}
}

func TestImportCmdFileNotFound(t *testing.T) {
	_, cleanup := setupTestCLI(t)
	defer cleanup()

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"import", "/nonexistent/file.json"})
	err := rootCmd.Execute()

	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestRootCmdLongDescription(t *testing.T) {
	if rootCmd.Long == "" {
		t.Error("Expected rootCmd.Long to be non-empty")
	}
}

func TestAllCategoriesInHelp(t *testing.T) {
	helpText := addCmd.Long
	expectedCategories := []string{"beer", "wine", "cocktail", "shot", "champagne", "soft"}

	for _, c := range expectedCategories {
		if !bytes.Contains([]byte(helpText), []byte(c)) {
			t.Errorf("Help text should contain category %q", c)
		}
	}
}
