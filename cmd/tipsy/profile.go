// ABOUTME: CLI commands for setting and showing the body profile.
// ABOUTME: Profile fields personalize the Widmark BAC estimate.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/tipsy/internal/models"
	"github.com/spf13/cobra"
)

var (
	profileAge      int
	profileGender   string
	profileHeight   float64
	profileWeight   float64
	profileActivity string
	profileUser     string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the body profile used for BAC estimation",
	Long: `Manage the body profile used for personalized BAC estimation.

All fields are optional. Missing fields fall back to population
averages: 70 kg, 170 cm, 30 years, male, moderate activity.

EXAMPLES:

  tipsy profile set --weight 63.5 --gender female --age 28
  tipsy profile set --height 182 --activity active
  tipsy profile show`,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set body profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := profileUser
		if userID == "" {
			userID = defaultUser
		}

		// Start from the stored profile so unset flags keep their values
		p, err := repo.GetProfile(userID)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if p == nil {
			p = &models.BodyProfile{}
		}

		if cmd.Flags().Changed("age") {
			p.Age = &profileAge
		}
		if cmd.Flags().Changed("gender") {
			if !models.IsValidGender(profileGender) {
				return fmt.Errorf("unknown gender: %s (use male or female)", profileGender)
			}
			g := models.Gender(profileGender)
			p.Gender = &g
		}
		if cmd.Flags().Changed("height") {
			p.HeightCm = &profileHeight
		}
		if cmd.Flags().Changed("weight") {
			p.WeightKg = &profileWeight
		}
		if cmd.Flags().Changed("activity") {
			if !models.IsValidActivityLevel(profileActivity) {
				return fmt.Errorf("unknown activity level: %s\nValid levels: sedentary, light, moderate, active, very_active", profileActivity)
			}
			l := models.ActivityLevel(profileActivity)
			p.ActivityLevel = &l
		}

		if err := repo.SaveProfile(userID, p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Green("✓ Saved profile for %s", userID)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved body profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := profileUser
		if userID == "" {
			userID = defaultUser
		}

		p, err := repo.GetProfile(userID)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if p == nil {
			fmt.Println("No profile set; estimates use population defaults.")
		}

		r := p.Resolve()
		faint := color.New(color.Faint)
		fmt.Printf("Profile for %s:\n", userID)
		fmt.Printf("  age       %d\n", r.Age)
		fmt.Printf("  gender    %s\n", r.Gender)
		fmt.Printf("  height    %.1f cm\n", r.HeightCm)
		fmt.Printf("  weight    %.1f kg\n", r.WeightKg)
		fmt.Printf("  activity  %s\n", r.ActivityLevel)
		fmt.Printf("  %s\n", faint.Sprintf("BMI %.1f", r.BMI()))

		return nil
	},
}

func init() {
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "male or female")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "weight in kg")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "activity level")
	profileCmd.PersistentFlags().StringVarP(&profileUser, "user", "u", "", "subject id (default from config)")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
