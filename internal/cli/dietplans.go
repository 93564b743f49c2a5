package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fitlab/fitadmin/internal/models"
)

var dietPlansCmd = &cobra.Command{
	Use:   "diet-plans",
	Short: "Manage meal plans within diet plans",
}

var mealsListCmd = &cobra.Command{
	Use:   "meals <diet-plan-id>",
	Short: "List meals of a diet plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		dietPlanID, err := parseID(args[0])
		if err != nil {
			return err
		}
		meals, err := current.client.DietPlans.MealPlans(cmd.Context(), dietPlanID)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(meals))
		for _, m := range meals {
			rows = append(rows, []string{
				strconv.FormatInt(m.ID, 10), m.Name, string(m.Type), strconv.Itoa(m.Calories),
			})
		}
		table([]string{"ID", "NAME", "TYPE", "CALORIES"}, rows)
		return nil
	},
}

var mealsAddCmd = &cobra.Command{
	Use:   "add-meal <diet-plan-id>",
	Short: "Add a meal to a diet plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		dietPlanID, err := parseID(args[0])
		if err != nil {
			return err
		}
		req := models.CreateMealPlanRequest{}
		req.Name, _ = cmd.Flags().GetString("name")
		mealType, _ := cmd.Flags().GetString("type")
		req.Type = models.MealType(mealType)
		req.Calories, _ = cmd.Flags().GetInt("calories")
		req.Notes, _ = cmd.Flags().GetString("notes")

		m, err := current.client.DietPlans.AddMealPlan(cmd.Context(), dietPlanID, req)
		if err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Added meal %d (%s)", m.ID, m.Name))
		return nil
	},
}

var mealsRemoveCmd = &cobra.Command{
	Use:   "remove-meal <diet-plan-id> <meal-id>",
	Short: "Remove a meal from a diet plan",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		dietPlanID, err := parseID(args[0])
		if err != nil {
			return err
		}
		mealID, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := current.client.DietPlans.RemoveMealPlan(cmd.Context(), dietPlanID, mealID); err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Removed meal %d", mealID))
		return nil
	},
}

func init() {
	mealsAddCmd.Flags().String("name", "", "meal name")
	mealsAddCmd.Flags().String("type", string(models.MealLunch), "breakfast, lunch, dinner or snack")
	mealsAddCmd.Flags().Int("calories", 0, "calories")
	mealsAddCmd.Flags().String("notes", "", "free-form notes")
	_ = mealsAddCmd.MarkFlagRequired("name")

	dietPlansCmd.AddCommand(mealsListCmd, mealsAddCmd, mealsRemoveCmd)
	rootCmd.AddCommand(dietPlansCmd)
}
