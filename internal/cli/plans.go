package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fitlab/fitadmin/internal/client/api"
	"github.com/fitlab/fitadmin/internal/models"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Manage subscription plans",
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscription plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		opts := api.PlanListOptions{}
		opts.Status, _ = cmd.Flags().GetString("status")
		opts.Page, _ = cmd.Flags().GetInt("page")

		page, err := current.client.Plans.List(cmd.Context(), opts)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Data))
		for _, p := range page.Data {
			rows = append(rows, []string{
				strconv.FormatInt(p.ID, 10),
				p.Name,
				formatPrice(p.PriceCents, p.Currency),
				strconv.Itoa(p.DurationDays) + "d",
				string(p.Status),
			})
		}
		table([]string{"ID", "NAME", "PRICE", "DURATION", "STATUS"}, rows)
		pageFooter(page.Meta)
		return nil
	},
}

var plansGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		p, err := current.client.Plans.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		table([]string{"ID", "NAME", "PRICE", "DURATION", "STATUS"}, [][]string{{
			strconv.FormatInt(p.ID, 10), p.Name, formatPrice(p.PriceCents, p.Currency),
			strconv.Itoa(p.DurationDays) + "d", string(p.Status),
		}})
		if p.Description != "" {
			fmt.Println(p.Description)
		}
		return nil
	},
}

var plansCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a subscription plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		req := models.CreatePlanRequest{}
		req.Name, _ = cmd.Flags().GetString("name")
		req.Description, _ = cmd.Flags().GetString("description")
		req.PriceCents, _ = cmd.Flags().GetInt64("price-cents")
		req.Currency, _ = cmd.Flags().GetString("currency")
		req.DurationDays, _ = cmd.Flags().GetInt("duration-days")

		p, err := current.client.Plans.Create(cmd.Context(), req)
		if err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Created plan %d (%s)", p.ID, p.Name))
		return nil
	},
}

var plansUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a subscription plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		req := models.UpdatePlanRequest{}
		req.Name, _ = cmd.Flags().GetString("name")
		req.Description, _ = cmd.Flags().GetString("description")
		req.PriceCents, _ = cmd.Flags().GetInt64("price-cents")
		req.Currency, _ = cmd.Flags().GetString("currency")
		req.DurationDays, _ = cmd.Flags().GetInt("duration-days")
		status, _ := cmd.Flags().GetString("status")
		req.Status = models.PlanStatus(status)

		p, err := current.client.Plans.Update(cmd.Context(), id, req)
		if err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Updated plan %d", p.ID))
		return nil
	},
}

var plansDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a subscription plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := current.client.Plans.Delete(cmd.Context(), id); err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Deleted plan %d", id))
		return nil
	},
}

func formatPrice(cents int64, currency string) string {
	return fmt.Sprintf("%.2f %s", float64(cents)/100, currency)
}

func init() {
	plansListCmd.Flags().String("status", api.FilterAll, "filter by status")
	plansListCmd.Flags().Int("page", 0, "page number")

	plansCreateCmd.Flags().String("name", "", "plan name")
	plansCreateCmd.Flags().String("description", "", "plan description")
	plansCreateCmd.Flags().Int64("price-cents", 0, "price in cents")
	plansCreateCmd.Flags().String("currency", "USD", "ISO currency code")
	plansCreateCmd.Flags().Int("duration-days", 30, "plan duration in days")
	_ = plansCreateCmd.MarkFlagRequired("name")
	_ = plansCreateCmd.MarkFlagRequired("price-cents")

	plansUpdateCmd.Flags().String("name", "", "plan name")
	plansUpdateCmd.Flags().String("description", "", "plan description")
	plansUpdateCmd.Flags().Int64("price-cents", 0, "price in cents")
	plansUpdateCmd.Flags().String("currency", "", "ISO currency code")
	plansUpdateCmd.Flags().Int("duration-days", 0, "plan duration in days")
	plansUpdateCmd.Flags().String("status", "", "status")

	plansCmd.AddCommand(plansListCmd, plansGetCmd, plansCreateCmd, plansUpdateCmd, plansDeleteCmd)
	rootCmd.AddCommand(plansCmd)
}
