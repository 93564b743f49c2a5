package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fitlab/fitadmin/internal/client/api"
	"github.com/fitlab/fitadmin/internal/models"
)

var gymsCmd = &cobra.Command{
	Use:   "gyms",
	Short: "Manage gyms and their members",
}

var gymsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List gyms",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		opts := api.GymListOptions{}
		opts.Status, _ = cmd.Flags().GetString("status")
		opts.Search, _ = cmd.Flags().GetString("search")
		opts.Page, _ = cmd.Flags().GetInt("page")

		page, err := current.client.Gyms.List(cmd.Context(), opts)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Data))
		for _, g := range page.Data {
			rows = append(rows, []string{
				strconv.FormatInt(g.ID, 10), g.Name, g.City, g.Email, string(g.Status),
			})
		}
		table([]string{"ID", "NAME", "CITY", "EMAIL", "STATUS"}, rows)
		pageFooter(page.Meta)
		return nil
	},
}

var gymsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one gym",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		g, err := current.client.Gyms.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		table([]string{"ID", "NAME", "ADDRESS", "CITY", "PHONE", "STATUS"}, [][]string{{
			strconv.FormatInt(g.ID, 10), g.Name, g.Address, g.City, g.Phone, string(g.Status),
		}})
		return nil
	},
}

var gymsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a gym",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		req := models.CreateGymRequest{}
		req.Name, _ = cmd.Flags().GetString("name")
		req.Address, _ = cmd.Flags().GetString("address")
		req.City, _ = cmd.Flags().GetString("city")
		req.Phone, _ = cmd.Flags().GetString("phone")
		req.Email, _ = cmd.Flags().GetString("email")

		g, err := current.client.Gyms.Create(cmd.Context(), req)
		if err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Created gym %d (%s)", g.ID, g.Name))
		return nil
	},
}

var gymsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a gym",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		req := models.UpdateGymRequest{}
		req.Name, _ = cmd.Flags().GetString("name")
		req.Address, _ = cmd.Flags().GetString("address")
		req.City, _ = cmd.Flags().GetString("city")
		req.Phone, _ = cmd.Flags().GetString("phone")
		req.Email, _ = cmd.Flags().GetString("email")
		status, _ := cmd.Flags().GetString("status")
		req.Status = models.GymStatus(status)

		g, err := current.client.Gyms.Update(cmd.Context(), id, req)
		if err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Updated gym %d", g.ID))
		return nil
	},
}

var gymsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a gym",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := current.client.Gyms.Delete(cmd.Context(), id); err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Deleted gym %d", id))
		return nil
	},
}

var gymsMembersCmd = &cobra.Command{
	Use:   "members <gym-id>",
	Short: "List a gym's members",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		gymID, err := parseID(args[0])
		if err != nil {
			return err
		}
		opts := api.MemberListOptions{}
		opts.Role, _ = cmd.Flags().GetString("role")
		opts.Page, _ = cmd.Flags().GetInt("page")

		page, err := current.client.Gyms.Members(cmd.Context(), gymID, opts)
		if err != nil {
			return err
		}
		table([]string{"ID", "NAME", "EMAIL", "ROLE", "STATUS"}, userRows(page.Data))
		pageFooter(page.Meta)
		return nil
	},
}

var gymsAddMemberCmd = &cobra.Command{
	Use:   "add-member <gym-id> <user-id>",
	Short: "Attach a user to a gym",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		gymID, err := parseID(args[0])
		if err != nil {
			return err
		}
		userID, err := parseID(args[1])
		if err != nil {
			return err
		}
		role, _ := cmd.Flags().GetString("role")

		u, err := current.client.Gyms.AddMember(cmd.Context(), gymID, models.AttachMemberRequest{
			UserID: userID,
			Role:   models.Role(role),
		})
		if err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Added %s to gym %d", u.Email, gymID))
		return nil
	},
}

var gymsRemoveMemberCmd = &cobra.Command{
	Use:   "remove-member <gym-id> <user-id>",
	Short: "Detach a user from a gym",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		gymID, err := parseID(args[0])
		if err != nil {
			return err
		}
		userID, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := current.client.Gyms.RemoveMember(cmd.Context(), gymID, userID); err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Removed user %d from gym %d", userID, gymID))
		return nil
	},
}

func init() {
	gymsListCmd.Flags().String("status", api.FilterAll, "filter by status")
	gymsListCmd.Flags().String("search", "", "substring filter")
	gymsListCmd.Flags().Int("page", 0, "page number")

	gymsCreateCmd.Flags().String("name", "", "gym name")
	gymsCreateCmd.Flags().String("address", "", "street address")
	gymsCreateCmd.Flags().String("city", "", "city")
	gymsCreateCmd.Flags().String("phone", "", "phone number")
	gymsCreateCmd.Flags().String("email", "", "contact email")
	_ = gymsCreateCmd.MarkFlagRequired("name")

	gymsUpdateCmd.Flags().String("name", "", "gym name")
	gymsUpdateCmd.Flags().String("address", "", "street address")
	gymsUpdateCmd.Flags().String("city", "", "city")
	gymsUpdateCmd.Flags().String("phone", "", "phone number")
	gymsUpdateCmd.Flags().String("email", "", "contact email")
	gymsUpdateCmd.Flags().String("status", "", "status")

	gymsMembersCmd.Flags().String("role", api.FilterAll, "filter by role")
	gymsMembersCmd.Flags().Int("page", 0, "page number")

	gymsAddMemberCmd.Flags().String("role", "", "role within the gym")

	gymsCmd.AddCommand(gymsListCmd, gymsGetCmd, gymsCreateCmd, gymsUpdateCmd, gymsDeleteCmd,
		gymsMembersCmd, gymsAddMemberCmd, gymsRemoveMemberCmd)
	rootCmd.AddCommand(gymsCmd)
}
