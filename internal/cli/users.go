package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitlab/fitadmin/internal/client/api"
	"github.com/fitlab/fitadmin/internal/models"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage platform users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		opts := api.UserListOptions{}
		opts.Role, _ = cmd.Flags().GetString("role")
		opts.Status, _ = cmd.Flags().GetString("status")
		opts.Search, _ = cmd.Flags().GetString("search")
		opts.Page, _ = cmd.Flags().GetInt("page")

		page, err := current.client.Users.List(cmd.Context(), opts)
		if err != nil {
			return err
		}
		table([]string{"ID", "NAME", "EMAIL", "ROLE", "STATUS"}, userRows(page.Data))
		pageFooter(page.Meta)
		return nil
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		u, err := current.client.Users.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		table([]string{"ID", "NAME", "EMAIL", "ROLE", "STATUS"}, userRows([]models.User{*u}))
		fmt.Printf("created %s, updated %s\n", formatTime(u.CreatedAt), formatTime(u.UpdatedAt))
		return nil
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		req := models.CreateUserRequest{}
		req.Name, _ = cmd.Flags().GetString("name")
		req.Email, _ = cmd.Flags().GetString("email")
		req.Phone, _ = cmd.Flags().GetString("phone")
		req.Password, _ = cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")
		req.Role = models.Role(role)

		u, err := current.client.Users.Create(cmd.Context(), req)
		if err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Created user %d (%s)", u.ID, u.Email))
		return nil
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		req := models.UpdateUserRequest{}
		req.Name, _ = cmd.Flags().GetString("name")
		req.Email, _ = cmd.Flags().GetString("email")
		req.Phone, _ = cmd.Flags().GetString("phone")
		role, _ := cmd.Flags().GetString("role")
		req.Role = models.Role(role)
		status, _ := cmd.Flags().GetString("status")
		req.Status = models.UserStatus(status)

		u, err := current.client.Users.Update(cmd.Context(), id, req)
		if err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Updated user %d", u.ID))
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := current.client.Users.Delete(cmd.Context(), id); err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Deleted user %d", id))
		return nil
	},
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List assignable roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		roles, err := current.client.Users.Roles(cmd.Context())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(roles))
		for _, r := range roles {
			rows = append(rows, []string{string(r.Value), r.Label})
		}
		table([]string{"ROLE", "LABEL"}, rows)
		return nil
	},
}

func init() {
	usersListCmd.Flags().String("role", api.FilterAll, "filter by role")
	usersListCmd.Flags().String("status", api.FilterAll, "filter by status")
	usersListCmd.Flags().String("search", "", "substring filter")
	usersListCmd.Flags().Int("page", 0, "page number")

	usersCreateCmd.Flags().String("name", "", "full name")
	usersCreateCmd.Flags().String("email", "", "email address")
	usersCreateCmd.Flags().String("phone", "", "phone number")
	usersCreateCmd.Flags().String("password", "", "initial password")
	usersCreateCmd.Flags().String("role", string(models.RoleClient), "role")
	_ = usersCreateCmd.MarkFlagRequired("name")
	_ = usersCreateCmd.MarkFlagRequired("email")
	_ = usersCreateCmd.MarkFlagRequired("password")

	usersUpdateCmd.Flags().String("name", "", "full name")
	usersUpdateCmd.Flags().String("email", "", "email address")
	usersUpdateCmd.Flags().String("phone", "", "phone number")
	usersUpdateCmd.Flags().String("role", "", "role")
	usersUpdateCmd.Flags().String("status", "", "status")

	usersCmd.AddCommand(usersListCmd, usersGetCmd, usersCreateCmd, usersUpdateCmd, usersDeleteCmd)
	rootCmd.AddCommand(usersCmd, rolesCmd)
}
