package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fitlab/fitadmin/internal/models"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the platform API",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if email == "" {
			email = prompt("Email: ")
		}
		if password == "" {
			password = prompt("Password: ")
		}

		user, err := current.sess.Login(cmd.Context(), models.LoginRequest{
			Email:    email,
			Password: password,
		})
		if err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Logged in as %s (%s)", user.Name, user.Role))
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a staff account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := models.RegisterRequest{}
		req.Name, _ = cmd.Flags().GetString("name")
		req.Email, _ = cmd.Flags().GetString("email")
		req.Phone, _ = cmd.Flags().GetString("phone")
		req.Password, _ = cmd.Flags().GetString("password")
		req.PasswordConfirmation = req.Password

		user, err := current.sess.Register(cmd.Context(), req)
		if err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Registered %s", user.Email))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		current.sess.Logout(cmd.Context())
		current.notifier.Info("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		u := current.sess.Current().User
		table(
			[]string{"ID", "NAME", "EMAIL", "ROLE", "STATUS"},
			userRows([]models.User{*u}),
		)
		return nil
	},
}

func prompt(label string) string {
	fmt.Fprint(os.Stderr, label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password (prompted if omitted)")

	registerCmd.Flags().String("name", "", "full name")
	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("phone", "", "phone number")
	registerCmd.Flags().String("password", "", "account password")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
