package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fitlab/fitadmin/internal/models"
)

var aiConfigCmd = &cobra.Command{
	Use:   "ai-config",
	Short: "Manage a gym's AI provider configurations",
}

var aiConfigListCmd = &cobra.Command{
	Use:   "list <gym-id>",
	Short: "List AI configurations of a gym",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		gymID, err := parseID(args[0])
		if err != nil {
			return err
		}
		configs, err := current.client.AIConfigs.List(cmd.Context(), gymID)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(configs))
		for _, c := range configs {
			rows = append(rows, []string{
				strconv.FormatInt(c.ID, 10), string(c.Provider), c.Model, strconv.FormatBool(c.Enabled),
			})
		}
		table([]string{"ID", "PROVIDER", "MODEL", "ENABLED"}, rows)
		return nil
	},
}

var aiConfigCreateCmd = &cobra.Command{
	Use:   "create <gym-id>",
	Short: "Add an AI configuration to a gym",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		gymID, err := parseID(args[0])
		if err != nil {
			return err
		}
		req := models.CreateAIConfigurationRequest{}
		provider, _ := cmd.Flags().GetString("provider")
		req.Provider = models.AIProvider(provider)
		req.Model, _ = cmd.Flags().GetString("model")
		req.APIKey, _ = cmd.Flags().GetString("api-key")
		req.Temperature, _ = cmd.Flags().GetFloat64("temperature")
		req.MaxTokens, _ = cmd.Flags().GetInt("max-tokens")
		req.Enabled, _ = cmd.Flags().GetBool("enabled")

		c, err := current.client.AIConfigs.Create(cmd.Context(), gymID, req)
		if err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Created configuration %d (%s/%s)", c.ID, c.Provider, c.Model))
		return nil
	},
}

var aiConfigUpdateCmd = &cobra.Command{
	Use:   "update <gym-id> <config-id>",
	Short: "Update an AI configuration",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		gymID, err := parseID(args[0])
		if err != nil {
			return err
		}
		configID, err := parseID(args[1])
		if err != nil {
			return err
		}
		req := models.UpdateAIConfigurationRequest{}
		provider, _ := cmd.Flags().GetString("provider")
		req.Provider = models.AIProvider(provider)
		req.Model, _ = cmd.Flags().GetString("model")
		req.APIKey, _ = cmd.Flags().GetString("api-key")
		req.Temperature, _ = cmd.Flags().GetFloat64("temperature")
		req.MaxTokens, _ = cmd.Flags().GetInt("max-tokens")
		if cmd.Flags().Changed("enabled") {
			enabled, _ := cmd.Flags().GetBool("enabled")
			req.Enabled = &enabled
		}

		c, err := current.client.AIConfigs.Update(cmd.Context(), gymID, configID, req)
		if err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Updated configuration %d", c.ID))
		return nil
	},
}

var aiConfigDeleteCmd = &cobra.Command{
	Use:   "delete <gym-id> <config-id>",
	Short: "Delete an AI configuration",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		gymID, err := parseID(args[0])
		if err != nil {
			return err
		}
		configID, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := current.client.AIConfigs.Delete(cmd.Context(), gymID, configID); err != nil {
			return err
		}
		current.notifier.Success(fmt.Sprintf("Deleted configuration %d", configID))
		return nil
	},
}

var aiConfigTestCmd = &cobra.Command{
	Use:   "test <gym-id> <config-id>",
	Short: "Test an AI configuration against its provider",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd.Context()); err != nil {
			return err
		}
		gymID, err := parseID(args[0])
		if err != nil {
			return err
		}
		configID, err := parseID(args[1])
		if err != nil {
			return err
		}
		res, err := current.client.AIConfigs.Test(cmd.Context(), gymID, configID)
		if err != nil {
			return err
		}
		if res.Success {
			current.notifier.Success(fmt.Sprintf("Provider reachable (%dms)", res.LatencyMS))
		} else {
			current.notifier.Error(fmt.Sprintf("Provider test failed: %s", res.Message))
		}
		return nil
	},
}

func init() {
	aiConfigCreateCmd.Flags().String("provider", "", "openai, anthropic or gemini")
	aiConfigCreateCmd.Flags().String("model", "", "model identifier")
	aiConfigCreateCmd.Flags().String("api-key", "", "provider API key")
	aiConfigCreateCmd.Flags().Float64("temperature", 0, "sampling temperature")
	aiConfigCreateCmd.Flags().Int("max-tokens", 0, "response token cap")
	aiConfigCreateCmd.Flags().Bool("enabled", true, "enable on creation")
	_ = aiConfigCreateCmd.MarkFlagRequired("provider")
	_ = aiConfigCreateCmd.MarkFlagRequired("model")
	_ = aiConfigCreateCmd.MarkFlagRequired("api-key")

	aiConfigUpdateCmd.Flags().String("provider", "", "openai, anthropic or gemini")
	aiConfigUpdateCmd.Flags().String("model", "", "model identifier")
	aiConfigUpdateCmd.Flags().String("api-key", "", "provider API key")
	aiConfigUpdateCmd.Flags().Float64("temperature", 0, "sampling temperature")
	aiConfigUpdateCmd.Flags().Int("max-tokens", 0, "response token cap")
	aiConfigUpdateCmd.Flags().Bool("enabled", true, "enable or disable")

	aiConfigCmd.AddCommand(aiConfigListCmd, aiConfigCreateCmd, aiConfigUpdateCmd,
		aiConfigDeleteCmd, aiConfigTestCmd)
	rootCmd.AddCommand(aiConfigCmd)
}
