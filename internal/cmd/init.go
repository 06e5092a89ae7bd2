package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with the default settings",
	Long: `Writes the message-analyser config file with every setting at its
default value to ~/.config/message-analyser/config.json, so the rolling
window, emoji count, output format and logging can be tuned in one place.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file without asking")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	dir := configDir()
	configPath := filepath.Join(dir, "config.json")

	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", configPath)
		fmt.Fprint(cmd.OutOrStdout(), "Overwrite? [y/N]: ")

		var answer string
		fmt.Fscanln(cmd.InOrStdin(), &answer) //nolint:errcheck // empty answer means no

		if !strings.EqualFold(answer, "y") {
			return nil
		}
	}

	if err := os.MkdirAll(dir, 0750); err != nil { //nolint:gosec // path from XDG_CONFIG_HOME or user home dir
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(defaultConfigFile(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", configPath)
	return nil
}
