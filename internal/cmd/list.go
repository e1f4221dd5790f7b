package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"runlet/internal/route"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed scripts",
	Long:  `List the executable scripts in the configured scripts directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		resolver := route.NewResolver(cfg.Scripts.Dir)
		scripts, err := resolver.List()
		if err != nil {
			return err
		}

		if len(scripts) == 0 {
			fmt.Printf("No scripts installed in %s\n", cfg.Scripts.Dir)
			return nil
		}

		color.New(color.Bold).Printf("Scripts in %s:\n", cfg.Scripts.Dir)
		for _, name := range scripts {
			fmt.Printf("  %s\n", color.CyanString(name))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
