package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"runlet/internal/forward"
)

var forwardCmd = &cobra.Command{
	Use:   "forward <url>",
	Short: "Forward a trigger URL to the local agent",
	Long: `Forward a custom-scheme trigger URL to the local agent as an HTTP GET.

A URL of the form scheme://script/arg is translated to
http://localhost:<port>/script/arg and sent once, waiting up to 10 seconds.
The outcome is not reported: this command exists for OS-level URL handlers
with fire-and-forget semantics, so it always exits successfully once the
request has been attempted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		agentURL, err := forward.Translate(args[0], cfg.Port())
		if err != nil {
			return err
		}

		fmt.Printf("Triggering %s\n", color.CyanString(agentURL))
		if err := forward.Send(cmd.Context(), agentURL); err != nil {
			// Fire and forget: report, but do not fail the handler.
			fmt.Println(color.YellowString("no response from agent: %v", err))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(forwardCmd)
}
