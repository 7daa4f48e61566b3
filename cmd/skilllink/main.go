package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/skilllink-dev/skilllink/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗┬┌─┬┬  ┬  ╦  ┬┌┐┌┬┌─
  ╚═╗├┴┐││  │  ║  ││││├┴┐
  ╚═╝┴ ┴┴┴─┘┴─┘╩═╝┴┘└┘┴ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "skilllink",
		Short: "Job matching for informal-sector workers",
		Long: `SkillLink connects daily-wage and informal-sector workers with
nearby employers.

The CLI runs the supporting services and demos:

  • HTTP/WebSocket gateway (job feed, avatars, chat, metrics)
  • Scripted walkthrough of the client state model`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		demoCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		if ae, ok := err.(*apperrors.AppError); ok {
			fmt.Fprint(os.Stderr, ae.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the SkillLink ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
