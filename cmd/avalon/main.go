package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tanaythan/avalon-tracker/internal/cli"
	"github.com/tanaythan/avalon-tracker/internal/db"
	"github.com/tanaythan/avalon-tracker/internal/version"
)

func main() {
	// Optional .env in the working directory may set AVALON_DB
	godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "avalon",
		Short:   "Avalon game tracker",
		Version: version.String(),
		Long: `Avalon records completed games of the social deduction game Avalon
in a local sqlite database and derives ranked win/loss standings:
who played which role, how each quest resolved, and who won.`,
	}

	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.GameCmd())
	rootCmd.AddCommand(cli.StandingsCmd())

	err := rootCmd.Execute()
	db.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
