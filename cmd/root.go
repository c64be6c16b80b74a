package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/uzaira123/Uzaira-Library-lsm/cmd/book"
	"github.com/uzaira123/Uzaira-Library-lsm/cmd/report"
	"github.com/uzaira123/Uzaira-Library-lsm/cmd/util"
	"os"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "lsm",
		Short: "personal library manager",
		Long: fmt.Sprintf(`lsm (v%s)

Record, browse, search and tally a personal list of books.
The collection is kept in a single human-readable file (library.json by default).

Settings can be given as flags or as environment variables with the prefix LSM_
(e.g. LSM_FILE=~/books.json), also read from .env and .env.local.`, Version),
		SilenceUsage: true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of lsm",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "lsm v%s\n", Version)
		},
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(book.BookCommands)
	RootCmd.AddCommand(report.ReportCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	util.SetupStoreFlags(RootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
