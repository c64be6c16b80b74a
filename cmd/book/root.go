package book

import (
	"github.com/VictoriaMetrics/metrics"
	"github.com/spf13/cobra"
	"github.com/uzaira123/Uzaira-Library-lsm/cmd/util"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/common"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/store"
)

var (
	libStore   store.IStore
	libMetrics *metrics.Set
	conf       common.Config

	// BookCommands represents the book command group
	BookCommands = &cobra.Command{
		Use:                "book",
		Short:              "Add, browse, search and remove books",
		PersistentPreRunE:  setupStore,
		PersistentPostRunE: teardownStore,
	}
)

func init() {
	// Add subcommands
	BookCommands.AddCommand(addCmd)
	BookCommands.AddCommand(listCmd)
	BookCommands.AddCommand(removeCmd)
	BookCommands.AddCommand(readCmd)
	BookCommands.AddCommand(unreadCmd)
	BookCommands.AddCommand(searchCmd)
	BookCommands.AddCommand(exportCmd)
	BookCommands.AddCommand(genresCmd)
}

// setupStore opens the configured collection for the subcommand
func setupStore(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	conf = util.GetConfig()

	var err error
	libStore, libMetrics, err = util.OpenStore(cmd, conf)
	return err
}

func teardownStore(cmd *cobra.Command, _ []string) error {
	util.WriteMetrics(cmd, conf, libMetrics)
	return nil
}
