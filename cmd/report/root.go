package report

import (
	"fmt"
	"github.com/VictoriaMetrics/metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uzaira123/Uzaira-Library-lsm/cmd/util"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/common"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/query"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/store"
	"io"
	"text/tabwriter"
)

var (
	libStore   store.IStore
	libMetrics *metrics.Set
	conf       common.Config

	// ReportCmd prints the statistics of the collection
	ReportCmd = &cobra.Command{
		Use:                "report",
		Aliases:            []string{"stats"},
		Short:              "Shows reading progress and how the collection is distributed",
		Args:               cobra.NoArgs,
		PersistentPreRunE:  setupStore,
		PersistentPostRunE: teardownStore,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := query.Compute(libStore.All())
			top := stats.TopAuthors(viper.GetInt("top"))

			if util.JSONOutput() {
				return util.PrintJSON(cmd.OutOrStdout(), struct {
					query.Stats
					TopAuthors []query.Count `json:"top_authors"`
				}{stats, top})
			}
			return printStats(cmd.OutOrStdout(), stats, top)
		},
	}
	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Shows where and how the collection is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := libStore.GetDBInfo()
			if err != nil {
				return err
			}
			if util.JSONOutput() {
				return util.PrintJSON(cmd.OutOrStdout(), info)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintf(tw, "engine:\t%s\n", info.DbType)
			if info.Location != "" {
				_, _ = fmt.Fprintf(tw, "location:\t%s\n", info.Location)
			}
			if info.Format != "" {
				_, _ = fmt.Fprintf(tw, "format:\t%s\n", info.Format)
			}
			_, _ = fmt.Fprintf(tw, "size:\t%d bytes\n", info.SizeBytes)
			_, _ = fmt.Fprintf(tw, "books:\t%d\n", info.Records)
			return tw.Flush()
		},
	}
)

func init() {
	ReportCmd.AddCommand(infoCmd)

	key := "top"
	ReportCmd.Flags().Int(key, query.DefaultTopAuthors, util.WrapString("Number of authors listed under top authors"))
}

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

// printStats renders the statistics as plain text sections
func printStats(w io.Writer, s query.Stats, top []query.Count) error {
	if s.Total == 0 {
		_, err := fmt.Fprintln(w, "your library is empty, add books with 'lsm book add'")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(tw, "books:\t%d\n", s.Total)
	_, _ = fmt.Fprintf(tw, "read:\t%d\n", s.ReadCount)
	_, _ = fmt.Fprintf(tw, "unread:\t%d\n", s.UnreadCount)
	_, _ = fmt.Fprintf(tw, "progress:\t%.2f%%\n", s.PercentRead)
	_, _ = fmt.Fprintf(tw, "years:\t%d to %d (mean %.1f, std dev %.1f)\n",
		s.Years.Oldest, s.Years.Newest, s.Years.Mean, s.Years.StdDeviation)

	_, _ = fmt.Fprintln(tw, "\nby genre")
	for _, c := range s.ByGenre {
		_, _ = fmt.Fprintf(tw, "  %s\t%d\n", c.Key, c.Count)
	}

	_, _ = fmt.Fprintln(tw, "\nby decade")
	for _, d := range s.ByDecade {
		_, _ = fmt.Fprintf(tw, "  %ds\t%d\n", d.Decade, d.Count)
	}

	_, _ = fmt.Fprintln(tw, "\ntop authors")
	for _, c := range top {
		_, _ = fmt.Fprintf(tw, "  %s\t%d\n", c.Key, c.Count)
	}

	return tw.Flush()
}
