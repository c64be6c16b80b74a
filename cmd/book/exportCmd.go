package book

import (
	"encoding/csv"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/uzaira123/Uzaira-Library-lsm/cmd/util"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/book"
	"io"
	"os"
	"strconv"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports the collection as CSV (to stdout or a file)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		csvPath, _ := cmd.Flags().GetString("csv")
		books := libStore.All()

		if csvPath == "" {
			return writeBooksCSV(cmd.OutOrStdout(), books)
		}

		file, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("failed to create CSV file: %w", err)
		}

		if err := writeBooksCSV(file, books); err != nil {
			_ = file.Close()
			return fmt.Errorf("failed to export books to CSV: %w", err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close CSV file: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "exported %d books to %s\n", len(books), csvPath)
		return nil
	},
}

func init() {
	key := "csv"
	exportCmd.Flags().String(key, "", util.WrapString("Optional path to write the CSV to instead of stdout"))
}

// writeBooksCSV writes books with a header row, one row per book in collection order
func writeBooksCSV(w io.Writer, books []book.Book) error {
	writer := csv.NewWriter(w)

	// Write header
	header := []string{"Position", "Title", "Author", "PublicationYear", "Genre", "Read", "AddedAt"}
	if err := writer.Write(header); err != nil {
		return err
	}

	// Write data rows
	for i, b := range books {
		row := []string{
			strconv.Itoa(i),
			b.Title,
			b.Author,
			strconv.Itoa(b.PublicationYear),
			string(b.Genre),
			strconv.FormatBool(b.ReadStatus),
			b.AddedAt.String(),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
