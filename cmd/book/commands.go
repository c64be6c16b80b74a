package book

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/uzaira123/Uzaira-Library-lsm/cmd/util"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/book"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/query"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

var (
	addCmd = &cobra.Command{
		Use:         "add",
		Short:       "Adds a book to the end of the collection",
		Args:        cobra.NoArgs,
		Annotations: util.Mutating(),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			title, _ := flags.GetString("title")
			author, _ := flags.GetString("author")
			year, _ := flags.GetInt("year")
			genre, _ := flags.GetString("genre")
			read, _ := flags.GetBool("read")

			created, err := libStore.Add(book.Draft{
				Title:  title,
				Author: author,
				Year:   year,
				Genre:  genre,
				Read:   read,
			})
			if err != nil {
				return err
			}

			if util.JSONOutput() {
				return util.PrintJSON(cmd.OutOrStdout(), query.Hit{Index: libStore.Len() - 1, Book: created})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added #%d: %s by %s\n", libStore.Len()-1, created.Title, created.Author)
			return err
		},
	}
	listCmd = &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Lists all books with their positions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books := libStore.All()
			hits := make([]query.Hit, len(books))
			for i, b := range books {
				hits[i] = query.Hit{Index: i, Book: b}
			}
			return printHits(cmd.OutOrStdout(), hits, "your library is empty, add books with 'lsm book add'")
		},
	}
	removeCmd = &cobra.Command{
		Use:         "rm [position]",
		Aliases:     []string{"remove"},
		Short:       "Removes the book at a position (see 'lsm book list'); later positions shift down by one",
		Args:        cobra.ExactArgs(1),
		Annotations: util.Mutating(),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			removed, err := libStore.Remove(index)
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), removed, index, "removed")
		},
	}
	readCmd = &cobra.Command{
		Use:         "read [position]",
		Short:       "Marks the book at a position as read",
		Args:        cobra.ExactArgs(1),
		Annotations: util.Mutating(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setReadStatus(cmd, args[0], true)
		},
	}
	unreadCmd = &cobra.Command{
		Use:         "unread [position]",
		Short:       "Marks the book at a position as unread",
		Args:        cobra.ExactArgs(1),
		Annotations: util.Mutating(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setReadStatus(cmd, args[0], false)
		},
	}
	searchCmd = &cobra.Command{
		Use:   "search [term]",
		Short: "Finds books whose title, author or genre contains a term (case-insensitive)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldName, _ := cmd.Flags().GetString("field")
			field, err := query.ParseField(fieldName)
			if err != nil {
				return err
			}

			hits, err := query.SearchHits(libStore.All(), strings.Join(args, " "), field)
			if err != nil {
				return err
			}
			return printHits(cmd.OutOrStdout(), hits, "no matching books found")
		},
	}
	genresCmd = &cobra.Command{
		Use:   "genres",
		Short: "Lists the genres a book can have",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if util.JSONOutput() {
				return util.PrintJSON(cmd.OutOrStdout(), book.Genres())
			}
			for _, g := range book.Genres() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), g); err != nil {
					return err
				}
			}
			return nil
		},
	}
)

func init() {
	key := "title"
	addCmd.Flags().String(key, "", util.WrapString("Title of the book"))
	key = "author"
	addCmd.Flags().String(key, "", util.WrapString("Author of the book"))
	key = "year"
	addCmd.Flags().Int(key, time.Now().Year(), util.WrapString(fmt.Sprintf("Publication year (%d to the current year)", book.MinYear)))
	key = "genre"
	addCmd.Flags().String(key, string(book.GenreOther), util.WrapString("Genre of the book, see 'lsm book genres'"))
	key = "read"
	addCmd.Flags().Bool(key, false, util.WrapString("Whether the book has been read"))

	key = "field"
	searchCmd.Flags().StringP(key, "f", string(query.FieldTitle), util.WrapString("Field to search in (title, author, genre)"))
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func setReadStatus(cmd *cobra.Command, arg string, read bool) error {
	index, err := parsePosition(arg)
	if err != nil {
		return err
	}
	found, err := libStore.SetReadStatus(index, read)
	if err != nil {
		return err
	}
	return report(cmd.OutOrStdout(), found, index, "marked as "+readLabel(read))
}

// parsePosition parses a position argument as shown by 'lsm book list'
func parsePosition(arg string) (int, error) {
	index, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
	if err != nil {
		return 0, fmt.Errorf("position must be a number: %w", err)
	}
	return index, nil
}

// report prints the outcome of a positional operation. A position without a
// book is a normal outcome, not an error.
func report(w io.Writer, ok bool, index int, what string) error {
	if util.JSONOutput() {
		return util.PrintJSON(w, map[string]interface{}{"index": index, "found": ok})
	}
	var err error
	if ok {
		_, err = fmt.Fprintf(w, "#%d %s\n", index, what)
	} else {
		_, err = fmt.Fprintf(w, "no book at position %d\n", index)
	}
	return err
}

func readLabel(read bool) string {
	if read {
		return "read"
	}
	return "unread"
}

// printHits renders books with their positions as a table (or json)
func printHits(w io.Writer, hits []query.Hit, empty string) error {
	if util.JSONOutput() {
		return util.PrintJSON(w, hits)
	}
	if len(hits) == 0 {
		_, err := fmt.Fprintln(w, empty)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "#\tTITLE\tAUTHOR\tYEAR\tGENRE\tSTATUS\tADDED")
	for _, hit := range hits {
		b := hit.Book
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\t%s\n",
			hit.Index, b.Title, b.Author, b.PublicationYear, b.Genre, readLabel(b.ReadStatus), b.AddedAt)
	}
	return tw.Flush()
}
