package util

import (
	"errors"
	"fmt"
	"github.com/VictoriaMetrics/metrics"
	"github.com/joho/godotenv"
	"github.com/json-iterator/go"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/common"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/db"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/db/codec"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/db/engines/filedb"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/db/engines/memdb"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/store"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/store/lstore"
	"io"
	"strings"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50

	// AnnotationMutates marks commands that write the collection
	AnnotationMutates = "lsm/mutates"
)

var log = logger.GetLogger("cmd")

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// --------------------------------------------------------------------------
// Configuration
// --------------------------------------------------------------------------

// SetupStoreFlags adds the flags that select and configure the collection
func SetupStoreFlags(cmd *cobra.Command) {
	def := common.DefaultConfig()

	key := "file"
	cmd.PersistentFlags().String(key, def.DataFile, WrapString("Path of the file holding the book collection"))

	key = "format"
	cmd.PersistentFlags().String(key, def.Format, WrapString(fmt.Sprintf("Encoding of the collection file (%s)", strings.Join(codec.Names(), ", "))))

	key = "ephemeral"
	cmd.PersistentFlags().Bool(key, def.Ephemeral, WrapString("Keep the collection in memory only, nothing is read from or written to disk"))

	key = "log-level"
	cmd.PersistentFlags().String(key, def.LogLevel, WrapString("Level at which logs are written to stderr (debug, info, warn, error)"))

	key = "metrics"
	cmd.PersistentFlags().Bool(key, def.Metrics, WrapString("Print store metrics in Prometheus text format to stderr when the command finishes"))

	key = "recover"
	cmd.PersistentFlags().Bool(key, def.Recover, WrapString("Allow changes even if the collection file is corrupt. The corrupt content is replaced by the new collection"))

	key = "output"
	cmd.PersistentFlags().StringP(key, "o", "text", WrapString("Output format (text, json)"))
}

// InitConfig initializes configuration from .env files and environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("lsm")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's flags (including inherited ones) to viper
func BindCommandFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.InheritedFlags()); err != nil {
		return err
	}
	return viper.BindPFlags(cmd.Flags())
}

// GetConfig reads the configuration from viper
func GetConfig() common.Config {
	return common.Config{
		DataFile:  viper.GetString("file"),
		Format:    viper.GetString("format"),
		Ephemeral: viper.GetBool("ephemeral"),
		LogLevel:  viper.GetString("log-level"),
		Metrics:   viper.GetBool("metrics"),
		Recover:   viper.GetBool("recover"),
	}
}

// --------------------------------------------------------------------------
// Store construction
// --------------------------------------------------------------------------

// GetDBFactory creates the db factory based on configuration
func GetDBFactory(conf common.Config) (store.DBFactory, error) {
	if conf.Ephemeral {
		return func() db.BookDB { return memdb.NewMemDB() }, nil
	}

	c, err := codec.ByName(conf.Format)
	if err != nil {
		return nil, err
	}
	return func() db.BookDB {
		return filedb.NewFileDB(&filedb.Options{Path: conf.DataFile, Codec: c})
	}, nil
}

// OpenStore validates conf, initializes logging and loads the collection.
//
// A corrupt collection file is reported on stderr. Read-only commands go on with
// an empty collection; commands annotated with AnnotationMutates are refused
// unless conf.Recover is set, so the corrupt file is never overwritten by accident.
func OpenStore(cmd *cobra.Command, conf common.Config) (store.IStore, *metrics.Set, error) {
	if err := conf.Validate(); err != nil {
		return nil, nil, err
	}
	if err := common.InitLoggers(conf.LogLevel); err != nil {
		return nil, nil, err
	}

	factory, err := GetDBFactory(conf)
	if err != nil {
		return nil, nil, err
	}

	set := metrics.NewSet()
	s := lstore.NewLocalStore(factory, lstore.WithMetrics(set))

	if _, err := s.Load(); err != nil {
		if !errors.Is(err, store.ErrCorruptState) {
			return nil, nil, err
		}
		if IsMutating(cmd) && !conf.Recover {
			return nil, nil, fmt.Errorf("%w\nrefusing to overwrite %s, fix or move the file, or rerun with --recover to start over", err, conf.DataFile)
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		log.Debugf("continuing with an empty collection in place of %s", conf.DataFile)
	}

	return s, set, nil
}

// IsMutating reports whether cmd writes the collection
func IsMutating(cmd *cobra.Command) bool {
	return cmd.Annotations[AnnotationMutates] == "true"
}

// Mutating returns the annotation map for commands that write the collection
func Mutating() map[string]string {
	return map[string]string{AnnotationMutates: "true"}
}

// WriteMetrics prints set to the command's stderr if metrics output is enabled
func WriteMetrics(cmd *cobra.Command, conf common.Config, set *metrics.Set) {
	if !conf.Metrics || set == nil {
		return
	}
	set.WritePrometheus(cmd.ErrOrStderr())
}

// --------------------------------------------------------------------------
// Output
// --------------------------------------------------------------------------

// JSONOutput reports whether the user asked for json output
func JSONOutput() bool {
	return strings.EqualFold(viper.GetString("output"), "json")
}

// PrintJSON writes v as indented json
func PrintJSON(w io.Writer, v interface{}) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
