package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/adapter/parser"
	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/adapter/renderer"
	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/app"
	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/logging"
	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/metrics"
)

var (
	corpusPath string
	fromStr    string
	toStr      string
)

var rootCmd = &cobra.Command{
	Use:   "message-analyser [folder]",
	Short: "Message statistics for Facebook Messenger and Discord exports",
	Long: `message-analyser reads a folder of exported conversation files
(Facebook Messenger message_N.json parts and DiscordChatExporter JSON files),
repairs their text encoding and reports when, how often and how
the participants write: weekday, hour and per-day frequency, emoji usage
and message length per participant. The folder may also be given as the
zipped export archive.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.Flags()
	flags.StringVarP(&corpusPath, "path", "p", "", "Folder with the exported JSON files")
	flags.StringVar(&fromStr, "from", "", `Start time filter (format: "YYYY-MM-DD" or "YYYY-MM-DD HH:MM")`)
	flags.StringVar(&toStr, "to", "", `End time filter (format: "YYYY-MM-DD" or "YYYY-MM-DD HH:MM")`)
	flags.StringP("output", "o", "", "Output file (default: stdout)")
	flags.StringP("format", "f", "text", `Output format: "text", "markdown", "json" or "yaml"`)
	flags.Int("window", 30, "Rolling average window in days")
	flags.Int("top-emoji", 20, "Number of most used emoji to report")
	flags.String("metadata-file", parser.DefaultMetadataFile, "Facebook export part holding the participant list")
	flags.String("metrics-file", "", "Write Prometheus metrics of the run to this textfile")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")

	v := viper.GetViper()
	setDefaults(v)
	for key, flag := range map[string]string{
		keyOutput:        "output",
		keyFormat:        "format",
		keyRollingWindow: "window",
		keyTopEmoji:      "top-emoji",
		keyMetadataFile:  "metadata-file",
		keyMetricsFile:   "metrics-file",
		keyLogLevel:      "log-level",
	} {
		cobra.CheckErr(v.BindPFlag(key, flags.Lookup(flag)))
	}
}

func configDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Clean(filepath.Join(configHome, app.ApplicationName))
}

func initConfig() {
	viper.AddConfigPath(configDir())
	viper.SetConfigType("json")
	viper.SetConfigName("config")

	viper.SetEnvPrefix(strings.ReplaceAll(strings.ToUpper(app.ApplicationName), "-", "_"))
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	viper.AutomaticEnv()

	// Silently ignore missing config file
	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", err)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	path, err := resolveCorpusPath(corpusPath, args)
	if err != nil {
		return err
	}

	s, err := loadSettings(viper.GetViper())
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	from, err := parseTime(fromStr)
	if err != nil {
		return fmt.Errorf("parsing --from: %w", err)
	}

	to, err := parseTime(toStr)
	if err != nil {
		return fmt.Errorf("parsing --to: %w", err)
	}

	// If --to is date-only, set to end of day
	if to != nil && !strings.Contains(toStr, " ") {
		endOfDay := to.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		to = &endOfDay
	}

	logger, err := logging.New(s.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	r, err := renderer.New(s.Format)
	if err != nil {
		return err
	}

	recorder := metrics.NewRecorder()
	loader := parser.NewCorpusLoader(time.Local, logger, recorder)
	loader.MetadataFile = s.MetadataFile

	svc := app.NewStatsService(loader, r, s.Aggregate, logger)

	w := cmd.OutOrStdout()
	if s.Output != "" {
		f, err := os.Create(s.Output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	start := time.Now()
	if _, err := svc.Process(path, from, to, w); err != nil {
		return err
	}
	recorder.ObserveRun(time.Since(start), time.Now())

	if s.MetricsFile != "" {
		if err := recorder.WriteTextfile(s.MetricsFile); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}

func resolveCorpusPath(flagValue string, args []string) (string, error) {
	switch {
	case len(args) == 1 && flagValue != "" && flagValue != args[0]:
		return "", fmt.Errorf("corpus folder given twice: --path %q and argument %q", flagValue, args[0])
	case len(args) == 1:
		return args[0], nil
	case flagValue != "":
		return flagValue, nil
	default:
		return "", errors.New("no corpus folder given (pass it as an argument or with --path)")
	}
}

func parseTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02",
	}

	for _, f := range formats {
		t, err := time.ParseInLocation(f, s, time.Local)
		if err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("unknown time format: %q (expected YYYY-MM-DD or YYYY-MM-DD HH:MM)", s)
}
