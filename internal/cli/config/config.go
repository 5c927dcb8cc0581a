// --- START OF FINAL REVISED FILE internal/cli/config/config.go ---
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/stackvity/folder-summary/pkg/summarizer"
	"github.com/stackvity/folder-summary/pkg/summarizer/encoding"
	"github.com/stackvity/folder-summary/pkg/summarizer/keywords"
	"github.com/stackvity/folder-summary/pkg/summarizer/report"
)

const (
	EnvPrefix         = "FOLDERSUMMARY"
	DefaultConfigName = "folder-summary"
)

// flagKeys maps command-line flag names to the configuration keys they override.
var flagKeys = map[string]string{
	"input":              "input",
	"output":             "output",
	"verbose":            "verbose",
	"output-format":      "outputFormat",
	"template":           "template",
	"stop-words":         "stopWords",
	"file-keywords":      "fileKeywords",
	"folder-keywords":    "folderKeywords",
	"min-keyword-length": "minKeywordLength",
	"default-encoding":   "defaultEncoding",
	"log-file":           "logFile",
}

// CLIOptions holds resources owned by the command layer rather than the library.
type CLIOptions struct {
	// LogSink is the rotating log file opened for --log-file, or nil.
	LogSink io.Closer
}

// Close releases the resources held by the CLI options.
func (c CLIOptions) Close() error {
	if c.LogSink == nil {
		return nil
	}
	return c.LogSink.Close()
}

// LoadAndValidate loads configuration from all sources (defaults, file, profile, env, flags),
// applies the positional [folder] [output] arguments, validates the merged
// configuration, derives absolute paths, loads stop words and the custom
// template, and sets up the logger.
//
// A missing folder or output path yields summarizer.ErrCancelledSelection;
// other problems wrap summarizer.ErrConfigValidation.
func LoadAndValidate(cfgFile, profileName, appVersion string, verbose bool, flags *pflag.FlagSet, args []string) (summarizer.Options, CLIOptions, *slog.Logger, error) {
	var opts summarizer.Options
	var cliOpts CLIOptions
	v := viper.New()

	// Initialize a temporary basic logger for early loading errors
	tempLogHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	tempLogger := slog.New(tempLogHandler)

	setDefaults(v)

	// --- Load Config File ---
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
			v.AddConfigPath(filepath.Join(home, "."+DefaultConfigName))
		} else {
			tempLogger.Debug("User home directory unavailable, searching working directory only", slog.Any("error", err))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) && cfgFile == "" {
			tempLogger.Debug("No configuration file found, using defaults/env/flags.")
		} else {
			configFileUsed := cfgFile
			if configFileUsed == "" {
				configFileUsed = fmt.Sprintf("searched locations for %s.yaml", DefaultConfigName)
			}
			tempLogger.Error("Error reading configuration file", slog.String("path", configFileUsed), slog.Any("error", err))
			return opts, cliOpts, tempLogger, fmt.Errorf("error reading config file '%s': %w", configFileUsed, err)
		}
	} else {
		opts.ConfigFilePath = v.ConfigFileUsed()
		tempLogger.Debug("Using configuration file", slog.String("path", opts.ConfigFilePath))
	}

	// --- Apply Profile ---
	opts.ProfileName = profileName
	if profileName != "" {
		profileKey := "profiles." + profileName
		profileSettings := v.Sub(profileKey)
		if profileSettings == nil {
			configPath := v.ConfigFileUsed()
			if configPath == "" {
				configPath = "(no config file found)"
			}
			err := fmt.Errorf("profile '%s' not found in config file '%s'", profileName, configPath)
			tempLogger.Error(err.Error())
			return opts, cliOpts, tempLogger, err
		}
		if err := v.MergeConfigMap(profileSettings.AllSettings()); err != nil {
			tempLogger.Error("Error merging profile", slog.String("profile", profileName), slog.Any("error", err))
			return opts, cliOpts, tempLogger, fmt.Errorf("error merging profile '%s': %w", profileName, err)
		}
		tempLogger.Debug("Applied configuration profile", slog.String("profile", profileName))
	}

	// --- Bind Environment Variables ---
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// --- Bind Flags (Highest Priority) ---
	if flags != nil {
		for flagName, key := range flagKeys {
			flag := flags.Lookup(flagName)
			if flag == nil {
				tempLogger.Debug("Flag lookup failed during binding", slog.String("flag", flagName))
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				tempLogger.Error("Error binding flag", slog.String("flag", flagName), slog.Any("error", err))
				return opts, cliOpts, tempLogger, fmt.Errorf("error binding flag '--%s': %w", flagName, err)
			}
		}
	}

	// --- Unmarshal Final Configuration ---
	opts.AppVersion = appVersion
	if err := v.Unmarshal(&opts); err != nil {
		tempLogger.Error("Error unmarshalling configuration", slog.Any("error", err))
		return opts, cliOpts, tempLogger, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	applyArgsAndFlags(&opts, flags, args)
	if verbose {
		opts.Verbose = true
	}

	// --- Setup Final Logger ---
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logHandler, sink := buildLogHandler(os.Stderr, logLevel, opts.LogFile)
	cliOpts.LogSink = sink
	logger := slog.New(logHandler)
	opts.Logger = logHandler

	if err := validateAndDeriveOptions(&opts, logger); err != nil {
		return opts, cliOpts, logger, err
	}

	logger.Debug("Configuration loading and validation complete",
		slog.String("configFile", opts.ConfigFilePath),
		slog.String("profile", opts.ProfileName),
		slog.String("input", opts.InputPath),
		slog.String("output", opts.OutputPath),
		slog.Bool("verbose", opts.Verbose),
		slog.String("logLevel", logLevel.String()),
	)
	return opts, cliOpts, logger, nil
}

// applyArgsAndFlags layers the positional arguments over the configured paths
// and applies flags whose presence alone carries meaning. An explicit -i/-o
// flag wins over the positional argument in the same slot.
func applyArgsAndFlags(opts *summarizer.Options, flags *pflag.FlagSet, args []string) {
	if len(args) > 0 && !flagChanged(flags, "input") {
		opts.InputPath = args[0]
	}
	if len(args) > 1 && !flagChanged(flags, "output") {
		opts.OutputPath = args[1]
	}
	if flagChanged(flags, "verbose") {
		opts.Verbose, _ = flags.GetBool("verbose")
	}
	if flagChanged(flags, "no-tui") {
		if noTui, _ := flags.GetBool("no-tui"); noTui {
			opts.TuiEnabled = false
		}
	}
}

func flagChanged(flags *pflag.FlagSet, name string) bool {
	return flags != nil && flags.Lookup(name) != nil && flags.Changed(name)
}

// setDefaults establishes the default values for configuration options in Viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "")
	v.SetDefault("output", "")

	// --- Keywords ---
	v.SetDefault("fileKeywords", summarizer.DefaultFileKeywords)
	v.SetDefault("folderKeywords", summarizer.DefaultFolderKeywords)
	v.SetDefault("minKeywordLength", summarizer.DefaultMinKeywordLength)
	v.SetDefault("stopWords", "")

	// --- Decoding ---
	v.SetDefault("defaultEncoding", "")

	// --- Presentation ---
	v.SetDefault("verbose", summarizer.DefaultVerbose)
	v.SetDefault("tui", summarizer.DefaultTuiEnabled)
	v.SetDefault("outputFormat", string(summarizer.DefaultOutputFormat))
	v.SetDefault("template", "")
	v.SetDefault("logFile", "")
}

// validateAndDeriveOptions performs semantic validation on the populated
// Options struct, resolves paths and loads file-based resources.
func validateAndDeriveOptions(opts *summarizer.Options, logger *slog.Logger) error {
	// === Path Validations ===
	if strings.TrimSpace(opts.InputPath) == "" {
		return fmt.Errorf("%w: no folder given ([folder] argument or --input)", summarizer.ErrCancelledSelection)
	}
	if strings.TrimSpace(opts.OutputPath) == "" {
		return fmt.Errorf("%w: no output file given ([output] argument or --output)", summarizer.ErrCancelledSelection)
	}

	absInput, err := filepath.Abs(opts.InputPath)
	if err != nil {
		err = fmt.Errorf("%w: cannot resolve absolute input path '%s': %w", summarizer.ErrConfigValidation, opts.InputPath, err)
		logger.Error(err.Error(), slog.String("key", "input"))
		return err
	}
	opts.InputPath = absInput
	info, err := os.Stat(opts.InputPath)
	if err != nil {
		if os.IsNotExist(err) {
			err = fmt.Errorf("%w: input folder '%s' does not exist", summarizer.ErrConfigValidation, opts.InputPath)
		} else {
			err = fmt.Errorf("%w: cannot access input folder '%s': %w", summarizer.ErrConfigValidation, opts.InputPath, err)
		}
		logger.Error(err.Error(), slog.String("key", "input"))
		return err
	}
	if !info.IsDir() {
		err = fmt.Errorf("%w: input path '%s' is not a directory", summarizer.ErrConfigValidation, opts.InputPath)
		logger.Error(err.Error(), slog.String("key", "input"))
		return err
	}

	output := opts.OutputPath
	if filepath.Ext(output) == "" {
		output += summarizer.DefaultReportExtension
	}
	absOutput, err := filepath.Abs(output)
	if err != nil {
		err = fmt.Errorf("%w: cannot resolve absolute output path '%s': %w", summarizer.ErrConfigValidation, opts.OutputPath, err)
		logger.Error(err.Error(), slog.String("key", "output"))
		return err
	}
	opts.OutputPath = absOutput
	if info, err := os.Stat(opts.OutputPath); err == nil && info.IsDir() {
		err = fmt.Errorf("%w: output path '%s' is a directory", summarizer.ErrConfigValidation, opts.OutputPath)
		logger.Error(err.Error(), slog.String("key", "output"))
		return err
	}
	logger.Debug("Resolved report destination", slog.String("path", opts.OutputPath), slog.String("format", string(report.FormatForPath(opts.OutputPath))))

	// === Enum String Validations ===
	allowedOutputFormat := []summarizer.OutputFormat{summarizer.OutputFormatText, summarizer.OutputFormatJSON, summarizer.OutputFormatYAML}
	if !slices.Contains(allowedOutputFormat, opts.OutputFormat) {
		err := fmt.Errorf("%w: invalid value '%s' for key 'outputFormat' (flag --output-format). Allowed: %v", summarizer.ErrConfigValidation, opts.OutputFormat, allowedOutputFormat)
		logger.Error(err.Error(), slog.String("key", "outputFormat"))
		return err
	}

	// === Numeric Range Validations ===
	numeric := []struct {
		key   string
		value int
	}{
		{"fileKeywords", opts.FileKeywords},
		{"folderKeywords", opts.FolderKeywords},
		{"minKeywordLength", opts.MinKeywordLength},
	}
	for _, n := range numeric {
		if n.value < 1 {
			err := fmt.Errorf("%w: invalid value '%d' for key '%s'. Must be >= 1", summarizer.ErrConfigValidation, n.value, n.key)
			logger.Error(err.Error(), slog.String("key", n.key), slog.Int("value", n.value))
			return err
		}
	}

	if err := encoding.ValidateEncoding(opts.DefaultEncoding); err != nil {
		err = fmt.Errorf("%w: %w", summarizer.ErrConfigValidation, err)
		logger.Error(err.Error(), slog.String("key", "defaultEncoding"))
		return err
	}

	// === File-based resources ===
	if opts.StopWordsPath != "" {
		stop, err := keywords.LoadStopWords(opts.StopWordsPath)
		if err != nil {
			err = fmt.Errorf("%w: %w", summarizer.ErrConfigValidation, err)
			logger.Error(err.Error(), slog.String("key", "stopWords"))
			return err
		}
		opts.StopWords = stop
		logger.Debug("Loaded stop words", slog.String("path", opts.StopWordsPath), slog.Int("count", stop.Len()))
	}

	if opts.TemplatePath != "" {
		absTplPath, err := filepath.Abs(opts.TemplatePath)
		if err != nil {
			err = fmt.Errorf("%w: cannot resolve template path '%s': %w", summarizer.ErrConfigValidation, opts.TemplatePath, err)
			logger.Error(err.Error(), slog.String("key", "template"))
			return err
		}
		opts.TemplatePath = absTplPath
		tmpl, err := report.LoadTemplateFile(opts.TemplatePath)
		if err != nil {
			err = fmt.Errorf("%w: %w", summarizer.ErrConfigValidation, err)
			logger.Error(err.Error(), slog.String("key", "template"))
			return err
		}
		opts.Template = tmpl
		logger.Debug("Loaded custom template", slog.String("path", opts.TemplatePath))
	}

	// Verbose output and the TUI share the terminal.
	if opts.Verbose && opts.TuiEnabled {
		logger.Debug("Verbose mode enabled, TUI disabled")
		opts.TuiEnabled = false
	}
	return nil
}

// --- END OF FINAL REVISED FILE internal/cli/config/config.go ---
