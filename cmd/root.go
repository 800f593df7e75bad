// Package cmd provides the command-line interface for the entercaptcha application.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/connorhough/entercaptcha/internal/config"
	"github.com/connorhough/entercaptcha/internal/iostreams"
	"github.com/connorhough/entercaptcha/internal/keyboard"
	"github.com/connorhough/entercaptcha/internal/logging"
	"github.com/connorhough/entercaptcha/internal/typer"
	"github.com/connorhough/entercaptcha/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// missingTextMessage is printed to stdout when no text argument is given.
const missingTextMessage = "Error: No CAPTCHA input received"

var (
	cfgFile string

	// newPlatform is replaced in tests.
	newPlatform = keyboard.New
)

// Execute builds the root command and runs it with ctx. This is called by main.go.
func Execute(ctx context.Context) error {
	return NewRootCmd(iostreams.System()).ExecuteContext(ctx)
}

// NewRootCmd creates and returns the root command for entercaptcha
func NewRootCmd(streams *iostreams.IOStreams) *cobra.Command {
	var dryRun bool

	rootCmd := &cobra.Command{
		Use:   "entercaptcha [flags] [--] <captcha_text>",
		Short: "Type a CAPTCHA answer into the focused window",
		Long: `Wait a moment for the target window to take focus, then type the given
text as simulated keystrokes and press Enter.

Keystrokes go to whichever window holds input focus when typing starts.`,
		Example: `  entercaptcha X7k2P
  entercaptcha --delay 5s --filter Terminal X7k2P
  entercaptcha -- -x7K2P`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(streams.Out, missingTextMessage)
				return typer.ErrMissingText
			}
			return cobra.MaximumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnter(cmd.Context(), streams, args[0], dryRun)
		},
	}
	// Every positional word is text to type, so cobra's "help" and
	// "completion" subcommands stay out of the way. --help still works.
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Use: "__help", Hidden: true})
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		if c.HasParent() {
			return err
		}
		return fmt.Errorf("%w (to type text starting with '-', put -- before it: entercaptcha -- -AB12)", err)
	})

	rootCmd.SetIn(streams.In)
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.ErrOut)

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default locations: $XDG_CONFIG_HOME/entercaptcha/config.yaml, ~/.config/entercaptcha/config.yaml, or ~/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	flags := rootCmd.Flags()
	flags.Duration("delay", typer.DefaultDelay, "pause before typing so the target window can take focus")
	flags.Duration("interval", typer.DefaultInterval, "pause between keystrokes")
	flags.String("submit-key", string(keyboard.KeyEnter), "key pressed after the text (enter, tab, escape, space, none)")
	flags.String("filter", "", "substring required in the active window title")
	flags.String("backend", keyboard.BackendAuto, "keystroke backend ("+strings.Join(keyboard.Backends(), ", ")+")")
	flags.BoolVar(&dryRun, "dry-run", false, "print the keystrokes instead of sending them")

	bindFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(newConfigCmd(streams))

	// PersistentPreRun handles configuration and logging initialization
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		level := viper.GetString(config.KeyLogLevel)
		if err := logging.Setup(streams.ErrOut, level); err != nil {
			// config subcommands must keep working so a bad value can be repaired
			if !isConfigCmd(cmd) {
				return err
			}
			_ = logging.Setup(streams.ErrOut, "warn")
			slog.Warn("ignoring invalid log level", "log_level", level)
		}
		return nil
	}

	return rootCmd
}

func isConfigCmd(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" && c.HasParent() {
			return true
		}
	}
	return false
}

// bindFlags ties flags to their config keys so flag > env > file > default.
func bindFlags(rootCmd *cobra.Command) {
	bindings := map[string]string{
		config.KeyDelay:        "delay",
		config.KeyInterval:     "interval",
		config.KeySubmitKey:    "submit-key",
		config.KeyWindowFilter: "filter",
		config.KeyBackend:      "backend",
	}
	for key, flag := range bindings {
		_ = viper.BindPFlag(key, rootCmd.Flags().Lookup(flag))
	}
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	config.SetDefaults()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(dir)
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix(strings.ToUpper(config.AppName))
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

func runEnter(ctx context.Context, streams *iostreams.IOStreams, text string, dryRun bool) error {
	settings, err := config.Resolve()
	if err != nil {
		return err
	}

	var platform keyboard.Platform
	if dryRun {
		// Title lookups still go to the real backend when one is available.
		titles, err := newPlatform(settings.Backend)
		if err != nil {
			if settings.WindowFilter != "" {
				return fmt.Errorf("window filter needs a keyboard backend: %w", err)
			}
			slog.Debug("no keyboard backend for dry run", "error", err)
		}
		platform = keyboard.NewRecorder(streams.Out, titles)
	} else {
		platform, err = newPlatform(settings.Backend)
		if err != nil {
			return err
		}
	}

	if streams.IsInteractive() && settings.Delay > 0 {
		fmt.Fprintf(streams.ErrOut, "Focus the target window, typing in %s...\n", settings.Delay)
	}

	return typer.Run(ctx, platform, streams.Out, text, settings.Options())
}
