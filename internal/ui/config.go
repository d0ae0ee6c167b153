package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timesynx/internal/config"
	"github.com/javiermolinar/timesynx/internal/tui/theme"
	"github.com/javiermolinar/timesynx/internal/tzfmt"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  timesynx config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), config.DefaultConfigPath())
		},
	}
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	cfg.Hours.BusinessStart = promptInt(reader, out, "Business hours start (0-23)", cfg.Hours.BusinessStart)
	cfg.Hours.BusinessEnd = promptInt(reader, out, "Business hours end (1-24)", cfg.Hours.BusinessEnd)
	cfg.Hours.MinOverlap = promptInt(reader, out, "Cities that must overlap", cfg.Hours.MinOverlap)
	cfg.Hours.MaxWindows = promptInt(reader, out, "Meeting windows to suggest", cfg.Hours.MaxWindows)
	cfg.Display.Use24h = promptBool(reader, out, "Use 24-hour clocks", cfg.Display.Use24h)
	cfg.Display.HomeTimezone = promptZone(reader, out, cfg.Display.HomeTimezone)
	cfg.Share.BaseURL = promptValue(reader, out, "Share base URL", cfg.Share.BaseURL)
	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[hours]")
	fmt.Fprintf(out, "  business_start   = %d\n", cfg.Hours.BusinessStart)
	fmt.Fprintf(out, "  business_end     = %d\n", cfg.Hours.BusinessEnd)
	fmt.Fprintf(out, "  min_overlap      = %d\n", cfg.Hours.MinOverlap)
	fmt.Fprintf(out, "  max_windows      = %d\n", cfg.Hours.MaxWindows)
	fmt.Fprintln(out, "\n[display]")
	fmt.Fprintf(out, "  use_24h          = %t\n", cfg.Display.Use24h)
	if cfg.Display.HomeTimezone != "" {
		fmt.Fprintf(out, "  home_timezone    = %s\n", cfg.Display.HomeTimezone)
	}
	fmt.Fprintln(out, "\n[share]")
	fmt.Fprintf(out, "  base_url         = %s\n", cfg.Share.BaseURL)
	fmt.Fprintln(out, "\n[storage]")
	fmt.Fprintf(out, "  db_path          = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme            = %s\n", cfg.UI.Theme)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptBool(reader *bufio.Reader, out io.Writer, label string, current bool) bool {
	value := promptValue(reader, out, label+" (true/false)", strconv.FormatBool(current))
	b, err := strconv.ParseBool(value)
	if err != nil {
		fmt.Fprintf(out, "  Invalid value %q, keeping %t\n", value, current)
		return current
	}
	return b
}

func promptZone(reader *bufio.Reader, out io.Writer, current string) string {
	for {
		value := promptValue(reader, out, "Home timezone (IANA, \"none\" to clear)", current)
		if strings.EqualFold(value, "none") {
			return ""
		}
		if value == "" || tzfmt.Valid(value) {
			return value
		}
		fmt.Fprintf(out, "  Unknown timezone %q\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
