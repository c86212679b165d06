// Package main provides the CLI entrypoint for inkwell.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"inkwell/internal/config"
	"inkwell/internal/model"
	"inkwell/internal/prompt"
	"inkwell/internal/stats"
	"inkwell/internal/store"
	"inkwell/internal/tui"
)

var (
	dbPath string

	writeGoal     int
	writeDarkMode bool

	exportStoryID int64
	exportOut     string

	clearYes bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "inkwell",
		Short:         "TUI creative writing app",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runWriteCmd,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: XDG data dir)")
	rootCmd.Flags().IntVar(&writeGoal, "goal", model.DefaultSessionGoal, "session word goal")
	rootCmd.Flags().BoolVar(&writeDarkMode, "dark-mode", false, "light-on-dark color scheme")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newPromptCmd())
	rootCmd.AddCommand(newClearCmd())

	return rootCmd
}

func resolveDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return config.DefaultDBPath()
}

// openStore hydrates the store from the local database. File config seeds
// preferences on first run only; the persisted preferences win afterwards.
func openStore(seed model.Preferences) (*store.Store, func(), error) {
	p, err := store.OpenSQLite(resolveDBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	closeFn := func() {
		if cerr := p.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}
	return store.New(p, store.WithDefaultPreferences(seed)), closeFn, nil
}

func seedPreferences(cmd *cobra.Command, fileCfg config.FileConfig) model.Preferences {
	prefs := model.DefaultPreferences()
	applyIntConfig(cmd, "goal", &writeGoal, fileCfg.Writing.SessionGoal)
	applyBoolConfig(cmd, "dark-mode", &writeDarkMode, fileCfg.Writing.DarkMode)
	prefs.SessionGoal = writeGoal
	prefs.DarkMode = writeDarkMode
	if fileCfg.Writing.AutoSave != nil {
		prefs.AutoSave = *fileCfg.Writing.AutoSave
	}
	if fileCfg.Writing.ShowWordCount != nil {
		prefs.ShowWordCount = *fileCfg.Writing.ShowWordCount
	}
	return prefs
}

func runWriteCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	st, closeStore, err := openStore(seedPreferences(cmd, fileCfg))
	if err != nil {
		return err
	}
	defer closeStore()

	program := tea.NewProgram(tui.NewModel(st, loadPrompts()), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show writing analytics",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	st, closeStore, err := openStore(model.DefaultPreferences())
	if err != nil {
		return err
	}
	defer closeStore()

	barWidth := stats.TerminalWidth() / 4
	if barWidth > 40 {
		barWidth = 40
	}
	report := stats.Report{
		Analytics: st.Analytics(),
		Stories:   st.Stories(),
		WordCount: st.StoryWordCount,
		BarWidth:  barWidth,
	}
	return report.Render(cmd.OutOrStdout())
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a story as Markdown",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	cmd.Flags().Int64Var(&exportStoryID, "story", 0, "story id to export")
	cmd.Flags().StringVar(&exportOut, "out", "", "output path (default: XDG export dir)")
	return cmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	if exportStoryID == 0 {
		return fmt.Errorf("--story is required")
	}
	st, closeStore, err := openStore(model.DefaultPreferences())
	if err != nil {
		return err
	}
	defer closeStore()

	story, ok := st.Story(exportStoryID)
	if !ok {
		return fmt.Errorf("story %d not found", exportStoryID)
	}

	outPath := exportOut
	if outPath == "" {
		outPath = filepath.Join(config.DefaultExportDir(), exportFilename(story))
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(renderMarkdown(story)), 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	logErrf("Wrote %s\n", outPath)
	return nil
}

func exportFilename(story model.Story) string {
	slug := strings.ToLower(strings.TrimSpace(story.Title))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	if slug == "" {
		slug = "story"
	}
	return fmt.Sprintf("%d-%s.md", story.ID, slug)
}

func renderMarkdown(story model.Story) string {
	var b strings.Builder
	title := story.Title
	if title == "" {
		title = "Untitled"
	}
	fmt.Fprintf(&b, "# %s\n", title)
	if story.Genre != "" {
		fmt.Fprintf(&b, "\n*%s*\n", story.Genre)
	}
	if story.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", story.Description)
	}
	for _, p := range story.Paragraphs {
		fmt.Fprintf(&b, "\n%s\n", p.Content)
	}
	return b.String()
}

// loadPrompts reads the user prompt file, falling back to the built-in set
// when it is missing or unreadable.
func loadPrompts() []string {
	path := config.DefaultPromptsPath()
	prompts, err := prompt.LoadPrompts(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logErrf("failed to load prompts from %s: %v\n", path, err)
		}
		return nil
	}
	return prompts
}

func newPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Print a writing prompt",
		Args:  cobra.NoArgs,
		RunE:  runPromptCmd,
	}
}

func runPromptCmd(cmd *cobra.Command, _ []string) error {
	p := prompt.New().Pick(loadPrompts())
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), p); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Reset all local state",
		Args:  cobra.NoArgs,
		RunE:  runClearCmd,
	}
	cmd.Flags().BoolVar(&clearYes, "yes", false, "confirm the reset")
	return cmd
}

func runClearCmd(_ *cobra.Command, _ []string) error {
	if !clearYes {
		return fmt.Errorf("refusing to clear without --yes")
	}
	st, closeStore, err := openStore(model.DefaultPreferences())
	if err != nil {
		return err
	}
	defer closeStore()
	if err := st.ClearAll(); err != nil {
		return err
	}
	logErrln("All local state cleared.")
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# inkwell configuration
# Uncomment a value to enable it. CLI flags override config values.
# Values seed preferences on first run; in-app preference changes are
# stored in the database and win afterwards.

[writing]
# session-goal = %d       # Word target per writing session
# auto-save = true        # Persist after every change
# show-word-count = true  # Live word count in the editor footer
# dark-mode = false       # Light-on-dark color scheme
`,
		model.DefaultSessionGoal,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
