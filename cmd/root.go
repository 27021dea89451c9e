package cmd

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/floatchat/internal/chat"
	"github.com/zhubert/floatchat/internal/config"
	"github.com/zhubert/floatchat/internal/logger"
	"github.com/zhubert/floatchat/internal/ui"
)

var (
	debugMode             bool
	quietMode             bool
	logFile               string
	themeName             string
	notifyMode            bool
	singleMode            bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "floatchat [config files or instance names...]",
	Short: "Floating chat panels in the terminal",
	Long: `floatchat hosts floating chat widgets on a terminal page.

Each argument becomes one widget: a .json, .yaml or .yml path is loaded as a
widget configuration, anything else is the instance name of a default one.
Without arguments a locally anchored and a globally anchored sample are shown.

Press a digit to open a chat and Escape to close the most recently opened one.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logger.DefaultLogPath, "Debug log file")

	rootCmd.Flags().StringVar(&themeName, "theme", string(ui.DefaultTheme), "Color theme ("+strings.Join(themeList(), ", ")+")")
	rootCmd.Flags().BoolVar(&notifyMode, "notify", false, "Send a desktop notification when a reply finishes in an unfocused panel")
	rootCmd.Flags().BoolVar(&singleMode, "single", false, "Show only the first widget, without a panel stack")
}

func initConfig() {
	if logFile != "" {
		if err := logger.Init(logFile); err != nil {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Warning: %v\n", err)
		}
	}
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("floatchat %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("floatchat %s\n", version)
}

func themeList() []string {
	var names []string
	for _, n := range ui.ThemeNames() {
		names = append(names, string(n))
	}
	return names
}

// sampleConfigs is the page shown when no configuration is given.
func sampleConfigs() ([]config.InstanceConfig, error) {
	return loadConfigs([]config.Fields{
		{InstanceName: "sample-local", AnchorMode: config.AnchorLocal, Title: "Local chat"},
		{InstanceName: "sample-global", AnchorMode: config.AnchorGlobal, Title: "Global chat"},
	})
}

func loadConfigs(fields []config.Fields) ([]config.InstanceConfig, error) {
	cfgs := make([]config.InstanceConfig, 0, len(fields))
	for _, f := range fields {
		cfg, err := config.Build(f)
		if err != nil {
			return nil, err
		}
		cfgs = append(cfgs, cfg)
	}
	return cfgs, nil
}

// configsFromArgs resolves each argument with config.FromSource.
func configsFromArgs(args []string) ([]config.InstanceConfig, error) {
	if len(args) == 0 {
		return sampleConfigs()
	}
	cfgs := make([]config.InstanceConfig, 0, len(args))
	for _, src := range args {
		cfg, err := config.FromSource(src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src, err)
		}
		cfgs = append(cfgs, cfg)
	}
	return cfgs, nil
}

// buildModel returns the program model for the parsed flags and arguments.
// The returned close function releases it.
func buildModel(args []string) (tea.Model, func(), error) {
	name, ok := ui.ParseThemeName(themeName)
	if !ok {
		return nil, nil, fmt.Errorf("unknown theme %q (available: %s)", themeName, strings.Join(themeList(), ", "))
	}
	ui.SetTheme(name)

	cfgs, err := configsFromArgs(args)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}

	if singleMode {
		b, err := ui.NewBubble(cfgs[0], nil, nil)
		if err != nil {
			return nil, nil, err
		}
		return b, func() { b.Widget().Teardown() }, nil
	}

	a, err := ui.NewApp(ui.Options{
		Stream: chat.SampleStream,
		Notify: notifyMode,
	}, cfgs...)
	if err != nil {
		return nil, nil, err
	}
	return a, a.Close, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Ensure logger is closed on exit
	defer logger.Close()

	m, closeModel, err := buildModel(args)
	if err != nil {
		return err
	}
	defer closeModel()

	log := logger.WithComponent("cmd")
	log.Info("Starting", "version", version, "sources", len(args), "single", singleMode)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	fmt.Fprint(cmd.ErrOrStderr(), logNotice())
	return nil
}

// logNotice tells the user where debug output went once the UI has exited.
func logNotice() string {
	if quietMode || !debugMode {
		return ""
	}
	path := logger.Path()
	if path == "" {
		return ""
	}
	return "Debug log: " + path + "\n"
}
