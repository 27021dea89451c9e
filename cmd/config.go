package cmd

import (
	"fmt"
	"io"

	huh "charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/floatchat/internal/config"
	"github.com/zhubert/floatchat/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create, check and convert widget configuration files",
	Long: `Widget configuration files hold exactly the fields of one widget, in JSON
(.json) or YAML (.yaml, .yml). Unknown fields are rejected.

Available subcommands:
  validate  - Check a configuration file
  convert   - Rewrite a configuration file in another format
  init      - Create a configuration file interactively`,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigValidate,
}

var configConvertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Rewrite a configuration file in another format",
	Long: `Load a configuration file and save it again. The formats follow the file
extensions, so config.json -> config.yaml converts JSON to YAML.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigConvert,
}

var configInitCmd = &cobra.Command{
	Use:   "init <out>",
	Short: "Create a configuration file interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configConvertCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFile(args[0])
	if err != nil {
		return err
	}
	printConfig(cmd.OutOrStdout(), args[0], cfg)
	return nil
}

// printConfig writes a short summary of a valid configuration.
func printConfig(w io.Writer, path string, cfg config.InstanceConfig) {
	fmt.Fprintf(w, "%s: valid\n", path)
	fmt.Fprintf(w, "  instance:  %s\n", cfg.InstanceName())
	fmt.Fprintf(w, "  anchor:    %s\n", cfg.AnchorMode())
	fmt.Fprintf(w, "  title:     %s\n", cfg.Title())
	fmt.Fprintf(w, "  collapsed: %t\n", cfg.Collapsed())
	fmt.Fprintf(w, "  height:    %s to %s\n", cfg.MinHeight(), cfg.MaxHeight())
	if cfg.UseDefaultCSS() {
		fmt.Fprintln(w, "  classes:   default")
	} else {
		fmt.Fprintln(w, "  classes:   custom")
	}
}

func runConfigConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFile(args[0])
	if err != nil {
		return err
	}
	if err := config.SaveFile(cfg, args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[1])
	return nil
}

// initAnswers are the values collected by the init form.
type initAnswers struct {
	instanceName string
	anchorMode   string
	title        string
	icon         string
	collapsed    bool
	minHeight    string
	maxHeight    string
}

func defaultAnswers() *initAnswers {
	return &initAnswers{
		instanceName: config.NewInstanceName(),
		anchorMode:   string(config.AnchorLocal),
		title:        config.DefaultTitle,
		icon:         config.DefaultIcon,
		collapsed:    true,
		minHeight:    config.DefaultMinHeight,
		maxHeight:    config.DefaultMaxHeight,
	}
}

// fields turns the answers into configuration fields.
func (a *initAnswers) fields() config.Fields {
	return config.Fields{
		InstanceName: a.instanceName,
		AnchorMode:   config.AnchorMode(a.anchorMode),
		Collapsed:    config.Bool(a.collapsed),
		Title:        a.title,
		Icon:         a.icon,
		MinHeight:    a.minHeight,
		MaxHeight:    a.maxHeight,
	}
}

func validateLength(s string) error {
	_, err := config.ParseLength(s)
	return err
}

func newInitForm(a *initAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Instance name").
				Description("Unique on the page, no whitespace").
				Value(&a.instanceName),
			huh.NewSelect[string]().
				Title("Anchor").
				Options(
					huh.NewOption("Local (inside its anchor)", string(config.AnchorLocal)),
					huh.NewOption("Global (pinned to the viewport)", string(config.AnchorGlobal)),
				).
				Value(&a.anchorMode),
			huh.NewInput().
				Title("Title").
				Value(&a.title),
			huh.NewInput().
				Title("Icon").
				Value(&a.icon),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Start collapsed?").
				Value(&a.collapsed),
			huh.NewInput().
				Title("Min height").
				Description("e.g. 180px, 12, 30vh").
				Validate(validateLength).
				Value(&a.minHeight),
			huh.NewInput().
				Title("Max height").
				Validate(validateLength).
				Value(&a.maxHeight),
		),
	).WithTheme(ui.FormTheme()).
		WithShowHelp(true)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := args[0]
	if _, ok := config.FormatFromPath(out); !ok {
		return fmt.Errorf("%s: use a .json, .yaml or .yml file name", out)
	}

	answers := defaultAnswers()
	if err := newInitForm(answers).Run(); err != nil {
		return err
	}

	cfg, err := config.Build(answers.fields())
	if err != nil {
		return err
	}
	if err := config.SaveFile(cfg, out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
	return nil
}
