package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhubert/floatchat/internal/markup"
	"github.com/zhubert/floatchat/internal/widget"
)

var (
	renderOutput string
	renderTitle  string
)

var renderCmd = &cobra.Command{
	Use:   "render [config files or instance names...]",
	Short: "Render widgets as an HTML page",
	Long: `Render one widget per argument as a standalone HTML page with the default
stylesheet and the Escape handling script. Arguments are resolved the same
way as for the terminal UI.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (default stdout)")
	renderCmd.Flags().StringVar(&renderTitle, "title", "floatchat", "Page title")
	rootCmd.AddCommand(renderCmd)
}

// layoutWidgets lays out one widget per configuration. Local widgets get an
// anchor named after their instance.
func layoutWidgets(args []string) ([]*widget.Widget, error) {
	cfgs, err := configsFromArgs(args)
	if err != nil {
		return nil, err
	}
	widgets := make([]*widget.Widget, 0, len(cfgs))
	for _, cfg := range cfgs {
		w := widget.New(cfg)
		name := cfg.InstanceName()
		anchor := func() *widget.Node { return widget.NewAnchor("anchor-"+name, name) }
		if _, err := w.CreateLayout(anchor); err != nil {
			return nil, err
		}
		widgets = append(widgets, w)
	}
	return widgets, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	widgets, err := layoutWidgets(args)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if renderOutput != "" {
		f, err := os.Create(renderOutput)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := markup.RenderPage(out, renderTitle, widgets...); err != nil {
		return fmt.Errorf("error rendering page: %w", err)
	}
	if renderOutput != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%d widgets)\n", renderOutput, len(widgets))
	}
	return nil
}
