package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/tenox"
	"github.com/yacobolo/tenox/internal/dom"
	"github.com/yacobolo/tenox/internal/report"
)

var explainCmd = &cobra.Command{
	Use:   "explain <class>...",
	Short: "Show how class names resolve",
	Long: `Parse each class name and print its parts, how it would be applied,
and the declarations it writes. Responsive classes are evaluated against
--width.`,
	Example: `  tenox explain p-10px md:bg-$accent hover:rotate-45deg
  tenox explain --width 500 max-sm:d-none`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runExplain,
}

func runExplain(cmd *cobra.Command, args []string) error {
	log := loggerFromConfig()
	defer func() { _ = log.Sync() }()

	reg := buildRegistry(log)
	bps, err := buildBreakpoints()
	if err != nil {
		return err
	}

	width := k.Float64("width")
	if width <= 0 {
		width = dom.DefaultWidth
	}

	r, err := tenox.NewResolver(tenox.Config{
		Registry:    reg,
		Breakpoints: bps,
		Window:      dom.NewWindow(width),
	}, tenox.WithLogger(log))
	if err != nil {
		return err
	}
	defer r.Close()

	explanations := make([]tenox.Explanation, 0, len(args))
	for _, class := range args {
		for _, c := range tenox.Fields(class) {
			explanations = append(explanations, r.Explain(c))
		}
	}

	report.PrintExplain(cmd.OutOrStdout(), explanations, report.ShouldUseColors(reportOptions()))
	return nil
}
