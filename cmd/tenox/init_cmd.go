package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .tenox.yaml config file",
	Long:  `Create a .tenox.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = ".tenox.yaml"
		}

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

const defaultConfig = `# tenox configuration

verbose: false
width: 1024          # viewport width used for breakpoint prefixes
hover: false         # render elements in their hovered state
more-color: false    # resolve bg-/tc-/border- rgb(), rgba() and hex classes
no-defaults: false   # start from an empty property table

# Extra class types, merged over the built-in table.
properties:
  card-gap: gap
  pad-x: [paddingLeft, paddingRight]

# Extra breakpoints, appended to max-sm, sm, max-md, md, max-lg, lg, max-xl, xl.
breakpoints:
  - name: tablet
    min: 600
    max: 900

# Selector declarations applied after class attributes.
styles:
  nav:
    a: "tc-inherit td-none"
    ".active": "fw-600"

apply:
  base-dir: .
  include:
    - "**/*.html"
    - "**/*.xhtml"
  output-dir: dist   # empty prints documents to stdout
  dry-run: false
  output-format: summary # summary | full | json

lint:
  paths:
    - "**/*.html"
  strict: false
  output-format: issues  # issues | summary | full | json
  max-issues-per-linter: 0
  max-same-issues: 0
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
