package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active rules configuration",
	Long: `Print the fully resolved rules configuration as YAML, after defaults
and the --config file have been applied. The output can be saved and passed
back with --config as a starting point for custom rules.

Examples:
  gemgrid rules
  gemgrid rules > my-rules.yaml
  gemgrid rules --config ./my-rules.yaml`,
	Run: runRules,
}

func runRules(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding rules: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
