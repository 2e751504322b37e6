package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"lexlens/internal/catalog"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and validate rule catalogs",
	Long: `Rule catalogs drive the whole engine: which clause categories
exist, which keywords and patterns detect them, how clause categories
map onto risk categories, and every scoring weight and threshold.

Catalogs are validated in full before any document is analyzed.`,
}

var rulesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the built-in rule catalog as YAML",
	Long:  `Print the built-in catalog. Useful as a starting point for a custom catalog: save it, edit it, and pass it with --rules.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(catalog.Default())
		if err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

var rulesValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a rule catalog YAML file",
	Long: `Validate checks a catalog the same way the engine does at load
time: risk weights must sum to 1.0, every category needs a risk
mapping, pattern ids must be unique, and every pattern must compile.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s\n", err)
			return err
		}
		fmt.Printf("✓ %s is valid (version %s, %d categories)\n", args[0], cat.Version, len(cat.Categories))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesShowCmd)
	rulesCmd.AddCommand(rulesValidateCmd)
}
