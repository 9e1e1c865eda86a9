package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var example bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter roman.yaml",
		Long: `Write a roman.yaml configuration file with every option and its default.

Use --example to also write a seeds/persons.yaml file and a configuration
that keeps records in SQLite.`,
		Example: `  # Initialize in current directory
  roman init

  # Initialize with sample records
  roman init --example

  # Force overwrite existing config
  roman init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			template := "minimal"
			if example {
				template = "example"
			}
			return runInit(cmd, dir, template, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	cmd.Flags().BoolVar(&example, "example", false, "Also write sample person records")

	return cmd
}

func runInit(cmd *cobra.Command, dir, template string, force bool) error {
	r := NewCommandContextWithoutStore(cmd).Renderer

	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "roman.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("roman.yaml already exists. Use --force to overwrite")
	}

	if err := copyTemplate(template, dir, force); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	files, _ := listTemplateFiles(template)
	for _, f := range files {
		r.Println("  created " + f)
	}

	r.Println("")
	r.Println("Next steps:")
	r.Println("  roman convert MCMXCIV      Convert a value")
	if template == "example" {
		r.Println("  roman names seed seeds/persons.yaml")
	}
	r.Println("  roman serve                Start the names service")
	return nil
}
