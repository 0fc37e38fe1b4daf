package cmd

import (
	"fmt"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show the resolved configuration",
		Long: `Show the configuration run and snapshot will use.

Values come from hoist.yaml in the enclosing Go module, if any. Durability
overrides are listed as scope/key pairs.`,
		Usage: "hoist status",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Root != "" {
		fmt.Fprintf(stdout, "Project: %s (%s)\n", cfg.AppName, cfg.ModulePath)
		fmt.Fprintf(stdout, "Root:    %s\n", cfg.Root)
	} else {
		fmt.Fprintln(stdout, "Project: none (defaults)")
	}
	fmt.Fprintf(stdout, "Surface: %gx%g\n", cfg.Width, cfg.Height)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Durability overrides:")
	keys := cfg.OverrideKeys()
	if len(keys) == 0 {
		fmt.Fprintln(stdout, "  none")
	}
	for _, key := range keys {
		fmt.Fprintf(stdout, "  %-24s %s\n", key, cfg.Durability[key])
	}
	return nil
}
