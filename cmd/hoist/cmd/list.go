package cmd

import (
	"fmt"

	"github.com/go-drift/hoisting/pkg/samples"
)

func init() {
	RegisterCommand(&Command{
		Name:  "list",
		Short: "List the available samples",
		Long:  `List the samples that run and snapshot can mount.`,
		Usage: "hoist list",
		Run:   runList,
	})
}

func runList(args []string) error {
	for _, s := range samples.All() {
		fmt.Fprintf(stdout, "  %-10s %s\n", s.Name, s.Description)
	}
	return nil
}
