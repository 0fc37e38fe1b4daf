package cmd

import (
	"fmt"
)

const runUsage = "hoist run <sample> [--script FILE] [--size WxH]"

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Mount a sample, replay a script, print the frame",
		Long: `Mount a sample, optionally replay a scenario script against it, and print
the final frame as one line per painted text.

Flags:
  --script FILE      YAML scenario to replay (tap, within, repeat,
                     reconstruct, resize, scroll steps)
  --size WxH         Surface size (default: hoist.yaml or 400x600)

Examples:
  hoist run water
  hoist run wellness --script toggle.yaml
  hoist run basics --size 600x400`,
		Usage: runUsage,
		Run:   runRun,
	})
}

func runRun(args []string) error {
	opts, err := parseSessionArgs(runUsage, args)
	if err != nil {
		return err
	}
	if opts.output != "" {
		return fmt.Errorf("run prints to stdout; use snapshot to write a file")
	}
	tester, err := startSession(opts)
	if err != nil {
		return err
	}
	defer tester.Cleanup()

	fmt.Fprint(stdout, tester.DisplayList().String())
	return nil
}
