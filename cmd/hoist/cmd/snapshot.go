package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

const snapshotUsage = "hoist snapshot <sample> -o FILE [--script FILE] [--size WxH]"

func init() {
	RegisterCommand(&Command{
		Name:  "snapshot",
		Short: "Render a sample to a PNG image",
		Long: `Render a sample to a PNG image, after replaying an optional script.

Flags:
  -o, --output FILE  PNG file to write (required)
  --script FILE      YAML scenario to replay first
  --size WxH         Surface size (default: hoist.yaml or 400x600)`,
		Usage: snapshotUsage,
		Run:   runSnapshot,
	})
}

func runSnapshot(args []string) error {
	opts, err := parseSessionArgs(snapshotUsage, args)
	if err != nil {
		return err
	}
	if opts.output == "" {
		return fmt.Errorf("-o is required\n\nUsage: %s", snapshotUsage)
	}
	tester, err := startSession(opts)
	if err != nil {
		return err
	}
	defer tester.Cleanup()

	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.output, err)
	}
	if err := tester.Host().RenderPNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s: %w", opts.sample, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	size := tester.Host().Size()
	log.WithField("file", opts.output).Debug("snapshot written")
	fmt.Fprintf(stdout, "Wrote %s (%gx%g)\n", opts.output, size.Width, size.Height)
	return nil
}
