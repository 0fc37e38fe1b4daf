package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/go-drift/hoisting/cmd/hoist/internal/config"
	"github.com/go-drift/hoisting/cmd/hoist/internal/scenario"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/samples"
	hoisttest "github.com/go-drift/hoisting/pkg/testing"
)

// loadConfig resolves hoist.yaml from the enclosing module, falling back
// to defaults outside of one.
func loadConfig() (*config.Resolved, error) {
	root, err := config.FindProjectRoot()
	if err != nil {
		log.WithError(err).Debug("using default configuration")
		return config.Defaults(), nil
	}
	return config.Resolve(root)
}

// sessionOptions are the flags shared by run and snapshot.
type sessionOptions struct {
	sample string
	script string
	size   string
	output string
}

func parseSessionArgs(usage string, args []string) (sessionOptions, error) {
	var opts sessionOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--script", "--size", "-o", "--output":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value\n\nUsage: %s", arg, usage)
			}
			i++
			switch arg {
			case "--script":
				opts.script = args[i]
			case "--size":
				opts.size = args[i]
			default:
				opts.output = args[i]
			}
		default:
			if opts.sample != "" {
				return opts, fmt.Errorf("unexpected argument %q\n\nUsage: %s", arg, usage)
			}
			opts.sample = arg
		}
	}
	if opts.sample == "" {
		return opts, fmt.Errorf("sample is required (%v)\n\nUsage: %s", samples.Names(), usage)
	}
	return opts, nil
}

// startSession mounts the sample on a tester and replays the script, if any.
// The caller must call Cleanup on the returned tester.
func startSession(opts sessionOptions) (*hoisttest.WidgetTester, error) {
	sample, ok := samples.Lookup(opts.sample)
	if !ok {
		return nil, fmt.Errorf("unknown sample %q (available: %v)", opts.sample, samples.Names())
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	size := graphics.Size{Width: cfg.Width, Height: cfg.Height}
	if opts.size != "" {
		if size, err = scenario.ParseSize(opts.size); err != nil {
			return nil, err
		}
	}

	var script *scenario.Script
	if opts.script != "" {
		if script, err = scenario.Load(opts.script); err != nil {
			return nil, err
		}
	}

	tester := hoisttest.NewWidgetTester()
	tester.SetSize(size)
	tester.SetDurability(cfg.Durability)
	tester.PumpWidget(sample.New())
	log.WithFields(log.Fields{"sample": sample.Name, "size": size}).Debug("mounted")

	if script != nil {
		err := script.Run(tester, func(i int, step scenario.Step) {
			log.WithField("step", i+1).Debug(step.Describe())
		})
		if err != nil {
			tester.Cleanup()
			return nil, err
		}
	}
	return tester, nil
}
