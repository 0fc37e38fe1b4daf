// Command hoist mounts the state hoisting samples headlessly, replays
// scripted interactions against them and prints or rasterizes the result.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/go-drift/hoisting/cmd/hoist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.WithError(err).Debug("command failed")
		os.Exit(1)
	}
}
