// Command reflow is the CLI entry point: verify and repair production
// schedules against Work Center calendars.
package main

import (
	"fmt"
	"os"

	"github.com/example/reflow/internal/cli"
	"github.com/example/reflow/internal/config"
	"github.com/example/reflow/internal/wire"
)

func main() {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, "reflow:", err)
		os.Exit(1)
	}

	container, err := wire.Build(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "reflow:", err)
		os.Exit(1)
	}
	defer container.Close()

	root := cli.NewRootCommand(container)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "reflow:", err)
		os.Exit(1)
	}
}
