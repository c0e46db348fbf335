package main

import (
	"context"
	"os"

	"github.com/ironsheep/colorpick/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	info := cli.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	os.Exit(cli.Execute(context.Background(), info, os.Args[1:]))
}
