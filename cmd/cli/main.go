package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/roomcast/roomcast-server/cmd/cli/commands"
	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/version"
)

// command line util that tests a running server
func main() {
	app := &cli.App{
		Name:    "roomcast-cli",
		Version: version.Version,
	}

	app.Commands = append(app.Commands, commands.RTCCommands...)
	app.Commands = append(app.Commands, commands.MemberCommands...)

	logger.InitFromConfig(logger.Config{Level: "info"}, "roomcast-cli")
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
