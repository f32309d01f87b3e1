package commands

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
)

var (
	roomFlag = &cli.StringFlag{
		Name:     "room",
		Usage:    "id of the room",
		Required: true,
	}
	userFlag = &cli.StringFlag{
		Name:     "user",
		Usage:    "id of the user",
		Required: true,
	}
	rtcHostFlag = &cli.StringFlag{
		Name:  "host",
		Value: "ws://localhost:7880",
	}
	redisHostFlag = &cli.StringFlag{
		Name:    "redis-host",
		Usage:   "host (incl. port) to redis server",
		Value:   "localhost:6379",
		EnvVars: []string{"REDIS_HOST"},
	}
	redisPasswordFlag = &cli.StringFlag{
		Name:    "redis-password",
		EnvVars: []string{"REDIS_PASSWORD"},
	}
)

func PrintJSON(obj interface{}) {
	txt, _ := json.MarshalIndent(obj, "", "  ")
	fmt.Println(string(txt))
}
