package commands

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/roomcast/roomcast-server/cmd/cli/client"
	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
	"github.com/roomcast/roomcast-server/pkg/service"
)

var (
	RTCCommands = []*cli.Command{
		{
			Name:   "probe",
			Usage:  "joins a room over signaling, creates its router and both transports, then prints them",
			Action: probe,
			Flags: []cli.Flag{
				roomFlag,
				userFlag,
				rtcHostFlag,
				&cli.DurationFlag{
					Name:  "timeout",
					Value: 10 * time.Second,
				},
			},
		},
	}
)

type probeResult struct {
	Router        *service.CreateRouterResponse    `json:"router"`
	SendTransport *service.CreateTransportResponse `json:"sendTransport"`
	RecvTransport *service.CreateTransportResponse `json:"recvTransport"`
}

func probe(c *cli.Context) error {
	ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
	defer cancel()

	sc, err := client.NewSignalClient(c.String("host"), c.String("room"), c.String("user"))
	if err != nil {
		return err
	}
	defer sc.Close()

	res := &probeResult{
		Router:        &service.CreateRouterResponse{},
		SendTransport: &service.CreateTransportResponse{},
		RecvTransport: &service.CreateTransportResponse{},
	}
	if err := sc.Call(ctx, service.MethodCreateRouter, nil, res.Router); err != nil {
		return err
	}
	logger.Infow("router ready", "router", res.Router.RouterID, "worker", res.Router.WorkerIndex)

	for dir, out := range map[types.TransportDirection]*service.CreateTransportResponse{
		types.TransportDirectionSend: res.SendTransport,
		types.TransportDirectionRecv: res.RecvTransport,
	} {
		req := &service.CreateTransportRequest{Type: dir}
		if err := sc.Call(ctx, service.MethodCreateTransport, req, out); err != nil {
			return err
		}
		logger.Infow("transport ready", "transport", out.TransportID, "type", dir, "candidates", len(out.ICECandidates))
	}

	PrintJSON(res)
	return nil
}
