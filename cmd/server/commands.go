package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/roomcast/roomcast-server/pkg/config"
	"github.com/roomcast/roomcast-server/pkg/routing"
)

func printPorts(c *cli.Context) error {
	conf, err := getConfig(c)
	if err != nil {
		return err
	}

	tcpPorts := []string{fmt.Sprintf("%d - HTTP service", conf.Port)}
	if conf.PrometheusPort != 0 {
		tcpPorts = append(tcpPorts, fmt.Sprintf("%d - Prometheus", conf.PrometheusPort))
	}

	udpPorts := make([]string, 0, conf.RTC.NumWorkers)
	for i := 0; i < conf.RTC.NumWorkers; i++ {
		if port := conf.RTC.WorkerPort(i); port != 0 {
			udpPorts = append(udpPorts, fmt.Sprintf("%d - ICE/UDP worker %d", port, i))
		} else {
			udpPorts = append(udpPorts, fmt.Sprintf("ephemeral - ICE/UDP worker %d", i))
		}
	}

	fmt.Println("TCP Ports")
	for _, p := range tcpPorts {
		fmt.Println(p)
	}

	fmt.Println("UDP Ports")
	for _, p := range udpPorts {
		fmt.Println(p)
	}
	return nil
}

func printConfig(c *cli.Context) error {
	conf, err := getConfig(c)
	if err != nil {
		return err
	}
	conf.Redis.Password = redact(conf.Redis.Password)

	out, err := yaml.Marshal(conf)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return strings.Repeat("*", 8)
}

func nodeStatus(c *cli.Context) error {
	url := c.String("url")
	if url == "" {
		conf, err := getConfig(c)
		if err != nil {
			return err
		}
		url = fmt.Sprintf("http://localhost:%d", conf.Port)
	}

	info, err := fetchNodeInfo(strings.TrimSuffix(url, "/") + "/healthz")
	if err != nil {
		return err
	}
	renderNodeInfo(os.Stdout, info)
	return nil
}

func fetchNodeInfo(url string) (*routing.NodeInfo, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	res, err := client.Get(url)
	if err != nil {
		return nil, errors.Wrap(err, "could not reach node")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("node is unhealthy (%d): %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	info := &routing.NodeInfo{}
	if err := json.Unmarshal(body, info); err != nil {
		return nil, errors.Wrap(err, "could not decode node info")
	}
	return info, nil
}

func renderNodeInfo(w io.Writer, info *routing.NodeInfo) {
	table := tablewriter.NewWriter(w)
	table.SetRowLine(true)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{
		"ID", "IP", "State", "Started",
		"Workers", "Rooms", "Transports", "Producers", "Consumers",
		"CPU", "Memory", "In", "Out",
	})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	row := []string{
		info.ID,
		info.IP,
		string(info.State),
		humanize.Time(time.Unix(info.StartedAt, 0)),
	}
	if s := info.Stats; s != nil {
		row = append(row,
			humanize.Comma(int64(s.NumWorkers)),
			humanize.Comma(int64(s.NumRooms)),
			humanize.Comma(int64(s.NumTransports)),
			humanize.Comma(int64(s.NumProducers)),
			humanize.Comma(int64(s.NumConsumers)),
			fmt.Sprintf("%.1f%% of %d", s.CPULoad*100, s.NumCPUs),
			fmt.Sprintf("%s / %s", humanize.Bytes(s.MemoryUsed), humanize.Bytes(s.MemoryTotal)),
			humanize.Bytes(s.BytesIn),
			humanize.Bytes(s.BytesOut),
		)
	} else {
		for len(row) < 13 {
			row = append(row, "-")
		}
	}
	table.Append(row)
	table.Render()
}

func helpVerbose(c *cli.Context) error {
	generatedFlags, err := config.GenerateCLIFlags(baseFlags, false)
	if err != nil {
		return err
	}

	c.App.Flags = append(baseFlags, generatedFlags...)
	return cli.ShowAppHelp(c)
}
