package config

import (
	"context"
	"net"
	"time"

	"github.com/pion/stun"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/roomcast/roomcast-server/pkg/logger"
)

const stunTimeout = 3 * time.Second

// determineIP picks the address media workers advertise in their ICE candidates.
func (conf *Config) determineIP() (string, error) {
	if !conf.RTC.UseExternalIP {
		addresses, err := LocalIPv4Addresses()
		if err != nil {
			return "", err
		}
		return addresses[0], nil
	}

	servers := conf.RTC.STUNServers
	if len(servers) == 0 {
		servers = DefaultStunServers
	}

	var errs error
	for _, server := range servers {
		ctx, cancel := context.WithTimeout(context.Background(), stunTimeout)
		ip, err := ExternalIPv4(ctx, server)
		cancel()
		if err == nil {
			logger.Debugw("resolved external IP", "ip", ip, "stunServer", server)
			return ip, nil
		}
		errs = multierr.Append(errs, errors.Wrap(err, server))
	}
	return "", errors.Wrap(errs, "could not resolve external IP")
}

// LocalIPv4Addresses lists interface addresses, non-loopback ones first.
func LocalIPv4Addresses() ([]string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	var addresses, loopbacks []string
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip := ipNet.IP.To4()
			switch {
			case ip == nil:
			case ip.IsLoopback():
				loopbacks = append(loopbacks, ip.String())
			default:
				addresses = append(addresses, ip.String())
			}
		}
	}

	addresses = append(addresses, loopbacks...)
	if len(addresses) == 0 {
		return nil, errors.New("could not find local IP address")
	}
	return addresses, nil
}

// ExternalIPv4 asks a STUN server for the public address of this host.
func ExternalIPv4(ctx context.Context, server string) (string, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp4", server)
	if err != nil {
		return "", err
	}

	c, err := stun.NewClient(conn)
	if err != nil {
		_ = conn.Close()
		return "", err
	}
	defer c.Close()

	type result struct {
		ip  string
		err error
	}
	done := make(chan result, 1)
	err = c.Start(stun.MustBuild(stun.TransactionID, stun.BindingRequest), func(ev stun.Event) {
		if ev.Error != nil {
			done <- result{err: ev.Error}
			return
		}
		var xorAddr stun.XORMappedAddress
		if err := xorAddr.GetFrom(ev.Message); err != nil {
			done <- result{err: err}
			return
		}
		if ip := xorAddr.IP.To4(); ip != nil {
			done <- result{ip: ip.String()}
			return
		}
		done <- result{err: errors.New("STUN server returned a non IPv4 address")}
	})
	if err != nil {
		return "", err
	}

	select {
	case res := <-done:
		return res.ip, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
