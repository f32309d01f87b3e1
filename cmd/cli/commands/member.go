package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/roomcast/roomcast-server/pkg/config"
	"github.com/roomcast/roomcast-server/pkg/service"
)

var (
	MemberCommands = []*cli.Command{
		{
			Name:   "add-member",
			Usage:  "grants a user membership of a room in the shared cache",
			Action: addMember,
			Flags: []cli.Flag{
				roomFlag,
				userFlag,
				redisHostFlag,
				redisPasswordFlag,
				&cli.StringFlag{
					Name:  "role",
					Value: "member",
				},
				&cli.DurationFlag{
					Name:  "ttl",
					Usage: "expiry of the room's membership records, 0 keeps them",
				},
			},
		},
		{
			Name:   "remove-member",
			Usage:  "revokes a user's membership of a room",
			Action: removeMember,
			Flags: []cli.Flag{
				roomFlag,
				userFlag,
				redisHostFlag,
				redisPasswordFlag,
			},
		},
		{
			Name:   "is-member",
			Action: isMember,
			Flags: []cli.Flag{
				roomFlag,
				userFlag,
				redisHostFlag,
				redisPasswordFlag,
			},
		},
	}
)

func newCache(c *cli.Context) (service.Cache, error) {
	rc, err := service.NewRedisClient(&config.RedisConfig{
		Address:  c.String("redis-host"),
		Password: c.String("redis-password"),
	})
	if err != nil {
		return nil, err
	}
	return service.NewRedisCache(rc), nil
}

func addMember(c *cli.Context) error {
	cache, err := newCache(c)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(c.Context, 5*time.Second)
	defer cancel()

	value := fmt.Sprintf(`{"role":%q}`, c.String("role"))
	return cache.Insert(ctx, service.Record{
		Namespace: service.RoomNamespace(c.String("room")),
		Key:       c.String("user"),
		Value:     value,
		TTL:       c.Duration("ttl"),
	})
}

func removeMember(c *cli.Context) error {
	cache, err := newCache(c)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(c.Context, 5*time.Second)
	defer cancel()

	return cache.DeleteKey(ctx, service.RoomNamespace(c.String("room")), c.String("user"))
}

func isMember(c *cli.Context) error {
	cache, err := newCache(c)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(c.Context, 5*time.Second)
	defer cancel()

	ok, err := service.NewAuthorizer(cache).IsMember(ctx, c.String("room"), c.String("user"))
	if err != nil {
		return err
	}
	fmt.Println(ok)
	return nil
}
