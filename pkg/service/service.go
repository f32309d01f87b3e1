package service

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	"github.com/roomcast/roomcast-server/pkg/config"
	"github.com/roomcast/roomcast-server/pkg/engine"
	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/routing"
	"github.com/roomcast/roomcast-server/pkg/rtc"
	"github.com/roomcast/roomcast-server/pkg/rtc/types"
)

var ServiceSet = wire.NewSet(
	engine.NewWorkers,
	engine.NewTransportFactory,
	wire.Bind(new(types.TransportFactory), new(*engine.TransportFactory)),
	routing.NewWorkerPool,
	routing.NewPoolRouterFactory,
	wire.Bind(new(types.RouterFactory), new(*routing.PoolRouterFactory)),
	rtc.NewRoomRegistry,
	rtc.NewTransportRegistry,
	rtc.NewProducerRegistry,
	rtc.NewConsumerRegistry,
	rtc.NewEscalationTimers,
	rtc.NewRoomCoordinator,
	getRedisConfig,
	NewRedisClient,
	createCache,
	NewAuthorizer,
	NewMediaService,
	NewSignalService,
	NewRoomcastServer,
)

func getRedisConfig(conf *config.Config) *config.RedisConfig {
	return &conf.Redis
}

// createCache picks the shared membership cache. Without redis, membership is
// only visible to this node.
func createCache(rc redis.UniversalClient) Cache {
	if rc == nil {
		logger.Infow("redis is not configured, using in-process cache")
		return NewLocalCache()
	}
	return NewRedisCache(rc)
}
