//go:build wireinject
// +build wireinject

package service

import (
	"github.com/google/wire"

	"github.com/roomcast/roomcast-server/pkg/config"
	"github.com/roomcast/roomcast-server/pkg/routing"
)

func InitializeServer(conf *config.Config, currentNode *routing.LocalNode) (*RoomcastServer, error) {
	wire.Build(
		ServiceSet,
	)
	return &RoomcastServer{}, nil
}
