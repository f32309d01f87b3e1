package utils

import (
	"github.com/lithammer/shortuuid/v4"
)

const (
	RouterPrefix    = "RT_"
	TransportPrefix = "TR_"
	ProducerPrefix  = "PR_"
	ConsumerPrefix  = "CO_"
	SocketPrefix    = "SK_"
	NodePrefix      = "ND_"
)

func NewGuid(prefix string) string {
	return prefix + shortuuid.New()
}
