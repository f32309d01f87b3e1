// Copyright 2023 LiveKit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"errors"

	"github.com/livekit/psrpc"
)

// ErrCacheMiss is returned by Cache lookups of absent keys.
var ErrCacheMiss = errors.New("cache key does not exist")

var (
	ErrRoomIDEmpty             = psrpc.NewErrorf(psrpc.InvalidArgument, "room id cannot be empty")
	ErrUserIDEmpty             = psrpc.NewErrorf(psrpc.InvalidArgument, "user id cannot be empty")
	ErrTransportIDEmpty        = psrpc.NewErrorf(psrpc.InvalidArgument, "transport id cannot be empty")
	ErrInvalidTransportType    = psrpc.NewErrorf(psrpc.InvalidArgument, "transport type must be send or recv")
	ErrInvalidProducerType     = psrpc.NewErrorf(psrpc.InvalidArgument, "invalid producer type")
	ErrProducerKindMismatch    = psrpc.NewErrorf(psrpc.InvalidArgument, "media kind does not match producer type")
	ErrNoProducerIDs           = psrpc.NewErrorf(psrpc.InvalidArgument, "no producer ids")
	ErrRoomNotFound            = psrpc.NewErrorf(psrpc.NotFound, "requested room does not exist")
	ErrTransportNotFound       = psrpc.NewErrorf(psrpc.NotFound, "transport does not exist")
	ErrProducerNotFound        = psrpc.NewErrorf(psrpc.NotFound, "producer does not exist")
	ErrConsumerNotFound        = psrpc.NewErrorf(psrpc.NotFound, "consumer does not exist")
	ErrNoScreenShare           = psrpc.NewErrorf(psrpc.NotFound, "no active screen share")
	ErrNotRoomMember           = psrpc.NewErrorf(psrpc.PermissionDenied, "user is not a member of the room")
	ErrTransportNotOwned       = psrpc.NewErrorf(psrpc.PermissionDenied, "transport does not belong to the caller")
	ErrConsumeOwnProducer      = psrpc.NewErrorf(psrpc.PermissionDenied, "cannot consume own producer")
	ErrWrongTransportDirection = psrpc.NewErrorf(psrpc.FailedPrecondition, "transport direction does not allow this operation")
	ErrCannotConsume           = psrpc.NewErrorf(psrpc.FailedPrecondition, "router cannot consume producer with the given capabilities")
	ErrInvalidMessageType      = psrpc.NewErrorf(psrpc.InvalidArgument, "invalid message type")
	ErrUnknownMethod           = psrpc.NewErrorf(psrpc.Unimplemented, "unknown signaling method")
)

// upstreamError marks a failure of the native engine.
func upstreamError(err error) error {
	var pe psrpc.Error
	if errors.As(err, &pe) {
		return err
	}
	return psrpc.NewError(psrpc.Internal, err)
}

// cacheError marks a failure of the distributed cache.
func cacheError(err error) error {
	return psrpc.NewError(psrpc.Unavailable, err)
}

func errorCode(err error) string {
	var pe psrpc.Error
	if errors.As(err, &pe) {
		return string(pe.Code())
	}
	return string(psrpc.Unknown)
}
