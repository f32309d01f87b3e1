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
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/livekit/psrpc"

	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/utils"
)

const (
	MethodCreateRouter     = "createRouter"
	MethodCreateTransport  = "createTransport"
	MethodConnectTransport = "connectTransport"
	MethodProduce          = "produce"
	MethodConsume          = "consume"
	MethodConsumeMany      = "consumeMany"
	MethodPauseConsumers   = "pauseConsumers"
	MethodResumeConsumers  = "resumeConsumers"
	MethodStopScreenShare  = "stopScreenShare"
)

// SignalService accepts client websockets on /rtc and maps their requests onto MediaService.
type SignalService struct {
	media    *MediaService
	upgrader websocket.Upgrader
}

type signalSession struct {
	roomID   string
	userID   string
	socketID string
}

func NewSignalService(media *MediaService) *SignalService {
	s := &SignalService{
		media: media,
	}

	// allow connections from any origin, since script may be hosted anywhere
	s.upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	return s
}

func (s *SignalService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := signalSession{
		roomID:   r.FormValue("room"),
		userID:   r.FormValue("user"),
		socketID: utils.NewGuid(utils.SocketPrefix),
	}
	if sess.roomID == "" || sess.userID == "" {
		handleError(w, http.StatusBadRequest, "room and user are required")
		return
	}

	// upgrade only once the basics are good to go
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warnw("could not upgrade to WS", err, "room", sess.roomID, "user", sess.userID)
		return
	}
	sigConn := NewWSSignalConnection(conn)
	log := logger.GetLogger().WithValues("room", sess.roomID, "user", sess.userID, "socket", sess.socketID)
	log.Infow("new client WS connected")

	defer func() {
		_ = sigConn.Close()
		ctx, cancel := context.WithTimeout(context.Background(), s.media.conf.OperationTimeout)
		defer cancel()
		if _, err := s.media.DisconnectUser(ctx, &DisconnectUserRequest{UserID: sess.userID, SocketID: sess.socketID}); err != nil {
			log.Warnw("could not disconnect user", err)
		}
		log.Infow("WS connection closed")
	}()

	for {
		req, _, err := sigConn.ReadRequest()
		if err == ErrInvalidMessageType {
			if _, err := sigConn.WriteResponse(errorResponse(0, err)); err != nil {
				return
			}
			continue
		}
		if err != nil {
			if IsWebSocketCloseError(err) {
				log.Debugw("exit ws read loop for closed connection")
			} else {
				log.Errorw("error reading from websocket", err)
			}
			return
		}
		if req == nil {
			continue
		}

		res := s.handleRequest(r.Context(), sess, req)
		if _, err := sigConn.WriteResponse(res); err != nil {
			log.Warnw("error writing to websocket", err)
			return
		}
	}
}

func (s *SignalService) handleRequest(ctx context.Context, sess signalSession, req *SignalRequest) *SignalResponse {
	data, err := s.dispatch(ctx, sess, req)
	if err != nil {
		logger.Debugw("signal request failed",
			"room", sess.roomID, "user", sess.userID, "method", req.Method, "error", err)
		return errorResponse(req.ID, err)
	}
	return &SignalResponse{
		ID:   req.ID,
		OK:   true,
		Data: data,
	}
}

// dispatch decodes req into the matching MediaService request. Identity always comes from the session.
func (s *SignalService) dispatch(ctx context.Context, sess signalSession, req *SignalRequest) (interface{}, error) {
	switch req.Method {
	case MethodCreateRouter:
		return s.media.CreateRouter(ctx, &CreateRouterRequest{RoomID: sess.roomID, UserID: sess.userID})

	case MethodCreateTransport:
		r := &CreateTransportRequest{}
		if err := decodeData(req.Data, r); err != nil {
			return nil, err
		}
		r.RoomID, r.UserID, r.SocketID = sess.roomID, sess.userID, sess.socketID
		return s.media.CreateTransport(ctx, r)

	case MethodConnectTransport:
		r := &ConnectTransportRequest{}
		if err := decodeData(req.Data, r); err != nil {
			return nil, err
		}
		r.RoomID, r.UserID, r.SocketID = sess.roomID, sess.userID, sess.socketID
		if err := s.media.ConnectTransport(ctx, r); err != nil {
			return nil, err
		}
		return nil, nil

	case MethodProduce:
		r := &CreateProducerRequest{}
		if err := decodeData(req.Data, r); err != nil {
			return nil, err
		}
		r.RoomID, r.UserID = sess.roomID, sess.userID
		return s.media.CreateProducer(ctx, r)

	case MethodConsume:
		r := &CreateConsumerRequest{}
		if err := decodeData(req.Data, r); err != nil {
			return nil, err
		}
		r.RoomID, r.UserID = sess.roomID, sess.userID
		return s.media.CreateConsumer(ctx, r)

	case MethodConsumeMany:
		r := &CreateConsumersRequest{}
		if err := decodeData(req.Data, r); err != nil {
			return nil, err
		}
		r.RoomID, r.UserID = sess.roomID, sess.userID
		return s.media.CreateConsumers(ctx, r)

	case MethodPauseConsumers, MethodResumeConsumers:
		r := &ConsumersRequest{}
		if err := decodeData(req.Data, r); err != nil {
			return nil, err
		}
		r.RoomID, r.UserID = sess.roomID, sess.userID
		if req.Method == MethodPauseConsumers {
			return s.media.PauseConsumers(ctx, r)
		}
		return s.media.ResumeConsumers(ctx, r)

	case MethodStopScreenShare:
		return s.media.StopScreenShare(ctx, &StopScreenShareRequest{RoomID: sess.roomID, UserID: sess.userID})

	default:
		return nil, ErrUnknownMethod
	}
}

func decodeData(data json.RawMessage, v interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return psrpc.NewError(psrpc.InvalidArgument, err)
	}
	return nil
}

func errorResponse(id uint64, err error) *SignalResponse {
	return &SignalResponse{
		ID: id,
		Error: &SignalError{
			Code:    errorCode(err),
			Message: err.Error(),
		},
	}
}

func handleError(w http.ResponseWriter, status int, msg string) {
	logger.Debugw("error handling request", "status", status, "message", msg)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
