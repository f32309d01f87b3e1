package client

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/roomcast/roomcast-server/pkg/logger"
	"github.com/roomcast/roomcast-server/pkg/service"
)

// SignalClient speaks the /rtc request/response protocol as a single room member.
type SignalClient struct {
	conn   *websocket.Conn
	nextID atomic.Uint64

	lock    sync.Mutex
	pending map[uint64]chan *Response
	readErr error
	done    chan struct{}
}

type Response struct {
	ID    uint64               `json:"id"`
	OK    bool                 `json:"ok"`
	Data  json.RawMessage      `json:"data,omitempty"`
	Error *service.SignalError `json:"error,omitempty"`
}

func (r *Response) Err() error {
	if r.OK || r.Error == nil {
		return nil
	}
	return errors.Errorf("%s: %s", r.Error.Code, r.Error.Message)
}

func NewSignalClient(host string, roomID string, userID string) (*SignalClient, error) {
	u, err := url.Parse(host)
	if err != nil {
		return nil, err
	}
	u.Path = "/rtc"
	q := u.Query()
	q.Set("room", roomID)
	q.Set("user", userID)
	u.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not connect")
	}

	c := &SignalClient{
		conn:    conn,
		pending: make(map[uint64]chan *Response),
		done:    make(chan struct{}),
	}
	go c.readWorker()
	return c, nil
}

// Request sends method with data and waits for the response carrying the same id.
func (c *SignalClient) Request(ctx context.Context, method string, data interface{}) (*Response, error) {
	req := &service.SignalRequest{
		ID:     c.nextID.Inc(),
		Method: method,
	}
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		req.Data = payload
	}

	ch := make(chan *Response, 1)
	c.lock.Lock()
	if c.readErr != nil {
		err := c.readErr
		c.lock.Unlock()
		return nil, err
	}
	c.pending[req.ID] = ch
	err := c.conn.WriteJSON(req)
	c.lock.Unlock()
	if err != nil {
		c.forget(req.ID)
		return nil, err
	}

	select {
	case res := <-ch:
		return res, nil
	case <-c.done:
		return nil, c.err()
	case <-ctx.Done():
		c.forget(req.ID)
		return nil, ctx.Err()
	}
}

// Call is Request that decodes a successful response into out.
func (c *SignalClient) Call(ctx context.Context, method string, data interface{}, out interface{}) error {
	res, err := c.Request(ctx, method, data)
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		return err
	}
	if out == nil || len(res.Data) == 0 {
		return nil
	}
	return json.Unmarshal(res.Data, out)
}

func (c *SignalClient) Close() error {
	return c.conn.Close()
}

func (c *SignalClient) readWorker() {
	defer close(c.done)
	for {
		res := &Response{}
		if err := c.conn.ReadJSON(res); err != nil {
			c.lock.Lock()
			c.readErr = err
			c.lock.Unlock()
			return
		}

		c.lock.Lock()
		ch, ok := c.pending[res.ID]
		delete(c.pending, res.ID)
		c.lock.Unlock()
		if !ok {
			logger.Debugw("dropping unsolicited response", "id", res.ID)
			continue
		}
		ch <- res
	}
}

func (c *SignalClient) forget(id uint64) {
	c.lock.Lock()
	delete(c.pending, id)
	c.lock.Unlock()
}

func (c *SignalClient) err() error {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.readErr
}
