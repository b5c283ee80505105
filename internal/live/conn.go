package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Conn is the subset of *websocket.Conn an attached instance uses.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v any) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Serve pumps events from conn into the instance and patches back until
// either side goes away or ctx ends. Malformed or unknown events are logged
// and skipped. The caller unmounts the instance afterwards.
func (in *Instance) Serve(ctx context.Context, conn Conn) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wrote := make(chan error, 1)
	go func() {
		wrote <- in.writeLoop(ctx, conn)
	}()

	readErr := in.readLoop(conn)
	if ctx.Err() != nil {
		// the writer closed the connection under the reader
		readErr = nil
	}
	cancel()
	writeErr := <-wrote

	return errors.Join(readErr, writeErr)
}

func (in *Instance) readLoop(conn Conn) error {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				return fmt.Errorf("read event: %w", err)
			}
			return nil
		}

		var ev Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			log.Printf("live: instance %s: invalid event: %v", in.id, err)
			continue
		}
		if err := in.Dispatch(ev); err != nil {
			log.Printf("live: instance %s: %v", in.id, err)
		}
	}
}

// writeLoop closes conn on every exit so a blocked reader returns too.
func (in *Instance) writeLoop(ctx context.Context, conn Conn) error {
	defer conn.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-in.out.done:
			return nil
		case <-in.out.ready:
			for _, p := range in.out.drain() {
				if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
					return fmt.Errorf("set write deadline: %w", err)
				}
				if err := conn.WriteJSON(p); err != nil {
					return fmt.Errorf("write patch %s: %w", p.Target, err)
				}
			}
		}
	}
}
