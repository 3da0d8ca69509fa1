package web

import (
	"context"

	wifiscanner "github.com/dogeorg/wifiscanner/pkg"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/websocket"
)

// Represents a websocket connection from a client
type WSCONN struct {
	WS   *websocket.Conn
	Stop chan bool
}

func (t *WSCONN) IsClosed() bool {
	return t.Stop == nil
}

func (t *WSCONN) Close() {
	if t.Stop != nil {
		close(t.Stop)
		t.Stop = nil
	}
}

// a new socket and the payload it is greeted with
type wsJoin struct {
	conn    *WSCONN
	initial any
}

/* WSRelay
 *
 * Pushes every completed scan session to all connected websocket
 * clients. Sockets are only touched from the Run loop: new ones
 * arrive via newWs and get their initial payload from the loop, so
 * it always precedes any broadcast, and sockets whose peer went away
 * come back via leave. Once the loop has exited, exited is closed
 * and handlers stop waiting on it.
 */
type WSRelay struct {
	socks  []*WSCONN
	relay  <-chan wifiscanner.Session
	newWs  chan wsJoin
	leave  chan *WSCONN
	done   chan struct{}
	exited chan struct{}
	log    logrus.FieldLogger
}

func NewWSRelay(relay <-chan wifiscanner.Session, log logrus.FieldLogger) *WSRelay {
	return &WSRelay{
		socks:  []*WSCONN{},
		relay:  relay,
		newWs:  make(chan wsJoin),
		leave:  make(chan *WSCONN),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
		log:    log,
	}
}

func (t *WSRelay) Run(started, stopped chan bool, stop chan context.Context) error {
	go func() {
		go func() {
			defer func() {
				for _, sock := range t.socks {
					sock.Close()
				}
				close(t.exited)
			}()
		mainloop:
			for {
				select {
				case <-t.done:
					break mainloop
				case j := <-t.newWs:
					t.AddSock(j.conn, j.initial)
				case c := <-t.leave:
					t.RemoveSock(c)
				case s, ok := <-t.relay:
					if !ok {
						break mainloop
					}
					t.Broadcast(s.View())
				}
			}
		}()

		started <- true
		<-stop
		close(t.done)
		<-t.exited
		stopped <- true
	}()
	return nil
}

func (t *WSRelay) Broadcast(v any) {
	live := t.socks[:0]
	for _, ws := range t.socks {
		if ws.IsClosed() {
			continue
		}
		if err := websocket.JSON.Send(ws.WS, v); err != nil {
			t.log.WithError(err).Debug("dropping websocket")
			ws.Close()
			continue
		}
		live = append(live, ws)
	}
	t.socks = live
}

func (t *WSRelay) AddSock(ws *WSCONN, initial any) {
	if err := websocket.JSON.Send(ws.WS, initial); err != nil {
		t.log.WithError(err).Debug("failed to send initial payload")
		ws.Close()
		return
	}
	t.socks = append(t.socks, ws)
	t.log.Debugf("accepted websocket, %d connected", len(t.socks))
}

func (t *WSRelay) RemoveSock(ws *WSCONN) {
	for i, s := range t.socks {
		if s == ws {
			t.socks = append(t.socks[:i], t.socks[i+1:]...)
			break
		}
	}
	ws.Close()
	t.log.Debugf("websocket closed by peer, %d connected", len(t.socks))
}

func (t *WSRelay) GetWSHandler(initialPayloader func() any) *websocket.Server {
	h := websocket.Server{
		Handler: func(ws *websocket.Conn) {
			stop := make(chan bool)
			conn := &WSCONN{WS: ws, Stop: stop}
			select {
			case t.newWs <- wsJoin{conn, initialPayloader()}:
			case <-t.exited:
				return
			}

			// clients never send anything; a failed read means the peer is gone
			gone := make(chan struct{})
			go func() {
				defer close(gone)
				var msg []byte
				for {
					if err := websocket.Message.Receive(ws, &msg); err != nil {
						return
					}
				}
			}()

			select {
			case <-stop: // hold the connection until stopper closes
			case <-gone:
				select {
				case t.leave <- conn:
				case <-t.exited:
				}
			}
		},
		Config: websocket.Config{Origin: nil},
	}
	return &h
}
