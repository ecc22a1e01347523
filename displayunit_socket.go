package embryogen

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// socketDisplayUnit pushes draw calls to connected websocket clients as JSON
// frames, the socket-based DisplayUnit back-end SPEC_FULL.md §6 calls for.
// Grounded on niceyeti-tabular/server/server.go's publishUpdates push loop,
// generalized from that repo's SVG cell updates to draw-call frames.
type socketDisplayUnit struct {
	mu      sync.Mutex
	conns   map[*websocket.Conn]struct{}
	pending []DrawCall
	log     Logger
}

const socketWriteWait = 1 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewSocketDisplayUnit(log Logger) *socketDisplayUnit {
	if log == nil {
		log = NewNopLogger()
	}
	return &socketDisplayUnit{conns: make(map[*websocket.Conn]struct{}), log: log}
}

// ServeHTTP upgrades an incoming request to a websocket and registers the
// connection to receive future draw calls, mirroring server.go's
// serveWebsocket handler.
func (s *socketDisplayUnit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnf("socketDisplayUnit: upgrade failed: %v", err)
		return
	}
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
}

func (s *socketDisplayUnit) record(call DrawCall) {
	s.mu.Lock()
	s.pending = append(s.pending, call)
	s.mu.Unlock()
}

func (s *socketDisplayUnit) DrawPoint(id int, pos Vec3[float64], color int) {
	s.record(DrawCall{ID: id, Shape: DrawShapePoint, A: pos, Color: color})
}

func (s *socketDisplayUnit) DrawLine(id int, from, to Vec3[float64], color int) {
	s.record(DrawCall{ID: id, Shape: DrawShapeLine, A: from, B: to, Color: color})
}

func (s *socketDisplayUnit) DrawVector(id int, from, dir Vec3[float64], color int) {
	s.record(DrawCall{ID: id, Shape: DrawShapeVector, A: from, B: dir, Color: color})
}

func (s *socketDisplayUnit) DrawTriangle(id int, a, b, c Vec3[float64], color int) {
	s.record(DrawCall{ID: id, Shape: DrawShapeTriangle, A: a, B: b, C: c, Color: color})
}

func (s *socketDisplayUnit) Flush() {
	s.mu.Lock()
	calls := s.pending
	s.pending = nil
	conns := make([]*websocket.Conn, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	if len(calls) == 0 {
		return
	}
	payload, err := json.Marshal(calls)
	if err != nil {
		s.log.Errorf("socketDisplayUnit: marshal failed: %v", err)
		return
	}
	for _, c := range conns {
		c.SetWriteDeadline(time.Now().Add(socketWriteWait))
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			s.log.Warnf("socketDisplayUnit: write failed, dropping connection: %v", err)
			s.mu.Lock()
			delete(s.conns, c)
			s.mu.Unlock()
		}
	}
}

func (s *socketDisplayUnit) Tick(frame int) {
	s.record(DrawCall{ID: frame, Shape: DrawShapePoint, Color: -1})
	s.Flush()
}
