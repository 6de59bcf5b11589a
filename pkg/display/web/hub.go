// Package web runs a debug websocket server that streams rendered frames
// and register snapshots to a browser client. It never touches core state
// directly: Broadcast, called on the caller's goroutine once per frame,
// encodes the framebuffer and a register snapshot into a fresh byte slice,
// and the hub's own goroutine only fans that payload out to whoever is
// listening.
package web

import (
	"encoding/binary"
	"net"
	"net/http"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"
	"github.com/gorilla/websocket"
)

// Snapshot is the register state broadcast alongside each frame, enough
// for a debug client to render a CPU/PPU status panel.
type Snapshot struct {
	PC, SP         uint16
	A, F           uint8
	B, C, D, E     uint8
	H, L           uint8
	LY, LCDC, STAT uint8
}

// Hub fans broadcast frames out to every connected debug client.
type Hub struct {
	Compression bool

	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan []byte

	mu       sync.Mutex
	lastHash uint64
	hasHash  bool
}

// NewHub returns a Hub with no clients connected yet.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 4),
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1 << 16,
	WriteBufferSize: 1 << 16,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ListenAndServe starts the hub's HTTP/websocket endpoint and its
// broadcast loop, both on their own goroutines. It returns once the
// listener is bound, or an error if binding fails.
func (h *Hub) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := &client{hub: h, conn: conn, send: make(chan []byte, 8)}
		h.register <- c
		go c.writePump()
		go c.readPump()
	})

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	go http.Serve(ln, mux)
	go h.run()
	return nil
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// Broadcast encodes frame and snap into one binary message and fans it
// out to every connected client, skipping the send entirely when the
// payload is byte-identical to the last frame broadcast.
func (h *Hub) Broadcast(frame *[160 * 144]uint8, snap Snapshot) error {
	payload := encode(frame, snap)

	if h.Compression {
		compressed, err := cbrotli.Encode(payload, cbrotli.WriterOptions{Quality: 6})
		if err != nil {
			return err
		}
		payload = compressed
	}

	hash := xxhash.Sum64(payload)
	h.mu.Lock()
	dup := h.hasHash && hash == h.lastHash
	h.lastHash, h.hasHash = hash, true
	h.mu.Unlock()
	if dup {
		return nil
	}

	select {
	case h.broadcast <- payload:
	default:
	}
	return nil
}

func encode(frame *[160 * 144]uint8, snap Snapshot) []byte {
	buf := make([]byte, 0, len(frame)+32)
	buf = append(buf, frame[:]...)

	regs := make([]byte, 16)
	binary.LittleEndian.PutUint16(regs[0:], snap.PC)
	binary.LittleEndian.PutUint16(regs[2:], snap.SP)
	regs[4], regs[5] = snap.A, snap.F
	regs[6], regs[7] = snap.B, snap.C
	regs[8], regs[9] = snap.D, snap.E
	regs[10], regs[11] = snap.H, snap.L
	regs[12], regs[13], regs[14] = snap.LY, snap.LCDC, snap.STAT
	return append(buf, regs...)
}
