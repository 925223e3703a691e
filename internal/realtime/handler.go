package realtime

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/eventure/chat-service/internal/config"
	"github.com/eventure/chat-service/internal/model"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin restrictions live on the platform edge.
		return true
	},
}

// Handler upgrades authenticated HTTP requests to websocket connections and
// pumps inbound frames into the gateway.
type Handler struct {
	gateway      *Gateway
	jwtValidator JWTValidator
}

func NewHandler(gateway *Gateway, jwtValidator JWTValidator) *Handler {
	return &Handler{
		gateway:      gateway,
		jwtValidator: jwtValidator,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ServeHTTP")

	claims, err := h.jwtValidator.ValidateConnectToken(r.URL.Query().Get("token"))
	if err != nil {
		logger.Error(fmt.Sprintf("socket token rejected: %v", err))
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upgrade connection: %v", err))
		return
	}

	conn := newConn(model.Identity{Kind: claims.Kind, ID: claims.Subject}, ws)
	conn.Start()

	logger.Info(fmt.Sprintf("client connected: %s", conn.ID))

	h.readLoop(r, conn)
}

// readLoop is the per-connection event loop: frames are handled one at a
// time, so handlers for the same connection never interleave.
func (h *Handler) readLoop(r *http.Request, conn *Conn) {
	defer func() {
		h.gateway.Disconnect(r.Context(), conn)
		conn.Close()
	}()

	conn.ws.SetReadLimit(maxMessageSize)
	_ = conn.ws.SetReadDeadline(time.Now().Add(pongWait))
	conn.ws.SetPongHandler(func(string) error {
		return conn.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := conn.ws.ReadMessage()
		if err != nil {
			return
		}

		var envelope model.SocketEnvelope
		if err := json.Unmarshal(payload, &envelope); err != nil {
			h.gateway.emitError(conn, "invalid envelope")
			continue
		}

		h.gateway.HandleEnvelope(r.Context(), conn, envelope)
	}
}
