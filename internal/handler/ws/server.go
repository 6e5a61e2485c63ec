package ws

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/hub"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/service"
	"github.com/MKhiriev/go-notes-sync/internal/utils"
	"github.com/MKhiriev/go-notes-sync/models"
	"github.com/coder/websocket"
)

// Server upgrades authenticated requests into sync sessions.
type Server struct {
	services *service.Services

	originPatterns []string
	maxMessageSize int64
	ids            *utils.UUIDGenerator

	// base ends every open session on Shutdown.
	base     context.Context
	shutdown context.CancelFunc

	logger *logger.Logger
}

func NewServer(services *service.Services, serverCfg config.Server, syncCfg config.Sync, logger *logger.Logger) *Server {
	logger.Debug().Msg("websocket server created")

	base, shutdown := context.WithCancel(context.Background())

	return &Server{
		services:       services,
		originPatterns: serverCfg.AllowedOrigins,
		maxMessageSize: syncCfg.MaxMessageSize,
		ids:            utils.NewUUIDGenerator(),
		base:           base,
		shutdown:       shutdown,
		logger:         logger,
	}
}

// ServeCursorHub serves the generation 1 endpoint.
func (s *Server) ServeCursorHub(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, service.CursorHubName, s.services.CursorHub, &cursorDispatcher{sync: s.services.CursorSyncService})
}

// ServeDeviceHub serves the generation 2 endpoint.
func (s *Server) ServeDeviceHub(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, service.DeviceHubName, s.services.DeviceHub, &deviceDispatcher{sync: s.services.DeviceSyncService})
}

// Shutdown closes every open session. Hijacked connections are not tracked
// by [http.Server.Shutdown].
func (s *Server) Shutdown() {
	s.shutdown()
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request, hubName string, fanout *hub.Hub, d dispatcher) {
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		rejectedHandshakes.WithLabelValues(hubName).Inc()
		log.Error().Str("func", "Server.serve").Msg("no account id in request context")
		utils.WriteError(w, "no account id was given", http.StatusUnauthorized)
		return
	}

	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		Subprotocols:   []string{SubprotocolMsgpack, SubprotocolJSON},
		OriginPatterns: s.originPatterns,
	})
	if err != nil {
		// Accept has already answered the request
		rejectedHandshakes.WithLabelValues(hubName).Inc()
		log.Err(err).Str("func", "Server.serve").Msg("websocket upgrade failed")
		return
	}
	if s.maxMessageSize > 0 {
		wsConn.SetReadLimit(s.maxMessageSize)
	}

	session := models.Session{AccountID: accountID, ConnectionID: s.ids.Generate()}
	connLog := &logger.Logger{Logger: log.With().
		Str("hub", hubName).
		Str("account_id", session.AccountID).
		Str("connection_id", session.ConnectionID).
		Logger()}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	stop := context.AfterFunc(s.base, cancel)
	defer stop()

	codecName := SubprotocolJSON
	if wsConn.Subprotocol() == SubprotocolMsgpack {
		codecName = SubprotocolMsgpack
	}
	conn := newConn(ctx, wsConn, codecFor(wsConn.Subprotocol()), session, hubName, connLog)

	openSessions.WithLabelValues(hubName, codecName).Inc()
	defer openSessions.WithLabelValues(hubName, codecName).Dec()
	connLog.Info().Str("codec", codecName).Msg("session opened")

	err = conn.run(d, fanout.Subscribe(session.AccountID, session.ConnectionID))

	status := websocket.CloseStatus(err)
	switch {
	case status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway:
		connLog.Info().Msg("session closed by client")
	case errors.Is(err, context.Canceled):
		connLog.Info().Msg("session closed by server")
	default:
		connLog.Warn().Err(err).Msg("session closed")
	}

	_ = wsConn.Close(websocket.StatusNormalClosure, "")
}
