package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mavpath/advisor-backend/internal/middleware"
	"github.com/mavpath/advisor-backend/internal/model"
	"github.com/mavpath/advisor-backend/internal/service"
	ws "github.com/mavpath/advisor-backend/internal/websocket"
	"github.com/rs/zerolog"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins; an empty slice
// permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams the advisory chat over a WebSocket so the UI gets
// answers without polling.
type WSHandler struct {
	advisorService *service.AdvisorService
	log            zerolog.Logger
	upgrader       websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(advisorService *service.AdvisorService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		advisorService: advisorService,
		log:            log.With().Str("component", "ws_handler").Logger(),
		upgrader:       buildUpgrader(allowedOrigins),
	}
}

// AdvisorChatStream godoc
// WS /ws/v1/advisor/chat
// Each inbound frame is one advisor query; each outbound frame carries the
// answer with the laid-out calendar, or an error.
func (h *WSHandler) AdvisorChatStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	studentID := claims.UserID
	h.log.Info().Int("student_id", studentID).Msg("Advisory chat connected")

	for {
		var req ws.RequestPayload
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn().Err(err).Int("student_id", studentID).Msg("Chat read error")
			}
			return
		}

		if strings.TrimSpace(req.Message) == "" {
			h.writeFrame(conn, studentID, ws.ResponsePayload{Type: ws.TypeError, Error: "message is required"})
			continue
		}

		answer := h.advisorService.Query(c.Request.Context(), studentID, &model.QueryRequest{
			Message: req.Message,
			History: req.History,
			Setup:   req.Setup,
		})
		h.writeFrame(conn, studentID, ws.ResponsePayload{Type: ws.TypeAnswer, Answer: answer})
	}
}

func (h *WSHandler) writeFrame(conn *websocket.Conn, studentID int, frame ws.ResponsePayload) {
	if err := conn.WriteJSON(frame); err != nil {
		h.log.Warn().Err(err).Int("student_id", studentID).Msg("Chat write error")
	}
}
