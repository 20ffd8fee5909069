package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/MdialloC19/backend-IPDL/internal/infrastructure/realtime"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/chat/application/usecase"
	chat "github.com/MdialloC19/backend-IPDL/internal/pkg/chat/domain"
	repository "github.com/MdialloC19/backend-IPDL/internal/pkg/chat/persistence/repository/port"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/presentation/middleware"
)

// generalRoom is the default scope attached to notifications and discussions
// when the inbound event names no room.
const generalRoom = "general"

// ChatSocketController owns the realtime endpoint: it upgrades connections,
// dispatches inbound events in arrival order per connection, and routes each
// event to its fan-out target (one room, or every session in explicit
// broadcast mode). Chat messages are persisted before any emission; a failed
// write produces an error frame to the sender only.
type ChatSocketController struct {
	hub             *realtime.Hub
	appendUC        *usecase.AppendMessageUseCase
	accessUC        *usecase.RoomAccessUseCase
	inflightTimeout time.Duration
	log             *slog.Logger
}

func NewChatSocketController(repo repository.ConversationRepository, hub *realtime.Hub, log *slog.Logger) *ChatSocketController {
	if log == nil {
		log = slog.Default()
	}
	return &ChatSocketController{
		hub:             hub,
		appendUC:        usecase.NewAppendMessageUseCase(repo),
		accessUC:        usecase.NewRoomAccessUseCase(repo),
		inflightTimeout: 5 * time.Second,
		log:             log,
	}
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Cross-origin clients are expected; auth happens via the token.
		return true
	},
}

// eventFrame is the wire shape for message, discussion, notification,
// subscribe and unsubscribe events, inbound and echoed outbound.
type eventFrame struct {
	Event string `json:"event"`
	Room  string `json:"room,omitempty"`
	From  string `json:"from,omitempty"`
	Text  string `json:"text,omitempty"`
}

// notificationFrame is the generic notification emitted alongside message and
// discussion events. Message carries either the originating event payload or
// a plain text, matching what clients already consume.
type notificationFrame struct {
	Event   string `json:"event"`
	Message any    `json:"message"`
	Room    string `json:"room"`
	From    string `json:"from,omitempty"`
}

type roomsFrame struct {
	Event string              `json:"event"`
	Rooms map[string][]string `json:"rooms"`
}

type errorFrame struct {
	Event string `json:"event"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

// errClientDisconnect ends the read loop for a client-initiated disconnect event.
var errClientDisconnect = errors.New("client disconnect")

const defaultReadTimeout = 60 * time.Second

// Handle upgrades HTTP connections to websocket and processes events until the
// client disconnects. The authenticated principal is bound to the connection
// at accept time and used as the sender identity for everything it emits.
func (ctl *ChatSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response.
			return
		}

		conn := realtime.NewConnection(principal.UserID, ws)
		conn.Start()
		ctl.hub.Attach(conn)
		defer func() {
			ctl.hub.Detach(conn)
			conn.Close(websocket.CloseNormalClosure, "session closed")
		}()

		ws.SetReadLimit(1 << 20)
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				return
			}

			var frame eventFrame
			if err := json.Unmarshal(data, &frame); err != nil {
				ctl.replyError(conn, "bad_request", "invalid payload")
				continue
			}

			ctx, cancel := context.WithTimeout(c.Request.Context(), ctl.inflightTimeout)
			err = ctl.Dispatch(ctx, conn, frame)
			cancel()
			if errors.Is(err, errClientDisconnect) {
				return
			}
		}
	}
}

// Dispatch routes one inbound event to its handler. Events for one session
// arrive here in order; sessions are dispatched independently of each other.
func (ctl *ChatSocketController) Dispatch(ctx context.Context, sess realtime.Session, frame eventFrame) error {
	switch frame.Event {
	case "message":
		ctl.handleMessage(ctx, sess, frame)
	case "discussion":
		ctl.handleDiscussion(ctx, sess, frame)
	case "notification":
		ctl.handleNotification(sess, frame)
	case "subscribe":
		ctl.handleSubscribe(ctx, sess, frame)
	case "unsubscribe":
		ctl.handleUnsubscribe(sess, frame)
	case "rooms":
		ctl.handleRooms(sess)
	case "disconnect":
		return errClientDisconnect
	default:
		ctl.replyError(sess, "unsupported_event", "unknown event")
	}
	return nil
}

// handleMessage persists room-scoped messages before fanning them out, and
// relays room-less messages to every session in explicit broadcast mode. In
// both cases a generic notification goes to every connected session.
func (ctl *ChatSocketController) handleMessage(ctx context.Context, sess realtime.Session, frame eventFrame) {
	frame.From = senderIdentity(sess, frame)

	if frame.Room == "" {
		payload, err := json.Marshal(frame)
		if err != nil {
			ctl.replyError(sess, "internal_error", "failed to encode message")
			return
		}
		ctl.hub.BroadcastAll(payload)
		ctl.notifyAll(frame, generalRoom, frame.From)
		return
	}

	if err := ctl.accessUC.Execute(ctx, usecase.RoomAccessInput{Room: frame.Room, UserID: sess.UserID()}); err != nil {
		ctl.replyAccessError(sess, err)
		return
	}

	// Fail closed: no emission for a message that was not durably recorded.
	_, err := ctl.appendUC.Execute(ctx, usecase.AppendMessageInput{
		Room:     frame.Room,
		SenderID: frame.From,
		Text:     frame.Text,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrPersistence) {
			ctl.log.Error("message persistence failed", "room", frame.Room, "err", err)
			ctl.replyError(sess, "storage_error", "message could not be saved")
		} else {
			ctl.replyError(sess, "bad_request", err.Error())
		}
		return
	}

	payload, err := json.Marshal(frame)
	if err != nil {
		ctl.replyError(sess, "internal_error", "failed to encode message")
		return
	}
	ctl.hub.BroadcastRoom(frame.Room, payload)
	ctl.notifyAll(frame, frame.Room, frame.From)
}

func (ctl *ChatSocketController) handleDiscussion(ctx context.Context, sess realtime.Session, frame eventFrame) {
	frame.From = senderIdentity(sess, frame)

	if frame.Room != "" {
		if payload, err := json.Marshal(frame); err == nil {
			ctl.hub.BroadcastRoom(frame.Room, payload)
		}
		ctl.notifyAll("New discussion", frame.Room, frame.From)
		return
	}

	frame.Room = generalRoom
	if payload, err := json.Marshal(frame); err == nil {
		ctl.hub.BroadcastAll(payload)
	}
	ctl.notifyAll("New discussion", generalRoom, frame.From)
}

func (ctl *ChatSocketController) handleNotification(sess realtime.Session, frame eventFrame) {
	if frame.Room != "" {
		out := notificationFrame{Event: "notification", Message: frame.Text, Room: frame.Room, From: frame.From}
		if payload, err := json.Marshal(out); err == nil {
			ctl.hub.BroadcastRoom(frame.Room, payload)
		}
		return
	}
	out := notificationFrame{Event: "notification", Message: frame.Text, Room: generalRoom, From: frame.From}
	if payload, err := json.Marshal(out); err == nil {
		ctl.hub.BroadcastAll(payload)
	}
}

func (ctl *ChatSocketController) handleSubscribe(ctx context.Context, sess realtime.Session, frame eventFrame) {
	if frame.Room == "" {
		ctl.replyError(sess, "bad_request", "room is required")
		return
	}

	if err := ctl.accessUC.Execute(ctx, usecase.RoomAccessInput{Room: frame.Room, UserID: sess.UserID()}); err != nil {
		ctl.replyAccessError(sess, err)
		return
	}

	ctl.hub.Join(frame.Room, sess)

	frame.From = sess.UserID()
	if payload, err := json.Marshal(frame); err == nil {
		ctl.hub.BroadcastRoom(frame.Room, payload)
	}
}

func (ctl *ChatSocketController) handleUnsubscribe(sess realtime.Session, frame eventFrame) {
	if frame.Room == "" {
		ctl.replyError(sess, "bad_request", "room is required")
		return
	}

	ctl.hub.Leave(frame.Room, sess)

	// Echo goes to the members still in the room; the leaver is already out.
	frame.From = sess.UserID()
	if payload, err := json.Marshal(frame); err == nil {
		ctl.hub.BroadcastRoom(frame.Room, payload)
	}
}

func (ctl *ChatSocketController) handleRooms(sess realtime.Session) {
	out := roomsFrame{Event: "rooms", Rooms: ctl.hub.Rooms()}
	if payload, err := json.Marshal(out); err == nil {
		_ = sess.Send(payload)
	}
}

// notifyAll emits the generic notification that accompanies message and
// discussion events, to every connected session.
func (ctl *ChatSocketController) notifyAll(message any, room, from string) {
	out := notificationFrame{Event: "notification", Message: message, Room: room, From: from}
	if payload, err := json.Marshal(out); err == nil {
		ctl.hub.BroadcastAll(payload)
	}
}

func (ctl *ChatSocketController) replyAccessError(sess realtime.Session, err error) {
	switch {
	case errors.Is(err, chat.ErrNotParticipant):
		ctl.replyError(sess, "forbidden", "user is not a participant of this room")
	case errors.Is(err, usecase.ErrPersistence):
		ctl.replyError(sess, "internal_error", "unexpected persistence error")
	default:
		ctl.replyError(sess, "bad_request", err.Error())
	}
}

// replyError reports a failure to the originating session only; errors are
// never broadcast.
func (ctl *ChatSocketController) replyError(sess realtime.Session, code string, message string) {
	frame := errorFrame{Event: "error", Code: code, Error: message}
	if payload, err := json.Marshal(frame); err == nil {
		_ = sess.Send(payload)
	}
}

// senderIdentity resolves the sender field of an emitted event. The connection
// principal wins over whatever the client claims.
func senderIdentity(sess realtime.Session, frame eventFrame) string {
	if id := sess.UserID(); id != "" {
		return id
	}
	return frame.From
}
