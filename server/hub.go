package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/burntcarrot/stylepad/commons"
	"github.com/burntcarrot/stylepad/document"
	"github.com/burntcarrot/stylepad/render"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// envelope is a message together with the connection it came from.
type envelope struct {
	conn *websocket.Conn
	msg  commons.Message
}

// hub owns the shared document and every viewer connection.
// Only run writes to connections.
type hub struct {
	// Upgrader instance to upgrade all HTTP connections to a WebSocket.
	upgrader websocket.Upgrader

	// Map to store currently active client connections.
	mu            sync.Mutex
	activeClients map[*websocket.Conn]uuid.UUID

	// Channel for client messages.
	messageChan chan envelope

	// Closed once run returns.
	done chan struct{}

	doc      *document.Document
	out      bytes.Buffer
	renderer *render.Renderer
	logger   logrus.FieldLogger
}

func newHub(doc *document.Document, width int, logger logrus.FieldLogger) *hub {
	h := &hub{
		activeClients: make(map[*websocket.Conn]uuid.UUID),
		messageChan:   make(chan envelope),
		done:          make(chan struct{}),
		doc:           doc,
		logger:        logger,
	}
	h.renderer = render.New(&h.out,
		render.WithColor(false),
		render.WithWidth(render.FixedWidth(width)),
		render.WithLogger(logger),
	)
	return h
}

// handleConn handles incoming HTTP connections by adding the connection to activeClients and reads messages from the connection.
func (h *hub) handleConn(w http.ResponseWriter, r *http.Request) {
	// Upgrade incoming HTTP connections to WebSocket connections
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Error("failed to upgrade connection to websocket")
		return
	}
	defer conn.Close()

	// Generate a UUID for the client.
	id := uuid.New()
	h.mu.Lock()
	h.activeClients[conn] = id
	viewers := len(h.activeClients)
	h.mu.Unlock()

	h.logger.WithField("client", id).Info("client connected")
	if !h.enqueue(r.Context(), envelope{msg: commons.Message{Type: commons.JoinMessage, ID: id, Text: fmt.Sprint(viewers)}}) {
		h.removeClient(conn)
		return
	}

	for {
		var msg commons.Message

		// Read message from the connection.
		if err := conn.ReadJSON(&msg); err != nil {
			h.logger.WithField("client", id).Info("closing connection")
			h.removeClient(conn)
			return
		}

		// Set message ID
		msg.ID = id

		if !h.enqueue(r.Context(), envelope{conn: conn, msg: msg}) {
			h.logger.WithField("client", id).Info("hub stopped, closing connection")
			h.removeClient(conn)
			return
		}
	}
}

// enqueue hands env to run. It returns false if run has stopped or ctx is done first.
func (h *hub) enqueue(ctx context.Context, env envelope) bool {
	select {
	case h.messageChan <- env:
		return true
	case <-h.done:
		return false
	case <-ctx.Done():
		return false
	}
}

// run processes messages one at a time until ctx is done.
func (h *hub) run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			return
		case env := <-h.messageChan:
			h.handleMsg(env)
		}
	}
}

// handleMsg applies a message to the document and answers it.
func (h *hub) handleMsg(env envelope) {
	msg := env.msg
	logger := h.logger.WithFields(logrus.Fields{"client": msg.ID, "type": msg.Type})

	switch msg.Type {
	case commons.JoinMessage:
		// Joins are only announced by handleConn, which sends them without a connection.
		if env.conn != nil {
			logger.Warn("rejected join sent by a client")
			h.send(env.conn, commons.Message{Type: commons.ErrorMessage, ID: msg.ID, Text: "join messages are sent by the server"})
			return
		}
		logger.Debug("broadcasting join")
		h.broadcast(msg)

	case commons.DocReqMessage:
		logger.Debug("sending document")
		h.send(env.conn, h.syncMessage(msg.ID))

	case commons.InsertMessage:
		symbol, attrs, err := msg.Operation.Decode()
		if err != nil {
			logger.WithError(err).Warn("rejected insert")
			h.send(env.conn, commons.Message{Type: commons.ErrorMessage, ID: msg.ID, Text: err.Error()})
			return
		}

		h.doc.InsertAttributes(symbol, msg.Operation.Position, attrs)
		logger.WithField("symbol", string(symbol)).Info("remote insert")
		h.broadcast(h.syncMessage(msg.ID))

	default:
		logger.Warn("unknown message type")
		h.send(env.conn, commons.Message{Type: commons.ErrorMessage, ID: msg.ID, Text: fmt.Sprintf("unknown message type %q", msg.Type)})
	}
}

// syncMessage builds a docSync message holding the current state of the document.
func (h *hub) syncMessage(id uuid.UUID) commons.Message {
	h.out.Reset()
	if err := h.renderer.Render(h.doc); err != nil {
		h.logger.WithError(err).Error("failed to render document")
	}

	return commons.Message{
		Type:       commons.DocSyncMessage,
		ID:         id,
		DocumentID: h.doc.ID(),
		Text:       h.out.String(),
		Entries:    commons.Entries(h.doc),
	}
}

// broadcast sends msg to all active clients.
func (h *hub) broadcast(msg commons.Message) {
	h.mu.Lock()
	clients := make([]*websocket.Conn, 0, len(h.activeClients))
	for client := range h.activeClients {
		clients = append(clients, client)
	}
	h.mu.Unlock()

	for _, client := range clients {
		h.send(client, msg)
	}
}

// send writes msg to a single client, dropping the client if the write fails.
func (h *hub) send(conn *websocket.Conn, msg commons.Message) {
	if conn == nil {
		return
	}

	if err := conn.WriteJSON(msg); err != nil {
		h.logger.WithError(err).Error("failed to send message to client")
		conn.Close()
		h.removeClient(conn)
	}
}

func (h *hub) removeClient(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.activeClients, conn)
}
