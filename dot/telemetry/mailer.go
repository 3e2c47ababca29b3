// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package telemetry

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	log "github.com/ChainSafe/log15"
	"github.com/gorilla/websocket"
)

type telemetryConnection struct {
	wsconn    *websocket.Conn
	verbosity int
	sync.Mutex
}

// Mailer can send messages to the telemetry servers.
type Mailer struct {
	logger       log.Logger
	enabled      bool
	messageQueue chan Message
	connections  []*telemetryConnection
}

func newMailer(enabled bool, logger log.Logger) *Mailer {
	return &Mailer{
		logger:       logger,
		enabled:      enabled,
		messageQueue: make(chan Message, 256),
	}
}

// BootstrapMailer sets up the mailer, the connections and
// starts the async message shipment.
func BootstrapMailer(ctx context.Context, conns []*TelemetryEndpoint, enabled bool,
	logger log.Logger) (mailer *Mailer, err error) {
	mailer = newMailer(enabled, logger)
	if !enabled {
		return mailer, nil
	}

	const (
		maxRetries = 5
		retryDelay = time.Second * 15
	)

	for _, v := range conns {
		for connAttempts := 0; connAttempts < maxRetries; connAttempts++ {
			conn, _, err := websocket.DefaultDialer.Dial(v.Endpoint, nil)
			if err != nil {
				mailer.logger.Debug("issue adding telemetry connection",
					"endpoint", v.Endpoint, "error", err)

				timer := time.NewTimer(retryDelay)
				select {
				case <-timer.C:
					continue
				case <-ctx.Done():
					timer.Stop()
					return nil, ctx.Err()
				}
			}

			mailer.connections = append(mailer.connections, &telemetryConnection{
				wsconn:    conn,
				verbosity: v.Verbosity,
			})
			break
		}
	}

	go mailer.asyncShipment(ctx)

	return mailer, nil
}

// SendMessage queues the message for shipment to the connected telemetry
// listeners. Messages are dropped if the mailer is disabled or the queue
// stays full for longer than a second.
func (m *Mailer) SendMessage(msg Message) {
	if !m.enabled {
		return
	}

	const messageTimeout = time.Second
	timer := time.NewTimer(messageTimeout)
	defer timer.Stop()

	select {
	case m.messageQueue <- msg:
	case <-timer.C:
		m.logger.Debug("timeout sending telemetry message",
			"message type", msg.messageType())
	}
}

func (m *Mailer) asyncShipment(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-m.messageQueue:
			if !ok {
				return
			}

			go m.shipTelemetryMessage(msg)
		}
	}
}

func (m *Mailer) shipTelemetryMessage(msg Message) {
	msgBytes, err := m.msgToJSON(msg)
	if err != nil {
		m.logger.Debug("issue encoding telemetry message", "error", err)
		return
	}

	for _, conn := range m.connections {
		conn.Lock()
		err = conn.wsconn.WriteMessage(websocket.TextMessage, msgBytes)
		if err != nil {
			m.logger.Debug("issue while sending telemetry message", "error", err)
		}
		conn.Unlock()
	}
}

func (m *Mailer) msgToJSON(message Message) ([]byte, error) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		return nil, err
	}

	messageMap := make(map[string]interface{})
	err = json.Unmarshal(messageBytes, &messageMap)
	if err != nil {
		return nil, err
	}

	messageMap["ts"] = time.Now()
	messageMap["msg"] = message.messageType()

	fullRes, err := json.Marshal(messageMap)
	if err != nil {
		return nil, err
	}
	return fullRes, nil
}
