package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saeidalz13/battleship-solo/db/sqlc"
	"github.com/saeidalz13/battleship-solo/internal/metrics"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
	"github.com/sqlc-dev/pqtype"
)

var upgrader = websocket.Upgrader{
	// good average time since this is not a high-latency operation such as video streaming
	HandshakeTimeout: time.Second * 5,

	// a 26x26 engine is a few kilobytes of json
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Replies that never change are encoded once and written as bytes
var (
	respSignalAbsent = mustEncodeReply(mc.CodeSignalAbsent, "incoming req payload must contain 'code' field", "")
	respInvalidCode  = mustEncodeReply(mc.CodeInvalidSignal, "", "invalid code in the incoming payload")
)

func mustEncodeReply(code uint8, errorDetails, message string) []byte {
	msg := mc.NewMessage[mc.NoPayload](code)
	msg.AddError(errorDetails, message)
	data, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return data
}

type RequestProcessor struct {
	sessionManager mc.SessionManager
	dbManager      *sqlc.DbManager
	metrics        *metrics.Collector
	engineOpts     []mb.EngineOption
	ipnet          net.IPNet
}

type Option func(*RequestProcessor)

// Analytics are only written when a querier is given
func WithQuerier(q sqlc.Querier) Option {
	return func(rp *RequestProcessor) {
		if q == nil {
			return
		}
		dbManager := sqlc.NewDbManager(q)
		rp.dbManager = &dbManager
	}
}

func WithMetrics(collector *metrics.Collector) Option {
	return func(rp *RequestProcessor) {
		rp.metrics = collector
	}
}

// Options passed to every engine this processor creates
func WithEngineOptions(opts ...mb.EngineOption) Option {
	return func(rp *RequestProcessor) {
		rp.engineOpts = append(rp.engineOpts, opts...)
	}
}

func NewRequestProcessor(sessionManager mc.SessionManager, opts ...Option) RequestProcessor {
	rp := RequestProcessor{
		sessionManager: sessionManager,
	}
	for _, opt := range opts {
		opt(&rp)
	}

	rp.ipnet = getServerIpNet()
	return rp
}

// Finds the first non loopback ipv4 of the host. Analytics
// rows are keyed by it. Falls back to loopback on hosts
// without one (containers, CI).
func getServerIpNet() net.IPNet {
	loopback := net.IPNet{IP: net.IPv4(127, 0, 0, 1).To4(), Mask: net.CIDRMask(32, 32)}

	ifaces, err := net.Interfaces()
	if err != nil {
		log.Println("failed to list interfaces:", err)
		return loopback
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			log.Println("failed to list addresses:", err)
			continue
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}

			if ip4 := ipnet.IP.To4(); ip4 != nil && !ip4.IsLoopback() {
				return net.IPNet{IP: ip4, Mask: net.CIDRMask(32, 32)}
			}
		}
	}

	log.Println("no external ipv4 found, using loopback for analytics")
	return loopback
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
	rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	sessionId := session.Id()
	rp.metrics.SetActiveSessions(rp.sessionManager.SessionCount())

	defer func() {
		if session.Conn() != nil {
			session.Conn().Close()
		}
		rp.sessionManager.TerminateSession(sessionId)
		rp.metrics.SetActiveSessions(rp.sessionManager.SessionCount())
		log.Printf("session terminated: %s\tduration: %s", sessionId, time.Since(session.CreatedAt()).Round(time.Second))
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if !rp.write(session, resp, mc.MessageTypeJSON) {
		return
	}

	serverPqtypeInet := pqtype.Inet{IPNet: rp.ipnet, Valid: true}

sessionLoop:
	for {
		// A WebSocket frame can be one of 6 types: text=1, binary=2, ping=9, pong=10, close=8 and continuation=0
		// https://www.rfc-editor.org/rfc/rfc6455.html#section-11.8
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			break sessionLoop
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil || signal.IsAbsent() {
			if !rp.write(session, respSignalAbsent, mc.MessageTypeBytes) {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch *signal.Code {

		// The engine is created here and handed to the client.
		// Nothing about it is kept in the session.
		case mc.CodeNewEngine:
			respMsg := NewRequest(payload).HandleNewEngine(rp.engineOpts...)
			if !respMsg.HasError() {
				rp.metrics.RecordEngineCreated()
				rp.recordAnalytics(serverPqtypeInet, func(ctx context.Context, a *sqlc.AnalyticsManager, ip pqtype.Inet) error {
					return a.IncrementEnginesCreatedCount(ctx, ip)
				})
			}

			if !rp.write(session, respMsg, mc.MessageTypeJSON) {
				break sessionLoop
			}

		// The client sends back the engine it got from the
		// previous message together with the cell to fire at.
		case mc.CodeTakeShot:
			respMsg, outcome := NewRequest(payload).HandleTakeShot()
			if !respMsg.HasError() {
				rp.recordShot(serverPqtypeInet, outcome, respMsg.Payload)
			}

			if !rp.write(session, respMsg, mc.MessageTypeJSON) {
				break sessionLoop
			}

		default:
			if !rp.write(session, respInvalidCode, mc.MessageTypeBytes) {
				break sessionLoop
			}
		}
	}
}

// Writes to the session and reports whether the session
// loop should keep going.
func (rp RequestProcessor) write(session *mc.Session, msg interface{}, msgType uint8) bool {
	err := rp.sessionManager.WriteToSessionConn(session, msg, msgType)
	return keepSessionAfterWrite(err)
}

func keepSessionAfterWrite(err error) bool {
	if err == nil {
		return true
	}

	var connErr mc.ConnErr
	if !errors.As(err, &connErr) {
		log.Println("unexpected write error:", err)
		return false
	}

	switch connErr.Code() {
	// Nothing was written, the connection itself is fine
	case mc.ConnInvalidMsgType:
		log.Println(connErr)
		return true
	default:
		log.Println(connErr)
		return false
	}
}

func (rp RequestProcessor) recordShot(ip pqtype.Inet, outcome string, resp mc.RespTakeShot) {
	rp.metrics.RecordShot(outcome)
	if outcome == metrics.ShotOutcomeIgnored {
		return
	}

	rp.recordAnalytics(ip, func(ctx context.Context, a *sqlc.AnalyticsManager, ip pqtype.Inet) error {
		return a.IncrementShotsTakenCount(ctx, ip)
	})

	if !resp.Sunk {
		return
	}
	rp.metrics.RecordShipSunk()
	rp.recordAnalytics(ip, func(ctx context.Context, a *sqlc.AnalyticsManager, ip pqtype.Inet) error {
		return a.IncrementShipsSunkCount(ctx, ip)
	})

	if resp.GameOver {
		rp.metrics.RecordGameWon()
	}
}

// Analytics failures are logged and never reach the client
func (rp RequestProcessor) recordAnalytics(ip pqtype.Inet, record func(context.Context, *sqlc.AnalyticsManager, pqtype.Inet) error) {
	if rp.dbManager == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := record(ctx, rp.dbManager.Analytics, ip); err != nil {
		log.Println(err)
	}
}
