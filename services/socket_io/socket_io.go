package socket_io

import (
	"time"

	"pictocat/services/profile"
	socketio_types "pictocat/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
	"go.uber.org/zap"
)

// TokenVerifier validates the token a client sends in its handshake.
type TokenVerifier interface {
	Verify(raw string) (profile.Identity, error)
}

type MySocketServer socketio_types.SocketServer

// Start mounts the socket.io endpoint on router. Clients must send their identity token in
// the handshake auth payload under "authorization"; each socket joins its player's room.
func (sio *MySocketServer) Start(router *gin.Engine, verifier TokenVerifier, log *zap.Logger) {
	log = log.Named("socket_io")

	c := socket.DefaultServerOptions()
	c.SetServeClient(false)
	c.SetPingInterval(25 * time.Second)
	c.SetPingTimeout(20 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	if sio.UserConnections == nil {
		sio.UserConnections = make(map[string]*socket.Socket)
	}
	server := (*socketio_types.SocketServer)(sio)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		subject, ok := authenticate(client, verifier)
		if !ok {
			log.Debug("socket rejected")
			client.Emit("error", gin.H{"error": "Authentication failed: invalid or missing authorization token"})
			client.Disconnect(true)
			return
		}

		server.AddConnection(subject, client)
		client.Join(socketio_types.PlayerRoom(subject))
		log.Debug("player connected", zap.String("subject", subject))

		client.On("disconnecting", func(...interface{}) {
			server.RemoveConnection(subject, client)
			log.Debug("player disconnected", zap.String("subject", subject))
		})
	})

	handler := gin.WrapH(sio.Sio_server.ServeHandler(c))
	router.POST("/socket.io/*f", handler)
	router.GET("/socket.io/*f", handler)

	log.Info("socket server started")
}

// Close disconnects every client.
func (sio *MySocketServer) Close() {
	if sio.Sio_server != nil {
		sio.Sio_server.Close(nil)
	}
}

// Notifier exposes the hub to services.
func (sio *MySocketServer) Notifier() socketio_types.Notifier {
	return (*socketio_types.SocketServer)(sio)
}

func authenticate(client *socket.Socket, verifier TokenVerifier) (string, bool) {
	auth, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		return "", false
	}
	token, ok := auth["authorization"].(string)
	if !ok {
		return "", false
	}
	identity, err := verifier.Verify(token)
	if err != nil {
		return "", false
	}
	return identity.Subject, true
}
