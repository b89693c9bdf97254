package client

import (
	"strconv"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/productscience/liquidstaking/apiconfig"
	"github.com/productscience/liquidstaking/internal/nats/server"
)

// URL is the client address of the broker described by conf.
func URL(conf apiconfig.NatsConfig) string {
	host := conf.Host
	if host == "" || host == server.DefaultHost {
		host = "127.0.0.1"
	}

	port := conf.Port
	if port == 0 {
		port = server.DefaultPort
	}
	return "nats://" + host + ":" + strconv.Itoa(port)
}

func ConnectToNats(url string, name string) (*nats.Conn, error) {
	return nats.Connect(
		url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
}
