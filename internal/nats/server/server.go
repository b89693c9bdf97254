package server

import (
	"time"

	natssrv "github.com/nats-io/nats-server/v2/server"
	"github.com/pkg/errors"

	"github.com/productscience/liquidstaking/apiconfig"
	"github.com/productscience/liquidstaking/logging"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

const (
	DefaultPort = 4222
	DefaultHost = "0.0.0.0"

	readyTimeout = 5 * time.Second
)

type NatsServer interface {
	Start() error
	ClientURL() string
	Shutdown()
}

type server struct {
	conf     apiconfig.NatsConfig
	storeDir string
	ns       *natssrv.Server
}

// NewServer returns an embedded JetStream server keeping its streams in
// storeDir. A port of -1 picks a free one.
func NewServer(config apiconfig.NatsConfig, storeDir string) NatsServer {
	return &server{
		conf:     config,
		storeDir: storeDir,
	}
}

func (s *server) Start() error {
	if s.conf.Host == "" {
		s.conf.Host = DefaultHost
	}

	if s.conf.Port == 0 {
		s.conf.Port = DefaultPort
	}

	logging.Info("starting nats server", types.Messages, "port", s.conf.Port, "host", s.conf.Host, "store_dir", s.storeDir)

	opts := &natssrv.Options{
		Host:      s.conf.Host,
		Port:      s.conf.Port,
		JetStream: true,
		StoreDir:  s.storeDir,
		NoSigs:    true,
	}

	ns, err := natssrv.NewServer(opts)
	if err != nil {
		return errors.Wrap(err, "failed to create NATS server")
	}

	s.ns = ns
	go ns.Start()

	if !ns.ReadyForConnections(readyTimeout) {
		ns.Shutdown()
		return errors.Errorf("NATS server not ready after %s", readyTimeout)
	}
	return nil
}

func (s *server) ClientURL() string {
	return s.ns.ClientURL()
}

func (s *server) Shutdown() {
	if s.ns == nil {
		return
	}
	s.ns.Shutdown()
	s.ns.WaitForShutdown()
}
