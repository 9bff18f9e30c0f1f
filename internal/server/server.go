package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/ghaggin/bingwa/internal/account"
	"github.com/ghaggin/bingwa/internal/config"
	"github.com/ghaggin/bingwa/internal/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Server struct {
	log    *zap.Logger
	server *http.Server
}

type Params struct {
	fx.In

	Log      *zap.Logger
	Config   *config.Config
	Sessions *middleware.SessionManager
	Accounts *account.Controller
}

func New(p Params) (*Server, error) {
	handler, err := NewHandler(p)
	if err != nil {
		return nil, err
	}

	return &Server{
		log: p.Log,
		server: &http.Server{
			Addr:              p.Config.Server.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// RegisterHooks should be invoked by fx
func RegisterHooks(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.server.Shutdown,
	})
}

func (s *Server) Start(_ context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}

	s.log.Info("listening", zap.String("addr", ln.Addr().String()))

	go func() {
		err := s.server.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("error serving http", zap.Error(err))
		}
	}()
	return nil
}
