// Package service wires the session store, authentication gate and AI
// gateway together for the transport layer.
package service

import (
	"go.uber.org/zap"

	"github.com/marklabs/mark/internal/auth"
	"github.com/marklabs/mark/internal/config"
	"github.com/marklabs/mark/internal/gateway"
	"github.com/marklabs/mark/internal/session"
)

type Service struct {
	cfg      *config.Config
	sessions *session.Store
	gate     *auth.Gate
	gateway  gateway.Client
	logger   *zap.Logger
}

func New(cfg *config.Config, sessions *session.Store, gate *auth.Gate, gw gateway.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cfg:      cfg,
		sessions: sessions,
		gate:     gate,
		gateway:  gw,
		logger:   logger,
	}
}
