package app

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"aadhaarqr/internal/aadhaar"
	"aadhaarqr/internal/crypto"
	"aadhaarqr/internal/domain"
	"aadhaarqr/internal/render"
	decodesvc "aadhaarqr/internal/services/decode"
)

// Wire bundles the services and outputs for the CLI.
type Wire struct {
	Log      *logrus.Logger
	Decode   domain.DecodeService
	Renderer render.Renderer
}

// NewLogger returns a text logger writing to out at the given level.
func NewLogger(out io.Writer, level string) (*logrus.Logger, error) {
	if out == nil {
		out = os.Stderr
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level == "" {
		level = logrus.WarnLevel.String()
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(lvl)
	return log, nil
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log, err := NewLogger(cfg.LogOut, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	format := render.FormatJSON
	if cfg.Format != "" {
		if format, err = render.ParseFormat(cfg.Format); err != nil {
			return nil, err
		}
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	svc := decodesvc.New(aadhaar.NewDecoder(), aadhaar.Classifier{}, crypto.Hasher{}, log)

	return &Wire{
		Log:      log,
		Decode:   svc,
		Renderer: render.Renderer{Format: format, Pretty: cfg.Pretty},
	}, nil
}
