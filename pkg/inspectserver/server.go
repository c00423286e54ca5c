package inspectserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/reinaldorauch/rusty-tracker/pkg/bvalue"
	"github.com/reinaldorauch/rusty-tracker/pkg/config"
	"github.com/reinaldorauch/rusty-tracker/pkg/torrent"
)

const shutdownTimeout = 5 * time.Second

// DecodeResponse is the body returned for a torrent that decoded.
type DecodeResponse struct {
	Mode     string            `json:"mode"`
	InfoHash string            `json:"info_hash,omitempty"`
	Metainfo *torrent.Metainfo `json:"metainfo"`
}

// ErrorResponse is the body returned for a rejected upload.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
}

// Server decodes uploaded .torrent files and reports the result as JSON.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	mux    *http.ServeMux
}

// New returns a Server with the /decode and /healthz routes registered.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("POST /decode", s.handleDecode)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return s
}

// Handler exposes the routes for use in tests or under another server.
func (s *Server) Handler() http.Handler { return s.mux }

// Serve accepts connections on listener until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:     s.mux,
		ReadTimeout: time.Duration(s.cfg.ReadTimeout),
	}

	errs := make(chan error, 1)
	go func() {
		errs <- httpServer.Serve(listener)
	}()
	s.logger.Info("inspect server listening", "addr", listener.Addr().String())

	select {
	case err := <-errs:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	s.logger.Info("inspect server stopped")
	return nil
}

// ListenAndServe binds cfg.Listen and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Listen, err)
	}
	return s.Serve(ctx, listener)
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit),
			})
			return
		}
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	mi, err := torrent.DecodeBytes(data)
	if err != nil {
		s.writeDecodeError(w, err)
		return
	}

	infoHash, err := torrent.InfoHash(data)
	if err != nil {
		s.logger.Warn("computing info hash", "error", err)
	}

	s.logger.Debug("decoded torrent",
		"name", mi.Name(),
		"mode", mi.Info.Mode().String(),
		"pieces", mi.PieceCount(),
		"info_hash", infoHash,
	)
	s.writeJSON(w, http.StatusOK, DecodeResponse{
		Mode:     mi.Info.Mode().String(),
		InfoHash: infoHash,
		Metainfo: mi,
	})
}

func (s *Server) writeDecodeError(w http.ResponseWriter, err error) {
	var syntaxErr *bvalue.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, bvalue.ErrEmpty) {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp := ErrorResponse{Error: err.Error()}
	var de *torrent.DecodeError
	if errors.As(err, &de) {
		resp.Kind = de.Kind.String()
		resp.Field = de.Field
	}
	var re *torrent.ResolveError
	if errors.As(err, &re) {
		s.logger.Debug("multi-file layout rejected", "error", re.MultiFile)
	}
	s.logger.Info("rejected torrent", "error", err)
	s.writeJSON(w, http.StatusUnprocessableEntity, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("writing response", "error", err)
	}
}
