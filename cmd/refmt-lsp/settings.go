package main

import (
	"context"
	"encoding/json"
	"sync"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/signadot/refmt"
	"github.com/signadot/refmt/config"
)

// settings holds the server's layered configuration document and the
// bridge built from it. Overlays arrive from initialization options
// and workspace/didChangeConfiguration notifications.
type settings struct {
	mu     sync.RWMutex
	raw    []byte
	bridge *refmt.Bridge
	rawCfg []byte
}

func newSettings() *settings {
	return &settings{bridge: refmt.New()}
}

// snapshot returns the current bridge and per-call options encoding.
func (st *settings) snapshot() (*refmt.Bridge, []byte) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.bridge, st.rawCfg
}

// apply merges overlay onto the layered document and rebuilds the
// bridge. On failure the previous settings stay in effect.
func (st *settings) apply(overlay []byte) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	merged, err := config.MergeRaw(st.raw, overlay)
	if err != nil {
		return err
	}
	file, err := config.DecodeFile(merged)
	if err != nil {
		return err
	}
	var bOpts []refmt.Option
	if len(file.Rules) > 0 {
		bOpts = append(bOpts, refmt.WithRules(file.Rules...))
	}
	rawCfg, err := file.Config.Encode()
	if err != nil {
		return err
	}
	if string(rawCfg) == "{}" {
		rawCfg = nil
	}
	st.raw = merged
	st.bridge = refmt.New(bOpts...)
	st.rawCfg = rawCfg
	return nil
}

// applySettings feeds a decoded JSON settings value, possibly nested
// under a "refmt" section, into the layered configuration.
func (s *Server) applySettings(v any) error {
	if m, ok := v.(map[string]any); ok {
		if sub, ok := m["refmt"]; ok {
			v = sub
		}
	}
	overlay, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.settings.apply(overlay)
}

func (s *Server) DidChangeConfiguration(ctx context.Context, params *protocol.DidChangeConfigurationParams) error {
	if params.Settings == nil {
		return nil
	}
	if err := s.applySettings(params.Settings); err != nil {
		s.log.Warn("rejected configuration change", zap.Error(err))
		return nil
	}
	s.log.Info("configuration updated")

	// Settings affect what counts as a formatting error
	for _, uri := range s.docs.uris() {
		s.publishDiagnostics(ctx, uri)
	}
	return nil
}
