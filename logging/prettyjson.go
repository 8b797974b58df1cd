// Package logging provides the slog handler used by the dragonhunt CLIs:
// one indented JSON object per record, readable when tailing solver runs by
// hand. It is not built for throughput.
package logging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Handler writes each record as an indented JSON object. Group names are
// flattened into dotted key prefixes, which keeps the output greppable.
type Handler struct {
	w     io.Writer
	mu    *sync.Mutex
	level slog.Leveler

	prefix string
	attrs  map[string]any
}

// NewHandler returns a Handler writing to w at the given minimum level.
// A nil level defaults to Info.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		w:     w,
		mu:    &sync.Mutex{},
		level: level,
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	obj := make(map[string]any, r.NumAttrs()+len(h.attrs)+3)
	obj["time"] = r.Time.Format(time.RFC3339Nano)
	obj["level"] = r.Level.String()
	obj["msg"] = r.Message
	for k, v := range h.attrs {
		obj[k] = v
	}
	r.Attrs(func(a slog.Attr) bool {
		h.put(obj, h.prefix, a)
		return true
	})

	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(data)
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := h.clone()
	for _, a := range attrs {
		out.put(out.attrs, out.prefix, a)
	}
	return out
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	out := h.clone()
	out.prefix = h.prefix + name + "."
	return out
}

func (h *Handler) clone() *Handler {
	attrs := make(map[string]any, len(h.attrs)+4)
	for k, v := range h.attrs {
		attrs[k] = v
	}
	return &Handler{
		w:      h.w,
		mu:     h.mu,
		level:  h.level,
		prefix: h.prefix,
		attrs:  attrs,
	}
}

func (h *Handler) put(dst map[string]any, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		sub := prefix
		if a.Key != "" {
			sub = prefix + a.Key + "."
		}
		for _, ga := range v.Group() {
			h.put(dst, sub, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	dst[prefix+a.Key] = v.Any()
}
