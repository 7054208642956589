package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"inspection-billing/internal/core/domain"
	"inspection-billing/internal/core/ports"
)

// ParserPaths names where each identifier lives in a provider payload.
// Paths are dot separated, e.g. "data.id".
type ParserPaths struct {
	EventIDPath  string
	ChargeIDPath string
	StatusPath   string

	// ChargeIDQuery, when set, names the query key that carries the charge
	// reference. The key is then mandatory and the body may only repeat it.
	// Use it for providers whose signature covers the query, not the body.
	ChargeIDQuery string
}

// DefaultParserPaths is used for providers with no explicit configuration.
var DefaultParserPaths = ParserPaths{
	EventIDPath:  "id",
	ChargeIDPath: "data.id",
	StatusPath:   "status",
}

var (
	errMissingEventID    = errors.New("payload has no event id")
	errMissingChargeRef  = errors.New("query has no charge reference")
	errChargeRefMismatch = errors.New("payload charge reference differs from query")
)

// PathParser implements ports.WebhookParser with per-provider field paths.
// Mercado Pago may deliver identifiers only in the query string, so the
// query keys "id" and "data.id" back up the event and charge paths.
type PathParser struct {
	paths map[domain.Provider]ParserPaths
}

// NewPathParser builds a parser. Missing fields in a provider's paths fall
// back to DefaultParserPaths.
func NewPathParser(paths map[domain.Provider]ParserPaths) *PathParser {
	resolved := make(map[domain.Provider]ParserPaths, len(paths))
	for p, cfg := range paths {
		if cfg.EventIDPath == "" {
			cfg.EventIDPath = DefaultParserPaths.EventIDPath
		}
		if cfg.ChargeIDPath == "" {
			cfg.ChargeIDPath = DefaultParserPaths.ChargeIDPath
		}
		if cfg.StatusPath == "" {
			cfg.StatusPath = DefaultParserPaths.StatusPath
		}
		resolved[p] = cfg
	}
	return &PathParser{paths: resolved}
}

// Parse extracts (eventID, chargeID, rawStatus) from the payload.
func (p *PathParser) Parse(provider domain.Provider, payload []byte, query url.Values) (*ports.ParsedNotification, error) {
	paths, ok := p.paths[provider]
	if !ok {
		paths = DefaultParserPaths
	}

	var body map[string]interface{}
	if len(bytes.TrimSpace(payload)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(payload))
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			return nil, fmt.Errorf("decoding payload: %w", err)
		}
	}

	out := &ports.ParsedNotification{
		EventID:   lookupString(body, paths.EventIDPath),
		ChargeID:  lookupString(body, paths.ChargeIDPath),
		RawStatus: lookupString(body, paths.StatusPath),
	}
	if out.EventID == "" {
		out.EventID = strings.TrimSpace(query.Get("id"))
	}
	if paths.ChargeIDQuery != "" {
		ref := strings.TrimSpace(query.Get(paths.ChargeIDQuery))
		if ref == "" {
			return nil, errMissingChargeRef
		}
		if out.ChargeID != "" && !strings.EqualFold(out.ChargeID, ref) {
			return nil, errChargeRefMismatch
		}
		out.ChargeID = ref
	} else if out.ChargeID == "" {
		out.ChargeID = strings.TrimSpace(query.Get("data.id"))
	}

	if out.EventID == "" {
		return nil, errMissingEventID
	}
	return out, nil
}

// lookupString walks a dotted path through nested objects. Numbers are
// rendered verbatim so large numeric ids keep every digit.
func lookupString(body map[string]interface{}, path string) string {
	if body == nil || path == "" {
		return ""
	}

	var cur interface{} = body
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return ""
		}
		cur, ok = m[key]
		if !ok {
			return ""
		}
	}

	switch v := cur.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case bool:
		return fmt.Sprintf("%t", v)
	}
	return ""
}
