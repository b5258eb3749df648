// Package sites resolves free-text locality input into carrier site ids.
// The carrier's free-text matching is inconsistent across casing and the
// presence of a postal code, so the resolver broadens the query step by
// step and stops at the first usable match.
package sites

import (
	"context"
	"strconv"
	"strings"

	"carrier-bridge/internal/domain"
	"carrier-bridge/internal/gateway/carrier"
	"carrier-bridge/internal/logx"
)

type searchGateway interface {
	CallJSON(ctx context.Context, path string, payload any, creds domain.Credentials) (carrier.Result, error)
}

type counter interface {
	Inc()
}

// Resolver turns a city name and/or postal code into a carrier site id.
type Resolver struct {
	gw       searchGateway
	logger   logx.Logger
	attempts counter
	failures counter
}

// NewResolver creates a Resolver. The counters may be nil.
func NewResolver(gw searchGateway, logger logx.Logger, attempts, failures counter) *Resolver {
	if gw == nil {
		return nil
	}
	return &Resolver{gw: gw, logger: logger, attempts: attempts, failures: failures}
}

// localityPrefixes are stripped from the city name before searching; the
// carrier's location index does not expect them.
var localityPrefixes = [...]string{"гр.", "град "}

func stripLocalityPrefix(name string) string {
	trimmed := strings.TrimSpace(name)
	for _, p := range localityPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, p))
		}
	}
	return trimmed
}

type searchQuery struct {
	Name     string
	PostCode string
}

func (q searchQuery) payload() map[string]any {
	return map[string]any{"name": q.Name, "postCode": q.PostCode}
}

// ladder is the ordered attempt sequence. Later entries are intentionally
// broader fallbacks; a match short-circuits the rest.
func ladder(name, postCode string) []searchQuery {
	return []searchQuery{
		{Name: name, PostCode: postCode},
		{Name: name},
		{PostCode: postCode},
		{Name: strings.ToUpper(name), PostCode: postCode},
		{Name: strings.ToLower(name), PostCode: postCode},
	}
}

// Resolve runs the attempt ladder. A zero SiteID in the result means every
// attempt was exhausted; the attempt trail and last raw response are kept
// for diagnostics. Only transport failures return an error.
func (r *Resolver) Resolve(ctx context.Context, creds domain.Credentials, cityName, postCode string) (domain.SiteResolution, error) {
	name := stripLocalityPrefix(cityName)
	postCode = strings.TrimSpace(postCode)

	var res domain.SiteResolution
	var lastRaw []byte
	seen := make(map[searchQuery]struct{})

	for _, q := range ladder(name, postCode) {
		if q == (searchQuery{}) {
			continue
		}
		// An identical payload is never re-issued blindly.
		if _, dup := seen[q]; dup {
			continue
		}
		seen[q] = struct{}{}

		payload := q.payload()
		res.Attempts = append(res.Attempts, payload)
		if r.attempts != nil {
			r.attempts.Inc()
		}

		out, err := r.gw.CallJSON(ctx, carrier.SitePath, payload, creds)
		if err != nil {
			return res, err
		}
		lastRaw = out.Raw
		if !out.OK {
			continue
		}

		cands := candidates(out.Body)
		if len(cands) == 0 {
			continue
		}
		id, cand := pick(cands, postCode)
		if id == 0 {
			continue
		}

		res.SiteID = id
		res.Candidate = cand
		res.MatchedPayload = payload
		res.CandidateCount = len(cands)
		r.logger.Info("site resolved",
			logx.String("city", cityName),
			logx.String("post_code", postCode),
			logx.Int64("site_id", id),
			logx.Int("attempts", len(res.Attempts)),
		)
		return res, nil
	}

	res.LastResponse = string(lastRaw)
	if r.failures != nil {
		r.failures.Inc()
	}
	r.logger.Warn("site resolution exhausted",
		logx.String("city", cityName),
		logx.String("post_code", postCode),
		logx.Int("attempts", len(res.Attempts)),
	)
	return res, nil
}

// candidates extracts the candidate list from a carrier response, which
// may be a bare list or nested under one of a few keys.
func candidates(body any) []map[string]any {
	switch v := body.(type) {
	case []any:
		return toMaps(v)
	case map[string]any:
		for _, k := range [...]string{"sites", "items", "data"} {
			if list, ok := v[k].([]any); ok {
				return toMaps(list)
			}
		}
	}
	return nil
}

func toMaps(list []any) []map[string]any {
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// pick selects a candidate: the first whose postal code equals or starts
// with the supplied one, else the first candidate with a usable id.
func pick(cands []map[string]any, postCode string) (int64, map[string]any) {
	if postCode != "" {
		for _, c := range cands {
			pc := candidatePostCode(c)
			if pc != "" && strings.HasPrefix(pc, postCode) {
				if id := candidateID(c); id > 0 {
					return id, c
				}
			}
		}
	}
	for _, c := range cands {
		if id := candidateID(c); id > 0 {
			return id, c
		}
	}
	return 0, nil
}

// candidateID reads the identifier from the first present and numeric of
// the known keys, including the nested site record shape.
func candidateID(c map[string]any) int64 {
	for _, k := range [...]string{"id", "siteId"} {
		if n, ok := asInt64(c[k]); ok && n > 0 {
			return n
		}
	}
	if site, ok := c["site"].(map[string]any); ok {
		if n, ok := asInt64(site["id"]); ok && n > 0 {
			return n
		}
	}
	return 0
}

func candidatePostCode(c map[string]any) string {
	for _, k := range [...]string{"postCode", "postalCode"} {
		switch v := c[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			// numeric postal codes show up occasionally
			return strconv.FormatInt(int64(v), 10)
		}
	}
	return ""
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	}
	return 0, false
}
