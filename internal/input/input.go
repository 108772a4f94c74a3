// Package input normalizes the session telemetry payload read from stdin.
package input

import (
	"bytes"
	"encoding/json"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	DefaultModel = "Unknown"
	DefaultDir   = "~"
)

// Rate holds the optional rate-limit fields. LimitPct is nil when absent so a
// literal 0% stays distinguishable from a missing value.
type Rate struct {
	TimeLeft  string
	ResetTime string
	LimitPct  *float64
	BurnRate  string
}

// Complete reports whether time left, reset time and limit percentage are all
// present.
func (r Rate) Complete() bool {
	return r.TimeLeft != "" && r.ResetTime != "" && r.LimitPct != nil
}

// RenderInput is the normalized telemetry record. Every field carries a safe
// default.
type RenderInput struct {
	Model        string
	Dir          string
	WorkDir      string
	ContextPct   int
	ContextUsed  float64
	DurationMs   int64
	LinesAdded   int
	LinesRemoved int
	Rate         Rate
}

// Usage is the unrounded context usage that selects the color tier. Records
// built without one fall back to ContextPct.
func (in RenderInput) Usage() float64 {
	if clampPercent(in.ContextUsed) == in.ContextPct {
		return in.ContextUsed
	}
	return float64(in.ContextPct)
}

// Defaults returns the all-defaults record used for unreadable payloads.
func Defaults() RenderInput {
	return RenderInput{Model: DefaultModel, Dir: DefaultDir}
}

// NormalizeString is Normalize for string payloads.
func NormalizeString(raw string) RenderInput {
	return Normalize([]byte(raw))
}

// Normalize decodes a raw JSON payload. Fields that are missing, mistyped or
// unparseable fall back to their defaults; the whole record falls back when
// the payload is not a JSON object.
func Normalize(raw []byte) RenderInput {
	out := Defaults()

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil || doc == nil {
		return out
	}

	model := object(doc, "model")
	if name := stringField(model, "display_name"); name != "" {
		out.Model = name
	}

	workspace := object(doc, "workspace")
	if dir := stringField(workspace, "current_dir"); dir != "" {
		out.WorkDir = dir
		if base := filepath.Base(filepath.Clean(dir)); base != "" && base != "." {
			out.Dir = base
		}
	}

	ctxWindow := object(doc, "context_window")
	out.ContextUsed = clampFloat(CoerceFloat(ctxWindow["used_percentage"], 0), 0, 100)
	out.ContextPct = clampPercent(out.ContextUsed)

	cost := object(doc, "cost")
	out.DurationMs = saturateInt64(CoerceFloat(cost["total_duration_ms"], 0))
	out.LinesAdded = nonNegative(CoerceInt(cost["total_lines_added"], 0))
	out.LinesRemoved = nonNegative(CoerceInt(cost["total_lines_removed"], 0))

	out.Rate = normalizeRate(object(doc, "rate"))
	return out
}

func normalizeRate(rate map[string]any) Rate {
	var r Rate
	r.TimeLeft = textField(either(rate, "time_left", "timeLeft"))
	r.ResetTime = textField(either(rate, "reset_time", "resetTime"))
	r.BurnRate = textField(either(rate, "burn_rate", "burnRate"))

	if raw, ok := eitherOK(rate, "limit_pct", "limitPct"); ok {
		if v, ok := coerce(raw); ok {
			r.LimitPct = &v
		}
	}
	return r
}

// CoerceFloat converts JSON numbers and numeric strings to float64, returning
// def for anything else.
func CoerceFloat(v any, def float64) float64 {
	if f, ok := coerce(v); ok {
		return f
	}
	return def
}

// CoerceInt is CoerceFloat rounded to the nearest integer. Values outside the
// int range saturate.
func CoerceInt(v any, def int) int {
	f, ok := coerce(v)
	if !ok {
		return def
	}
	f = math.Round(f)
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

func coerce(v any) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch val := v.(type) {
	case json.Number:
		f, err = val.Float64()
	case float64:
		f = val
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(val), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func object(doc map[string]any, key string) map[string]any {
	if doc == nil {
		return nil
	}
	m, _ := doc[key].(map[string]any)
	return m
}

// stringField returns a trimmed, NFC-composed string so decomposed accents
// measure and render like their composed forms.
func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return norm.NFC.String(cleanText(s))
}

// cleanText replaces control characters with spaces. Payload text lands
// inside fixed-height layouts and must not carry line breaks or escapes.
func cleanText(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s))
}

// textField accepts strings and numbers, formatting numbers without a
// trailing ".0".
func textField(v any) string {
	switch val := v.(type) {
	case string:
		return cleanText(val)
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

func either(m map[string]any, keys ...string) any {
	v, _ := eitherOK(m, keys...)
	return v
}

func eitherOK(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func clampPercent(f float64) int {
	return int(math.Round(clampFloat(f, 0, 100)))
}

func clampFloat(f, lo, hi float64) float64 {
	switch {
	case f < lo:
		return lo
	case f > hi:
		return hi
	default:
		return f
	}
}

func saturateInt64(f float64) int64 {
	switch {
	case f <= 0:
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	default:
		return int64(f)
	}
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
