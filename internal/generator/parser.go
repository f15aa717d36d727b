package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	fenceRe  = regexp.MustCompile("```(?:json|JSON)?\\s*")
	objectRe = regexp.MustCompile(`(?s)\{.*\}`)
	arrayRe  = regexp.MustCompile(`(?s)\[.*\]`)
)

// stripFences removes markdown code fences around a model reply.
func stripFences(raw string) string {
	s := fenceRe.ReplaceAllString(raw, "")
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), "`"))
}

func decode(s string, v any) error {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	return dec.Decode(v)
}

// ParsePlan reads a full plan. The reply must hold a JSON array of at least
// PlanDays objects; only the first PlanDays are used, and each is pinned to
// its position's day and platform.
func ParsePlan(raw string) ([]Draft, error) {
	s := stripFences(raw)
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		m := arrayRe.FindString(s)
		if m == "" {
			return nil, fmt.Errorf("%w: plan is not a JSON array", ErrSchema)
		}
		if err := json.Unmarshal([]byte(m), &items); err != nil {
			return nil, fmt.Errorf("%w: plan is not a JSON array: %v", ErrSchema, err)
		}
	}
	if len(items) < PlanDays {
		return nil, fmt.Errorf("%w: expected %d days, got %d", ErrSchema, PlanDays, len(items))
	}

	days := make([]Draft, 0, PlanDays)
	for i, item := range items[:PlanDays] {
		obj, err := decodeObject(item)
		if err != nil {
			return nil, fmt.Errorf("%w: day %d: %v", ErrSchema, i+1, err)
		}
		d := Draft{Day: i + 1, Platform: PlanSchedule[i]}
		for _, name := range TextFields {
			*d.Field(name) = normalize(name, obj[name])
		}
		days = append(days, d)
	}
	return days, nil
}

// ParsePatch reads the first brace-delimited object in the reply and keeps
// only known text fields.
func ParsePatch(raw string) (Patch, error) {
	obj, err := firstObject(raw)
	if err != nil {
		return nil, err
	}
	p := Patch{}
	for k, v := range obj {
		if IsTextField(k) {
			p[k] = normalize(k, v)
		}
	}
	return p, nil
}

// ParseRating reads a rating reply. The score is clamped into
// [MinScore, MaxScore]; at least three suggestions are required.
func ParseRating(raw string) (Rating, error) {
	obj, err := firstObject(raw)
	if err != nil {
		return Rating{}, err
	}

	score, ok := numeric(obj["score"])
	if !ok {
		return Rating{}, fmt.Errorf("%w: score %v", ErrClamp, obj["score"])
	}
	r := Rating{Score: clampScore(score)}

	r.Reason = strings.TrimSpace(normalize("reason", obj["reason"]))
	if r.Reason == "" {
		r.Reason = ratingReasons[r.Score]
	}

	list, _ := obj["suggestions"].([]any)
	for _, v := range list {
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		r.Suggestions = append(r.Suggestions, strings.TrimSpace(s))
		if len(r.Suggestions) == 3 {
			break
		}
	}
	if len(r.Suggestions) < 3 {
		return Rating{}, fmt.Errorf("%w: expected 3 suggestions, got %d", ErrSchema, len(r.Suggestions))
	}
	return r, nil
}

func firstObject(raw string) (map[string]any, error) {
	m := objectRe.FindString(stripFences(raw))
	if m == "" {
		return nil, fmt.Errorf("%w: no JSON object in reply", ErrSchema)
	}
	obj, err := decodeObject([]byte(m))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return obj, nil
}

func decodeObject(b []byte) (map[string]any, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return nil, fmt.Errorf("not a JSON object")
	}
	var obj map[string]any
	if err := decode(string(b), &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// normalize turns any JSON value into the string form stored for field.
// Lists are joined with spaces for hashtags and with ", " otherwise.
func normalize(field string, v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case []any:
		sep := ", "
		if field == FieldHashtags {
			sep = " "
		}
		parts := make([]string, 0, len(t))
		for _, e := range t {
			if s := normalize(field, e); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, sep)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

func numeric(v any) (int, bool) {
	var f float64
	switch t := v.(type) {
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	// Anything this far out clamps the same way.
	f = math.Max(-100, math.Min(100, f))
	return int(math.Round(f)), true
}
