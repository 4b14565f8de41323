package xcontest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"xcfeed/internal/domain"
)

// apiRoute mirrors /league/route of a flights API item.
type apiRoute struct {
	Type     *string  `json:"type"`
	Distance *float64 `json:"distance"`
	Points   *float64 `json:"points"`
}

// flightFromItem extracts a flight from one element of the items array.
// String fields fall back to "" when absent or of another type; id and route are required.
func flightFromItem(item any) (domain.Flight, error) {
	id, err := uintAt(item, "id")
	if err != nil {
		return domain.Flight{}, err
	}

	route, err := routeAt(item, "league", "route")
	if err != nil {
		return domain.Flight{}, err
	}

	return domain.Flight{
		ID:        id,
		Duration:  stringAt(item, "stats", "duration"),
		By:        stringAt(item, "pilot", "name"),
		StartTime: stringAt(item, "pointStart", "time"),
		URL:       stringAt(item, "league", "flight", "link"),
		Route:     route,
	}, nil
}

func decodeNumbers(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after top-level value")
	}
	return nil
}

// lookup walks nested objects along path.
func lookup(doc any, path ...string) (any, bool) {
	cur := doc
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func pointer(path []string) string {
	return "/" + strings.Join(path, "/")
}

func stringAt(doc any, path ...string) string {
	v, _ := lookup(doc, path...)
	s, _ := v.(string)
	return s
}

func uintAt(doc any, path ...string) (uint64, error) {
	v, ok := lookup(doc, path...)
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrMissingField, pointer(path))
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not a number", domain.ErrMissingField, pointer(path))
	}
	u, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an unsigned integer", domain.ErrMissingField, pointer(path))
	}
	return u, nil
}

func routeAt(doc any, path ...string) (domain.Route, error) {
	v, ok := lookup(doc, path...)
	if !ok {
		return domain.Route{}, fmt.Errorf("%w: %s", domain.ErrMissingField, pointer(path))
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return domain.Route{}, fmt.Errorf("%w: %s: %v", domain.ErrJSON, pointer(path), err)
	}

	var r apiRoute
	if err := json.Unmarshal(raw, &r); err != nil {
		return domain.Route{}, fmt.Errorf("%w: %s: %v", domain.ErrMissingField, pointer(path), err)
	}
	if r.Type == nil || r.Distance == nil || r.Points == nil {
		return domain.Route{}, fmt.Errorf("%w: %s is incomplete", domain.ErrMissingField, pointer(path))
	}

	return domain.Route{
		Type:     *r.Type,
		Distance: *r.Distance,
		Points:   *r.Points,
	}, nil
}
