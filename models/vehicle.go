package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// vehicleKeys are the vehicle fields printed on documents, in print order.
var vehicleKeys = [...]string{"year", "make", "model", "engine", "mileage"}

// VehicleInfo is the optional, free-form vehicle record attached to a
// document. The printed fields are normalised to strings; any other key the
// client sent is kept in Extra and written back unchanged.
type VehicleInfo struct {
	Year    string
	Make    string
	Model   string
	Engine  string
	Mileage string
	Extra   map[string]any
}

// IsEmpty is true when none of the printable vehicle fields is set.
func (v VehicleInfo) IsEmpty() bool {
	return v.Year == "" && v.Make == "" && v.Model == "" && v.Engine == "" && v.Mileage == ""
}

// Clone returns a copy that shares no maps with v.
func (v VehicleInfo) Clone() VehicleInfo {
	if v.Extra != nil {
		v.Extra = plainValue(v.Extra).(map[string]any)
	}
	return v
}

func (v *VehicleInfo) known(key string) *string {
	switch key {
	case "year":
		return &v.Year
	case "make":
		return &v.Make
	case "model":
		return &v.Model
	case "engine":
		return &v.Engine
	case "mileage":
		return &v.Mileage
	}
	return nil
}

// Fields returns the record as a single map, extras included.
func (v VehicleInfo) Fields() map[string]any {
	out := make(map[string]any, len(v.Extra)+len(vehicleKeys))
	for k, val := range v.Extra {
		out[k] = val
	}
	for _, k := range vehicleKeys {
		if s := *v.known(k); s != "" {
			out[k] = s
		}
	}
	return out
}

func (v *VehicleInfo) setFields(m map[string]any) error {
	*v = VehicleInfo{}
	for k, val := range m {
		if dst := v.known(k); dst != nil {
			s, ok := scalarString(val)
			if !ok {
				return fmt.Errorf("vehicleInformation.%s must be a string or number", k)
			}
			*dst = s
			continue
		}
		if v.Extra == nil {
			v.Extra = map[string]any{}
		}
		v.Extra[k] = plainValue(val)
	}
	return nil
}

func (v VehicleInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Fields())
}

func (v *VehicleInfo) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = VehicleInfo{}
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return fmt.Errorf("invalid vehicleInformation: %w", err)
	}
	return v.setFields(m)
}

func (v VehicleInfo) MarshalBSON() ([]byte, error) {
	return bson.Marshal(bson.M(v.Fields()))
}

func (v *VehicleInfo) UnmarshalBSON(data []byte) error {
	var m bson.M
	if err := bson.Unmarshal(data, &m); err != nil {
		return err
	}
	return v.setFields(m)
}

// scalarString renders strings, numbers and booleans as text. Objects and
// arrays are rejected.
func scalarString(val any) (string, bool) {
	switch t := val.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case int:
		return strconv.Itoa(t), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

// plainValue converts decoder-specific types into plain Go values that both
// encoding/json and bson write back faithfully.
func plainValue(val any) any {
	switch t := val.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = plainValue(e)
		}
		return out
	case bson.M:
		return plainValue(map[string]any(t))
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = plainValue(e.Value)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainValue(e)
		}
		return out
	case bson.A:
		return plainValue([]any(t))
	}
	return val
}
