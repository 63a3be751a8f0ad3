package gql

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Where filters objects by property values. Exactly one of Path+Operator+
// a Value field (a leaf condition) or Operator+Operands (a combination)
// must be set.
type Where struct {
	Path     []string
	Operator string
	Operands []*Where

	ValueString   *string
	ValueText     *string
	ValueInt      *int64
	ValueNumber   *float64
	ValueDate     *string
	ValueBoolean  *bool
	ValueGeoRange map[string]interface{}
}

func (w *Where) render() (string, error) {
	body, err := w.renderBody()
	if err != nil {
		return "", err
	}
	return "where: {" + body + "} ", nil
}

func (w *Where) renderBody() (string, error) {
	if w.Operator == "" {
		return "", fmt.Errorf("gql: where filter is missing required field operator")
	}

	if len(w.Path) > 0 {
		valueType, value, err := w.renderValue()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("path: %s operator: %s %s: %s", stringListJSON(w.Path), w.Operator, valueType, value), nil
	}

	if len(w.Operands) == 0 {
		return "", fmt.Errorf("gql: where filter is missing required fields path or operands")
	}

	parts := make([]string, 0, len(w.Operands))
	for _, operand := range w.Operands {
		body, err := operand.renderBody()
		if err != nil {
			return "", err
		}
		parts = append(parts, "{"+body+"}")
	}
	return fmt.Sprintf("operator: %s operands: [%s]", w.Operator, strings.Join(parts, ", ")), nil
}

func (w *Where) renderValue() (valueType, value string, err error) {
	switch {
	case w.ValueString != nil:
		return "valueString", strconv.Quote(*w.ValueString), nil
	case w.ValueText != nil:
		return "valueText", strconv.Quote(*w.ValueText), nil
	case w.ValueInt != nil:
		return "valueInt", strconv.FormatInt(*w.ValueInt, 10), nil
	case w.ValueNumber != nil:
		return "valueNumber", formatFloat(*w.ValueNumber), nil
	case w.ValueDate != nil:
		return "valueDate", strconv.Quote(*w.ValueDate), nil
	case w.ValueBoolean != nil:
		return "valueBoolean", strconv.FormatBool(*w.ValueBoolean), nil
	case w.ValueGeoRange != nil:
		data, err := json.Marshal(w.ValueGeoRange)
		if err != nil {
			return "", "", err
		}
		return "valueGeoRange", string(data), nil
	default:
		return "", "", fmt.Errorf("gql: where filter is missing a value field")
	}
}

// Move steers a NearText search toward or away from other concepts.
type Move struct {
	Concepts []string
	Force    float64
}

// NearText ranks results by semantic distance to the given concepts. Only
// usable with a text vectorization module on the server.
type NearText struct {
	Concepts     []string
	Certainty    float64 // 0 leaves the clause out
	MoveTo       *Move
	MoveAwayFrom *Move
	Autocorrect  *bool
}

func (nt *NearText) render() (string, error) {
	if len(nt.Concepts) == 0 {
		return "", fmt.Errorf("gql: nearText requires at least one concept")
	}

	var sb strings.Builder
	sb.WriteString("nearText: {concepts: " + stringListJSON(nt.Concepts))
	if nt.Certainty != 0 {
		sb.WriteString(" certainty: " + formatFloat(nt.Certainty))
	}
	for _, move := range []struct {
		name   string
		clause *Move
	}{
		{"moveTo", nt.MoveTo},
		{"moveAwayFrom", nt.MoveAwayFrom},
	} {
		if move.clause == nil {
			continue
		}
		if len(move.clause.Concepts) == 0 {
			return "", fmt.Errorf("gql: %s clause requires concepts", move.name)
		}
		if move.clause.Force == 0 {
			return "", fmt.Errorf("gql: %s clause requires a force", move.name)
		}
		sb.WriteString(fmt.Sprintf(" %s: {concepts: %s force: %s}",
			move.name, stringListJSON(move.clause.Concepts), formatFloat(move.clause.Force)))
	}
	if nt.Autocorrect != nil {
		sb.WriteString(" autocorrect: " + strconv.FormatBool(*nt.Autocorrect))
	}
	sb.WriteString("} ")
	return sb.String(), nil
}

// NearVector ranks results by distance to an explicit embedding.
type NearVector struct {
	Vector    []float32
	Certainty float64
}

func (nv *NearVector) render() (string, error) {
	if len(nv.Vector) == 0 {
		return "", fmt.Errorf("gql: nearVector requires a vector")
	}

	out := "nearVector: {vector: " + floatListJSON(nv.Vector)
	if nv.Certainty != 0 {
		out += " certainty: " + formatFloat(nv.Certainty)
	}
	return out + "} ", nil
}

// NearObject ranks results by distance to a stored object, addressed
// either by ID or by beacon (exactly one of the two).
type NearObject struct {
	ID        string
	Beacon    string
	Certainty float64
}

func (no *NearObject) render() (string, error) {
	if no.ID != "" && no.Beacon != "" {
		return "", fmt.Errorf("gql: nearObject takes either an id or a beacon, not both")
	}
	key, value := "id", no.ID
	if no.Beacon != "" {
		key, value = "beacon", no.Beacon
	}
	if value == "" {
		return "", fmt.Errorf("gql: nearObject requires an id or a beacon")
	}

	out := fmt.Sprintf("nearObject: {%s: %s", key, value)
	if no.Certainty != 0 {
		out += " certainty: " + formatFloat(no.Certainty)
	}
	return out + "} ", nil
}

// NearImage ranks results by distance to an image. Image must hold the
// base64-encoded content; util.ImageEncoderB64 produces it from a file.
type NearImage struct {
	Image     string
	Certainty float64
}

func (ni *NearImage) render() (string, error) {
	if ni.Image == "" {
		return "", fmt.Errorf("gql: nearImage requires an image")
	}

	out := "nearImage: {image: " + ni.Image
	if ni.Certainty != 0 {
		out += " certainty: " + formatFloat(ni.Certainty)
	}
	return out + "} ", nil
}

// Ask retrieves an extractive answer to a question. Only usable with a
// question answering module on the server; Autocorrect additionally needs
// the spellcheck module.
type Ask struct {
	Question    string
	Certainty   float64
	Properties  []string
	Autocorrect *bool
}

func (a *Ask) render() (string, error) {
	if a.Question == "" {
		return "", fmt.Errorf("gql: ask requires a question")
	}

	var sb strings.Builder
	sb.WriteString("ask: {question: " + strconv.Quote(a.Question))
	if a.Certainty != 0 {
		sb.WriteString(" certainty: " + formatFloat(a.Certainty))
	}
	if len(a.Properties) > 0 {
		sb.WriteString(" properties: " + stringListJSON(a.Properties))
	}
	if a.Autocorrect != nil {
		sb.WriteString(" autocorrect: " + strconv.FormatBool(*a.Autocorrect))
	}
	sb.WriteString("} ")
	return sb.String(), nil
}

// Pointer helpers for the optional Where value fields.

// String returns a pointer to v for ValueString/ValueText/ValueDate.
func String(v string) *string { return &v }

// Int returns a pointer to v for ValueInt.
func Int(v int64) *int64 { return &v }

// Float returns a pointer to v for ValueNumber.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v for ValueBoolean and Autocorrect.
func Bool(v bool) *bool { return &v }

// stringListJSON renders a JSON array with ", " separators, the layout the
// server's GraphQL examples use.
func stringListJSON(items []string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = strconv.Quote(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func floatListJSON(items []float32) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = strconv.FormatFloat(float64(item), 'g', -1, 32)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
