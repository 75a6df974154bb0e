// Package domain contains core business entities and interfaces.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reserved field names of a stored issue object.
const (
	FieldID     = "id"
	FieldStatus = "status"
	FieldTitle  = "title"
)

// IssueData is the caller-supplied payload for a new issue.
// Any key is accepted; "status" overrides the default status and "id" is ignored.
type IssueData map[string]any

// Issue is a work item on the board.
// Fields holds every caller-supplied key except id and status. Values are never
// mutated once the issue has been published by a store.
type Issue struct {
	Fields map[string]any
	ID     string
	Status Status
}

// Title returns the "title" field, or "" if it is missing or not a string.
func (i Issue) Title() string {
	s, _ := i.Fields[FieldTitle].(string)
	return s
}

// Field returns the named extra field.
func (i Issue) Field(name string) (any, bool) {
	v, ok := i.Fields[name]
	return v, ok
}

// WithStatus returns a copy of the issue with a different status.
// Fields is shared with the receiver.
func (i Issue) WithStatus(status Status) Issue {
	i.Status = status
	return i
}

// Map returns the flat representation of the issue: id, status and every extra field.
func (i Issue) Map() map[string]any {
	m := make(map[string]any, len(i.Fields)+2)
	maps.Copy(m, i.Fields)
	m[FieldID] = i.ID
	m[FieldStatus] = string(i.Status)
	return m
}

// IssueFromMap builds an issue from its flat representation.
// A non-string id or status is converted to its literal text.
func IssueFromMap(m map[string]any) Issue {
	issue := Issue{Fields: make(map[string]any, len(m))}
	for k, v := range m {
		switch k {
		case FieldID:
			issue.ID = scalarString(v)
		case FieldStatus:
			issue.Status = StatusOf(v)
		default:
			issue.Fields[k] = v
		}
	}
	return issue
}

// MarshalJSON encodes the issue as a flat object with id and status first.
func (i Issue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	writeMember := func(k string, v any) error {
		kb, err := json.Marshal(k)
		if err != nil {
			return err
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("field %q: %w", k, err)
		}
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
		return nil
	}

	if err := writeMember(FieldID, i.ID); err != nil {
		return nil, err
	}
	if err := writeMember(FieldStatus, string(i.Status)); err != nil {
		return nil, err
	}
	for _, k := range slices.Sorted(maps.Keys(i.Fields)) {
		if k == FieldID || k == FieldStatus {
			continue
		}
		if err := writeMember(k, i.Fields[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat issue object. Numbers keep their exact text.
func (i *Issue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("issue must be a JSON object")
	}
	*i = IssueFromMap(m)
	return nil
}

// MarshalYAML encodes the issue as a flat mapping.
// JSON numbers are written as YAML numbers rather than quoted strings.
func (i Issue) MarshalYAML() (any, error) {
	m := i.Map()
	for k, v := range m {
		m[k] = plainNumbers(v)
	}
	return m, nil
}

// UnmarshalYAML decodes a flat issue mapping.
func (i *Issue) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]any
	if err := value.Decode(&m); err != nil {
		return err
	}
	*i = IssueFromMap(m)
	return nil
}

// DecodeIssues parses a JSON array of issues. Null elements are skipped.
func DecodeIssues(data string) ([]Issue, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	issues := make([]Issue, 0, len(raw))
	for i, elem := range raw {
		if bytes.Equal(bytes.TrimSpace(elem), []byte("null")) {
			continue
		}
		var issue Issue
		if err := json.Unmarshal(elem, &issue); err != nil {
			return nil, fmt.Errorf("issue %d: %w", i, err)
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

// EncodeIssues serializes issues as a JSON array. A nil list encodes as [].
func EncodeIssues(issues []Issue) (string, error) {
	if issues == nil {
		issues = []Issue{}
	}
	b, err := json.Marshal(issues)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// IndexOf returns the position of the first issue with the given id, or -1.
func IndexOf(issues []Issue, id string) int {
	return slices.IndexFunc(issues, func(i Issue) bool { return i.ID == id })
}

// StatusOf converts a decoded status value to a Status.
func StatusOf(v any) Status {
	return Status(scalarString(v))
}

func plainNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = plainNumbers(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainNumbers(e)
		}
		return out
	default:
		return v
	}
}

func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
