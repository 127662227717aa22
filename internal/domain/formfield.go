package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FieldKind is the input type of a custom registration field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldNumber   FieldKind = "number"
	FieldCheckbox FieldKind = "checkbox"
	FieldDropdown FieldKind = "dropdown"
)

// FieldSpec describes one organizer-defined registration question.
// swagger:model FieldSpec
type FieldSpec struct {
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

// FieldValue is the typed answer to a FieldSpec. Only the member matching Kind is set.
// swagger:model FieldValue
type FieldValue struct {
	Kind    FieldKind `json:"kind"`
	Text    string    `json:"text,omitempty"`
	Number  float64   `json:"number,omitempty"`
	Checked bool      `json:"checked,omitempty"`
	Choice  string    `json:"choice,omitempty"`
}

// Schema validates raw registration answers against a list of field specs.
type Schema struct {
	fields []FieldSpec
	byKey  map[string]FieldSpec
}

// BuildSchema checks the specs and returns a schema for them.
func BuildSchema(specs []FieldSpec) (*Schema, error) {
	s := &Schema{fields: specs, byKey: make(map[string]FieldSpec, len(specs))}
	for i, f := range specs {
		label := strings.TrimSpace(f.Label)
		if label == "" {
			return nil, fmt.Errorf("form field %d: label is required", i+1)
		}
		switch f.Kind {
		case FieldText, FieldNumber, FieldCheckbox:
		case FieldDropdown:
			if len(f.Options) == 0 {
				return nil, fmt.Errorf("form field %q: dropdown needs at least one option", label)
			}
		default:
			return nil, fmt.Errorf("form field %q: unknown kind %q", label, f.Kind)
		}
		if _, dup := s.byKey[label]; dup {
			return nil, fmt.Errorf("form field %q is defined twice", label)
		}
		s.byKey[label] = f
	}
	return s, nil
}

// Validate converts raw JSON answers keyed by field label into typed values.
// Missing optional fields are omitted from the result.
func (s *Schema) Validate(raw map[string]json.RawMessage) (map[string]FieldValue, error) {
	var problems []string
	for label := range raw {
		if _, ok := s.byKey[label]; !ok {
			problems = append(problems, fmt.Sprintf("unknown field %q", label))
		}
	}
	out := make(map[string]FieldValue, len(s.fields))
	for _, f := range s.fields {
		label := strings.TrimSpace(f.Label)
		msg, present := raw[label]
		if !present || string(msg) == "null" {
			if f.Required {
				problems = append(problems, fmt.Sprintf("%s is required", label))
			}
			continue
		}
		v, err := decodeFieldValue(f, msg)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", label, err))
			continue
		}
		if f.Required && v.empty() {
			problems = append(problems, fmt.Sprintf("%s is required", label))
			continue
		}
		out[label] = v
	}
	if len(problems) > 0 {
		return nil, NewValidationError(problems...)
	}
	return out, nil
}

func decodeFieldValue(f FieldSpec, msg json.RawMessage) (FieldValue, error) {
	v := FieldValue{Kind: f.Kind}
	switch f.Kind {
	case FieldText:
		if err := json.Unmarshal(msg, &v.Text); err != nil {
			return v, fmt.Errorf("must be text")
		}
		v.Text = strings.TrimSpace(v.Text)
	case FieldNumber:
		if err := json.Unmarshal(msg, &v.Number); err != nil {
			return v, fmt.Errorf("must be a number")
		}
	case FieldCheckbox:
		if err := json.Unmarshal(msg, &v.Checked); err != nil {
			return v, fmt.Errorf("must be true or false")
		}
	case FieldDropdown:
		if err := json.Unmarshal(msg, &v.Choice); err != nil {
			return v, fmt.Errorf("must be one of the listed options")
		}
		found := false
		for _, o := range f.Options {
			if o == v.Choice {
				found = true
				break
			}
		}
		if !found {
			return v, fmt.Errorf("%q is not one of the listed options", v.Choice)
		}
	}
	return v, nil
}

// empty reports whether a required field was answered with its zero value.
// A required checkbox must be ticked.
func (v FieldValue) empty() bool {
	switch v.Kind {
	case FieldText:
		return v.Text == ""
	case FieldCheckbox:
		return !v.Checked
	case FieldDropdown:
		return v.Choice == ""
	}
	return false
}
