package domain

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeSelect   FieldType = "select"
	FieldTypeSwitch   FieldType = "switch"
	FieldTypeCheckbox FieldType = "checkbox"
)

func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeSelect, FieldTypeSwitch, FieldTypeCheckbox:
		return true
	}
	return false
}

// Boolean reports whether answers of this type are true/false flags.
func (t FieldType) Boolean() bool {
	return t == FieldTypeSwitch || t == FieldTypeCheckbox
}

// MetaDefinition is a custom signup question attached to a meet.
type MetaDefinition struct {
	ID        string    `json:"id"`
	MeetID    string    `json:"meet_id"`
	FieldKey  string    `json:"field_key"`
	Label     string    `json:"label"`
	FieldType FieldType `json:"field_type"`
	Required  bool      `json:"required"`
	Options   []string  `json:"options"`
	Position  int       `json:"position"`
}

// Answered reports whether value counts as an answer. Boolean fields are
// answered by presence alone, so "false" is a valid answer.
func (d MetaDefinition) Answered(value string, present bool) bool {
	if !present {
		return false
	}
	if d.FieldType.Boolean() {
		return true
	}
	return strings.TrimSpace(value) != ""
}

// Normalize validates a raw answer for this field and returns its stored
// string form.
func (d MetaDefinition) Normalize(value string) (string, error) {
	value = strings.TrimSpace(value)
	switch d.FieldType {
	case FieldTypeNumber:
		if value == "" {
			return "", nil
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: %s must be a number", ErrValidation, d.FieldKey)
		}
	case FieldTypeSelect:
		if value != "" && !slices.Contains(d.Options, value) {
			return "", fmt.Errorf("%w: %s must be one of %v", ErrValidation, d.FieldKey, d.Options)
		}
	case FieldTypeSwitch, FieldTypeCheckbox:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", fmt.Errorf("%w: %s must be true or false", ErrValidation, d.FieldKey)
		}
		return strconv.FormatBool(b), nil
	}
	return value, nil
}

// Coerce converts a stored answer to its typed value.
func (d MetaDefinition) Coerce(value string) any {
	switch d.FieldType {
	case FieldTypeNumber:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	case FieldTypeSwitch, FieldTypeCheckbox:
		b, _ := strconv.ParseBool(value)
		return b
	}
	return value
}

// ValidateMetaDefinitions checks field keys are present and unique and
// type-specific configuration is complete.
func ValidateMetaDefinitions(defs []MetaDefinition) error {
	seen := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		if d.FieldKey == "" {
			return fmt.Errorf("%w: meta definition field_key is required", ErrValidation)
		}
		if _, ok := seen[d.FieldKey]; ok {
			return fmt.Errorf("%w: duplicate field_key %q", ErrValidation, d.FieldKey)
		}
		seen[d.FieldKey] = struct{}{}
		if !d.FieldType.Valid() {
			return fmt.Errorf("%w: unknown field_type %q for %s", ErrValidation, d.FieldType, d.FieldKey)
		}
		if d.FieldType == FieldTypeSelect && len(d.Options) == 0 {
			return fmt.Errorf("%w: select field %s needs options", ErrValidation, d.FieldKey)
		}
	}
	return nil
}
