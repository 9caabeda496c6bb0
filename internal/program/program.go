package program

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type FieldType string

const (
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeString  FieldType = "string"
	FieldTypeDate    FieldType = "date"
)

type ConstraintType string

const (
	ConstraintRange      ConstraintType = "range_check"
	ConstraintComparison ConstraintType = "comparison"
	ConstraintAge        ConstraintType = "age_verification"
)

// ProgramDefinition is the JSON source of a deployable program. Each function
// compiles to its own circuit; the checksum of the whole definition is the
// content address used by the key cache and the ledger.
type ProgramDefinition struct {
	ProgramID string               `json:"program_id"`
	Version   string               `json:"version"`
	Functions []FunctionDefinition `json:"functions"`

	functionIndex map[string]int
	checksum      string
}

type FunctionDefinition struct {
	Name        string                 `json:"name"`
	Inputs      []FieldDefinition      `json:"inputs"`
	Constraints []ConstraintDefinition `json:"constraints"`

	fieldIndex map[string]FieldDefinition
}

type FieldDefinition struct {
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Secret      bool      `json:"secret"`
	Public      bool      `json:"public"`
	Description string    `json:"description,omitempty"`
}

type ConstraintDefinition struct {
	Type         ConstraintType  `json:"type"`
	Fields       []string        `json:"fields"`
	Operator     string          `json:"operator,omitempty"`
	Value        json.RawMessage `json:"value,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

func Parse(data []byte) (*ProgramDefinition, error) {
	var def ProgramDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse program: %w", err)
	}

	if err := def.prepare(); err != nil {
		return nil, err
	}

	return &def, nil
}

func (p *ProgramDefinition) prepare() error {
	if p.ProgramID == "" {
		return errors.New("program must declare program_id")
	}
	if len(p.Functions) == 0 {
		return errors.New("program must declare at least one function")
	}

	p.functionIndex = make(map[string]int, len(p.Functions))
	for idx := range p.Functions {
		fn := &p.Functions[idx]
		if fn.Name == "" {
			return errors.New("function name cannot be empty")
		}
		if _, exists := p.functionIndex[fn.Name]; exists {
			return fmt.Errorf("duplicate function '%s' in program", fn.Name)
		}
		if err := fn.prepare(); err != nil {
			return fmt.Errorf("function '%s': %w", fn.Name, err)
		}
		p.functionIndex[fn.Name] = idx
	}

	// Canonical form: re-marshal the parsed struct, so input key order and
	// whitespace never change the address.
	canonical, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("canonicalize program: %w", err)
	}
	sum := sha256.Sum256(canonical)
	p.checksum = hex.EncodeToString(sum[:])

	return nil
}

func (fn *FunctionDefinition) prepare() error {
	if len(fn.Inputs) == 0 {
		return errors.New("function must declare at least one input")
	}

	fn.fieldIndex = make(map[string]FieldDefinition, len(fn.Inputs))
	for idx, field := range fn.Inputs {
		if field.Name == "" {
			return errors.New("input name cannot be empty")
		}
		if _, exists := fn.fieldIndex[field.Name]; exists {
			return fmt.Errorf("duplicate input '%s'", field.Name)
		}

		// Default visibility: secret if neither explicitly public nor secret.
		if field.Public {
			field.Secret = false
		} else if !field.Secret {
			field.Secret = true
		}

		if field.Type == "" {
			field.Type = FieldTypeString
		}

		fn.fieldIndex[field.Name] = field
		fn.Inputs[idx] = field
	}

	for idx, constraint := range fn.Constraints {
		if constraint.Type == "" {
			return errors.New("constraint must declare type")
		}
		if len(constraint.Fields) == 0 {
			return fmt.Errorf("constraint '%s' must reference at least one field", constraint.Type)
		}
		for _, fieldName := range constraint.Fields {
			if _, ok := fn.fieldIndex[fieldName]; !ok {
				return fmt.Errorf("constraint references unknown input '%s'", fieldName)
			}
		}

		normalized, err := canonicalizeRawValue(constraint.Value)
		if err != nil {
			return fmt.Errorf("constraint '%s': %w", constraint.Type, err)
		}
		fn.Constraints[idx].Value = normalized
	}

	return nil
}

// canonicalizeRawValue rewrites a raw constraint value through a decode and
// re-marshal, so object keys come out sorted and whitespace compacted. Numbers
// pass through as json.Number to keep their literal form.
func canonicalizeRawValue(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("invalid constraint value: %w", err)
	}

	normalized, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("canonicalize constraint value: %w", err)
	}
	return normalized, nil
}

// Checksum is the hex sha256 of the canonicalized program JSON.
func (p *ProgramDefinition) Checksum() string {
	return p.checksum
}

func (p *ProgramDefinition) Function(name string) (*FunctionDefinition, error) {
	idx, ok := p.functionIndex[name]
	if !ok {
		return nil, fmt.Errorf("program '%s' has no function '%s'", p.ProgramID, name)
	}
	return &p.Functions[idx], nil
}

func (p *ProgramDefinition) FunctionNames() []string {
	names := make([]string, 0, len(p.Functions))
	for _, fn := range p.Functions {
		names = append(names, fn.Name)
	}
	return names
}

func (fn *FunctionDefinition) field(name string) (FieldDefinition, bool) {
	fd, ok := fn.fieldIndex[name]
	return fd, ok
}

func (fn *FunctionDefinition) FieldDefinition(name string) (FieldDefinition, error) {
	field, ok := fn.field(name)
	if !ok {
		return FieldDefinition{}, fmt.Errorf("unknown input '%s'", name)
	}
	return field, nil
}

func (fn *FunctionDefinition) SecretFieldOrder() []string {
	order := make([]string, 0, len(fn.Inputs))
	for _, field := range fn.Inputs {
		if field.Public {
			continue
		}
		order = append(order, field.Name)
	}
	return order
}

func (fn *FunctionDefinition) PublicFieldOrder() []string {
	order := make([]string, 0, len(fn.Inputs))
	for _, field := range fn.Inputs {
		if !field.Public {
			continue
		}
		order = append(order, field.Name)
	}
	return order
}

func (c ConstraintDefinition) ValueAsInt() (int64, error) {
	if len(c.Value) == 0 {
		return 0, errors.New("constraint missing value")
	}

	var number json.Number
	if err := json.Unmarshal(c.Value, &number); err == nil {
		if v, err := number.Int64(); err == nil {
			return v, nil
		}
		if f, err := number.Float64(); err == nil {
			return int64(f), nil
		}
	}

	var s string
	if err := json.Unmarshal(c.Value, &s); err == nil {
		return parseStringInt(s)
	}

	return 0, fmt.Errorf("constraint value is not numeric: %s", string(c.Value))
}

func (c ConstraintDefinition) ValueAsNumberSlice() ([]float64, error) {
	if len(c.Value) == 0 {
		return nil, errors.New("constraint missing value array")
	}
	var values []float64
	if err := json.Unmarshal(c.Value, &values); err != nil {
		return nil, fmt.Errorf("constraint expects numeric array value: %w", err)
	}
	return values, nil
}

func parseStringInt(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errors.New("empty numeric string")
	}
	number := json.Number(value)
	if v, err := number.Int64(); err == nil {
		return v, nil
	}
	if f, err := number.Float64(); err == nil {
		return int64(f), nil
	}
	return 0, fmt.Errorf("invalid numeric value '%s'", value)
}
