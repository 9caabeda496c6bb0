package program

import (
	"fmt"
	"math"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
)

const CurveID = ecc.BN254

// FunctionCircuit is the gnark circuit for a single program function. Inputs
// are laid out in schema order: secret inputs first, then public ones.
type FunctionCircuit struct {
	SecretInputs []frontend.Variable `gnark:",secret"`
	PublicInputs []frontend.Variable `gnark:",public"`

	Function      *FunctionDefinition `gnark:"-"`
	secretOrder   []string            `gnark:"-"`
	publicOrder   []string            `gnark:"-"`
	secretIndex   map[string]int      `gnark:"-"`
	publicIndex   map[string]int      `gnark:"-"`
	fieldMetadata map[string]FieldDefinition
}

func NewFunctionCircuit(fn *FunctionDefinition) (*FunctionCircuit, error) {
	if fn == nil {
		return nil, fmt.Errorf("function cannot be nil")
	}

	secretOrder := fn.SecretFieldOrder()
	publicOrder := fn.PublicFieldOrder()

	circuit := &FunctionCircuit{
		SecretInputs:  make([]frontend.Variable, len(secretOrder)),
		PublicInputs:  make([]frontend.Variable, len(publicOrder)),
		Function:      fn,
		secretOrder:   append([]string(nil), secretOrder...),
		publicOrder:   append([]string(nil), publicOrder...),
		secretIndex:   make(map[string]int, len(secretOrder)),
		publicIndex:   make(map[string]int, len(publicOrder)),
		fieldMetadata: make(map[string]FieldDefinition, len(fn.Inputs)),
	}

	for i, name := range secretOrder {
		circuit.secretIndex[name] = i
	}
	for i, name := range publicOrder {
		circuit.publicIndex[name] = i
	}
	for _, field := range fn.Inputs {
		circuit.fieldMetadata[field.Name] = field
	}

	return circuit, nil
}

func (fc *FunctionCircuit) Clone() *FunctionCircuit {
	return &FunctionCircuit{
		SecretInputs:  make([]frontend.Variable, len(fc.SecretInputs)),
		PublicInputs:  make([]frontend.Variable, len(fc.PublicInputs)),
		Function:      fc.Function,
		secretOrder:   append([]string(nil), fc.secretOrder...),
		publicOrder:   append([]string(nil), fc.publicOrder...),
		secretIndex:   fc.secretIndex,
		publicIndex:   fc.publicIndex,
		fieldMetadata: fc.fieldMetadata,
	}
}

func (fc *FunctionCircuit) AssignValues(values map[string]interface{}) error {
	assigned := make(map[string]struct{}, len(values))

	for name, rawValue := range values {
		field, ok := fc.fieldMetadata[name]
		if !ok {
			return fmt.Errorf("assignment references unknown input '%s'", name)
		}

		variable, err := convertToVariable(field, rawValue)
		if err != nil {
			return fmt.Errorf("invalid value for input '%s': %w", name, err)
		}

		if idx, ok := fc.secretIndex[name]; ok {
			fc.SecretInputs[idx] = variable
		} else if idx, ok := fc.publicIndex[name]; ok {
			fc.PublicInputs[idx] = variable
		} else {
			return fmt.Errorf("input '%s' does not map to a circuit variable", name)
		}

		assigned[name] = struct{}{}
	}

	for _, field := range fc.Function.Inputs {
		if field.Required {
			if _, ok := assigned[field.Name]; !ok {
				return fmt.Errorf("required input '%s' missing from assignments", field.Name)
			}
		}
	}

	return nil
}

func (fc *FunctionCircuit) Define(api frontend.API) error {
	for _, constraint := range fc.Function.Constraints {
		if err := fc.applyConstraint(api, constraint); err != nil {
			return err
		}
	}
	return nil
}

func (fc *FunctionCircuit) applyConstraint(api frontend.API, constraint ConstraintDefinition) error {
	switch constraint.Type {
	case ConstraintRange:
		return fc.applyRangeConstraint(api, constraint)
	case ConstraintComparison:
		return fc.applyComparisonConstraint(api, constraint)
	case ConstraintAge:
		return fc.applyAgeConstraint(api, constraint)
	default:
		return fmt.Errorf("unsupported constraint type '%s'", constraint.Type)
	}
}

func (fc *FunctionCircuit) applyRangeConstraint(api frontend.API, constraint ConstraintDefinition) error {
	if len(constraint.Fields) != 1 {
		return fmt.Errorf("range constraint requires exactly one field")
	}
	bounds, err := constraint.ValueAsNumberSlice()
	if err != nil {
		return err
	}
	if len(bounds) != 2 {
		return fmt.Errorf("range constraint requires two bounds")
	}

	minBound, err := toIntBound(bounds[0])
	if err != nil {
		return err
	}
	maxBound, err := toIntBound(bounds[1])
	if err != nil {
		return err
	}

	value, err := fc.fieldVariable(constraint.Fields[0])
	if err != nil {
		return err
	}

	api.AssertIsLessOrEqual(minBound, value)
	api.AssertIsLessOrEqual(value, maxBound)

	return nil
}

func (fc *FunctionCircuit) applyComparisonConstraint(api frontend.API, constraint ConstraintDefinition) error {
	if len(constraint.Fields) == 0 {
		return fmt.Errorf("comparison constraint must declare at least one field")
	}

	left, err := fc.fieldVariable(constraint.Fields[0])
	if err != nil {
		return err
	}

	var right frontend.Variable
	if len(constraint.Fields) > 1 {
		right, err = fc.fieldVariable(constraint.Fields[1])
		if err != nil {
			return err
		}
	} else {
		number, err := constraint.ValueAsInt()
		if err != nil {
			return err
		}
		right = number
	}

	switch constraint.Operator {
	case "greater_equal", "ge":
		api.AssertIsLessOrEqual(right, left)
	case "greater_than", "gt":
		api.AssertIsLessOrEqual(api.Add(right, 1), left)
	case "less_equal", "le":
		api.AssertIsLessOrEqual(left, right)
	case "less_than", "lt":
		api.AssertIsLessOrEqual(api.Add(left, 1), right)
	case "equal", "eq":
		api.AssertIsEqual(left, right)
	case "not_equal", "ne":
		api.AssertIsDifferent(left, right)
	default:
		return fmt.Errorf("unsupported comparison operator '%s'", constraint.Operator)
	}

	return nil
}

// applyAgeConstraint proves a minimum age from birth date inputs. The six
// field form takes the current date as public inputs; the three field form
// reads the host clock and is kept for compatibility only.
func (fc *FunctionCircuit) applyAgeConstraint(api frontend.API, constraint ConstraintDefinition) error {
	minAge, err := constraint.ValueAsInt()
	if err != nil {
		return err
	}

	var (
		birthYear, birthMonth, birthDay frontend.Variable
		currYear, currMonth, currDay    frontend.Variable
	)

	switch len(constraint.Fields) {
	case 3:
		by, err := fc.fieldVariable(constraint.Fields[0])
		if err != nil {
			return err
		}
		bm, err := fc.fieldVariable(constraint.Fields[1])
		if err != nil {
			return err
		}
		bd, err := fc.fieldVariable(constraint.Fields[2])
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		birthYear, birthMonth, birthDay = by, bm, bd
		currYear = frontend.Variable(now.Year())
		currMonth = frontend.Variable(int(now.Month()))
		currDay = frontend.Variable(now.Day())

	case 6:
		var err error
		birthYear, err = fc.fieldVariable(constraint.Fields[0])
		if err != nil {
			return err
		}
		birthMonth, err = fc.fieldVariable(constraint.Fields[1])
		if err != nil {
			return err
		}
		birthDay, err = fc.fieldVariable(constraint.Fields[2])
		if err != nil {
			return err
		}

		currYear, err = fc.fieldVariable(constraint.Fields[3])
		if err != nil {
			return err
		}
		currMonth, err = fc.fieldVariable(constraint.Fields[4])
		if err != nil {
			return err
		}
		currDay, err = fc.fieldVariable(constraint.Fields[5])
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("age constraint expects 3 (birth_*) or 6 (birth_* + current_*) fields, got %d", len(constraint.Fields))
	}

	api.AssertIsLessOrEqual(1, birthMonth)
	api.AssertIsLessOrEqual(birthMonth, 12)
	api.AssertIsLessOrEqual(1, birthDay)
	api.AssertIsLessOrEqual(birthDay, 31)

	api.AssertIsLessOrEqual(1, currMonth)
	api.AssertIsLessOrEqual(currMonth, 12)
	api.AssertIsLessOrEqual(1, currDay)
	api.AssertIsLessOrEqual(currDay, 31)

	// Minimum valid birth year for the requested age
	minValidYear := api.Sub(currYear, minAge)

	api.AssertIsLessOrEqual(birthYear, minValidYear)

	// If birth_year == minValidYear, then birth_month <= current_month
	yearIsMin := api.IsZero(api.Sub(birthYear, minValidYear))
	api.AssertIsLessOrEqual(
		birthMonth,
		api.Select(yearIsMin, currMonth, 12),
	)

	// If also birth_month == current_month (and yearIsMin), then birth_day <= current_day
	monthIsCurr := api.IsZero(api.Sub(birthMonth, currMonth))
	api.AssertIsLessOrEqual(
		birthDay,
		api.Select(api.And(yearIsMin, monthIsCurr), currDay, 31),
	)

	return nil
}

func toIntBound(bound float64) (int64, error) {
	if math.Trunc(bound) != bound {
		return 0, fmt.Errorf("range constraint bound must be whole number, got %v", bound)
	}
	return int64(bound), nil
}

func (fc *FunctionCircuit) fieldVariable(name string) (frontend.Variable, error) {
	if idx, ok := fc.secretIndex[name]; ok {
		return fc.SecretInputs[idx], nil
	}
	if idx, ok := fc.publicIndex[name]; ok {
		return fc.PublicInputs[idx], nil
	}
	return nil, fmt.Errorf("unknown circuit input '%s'", name)
}
