package program

import (
	"crypto/sha256"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/consensys/gnark/frontend"
)

// HashStringToFieldElement maps an arbitrary string to a field element so it
// can participate in equality constraints. The result is reduced modulo the
// scalar field during witness construction.
func HashStringToFieldElement(s string) *big.Int {
	h := sha256.Sum256([]byte(s))
	return new(big.Int).SetBytes(h[:])
}

func convertToVariable(field FieldDefinition, value interface{}) (frontend.Variable, error) {
	switch field.Type {
	case FieldTypeInteger, FieldTypeNumber:
		return numericToVariable(value)
	case FieldTypeBoolean:
		return booleanToVariable(value)
	case FieldTypeString:
		return stringToVariable(value)
	case FieldTypeDate:
		return dateToVariable(value)
	default:
		return nil, fmt.Errorf("unsupported field type '%s'", field.Type)
	}
}

func numericToVariable(value interface{}) (frontend.Variable, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case float64:
		if math.Trunc(v) != v {
			return nil, fmt.Errorf("fractional value %v cannot be a field element", v)
		}
		return int64(v), nil
	case *big.Int:
		return v, nil
	case string:
		parsed, ok := new(big.Int).SetString(strings.TrimSpace(v), 10)
		if !ok {
			return nil, fmt.Errorf("'%s' is not a decimal integer", v)
		}
		return parsed, nil
	default:
		return nil, fmt.Errorf("unsupported numeric value of type %T", value)
	}
}

func booleanToVariable(value interface{}) (frontend.Variable, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("'%s' is not a boolean", v)
		}
		if parsed {
			return 1, nil
		}
		return 0, nil
	default:
		return nil, fmt.Errorf("unsupported boolean value of type %T", value)
	}
}

func stringToVariable(value interface{}) (frontend.Variable, error) {
	switch v := value.(type) {
	case *big.Int:
		// Pre-hashed by the caller
		return v, nil
	case string:
		return HashStringToFieldElement(v), nil
	default:
		return HashStringToFieldElement(fmt.Sprint(value)), nil
	}
}

// dateToVariable encodes a date as year*10000 + month*100 + day, which keeps
// calendar ordering under integer comparison.
func dateToVariable(value interface{}) (frontend.Variable, error) {
	switch v := value.(type) {
	case time.Time:
		return encodeDate(v), nil
	case string:
		parsed, err := time.Parse("2006-01-02", strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}
		return encodeDate(parsed), nil
	case int, int64, float64:
		return numericToVariable(v)
	default:
		return nil, fmt.Errorf("unsupported date value of type %T", value)
	}
}

func encodeDate(t time.Time) int64 {
	return int64(t.Year())*10000 + int64(t.Month())*100 + int64(t.Day())
}
