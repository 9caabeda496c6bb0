package utilities

import (
	"encoding/json"
	"fmt"
	"os"
)

// JsonConfigObj is implemented by raw JSON config structs that convert
// themselves into their domain counterpart.
type JsonConfigObj[T any] interface {
	ConvertToDomain() T
}

// ReadConfig loads a JSON config file into T and returns its domain form.
func ReadConfig[T JsonConfigObj[U], U any](file string) (U, error) {
	var empty U

	content, err := os.ReadFile(file)
	if err != nil {
		return empty, fmt.Errorf("read config %s: %w", file, err)
	}

	var config T
	if err := json.Unmarshal(content, &config); err != nil {
		return empty, fmt.Errorf("parse config %s: %w", file, err)
	}

	return config.ConvertToDomain(), nil
}

// ConvertJsonArrayToDomain maps a slice of raw config objects to their domain
// forms, preserving order.
func ConvertJsonArrayToDomain[T JsonConfigObj[U], U any](jsonArray []T) []U {
	domain := make([]U, 0, len(jsonArray))
	for _, item := range jsonArray {
		domain = append(domain, item.ConvertToDomain())
	}
	return domain
}
