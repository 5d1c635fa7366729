package repositories

import (
	"encoding/json"
	"fmt"
)

// marshalSet serializes a string set for storage as a JSON array column.
// nil and empty both encode as "[]" so columns are never NULL.
func marshalSet(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to marshal set: %w", err)
	}
	return string(data), nil
}

// unmarshalSet decodes a JSON array column back into a string set.
func unmarshalSet(data string) ([]string, error) {
	if data == "" {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal set: %w", err)
	}
	return values, nil
}
