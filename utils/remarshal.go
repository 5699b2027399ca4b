package utils

import (
	"fmt"

	"github.com/go-json-experiment/json"
)

// Remarshal copies input into output through its JSON form, typically
// to turn a struct into a map[string]any that can be matched by field.
func Remarshal(input, output any) error {
	b, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("remarshal: %w", err)
	}
	return json.Unmarshal(b, output)
}
