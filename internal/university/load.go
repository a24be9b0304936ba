package university

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sample returns the built-in worked example: urjc with a maths and a
// computer science department.
func Sample() University {
	return University{
		Name:      "urjc",
		Community: 7500,
		Departments: []Department{
			{Budget: 80000},
			{Budget: 100000},
		},
	}
}

// Load reads a university definition from a YAML file.
func Load(path string) (University, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return University{}, fmt.Errorf("failed to read university file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML university definition.
func Parse(data []byte) (University, error) {
	var u University
	if err := yaml.Unmarshal(data, &u); err != nil {
		return University{}, fmt.Errorf("failed to parse university: %w", err)
	}
	if err := u.Validate(); err != nil {
		return University{}, err
	}
	return u, nil
}

// Validate rejects definitions the accessors are not defined over.
func (u University) Validate() error {
	if u.Name == "" {
		return fmt.Errorf("university name must not be empty")
	}
	if u.Community < 0 {
		return fmt.Errorf("community fund must not be negative, got %d", u.Community)
	}
	for i, d := range u.Departments {
		if d.Budget < 0 {
			return fmt.Errorf("department %d budget must not be negative, got %d", i, d.Budget)
		}
	}
	return nil
}
