package bench

import (
	"encoding/json"
	"os"
)

// ReadInstance loads a JSON instance file.
func ReadInstance(path string) (Instance, error) {
	var in Instance

	raw, err := os.ReadFile(path)
	if err != nil {
		return Instance{}, err
	}
	if err = json.Unmarshal(raw, &in); err != nil {
		return Instance{}, err
	}

	return in, nil
}

// WriteInstance stores an instance as an indented JSON file.
func WriteInstance(path string, in Instance) error {
	raw, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, raw, 0o644)
}

// WriteReport stores a full comparison report as an indented JSON file.
func WriteReport(path string, r Report) error {
	raw, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, raw, 0o644)
}
