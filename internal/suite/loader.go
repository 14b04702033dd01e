package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*TestSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func validate(s *TestSuite) error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite has no cases")
	}
	if s.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %g", s.Tolerance)
	}
	if s.Tolerance == 0 {
		s.Tolerance = DefaultTolerance
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return fmt.Errorf("case at index %d has no id", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true

		switch {
		case c.Expect != nil && c.Error != ErrorNone:
			return fmt.Errorf("case %q sets both expect and error", c.ID)
		case c.Expect == nil && c.Error == ErrorNone:
			return fmt.Errorf("case %q sets neither expect nor error", c.ID)
		case c.Error != ErrorNone && !validErrorKinds[c.Error]:
			return fmt.Errorf("case %q has invalid error kind %q", c.ID, c.Error)
		}
	}
	return nil
}
