package profiles

import (
	"fmt"
)

// Validate checks the configuration for errors.
func (c *ProfilesConfig) Validate() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles specified in configuration")
	}

	seen := make(map[string]struct{}, len(c.Profiles))
	for i := range c.Profiles {
		if err := c.Profiles[i].Validate(); err != nil {
			return fmt.Errorf("profile %d: %w", i+1, err)
		}
		name := c.Profiles[i].Name
		if _, ok := seen[name]; ok {
			return fmt.Errorf("duplicate profile name: %q", name)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// Validate checks a single profile for data structure validity.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(p.Columns) == 0 {
		return fmt.Errorf("at least one column is required")
	}

	seen := make(map[string]struct{}, len(p.Columns))
	for _, col := range p.Columns {
		if col == "" {
			return fmt.Errorf("column names cannot be empty")
		}
		if _, ok := seen[col]; ok {
			return fmt.Errorf("duplicate column name: %q", col)
		}
		seen[col] = struct{}{}
	}

	return nil
}
