package semver

import "gopkg.in/yaml.v3"

// UnmarshalYAML implements yaml.Unmarshaler for VersionField.
func (f *VersionField) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseVersionField(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for VersionField.
func (f VersionField) MarshalYAML() (any, error) {
	return f.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for IncrementMethod.
func (m *IncrementMethod) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseIncrementMethod(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for IncrementMethod.
func (m IncrementMethod) MarshalYAML() (any, error) {
	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for VersioningAction.
func (a *VersioningAction) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return a.Set(s)
}

// MarshalYAML implements yaml.Marshaler for VersioningAction.
func (a VersioningAction) MarshalYAML() (any, error) {
	return a.String(), nil
}
