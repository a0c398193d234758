package semver

// Text encodings are used by the XML store, which stores increment methods as
// element character data.

// MarshalText implements encoding.TextMarshaler for IncrementMethod.
func (m IncrementMethod) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for IncrementMethod.
func (m *IncrementMethod) UnmarshalText(text []byte) error {
	parsed, err := ParseIncrementMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for VersionField.
func (f VersionField) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for VersionField.
func (f *VersionField) UnmarshalText(text []byte) error {
	parsed, err := ParseVersionField(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
