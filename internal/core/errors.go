package core

import "fmt"

// FieldError indicates an invalid configuration value
type FieldError struct {
	Section string
	Key     string
	Value   string
	Reason  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid config %s.%s = %q: %s", e.Section, e.Key, e.Value, e.Reason)
}

// UnknownDigitError is returned for digit names that are neither left nor right
type UnknownDigitError struct {
	Name string
}

func (e *UnknownDigitError) Error() string {
	return fmt.Sprintf("unknown digit %q (want left or right)", e.Name)
}
