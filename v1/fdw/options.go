package fdw

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOptionNotFound is wrapped by every OptionsError caused by a missing option.
	ErrOptionNotFound = errors.New("option not found")

	// ErrInvalidOption is wrapped by every OptionsError caused by an unusable value.
	ErrInvalidOption = errors.New("invalid option value")
)

// OptionsError reports a missing, empty or unusable option.
type OptionsError struct {
	Name string
	// Reason is empty for a missing option and describes the problem otherwise.
	Reason string
}

func (e *OptionsError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid value for option `%s`: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("required option `%s` is not specified", e.Name)
}

func (e *OptionsError) Unwrap() error {
	if e.Reason != "" {
		return ErrInvalidOption
	}
	return ErrOptionNotFound
}

// Report renders the error for the host.
func (e *OptionsError) Report() ErrorReport {
	if e.Reason != "" {
		return ErrorReport{
			Code:    CodeInvalidOptionValue,
			Message: e.Error(),
		}
	}
	return ErrorReport{
		Code:    CodeOptionNameNotFound,
		Message: e.Error(),
		Hint:    fmt.Sprintf("add `%s` to the OPTIONS clause", e.Name),
	}
}

// IsOptionsError checks whether err was caused by a missing or invalid option.
func IsOptionsError(err error) bool {
	return errors.Is(err, ErrOptionNotFound) || errors.Is(err, ErrInvalidOption)
}

// RequireOption returns the value of a required option.
// An absent key and an empty value are both treated as missing.
func RequireOption(name string, opts Options) (string, error) {
	v, ok := opts[name]
	if !ok || strings.TrimSpace(v) == "" {
		return "", &OptionsError{Name: name}
	}
	return v, nil
}

// OptionOrDefault returns the option value or def when it is absent or empty.
func OptionOrDefault(name string, opts Options, def string) string {
	if v, ok := opts[name]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

// CheckOptionsContain checks that the DDL option list carries a non-empty
// `name=value` entry. Nil entries are skipped.
func CheckOptionsContain(list []*string, name string) error {
	prefix := name + "="
	for _, opt := range list {
		if opt == nil {
			continue
		}
		if v, ok := strings.CutPrefix(*opt, prefix); ok && strings.TrimSpace(v) != "" {
			return nil
		}
	}
	return &OptionsError{Name: name}
}

// OptionList renders an option mapping as the `key=value` list a host hands
// to a validator.
func OptionList(opts Options) []*string {
	list := make([]*string, 0, len(opts))
	for k, v := range opts {
		s := k + "=" + v
		list = append(list, &s)
	}
	return list
}
