package fdw

import (
	"errors"
	"fmt"
)

// SQLSTATE codes of the foreign data wrapper error class.
const (
	CodeFdwError                    = "HV000"
	CodeOptionNameNotFound          = "HV00D"
	CodeUnableToEstablishConnection = "HV00N"
	CodeTableNotFound               = "HV00R"
	CodeInvalidOptionValue          = "HV024"
)

// ErrorReport is the single error shape a host renders to the operator.
type ErrorReport struct {
	Code    string
	Message string
	Hint    string
}

func (r ErrorReport) Error() string {
	return fmt.Sprintf("%s: %s", r.Code, r.Message)
}

// Reporter is implemented by errors that know how to render themselves.
type Reporter interface {
	Report() ErrorReport
}

// ToReport converts any error into an ErrorReport.
// It returns the zero report for a nil error.
func ToReport(err error) ErrorReport {
	if err == nil {
		return ErrorReport{}
	}

	var rep Reporter
	if errors.As(err, &rep) {
		return rep.Report()
	}

	var report ErrorReport
	if errors.As(err, &report) {
		return report
	}

	return ErrorReport{
		Code:    CodeFdwError,
		Message: err.Error(),
	}
}
