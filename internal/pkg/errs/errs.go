package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrObjectAlreadyExists    = errors.New("object already exists")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrValueIsRequired        = errors.New("value is required")
	ErrConcurrentModification = errors.New("object was modified concurrently")
)

// ObjectNotFoundError reports a lookup by identifier that matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError reports a write that would break a uniqueness rule.
type ObjectAlreadyExistsError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, value any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		Value:     value,
	}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, value any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		Value:     value,
		Cause:     cause,
	}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %v (cause: %v)",
			ErrObjectAlreadyExists, e.ParamName, sanitize(e.Value), e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrObjectAlreadyExists, e.ParamName, sanitize(e.Value))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
	}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
	}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// IsValidation reports whether err carries any of the input validation sentinels.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}
