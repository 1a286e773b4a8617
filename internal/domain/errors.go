package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDomain = errors.New("invalid domain")
	ErrInvalidTTL    = errors.New("invalid TTL")
	ErrInvalidType   = errors.New("invalid type")
	ErrRequired      = errors.New("required field missing")

	ErrUnknownProvider   = errors.New("unknown provider")
	ErrMissingCredential = errors.New("missing credential")

	ErrDNSError          = errors.New("DNS operation failed")
	ErrDNSRecordNotFound = errors.New("DNS record not found")
	ErrDNSDomainNotFound = errors.New("DNS domain not found")
)

func RequiredField(field string) error {
	return fmt.Errorf("%w: %s", ErrRequired, field)
}

func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

type OpError struct {
	Op    string
	Cause error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *OpError) Unwrap() error {
	return e.Cause
}

func NewOpError(op string, cause error) error {
	return &OpError{Op: op, Cause: cause}
}
