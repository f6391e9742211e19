package txn

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var (
	ErrSignRejected   = errors.New("sign rejected")
	ErrTimeout        = errors.New("confirmation timeout")
	ErrProgramFailure = errors.New("program failure")
)

// TimeoutError means the outcome is unknown: the transaction may still land.
type TimeoutError struct {
	Tag       Tag
	Signature solana.Signature
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("transaction %s (%s) not confirmed before deadline", e.Signature, e.Tag)
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

type ProgramFailureError struct {
	Tag       Tag
	Signature solana.Signature
	Message   string
	Err       error
}

func (e *ProgramFailureError) Error() string {
	if e.Signature.IsZero() {
		return fmt.Sprintf("transaction (%s) failed: %s", e.Tag, e.Message)
	}
	return fmt.Sprintf("transaction %s (%s) failed: %s", e.Signature, e.Tag, e.Message)
}

func (e *ProgramFailureError) Is(target error) bool {
	return target == ErrProgramFailure
}

func (e *ProgramFailureError) Unwrap() error {
	return e.Err
}

// OutcomeError converts a non-confirmed outcome to its propagated error.
func OutcomeError(outcome Outcome, cause error) error {
	switch outcome.Status {
	case OutcomeConfirmed:
		return nil
	case OutcomeTimedOut:
		return &TimeoutError{Tag: outcome.Tag, Signature: outcome.Signature}
	default:
		return &ProgramFailureError{
			Tag:       outcome.Tag,
			Signature: outcome.Signature,
			Message:   outcome.Message,
			Err:       cause,
		}
	}
}
