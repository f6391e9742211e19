package txn

import (
	"github.com/gagliardetto/solana-go"
)

// Request is an unsigned transaction: either a list of instructions that the
// signing gateway compiles, or a prebuilt transaction (aggregator swaps).
type Request struct {
	Instructions []solana.Instruction
	Transaction  *solana.Transaction
	Signers      []solana.PrivateKey
	Tag          Tag
	GroupTag     Tag
}

// CallbackTag is the tag reported to lifecycle listeners.
func (r Request) CallbackTag() Tag {
	if !r.GroupTag.IsZero() {
		return r.GroupTag
	}
	return r.Tag
}

type SignedRequest struct {
	Request
	Payload   []byte
	Signature solana.Signature
}

// Wave is a set of transactions that may be submitted concurrently. Waves of
// one submission run strictly in order.
type Wave []SignedRequest

type OutcomeStatus uint8

const (
	OutcomeConfirmed OutcomeStatus = iota + 1
	OutcomeFailed
	OutcomeTimedOut
)

func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeConfirmed:
		return "confirmed"
	case OutcomeFailed:
		return "failed"
	case OutcomeTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

type FailureKind string

const (
	FailureBroadcast FailureKind = "broadcast"
	FailureProgram   FailureKind = "program"
)

type Outcome struct {
	Status    OutcomeStatus
	Tag       Tag
	Signature solana.Signature
	Kind      FailureKind
	Message   string
	Slot      uint64
}

func Confirmed(tag Tag, sig solana.Signature) Outcome {
	return Outcome{Status: OutcomeConfirmed, Tag: tag, Signature: sig}
}

func Failed(tag Tag, sig solana.Signature, kind FailureKind, message string) Outcome {
	return Outcome{Status: OutcomeFailed, Tag: tag, Signature: sig, Kind: kind, Message: message}
}

func TimedOut(tag Tag, sig solana.Signature) Outcome {
	return Outcome{Status: OutcomeTimedOut, Tag: tag, Signature: sig}
}
