package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
)

var ErrAccountNotFound = errors.New("account not found")

type SignatureStatus struct {
	Slot         uint64
	Confirmation rpc.ConfirmationStatusType
	Err          any
}

// SignatureResult is what a signature subscription resolves with once the
// requested commitment is reached.
type SignatureResult struct {
	Slot uint64
	Err  any
}

// PreflightError is a transaction the node refused to broadcast because its
// preflight simulation failed. Logs are the simulation logs.
type PreflightError struct {
	Code    int
	Message string
	Err     any
	Logs    []string
}

func (e *PreflightError) Error() string {
	return fmt.Sprintf("preflight failed: code=%d msg=%s", e.Code, e.Message)
}

type SimulationResult struct {
	Err  any
	Logs []string
}

type Subscription interface {
	Result() <-chan SignatureResult
	Unsubscribe() error
}

var commitmentRank = map[string]int{
	string(rpc.CommitmentProcessed): 1,
	string(rpc.CommitmentConfirmed): 2,
	string(rpc.CommitmentFinalized): 3,
}

// Reached reports whether an observed confirmation status satisfies the
// requested commitment.
func Reached(status rpc.ConfirmationStatusType, want rpc.CommitmentType) bool {
	have, ok := commitmentRank[string(status)]
	if !ok {
		return false
	}
	need, ok := commitmentRank[string(want)]
	if !ok {
		need = commitmentRank[string(rpc.CommitmentConfirmed)]
	}
	return have >= need
}

// Metrics observes JSON-RPC calls of the ledger client.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

type nopMetrics struct{}

func (nopMetrics) Observe(string, error, time.Time) {}
