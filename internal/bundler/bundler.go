package bundler

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// MaxTransactionSize is the largest serialized transaction a Solana packet
// carries.
const MaxTransactionSize = 1232

const signatureLength = 64

var (
	ErrEmptyInput          = errors.New("at least two instruction groups are required")
	ErrInstructionTooLarge = errors.New("instruction does not fit into a transaction")
)

// Bundler packs instruction groups into as few size-bounded transactions as
// it can. Group boundaries are kept unless a group alone exceeds the limit.
type Bundler struct {
	payer   solana.PublicKey
	maxSize int
}

func New(payer solana.PublicKey, maxSize int) *Bundler {
	if maxSize <= 0 {
		maxSize = MaxTransactionSize
	}
	return &Bundler{payer: payer, maxSize: maxSize}
}

func (b *Bundler) MaxSize() int {
	return b.maxSize
}

func (b *Bundler) Partition(groups [][]solana.Instruction) ([][]solana.Instruction, error) {
	if len(groups) < 2 {
		return nil, ErrEmptyInput
	}

	var (
		bundles [][]solana.Instruction
		current []solana.Instruction
	)
	flush := func() {
		if len(current) > 0 {
			bundles = append(bundles, current)
			current = nil
		}
	}

	for groupIdx, group := range groups {
		if len(group) == 0 {
			continue
		}

		fits, err := b.Fits(concat(current, group))
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", groupIdx, err)
		}
		if fits {
			current = concat(current, group)
			continue
		}

		alone, err := b.Fits(group)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", groupIdx, err)
		}
		if alone {
			flush()
			current = concat(nil, group)
			continue
		}

		for ixIdx, ix := range group {
			fits, err := b.Fits(concat(current, []solana.Instruction{ix}))
			if err != nil {
				return nil, fmt.Errorf("group %d instruction %d: %w", groupIdx, ixIdx, err)
			}
			if fits {
				current = append(current, ix)
				continue
			}
			flush()
			single, err := b.Fits([]solana.Instruction{ix})
			if err != nil {
				return nil, fmt.Errorf("group %d instruction %d: %w", groupIdx, ixIdx, err)
			}
			if !single {
				return nil, fmt.Errorf("%w: group %d instruction %d", ErrInstructionTooLarge, groupIdx, ixIdx)
			}
			current = []solana.Instruction{ix}
		}
	}
	flush()
	return bundles, nil
}

func (b *Bundler) Fits(instructions []solana.Instruction) (bool, error) {
	size, err := b.Size(instructions)
	if err != nil {
		return false, err
	}
	return size <= b.maxSize, nil
}

// Size is the wire size of a transaction carrying instructions with the
// bundler's fee payer: signature count, signatures, then the message.
func (b *Bundler) Size(instructions []solana.Instruction) (int, error) {
	if len(instructions) == 0 {
		return 0, nil
	}
	tx, err := solana.NewTransaction(instructions, solana.Hash{}, solana.TransactionPayer(b.payer))
	if err != nil {
		return 0, fmt.Errorf("build transaction: %w", err)
	}
	message, err := tx.Message.MarshalBinary()
	if err != nil {
		return 0, fmt.Errorf("encode message: %w", err)
	}
	signatures := int(tx.Message.Header.NumRequiredSignatures)
	return compactU16Len(signatures) + signatures*signatureLength + len(message), nil
}

func compactU16Len(n int) int {
	switch {
	case n < 0x80:
		return 1
	case n < 0x4000:
		return 2
	default:
		return 3
	}
}

func concat(a, b []solana.Instruction) []solana.Instruction {
	out := make([]solana.Instruction, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
