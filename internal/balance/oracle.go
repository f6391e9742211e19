package balance

import (
	"context"
	"errors"
	"fmt"

	"github.com/coldbell/etf/backend/internal/ledger"
	"github.com/gagliardetto/solana-go"
)

// Oracle reads balances from the owner's associated token accounts.
type Oracle struct {
	reader TokenAccountReader
	owner  solana.PublicKey
}

func NewOracle(reader TokenAccountReader, owner solana.PublicKey) *Oracle {
	return &Oracle{reader: reader, owner: owner}
}

func (o *Oracle) Owner() solana.PublicKey {
	return o.owner
}

// Balance reads zero for an account that does not exist yet.
func (o *Oracle) Balance(ctx context.Context, mint solana.PublicKey) (uint64, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(o.owner, mint)
	if err != nil {
		return 0, fmt.Errorf("derive token account for %s: %w", mint, err)
	}
	amount, err := o.reader.TokenAccountBalance(ctx, ata)
	if errors.Is(err, ledger.ErrAccountNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return amount, nil
}
