package order

import (
	"fmt"

	"github.com/coldbell/etf/backend/internal/txn"
	"github.com/gagliardetto/solana-go"
)

// bundle packs groups into transactions. Fewer than two groups are taken as
// they are. The compute budget prefix is added to every bundle it still fits.
func (o *Orchestrator) bundle(groups [][]solana.Instruction) ([][]solana.Instruction, error) {
	bundles := groups
	if len(groups) >= 2 {
		var err error
		bundles, err = o.bundler.Partition(groups)
		if err != nil {
			return nil, fmt.Errorf("partition instruction groups: %w", err)
		}
	}

	prefix, err := o.cfg.ComputeBudget.Instructions()
	if err != nil {
		return nil, err
	}
	if len(prefix) == 0 {
		return bundles, nil
	}

	out := make([][]solana.Instruction, len(bundles))
	for i, b := range bundles {
		withPrefix := append(append(make([]solana.Instruction, 0, len(prefix)+len(b)), prefix...), b...)
		fits, err := o.bundler.Fits(withPrefix)
		if err != nil {
			return nil, err
		}
		if fits {
			out[i] = withPrefix
		} else {
			out[i] = b
		}
	}
	return out, nil
}

// orderLayout maps execute bundles to waves: one bundle is the whole order,
// two are transfer then finalize, more are transfer-start, the remaining
// transfers in parallel, then finalize.
func orderLayout(bundles [][]solana.Instruction) [][]txn.Request {
	n := len(bundles)
	switch n {
	case 0:
		return nil
	case 1:
		return [][]txn.Request{{{Instructions: bundles[0], Tag: txn.NewTag(txn.TagOrder)}}}
	case 2:
		return [][]txn.Request{
			{{Instructions: bundles[0], Tag: txn.NewTag(txn.TagTransfer)}},
			{{Instructions: bundles[1], Tag: txn.NewTag(txn.TagFinalize)}},
		}
	}

	group := txn.NewTag(txn.TagTransfer)
	transfers := make([]txn.Request, 0, n-2)
	for i := 1; i < n-1; i++ {
		transfers = append(transfers, txn.Request{
			Instructions: bundles[i],
			Tag:          txn.IndexedTag(txn.TagTransfer, i),
			GroupTag:     group,
		})
	}
	return [][]txn.Request{
		{{Instructions: bundles[0], Tag: txn.NewTag(txn.TagTransferStart), GroupTag: group}},
		transfers,
		{{Instructions: bundles[n-1], Tag: txn.NewTag(txn.TagFinalize)}},
	}
}

// cancelLayout reverses every leg in parallel and closes the order last.
func cancelLayout(bundles [][]solana.Instruction) [][]txn.Request {
	n := len(bundles)
	switch n {
	case 0:
		return nil
	case 1:
		return [][]txn.Request{{{Instructions: bundles[0], Tag: txn.NewTag(txn.TagCancel)}}}
	}

	group := txn.NewTag(txn.TagCancel)
	legs := make([]txn.Request, 0, n-1)
	for i := 0; i < n-1; i++ {
		legs = append(legs, txn.Request{
			Instructions: bundles[i],
			Tag:          txn.IndexedTag(txn.TagCancelLeg, i+1),
			GroupTag:     group,
		})
	}
	return [][]txn.Request{
		legs,
		{{Instructions: bundles[n-1], Tag: group}},
	}
}
