package signer

import (
	"context"
	"errors"
	"fmt"

	"github.com/coldbell/etf/backend/internal/txn"
	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// Gateway turns unsigned requests into signed wire payloads with one wallet
// round trip per batch.
type Gateway struct {
	wallet    Wallet
	blockhash BlockhashSource
	logger    *zap.Logger
}

func NewGateway(wallet Wallet, blockhash BlockhashSource, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		wallet:    wallet,
		blockhash: blockhash,
		logger:    logger.Named("signer"),
	}
}

func (g *Gateway) PublicKey() solana.PublicKey {
	return g.wallet.PublicKey()
}

// SignAll signs every request or none. A wallet failure is reported as
// txn.ErrSignRejected.
func (g *Gateway) SignAll(ctx context.Context, requests []txn.Request) ([]txn.SignedRequest, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	var recent solana.Hash
	if needsBlockhash(requests) {
		hash, err := g.blockhash.LatestBlockhash(ctx)
		if err != nil {
			return nil, err
		}
		recent = hash
	}

	payer := g.wallet.PublicKey()
	txs := make([]*solana.Transaction, len(requests))
	for i, req := range requests {
		tx, err := buildTransaction(req, recent, payer)
		if err != nil {
			return nil, fmt.Errorf("request %d (%s): %w", i, req.Tag, err)
		}
		if len(req.Signers) > 0 {
			sigs, err := signatures(tx, req.Signers...)
			if err != nil {
				return nil, fmt.Errorf("request %d (%s): %w", i, req.Tag, err)
			}
			tx.Signatures = sigs
		}
		txs[i] = tx
	}

	if err := g.wallet.SignAll(ctx, txs); err != nil {
		g.logger.Warn("wallet refused batch", zap.Int("transactions", len(txs)), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", txn.ErrSignRejected, err)
	}

	out := make([]txn.SignedRequest, len(requests))
	for i, tx := range txs {
		if missing := firstMissingSigner(tx); missing != nil {
			return nil, fmt.Errorf("%w: %s did not sign request %d", txn.ErrSignRejected, missing, i)
		}
		payload, err := tx.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("encode request %d (%s): %w", i, requests[i].Tag, err)
		}
		out[i] = txn.SignedRequest{
			Request:   requests[i],
			Payload:   payload,
			Signature: tx.Signatures[0],
		}
	}
	return out, nil
}

func needsBlockhash(requests []txn.Request) bool {
	for _, req := range requests {
		if req.Transaction == nil {
			return true
		}
	}
	return false
}

func buildTransaction(req txn.Request, recent solana.Hash, payer solana.PublicKey) (*solana.Transaction, error) {
	if req.Transaction != nil {
		clone := *req.Transaction
		clone.Signatures = append([]solana.Signature(nil), req.Transaction.Signatures...)
		return &clone, nil
	}
	if len(req.Instructions) == 0 {
		return nil, errors.New("request has no instructions")
	}
	tx, err := solana.NewTransaction(req.Instructions, recent, solana.TransactionPayer(payer))
	if err != nil {
		return nil, fmt.Errorf("build transaction: %w", err)
	}
	return tx, nil
}

func firstMissingSigner(tx *solana.Transaction) *solana.PublicKey {
	required := int(tx.Message.Header.NumRequiredSignatures)
	for i := 0; i < required; i++ {
		if i >= len(tx.Signatures) || tx.Signatures[i].IsZero() {
			key := tx.Message.AccountKeys[i]
			return &key
		}
	}
	return nil
}
