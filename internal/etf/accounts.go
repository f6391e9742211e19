package etf

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

var (
	ErrDiscriminatorMismatch = errors.New("account discriminator mismatch")

	etfTokenDiscriminator          = anchorAccountDiscriminator("EtfToken")
	orderStateDiscriminator        = anchorAccountDiscriminator("OrderState")
	transferredTokensDiscriminator = anchorAccountDiscriminator("TransferredTokens")
)

type OrderStatus uint8

const (
	OrderStatusPending OrderStatus = iota
	OrderStatusSucceeded
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusPending:
		return "pending"
	case OrderStatusSucceeded:
		return "succeeded"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

type OrderType uint8

const (
	OrderTypeConstruction OrderType = iota
	OrderTypeDeconstruction
)

func (t OrderType) String() string {
	switch t {
	case OrderTypeConstruction:
		return "construction"
	case OrderTypeDeconstruction:
		return "deconstruction"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// Underlying is one basket member. Weight is the native amount of Mint held
// per whole basket token.
type Underlying struct {
	Mint   solana.PublicKey
	Weight uint64
}

type EtfToken struct {
	Mint        solana.PublicKey
	Decimals    uint8
	Underlyings []Underlying
	Bump        uint8
}

type OrderState struct {
	EtfMint solana.PublicKey
	User    solana.PublicKey
	Status  OrderStatus
	Type    OrderType
	Amount  uint64
	Bump    uint8
}

func (o *OrderState) Pending() bool {
	return o != nil && o.Status == OrderStatusPending
}

// TransferredTokens marks which underlyings of the current order already
// moved. Bit i of Bits[i/8] belongs to Underlyings[i].
type TransferredTokens struct {
	OrderState solana.PublicKey
	Bits       []uint8
}

func (t *TransferredTokens) IsTransferred(index int) bool {
	if t == nil || index < 0 || index/8 >= len(t.Bits) {
		return false
	}
	return t.Bits[index/8]&(1<<(index%8)) != 0
}

func DecodeEtfToken(data []byte) (*EtfToken, error) {
	var out EtfToken
	if err := decodeAccount(data, etfTokenDiscriminator, &out); err != nil {
		return nil, fmt.Errorf("decode etf token: %w", err)
	}
	return &out, nil
}

func DecodeOrderState(data []byte) (*OrderState, error) {
	var out OrderState
	if err := decodeAccount(data, orderStateDiscriminator, &out); err != nil {
		return nil, fmt.Errorf("decode order state: %w", err)
	}
	return &out, nil
}

func DecodeTransferredTokens(data []byte) (*TransferredTokens, error) {
	var out TransferredTokens
	if err := decodeAccount(data, transferredTokensDiscriminator, &out); err != nil {
		return nil, fmt.Errorf("decode transferred tokens: %w", err)
	}
	return &out, nil
}

func decodeAccount(data []byte, discriminator [8]byte, out any) error {
	if len(data) < len(discriminator) {
		return fmt.Errorf("account data too short: %d bytes", len(data))
	}
	if !bytes.Equal(data[:8], discriminator[:]) {
		return ErrDiscriminatorMismatch
	}
	return bin.NewBorshDecoder(data[8:]).Decode(out)
}

// EncodeAccount is the inverse of the Decode* functions. It is used to seed
// fixtures and local validators.
func EncodeAccount(account any) ([]byte, error) {
	var discriminator [8]byte
	switch v := account.(type) {
	case *EtfToken:
		return EncodeAccount(*v)
	case *OrderState:
		return EncodeAccount(*v)
	case *TransferredTokens:
		return EncodeAccount(*v)
	case EtfToken:
		discriminator = etfTokenDiscriminator
	case OrderState:
		discriminator = orderStateDiscriminator
	case TransferredTokens:
		discriminator = transferredTokensDiscriminator
	default:
		return nil, fmt.Errorf("unknown account type %T", account)
	}

	buf := new(bytes.Buffer)
	buf.Write(discriminator[:])
	if err := bin.NewBorshEncoder(buf).Encode(account); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func anchorAccountDiscriminator(name string) [8]byte {
	hash := sha256.Sum256([]byte("account:" + name))
	var out [8]byte
	copy(out[:], hash[:8])
	return out
}
