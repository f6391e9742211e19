package txn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
)

type TagKind uint8

const (
	TagNone TagKind = iota
	TagOrder
	TagTransferStart
	TagTransfer
	TagFinalize
	TagCancel
	TagCancelLeg
	TagSourceIn
	TagSourceOut
)

var tagKindNames = map[TagKind]string{
	TagOrder:         "order",
	TagTransferStart: "transfer-start",
	TagTransfer:      "transfer",
	TagFinalize:      "finalize",
	TagCancel:        "cancel",
	TagCancelLeg:     "cancel-leg",
	TagSourceIn:      "source-in",
	TagSourceOut:     "source-out",
}

func (k TagKind) String() string {
	if name, ok := tagKindNames[k]; ok {
		return name
	}
	return "none"
}

func parseTagKind(raw string) (TagKind, bool) {
	for kind, name := range tagKindNames {
		if name == raw {
			return kind, true
		}
	}
	return TagNone, false
}

// Tag identifies the logical operation a transaction belongs to. Asset is set
// for per-asset operations (swap legs), Index for numbered bundles of one
// operation. The zero Tag means "no tag".
type Tag struct {
	Kind  TagKind
	Asset solana.PublicKey
	Index int
}

func NewTag(kind TagKind) Tag {
	return Tag{Kind: kind}
}

func AssetTag(kind TagKind, asset solana.PublicKey) Tag {
	return Tag{Kind: kind, Asset: asset}
}

func IndexedTag(kind TagKind, index int) Tag {
	return Tag{Kind: kind, Index: index}
}

func (t Tag) IsZero() bool {
	return t.Kind == TagNone
}

// String encodes the tag as kind[:asset][#index]. ParseTag is its inverse.
func (t Tag) String() string {
	if t.IsZero() {
		return ""
	}
	var b strings.Builder
	b.WriteString(t.Kind.String())
	if !t.Asset.IsZero() {
		b.WriteByte(':')
		b.WriteString(t.Asset.String())
	}
	if t.Index != 0 {
		b.WriteByte('#')
		b.WriteString(strconv.Itoa(t.Index))
	}
	return b.String()
}

func ParseTag(raw string) (Tag, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Tag{}, nil
	}

	var tag Tag
	rest := raw
	if idx := strings.LastIndexByte(rest, '#'); idx >= 0 {
		index, err := strconv.Atoi(rest[idx+1:])
		if err != nil || index == 0 {
			return Tag{}, fmt.Errorf("invalid tag index in %q", raw)
		}
		tag.Index = index
		rest = rest[:idx]
	}
	if idx := strings.IndexByte(rest, ':'); idx >= 0 {
		asset, err := solana.PublicKeyFromBase58(rest[idx+1:])
		if err != nil {
			return Tag{}, fmt.Errorf("invalid tag asset in %q: %w", raw, err)
		}
		tag.Asset = asset
		rest = rest[:idx]
	}
	kind, ok := parseTagKind(rest)
	if !ok {
		return Tag{}, fmt.Errorf("unknown tag kind %q", rest)
	}
	tag.Kind = kind
	return tag, nil
}
