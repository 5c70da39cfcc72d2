package primitives

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ddenet/chain/wire"
)

// TokenAmount is a checked-arithmetic token quantity. Addition fails loudly
// on overflow rather than wrapping, since a silently wrapped token amount
// would be a consensus-breaking bug.
type TokenAmount uint64

// Add returns a+b, or an error if the sum would overflow a uint64.
func (a TokenAmount) Add(b TokenAmount) (TokenAmount, error) {
	sum := a + b
	if sum < a {
		return 0, fmt.Errorf("primitives: token amount overflow: %d + %d", a, b)
	}
	return sum, nil
}

// AssetKind identifies which variant of the Asset tagged union is
// populated. Encoded on the wire as a little-endian uint32 discriminant.
type AssetKind uint32

const (
	AssetToken AssetKind = iota
	AssetData
	AssetItem
	AssetReceipt
)

func (k AssetKind) String() string {
	switch k {
	case AssetToken:
		return "Token"
	case AssetData:
		return "Data"
	case AssetItem:
		return "Item"
	case AssetReceipt:
		return "Receipt"
	default:
		return fmt.Sprintf("AssetKind(%d)", uint32(k))
	}
}

// Asset is the tagged union of value transferred by a TxOut: exactly one
// of Token(amount), Data(payload, amount), Item(amount, genesis hash,
// metadata), or Receipt(amount).
type Asset struct {
	Kind   AssetKind
	Amount TokenAmount

	// Data holds the payload for AssetData.
	Data []byte

	// GenesisHash and Metadata are populated only for AssetItem. Metadata
	// must not exceed MaxMetadataBytes.
	GenesisHash *string
	Metadata    []byte
}

// NewTokenAsset constructs a Token asset carrying amount.
func NewTokenAsset(amount TokenAmount) Asset {
	return Asset{Kind: AssetToken, Amount: amount}
}

// NewDataAsset constructs a Data asset carrying payload and amount.
func NewDataAsset(payload []byte, amount TokenAmount) Asset {
	return Asset{Kind: AssetData, Data: payload, Amount: amount}
}

// NewItemAsset constructs an Item asset. It returns an error if metadata
// exceeds MaxMetadataBytes.
func NewItemAsset(amount TokenAmount, genesisHash *string, metadata []byte) (Asset, error) {
	if len(metadata) > MaxMetadataBytes {
		return Asset{}, fmt.Errorf("primitives: item metadata %d bytes exceeds max %d", len(metadata), MaxMetadataBytes)
	}
	return Asset{Kind: AssetItem, Amount: amount, GenesisHash: genesisHash, Metadata: metadata}, nil
}

// NewReceiptAsset constructs a Receipt asset carrying amount.
func NewReceiptAsset(amount TokenAmount) Asset {
	return Asset{Kind: AssetReceipt, Amount: amount}
}

// TokenValue returns the asset's token amount if it is a Token asset, and
// zero otherwise. Validators use this to accumulate conserved value:
// non-token assets contribute nothing toward the token cap.
func (a Asset) TokenValue() TokenAmount {
	if a.Kind == AssetToken {
		return a.Amount
	}
	return 0
}

// MarshalBinary encodes the asset using the module's wire contract: a
// little-endian uint32 discriminant followed by the variant payload.
func (a Asset) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	w.PutUint32(uint32(a.Kind))
	w.PutUint64(uint64(a.Amount))
	switch a.Kind {
	case AssetData:
		w.PutBytes(a.Data)
	case AssetItem:
		w.PutOptionalString(a.GenesisHash)
		w.PutOptionalBytes(a.Metadata, a.Metadata != nil)
	}
	return buf.Bytes(), w.Err()
}

// UnmarshalBinary decodes an asset previously produced by MarshalBinary.
func (a *Asset) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(bytes.NewReader(data))
	kind := AssetKind(r.Uint32())
	amount := TokenAmount(r.Uint64())
	out := Asset{Kind: kind, Amount: amount}
	switch kind {
	case AssetData:
		out.Data = r.Bytes()
	case AssetItem:
		out.GenesisHash = r.OptionalString()
		out.Metadata = r.OptionalBytes()
	}
	if r.Err() != nil {
		return r.Err()
	}
	*a = out
	return nil
}

type assetJSON struct {
	Kind        string  `json:"kind"`
	Amount      uint64  `json:"amount"`
	Data        *string `json:"data,omitempty"`
	GenesisHash *string `json:"genesis_hash,omitempty"`
	Metadata    *string `json:"metadata,omitempty"`
}

// MarshalJSON encodes the asset as a kind-tagged object; byte payloads are
// hex strings.
func (a Asset) MarshalJSON() ([]byte, error) {
	out := assetJSON{Kind: a.Kind.String(), Amount: uint64(a.Amount)}
	if a.Kind == AssetData {
		s, err := hexPtr(a.Data)
		if err != nil {
			return nil, err
		}
		out.Data = s
	}
	if a.Kind == AssetItem {
		out.GenesisHash = a.GenesisHash
		if a.Metadata != nil {
			s, err := hexPtr(a.Metadata)
			if err != nil {
				return nil, err
			}
			out.Metadata = s
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes an asset previously produced by MarshalJSON.
func (a *Asset) UnmarshalJSON(data []byte) error {
	var in assetJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	kind, err := assetKindFromString(in.Kind)
	if err != nil {
		return err
	}
	out := Asset{Kind: kind, Amount: TokenAmount(in.Amount)}
	if in.Data != nil {
		b, err := unhex(*in.Data)
		if err != nil {
			return err
		}
		out.Data = b
	}
	if kind == AssetItem {
		out.GenesisHash = in.GenesisHash
		if in.Metadata != nil {
			b, err := unhex(*in.Metadata)
			if err != nil {
				return err
			}
			if len(b) > MaxMetadataBytes {
				return fmt.Errorf("primitives: item metadata %d bytes exceeds max %d", len(b), MaxMetadataBytes)
			}
			out.Metadata = b
		}
	}
	*a = out
	return nil
}

func assetKindFromString(s string) (AssetKind, error) {
	switch s {
	case "Token":
		return AssetToken, nil
	case "Data":
		return AssetData, nil
	case "Item":
		return AssetItem, nil
	case "Receipt":
		return AssetReceipt, nil
	default:
		return 0, fmt.Errorf("primitives: unknown asset kind %q", s)
	}
}
