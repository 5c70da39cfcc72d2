// Package primitives defines the core value types of the chain: assets,
// transaction inputs/outputs, transactions, blocks, and the DRUID values
// used to pair mutually-dependent transactions. Every type implements the
// module's binary wire contract (see the wire package) and a JSON contract
// matching the rest of the module: byte fields are hex strings on the way
// out and accept either a hex string or a legacy byte-array literal on the
// way in.
package primitives

// NetworkVersion is bumped immediately after each deployed protocol
// version; it is carried in every Transaction.
const NetworkVersion = 4

// DDisplayPlaces is the number of decimal places a Token amount is
// conventionally divided by for display.
const DDisplayPlaces = 25200

// TotalTokens is the fixed maximum number of tokens that may ever exist:
// 25,200 times ten billion.
const TotalTokens uint64 = DDisplayPlaces * 10_000_000_000

// MaxMetadataBytes bounds the optional metadata payload of an Item asset.
const MaxMetadataBytes = 800

// TxPrepend is the byte prepended to every transaction hash.
const TxPrepend = 'g'

// LocktimeThreshold is the boundary below which a TxOut's locktime is
// interpreted as a block number and above which it is a UNIX timestamp.
const LocktimeThreshold uint32 = 500_000_000

// MaxBlockSize is the maximum serialized size, in bytes, of a Block.
const MaxBlockSize = 1000

// ReceiptAcceptVal is the fixed message signed/verified for receipt-based
// payments.
const ReceiptAcceptVal = "PAYMENT_ACCEPT"

// ReceiptDefaultDRSTxHash is the placeholder drs_tx_hash used by a receipt
// asset that does not reference a specific DRS transaction.
const ReceiptDefaultDRSTxHash = "default_drs_tx_hash"
