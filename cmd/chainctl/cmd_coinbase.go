package main

import (
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/ddenet/chain/crypto"
	"github.com/ddenet/chain/jsonutil"
	"github.com/ddenet/chain/primitives"
	"github.com/ddenet/chain/storage"
	"github.com/ddenet/chain/txbuilder"
)

type coinbaseCmd struct {
	BlockNum  uint64 `short:"b" long:"blocknum" description:"Block height this coinbase was mined at" required:"true"`
	PublicKey string `short:"k" long:"pubkey" description:"Hex-encoded Ed25519 public key to mint to" required:"true"`
	Amount    uint64 `short:"a" long:"amount" description:"Number of tokens to mint" required:"true"`
}

func (c *coinbaseCmd) Execute(args []string) error {
	raw, err := hex.DecodeString(c.PublicKey)
	if err != nil {
		return fmt.Errorf("invalid public key: %w", err)
	}
	pk, ok := crypto.PublicKeyFromSlice(raw)
	if !ok {
		return fmt.Errorf("public key must be %d bytes, got %d", crypto.PublicKeySize, len(raw))
	}

	tx := txbuilder.BuildCoinbaseTx(c.BlockNum, pk, primitives.TokenAmount(c.Amount))
	hash, err := primitives.ConstructTxHash(tx)
	if err != nil {
		return fmt.Errorf("hash transaction: %w", err)
	}

	store, err := storage.Open(filepath.Join(cfg.DataDir, "chainstore"))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()
	if err := store.PutTransaction(hash, tx); err != nil {
		return fmt.Errorf("store transaction: %w", err)
	}

	pretty, err := jsonutil.Pretty(tx)
	if err != nil {
		return err
	}
	fmt.Printf("hash: %s\n%s\n", hash, pretty)
	return nil
}
