package main

import (
	"fmt"
	"path/filepath"

	"github.com/ddenet/chain/primitives"
	"github.com/ddenet/chain/storage"
	"github.com/ddenet/chain/txvalidate"
)

type validateCmd struct {
	TxHash string `short:"t" long:"txhash" description:"Hash of the transaction to validate" required:"true"`
}

func (c *validateCmd) Execute(args []string) error {
	store, err := storage.Open(filepath.Join(cfg.DataDir, "chainstore"))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	tx, ok, err := store.GetTransaction(c.TxHash)
	if err != nil {
		return fmt.Errorf("look up transaction: %w", err)
	}
	if !ok {
		return fmt.Errorf("no such transaction: %s", c.TxHash)
	}

	lookup := func(out primitives.OutPoint) (primitives.TxOut, bool) {
		referenced, ok, err := store.GetTransaction(out.THash)
		if err != nil || !ok {
			return primitives.TxOut{}, false
		}
		if out.N < 0 || int(out.N) >= len(referenced.Outputs) {
			return primitives.TxOut{}, false
		}
		return referenced.Outputs[out.N], true
	}

	if txvalidate.TxIsValid(tx, lookup) {
		fmt.Println("valid")
		return nil
	}
	fmt.Println("invalid")
	return nil
}
