package main

import (
	"fmt"
	"path/filepath"

	"github.com/ddenet/chain/jsonutil"
	"github.com/ddenet/chain/storage"
)

type showCmd struct {
	TxHash         string `short:"t" long:"txhash" description:"Hash of the transaction to print"`
	MerkleRootHash string `short:"m" long:"merkleroot" description:"Merkle root hash of the block to print"`
}

func (c *showCmd) Execute(args []string) error {
	if c.TxHash == "" && c.MerkleRootHash == "" {
		return fmt.Errorf("one of --txhash or --merkleroot is required")
	}

	store, err := storage.Open(filepath.Join(cfg.DataDir, "chainstore"))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	if c.TxHash != "" {
		tx, ok, err := store.GetTransaction(c.TxHash)
		if err != nil {
			return fmt.Errorf("look up transaction: %w", err)
		}
		if !ok {
			return fmt.Errorf("no such transaction: %s", c.TxHash)
		}
		pretty, err := jsonutil.Pretty(tx)
		if err != nil {
			return err
		}
		fmt.Println(pretty)
		return nil
	}

	block, ok, err := store.GetBlock(c.MerkleRootHash)
	if err != nil {
		return fmt.Errorf("look up block: %w", err)
	}
	if !ok {
		return fmt.Errorf("no such block: %s", c.MerkleRootHash)
	}
	pretty, err := jsonutil.Pretty(block)
	if err != nil {
		return err
	}
	fmt.Println(pretty)
	return nil
}
