package main

import (
	"encoding/hex"
	"fmt"

	"github.com/ddenet/chain/address"
	"github.com/ddenet/chain/crypto"
)

type genKeyCmd struct{}

func (c *genKeyCmd) Execute(args []string) error {
	pk, sk, err := crypto.GenKeyPair()
	if err != nil {
		return fmt.Errorf("generate keypair: %w", err)
	}
	fmt.Printf("public_key:  %s\n", hex.EncodeToString(pk.Bytes()))
	fmt.Printf("secret_key:  %s\n", hex.EncodeToString(sk.Bytes()))
	fmt.Printf("address:     %s\n", address.Construct(pk))
	return nil
}
