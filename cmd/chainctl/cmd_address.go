package main

import (
	"encoding/hex"
	"fmt"

	"github.com/ddenet/chain/address"
	"github.com/ddenet/chain/crypto"
)

type addressCmd struct {
	PublicKey string `short:"k" long:"pubkey" description:"Hex-encoded Ed25519 public key" required:"true"`
	Scheme    string `short:"s" long:"scheme" description:"Address scheme: current, v0, or temp" default:"current"`
}

func (c *addressCmd) Execute(args []string) error {
	raw, err := hex.DecodeString(c.PublicKey)
	if err != nil {
		return fmt.Errorf("invalid public key: %w", err)
	}
	pk, ok := crypto.PublicKeyFromSlice(raw)
	if !ok {
		return fmt.Errorf("public key must be %d bytes, got %d", crypto.PublicKeySize, len(raw))
	}

	var addr string
	switch c.Scheme {
	case "current", "":
		addr = address.Construct(pk)
	case "v0":
		addr = address.ConstructV0(pk)
	case "temp":
		addr = address.ConstructTemp(pk)
	default:
		return fmt.Errorf("unknown scheme %q (want current, v0, or temp)", c.Scheme)
	}
	fmt.Println(addr)
	return nil
}
