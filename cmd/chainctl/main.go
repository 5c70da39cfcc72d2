// Command chainctl is a command-line utility for working with the
// module's core types directly: generating keypairs, deriving addresses,
// building coinbase transactions, validating them, and browsing
// a local transaction/block store.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	parser := flags.NewParser(&cfg, flags.Default)

	if _, err := parser.AddCommand("genkey", "generate a keypair",
		"Generates a new Ed25519 keypair and prints its public/secret key and derived address.",
		&genKeyCmd{}); err != nil {
		return err
	}
	if _, err := parser.AddCommand("address", "derive an address",
		"Derives the address for a public key under a chosen scheme.",
		&addressCmd{}); err != nil {
		return err
	}
	if _, err := parser.AddCommand("coinbase", "build a coinbase transaction",
		"Builds a coinbase transaction minting tokens to a public key.",
		&coinbaseCmd{}); err != nil {
		return err
	}
	if _, err := parser.AddCommand("validate", "validate a stored transaction",
		"Looks up a transaction by hash and checks it against its inputs' outputs.",
		&validateCmd{}); err != nil {
		return err
	}
	if _, err := parser.AddCommand("show", "print a stored transaction or block",
		"Looks up a transaction or block by hash/merkle root and prints it as JSON.",
		&showCmd{}); err != nil {
		return err
	}

	return loadConfig(parser)
}
