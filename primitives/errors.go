package primitives

import "fmt"

func errBlockTooLarge(n int) error {
	return fmt.Errorf("primitives: block size %d bytes exceeds max %d", n, MaxBlockSize)
}
