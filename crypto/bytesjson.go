package crypto

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// marshalHex implements the text encoding contract shared by every key,
// signature, nonce, and salt type: a hex string.
func marshalHex(b []byte) ([]byte, error) {
	return json.Marshal(hex.EncodeToString(b))
}

// unmarshalHexOrLegacy implements the deserialization contract: a hex
// string, or the legacy form of a JSON array of byte literals (as produced
// by older serializers that treated the value as a plain byte slice).
func unmarshalHexOrLegacy(data []byte, want int) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var legacy []byte
		if err := json.Unmarshal(data, &legacy); err != nil {
			var ints []int
			if err2 := json.Unmarshal(data, &ints); err2 != nil {
				return nil, fmt.Errorf("crypto: invalid legacy byte array: %w", err)
			}
			legacy = make([]byte, len(ints))
			for i, v := range ints {
				legacy[i] = byte(v)
			}
		}
		if want >= 0 && len(legacy) != want {
			return nil, fmt.Errorf("crypto: expected %d bytes, got %d", want, len(legacy))
		}
		return legacy, nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("crypto: invalid hex string: %w", err)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("crypto: invalid hex string: %w", err)
	}
	if want >= 0 && len(b) != want {
		return nil, fmt.Errorf("crypto: expected %d bytes, got %d", want, len(b))
	}
	return b, nil
}
