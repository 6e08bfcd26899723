package keys

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/cespare/xxhash/v2"
)

// PublicKey is a 32-byte nostr public key.
type PublicKey [32]byte

// ParsePublicKey parses a public key given as 64 hex characters or in the
// NIP-19 bech32 form ("npub1..."). It fails only on malformed input; it
// never inspects whether the key is known to any graph.
func ParsePublicKey(s string) (PublicKey, error) {
	var pk PublicKey

	if strings.HasPrefix(s, "npub1") {
		hrp, data, err := bech32.Decode(s)
		if err != nil {
			return pk, fmt.Errorf("decoding npub: %w", err)
		}
		if hrp != "npub" {
			return pk, fmt.Errorf("unexpected bech32 prefix %q, want \"npub\"", hrp)
		}
		raw, err := bech32.ConvertBits(data, 5, 8, false)
		if err != nil {
			return pk, fmt.Errorf("decoding npub: %w", err)
		}
		if len(raw) != len(pk) {
			return pk, fmt.Errorf("npub payload is %d bytes, want %d", len(raw), len(pk))
		}
		copy(pk[:], raw)
		return pk, nil
	}

	if len(s) != hex.EncodedLen(len(pk)) {
		return pk, fmt.Errorf("public key must be %d hex characters or an npub, got %d characters",
			hex.EncodedLen(len(pk)), len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return pk, fmt.Errorf("decoding hex public key: %w", err)
	}
	copy(pk[:], raw)
	return pk, nil
}

// Label derives the fixed 8-byte graph label for the key: the xxHash-64
// digest of the raw key bytes, packed little-endian. The derivation is
// deterministic; distinct keys may collide, which the graph tolerates.
func (pk PublicKey) Label() [8]byte {
	var label [8]byte
	binary.LittleEndian.PutUint64(label[:], xxhash.Sum64(pk[:]))
	return label
}

func (pk PublicKey) String() string {
	return hex.EncodeToString(pk[:])
}
