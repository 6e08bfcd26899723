package wot

import "nostrwot/internal/keys"

// AddPublicKey resolves or creates the node for a public key given in hex or
// npub form, deriving its fixed-width label. It fails only when the key
// itself is malformed; label collisions between distinct keys are tolerated
// and resolve to the already-present node.
func (g *Graph) AddPublicKey(raw string) (NodeID, error) {
	pk, err := keys.ParsePublicKey(raw)
	if err != nil {
		return 0, err
	}
	return g.AddUniqueNode(Label(pk.Label())), nil
}
