package wot

import (
	"fmt"

	"nostrwot/internal/db"
	"nostrwot/internal/keys"
)

// GraphFromDB builds a trust graph from the contact declarations stored in
// d. Identities are deduplicated by derived label, so the same pubkey never
// produces two nodes; declarations are applied in insertion order, keeping
// edge ids aligned with the event history.
func GraphFromDB(d *db.DB) (*Graph, error) {
	contacts, err := d.AllContacts()
	if err != nil {
		return nil, fmt.Errorf("loading contacts: %w", err)
	}

	g := NewWithCapacity(len(contacts), len(contacts))
	ids := make(map[Label]NodeID, len(contacts))

	nodeFor := func(raw string) (NodeID, error) {
		pk, err := keys.ParsePublicKey(raw)
		if err != nil {
			return 0, err
		}
		label := Label(pk.Label())
		if id, ok := ids[label]; ok {
			return id, nil
		}
		id := g.AddNode(label)
		ids[label] = id
		return id, nil
	}

	for _, c := range contacts {
		if c.Relation != int(Follow) && c.Relation != int(Mute) {
			return nil, fmt.Errorf("contact %d: relation %d: %w", c.ID, c.Relation, ErrInvalidRelation)
		}
		source, err := nodeFor(c.Pubkey)
		if err != nil {
			return nil, fmt.Errorf("contact %d: %w", c.ID, err)
		}
		target, err := nodeFor(c.Target)
		if err != nil {
			return nil, fmt.Errorf("contact %d: %w", c.ID, err)
		}
		if _, err := g.AddEdge(source, target, Relation(c.Relation)); err != nil {
			return nil, fmt.Errorf("contact %d: %w", c.ID, err)
		}
	}

	return g, nil
}
