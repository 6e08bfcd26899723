package db

// Contact is one follow or mute declaration: the author pubkey's standing
// relation toward the target pubkey. Keys are stored as given (hex or npub).
type Contact struct {
	ID        int64  `json:"id"`
	Pubkey    string `json:"pubkey"`
	Target    string `json:"target"`
	Relation  int    `json:"relation"`   // 0 = follow, 1 = mute
	CreatedAt int64  `json:"created_at"` // Unix seconds
}

// Init creates the contacts table if it does not exist
func (d *DB) Init() error {
	_, err := d.conn.Exec(`
		CREATE TABLE IF NOT EXISTS contacts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pubkey TEXT NOT NULL,
			target TEXT NOT NULL,
			relation INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_contacts_pubkey ON contacts(pubkey);
	`)
	return err
}

// InsertContact records a declaration and returns its row id
func (d *DB) InsertContact(c Contact) (int64, error) {
	res, err := d.conn.Exec(
		`INSERT INTO contacts (pubkey, target, relation, created_at) VALUES (?, ?, ?, ?)`,
		c.Pubkey, c.Target, c.Relation, c.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// AllContacts returns all declarations in insertion order
func (d *DB) AllContacts() ([]Contact, error) {
	rows, err := d.conn.Query(`
		SELECT id, pubkey, target, relation, created_at
		FROM contacts ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.Pubkey, &c.Target, &c.Relation, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// ContactCount returns the number of stored declarations
func (d *DB) ContactCount() (int, error) {
	var n int
	err := d.conn.QueryRow(`SELECT COUNT(*) FROM contacts`).Scan(&n)
	return n, err
}
