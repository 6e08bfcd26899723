package db

import (
	"strings"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { d.Close() })
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestInit_Idempotent(t *testing.T) {
	d := setupTestDB(t)
	if err := d.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
}

func TestInsertAndAllContacts(t *testing.T) {
	d := setupTestDB(t)
	a := strings.Repeat("aa", 32)
	b := strings.Repeat("bb", 32)

	first, err := d.InsertContact(Contact{Pubkey: a, Target: b, Relation: 0, CreatedAt: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := d.InsertContact(Contact{Pubkey: b, Target: a, Relation: 1, CreatedAt: 200})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Errorf("row ids should differ, got %d twice", first)
	}

	contacts, err := d.AllContacts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("got %d contacts, want 2", len(contacts))
	}
	if contacts[0].Pubkey != a || contacts[0].Target != b || contacts[0].Relation != 0 {
		t.Errorf("first contact mismatch: %+v", contacts[0])
	}
	if contacts[1].Pubkey != b || contacts[1].Relation != 1 || contacts[1].CreatedAt != 200 {
		t.Errorf("second contact mismatch: %+v", contacts[1])
	}

	n, err := d.ContactCount()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("got count %d, want 2", n)
	}
}

func TestAllContacts_Empty(t *testing.T) {
	d := setupTestDB(t)
	contacts, err := d.AllContacts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 0 {
		t.Errorf("got %d contacts, want 0", len(contacts))
	}
}
