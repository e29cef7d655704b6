// Package repositories holds the BadgerDB-backed configuration stores.
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"confgw/acl"
	"confgw/domain"
)

const policyPrefix = "acl:"

// PolicyRecord is the stored shape of one room's access policy.
type PolicyRecord struct {
	Mode  string   `json:"mode"`
	Allow []string `json:"allow,omitempty"`
	Deny  []string `json:"deny,omitempty"`
}

// PolicyStore persists per-room ACL policy in Badger under acl:{room}
// keys. It implements acl.Provider: rooms without a stored record get
// the zero Policy, which admits everyone.
type PolicyStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewPolicyStore(db *badger.DB, log *slog.Logger) *PolicyStore {
	return &PolicyStore{db: db, log: log}
}

func policyKey(room domain.RoomAddress) []byte {
	return []byte(policyPrefix + room.String())
}

func (p *PolicyStore) Put(room domain.RoomAddress, rec PolicyRecord) error {
	if _, err := compile(rec); err != nil {
		return err
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return p.db.Update(func(txn *badger.Txn) error {
		return txn.Set(policyKey(room), raw)
	})
}

// Get returns the stored record and whether one exists.
func (p *PolicyStore) Get(room domain.RoomAddress) (PolicyRecord, bool, error) {
	var rec PolicyRecord
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(policyKey(room))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err == badger.ErrKeyNotFound {
		return PolicyRecord{}, false, nil
	}
	if err != nil {
		return PolicyRecord{}, false, err
	}
	return rec, true, nil
}

// List returns all stored records keyed by room address.
func (p *PolicyStore) List() (map[string]PolicyRecord, error) {
	out := make(map[string]PolicyRecord)
	err := p.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(policyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			room := string(item.Key()[len(prefix):])
			err := item.Value(func(val []byte) error {
				var rec PolicyRecord
				if err := json.Unmarshal(val, &rec); err != nil {
					return err
				}
				out[room] = rec
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PolicyFor implements acl.Provider. Storage or compilation problems are
// logged and fall back to the default-allow policy; admission must not
// fail closed on a configuration read error.
func (p *PolicyStore) PolicyFor(room domain.RoomAddress) acl.Policy {
	rec, ok, err := p.Get(room)
	if err != nil {
		p.log.Error("Policy lookup failed", "room", room.String(), "error", err)
		return acl.Policy{}
	}
	if !ok {
		return acl.Policy{}
	}
	policy, err := compile(rec)
	if err != nil {
		p.log.Error("Stored policy does not compile", "room", room.String(), "error", err)
		return acl.Policy{}
	}
	return policy
}

func compile(rec PolicyRecord) (acl.Policy, error) {
	allow, err := acl.CompileMatcher(rec.Allow...)
	if err != nil {
		return acl.Policy{}, fmt.Errorf("allow: %w", err)
	}
	deny, err := acl.CompileMatcher(rec.Deny...)
	if err != nil {
		return acl.Policy{}, fmt.Errorf("deny: %w", err)
	}
	return acl.Policy{Mode: acl.ParseMode(rec.Mode), Allow: allow, Deny: deny}, nil
}
