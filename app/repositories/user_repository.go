package repositories

import (
	"fmt"
	"sort"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerUserRepository implements UserRepository using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create creates a new user. Username and email uniqueness is enforced via
// index keys written in the same transaction as the record, so the
// check-and-insert is atomic.
func (r *BadgerUserRepository) Create(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		usernameKey := []byte(UsernameIdxPrefix + user.Username)
		if _, err := txn.Get(usernameKey); err == nil {
			return fmt.Errorf("username %q: %w", user.Username, ErrDuplicate)
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		emailKey := []byte(EmailIdxPrefix + user.Email)
		if _, err := txn.Get(emailKey); err == nil {
			return fmt.Errorf("email %q: %w", user.Email, ErrDuplicate)
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		id, err := getNextID(txn, UserSeqKey)
		if err != nil {
			return err
		}
		user.ID = id

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, user.ID))
		if err := txn.Set(key, data); err != nil {
			return err
		}
		if err := txn.Set(usernameKey, encodeID(user.ID)); err != nil {
			return err
		}
		return txn.Set(emailKey, encodeID(user.ID))
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id int) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user through the username index
func (r *BadgerUserRepository) GetByUsername(username string) (*models.User, error) {
	var id int

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(UsernameIdxPrefix + username))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id = decodeID(val)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// List retrieves all users in insertion (ID) order
func (r *BadgerUserRepository) List() ([]*models.User, error) {
	var users []*models.User
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(UserKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var user models.User
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &user)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal user: %v", err)
			}
			users = append(users, &user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortUsersByID(users)
	return users, nil
}

// sortUsersByID restores insertion order; badger iterates keys
// lexicographically, so "user:10" would otherwise sort before "user:2".
func sortUsersByID(users []*models.User) {
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
}

// Delete deletes a user by ID along with its index entries
func (r *BadgerUserRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var user models.User
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		}); err != nil {
			return err
		}

		if err := txn.Delete([]byte(UsernameIdxPrefix + user.Username)); err != nil {
			return err
		}
		if err := txn.Delete([]byte(EmailIdxPrefix + user.Email)); err != nil {
			return err
		}
		return txn.Delete(key)
	})
}
