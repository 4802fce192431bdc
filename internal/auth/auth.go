// Package auth manages the identity registry and the current session. The
// registry is a single map keyed by phone number; the session is a single
// slot holding the signed-in user's id.
package auth

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/habito-app/habito/internal/constants"
	"github.com/habito-app/habito/internal/kv"
	"github.com/habito-app/habito/internal/logger"
	"github.com/habito-app/habito/internal/models"
	"github.com/habito-app/habito/internal/storage"
)

// Result is the structured outcome of a credential operation. Message is
// user-presentable verbatim.
type Result struct {
	OK      bool
	Message string
	User    *models.User
}

// Manager performs all identity operations over an injected store.
type Manager struct {
	store kv.Store
}

func NewManager(s kv.Store) *Manager {
	return &Manager{store: s}
}

// users loads the registry, degrading to an empty map on missing or corrupt
// data so a damaged registry never blocks signup.
func (m *Manager) users() map[string]models.User {
	raw, ok, err := m.store.Get(constants.UsersKey)
	if err != nil || !ok {
		if err != nil {
			logger.Warn("Failed to read user registry", "error", err)
		}
		return map[string]models.User{}
	}
	var db map[string]models.User
	if err := json.Unmarshal([]byte(raw), &db); err != nil {
		logger.Warn("Discarding corrupted user registry", "error", err)
		return map[string]models.User{}
	}
	return db
}

func (m *Manager) saveUsers(db map[string]models.User) error {
	raw, err := json.Marshal(db)
	if err != nil {
		return fmt.Errorf("failed to serialize user registry: %w", err)
	}
	return m.store.Set(constants.UsersKey, string(raw))
}

// Register creates an account keyed by phone number and signs it in. The
// phone doubles as the user id, which makes it the storage namespace owner.
func (m *Manager) Register(name, phone, email, password string, now time.Time) (Result, error) {
	db := m.users()
	if _, exists := db[phone]; exists {
		return Result{Message: "User with this phone number already exists."}, nil
	}

	user := models.User{
		ID:        phone,
		Name:      name,
		Phone:     phone,
		Email:     email,
		Password:  password,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
	db[phone] = user
	if err := m.saveUsers(db); err != nil {
		return Result{}, err
	}
	if err := m.setSession(phone); err != nil {
		return Result{}, err
	}
	logger.Info("Registered new account", "id", phone)
	return Result{OK: true, Message: "Account created.", User: &user}, nil
}

// Login checks credentials against the registry and opens a session.
func (m *Manager) Login(phone, password string) (Result, error) {
	db := m.users()
	user, exists := db[phone]
	if !exists {
		return Result{Message: "Account not found. Please sign up."}, nil
	}
	if user.Password != password {
		return Result{Message: "Incorrect password."}, nil
	}
	if err := m.setSession(phone); err != nil {
		return Result{}, err
	}
	logger.Info("Session opened", "id", phone)
	return Result{OK: true, Message: "Welcome back, " + user.Name + ".", User: &user}, nil
}

// Logout clears the session slot. Logging out while signed out is a no-op.
func (m *Manager) Logout() error {
	return m.store.Delete(constants.SessionKey)
}

// CurrentUser resolves the session to a registry record. A missing session,
// a dangling id, or a corrupt slot all read as signed-out.
func (m *Manager) CurrentUser() *models.User {
	raw, ok, err := m.store.Get(constants.SessionKey)
	if err != nil || !ok {
		return nil
	}
	var id string
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		logger.Warn("Discarding corrupted session", "error", err)
		return nil
	}
	db := m.users()
	user, exists := db[id]
	if !exists {
		return nil
	}
	return &user
}

func (m *Manager) setSession(id string) error {
	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return m.store.Set(constants.SessionKey, string(raw))
}

// UpdateProfile rewrites the signed-in user's record. Because the phone is
// the id and the id is the storage namespace, a phone change migrates every
// collection to the new namespace: copy all keys, swap the registry record,
// repoint the session, then delete the old keys. The copy happens before any
// deletion so an interruption leaves the old account readable.
func (m *Manager) UpdateProfile(updated models.User, oldID string) (Result, error) {
	db := m.users()
	old, exists := db[oldID]
	if !exists {
		return Result{Message: "Account not found. Please sign up."}, nil
	}

	updated.ID = updated.Phone
	updated.Password = old.Password
	updated.CreatedAt = old.CreatedAt

	if updated.ID != oldID {
		if _, taken := db[updated.ID]; taken {
			return Result{Message: "User with this phone number already exists."}, nil
		}
		if err := storage.CopyOwner(m.store, oldID, updated.ID); err != nil {
			return Result{}, err
		}
	}

	db[updated.ID] = updated
	if updated.ID != oldID {
		delete(db, oldID)
	}
	if err := m.saveUsers(db); err != nil {
		return Result{}, err
	}
	if err := m.setSession(updated.ID); err != nil {
		return Result{}, err
	}
	if updated.ID != oldID {
		storage.DeleteOwner(m.store, oldID)
		logger.Info("Migrated account data", "from", oldID, "to", updated.ID)
	}
	return Result{OK: true, Message: "Profile updated.", User: &updated}, nil
}
