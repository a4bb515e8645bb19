package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/2nist/Band-Manager/internal/constants"
	"github.com/2nist/Band-Manager/internal/game"
	"github.com/2nist/Band-Manager/internal/keys"
	"github.com/2nist/Band-Manager/internal/logging"
)

var (
	ErrSaveNameRequired = errors.New("save name is required")
	ErrSaveNotFound     = errors.New("save not found")
	ErrSaveCorrupt      = errors.New("save data is corrupt")
	ErrSaveTooNew       = errors.New("save was written by a newer version")
)

// snapshot is the on-disk shape of a save slot: a schema version plus the
// full career aggregate as JSON.
type snapshot struct {
	SchemaVersion int              `json:"schema_version"`
	Career        game.CareerState `json:"career"`
}

// SaveCareer snapshots a career into a named slot. Saving to the same name
// overwrites the slot.
func SaveCareer(repo SlotRepo, code, ownerEmail, name string) (*game.SaveSlot, error) {
	c, err := loadOwnedCareer(repo, code, ownerEmail)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrSaveNameRequired
	}

	data, err := json.Marshal(snapshot{SchemaVersion: game.SnapshotSchemaVersion, Career: *c})
	if err != nil {
		return nil, err
	}
	slot := &game.SaveSlot{
		OwnerEmail:    ownerEmail,
		Key:           keys.SlotKeyFromName(name),
		Name:          name,
		SchemaVersion: game.SnapshotSchemaVersion,
		BandName:      c.BandName,
		Week:          c.Week,
		Data:          data,
	}
	if err := repo.UpsertSaveSlot(slot); err != nil {
		return nil, err
	}
	logging.Info("career saved", logging.Fields{
		constants.LogFieldCareerCode: c.Code,
		constants.LogFieldSlotKey:    slot.Key,
		constants.LogFieldWeek:       c.Week,
	})
	return slot, nil
}

// ListSaves returns the account's save slots, newest first.
func ListSaves(repo SlotRepo, ownerEmail string) ([]game.SaveSlot, error) {
	return repo.ListSaveSlots(ownerEmail)
}

// DeleteSave removes a save slot.
func DeleteSave(repo SlotRepo, ownerEmail, key string) error {
	if err := repo.DeleteSaveSlot(ownerEmail, key); err != nil {
		return ErrSaveNotFound
	}
	return nil
}

// LoadCareer restores a snapshot as a brand-new career with a fresh code and
// fresh row IDs. The career the snapshot was taken from is left untouched.
func LoadCareer(repo SlotRepo, ownerEmail, key string) (*game.CareerState, error) {
	slot, err := repo.GetSaveSlot(ownerEmail, key)
	if err != nil || slot == nil {
		return nil, ErrSaveNotFound
	}
	var snap snapshot
	if err := json.Unmarshal(slot.Data, &snap); err != nil {
		return nil, ErrSaveCorrupt
	}
	if snap.SchemaVersion > game.SnapshotSchemaVersion {
		return nil, ErrSaveTooNew
	}

	c := snap.Career
	stripIDs(&c)
	code, err := NewCareerCode()
	if err != nil {
		return nil, err
	}
	c.Code = code
	c.OwnerEmail = ownerEmail
	c.AppendLog(fmt.Sprintf("Restored from save \"%s\".", slot.Name))

	if err := repo.CreateCareer(&c); err != nil {
		return nil, err
	}
	logging.Info("career restored", logging.Fields{
		constants.LogFieldCareerCode: c.Code,
		constants.LogFieldSlotKey:    key,
		constants.LogFieldWeek:       c.Week,
	})
	return &c, nil
}

// stripIDs zeroes the database identity of the aggregate so gorm inserts new
// rows instead of colliding with the source career.
func stripIDs(c *game.CareerState) {
	c.Model = gorm.Model{}
	for i := range c.Members {
		c.Members[i].Model = gorm.Model{}
		c.Members[i].CareerID = 0
	}
	for i := range c.Songs {
		c.Songs[i].Model = gorm.Model{}
		c.Songs[i].CareerID = 0
	}
	for i := range c.Albums {
		c.Albums[i].Model = gorm.Model{}
		c.Albums[i].CareerID = 0
	}
}
