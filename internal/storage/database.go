package storage

import (
	"github.com/2nist/Band-Manager/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Keep the schema updated via AutoMigrate; the DB file can be removed
	// when a clean slate is needed.
	err = db.AutoMigrate(
		&game.CareerState{},
		&game.Member{},
		&game.Song{},
		&game.Album{},
		&game.SaveSlot{},
		&game.Profile{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
