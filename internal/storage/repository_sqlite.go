package storage

import (
	"errors"

	"github.com/2nist/Band-Manager/internal/game"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateCareer(c *game.CareerState) error {
	return r.db.Create(c).Error
}

func (r *sqliteRepository) GetCareerByCode(code string) (*game.CareerState, error) {
	var c game.CareerState
	err := r.db.Preload("Members").Preload("Songs").Preload("Albums").
		Where("code = ?", code).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *sqliteRepository) ListCareersByOwner(email string) ([]game.CareerState, error) {
	var careers []game.CareerState
	err := r.db.Preload("Members").
		Where("owner_email = ?", email).
		Order("updated_at desc").
		Find(&careers).Error
	if err != nil {
		return nil, err
	}
	return careers, nil
}

func (r *sqliteRepository) UpdateCareer(c *game.CareerState) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(c).Error; err != nil {
		tx.Rollback()
		return err
	}

	// FullSaveAssociations upserts the current slices but never deletes, so
	// members who quit or were fired have to be swept explicitly.
	kept := make([]string, 0, len(c.Members))
	for i := range c.Members {
		kept = append(kept, c.Members[i].MemberUUID)
	}
	q := tx.Where("career_id = ?", c.ID)
	if len(kept) > 0 {
		q = q.Where("member_uuid NOT IN ?", kept)
	}
	if err := q.Delete(&game.Member{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (r *sqliteRepository) DeleteCareer(code string) error {
	var c game.CareerState
	if err := r.db.Where("code = ?", code).First(&c).Error; err != nil {
		return err
	}
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	for _, m := range []any{&game.Member{}, &game.Song{}, &game.Album{}} {
		if err := tx.Where("career_id = ?", c.ID).Delete(m).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Delete(&c).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (r *sqliteRepository) UpsertSaveSlot(s *game.SaveSlot) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "schema_version", "band_name", "week", "data", "updated_at"}),
	}).Create(s).Error
}

func (r *sqliteRepository) GetSaveSlot(ownerEmail, key string) (*game.SaveSlot, error) {
	var s game.SaveSlot
	err := r.db.Where("owner_email = ? AND key = ?", ownerEmail, key).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) ListSaveSlots(ownerEmail string) ([]game.SaveSlot, error) {
	var slots []game.SaveSlot
	err := r.db.Where("owner_email = ?", ownerEmail).
		Order("updated_at desc").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *sqliteRepository) DeleteSaveSlot(ownerEmail, key string) error {
	res := r.db.Where("owner_email = ? AND key = ?", ownerEmail, key).Delete(&game.SaveSlot{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *sqliteRepository) UpsertProfile(email, displayName string) error {
	var p game.Profile
	if err := r.db.Where("email = ?", email).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			p = game.Profile{Email: email}
		} else {
			return err
		}
	}
	p.DisplayName = displayName
	return r.db.Save(&p).Error
}

func (r *sqliteRepository) GetProfileByEmail(email string) (*game.Profile, error) {
	var p game.Profile
	if err := r.db.Where("email = ?", email).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &game.Profile{Email: email}, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) BumpProfileStats(email string, careersStarted, weeksSimulated, fame int) error {
	var p game.Profile
	if err := r.db.Where("email = ?", email).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			p = game.Profile{Email: email}
		} else {
			return err
		}
	}
	p.CareersStarted += careersStarted
	p.WeeksSimulated += weeksSimulated
	if fame > p.PeakFame {
		p.PeakFame = fame
	}
	return r.db.Save(&p).Error
}

// GetTopProfiles returns the leaderboard ordered by peak fame, then by weeks
// simulated as the tiebreak.
func (r *sqliteRepository) GetTopProfiles(limit int) ([]game.Profile, error) {
	if limit <= 0 {
		limit = 10
	}
	var profiles []game.Profile
	if err := r.db.Model(&game.Profile{}).
		Order("peak_fame DESC").
		Order("weeks_simulated DESC").
		Limit(limit).
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
