// Package jutsu provides jutsu repository operations. A jutsu may be
// unowned; owner references are verified against the characters table
// before they are written.
package jutsu

import (
	"errors"
	"fmt"

	"github.com/zulandar/konoha/internal/errs"
	"github.com/zulandar/konoha/internal/models"
	"github.com/zulandar/konoha/internal/pagination"
	"github.com/zulandar/konoha/internal/schema"
	"gorm.io/gorm"
)

// ownerExists verifies that a character row backs the given owner id.
// A missing owner is the client's mistake, not a lookup miss on the
// jutsu itself.
func ownerExists(db *gorm.DB, id uint) error {
	var char models.Character
	if err := db.First(&char, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Invalid("Character not found", nil)
		}
		return errs.Internal("Error retrieving character", fmt.Errorf("jutsu: check owner %d: %w", id, err))
	}
	return nil
}

// Create persists a new jutsu, optionally owned by an existing
// character.
func Create(db *gorm.DB, in schema.JutsuCreate) (*models.Jutsu, error) {
	if in.CharacterID != nil {
		if err := ownerExists(db, *in.CharacterID); err != nil {
			return nil, err
		}
	}

	jutsu := models.Jutsu{
		Name:        in.Name,
		Type:        in.Type,
		ChakraCost:  10,
		CharacterID: in.CharacterID,
	}
	if in.ChakraCost != nil {
		jutsu.ChakraCost = *in.ChakraCost
	}

	if err := db.Create(&jutsu).Error; err != nil {
		return nil, errs.Invalid("Could not create jutsu", fmt.Errorf("jutsu: create: %w", err))
	}
	return &jutsu, nil
}

// Get returns the jutsu with the given id.
func Get(db *gorm.DB, id uint) (*models.Jutsu, error) {
	var jutsu models.Jutsu
	if err := db.First(&jutsu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Jutsu not found")
		}
		return nil, errs.Internal("Error retrieving jutsu", fmt.Errorf("jutsu: get %d: %w", id, err))
	}
	return &jutsu, nil
}

// List returns one page of jutsus ordered by id, optionally filtered
// by a name substring and by owner.
func List(db *gorm.DB, q schema.JutsuListQuery) (pagination.Page[models.Jutsu], error) {
	p := q.Pagination()
	p.Normalize()

	query := db.Model(&models.Jutsu{})
	if q.Search != "" {
		query = query.Where("name LIKE ?", "%"+q.Search+"%")
	}
	if q.CharacterID != nil {
		query = query.Where("character_id = ?", *q.CharacterID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return pagination.Page[models.Jutsu]{}, errs.Internal("Error retrieving jutsus", fmt.Errorf("jutsu: count: %w", err))
	}

	var jutsus []models.Jutsu
	if err := query.Order("id ASC").Offset(p.Offset()).Limit(p.Size).Find(&jutsus).Error; err != nil {
		return pagination.Page[models.Jutsu]{}, errs.Internal("Error retrieving jutsus", fmt.Errorf("jutsu: list: %w", err))
	}
	return pagination.New(jutsus, total, p), nil
}

// Update applies the fields present in the patch. An explicit null
// owner clears the reference; a concrete owner is verified first.
func Update(db *gorm.DB, id uint, in schema.JutsuUpdate) (*models.Jutsu, error) {
	jutsu, err := Get(db, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		jutsu.Name = *in.Name
	}
	if in.Type != nil {
		jutsu.Type = *in.Type
	}
	if in.ChakraCost != nil {
		jutsu.ChakraCost = *in.ChakraCost
	}
	if in.CharacterID.Present {
		if in.CharacterID.Value != nil {
			if err := ownerExists(db, *in.CharacterID.Value); err != nil {
				return nil, err
			}
		}
		jutsu.CharacterID = in.CharacterID.Value
	}

	if err := db.Save(jutsu).Error; err != nil {
		return nil, errs.Invalid("Could not update jutsu", fmt.Errorf("jutsu: update %d: %w", id, err))
	}
	return jutsu, nil
}

// Delete removes the jutsu with the given id.
func Delete(db *gorm.DB, id uint) error {
	jutsu, err := Get(db, id)
	if err != nil {
		return err
	}
	if err := db.Delete(jutsu).Error; err != nil {
		return errs.Internal("Could not delete jutsu", fmt.Errorf("jutsu: delete %d: %w", id, err))
	}
	return nil
}
