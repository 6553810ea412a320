// Package character provides character repository operations. Deleting
// a character releases its jutsus rather than cascading.
package character

import (
	"errors"
	"fmt"

	"github.com/zulandar/konoha/internal/errs"
	"github.com/zulandar/konoha/internal/models"
	"github.com/zulandar/konoha/internal/pagination"
	"github.com/zulandar/konoha/internal/schema"
	"gorm.io/gorm"
)

// Create persists a new character and returns it with its generated id
// and timestamps.
func Create(db *gorm.DB, in schema.CharacterCreate) (*models.Character, error) {
	char := models.Character{
		Name:    in.Name,
		Village: in.Village,
		Rank:    in.Rank,
	}
	if err := db.Create(&char).Error; err != nil {
		return nil, errs.Invalid("Could not create character", fmt.Errorf("character: create: %w", err))
	}
	return &char, nil
}

// Get returns the character with the given id.
func Get(db *gorm.DB, id uint) (*models.Character, error) {
	var char models.Character
	if err := db.First(&char, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Character not found")
		}
		return nil, errs.Internal("Error retrieving character", fmt.Errorf("character: get %d: %w", id, err))
	}
	return &char, nil
}

// List returns one page of characters ordered by id. The search term
// matches a substring of either the name or the village.
func List(db *gorm.DB, q schema.ListQuery) (pagination.Page[models.Character], error) {
	p := q.Pagination()
	p.Normalize()

	query := db.Model(&models.Character{})
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("name LIKE ? OR village LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return pagination.Page[models.Character]{}, errs.Internal("Error retrieving characters", fmt.Errorf("character: count: %w", err))
	}

	var chars []models.Character
	if err := query.Order("id ASC").Offset(p.Offset()).Limit(p.Size).Find(&chars).Error; err != nil {
		return pagination.Page[models.Character]{}, errs.Internal("Error retrieving characters", fmt.Errorf("character: list: %w", err))
	}
	return pagination.New(chars, total, p), nil
}

// Update applies the fields present in the patch.
func Update(db *gorm.DB, id uint, in schema.CharacterUpdate) (*models.Character, error) {
	char, err := Get(db, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		char.Name = *in.Name
	}
	if in.Village != nil {
		char.Village = *in.Village
	}
	if in.Rank != nil {
		char.Rank = *in.Rank
	}

	if err := db.Save(char).Error; err != nil {
		return nil, errs.Invalid("Could not update character", fmt.Errorf("character: update %d: %w", id, err))
	}
	return char, nil
}

// Delete removes the character with the given id. Its jutsus survive
// unowned: the release and the delete commit together or not at all.
func Delete(db *gorm.DB, id uint) error {
	char, err := Get(db, id)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Jutsu{}).Where("character_id = ?", id).Update("character_id", nil).Error; err != nil {
			return fmt.Errorf("character: release jutsus of %d: %w", id, err)
		}
		if err := tx.Delete(char).Error; err != nil {
			return fmt.Errorf("character: delete %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return errs.Internal("Could not delete character", err)
	}
	return nil
}

// AddJutsu creates a jutsu owned by the character with the given id.
// Any owner in the payload is ignored in favor of the path.
func AddJutsu(db *gorm.DB, characterID uint, in schema.JutsuCreate) (*models.Jutsu, error) {
	if _, err := Get(db, characterID); err != nil {
		return nil, err
	}

	jutsu := models.Jutsu{
		Name:        in.Name,
		Type:        in.Type,
		ChakraCost:  10,
		CharacterID: &characterID,
	}
	if in.ChakraCost != nil {
		jutsu.ChakraCost = *in.ChakraCost
	}

	if err := db.Create(&jutsu).Error; err != nil {
		return nil, errs.Invalid("Could not add jutsu to character", fmt.Errorf("character: add jutsu to %d: %w", characterID, err))
	}
	return &jutsu, nil
}
