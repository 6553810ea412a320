package character

import (
	"testing"

	"github.com/zulandar/konoha/internal/errs"
	"github.com/zulandar/konoha/internal/models"
	"github.com/zulandar/konoha/internal/schema"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openCharacterTestDB opens an in-memory SQLite DB with the characters
// and jutsus tables (delete and AddJutsu touch both).
func openCharacterTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Character{}, &models.Jutsu{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func ptr[T any](v T) *T { return &v }

func seedCharacter(t *testing.T, db *gorm.DB, name, village string) *models.Character {
	t.Helper()
	char, err := Create(db, schema.CharacterCreate{Name: name, Village: village})
	if err != nil {
		t.Fatalf("seed character %q: %v", name, err)
	}
	return char
}

// ---------------------------------------------------------------------------
// Create / Get
// ---------------------------------------------------------------------------

func TestCreate_ReturnsRow(t *testing.T) {
	db := openCharacterTestDB(t)

	char, err := Create(db, schema.CharacterCreate{
		Name:    "Kakashi Hatake",
		Village: "Konoha",
		Rank:    "Jonin",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if char.ID == 0 {
		t.Error("expected a generated id")
	}
	if char.Rank != "Jonin" {
		t.Errorf("rank = %q", char.Rank)
	}
	if char.CreatedAt.IsZero() || char.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestCreate_RankOptional(t *testing.T) {
	db := openCharacterTestDB(t)

	char, err := Create(db, schema.CharacterCreate{Name: "Naruto Uzumaki", Village: "Konoha"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if char.Rank != "" {
		t.Errorf("rank = %q, want empty", char.Rank)
	}
}

func TestGet_Found(t *testing.T) {
	db := openCharacterTestDB(t)
	seeded := seedCharacter(t, db, "Gaara", "Suna")

	got, err := Get(db, seeded.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Gaara" || got.Village != "Suna" {
		t.Errorf("got %q of %q", got.Name, got.Village)
	}
}

func TestGet_NotFound(t *testing.T) {
	db := openCharacterTestDB(t)

	_, err := Get(db, 42)
	if err == nil {
		t.Fatal("expected error for missing character")
	}
	if errs.KindOf(err) != errs.KindNotFound {
		t.Errorf("kind = %v, want KindNotFound", errs.KindOf(err))
	}
	if detail := errs.DetailOf(err, ""); detail != "Character not found" {
		t.Errorf("detail = %q, want %q", detail, "Character not found")
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestList_Paginates(t *testing.T) {
	db := openCharacterTestDB(t)
	for _, name := range []string{"c1", "c2", "c3"} {
		seedCharacter(t, db, name, "Konoha")
	}

	page, err := List(db, schema.ListQuery{Page: ptr(2), Size: ptr(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 3 || page.Pages != 2 {
		t.Errorf("total = %d, pages = %d, want 3 and 2", page.Total, page.Pages)
	}
	if len(page.Items) != 1 || page.Items[0].Name != "c3" {
		t.Errorf("page 2 items = %v", page.Items)
	}
	if page.HasNext || !page.HasPrev {
		t.Errorf("has_next = %v, has_prev = %v", page.HasNext, page.HasPrev)
	}
}

func TestList_SearchMatchesName(t *testing.T) {
	db := openCharacterTestDB(t)
	seedCharacter(t, db, "Sasuke Uchiha", "Konoha")
	seedCharacter(t, db, "Itachi Uchiha", "Konoha")
	seedCharacter(t, db, "Gaara", "Suna")

	page, err := List(db, schema.ListQuery{Search: "Uchiha"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("total = %d, want 2", page.Total)
	}
}

func TestList_SearchMatchesVillage(t *testing.T) {
	db := openCharacterTestDB(t)
	seedCharacter(t, db, "Gaara", "Suna")
	seedCharacter(t, db, "Kankuro", "Suna")
	seedCharacter(t, db, "Naruto Uzumaki", "Konoha")

	page, err := List(db, schema.ListQuery{Search: "Suna"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("total = %d, want 2", page.Total)
	}
	for _, item := range page.Items {
		if item.Village != "Suna" {
			t.Errorf("unexpected item %q of %q", item.Name, item.Village)
		}
	}
}

func TestList_SearchSpansNameAndVillage(t *testing.T) {
	db := openCharacterTestDB(t)
	seedCharacter(t, db, "Kiri no Ken", "Konoha")
	seedCharacter(t, db, "Zabuza Momochi", "Kiri")
	seedCharacter(t, db, "Gaara", "Suna")

	page, err := List(db, schema.ListQuery{Search: "Kiri"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("total = %d, want a name match plus a village match", page.Total)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestUpdate_PartialMerge(t *testing.T) {
	db := openCharacterTestDB(t)
	seeded := seedCharacter(t, db, "Naruto Uzumaki", "Konoha")

	updated, err := Update(db, seeded.ID, schema.CharacterUpdate{Rank: ptr("Hokage")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Rank != "Hokage" {
		t.Errorf("rank = %q", updated.Rank)
	}
	if updated.Name != "Naruto Uzumaki" || updated.Village != "Konoha" {
		t.Errorf("untouched fields changed: %q of %q", updated.Name, updated.Village)
	}

	got, err := Get(db, seeded.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Rank != "Hokage" {
		t.Errorf("reloaded rank = %q", got.Rank)
	}
}

func TestUpdate_RefreshesUpdatedAt(t *testing.T) {
	db := openCharacterTestDB(t)
	seeded := seedCharacter(t, db, "Shikamaru Nara", "Konoha")

	updated, err := Update(db, seeded.ID, schema.CharacterUpdate{Rank: ptr("Chunin")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.UpdatedAt.Before(seeded.UpdatedAt) {
		t.Errorf("updated_at went backwards: %v -> %v", seeded.UpdatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(seeded.CreatedAt) {
		t.Errorf("created_at changed: %v -> %v", seeded.CreatedAt, updated.CreatedAt)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	db := openCharacterTestDB(t)

	_, err := Update(db, 42, schema.CharacterUpdate{Name: ptr("nope")})
	if errs.KindOf(err) != errs.KindNotFound {
		t.Errorf("kind = %v, want KindNotFound", errs.KindOf(err))
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestDelete_RemovesRow(t *testing.T) {
	db := openCharacterTestDB(t)
	seeded := seedCharacter(t, db, "Doomed", "Nowhere")

	if err := Delete(db, seeded.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Get(db, seeded.ID); errs.KindOf(err) != errs.KindNotFound {
		t.Errorf("expected character to be gone, got err %v", err)
	}
}

func TestDelete_ReleasesOwnedJutsus(t *testing.T) {
	db := openCharacterTestDB(t)
	owner := seedCharacter(t, db, "Kakashi Hatake", "Konoha")
	other := seedCharacter(t, db, "Sasuke Uchiha", "Konoha")

	owned, err := AddJutsu(db, owner.ID, schema.JutsuCreate{Name: "Raikiri", Type: "Ninjutsu"})
	if err != nil {
		t.Fatalf("add jutsu: %v", err)
	}
	kept, err := AddJutsu(db, other.ID, schema.JutsuCreate{Name: "Chidori", Type: "Ninjutsu"})
	if err != nil {
		t.Fatalf("add jutsu: %v", err)
	}

	if err := Delete(db, owner.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var released models.Jutsu
	if err := db.First(&released, owned.ID).Error; err != nil {
		t.Fatalf("jutsu should survive its owner: %v", err)
	}
	if released.CharacterID != nil {
		t.Errorf("character_id = %v, want nil after owner delete", *released.CharacterID)
	}

	var untouched models.Jutsu
	if err := db.First(&untouched, kept.ID).Error; err != nil {
		t.Fatalf("reload other jutsu: %v", err)
	}
	if untouched.CharacterID == nil || *untouched.CharacterID != other.ID {
		t.Errorf("other character's jutsu lost its owner: %v", untouched.CharacterID)
	}
}

func TestDelete_NotFound(t *testing.T) {
	db := openCharacterTestDB(t)

	err := Delete(db, 42)
	if errs.KindOf(err) != errs.KindNotFound {
		t.Errorf("kind = %v, want KindNotFound", errs.KindOf(err))
	}
	if detail := errs.DetailOf(err, ""); detail != "Character not found" {
		t.Errorf("detail = %q", detail)
	}
}

// ---------------------------------------------------------------------------
// AddJutsu
// ---------------------------------------------------------------------------

func TestAddJutsu_OwnedByPathCharacter(t *testing.T) {
	db := openCharacterTestDB(t)
	owner := seedCharacter(t, db, "Kakashi Hatake", "Konoha")

	jutsu, err := AddJutsu(db, owner.ID, schema.JutsuCreate{
		Name:       "Raikiri",
		Type:       "Ninjutsu",
		ChakraCost: ptr(30),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jutsu.CharacterID == nil || *jutsu.CharacterID != owner.ID {
		t.Errorf("character_id = %v, want %d", jutsu.CharacterID, owner.ID)
	}
	if jutsu.ChakraCost != 30 {
		t.Errorf("chakra_cost = %d, want 30", jutsu.ChakraCost)
	}
}

func TestAddJutsu_PathOverridesBodyOwner(t *testing.T) {
	db := openCharacterTestDB(t)
	owner := seedCharacter(t, db, "Kakashi Hatake", "Konoha")
	other := seedCharacter(t, db, "Sasuke Uchiha", "Konoha")

	jutsu, err := AddJutsu(db, owner.ID, schema.JutsuCreate{
		Name:        "Raikiri",
		Type:        "Ninjutsu",
		CharacterID: &other.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jutsu.CharacterID == nil || *jutsu.CharacterID != owner.ID {
		t.Errorf("character_id = %v, want path owner %d", jutsu.CharacterID, owner.ID)
	}
}

func TestAddJutsu_DefaultChakraCost(t *testing.T) {
	db := openCharacterTestDB(t)
	owner := seedCharacter(t, db, "Might Guy", "Konoha")

	jutsu, err := AddJutsu(db, owner.ID, schema.JutsuCreate{Name: "Dynamic Entry", Type: "Taijutsu"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jutsu.ChakraCost != 10 {
		t.Errorf("chakra_cost = %d, want default 10", jutsu.ChakraCost)
	}
}

func TestAddJutsu_MissingCharacter(t *testing.T) {
	db := openCharacterTestDB(t)

	_, err := AddJutsu(db, 42, schema.JutsuCreate{Name: "Raikiri", Type: "Ninjutsu"})
	if err == nil {
		t.Fatal("expected error for missing character")
	}
	if errs.KindOf(err) != errs.KindNotFound {
		t.Errorf("kind = %v, want KindNotFound", errs.KindOf(err))
	}
	if detail := errs.DetailOf(err, ""); detail != "Character not found" {
		t.Errorf("detail = %q", detail)
	}
}
