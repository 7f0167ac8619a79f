// internal/serializers/normalize_test.go
package serializers

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeBrandIDLegacyInteger(t *testing.T) {
	db, mock := newTestDB(t)
	brandID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "brands" WHERE legacy_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "legacy_id", "name"}).
			AddRow(brandID.String(), time.Now(), 7, "Asus"))

	// JSON numbers decode as float64
	payload := map[string]interface{}{"name": "Laptop", "brand_id": float64(7)}
	NormalizeBrandID(db, payload)

	assert.Equal(t, brandID.String(), payload["brand_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNormalizeBrandIDLegacyDigitString(t *testing.T) {
	db, mock := newTestDB(t)
	brandID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "brands" WHERE legacy_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "legacy_id", "name"}).
			AddRow(brandID.String(), time.Now(), 7, "Asus"))

	payload := map[string]interface{}{"brand_id": "7"}
	NormalizeBrandID(db, payload)

	assert.Equal(t, brandID.String(), payload["brand_id"])
}

func TestNormalizeBrandIDUnknownLegacyLeavesValue(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "brands" WHERE legacy_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	payload := map[string]interface{}{"brand_id": float64(99)}
	NormalizeBrandID(db, payload)

	// unresolved values pass through untouched; persistence rejects them
	assert.Equal(t, float64(99), payload["brand_id"])
}

func TestNormalizeBrandIDGarbageLeavesValue(t *testing.T) {
	db, _ := newTestDB(t)

	payload := map[string]interface{}{"brand_id": "not-a-uuid-or-int"}
	NormalizeBrandID(db, payload)

	assert.Equal(t, "not-a-uuid-or-int", payload["brand_id"])
}

func TestNormalizeBrandIDCanonicalizesUUID(t *testing.T) {
	db, _ := newTestDB(t)
	brandID := uuid.New()

	// non-canonical UUID spellings are rewritten to the canonical form
	// without touching the database
	payload := map[string]interface{}{"brand_id": "{" + brandID.String() + "}"}
	NormalizeBrandID(db, payload)

	assert.Equal(t, brandID.String(), payload["brand_id"])
}

func TestNormalizeBrandIDAbsentKey(t *testing.T) {
	db, _ := newTestDB(t)

	payload := map[string]interface{}{"name": "Laptop"}
	NormalizeBrandID(db, payload)

	_, exists := payload["brand_id"]
	assert.False(t, exists)
}

func TestNormalizeBrandIDNilValue(t *testing.T) {
	db, _ := newTestDB(t)

	payload := map[string]interface{}{"brand_id": nil}
	NormalizeBrandID(db, payload)

	assert.Nil(t, payload["brand_id"])
}
