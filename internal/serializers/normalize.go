// internal/serializers/normalize.go
package serializers

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/binc-b/binc-backend/internal/models"
)

// NormalizeBrandID rewrites the brand_id entry of an untrusted write
// payload to the brand's canonical UUID string. Clients predating the UUID
// migration still send the integer surrogate key, either as a JSON number
// or as an all-digit string; those are resolved through Brand.LegacyID.
//
// Normalization is best effort and never fails: when the value cannot be
// resolved or parsed it is left untouched, and the unresolved reference is
// rejected by the persistence step as a related-object error. Do not raise
// from here.
func NormalizeBrandID(db *gorm.DB, payload map[string]interface{}) {
	raw, exists := payload["brand_id"]
	if !exists || raw == nil {
		return
	}

	if legacyID, ok := legacyBrandID(raw); ok {
		var brand models.Brand
		if err := db.Where("legacy_id = ?", legacyID).First(&brand).Error; err == nil {
			payload["brand_id"] = brand.ID.String()
		}
		return
	}

	if s, ok := raw.(string); ok {
		if id, err := uuid.Parse(s); err == nil {
			payload["brand_id"] = id.String()
		}
	}
}

// legacyBrandID reports whether the raw payload value looks like an integer
// surrogate key. JSON numbers decode as float64, so whole floats count too.
func legacyBrandID(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
	case string:
		if v == "" {
			return 0, false
		}
		for _, r := range v {
			if r < '0' || r > '9' {
				return 0, false
			}
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
