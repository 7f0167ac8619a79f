// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess     = "success"
	KeyError       = "error"
	KeyRateLimited = "rate_limited"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthRegisterSuccess    = "auth.register_success"
	KeyAccessDenied           = "auth.access_denied"

	// Products
	KeyProductCreated     = "product.created"
	KeyProductUpdated     = "product.updated"
	KeyProductDeactivated = "product.deactivated"
	KeyProductNotFound    = "product.not_found"
	KeyProductBanned      = "product.banned"
	KeyProductReaction    = "product.reaction_recorded"

	// Categories
	KeyCategoryCreated  = "category.created"
	KeyCategoryUpdated  = "category.updated"
	KeyCategoryDeleted  = "category.deleted"
	KeyCategoryNotFound = "category.not_found"

	// Brands
	KeyBrandCreated  = "brand.created"
	KeyBrandUpdated  = "brand.updated"
	KeyBrandNotFound = "brand.not_found"

	// Shops
	KeyShopCreated  = "shop.created"
	KeyShopUpdated  = "shop.updated"
	KeyShopNotFound = "shop.not_found"

	// Reviews
	KeyReviewCreated  = "review.created"
	KeyReviewNotFound = "review.not_found"

	// Specifications
	KeySpecificationCreated  = "specification.created"
	KeySpecificationNotFound = "specification.not_found"
	KeySpecificationValueSet = "specification.value_set"

	// Validation
	KeyValidationRequired      = "validation.required"
	KeyValidationInvalid       = "validation.invalid"
	KeyValidationRelatedObject = "validation.related_object_missing"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
)
