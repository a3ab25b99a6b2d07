package auth

import "github.com/ananas-shop/commerce-backend/pkg/e"

// Identity — личность вызывающего, восстановленная из bearer-токена.
// nil означает анонимный запрос.
type Identity struct {
	ID       int64
	IsVendor bool
}

// AllowAny пропускает любой запрос.
func AllowAny(*Identity) error {
	return nil
}

// AnonymousOnly пропускает только запросы без действительного токена.
// Уже аутентифицированная личность не должна логиниться повторно.
func AnonymousOnly(ident *Identity) error {
	if ident != nil {
		return e.Wrap("already authenticated", e.ErrPermissionDenied)
	}
	return nil
}

// VendorRequired пропускает только личность с флагом продавца.
// Анонимный запрос отклоняется как неаутентифицированный.
func VendorRequired(ident *Identity) error {
	if ident == nil {
		return e.Wrap("credential required", e.ErrAuthenticationFailed)
	}
	if !ident.IsVendor {
		return e.Wrap("vendor role required", e.ErrPermissionDenied)
	}
	return nil
}

// OwnerOrReadOnly пропускает любое чтение; запись разрешена только владельцу
// целевого ресурса.
func OwnerOrReadOnly(ident *Identity, ownerID int64, write bool) error {
	if !write {
		return nil
	}
	if ident == nil {
		return e.Wrap("credential required", e.ErrAuthenticationFailed)
	}
	if ident.ID != ownerID {
		return e.Wrap("not the owner", e.ErrPermissionDenied)
	}
	return nil
}
