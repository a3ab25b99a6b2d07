package auth

import (
	"errors"
	"time"

	"github.com/ananas-shop/commerce-backend/internal/cfg"
	"github.com/ananas-shop/commerce-backend/pkg/e"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims — полезная нагрузка подписанного токена. Идентификатор субъекта
// лежит в user_id.
type Claims struct {
	UserID    int64  `json:"user_id"`
	IsVendor  bool   `json:"is_vendor"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair — пара access/refresh токенов, выдаваемая при логине.
type TokenPair struct {
	Access  string
	Refresh string
}

// TokenService выпускает и декодирует подписанные токены.
// Ключ подписи передаётся явно при конструировании.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(cfg *cfg.JWTCfg) *TokenService {
	return &TokenService{
		secret:     []byte(cfg.Secret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
	}
}

// IssuePair выпускает пару access/refresh токенов для субъекта.
func (t *TokenService) IssuePair(userID int64, isVendor bool) (*TokenPair, error) {
	const op = "TokenService.IssuePair"

	access, err := t.issue(userID, isVendor, TokenTypeAccess, t.accessTTL)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	refresh, err := t.issue(userID, isVendor, TokenTypeRefresh, t.refreshTTL)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (t *TokenService) issue(userID int64, isVendor bool, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		IsVendor:  isVendor,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Decode проверяет подпись и срок действия токена. Любая ошибка декодирования
// нормализуется в e.ErrAuthenticationFailed; истечение срока отличается
// только текстом сообщения.
func (t *TokenService) Decode(token string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, e.Wrap("signature has expired, login again", e.ErrAuthenticationFailed)
		}
		return nil, e.Wrap("error decoding signature", e.ErrAuthenticationFailed)
	}

	return claims, nil
}
