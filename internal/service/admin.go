package service

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// RoleAdmin - значение клейма role в токене администратора.
const RoleAdmin = "admin"

// ErrSigningDisabled возвращается Issue, если секрет для JWT не задан.
var ErrSigningDisabled = errors.New("service: JWT_SECRET не задан, выпуск токенов отключён")

// AdminAuthorizer проверяет, даёт ли переданный токен права администратора.
// Статический токен хранится только в виде ключевого BLAKE2b-дайджеста со
// случайным ключом процесса, проверка стоит микросекунды и идёт за постоянное время.
// Если задан секрет, принимаются также подписанные HS256 токены с role=admin.
type AdminAuthorizer struct {
	digestKey   []byte
	tokenDigest []byte
	secret      []byte
	ttl         time.Duration
}

// NewAdminAuthorizer создаёт проверку прав. Пустой staticToken отключает
// статический токен, пустой secret отключает JWT.
func NewAdminAuthorizer(staticToken, secret string, ttl time.Duration) (*AdminAuthorizer, error) {
	a := &AdminAuthorizer{ttl: ttl}
	if staticToken != "" {
		a.digestKey = make([]byte, 32)
		if _, err := rand.Read(a.digestKey); err != nil {
			return nil, fmt.Errorf("service: не удалось сгенерировать ключ дайджеста: %w", err)
		}
		digest, err := a.digest(staticToken)
		if err != nil {
			return nil, err
		}
		a.tokenDigest = digest
	}
	if secret != "" {
		a.secret = []byte(secret)
	}
	return a, nil
}

// IsAdmin проверяет токен (без префикса Bearer).
func (a *AdminAuthorizer) IsAdmin(token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}
	if a.secret != nil && strings.Count(token, ".") == 2 {
		if a.parse(token) == nil {
			return true
		}
	}
	if a.tokenDigest == nil {
		return false
	}
	digest, err := a.digest(token)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(digest, a.tokenDigest) == 1
}

func (a *AdminAuthorizer) digest(token string) ([]byte, error) {
	h, err := blake2b.New256(a.digestKey)
	if err != nil {
		return nil, fmt.Errorf("service: blake2b: %w", err)
	}
	h.Write([]byte(token))
	return h.Sum(nil), nil
}

// Issue выпускает токен администратора для subject.
func (a *AdminAuthorizer) Issue(subject string) (string, time.Time, error) {
	if a.secret == nil {
		return "", time.Time{}, ErrSigningDisabled
	}
	now := time.Now()
	exp := now.Add(a.ttl)
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": RoleAdmin,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func (a *AdminAuthorizer) parse(token string) error {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return err
	}
	if !parsed.Valid {
		return jwt.ErrTokenInvalidClaims
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	if role, _ := claims["role"].(string); role != RoleAdmin {
		return jwt.ErrTokenInvalidClaims
	}
	return nil
}
