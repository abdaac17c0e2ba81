package api

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// SeedTokenHeader — заголовок с токеном для GET /api/seed
const SeedTokenHeader = "X-Seed-Token"

// seedTokenCost — сид дергают редко, можно дороже дефолта
const seedTokenCost = 12

var errEmptySeedToken = errors.New("seed token is empty")

// HashToken готовит значение для SEED_TOKEN_HASH. Пробелы по краям не считаются.
func HashToken(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errEmptySeedToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), seedTokenCost)
	if err != nil {
		return "", fmt.Errorf("hash seed token: %w", err)
	}
	return string(hash), nil
}

// CheckToken сверяет присланный токен с SEED_TOKEN_HASH
func CheckToken(hash, token string) bool {
	token = strings.TrimSpace(token)
	if hash == "" || token == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil
}
