package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost matches the salt round count the stored hashes were created with.
const hashCost = 10

// BcryptHasher hashes and verifies passwords with bcrypt. The salt is
// randomized per call, so hashing the same plaintext twice yields
// different hashes.
type BcryptHasher struct{}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

func (*BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (*BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
