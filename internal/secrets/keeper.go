// Package secrets decrypts configured credentials through a gocloud.dev secrets keeper.
package secrets

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"
	"gocloud.dev/secrets"

	apperrors "github.com/allisson/vehiclebff/internal/errors"
	customValidation "github.com/allisson/vehiclebff/internal/validation"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// Keeper encrypts and decrypts small values. *secrets.Keeper implements it.
type Keeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// OpenKeeper opens a keeper for keyURI.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func OpenKeeper(ctx context.Context, keyURI string) (Keeper, error) {
	if strings.TrimSpace(keyURI) == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "secrets keeper uri is required")
	}
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open secrets keeper: %w", err)
	}
	return keeper, nil
}

// EncryptString encrypts value and returns the base64 ciphertext.
func EncryptString(ctx context.Context, keeper Keeper, value string) (string, error) {
	ciphertext, err := keeper.Encrypt(ctx, []byte(value))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt value: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptString decrypts a base64 ciphertext produced by EncryptString.
func DecryptString(ctx context.Context, keeper Keeper, encoded string) (string, error) {
	if err := validation.Validate(encoded, validation.Required, customValidation.Base64); err != nil {
		return "", customValidation.WrapValidationError(err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
	}

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt value: %w", err)
	}
	return string(plaintext), nil
}

// ResolveSecret returns value unchanged when keyURI is empty. Otherwise value is
// base64 ciphertext decrypted with the keeper at keyURI.
func ResolveSecret(ctx context.Context, keyURI, value string) (string, error) {
	if keyURI == "" {
		return value, nil
	}

	keeper, err := OpenKeeper(ctx, keyURI)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = keeper.Close()
	}()

	return DecryptString(ctx, keeper, value)
}
