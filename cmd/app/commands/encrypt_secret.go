package commands

import (
	"context"
	"fmt"

	"github.com/allisson/vehiclebff/internal/secrets"
)

// RunEncryptSecret encrypts value with the keeper at keyURI and prints the settings
// that make the server decrypt it at startup.
//
// For local development, use keyURI="base64key://<32-byte-base64-key>".
// For production, use a cloud KMS or Vault transit key (gcpkms://, awskms://, azurekeyvault://, hashivault://).
func RunEncryptSecret(ctx context.Context, streams IOTuple, keyURI, value string) error {
	if keyURI == "" {
		return fmt.Errorf(
			"--keeper-uri or SECRETS_KEEPER_URI is required\n\nFor local development, use:\n  --keeper-uri=\"base64key://<32-byte-base64-key>\"",
		)
	}

	if value == "" {
		line, err := readLine(streams.Reader)
		if err != nil {
			return err
		}
		value = line
	}
	if value == "" {
		return fmt.Errorf("value is required")
	}

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return err
	}
	defer func() {
		_ = keeper.Close()
	}()

	encoded, err := secrets.EncryptString(ctx, keeper, value)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(streams.Writer, "SECRETS_KEEPER_URI=\"%s\"\nIDENTITY_CLIENT_SECRET=\"%s\"\n", keyURI, encoded)
	return err
}
