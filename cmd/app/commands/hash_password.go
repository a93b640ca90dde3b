package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	authService "github.com/allisson/vehiclebff/internal/auth/service"
)

// RunHashPassword prints an argon2id hash suitable for LOGIN_PASSWORD_HASH.
// When password is empty it is read from the first line of streams.Reader.
func RunHashPassword(passwords authService.PasswordService, streams IOTuple, password string) error {
	if password == "" {
		line, err := readLine(streams.Reader)
		if err != nil {
			return err
		}
		password = line
	}

	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password is required")
	}

	hash, err := passwords.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = fmt.Fprintf(streams.Writer, "LOGIN_PASSWORD_HASH='%s'\n", hash)
	return err
}

func readLine(r io.Reader) (string, error) {
	if r == nil {
		return "", nil
	}
	scanner := bufio.NewScanner(r)
	if scanner.Scan() {
		return strings.TrimRight(scanner.Text(), "\r"), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return "", nil
}
