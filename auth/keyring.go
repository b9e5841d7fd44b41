// Package auth persists the AniList access token in the system keyring.
package auth

import (
	"errors"
	"strings"

	"github.com/anisan-cli/anigraph/constant"
	"github.com/anisan-cli/anigraph/log"
	"github.com/zalando/go-keyring"
)

const user = "anilist-token"

// ErrEmptyToken is returned when storing a blank token.
var ErrEmptyToken = errors.New("token cannot be empty")

// SetToken persists the AniList access token to the system keyring.
func SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	if err := keyring.Set(constant.Anigraph, user, token); err != nil {
		log.Error("Failed to save token to keyring: " + err.Error())
		return err
	}

	return nil
}

// GetToken retrieves the AniList access token from the system keyring.
func GetToken() (string, error) {
	token, err := keyring.Get(constant.Anigraph, user)
	if err != nil {
		// common before the first "auth set"
		log.Infof("No token found in keyring: %v", err)
		return "", err
	}

	return token, nil
}

// DeleteToken removes the AniList access token from the system keyring.
func DeleteToken() error {
	err := keyring.Delete(constant.Anigraph, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}

	return err
}
