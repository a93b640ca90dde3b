package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	tokenDomain "github.com/allisson/vehiclebff/internal/token/domain"
)

// ClientCredentials holds the identity provider settings for the exchange.
type ClientCredentials struct {
	AuthorityURL string
	TenantID     string
	ClientID     string
	ClientSecret string
	Scope        string
}

// TokenURL returns <authority>/<tenant>/oauth2/v2.0/token.
func (c ClientCredentials) TokenURL() (string, error) {
	return url.JoinPath(c.AuthorityURL, c.TenantID, "oauth2", "v2.0", "token")
}

func (c ClientCredentials) complete() bool {
	return c.TenantID != "" && c.ClientID != "" && c.ClientSecret != "" && c.Scope != ""
}

type clientCredentialsClient struct {
	creds      ClientCredentials
	httpClient *http.Client
}

// NewAuthClient creates an AuthClient that posts a form-encoded client-credentials grant
// with the credentials in the request body.
func NewAuthClient(creds ClientCredentials, httpClient *http.Client) AuthClient {
	return &clientCredentialsClient{
		creds:      creds,
		httpClient: httpClient,
	}
}

func (c *clientCredentialsClient) Exchange(ctx context.Context) (*tokenDomain.TokenRequestResult, error) {
	if !c.creds.complete() {
		return nil, tokenDomain.NewTokenAcquisitionError("incomplete configuration", tokenDomain.ErrMissingCredentials)
	}

	tokenURL, err := c.creds.TokenURL()
	if err != nil {
		return nil, tokenDomain.NewTokenAcquisitionError("invalid token endpoint", err)
	}

	cfg := clientcredentials.Config{
		ClientID:     c.creds.ClientID,
		ClientSecret: c.creds.ClientSecret,
		TokenURL:     tokenURL,
		Scopes:       []string{c.creds.Scope},
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}

	tok, err := cfg.Token(ctx)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return nil, tokenDomain.NewTokenAcquisitionError(
				"token endpoint returned "+strconv.Itoa(retrieveErr.Response.StatusCode),
				err,
			)
		}
		return nil, tokenDomain.NewTokenAcquisitionError("token request failed", err)
	}

	if strings.TrimSpace(tok.AccessToken) == "" {
		return nil, tokenDomain.NewTokenAcquisitionError("empty access token", tokenDomain.ErrEmptyAccessToken)
	}

	lifetime, ok := expiresIn(tok)
	if !ok {
		lifetime = tokenDomain.DefaultExpiresInSeconds
	}

	return &tokenDomain.TokenRequestResult{
		AccessToken:      tok.AccessToken,
		ExpiresInSeconds: lifetime,
	}, nil
}

// expiresIn reads the raw expires_in field. ok is false when the provider omitted it
// or sent something that is not a number; a present zero or negative value is kept.
func expiresIn(tok *oauth2.Token) (int, bool) {
	switch v := tok.Extra("expires_in").(type) {
	case float64:
		return int(v), true
	case int64:
		return int(v), true
	case int:
		return v, true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}
