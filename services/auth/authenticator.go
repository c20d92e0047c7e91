// Package auth is the boundary to the credential check. The store never
// inspects credentials; it only learns whether a login succeeded.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Credentials are what the login form submits.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Result is the answer of the authentication boundary.
type Result struct {
	Success bool `json:"success"`
}

// Authenticator checks credentials. A returned error is a transport failure;
// rejected credentials are reported as Result{Success: false}.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (Result, error)
}

// LocalAuthenticator accepts a single user whose password is stored as a
// bcrypt hash.
type LocalAuthenticator struct {
	Username     string
	PasswordHash []byte
}

func NewLocalAuthenticator(username, passwordHash string) *LocalAuthenticator {
	return &LocalAuthenticator{Username: username, PasswordHash: []byte(passwordHash)}
}

func (a *LocalAuthenticator) Authenticate(_ context.Context, creds Credentials) (Result, error) {
	if a.Username == "" || len(a.PasswordHash) == 0 {
		return Result{}, fmt.Errorf("local authenticator has no user configured")
	}
	if creds.Username != a.Username {
		return Result{Success: false}, nil
	}
	if err := bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(creds.Password)); err != nil {
		return Result{Success: false}, nil
	}
	return Result{Success: true}, nil
}

// HashPassword returns the bcrypt hash to configure for a LocalAuthenticator.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// RemoteAuthenticator posts credentials as JSON to a login endpoint that
// answers {"success": bool}.
type RemoteAuthenticator struct {
	URL    string
	Client *http.Client
}

func NewRemoteAuthenticator(url string) *RemoteAuthenticator {
	return &RemoteAuthenticator{URL: url, Client: &http.Client{Timeout: 10 * time.Second}}
}

func (a *RemoteAuthenticator) Authenticate(ctx context.Context, creds Credentials) (Result, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return Result{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.URL, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.Client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("login endpoint returned %s", resp.Status)
	}
	var res Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return Result{}, fmt.Errorf("decode login response: %w", err)
	}
	return res, nil
}
