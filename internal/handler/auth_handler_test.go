package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"go-inventory-tracker/internal/service"
	"go-inventory-tracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	loginErr    error
	validateErr error
}

func (s stubAuth) Login(email, password string) (*service.LoginResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &service.LoginResponse{Token: "signed"}, nil
}

func (s stubAuth) ValidateToken(token string) (*service.TokenValidationResponse, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	return &service.TokenValidationResponse{}, nil
}

func authApp(auth service.AuthService) *fiber.App {
	app := fiber.New()
	h := NewAuthHandler(auth)
	app.Post("/login", h.Login)
	app.Post("/validate-token", h.ValidateToken)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(data, &out), string(data))
	return resp.StatusCode, out
}

func TestLoginStatusFollowsError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"bad credentials", service.ErrInvalidCredentials, 401},
		{"inactive operator", service.ErrUserInactive, 403},
		{"wrapped inactive", fmt.Errorf("login: %w", service.ErrUserInactive), 403},
		{"token signing failed", errors.New("failed to generate token"), 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := authApp(stubAuth{loginErr: tc.err})
			status, body := postJSON(t, app, "/login", map[string]string{"email": "a@example.com", "password": "pw"})
			assert.Equal(t, tc.status, status)
			if tc.status == 500 {
				assert.Equal(t, "Internal Server Error", body["error"])
			} else {
				assert.Equal(t, tc.err.Error(), body["error"])
			}
		})
	}
}

func TestLoginSucceeds(t *testing.T) {
	app := authApp(stubAuth{})
	status, body := postJSON(t, app, "/login", map[string]string{"email": " a@example.com ", "password": "pw"})
	assert.Equal(t, 200, status)
	assert.Equal(t, "signed", body["token"])
}

func TestLoginRequiresCredentials(t *testing.T) {
	app := authApp(stubAuth{})
	status, _ := postJSON(t, app, "/login", map[string]string{"email": "  "})
	assert.Equal(t, 400, status)
}

func TestValidateTokenStatusFollowsError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"expired token", jwt.ErrInvalidToken, 401},
		{"session replaced", service.ErrSessionReplaced, 401},
		{"operator removed", service.ErrUserNotFound, 401},
		{"inactive operator", service.ErrUserInactive, 403},
		{"store failure", errors.New("boom"), 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := authApp(stubAuth{validateErr: tc.err})
			status, _ := postJSON(t, app, "/validate-token", map[string]string{"token": "t"})
			assert.Equal(t, tc.status, status)
		})
	}
}
