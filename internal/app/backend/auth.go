package backend

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// ErrNoToken means the login endpoint answered 2xx without a token.
var ErrNoToken = errors.New("backend: login response carried no token")

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := jsonBody(loginRequest{Username: username, Password: password})
	if err != nil {
		return "", err
	}
	var out loginResponse
	if err := c.do(ctx, call{
		resource: "auth",
		method:   http.MethodPost,
		path:     "/api/auth/login",
		body:     body,
	}, &out); err != nil {
		return "", err
	}
	tok := strings.TrimSpace(out.Token)
	if tok == "" {
		tok = strings.TrimSpace(out.AccessToken)
	}
	if tok == "" {
		return "", ErrNoToken
	}
	return tok, nil
}
