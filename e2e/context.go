// Package e2e drives a running registry over HTTP with godog scenarios.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestContext carries per-scenario state: the acting caller, the last
// response and the signing material used to mint bearer tokens.
type TestContext struct {
	BaseURL    string
	SigningKey string
	Issuer     string
	Actors     map[string]string

	client   *http.Client
	run      string
	actor    string
	status   int
	body     []byte
	response map[string]any
}

func NewTestContext(baseURL, signingKey, issuer string, actors map[string]string) *TestContext {
	return &TestContext{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		SigningKey: signingKey,
		Issuer:     issuer,
		Actors:     actors,
		client:     &http.Client{Timeout: 10 * time.Second},
		run:        strconv.FormatInt(time.Now().UnixNano(), 36),
	}
}

// Expand replaces {run} with a suffix unique to this test process, so
// scenarios can rerun against a long-lived server.
func (tc *TestContext) Expand(s string) string {
	return strings.ReplaceAll(s, "{run}", tc.run)
}

// Reset clears scenario state.
func (tc *TestContext) Reset() {
	tc.actor = ""
	tc.status = 0
	tc.body = nil
	tc.response = nil
}

func (tc *TestContext) ActAs(name string) error {
	if _, ok := tc.Actors[name]; !ok && name != "" {
		return fmt.Errorf("unknown actor %q", name)
	}
	tc.actor = name
	return nil
}

func (tc *TestContext) Address(name string) (string, error) {
	addr, ok := tc.Actors[name]
	if !ok {
		return "", fmt.Errorf("unknown actor %q", name)
	}
	return addr, nil
}

func (tc *TestContext) token() (string, error) {
	addr := tc.Actors[tc.actor]
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   addr,
		Issuer:    tc.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(5 * time.Minute)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(tc.SigningKey))
}

func (tc *TestContext) Do(ctx context.Context, method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, tc.BaseURL+tc.Expand(path), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.actor != "" {
		token, err := tc.token()
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.status = resp.StatusCode
	tc.body, err = io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	tc.response = nil
	if len(tc.body) > 0 {
		_ = json.Unmarshal(tc.body, &tc.response)
	}
	return nil
}

func (tc *TestContext) Status() int {
	return tc.status
}

func (tc *TestContext) Body() string {
	return string(tc.body)
}

// ResponseField reads a dotted path such as "diddoc.id" from the last
// JSON response.
func (tc *TestContext) ResponseField(path string) (any, error) {
	var cur any = tc.response
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q not found in %s", path, tc.body)
		}
		if cur, ok = m[key]; !ok {
			return nil, fmt.Errorf("field %q not found in %s", path, tc.body)
		}
	}
	return cur, nil
}
