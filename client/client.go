package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	authdomain "chat-backend/internal/auth/domain"
	messagedomain "chat-backend/internal/message/domain"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// Image is an optional multipart file part.
type Image struct {
	Name string
	Body io.Reader
}

type ProfileUpdate struct {
	FullName string
	Email    string
	Image    *Image
}

type OutgoingMessage struct {
	ReceiverID string
	Text       string
	Image      *Image
}

// Client calls the chat API. The session cookie lives in its jar, and the
// auth calls keep session in step with the server.
type Client struct {
	httpClient *http.Client
	baseURL    string
	session    *Session
}

// New creates a client for baseURL, e.g. "http://localhost:5001/api".
func New(baseURL string, session *Session) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	if session == nil {
		session = NewSession()
	}
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout, Jar: jar},
		baseURL:    strings.TrimRight(baseURL, "/"),
		session:    session,
	}, nil
}

func (c *Client) Session() *Session {
	return c.session
}

type userEnvelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    *authdomain.PublicUser `json:"data"`
}

func (c *Client) SignUp(ctx context.Context, fullName, email, password string) (*authdomain.PublicUser, error) {
	body := map[string]string{"fullName": fullName, "email": email, "password": password}
	var resp userEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/auth/signup", body, &resp); err != nil {
		return nil, fmt.Errorf("signup request failed: %w", err)
	}
	c.session.SetIdentity(resp.Data)
	return resp.Data, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*authdomain.PublicUser, error) {
	body := map[string]string{"email": email, "password": password}
	var resp userEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	c.session.SetIdentity(resp.Data)
	return resp.Data, nil
}

// Logout keeps the identity if the server did not acknowledge the logout.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	c.session.ClearIdentity()
	return nil
}

// CheckAuth asks the server who the cookie belongs to. Any failure clears
// the session.
func (c *Client) CheckAuth(ctx context.Context) (*authdomain.PublicUser, error) {
	var resp userEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/auth/check-auth", nil, &resp); err != nil {
		c.session.ClearIdentity()
		return nil, fmt.Errorf("check-auth request failed: %w", err)
	}
	c.session.SetIdentity(resp.Data)
	return resp.Data, nil
}

func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*authdomain.PublicUser, error) {
	fields := map[string]string{"fullName": update.FullName, "email": update.Email}
	var resp userEnvelope
	if err := c.doMultipart(ctx, http.MethodPut, "/users/profile", fields, update.Image, &resp); err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	c.session.SetIdentity(resp.Data)
	return resp.Data, nil
}

// Users lists everyone but the caller, optionally filtered by search.
func (c *Client) Users(ctx context.Context, search string) ([]authdomain.PublicUser, error) {
	path := "/message/users"
	if search != "" {
		path += "?" + url.Values{"search": {search}}.Encode()
	}
	var resp struct {
		Users []authdomain.PublicUser `json:"users"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("users request failed: %w", err)
	}
	return resp.Users, nil
}

func (c *Client) Messages(ctx context.Context, otherUserID string) ([]*messagedomain.Message, error) {
	path := "/message/get-all-messages?" + url.Values{"otherUserId": {otherUserID}}.Encode()
	var resp struct {
		Data []*messagedomain.Message `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("messages request failed: %w", err)
	}
	return resp.Data, nil
}

func (c *Client) SendMessage(ctx context.Context, msg OutgoingMessage) (*messagedomain.Message, error) {
	fields := map[string]string{"receiverId": msg.ReceiverID, "text": msg.Text}
	var resp struct {
		Data *messagedomain.Message `json:"data"`
	}
	if err := c.doMultipart(ctx, http.MethodPost, "/message/send-message", fields, msg.Image, &resp); err != nil {
		return nil, fmt.Errorf("send message request failed: %w", err)
	}
	return resp.Data, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, result)
}

func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, image *Image, result any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}
	if image != nil && image.Body != nil {
		part, err := w.CreateFormFile("image", image.Name)
		if err != nil {
			return fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := io.Copy(part, image.Body); err != nil {
			return fmt.Errorf("failed to copy image: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, result)
}

func (c *Client) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return &APIError{Status: resp.StatusCode, Message: errResp.Message}
		}
		return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
