package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/gophsocial/internal/server/models"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the API at baseURL. A nil hc means
// http.DefaultClient.
func NewHTTPClient(baseURL string, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

func (c *HTTPClient) AddUser(ctx context.Context, user *models.User) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodPost, "/usuarios", user, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers returns the "<name> <surname> - <email>" lines in server order.
func (c *HTTPClient) ListUsers(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/usuarios", nil)
	if err != nil {
		return nil, err
	}

	body, err := c.send(req)
	if err != nil {
		return nil, err
	}

	if len(body) == 0 {
		return []string{}, nil
	}
	return strings.Split(string(body), "\n"), nil
}

// CreatePost uploads a post as multipart form data. The image part is sent
// only when image is non-nil.
func (c *HTTPClient) CreatePost(ctx context.Context, text, imageName string, image []byte) (*models.Post, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("texto", text); err != nil {
		return nil, err
	}
	if image != nil {
		if imageName == "" {
			imageName = "imagen"
		}
		fw, err := mw.CreateFormFile("imagen", imageName)
		if err != nil {
			return nil, err
		}
		if _, err := fw.Write(image); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/publicaciones", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	body, err := c.send(req)
	if err != nil {
		return nil, err
	}

	var out models.Post
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode post: %w", err)
	}
	return &out, nil
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	out := []models.Post{}
	if err := c.doJSON(ctx, http.MethodGet, "/publicaciones", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, postID int64, author, text string) (*models.Comment, error) {
	in := models.Comment{Author: author, Text: text}
	var out models.Comment
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/publicaciones/%d/comentarios", postID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	var rd io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	body, err := c.send(req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// send performs req and returns the body of a 2xx response.
func (c *HTTPClient) send(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}
	return body, nil
}

// newAPIError reads either error envelope the server produces:
// {"message": ...} or {"error": ...}.
func newAPIError(status int, body []byte) *APIError {
	var env struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(body, &env)

	msg := env.Message
	if msg == "" {
		msg = env.Error
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{Status: status, Message: msg}
}
