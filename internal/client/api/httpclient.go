package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dgidpl/startup-app/internal/client/models"
)

// HTTPClient talks to the script endpoint. POST bodies are JSON sent with a
// text/plain content type: the backend parses the body as JSON regardless,
// and the plain type keeps the exchange out of CORS preflight territory for
// the browser clients sharing the same endpoint.
type HTTPClient struct {
	endpointURL string
	httpClient  *http.Client
	now         func() time.Time
}

func NewHTTPClient(endpointURL string) *HTTPClient {
	return &HTTPClient{
		endpointURL: endpointURL,
		httpClient:  &http.Client{},
		now:         time.Now,
	}
}

// envelope is the generic status wrapper the backend uses for mutations and
// for reporting errors in place of a data payload.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *HTTPClient) get(ctx context.Context, params url.Values) ([]byte, error) {
	// Cache-busting timestamp: intermediate proxies cache the script URL
	// aggressively otherwise.
	params.Set("t", strconv.FormatInt(c.now().UnixMilli(), 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	return c.do(req)
}

func (c *HTTPClient) post(ctx context.Context, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	return c.do(req)
}

func (c *HTTPClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return body, nil
}

// decodeList decodes a payload that should be a JSON array. The backend
// signals failures by replacing the array with an error envelope, so a
// non-array payload is checked for one before being declared malformed.
func decodeList(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Status == "error" {
		return &ServiceError{Message: env.Message}
	}

	return fmt.Errorf("%w: expected a JSON array", ErrMalformedResponse)
}

func (c *HTTPClient) FetchIdeas(ctx context.Context) ([]models.Idea, error) {
	body, err := c.get(ctx, url.Values{"action": {"getData"}})
	if err != nil {
		return nil, err
	}

	var ideas []models.Idea
	if err := decodeList(body, &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

func (c *HTTPClient) CreateIdea(ctx context.Context, author, phone, topic, content string) error {
	payload := struct {
		Action  string `json:"action"`
		Author  string `json:"author"`
		Phone   string `json:"phone"`
		Topic   string `json:"topic"`
		Content string `json:"content"`
	}{"create_idea", author, phone, topic, content}

	body, err := c.post(ctx, payload)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if env.Status != "success" {
		return &ServiceError{Message: env.Message}
	}
	return nil
}

func (c *HTTPClient) Vote(ctx context.Context, id models.ID, direction models.VoteDirection) error {
	payload := struct {
		Action string               `json:"action"`
		ID     models.ID            `json:"id"`
		Type   models.VoteDirection `json:"type"`
	}{"vote", id, direction}

	// Any JSON response counts as success; only transport failures matter.
	_, err := c.post(ctx, payload)
	return err
}

func (c *HTTPClient) GetComments(ctx context.Context, ideaID models.ID) ([]models.Comment, error) {
	body, err := c.get(ctx, url.Values{"action": {"get_comments"}, "id": {string(ideaID)}})
	if err != nil {
		return nil, err
	}

	var comments []models.Comment
	if err := decodeList(body, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, ideaID models.ID, author, text string) error {
	payload := struct {
		Action string    `json:"action"`
		IdeaID models.ID `json:"ideaId"`
		Text   string    `json:"text"`
		Author string    `json:"author"`
	}{"add_comment", ideaID, text, author}

	_, err := c.post(ctx, payload)
	return err
}
