package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the quiz service address used when none is configured.
const DefaultBaseURL = "http://localhost:8000"

// defaultTimeout bounds every remote call. The service itself applies no
// timeout, so a hung connection would otherwise wedge the view forever.
const defaultTimeout = 15 * time.Second

// Client is an HTTP client for the quiz service. All calls take a context
// and return errors from the taxonomy in errors.go.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a Client for the service at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// CheckUsername reports whether the username is already taken server-side.
func (c *Client) CheckUsername(ctx context.Context, username string) (bool, error) {
	var out struct {
		Exists bool `json:"exists"`
	}
	if err := c.getJSON(ctx, "check-username/"+url.PathEscape(username), &out); err != nil {
		return false, err
	}
	return out.Exists, nil
}

// CanTakeQuiz runs the eligibility gate check for (username, skill).
// A policy denial is returned as Eligibility{CanTake: false} with the
// service's message, not as an error; errors mean the check itself failed.
func (c *Client) CanTakeQuiz(ctx context.Context, username, skill string) (Eligibility, error) {
	var out Eligibility
	path := "can-take-quiz/" + url.PathEscape(username) + "/" + url.PathEscape(skill)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return Eligibility{}, err
	}
	return out, nil
}

// Questions fetches the question list for a skill. The payload is validated
// against the questions schema before decoding. An empty list is returned
// as *ErrEmpty so callers never construct a session without questions.
func (c *Client) Questions(ctx context.Context, skill string) ([]Question, error) {
	raw, err := c.get(ctx, "questions/"+url.PathEscape(skill))
	if err != nil {
		return nil, err
	}

	if err := validateQuestions(raw); err != nil {
		return nil, err
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, &ErrInvalidPayload{Op: "questions", Err: err}
	}

	if len(questions) == 0 {
		return nil, &ErrEmpty{Resource: "questions"}
	}
	return questions, nil
}

// UserData fetches every skill progress record for the user. An empty
// skills list is a valid result, distinct from a fetch error.
func (c *Client) UserData(ctx context.Context, username string) ([]SkillRecord, error) {
	var out struct {
		Skills []SkillRecord `json:"skills"`
	}
	if err := c.getJSON(ctx, "user-data/"+url.PathEscape(username), &out); err != nil {
		return nil, err
	}
	return out.Skills, nil
}

// LearningJourney fetches the journey for (username, skill). Skill matching
// is case-insensitive, following the service's own lookup rules. A missing
// skill or journey is returned as *ErrEmpty.
func (c *Client) LearningJourney(ctx context.Context, username, skill string) (*Journey, error) {
	records, err := c.UserData(ctx, username)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if strings.EqualFold(r.Skill, skill) && r.Journey != nil {
			return r.Journey, nil
		}
	}
	return nil, &ErrEmpty{Resource: "learning journey"}
}

// SubmitScore posts a final quiz score for (username, skill).
func (c *Client) SubmitScore(ctx context.Context, username, skill string, score int) error {
	body := map[string]any{
		"username": username,
		"skill":    skill,
		"score":    score,
	}
	return c.postJSON(ctx, "submit-score", body)
}

// UpdateProgress posts a chapter completion flag for (username, skill).
// The new value is sent directly rather than as a delta, so a later call
// always supersedes an earlier one.
func (c *Client) UpdateProgress(ctx context.Context, username, skill string, chapterIndex int, completed bool) error {
	body := map[string]any{
		"username":      username,
		"skill":         skill,
		"chapter_index": chapterIndex,
		"completed":     completed,
	}
	return c.postJSON(ctx, "update-progress", body)
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+path, nil)
	if err != nil {
		return nil, &ErrTransport{Op: path, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ErrTransport{Op: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &ErrTransport{Op: path, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrTransport{Op: path, Err: err}
	}
	return raw, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	raw, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ErrInvalidPayload{Op: path, Err: err}
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &ErrTransport{Op: path, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+path, bytes.NewReader(payload))
	if err != nil {
		return &ErrTransport{Op: path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &ErrTransport{Op: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &ErrTransport{Op: path, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}
	return nil
}
