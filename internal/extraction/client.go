package extraction

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/ecosaver/internal/error_values"
	"github.com/limbo/ecosaver/pkg/entity"
)

//go:generate mockgen -source=client.go -destination=mocks/extractor_mock.go -package=mocks

type ExtractorI interface {
	// Turns a free-text description of a day into appliance counts and durations.
	// Any failure of the call itself is reported as ErrExtractionFailed.
	Extract(ctx context.Context, text string) (entity.Activity, error)
}

type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the external text-understanding service over HTTP.
// The request carries the instructions and the user's text; the response
// body is either the JSON object itself or {"text": "<json object>"}.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

type extractRequest struct {
	Instructions string   `json:"instructions"`
	Input        string   `json:"input"`
	Keys         []string `json:"keys"`
}

type textEnvelope struct {
	Text *string `json:"text"`
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		http:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) Extract(ctx context.Context, text string) (entity.Activity, error) {
	if strings.TrimSpace(text) == "" {
		return entity.Activity{}, errorvalues.ErrEmptyActivityText
	}
	body, err := sonic.Marshal(extractRequest{
		Instructions: Prompt(text),
		Input:        text,
		Keys:         Keys,
	})
	if err != nil {
		return entity.Activity{}, failed("encoding request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return entity.Activity{}, failed("building request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return entity.Activity{}, failed("calling service", err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return entity.Activity{}, failed("reading response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return entity.Activity{}, failed("calling service", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	var env textEnvelope
	if sonic.Unmarshal(payload, &env) == nil && env.Text != nil {
		payload = []byte(*env.Text)
	}
	activity, err := ParseActivity(payload)
	if err != nil {
		return entity.Activity{}, failed("decoding response", err)
	}
	return activity, nil
}

func failed(stage string, err error) error {
	return errors.Join(errorvalues.ErrExtractionFailed, errors.New(stage+" error: "+err.Error()))
}

// Prompt builds the instructions sent with every extraction request.
func Prompt(input string) string {
	var b strings.Builder
	b.WriteString("You are a data extractor. From the user's description of their daily activities extract the values below.\n")
	b.WriteString("Durations not given in hours (e.g. \"30 minutes\") must be converted to hours.\n")
	b.WriteString("If a value cannot be obtained fill in 0.\n")
	b.WriteString("Answer with a single JSON object and no other text, using exactly these keys:\n")
	for _, key := range Keys {
		b.WriteString("- " + key + "\n")
	}
	b.WriteString("The user input is: \"" + input + "\"\n")
	return b.String()
}
