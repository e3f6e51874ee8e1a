package salary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tals012/agriculture-hrms-sub002/internal/config"
)

// Client talks to the external salary system. The API is a single PHP
// endpoint taking credentials as query parameters and a JSON body whose
// field names are mandated by the provider (Hebrew transliterations).
type Client struct {
	baseURL string
	user    string
	pass    string
	http    *http.Client
}

func NewClient(cfg config.SalaryConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		user:    cfg.User,
		pass:    cfg.Password,
		http: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// Enabled reports whether the integration is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// APIError represents a salary system API error
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("salary API error [%d]: %s", e.StatusCode, e.Message)
}

// RegisterPayload registers a worker. Field names follow the provider's
// fixed schema.
type RegisterPayload struct {
	Sug           string `json:"sug"`
	MisparTZ      string `json:"mispar_tz"`
	ShemMishpacha string `json:"shem_mishpacha"`
	ShemPrati     string `json:"shem_prati"`
	Telefon       string `json:"telefon,omitempty"`
}

// MonthlyPayload submits one worker's monthly totals.
type MonthlyPayload struct {
	Sug           string  `json:"sug"`
	MisparTZ      string  `json:"mispar_tz"`
	ShemMishpacha string  `json:"shem_mishpacha"`
	ShemPrati     string  `json:"shem_prati"`
	Chodesh       string  `json:"chodesh"`
	Shaot100      float64 `json:"shaot_100"`
	Shaot125      float64 `json:"shaot_125"`
	Shaot150      float64 `json:"shaot_150"`
	YemeiAvoda    int     `json:"yemei_avoda"`
	YemeiMachala  int     `json:"yemei_machala"`
	SchumBasis    string  `json:"schum_basis"`
	Bonus         string  `json:"bonus"`
}

type apiResponse struct {
	Data   json.RawMessage `json:"data"`
	Status string          `json:"status"`
	Error  string          `json:"error"`
}

const (
	sugRegister = "1"
	sugMonthly  = "2"
)

// RegisterWorker registers a worker with the salary system and returns the
// provider-side id if one is present in the response.
func (c *Client) RegisterWorker(ctx context.Context, p RegisterPayload) (string, error) {
	p.Sug = sugRegister

	data, err := c.post(ctx, p)
	if err != nil {
		return "", err
	}

	var result struct {
		ID string `json:"id"`
	}
	// Providers sometimes return a bare string; id is best effort.
	if err := json.Unmarshal(data, &result); err != nil {
		return "", nil
	}
	return result.ID, nil
}

// SubmitMonthly submits one monthly aggregate.
func (c *Client) SubmitMonthly(ctx context.Context, p MonthlyPayload) error {
	p.Sug = sugMonthly

	_, err := c.post(ctx, p)
	return err
}

func (c *Client) post(ctx context.Context, payload interface{}) (json.RawMessage, error) {
	if !c.Enabled() {
		return nil, &APIError{StatusCode: 0, Message: "salary API is not configured"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal salary payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/php/api.php?user=%s&pass=%s",
		c.baseURL, url.QueryEscape(c.user), url.QueryEscape(c.pass))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build salary request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("salary API request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read salary response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(raw)}
	}

	var parsed apiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "unparseable response body"}
	}

	if parsed.Error != "" {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: parsed.Error}
	}
	if len(parsed.Data) == 0 || string(parsed.Data) == "null" || string(parsed.Data) == "false" {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "empty data in response"}
	}

	return parsed.Data, nil
}
