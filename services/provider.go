package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"covertrip/config"
	"covertrip/models"
	"covertrip/services/wizard"
)

// PlanFetcher fetches the insurer catalog for one traveler's criteria.
// The wizard awaits a single outcome: either a full catalog or an error,
// never partial data.
type PlanFetcher interface {
	FetchPlans(ctx context.Context, key wizard.FetchKey) ([]models.Insurer, error)
}

// InsurerAPIClient talks to the insurer aggregator API.
type InsurerAPIClient struct {
	baseURL  string
	login    string
	password string
	cl       *http.Client
}

// NewInsurerAPIClient builds the production fetcher from config.
func NewInsurerAPIClient(cfg *config.Config) *InsurerAPIClient {
	return &InsurerAPIClient{
		baseURL:  cfg.ProviderBaseURL,
		login:    cfg.ProviderLogin,
		password: cfg.ProviderPassword,
		cl:       &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *InsurerAPIClient) basicAuthHeader() string {
	creds := c.login + ":" + c.password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
}

type planRequest struct {
	DurationDays int    `json:"duration_days"`
	Age          int    `json:"age"`
	CategoryID   int    `json:"category_id"`
	PartnerID    string `json:"partner_id,omitempty"`
}

type planResponse struct {
	Result  []models.Insurer `json:"result"`
	Success bool             `json:"success"`
	Error   string           `json:"error"`
}

// FetchPlans posts the traveler criteria and decodes the nested insurer
// catalog from the response.
func (c *InsurerAPIClient) FetchPlans(ctx context.Context, key wizard.FetchKey) ([]models.Insurer, error) {
	payload, err := json.Marshal(planRequest{
		DurationDays: key.Days,
		Age:          key.Age,
		CategoryID:   key.CategoryID,
		PartnerID:    key.PartnerID,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/travel/plans", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.basicAuthHeader())

	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, fmt.Errorf("external api error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("external api error: status %d", resp.StatusCode)
	}

	var decoded planResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("external api error: %w", err)
	}
	if !decoded.Success {
		if decoded.Error != "" {
			return nil, fmt.Errorf("external api error: %s", decoded.Error)
		}
		return nil, fmt.Errorf("external api error")
	}
	return decoded.Result, nil
}
