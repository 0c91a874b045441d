// Package tfl fetches live arrival predictions from the TfL Unified API.
package tfl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"aura_display/internal/httpclient"
)

const DefaultBaseURL = "https://api.tfl.gov.uk"

// Arrival is one prediction as returned by /StopPoint/{id}/Arrivals.
type Arrival struct {
	LineName        string `json:"lineName"`
	DestinationName string `json:"destinationName"`
	Towards         string `json:"towards"`
	TimeToStation   int    `json:"timeToStation"`
}

// Client queries stop arrivals.
type Client struct {
	http    *httpclient.Client
	baseURL string
}

func NewClient(hc *httpclient.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{http: hc, baseURL: strings.TrimRight(baseURL, "/")}
}

// Arrivals returns the predictions for one stop point in API order.
func (c *Client) Arrivals(ctx context.Context, stopID string) ([]Arrival, error) {
	stopID = strings.TrimSpace(stopID)
	if stopID == "" {
		return nil, fmt.Errorf("tfl arrivals: empty stop id")
	}
	u := c.baseURL + "/StopPoint/" + url.PathEscape(stopID) + "/Arrivals"

	var out []Arrival
	if err := c.http.GetJSON(ctx, u, &out); err != nil {
		return nil, fmt.Errorf("tfl arrivals %s: %w", stopID, err)
	}
	return out, nil
}
