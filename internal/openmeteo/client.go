// Package openmeteo talks to the Open-Meteo forecast and geocoding APIs.
package openmeteo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"aura_display/internal/httpclient"
	"aura_display/internal/locale"
	"aura_display/internal/models"
)

const (
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

	forecastHours = 7
	geocodeCount  = 15

	currentFields = "temperature_2m,apparent_temperature,weather_code,is_day"
	dailyFields   = "weather_code,temperature_2m_max,temperature_2m_min,sunrise,sunset"
	hourlyFields  = "temperature_2m,precipitation_probability,precipitation,weather_code,is_day"
)

// ForecastResponse is the subset of the forecast payload the display uses.
type ForecastResponse struct {
	UTCOffsetSeconds int `json:"utc_offset_seconds"`
	Current          struct {
		Temperature2m       float64 `json:"temperature_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		WeatherCode         int     `json:"weather_code"`
		IsDay               int     `json:"is_day"`
	} `json:"current"`
	Daily struct {
		Time             []string  `json:"time"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		WeatherCode      []int     `json:"weather_code"`
		Sunrise          []string  `json:"sunrise"`
		Sunset           []string  `json:"sunset"`
	} `json:"daily"`
	Hourly struct {
		Time                     []string  `json:"time"`
		Temperature2m            []float64 `json:"temperature_2m"`
		PrecipitationProbability []float64 `json:"precipitation_probability"`
		Precipitation            []float64 `json:"precipitation"`
		WeatherCode              []int     `json:"weather_code"`
		IsDay                    []int     `json:"is_day"`
	} `json:"hourly"`
}

type geocodingResponse struct {
	Results []models.GeoResult `json:"results"`
}

// Client issues forecast and geocoding requests.
type Client struct {
	forecast     *httpclient.Client
	geocoding    *httpclient.Client
	forecastURL  string
	geocodingURL string
}

// NewClient uses the public endpoints when the URLs are empty. Geocoding
// shares the forecast client when geocoding is nil; give it its own client
// so a tripped forecast breaker does not block location search.
func NewClient(forecast, geocoding *httpclient.Client, forecastURL, geocodingURL string) *Client {
	if geocoding == nil {
		geocoding = forecast
	}
	if forecastURL == "" {
		forecastURL = DefaultForecastURL
	}
	if geocodingURL == "" {
		geocodingURL = DefaultGeocodingURL
	}
	return &Client{forecast: forecast, geocoding: geocoding, forecastURL: forecastURL, geocodingURL: geocodingURL}
}

// Forecast requests current conditions, 7 daily aggregates and 7 hours of
// hourly data in the location's own timezone.
func (c *Client) Forecast(ctx context.Context, lat, lon string) (*ForecastResponse, error) {
	values := url.Values{}
	values.Set("latitude", strings.TrimSpace(lat))
	values.Set("longitude", strings.TrimSpace(lon))
	values.Set("current", currentFields)
	values.Set("daily", dailyFields)
	values.Set("hourly", hourlyFields)
	values.Set("forecast_hours", fmt.Sprint(forecastHours))
	values.Set("timezone", "auto")

	var out ForecastResponse
	if err := c.forecast.GetJSON(ctx, c.forecastURL+"?"+values.Encode(), &out); err != nil {
		return nil, fmt.Errorf("openmeteo forecast: %w", err)
	}
	return &out, nil
}

// Search looks up places by name. An empty result list is not an error.
func (c *Client) Search(ctx context.Context, name string) ([]models.GeoResult, error) {
	u := fmt.Sprintf("%s?name=%s&count=%d", c.geocodingURL, locale.PercentEncode(name), geocodeCount)

	var out geocodingResponse
	if err := c.geocoding.GetJSON(ctx, u, &out); err != nil {
		return nil, fmt.Errorf("openmeteo geocoding: %w", err)
	}
	return out.Results, nil
}
