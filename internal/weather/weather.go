package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// Provider is the value stored in api_data.provider for rows this
	// client creates.
	Provider = "open-meteo"

	DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	Timeout        = 15 * time.Second
)

// ErrNoData indicates a well-formed response with no daily values for the
// requested date.
var ErrNoData = errors.New("forecast response contains no daily data")

// StatusError reports a non-2xx response from the forecast API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("forecast API returned status %d", e.Code)
}

// Client fetches daily forecasts for a fixed location.
type Client struct {
	baseURL    string
	latitude   float64
	longitude  float64
	timezone   string
	httpClient *http.Client
}

// NewClient creates a forecast client for the given coordinates.
func NewClient(latitude, longitude float64, timezone string) *Client {
	return &Client{
		baseURL:   DefaultBaseURL,
		latitude:  latitude,
		longitude: longitude,
		timezone:  timezone,
		httpClient: &http.Client{
			Timeout: Timeout,
		},
	}
}

// NewClientWithBaseURL creates a client pointed at a different endpoint.
// Used by tests.
func NewClientWithBaseURL(baseURL string, latitude, longitude float64, timezone string) *Client {
	c := NewClient(latitude, longitude, timezone)
	c.baseURL = baseURL
	return c
}

// Forecast is one parsed daily forecast. RawJSON holds the response body
// exactly as received.
type Forecast struct {
	Date        string
	Provider    string
	TempMax     *float64
	TempMin     *float64
	WeatherCode int
	WeatherText string
	RawJSON     string
}

// forecastResponse covers the Open-Meteo daily schema (parallel arrays) and
// the flat single-day shape some providers return.
type forecastResponse struct {
	Daily struct {
		TempMax     []*float64 `json:"temperature_2m_max"`
		TempMin     []*float64 `json:"temperature_2m_min"`
		WeatherCode []*int     `json:"weathercode"`
	} `json:"daily"`

	TempMax     *float64 `json:"temp_max"`
	TempMin     *float64 `json:"temp_min"`
	WeatherCode *int     `json:"weathercode"`
}

// FetchDaily performs one blocking GET for the given ISO date and parses
// the daily forecast. A non-2xx status or an uninterpretable body is an
// error; the caller decides whether to skip persistence for that date.
func (c *Client) FetchDaily(ctx context.Context, date string) (*Forecast, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(c.latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(c.longitude, 'f', -1, 64))
	params.Set("daily", "temperature_2m_max,temperature_2m_min,weathercode")
	params.Set("temperature_unit", "fahrenheit")
	params.Set("timezone", c.timezone)
	params.Set("start_date", date)
	params.Set("end_date", date)

	reqURL := c.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading forecast response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	return parseForecast(body, date)
}

// parseForecast interprets a response body. The body is kept verbatim on
// the returned Forecast regardless of which shape matched.
func parseForecast(body []byte, date string) (*Forecast, error) {
	var parsed forecastResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parsing forecast response: %w", err)
	}

	f := &Forecast{
		Date:     date,
		Provider: Provider,
		RawJSON:  string(body),
	}

	switch {
	case len(parsed.Daily.WeatherCode) > 0 && parsed.Daily.WeatherCode[0] != nil:
		f.WeatherCode = *parsed.Daily.WeatherCode[0]
		if len(parsed.Daily.TempMax) > 0 {
			f.TempMax = parsed.Daily.TempMax[0]
		}
		if len(parsed.Daily.TempMin) > 0 {
			f.TempMin = parsed.Daily.TempMin[0]
		}
	case parsed.WeatherCode != nil:
		f.WeatherCode = *parsed.WeatherCode
		f.TempMax = parsed.TempMax
		f.TempMin = parsed.TempMin
	default:
		return nil, ErrNoData
	}

	f.WeatherText = TextForCode(f.WeatherCode)
	return f, nil
}

// Summary renders a short human-readable forecast, e.g. "72°F, Partly
// Cloudy". Used to denormalize a forecast onto the matching event rows.
func (f *Forecast) Summary() string {
	if f.TempMax == nil {
		return f.WeatherText
	}
	return fmt.Sprintf("%.0f°F, %s", *f.TempMax, f.WeatherText)
}
