package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/i474232898/weather-cli/internal/common"
	"github.com/i474232898/weather-cli/internal/weather"
)

const (
	userAgent    = "weather-cli/1.0"
	maxBodyBytes = 4 << 20
)

var errNoHTTPClient = errors.New("http client not configured")

// response is an upstream reply with its body fully read.
type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// doRequest performs a single GET and reads the body. There are no retries.
func doRequest(ctx context.Context, client *http.Client, rawURL string) (response, error) {
	if client == nil {
		return response{}, errNoHTTPClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return response{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if id := weather.RequestIDFrom(ctx); id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	resp, err := client.Do(req)
	if err != nil {
		return response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return response{}, fmt.Errorf("read body: %w", err)
	}
	return response{status: resp.StatusCode, body: body}, nil
}

func networkError(provider string, loc weather.Location, err error) *weather.FetchError {
	return &weather.FetchError{Kind: weather.KindNetwork, Provider: provider, Location: loc, Err: err}
}

func rejectedError(provider string, loc weather.Location, resp response) *weather.FetchError {
	return &weather.FetchError{
		Kind:     weather.KindProviderRejected,
		Provider: provider,
		Location: loc,
		Status:   resp.status,
		Err:      upstreamMessage(resp.body),
	}
}

func malformedError(provider string, loc weather.Location, err error) *weather.FetchError {
	return &weather.FetchError{Kind: weather.KindMalformedResponse, Provider: provider, Location: loc, Err: err}
}

func notFoundError(provider string, loc weather.Location) *weather.FetchError {
	return &weather.FetchError{Kind: weather.KindLocationNotFound, Provider: provider, Location: loc}
}

// upstreamMessage keeps a short excerpt of an error body for the user.
func upstreamMessage(body []byte) error {
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return nil
	}
	if r := []rune(msg); len(r) > 120 {
		msg = string(r[:120]) + "..."
	}
	return errors.New(msg)
}

// parseNumber reads a numeric string field; blank input is reported as absent.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// conditionFromText maps free-text descriptions ("Patchy light rain",
// "Partly cloudy") onto a Condition.
func conditionFromText(text string) weather.Condition {
	switch {
	case strings.TrimSpace(text) == "":
		return weather.ConditionUnknown
	case common.HasAny(text, "thunder", "storm"):
		return weather.ConditionStorm
	case common.HasAny(text, "snow", "sleet", "blizzard", "ice pellets"):
		return weather.ConditionSnow
	case common.HasAny(text, "rain", "shower", "drizzle"):
		return weather.ConditionRain
	case common.HasAny(text, "fog", "mist", "haze", "smoke"):
		return weather.ConditionMist
	case common.HasAny(text, "cloud", "overcast"):
		return weather.ConditionCloudy
	case common.HasAny(text, "sunny", "clear"):
		return weather.ConditionClear
	default:
		return weather.ConditionUnknown
	}
}
