package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/i474232898/weather-cli/internal/common"
	"github.com/i474232898/weather-cli/internal/weather"
)

const DefaultWttrBaseURL = "https://wttr.in"

const (
	wttrDateLayout = "2006-01-02"
	wttrObsLayout  = "2006-01-02 03:04 PM"
)

// WttrProvider implements the weather.Provider interface for wttr.in. It needs
// no key and resolves an empty location from the caller's IP address.
type WttrProvider struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewWttrProvider(client *http.Client, baseURL string) *WttrProvider {
	if baseURL == "" {
		baseURL = DefaultWttrBaseURL
	}
	return &WttrProvider{
		name:    "wttr.in",
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (p *WttrProvider) Name() string {
	return p.name
}

type wttrValue struct {
	Value string `json:"value"`
}

func firstValue(vs []wttrValue) string {
	if len(vs) == 0 {
		return ""
	}
	return strings.TrimSpace(vs[0].Value)
}

type wttrHourly struct {
	Time        string      `json:"time"`
	TempC       string      `json:"tempC"`
	TempF       string      `json:"tempF"`
	WeatherDesc []wttrValue `json:"weatherDesc"`
}

type wttrPayload struct {
	CurrentCondition []struct {
		TempC            string      `json:"temp_C"`
		TempF            string      `json:"temp_F"`
		FeelsLikeC       string      `json:"FeelsLikeC"`
		FeelsLikeF       string      `json:"FeelsLikeF"`
		Humidity         string      `json:"humidity"`
		WindspeedKmph    string      `json:"windspeedKmph"`
		WeatherDesc      []wttrValue `json:"weatherDesc"`
		LocalObsDateTime string      `json:"localObsDateTime"`
	} `json:"current_condition"`
	NearestArea []struct {
		AreaName []wttrValue `json:"areaName"`
		Country  []wttrValue `json:"country"`
	} `json:"nearest_area"`
	Weather []struct {
		Date     string       `json:"date"`
		MaxtempC string       `json:"maxtempC"`
		MaxtempF string       `json:"maxtempF"`
		MintempC string       `json:"mintempC"`
		MintempF string       `json:"mintempF"`
		Hourly   []wttrHourly `json:"hourly"`
	} `json:"weather"`
	Data *struct {
		Error []struct {
			Msg string `json:"msg"`
		} `json:"error"`
	} `json:"data"`
}

func (p *WttrProvider) Fetch(ctx context.Context, loc weather.Location) (weather.Snapshot, error) {
	u := p.baseURL + "/"
	if !loc.Implicit() {
		u += url.PathEscape(strings.TrimSpace(string(loc)))
	}
	u += "?format=j1"

	resp, err := doRequest(ctx, p.client, u)
	if err != nil {
		return weather.Snapshot{}, networkError(p.name, loc, err)
	}
	if resp.status == http.StatusNotFound || (!resp.ok() && unknownLocation(resp.body)) {
		return weather.Snapshot{}, notFoundError(p.name, loc)
	}
	if !resp.ok() {
		return weather.Snapshot{}, rejectedError(p.name, loc, resp)
	}

	trimmed := bytes.TrimSpace(resp.body)
	if !bytes.HasPrefix(trimmed, []byte("{")) && unknownLocation(trimmed) {
		return weather.Snapshot{}, notFoundError(p.name, loc)
	}

	var payload wttrPayload
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return weather.Snapshot{}, malformedError(p.name, loc, fmt.Errorf("decode: %w", err))
	}
	if payload.Data != nil && len(payload.Data.Error) > 0 {
		return weather.Snapshot{}, notFoundError(p.name, loc)
	}

	return p.normalize(loc, payload)
}

func unknownLocation(body []byte) bool {
	return common.HasAny(string(body), "unknown location", "unable to find any matching")
}

// celsius reads a temperature pair, preferring the Celsius field and
// converting from Fahrenheit when only that one is present.
func celsius(c, f string) (float64, bool) {
	if v, ok := parseNumber(c); ok {
		return v, true
	}
	if v, ok := parseNumber(f); ok {
		return weather.FahrenheitToCelsius(v), true
	}
	return 0, false
}

func (p *WttrProvider) normalize(loc weather.Location, payload wttrPayload) (weather.Snapshot, error) {
	if len(payload.CurrentCondition) == 0 {
		return weather.Snapshot{}, malformedError(p.name, loc, errors.New("no current conditions"))
	}
	cur := payload.CurrentCondition[0]

	temp, ok := celsius(cur.TempC, cur.TempF)
	if !ok {
		return weather.Snapshot{}, malformedError(p.name, loc, errors.New("current temperature missing or not numeric"))
	}
	feels, ok := celsius(cur.FeelsLikeC, cur.FeelsLikeF)
	if !ok {
		feels = temp
	}
	humidity, _ := parseNumber(cur.Humidity)
	windKmh, _ := parseNumber(cur.WindspeedKmph)
	desc := firstValue(cur.WeatherDesc)

	// wttr.in reports local wall-clock times without an offset, so they are
	// kept as-is in UTC to compare against each other.
	observed, err := time.ParseInLocation(wttrObsLayout, strings.TrimSpace(cur.LocalObsDateTime), time.UTC)
	if err != nil {
		observed = time.Time{}
	}

	data := weather.SnapshotData{
		Location:   p.label(loc, payload),
		Provider:   p.name,
		ObservedAt: observed,
		Current: weather.Current{
			TemperatureC: temp,
			FeelsLikeC:   feels,
			HumidityPct:  humidity,
			WindSpeedMS:  weather.KMHToMS(windKmh),
			Condition:    conditionFromText(desc),
			Description:  desc,
		},
	}

	// The series runs from the 3-hourly slot holding the observation to 24h after it.
	from := slotStart(observed)
	for i, day := range payload.Weather {
		date, err := time.ParseInLocation(wttrDateLayout, strings.TrimSpace(day.Date), time.UTC)
		if err != nil {
			continue
		}

		for _, h := range day.Hourly {
			t, ok := hourlyTime(date, h.Time)
			if !ok {
				continue
			}
			if !observed.IsZero() && (t.Before(from) || t.After(observed.Add(24*time.Hour))) {
				continue
			}
			v, ok := celsius(h.TempC, h.TempF)
			if !ok {
				continue
			}
			data.Hourly = append(data.Hourly, weather.HourlyPoint{Time: t, TemperatureC: v})
		}

		// weather[0] is today.
		if i == 0 || len(data.Forecast) >= weather.MaxForecastDays {
			continue
		}
		high, okHigh := celsius(day.MaxtempC, day.MaxtempF)
		low, okLow := celsius(day.MintempC, day.MintempF)
		if !okHigh || !okLow {
			continue
		}
		dayDesc := middayDescription(day.Hourly)
		data.Forecast = append(data.Forecast, weather.DailyForecast{
			Date:        date,
			HighC:       high,
			LowC:        low,
			Condition:   conditionFromText(dayDesc),
			Description: dayDesc,
		})
	}

	if len(data.Hourly) > weather.MaxHourlyPoints {
		data.Hourly = data.Hourly[:weather.MaxHourlyPoints]
	}

	return weather.NewSnapshot(data), nil
}

func (p *WttrProvider) label(loc weather.Location, payload wttrPayload) string {
	if !loc.Implicit() {
		return strings.TrimSpace(string(loc))
	}
	if len(payload.NearestArea) > 0 {
		area := payload.NearestArea[0]
		name := firstValue(area.AreaName)
		if country := firstValue(area.Country); country != "" && name != "" {
			return name + ", " + country
		}
		if name != "" {
			return name
		}
	}
	return "Current location"
}

// hourlyTime turns wttr's "0", "300" ... "2100" into a timestamp on date.
func hourlyTime(date time.Time, hhmm string) (time.Time, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(hhmm))
	if err != nil || n < 0 || n > 2359 {
		return time.Time{}, false
	}
	return date.Add(time.Duration(n/100)*time.Hour + time.Duration(n%100)*time.Minute), true
}

// slotStart truncates t to the start of its 3-hour slot in the day.
func slotStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.Add(time.Duration(t.Hour()/3*3) * time.Hour)
}

// middayDescription picks the noon slot, or the middle one, as the day's summary.
func middayDescription(hours []wttrHourly) string {
	if len(hours) == 0 {
		return ""
	}
	for _, h := range hours {
		if strings.TrimSpace(h.Time) == "1200" {
			return firstValue(h.WeatherDesc)
		}
	}
	return firstValue(hours[len(hours)/2].WeatherDesc)
}
