package testutil

// WttrCurrent is the current_condition block of a wttr.in j1 payload.
func WttrCurrent(tempC int, desc, observed string) map[string]any {
	return map[string]any{
		"temp_C":           str(tempC),
		"temp_F":           str(tempC*9/5 + 32),
		"FeelsLikeC":       str(tempC - 2),
		"humidity":         "71",
		"windspeedKmph":    "18",
		"localObsDateTime": observed,
		"weatherDesc":      []map[string]string{{"value": desc}},
	}
}

// WttrDay is one entry of the j1 "weather" array with eight 3-hourly slots
// at the given temperatures; the noon slot carries noonDesc.
func WttrDay(date string, maxC, minC int, noonDesc string, temps [8]int) map[string]any {
	hourly := make([]map[string]any, 0, 8)
	for i, t := range temps {
		desc := "Partly cloudy"
		if i == 4 {
			desc = noonDesc
		}
		hourly = append(hourly, map[string]any{
			"time":        str(i * 300),
			"tempC":       str(t),
			"weatherDesc": []map[string]string{{"value": desc}},
		})
	}
	return map[string]any{
		"date":     date,
		"maxtempC": str(maxC),
		"mintempC": str(minC),
		"hourly":   hourly,
	}
}

// WttrLondon is a three-day j1 payload observed at 2024-05-01 10:15 local time.
func WttrLondon() map[string]any {
	return map[string]any{
		"current_condition": []any{WttrCurrent(15, "Cloudy", "2024-05-01 10:15 AM")},
		"nearest_area": []any{map[string]any{
			"areaName": []map[string]string{{"value": "London"}},
			"country":  []map[string]string{{"value": "United Kingdom"}},
		}},
		"weather": []any{
			WttrDay("2024-05-01", 17, 9, "Overcast", [8]int{9, 9, 10, 12, 15, 17, 14, 11}),
			WttrDay("2024-05-02", 16, 8, "Light rain", [8]int{10, 9, 8, 11, 14, 16, 13, 10}),
			WttrDay("2024-05-03", 20, 11, "Sunny", [8]int{11, 11, 12, 15, 18, 20, 17, 13}),
		},
	}
}

// OWMGeocode is a one-hit /geo/1.0/direct answer.
func OWMGeocode(name, country string) []map[string]any {
	return []map[string]any{{
		"name": name, "lat": 51.5073, "lon": -0.1276, "country": country,
	}}
}

// OWMOneCall is a One Call payload with 30 hourly points and 5 daily entries.
func OWMOneCall(tempC float64) map[string]any {
	const start = 1714557600 // 2024-05-01 10:00 UTC
	hourly := make([]map[string]any, 0, 30)
	for i := 0; i < 30; i++ {
		hourly = append(hourly, map[string]any{"dt": start + i*3600, "temp": 10.0 + float64(i%12)})
	}
	daily := make([]map[string]any, 0, 5)
	for i := 0; i < 5; i++ {
		daily = append(daily, map[string]any{
			"dt":      start + 2*3600 + i*86400,
			"temp":    map[string]any{"min": 8.0 + float64(i), "max": 18.0 + float64(i)},
			"weather": []map[string]string{{"main": "Rain", "description": "light rain"}},
		})
	}
	return map[string]any{
		"timezone_offset": 3600,
		"current": map[string]any{
			"dt": start, "temp": tempC, "feels_like": tempC - 1, "humidity": 64, "wind_speed": 4.1,
			"weather": []map[string]string{{"main": "Clouds", "description": "broken clouds"}},
		},
		"hourly": hourly,
		"daily":  daily,
	}
}

// OWMCurrent is a /data/2.5/weather payload.
func OWMCurrent(tempC float64) map[string]any {
	return map[string]any{
		"dt":      1714557600,
		"main":    map[string]any{"temp": tempC, "feels_like": tempC - 1, "humidity": 80},
		"wind":    map[string]any{"speed": 3.0},
		"weather": []map[string]string{{"main": "Clear", "description": "clear sky"}},
	}
}
