package weather

import (
	"fmt"
	"strings"
)

// Unit is the temperature unit used for display. Snapshots always store Celsius.
type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
)

// ParseUnit accepts "metric", "c", "celsius", "imperial", "f" and "fahrenheit".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "metric", "c", "celsius":
		return Celsius, nil
	case "imperial", "f", "fahrenheit":
		return Fahrenheit, nil
	default:
		return Celsius, fmt.Errorf("unknown unit %q", s)
	}
}

func (u Unit) String() string {
	if u == Fahrenheit {
		return "fahrenheit"
	}
	return "celsius"
}

// Symbol returns "°C" or "°F".
func (u Unit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// FromCelsius converts a canonical temperature into u.
func (u Unit) FromCelsius(c float64) float64 {
	if u == Fahrenheit {
		return CelsiusToFahrenheit(c)
	}
	return c
}

// WindLabel returns the wind unit shown next to temperatures in u.
func (u Unit) WindLabel() string {
	if u == Fahrenheit {
		return "mph"
	}
	return "m/s"
}

// WindFromMS converts a canonical wind speed into the unit paired with u.
func (u Unit) WindFromMS(ms float64) float64 {
	if u == Fahrenheit {
		return MSToMPH(ms)
	}
	return ms
}

func CelsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }

func FahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

func MSToMPH(ms float64) float64 { return ms * 2.2369362920544 }

func KMHToMS(kmh float64) float64 { return kmh / 3.6 }
