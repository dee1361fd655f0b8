package testutil

import (
	"net/http"
	"testing"
)

func TestHitsCountsEachPath(t *testing.T) {
	hits := NewHits()
	app := NewApp(hits)
	app.Get("/geo/1.0/direct", Text(http.StatusOK, "[]"))
	app.Get("/data/2.5/onecall", Text(http.StatusNotFound, "not found"))
	app.Get("/data/2.5/weather", Text(http.StatusOK, "{}"))
	client := Client(app)

	for _, path := range []string{"/geo/1.0/direct", "/data/2.5/onecall", "/data/2.5/weather", "/data/2.5/weather"} {
		resp, err := client.Get("http://owm.test" + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
	}

	tests := []struct {
		path string
		want int
	}{
		{"/geo/1.0/direct", 1},
		{"/data/2.5/onecall", 1},
		{"/data/2.5/weather", 2},
		{"/missing", 0},
	}
	for _, tt := range tests {
		if got := hits.Count(tt.path); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}
