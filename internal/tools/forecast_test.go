package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MimeLyc/weather-mcp/internal/nws"
)

func makePeriods(n int) []nws.ForecastPeriod {
	periods := make([]nws.ForecastPeriod, 0, n)
	for i := 0; i < n; i++ {
		periods = append(periods, nws.ForecastPeriod{
			Name:             fmt.Sprintf("Period %d", i+1),
			Temperature:      float64(60 + i),
			TemperatureUnit:  "F",
			WindSpeed:        "5 mph",
			WindDirection:    "NW",
			DetailedForecast: fmt.Sprintf("Outlook %d.", i+1),
		})
	}
	return periods
}

func TestForecastTool_Name(t *testing.T) {
	tool := NewForecastTool(nil)
	assert.Equal(t, "get_forecast", tool.Name())
}

func TestForecastTool_Parameters(t *testing.T) {
	tool := NewForecastTool(nil)

	var schema map[string]any
	err := json.Unmarshal(tool.Parameters(), &schema)
	require.NoError(t, err)

	assert.Equal(t, "object", schema["type"])

	props := schema["properties"].(map[string]any)
	assert.Contains(t, props, "latitude")
	assert.Contains(t, props, "longitude")

	required := schema["required"].([]any)
	assert.Contains(t, required, "latitude")
	assert.Contains(t, required, "longitude")
}

func TestFormatForecast_SingleBlock(t *testing.T) {
	periods := []nws.ForecastPeriod{{
		Name:             "Tonight",
		Temperature:      61,
		TemperatureUnit:  "F",
		WindSpeed:        "10 mph",
		WindDirection:    "SW",
		DetailedForecast: "Partly cloudy with patchy fog.",
	}}

	expected := "\nTonight:\nTemperature: 61°F\nWind: 10 mph SW\nForecast: Partly cloudy with patchy fog.\n"
	assert.Equal(t, expected, formatForecast(periods))
}

func TestFormatForecast_FractionalTemperature(t *testing.T) {
	periods := []nws.ForecastPeriod{{
		Name:             "Tonight",
		Temperature:      61.5,
		TemperatureUnit:  "F",
		WindSpeed:        "10 mph",
		WindDirection:    "SW",
		DetailedForecast: "Mild.",
	}}

	expected := "\nTonight:\nTemperature: 61.5°F\nWind: 10 mph SW\nForecast: Mild.\n"
	assert.Equal(t, expected, formatForecast(periods))
}

func TestForecastTool_Execute_FractionalTemperature(t *testing.T) {
	// A fractional temperature is a valid JSON number and must format,
	// not fall back to the unavailable message.
	tool := newForecastTool(t, forecastPointsBody, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"properties": {"periods": [
			{"name": "Tonight", "temperature": 61.5, "temperatureUnit": "F",
			 "windSpeed": "10 mph", "windDirection": "SW",
			 "detailedForecast": "Mild."}]}}`))
	})

	result, err := tool.Execute(context.Background(), json.RawMessage(`{"latitude": 1, "longitude": 2}`))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "\nTonight:\nTemperature: 61.5°F\nWind: 10 mph SW\nForecast: Mild.\n", result.Content)
}

func TestFormatForecast_Truncation(t *testing.T) {
	tests := []struct {
		name       string
		numPeriods int
		wantBlocks int
	}{
		{name: "more than five", numPeriods: 7, wantBlocks: 5},
		{name: "exactly five", numPeriods: 5, wantBlocks: 5},
		{name: "fewer than five", numPeriods: 3, wantBlocks: 3},
		{name: "single period", numPeriods: 1, wantBlocks: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatted := formatForecast(makePeriods(tt.numPeriods))

			blocks := strings.Split(formatted, "\n---\n")
			require.Len(t, blocks, tt.wantBlocks)

			// Input order is preserved
			for i, block := range blocks {
				assert.Contains(t, block, fmt.Sprintf("Period %d:", i+1))
			}
		})
	}
}

func TestFormatForecast_Deterministic(t *testing.T) {
	periods := makePeriods(5)
	assert.Equal(t, formatForecast(periods), formatForecast(periods))
}

// newForecastTool wires a tool against a mock NWS serving both the points
// lookup and the forecast resource it points at.
func newForecastTool(t *testing.T, pointsBody func(serverURL string) string, forecastHandler http.HandlerFunc) *ForecastTool {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/points/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(pointsBody(server.URL)))
	})
	mux.HandleFunc("/forecast", forecastHandler)

	return NewForecastTool(nws.NewClient(server.URL, "", 0))
}

func forecastPointsBody(serverURL string) string {
	return fmt.Sprintf(`{"properties": {"forecast": "%s/forecast"}}`, serverURL)
}

func TestForecastTool_Execute_FiveBlocks(t *testing.T) {
	tool := newForecastTool(t, forecastPointsBody, func(w http.ResponseWriter, r *http.Request) {
		payload := nws.ForecastResponse{}
		payload.Properties.Periods = makePeriods(8)
		json.NewEncoder(w).Encode(payload)
	})

	result, err := tool.Execute(context.Background(), json.RawMessage(`{"latitude": 37.7749, "longitude": -122.4194}`))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	blocks := strings.Split(result.Content, "\n---\n")
	assert.Len(t, blocks, 5)
	assert.Equal(t, "\nPeriod 1:\nTemperature: 60°F\nWind: 5 mph NW\nForecast: Outlook 1.\n", blocks[0])
}

func TestForecastTool_Execute_PointsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	tool := NewForecastTool(nws.NewClient(server.URL, "", 0))

	result, err := tool.Execute(context.Background(), json.RawMessage(`{"latitude": 1, "longitude": 2}`))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "Unable to fetch forecast data for this location.", result.Content)
}

func TestForecastTool_Execute_DetailFailure(t *testing.T) {
	// Points lookup succeeds, the forecast fetch behind it does not.
	tool := newForecastTool(t, forecastPointsBody, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	result, err := tool.Execute(context.Background(), json.RawMessage(`{"latitude": 1, "longitude": 2}`))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "Unable to fetch detailed forecast.", result.Content)
}

func TestForecastTool_Execute_MissingForecastURL(t *testing.T) {
	tool := newForecastTool(t, func(string) string {
		return `{"properties": {}}`
	}, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("forecast endpoint must not be called")
	})

	_, err := tool.Execute(context.Background(), json.RawMessage(`{"latitude": 1, "longitude": 2}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing forecast URL")
}

func TestForecastTool_Execute_MissingPeriods(t *testing.T) {
	tool := newForecastTool(t, forecastPointsBody, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"properties": {}}`))
	})

	_, err := tool.Execute(context.Background(), json.RawMessage(`{"latitude": 1, "longitude": 2}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing periods")
}

func TestForecastTool_Execute_BadArguments(t *testing.T) {
	tool := NewForecastTool(nil)

	result, err := tool.Execute(context.Background(), json.RawMessage(`"not an object"`))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content, "Failed to parse forecast arguments")
}
