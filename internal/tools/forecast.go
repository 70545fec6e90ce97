package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MimeLyc/weather-mcp/internal/nws"
)

// maxForecastPeriods caps how many forecast periods are shown.
const maxForecastPeriods = 5

// ForecastTool implements short-range forecast lookup by coordinates
type ForecastTool struct {
	client *nws.Client
}

// ForecastArgs represents the arguments for a forecast lookup
type ForecastArgs struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewForecastTool creates a new forecast tool backed by the given NWS client
func NewForecastTool(client *nws.Client) *ForecastTool {
	return &ForecastTool{client: client}
}

func (t *ForecastTool) Name() string {
	return "get_forecast"
}

func (t *ForecastTool) Description() string {
	return "Get the weather forecast for a location given its latitude and longitude. Returns the next forecast periods with temperature, wind and a detailed outlook."
}

func (t *ForecastTool) Parameters() json.RawMessage {
	schema := `{
		"type": "object",
		"properties": {
			"latitude": {
				"type": "number",
				"description": "Latitude of the location"
			},
			"longitude": {
				"type": "number",
				"description": "Longitude of the location"
			}
		},
		"required": ["latitude", "longitude"]
	}`
	return json.RawMessage(schema)
}

func (t *ForecastTool) Execute(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	var forecastArgs ForecastArgs
	if err := json.Unmarshal(args, &forecastArgs); err != nil {
		return ToolResult{
			Content: fmt.Sprintf("Failed to parse forecast arguments: %v", err),
			IsError: true,
		}, nil
	}

	// The forecast resource URL is only known after the points lookup, so
	// the two fetches are sequential by data dependency.
	points, err := t.client.Points(ctx, forecastArgs.Latitude, forecastArgs.Longitude)
	if err != nil {
		return ToolResult{Content: "Unable to fetch forecast data for this location."}, nil
	}

	forecastURL := points.Properties.Forecast
	if forecastURL == "" {
		return ToolResult{}, fmt.Errorf("points response missing forecast URL")
	}

	forecast, err := t.client.Forecast(ctx, forecastURL)
	if err != nil {
		return ToolResult{Content: "Unable to fetch detailed forecast."}, nil
	}

	periods := forecast.Properties.Periods
	if periods == nil {
		return ToolResult{}, fmt.Errorf("forecast response missing periods")
	}

	return ToolResult{Content: formatForecast(periods)}, nil
}

// formatForecast renders at most maxForecastPeriods periods as fixed
// multi-line blocks joined with the shared separator. Shorter inputs render
// as-is, without padding.
func formatForecast(periods []nws.ForecastPeriod) string {
	if len(periods) > maxForecastPeriods {
		periods = periods[:maxForecastPeriods]
	}

	forecasts := make([]string, 0, len(periods))
	for _, period := range periods {
		// %v keeps integral temperatures free of a decimal point
		forecasts = append(forecasts, fmt.Sprintf("\n%s:\nTemperature: %v°%s\nWind: %s %s\nForecast: %s\n",
			period.Name,
			period.Temperature,
			period.TemperatureUnit,
			period.WindSpeed,
			period.WindDirection,
			period.DetailedForecast))
	}
	return strings.Join(forecasts, blockSeparator)
}
