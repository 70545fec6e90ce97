package nws

import "encoding/json"

// AlertsResponse is the GeoJSON feature collection returned by the active
// alerts endpoint. Callers treat a response without a features field
// differently from one whose features list is empty or null, so decoding
// records whether the key was present at all.
type AlertsResponse struct {
	Features        []AlertFeature
	FeaturesPresent bool
}

func (a *AlertsResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		Features json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Features == nil {
		return nil
	}
	a.FeaturesPresent = true
	// A null features value decodes to a nil slice, same as an empty list
	return json.Unmarshal(raw.Features, &a.Features)
}

// AlertFeature is a single alert record from the feature collection.
type AlertFeature struct {
	Properties AlertProperties `json:"properties"`
}

// AlertProperties holds the alert fields used for display. All of them are
// optional in the upstream schema; absent fields decode to empty strings.
type AlertProperties struct {
	Event       string `json:"event"`
	AreaDesc    string `json:"areaDesc"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Instruction string `json:"instruction"`
}

// PointsResponse carries the forecast resource URL discovered from a
// coordinate lookup. Only used transiently to chain the second request.
type PointsResponse struct {
	Properties PointsProperties `json:"properties"`
}

type PointsProperties struct {
	Forecast string `json:"forecast"`
}

// ForecastResponse is the payload of the forecast resource.
type ForecastResponse struct {
	Properties ForecastProperties `json:"properties"`
}

type ForecastProperties struct {
	Periods []ForecastPeriod `json:"periods"`
}

// ForecastPeriod is one named forecast window ("Tonight", "Saturday", ...).
// The upstream contract guarantees these fields for every period.
// Temperature is a JSON number and may carry a fractional part.
type ForecastPeriod struct {
	Name             string  `json:"name"`
	Temperature      float64 `json:"temperature"`
	TemperatureUnit  string  `json:"temperatureUnit"`
	WindSpeed        string  `json:"windSpeed"`
	WindDirection    string  `json:"windDirection"`
	DetailedForecast string  `json:"detailedForecast"`
}
