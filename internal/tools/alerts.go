package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MimeLyc/weather-mcp/internal/nws"
)

// blockSeparator joins formatted alert and forecast blocks.
const blockSeparator = "\n---\n"

// AlertsTool implements active weather alert lookup by US state
type AlertsTool struct {
	client *nws.Client
}

// AlertsArgs represents the arguments for an alert lookup
type AlertsArgs struct {
	State string `json:"state"`
}

// NewAlertsTool creates a new alerts tool backed by the given NWS client
func NewAlertsTool(client *nws.Client) *AlertsTool {
	return &AlertsTool{client: client}
}

func (t *AlertsTool) Name() string {
	return "get_alerts"
}

func (t *AlertsTool) Description() string {
	return "Get active weather alerts for a US state. Returns the event, affected area, severity, description and safety instructions for each alert, or a message when no alerts are active."
}

func (t *AlertsTool) Parameters() json.RawMessage {
	schema := `{
		"type": "object",
		"properties": {
			"state": {
				"type": "string",
				"description": "Two-letter US state code (e.g. 'CA', 'NY')"
			}
		},
		"required": ["state"]
	}`
	return json.RawMessage(schema)
}

func (t *AlertsTool) Execute(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	var alertArgs AlertsArgs
	if err := json.Unmarshal(args, &alertArgs); err != nil {
		return ToolResult{
			Content: fmt.Sprintf("Failed to parse alert arguments: %v", err),
			IsError: true,
		}, nil
	}

	// The state code is forwarded unvalidated; upstream rejection of a bad
	// code lands on the same fallback message as any other failure.
	resp, err := t.client.ActiveAlerts(ctx, alertArgs.State)
	if err != nil || !resp.FeaturesPresent {
		return ToolResult{Content: "Unable to fetch alerts or no alerts found."}, nil
	}

	if len(resp.Features) == 0 {
		return ToolResult{Content: "No active alerts for this state."}, nil
	}

	alerts := make([]string, 0, len(resp.Features))
	for _, feature := range resp.Features {
		alerts = append(alerts, formatAlert(feature))
	}
	return ToolResult{Content: strings.Join(alerts, blockSeparator)}, nil
}

// formatAlert renders one alert feature as a fixed multi-line block.
// Absent optional fields fall back to fixed placeholder text.
func formatAlert(feature nws.AlertFeature) string {
	props := feature.Properties
	return fmt.Sprintf("\nEvent: %s\nArea: %s\nSeverity: %s\nDescription: %s\nInstructions: %s\n",
		orDefault(props.Event, "Unknown"),
		orDefault(props.AreaDesc, "Unknown"),
		orDefault(props.Severity, "Unknown"),
		orDefault(props.Description, "No description available"),
		orDefault(props.Instruction, "No specific instructions provided"))
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
