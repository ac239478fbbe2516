package ai

import "encoding/json"

// commandSchema constrains structured output to {"cmd": "<command>"}.
var commandSchema = json.RawMessage(`{"type":"object","properties":{"cmd":{"type":"string"}},"required":["cmd"]}`)

// generateRequest is the request body for /api/generate.
type generateRequest struct {
	Model  string          `json:"model"`
	Prompt string          `json:"prompt"`
	Stream bool            `json:"stream"`
	Format json.RawMessage `json:"format,omitempty"`
}

// generateResponse is the non-streaming response from /api/generate.
// Response is a pointer so a missing field can be told apart from "".
type generateResponse struct {
	Model    string  `json:"model"`
	Response *string `json:"response"`
	Done     bool    `json:"done"`
}

// structuredCommand is the document carried inside Response when a schema
// was requested.
type structuredCommand struct {
	Cmd *string `json:"cmd"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// tagsResponse is the response from /api/tags.
type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}
