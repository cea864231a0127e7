package prompts

import "github.com/JaimeStill/promptmatch/pkg/openapi"

// Schemas returns the OpenAPI component schemas for the match endpoint.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"MatchRequest": {
			Type:     "object",
			Required: RequiredFields(),
			Properties: map[string]*openapi.Schema{
				FieldSituation: openapi.StringEnum("Claim line of business", situations.values),
				FieldLevel:     openapi.StringEnum("Kind of output", levels.values),
				FieldFileType:  openapi.StringEnum("Kind of source document", fileTypes.values),
				FieldData:      {Type: "string", Description: "Free-form payload; required but not interpreted"},
			},
		},
		"MatchResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"success": {Type: "boolean", Example: true},
				"prompt":  {Type: "string", Example: "Prompt 1"},
			},
		},
	}
}

// Responses returns the OpenAPI component responses for match failures.
func Responses() map[string]*openapi.Response {
	return map[string]*openapi.Response{
		"MissingData":   openapi.FailureResponse("A required field is missing or the body is not a JSON object"),
		"InvalidPrompt": openapi.FailureResponse("A field is outside its domain or no prompt matches the combination"),
	}
}
