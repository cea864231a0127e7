package openapi

import "maps"

// NewComponents creates Components with the shared failure schema and
// routing-level error responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Failure": {
				Type:     "object",
				Required: []string{"success", "error"},
				Properties: map[string]*Schema{
					"success": {Type: "boolean", Example: false},
					"error":   {Type: "string", Description: "Error label"},
					"message": {Type: "string", Description: "Human-readable explanation"},
					"details": {
						Type:                 "object",
						Description:          "Per-field validation reasons",
						AdditionalProperties: &Schema{Type: "string"},
					},
				},
			},
		},
		Responses: map[string]*Response{
			"NotFound":         FailureResponse("The requested endpoint does not exist"),
			"MethodNotAllowed": FailureResponse("The requested method is not allowed for this endpoint"),
			"PayloadTooLarge":  FailureResponse("Request body exceeds the configured limit"),
			"InternalError":    FailureResponse("An internal server error occurred"),
		},
	}
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges the given responses into the component responses.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}
