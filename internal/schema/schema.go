// Package schema describes toolctl's report documents as JSON Schema, for
// hosts that persist detection results themselves and want to validate the
// serialized form.
package schema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"toolctl/internal/detect"
)

// Report is the document emitted by `toolctl ls --json`.
type Report struct {
	Tools   []detect.ToolInfo `json:"tools"`
	Summary detect.Summary    `json:"summary"`
}

// ReportSchema returns the JSON Schema for Report.
func ReportSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&Report{})
	sch.Title = "toolctl detection report"
	sch.Description = "Batch detection results plus the run summary."
	return sch
}

// MarshalSchema indents a schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
