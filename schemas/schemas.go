// Package schemas embeds the JSON Schema files shipped with resume-page.
package schemas

import _ "embed"

// Content is the schema content.json documents are checked against before rendering.
//
//go:embed content.schema.json
var Content []byte
