package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["info"],
	"properties": {
		"info": {"type": "object", "required": ["full_name"]}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateBytes_Valid(t *testing.T) {
	err := ValidateBytes([]byte(testSchema), []byte(`{"info": {"full_name": {}}}`))
	assert.NoError(t, err)
}

func TestValidateBytes_MissingRequired(t *testing.T) {
	err := ValidateBytes([]byte(testSchema), []byte(`{"projects": []}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "(root)")
	assert.Contains(t, err.Error(), "info")
}

func TestValidateBytes_NestedField(t *testing.T) {
	err := ValidateBytes([]byte(testSchema), []byte(`{"info": {}}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"info"}, validationErr.Fields())
}

func TestValidateBytes_MalformedDocument(t *testing.T) {
	err := ValidateBytes([]byte(testSchema), []byte(`{"info": `))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateBytes_MalformedSchema(t *testing.T) {
	err := ValidateBytes([]byte(`{"type": 12}`), []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	validPath := writeFile(t, dir, "valid.json", `{"info": {"full_name": {}}}`)
	invalidPath := writeFile(t, dir, "invalid.json", `{}`)

	assert.NoError(t, ValidateJSON(schemaPath, validPath))

	err := ValidateJSON(schemaPath, invalidPath)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)

	err := ValidateJSON(filepath.Join(dir, "nope.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidationError_Format(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "info", Message: "is required"},
		{Field: "info.contact", Message: "is required"},
	}}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1. info: is required")
	assert.Contains(t, msg, "2. info.contact: is required")
}
