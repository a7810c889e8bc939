package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPDFCommand_LoadFailureSkipsBrowser(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "resume.pdf")

	_, err := execute(t, "export-pdf", "-c", filepath.Join(dir, "absent.json"), "--out", outFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
	assert.NoFileExists(t, outFile)
}

func TestExportPDFCommand_DefaultFlags(t *testing.T) {
	resetFlags(rootCmd)
	flag := exportPDFCmd.Flags().Lookup("page-size")
	require.NotNil(t, flag)
	assert.Equal(t, "A4", flag.DefValue)
	assert.Equal(t, "0.5in", exportPDFCmd.Flags().Lookup("margin").DefValue)
}
