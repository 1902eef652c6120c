package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, cells map[string]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for cell, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}
	path := filepath.Join(t.TempDir(), "words.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadTerms_XLSX(t *testing.T) {
	path := writeWorkbook(t, map[string]string{
		"A1": "Word", "B1": "Translation",
		"A2": "apple", "B2": "яблоко",
		"A3": "  ",
		"A4": " pear ",
	})

	terms, err := ReadTerms(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "pear"}, terms)

	terms, err = ReadTerms(path, Options{Column: "b", StartRow: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"Translation", "яблоко"}, terms)
}

func TestReadTerms_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte("word\napple\n\"ice cream\",extra\n"), 0o600))

	terms, err := ReadTerms(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "ice cream"}, terms)
}

func TestReadTerms_Errors(t *testing.T) {
	_, err := ReadTerms(filepath.Join(t.TempDir(), "missing.xlsx"), Options{})
	assert.Error(t, err)

	path := writeWorkbook(t, map[string]string{"A1": "x"})
	_, err = ReadTerms(path, Options{Sheet: "Nope"})
	assert.Error(t, err)

	_, err = ReadTerms(path, Options{Column: "1"})
	assert.Error(t, err)
}
