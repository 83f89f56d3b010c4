package cli

import (
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	initLogging(false)
	os.Exit(m.Run())
}

func TestReadStatements(t *testing.T) {
	file := filepath.Join(t.TempDir(), "statements.txt")
	content := "AI must maintain boundaries\n\n  Centralized systems are more efficient  \n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	list, err := readStatements(file)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "AI must maintain boundaries", list[0])
	assert.Equal(t, "Centralized systems are more efficient", list[1])
}

func TestReadStatementsMissingFile(t *testing.T) {
	_, err := readStatements(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestOptional(t *testing.T) {
	assert.Nil(t, optional(""))
	v := optional("boundaries")
	require.NotNil(t, v)
	assert.Equal(t, "boundaries", *v)
}

func TestLoadCatalog(t *testing.T) {
	c, err := loadCatalog("")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Names())

	_, err = loadCatalog(path.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
