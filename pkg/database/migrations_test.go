package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMigration_ApprovalConstraints(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "migrations", "000001_init.up.sql"))
	require.NoError(t, err)
	schema := string(raw)

	for _, want := range []string{
		"CONSTRAINT chk_approval_status CHECK (status IN ('Pending', 'Approved', 'Rejected'))",
		"CONSTRAINT chk_approval_decided CHECK ((status = 'Pending') = (decided_at IS NULL))",
		"CONSTRAINT chk_approval_justification CHECK ((status = 'Rejected') = (justification IS NOT NULL))",
	} {
		assert.Contains(t, schema, want)
	}
}
