package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList_Memory(t *testing.T) {
	out, err := run(t, "list", "--memory", "--json")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 3)
}

func TestFilter_ByStatusAndName(t *testing.T) {
	out, err := run(t, "filter", "--memory", "--json", "--status", "Pending", "--name", "RIO")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Rio de Janeiro", rows[0]["cityName"])
}

func TestFilter_Table(t *testing.T) {
	out, err := run(t, "filter", "--memory", "--status", "Rejected")
	require.NoError(t, err)
	assert.Contains(t, out, "São Paulo")
	assert.NotContains(t, out, "Niterói")
}

func TestFilter_InvalidStatus(t *testing.T) {
	_, err := run(t, "filter", "--memory", "--status", "Archived")
	assert.Error(t, err)
}

func TestApprove_Memory(t *testing.T) {
	out, err := run(t, "approve", "1", "--memory", "--json", "--term-start", "2025-01-01", "--term-end", "2028-12-31")
	require.NoError(t, err)

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Approved", resp["status"])
}

func TestApprove_RequiresTerms(t *testing.T) {
	_, err := run(t, "approve", "1", "--memory")
	assert.Error(t, err)
}

func TestReject_AlreadyDecided(t *testing.T) {
	_, err := run(t, "reject", "3", "--memory", "-j", "again")
	assert.Error(t, err)
}

func TestShow_NotFound(t *testing.T) {
	_, err := run(t, "show", "42", "--memory")
	assert.Error(t, err)
}

func TestResend_WithoutApprovedRequest(t *testing.T) {
	out, err := run(t, "resend", "1", "--memory", "--emails", "novo@rio.rj.gov.br")
	require.NoError(t, err)
	assert.Contains(t, out, "not sent")
}

func TestResend_InvalidEmails(t *testing.T) {
	_, err := run(t, "resend", "1", "--memory", "--emails", "nope")
	assert.Error(t, err)
}

func TestPending_ByCity(t *testing.T) {
	out, err := run(t, "pending", "2", "--memory", "--json")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, float64(2), rows[0]["municipalityId"])
}

func TestMigrate_RejectsMemory(t *testing.T) {
	_, err := run(t, "migrate", "up", "--memory")
	assert.Error(t, err)
}

func TestMigrate_InvalidDirection(t *testing.T) {
	_, err := run(t, "migrate", "sideways")
	assert.Error(t, err)
}
