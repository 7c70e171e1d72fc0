package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dhar7/IncomeTracker/internal/core"
)

type fakeSource struct {
	txs      []core.Transaction
	accounts map[string]string
}

func (f fakeSource) Transactions() []core.Transaction { return f.txs }
func (f fakeSource) AccountName(id string) (string, bool) {
	name, ok := f.accounts[id]
	return name, ok
}

func testSource() fakeSource {
	return fakeSource{
		txs: []core.Transaction{
			{
				ID:        "t1",
				Amount:    core.Money{Cents: 1234},
				Purpose:   `has "quotes", commas`,
				Note:      "line one\nline two",
				Type:      core.Expense,
				AccountID: "a1",
				Date:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			},
			{
				ID:             "t2",
				Amount:         core.Money{Cents: 500},
				Purpose:        "Payback to Visa",
				Type:           core.Income,
				AccountID:      "gone",
				Date:           time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
				PaybackGroupID: "g1",
			},
		},
		accounts: map[string]string{"a1": "Main"},
	}
}

func TestWriteCSVRoundTripsSpecialCharacters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testSource()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, Header, rows[0])

	first := rows[1]
	assert.Equal(t, "t1", first[0])
	assert.Equal(t, "2025-06-01T12:00:00Z", first[1])
	assert.Equal(t, "expense", first[2])
	assert.Equal(t, "12.34", first[3])
	// quotes, commas and newlines survive the quoting rules
	assert.Equal(t, `has "quotes", commas`, first[4])
	assert.Equal(t, "line one\nline two", first[5])
	assert.Equal(t, "Main", first[6])

	second := rows[2]
	// a deleted account resolves to an empty cell, not an error
	assert.Empty(t, second[6])
	assert.Equal(t, "g1", second[8])
}

func TestWriteCSVEmptyLedger(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, fakeSource{}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Header, rows[0])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, testSource()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "t1", rows[1][0])
	assert.Equal(t, "12.34", rows[1][3])
}
