package store

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdash/internal/domain"
)

const sampleCSV = `Launch Site,class,Payload Mass (kg),Booster Version Category
CCAFS LC-40,1,500,v1.0
CCAFS LC-40,0,3000,v1.1
KSC LC-39A,1,5300,FT
,1,100,v1.0
VAFB SLC-4E,,200,v1.1
KSC LC-39A,1,,FT
KSC LC-39A,1,-50,B4
KSC LC-39A,2,400,B4
KSC LC-39A,1,9600,B4
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "launches.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestLoad_DropsInvalidRows(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	defer db.Close()

	table, err := Load(context.Background(), db, writeCSV(t, sampleCSV), testLogger())
	require.NoError(t, err)

	// 9 data rows; missing site, missing outcome, missing payload, negative
	// payload, and out-of-domain outcome are dropped.
	assert.Equal(t, 4, table.Len())
	assert.Equal(t, []string{"CCAFS LC-40", "KSC LC-39A"}, table.Sites())

	lo, hi, ok := table.PayloadBounds()
	require.True(t, ok)
	assert.Equal(t, 500.0, lo)
	assert.Equal(t, 9600.0, hi)
}

func TestLoad_PreservesRowOrder(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	defer db.Close()

	table, err := Load(context.Background(), db, writeCSV(t, sampleCSV), testLogger())
	require.NoError(t, err)

	records := table.Records()
	require.Len(t, records, 4)
	assert.Equal(t, domain.LaunchRecord{
		Site: "CCAFS LC-40", Outcome: domain.OutcomeSuccess, PayloadMass: 500, BoosterCategory: "v1.0",
	}, records[0])
	assert.Equal(t, 9600.0, records[3].PayloadMass)
}

func TestLoad_MissingFile(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	defer db.Close()

	_, err = Load(context.Background(), db, filepath.Join(t.TempDir(), "absent.csv"), testLogger())
	require.Error(t, err)

	var unavailable *domain.DataUnavailableError
	assert.ErrorAs(t, err, &unavailable)
}
