package commands

import (
	"context"
	"testing"

	"github.com/leapstack-labs/roman/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, NewDoctorCommand())
	require.NoError(t, err)

	assert.Contains(t, out, "# roman Health Report")
	assert.Contains(t, out, "- **Store**: memory")
	assert.Contains(t, out, "**[WARN]** CF01: Configuration file")
	assert.Contains(t, out, "**[PASS]** ST01: Store reachable")
	assert.Contains(t, out, "**[PASS]** NM01: Numeral round trip")
	assert.Contains(t, out, "**90/100**")
	assert.Contains(t, out, "roman init")
}

func TestCheckStore(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	require.NoError(t, st.Put(ctx, "persons", "Ada", []byte(`{"name":"Ada","age":36}`)))
	require.NoError(t, st.Put(ctx, "persons", "Bob", []byte(`not json`)))
	require.NoError(t, st.Put(ctx, "persons", "Eve", []byte(`{"name":"Mallory","age":30}`)))
	require.NoError(t, st.Put(ctx, "other", "Zed", []byte(`broken`)))

	summary := &DoctorSummary{Driver: store.DriverMemory, Collection: "persons"}
	checks := checkStore(ctx, st, summary)

	require.Len(t, checks, 2)
	assert.Equal(t, StatusPass, checks[0].Status)

	records := checks[1]
	assert.Equal(t, "RC01", records.ID)
	assert.Equal(t, StatusWarn, records.Status)
	assert.Equal(t, 2, records.IssueCount)
	require.Len(t, records.Details, 2)
	assert.Contains(t, records.Details[0], "Bob:")
	assert.Contains(t, records.Details[1], "Mallory")
	assert.Equal(t, 3, summary.Records)
}

func TestCheckStore_SQLiteSchema(t *testing.T) {
	ctx := context.Background()
	st, err := store.OpenSQLite(ctx, ":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	summary := &DoctorSummary{Driver: store.DriverSQLite, Collection: "persons"}
	checks := checkStore(ctx, st, summary)

	require.Len(t, checks, 3)
	assert.Equal(t, "ST02", checks[1].ID)
	assert.Equal(t, StatusPass, checks[1].Status)
	assert.Equal(t, int64(1), summary.SchemaVersion)
	assert.Equal(t, 0, summary.Records)
}

func TestCheckStore_Closed(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, st.Close())

	checks := checkStore(context.Background(), st, &DoctorSummary{Driver: store.DriverMemory})
	require.Len(t, checks, 1)
	assert.Equal(t, StatusError, checks[0].Status)
}

func TestCalculateHealthScore(t *testing.T) {
	assert.Equal(t, 100, calculateHealthScore(nil))
	assert.Equal(t, 65, calculateHealthScore([]HealthCheck{
		{Status: StatusPass}, {Status: StatusWarn}, {Status: StatusError},
	}))
	assert.Equal(t, 0, calculateHealthScore([]HealthCheck{
		{Status: StatusError}, {Status: StatusError}, {Status: StatusError}, {Status: StatusError}, {Status: StatusError},
	}))
}
