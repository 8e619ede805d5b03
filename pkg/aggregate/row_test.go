package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowValuesFollowHeaders(t *testing.T) {
	t.Parallel()
	row := Row{
		Filer:             "f",
		Filesystem:        "f:/export/x",
		TotalUsed:         "1.0 KB",
		Mountpoint:        "/home/x",
		ExtractPath:       "x",
		Owners:            "alice",
		AccessedOverYear:  "1",
		AccessedOverMonth: "2",
		AccessedRecent:    "3",
		SumUnder12Months:  5,
		Sum:               6,
	}

	values := row.Values()
	assert.Len(t, values, len(Headers()))
	assert.Equal(t, []string{"f", "f:/export/x", "1.0 KB", "/home/x", "x", "alice", "1", "2", "3", "5", "6"}, values)
}

func TestHeaders(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{
		"Filer", "Filesystem", "Total Used", "Mountpoint", "Extract - Path", "Owner/s",
		"accessed_>1 year", "accessed_>1 month", "accessed_1-31 days",
		"Sum under 12months", "Sum",
	}, Headers())
}
