// pkg/aggregate/row.go

package aggregate

import "strconv"

// Column headers, in output order. They double as CSV headers and JSON keys.
const (
	ColFiler             = "Filer"
	ColFilesystem        = "Filesystem"
	ColTotalUsed         = "Total Used"
	ColMountpoint        = "Mountpoint"
	ColExtractPath       = "Extract - Path"
	ColOwners            = "Owner/s"
	ColAccessedOverYear  = "accessed_>1 year"
	ColAccessedOverMonth = "accessed_>1 month"
	ColAccessedRecent    = "accessed_1-31 days"
	ColSumUnder12Months  = "Sum under 12months"
	ColSum               = "Sum"
)

// Headers returns the column headers in output order.
func Headers() []string {
	return []string{
		ColFiler,
		ColFilesystem,
		ColTotalUsed,
		ColMountpoint,
		ColExtractPath,
		ColOwners,
		ColAccessedOverYear,
		ColAccessedOverMonth,
		ColAccessedRecent,
		ColSumUnder12Months,
		ColSum,
	}
}

// Row is one filesystem of the output dataset.
type Row struct {
	Filer             string `json:"Filer"`
	Filesystem        string `json:"Filesystem"`
	TotalUsed         string `json:"Total Used"`
	Mountpoint        string `json:"Mountpoint"`
	ExtractPath       string `json:"Extract - Path"`
	Owners            string `json:"Owner/s"`
	AccessedOverYear  string `json:"accessed_>1 year"`
	AccessedOverMonth string `json:"accessed_>1 month"`
	AccessedRecent    string `json:"accessed_1-31 days"`
	SumUnder12Months  int64  `json:"Sum under 12months"`
	Sum               int64  `json:"Sum"`
}

// Values returns the row as text, in Headers order.
func (r Row) Values() []string {
	return []string{
		r.Filer,
		r.Filesystem,
		r.TotalUsed,
		r.Mountpoint,
		r.ExtractPath,
		r.Owners,
		r.AccessedOverYear,
		r.AccessedOverMonth,
		r.AccessedRecent,
		strconv.FormatInt(r.SumUnder12Months, 10),
		strconv.FormatInt(r.Sum, 10),
	}
}
