// pkg/output/dataset.go

package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/aggregate"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/xcp_err"
)

// DatasetPaths are the files written by WriteDataset.
type DatasetPaths struct {
	CSV  string
	JSON string
}

// WriteDataset writes <dir>/<base>.csv and <dir>/<base>.json, base being the
// last path element of name. dir is created if missing.
func WriteDataset(dir, name string, rows []aggregate.Row) (DatasetPaths, error) {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		return DatasetPaths{}, xcp_err.NewValidationError(
			fmt.Sprintf("output name %q has no file name", name),
			"Pass a base name such as -f filesystems",
		)
	}

	if err := os.MkdirAll(dir, shared.DirPermStandard); err != nil {
		return DatasetPaths{}, xcp_err.NewIOError(fmt.Sprintf("cannot create output directory %s", dir), err)
	}

	if rows == nil {
		rows = []aggregate.Row{}
	}

	paths := DatasetPaths{
		CSV:  filepath.Join(dir, base+".csv"),
		JSON: filepath.Join(dir, base+".json"),
	}
	if err := writeFile(paths.CSV, func(w io.Writer) error { return CSVTo(w, rows) }); err != nil {
		return DatasetPaths{}, err
	}
	if err := writeFile(paths.JSON, func(w io.Writer) error { return JSONTo(w, rows) }); err != nil {
		return DatasetPaths{}, err
	}
	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return xcp_err.NewIOError(fmt.Sprintf("cannot create %s", path), err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = xcp_err.NewIOError(fmt.Sprintf("cannot close %s", path), cerr)
		}
	}()

	if err := write(file); err != nil {
		return xcp_err.NewIOError(fmt.Sprintf("cannot write %s", path), err)
	}
	return nil
}
