// Package output writes the aggregated dataset to files and the terminal.
package output

import (
	"io"

	"github.com/bytedance/sonic"
)

// JSONTo writes data as two-space indented JSON. HTML characters are left
// unescaped so column keys such as "accessed_>1 year" stay readable.
func JSONTo(w io.Writer, data interface{}) error {
	encoder := sonic.ConfigDefault.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
