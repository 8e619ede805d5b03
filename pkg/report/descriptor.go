// pkg/report/descriptor.go

package report

import "strings"

const (
	descriptorSeparator = ":"
	exportPrefix        = "/export/"
	homePrefix          = "/home/"
)

// ExtractFiler returns the part of each descriptor before the first colon.
// A descriptor without a colon is returned whole.
func ExtractFiler(descriptors []string) []string {
	filers := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		before, _, _ := strings.Cut(d, descriptorSeparator)
		filers = append(filers, before)
	}
	return filers
}

// ExtractMountpoint returns the part of each descriptor after the first colon
// with the first "/export/" rewritten to "/home/".
func ExtractMountpoint(descriptors []string) []string {
	mountpoints := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		_, after, _ := strings.Cut(d, descriptorSeparator)
		mountpoints = append(mountpoints, strings.Replace(after, exportPrefix, homePrefix, 1))
	}
	return mountpoints
}

// ExtractPath returns the part of each descriptor after the first "/export/",
// or "" when the descriptor has none.
func ExtractPath(descriptors []string) []string {
	paths := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		_, after, _ := strings.Cut(d, exportPrefix)
		paths = append(paths, after)
	}
	return paths
}
