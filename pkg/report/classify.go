// pkg/report/classify.go

package report

import (
	"strings"
	"unicode"
)

// LineKind tags a report line by the record it contributes to.
type LineKind int

const (
	KindUnrecognized LineKind = iota
	KindScan
	KindAccess
	KindOwners
	KindUsed
)

func (k LineKind) String() string {
	switch k {
	case KindScan:
		return "scan"
	case KindAccess:
		return "access"
	case KindOwners:
		return "owners"
	case KindUsed:
		return "used"
	default:
		return "unrecognized"
	}
}

// Kinds lists the recognised kinds in dispatch order.
func Kinds() []LineKind {
	return []LineKind{KindScan, KindAccess, KindOwners, KindUsed}
}

const (
	scanPrefix   = "scan"
	scanToken    = "scan "
	accessPrefix = "Accessed,"
	ownersMarker = "Top File Owners,"
	usedMarker   = "Total space used,"

	// accessDigitIndex is the byte that separates access data lines from
	// the header lines sharing the same prefix.
	accessDigitIndex = len(accessPrefix)
)

// rule binds a line marker to the extractor that appends its payload.
// apply returns false when the marker matched but a guard rejected the line.
type rule struct {
	kind   LineKind
	marked func(line string) bool
	apply  func(rep *Report, line string) bool
}

var rules = []rule{
	{
		kind:   KindScan,
		marked: hasScanPrefix,
		apply: func(rep *Report, line string) bool {
			rep.Filesystems = append(rep.Filesystems, scanDescriptor(line))
			return true
		},
	},
	{
		kind:   KindAccess,
		marked: func(line string) bool { return strings.HasPrefix(line, accessPrefix) },
		apply: func(rep *Report, line string) bool {
			triplet, ok := accessTriplet(line)
			if ok {
				rep.Access = append(rep.Access, triplet)
			}
			return ok
		},
	},
	{
		kind:   KindOwners,
		marked: func(line string) bool { return strings.Contains(line, ownersMarker) },
		apply: func(rep *Report, line string) bool {
			owners, ok := ownerList(line)
			if ok {
				rep.Owners = append(rep.Owners, owners)
			}
			return ok
		},
	},
	{
		kind:   KindUsed,
		marked: func(line string) bool { return strings.Contains(line, usedMarker) },
		apply: func(rep *Report, line string) bool {
			rep.Used = append(rep.Used, strings.ReplaceAll(line, usedMarker, ""))
			return true
		},
	},
}

// Classify returns the kind of the first rule that accepts line, or
// KindUnrecognized when none does. Lines that carry a marker but fail its
// guard (access header rows, numeric owner rows) are unrecognized.
func Classify(line string) LineKind {
	var scratch Report
	for _, r := range rules {
		if r.marked(line) && r.apply(&scratch, line) {
			return r.kind
		}
	}
	return KindUnrecognized
}

// hasScanPrefix skips any leading Unicode whitespace, not only spaces and tabs.
func hasScanPrefix(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), scanPrefix)
}

// scanDescriptor returns the text after the first "scan " token. A scan line
// without the token yields an empty descriptor.
func scanDescriptor(line string) string {
	_, after, _ := strings.Cut(line, scanToken)
	return after
}

func accessTriplet(line string) (AccessTriplet, bool) {
	if len(line) <= accessDigitIndex || !isASCIIDigit(line[accessDigitIndex]) {
		return nil, false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(line, accessPrefix))
	return AccessTriplet(strings.Split(raw, ",")), true
}

func ownerList(line string) (string, bool) {
	owners := strings.TrimSpace(strings.ReplaceAll(line, ownersMarker, ""))
	if allNumeric(strings.Split(owners, ",")) {
		return "", false
	}
	return owners, true
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// allNumeric reports whether every field is a non-empty run of numeric runes.
func allNumeric(fields []string) bool {
	for _, f := range fields {
		if f == "" {
			return false
		}
		for _, r := range f {
			if !unicode.IsNumber(r) {
				return false
			}
		}
	}
	return true
}
