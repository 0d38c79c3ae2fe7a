// Package soc maps free-text job titles to Standard Occupational
// Classification codes and normalizes SOC code formats.
package soc

import "strings"

// majorGroupLabels names the SOC major groups (first two digits).
var majorGroupLabels = map[string]string{
	"11": "Management",
	"13": "Business and Financial Operations",
	"15": "Computer and Mathematical",
	"17": "Architecture and Engineering",
	"19": "Life, Physical, and Social Science",
	"21": "Community and Social Service",
	"23": "Legal",
	"25": "Educational Instruction and Library",
	"27": "Arts, Design, Entertainment, Sports, and Media",
	"29": "Healthcare Practitioners and Technical",
	"31": "Healthcare Support",
	"33": "Protective Service",
	"35": "Food Preparation and Serving Related",
	"37": "Building and Grounds Cleaning and Maintenance",
	"39": "Personal Care and Service",
	"41": "Sales and Related",
	"43": "Office and Administrative Support",
	"45": "Farming, Fishing, and Forestry",
	"47": "Construction and Extraction",
	"49": "Installation, Maintenance, and Repair",
	"51": "Production",
	"53": "Transportation and Material Moving",
	"55": "Military Specific",
}

// curatedBroader maps detailed codes to hand-picked broader substitutes tried
// before the generic digit-zeroing chain.
var curatedBroader = map[string][]string{
	"15-1243.01": {"15-1243.00", "15-1252.00"}, // data engineering -> database architects -> software developers
	"15-2051.01": {"15-2051.00"},               // BI analysts -> data scientists
	"29-1171.00": {"29-1141.00"},               // nurse practitioners -> registered nurses
	"15-1254.00": {"15-1252.00"},               // web developers -> software developers
	"15-1255.00": {"15-1254.00", "27-1024.00"}, // digital interface designers
	"35-3023.00": {"35-3031.00"},               // fast food and counter -> servers
}

// Clean normalizes any SOC code spelling to the canonical XX-XXXX.XX form.
// Six digits get a ".00" detail suffix, eight digits keep their own. Anything
// else returns "".
func Clean(code string) string {
	var digits strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	switch len(d) {
	case 6:
		return d[:2] + "-" + d[2:6] + ".00"
	case 8:
		return d[:2] + "-" + d[2:6] + "." + d[6:8]
	default:
		return ""
	}
}

// ForSeries strips a cleaned code down to the 6 digits used in OEWS series
// IDs, dropping the O*NET detail suffix.
func ForSeries(code string) string {
	c := Clean(code)
	if c == "" {
		return ""
	}
	return c[:2] + c[3:7]
}

// MajorGroup returns the XX-0000 major group of a code.
func MajorGroup(code string) string {
	c := Clean(code)
	if c == "" {
		return ""
	}
	return c[:2] + "-0000"
}

// Describe returns the major-group label for a code, or "" if unknown.
func Describe(code string) string {
	c := Clean(code)
	if c == "" {
		return ""
	}
	return majorGroupLabels[c[:2]]
}

// FallbackChain returns progressively broader codes to try when a detailed
// code has no published data: curated substitutes first, then the generic
// broad, minor, and major rollups. The input code itself is excluded.
func FallbackChain(code string) []string {
	c := Clean(code)
	if c == "" {
		return nil
	}

	seen := map[string]bool{c: true}
	var chain []string
	add := func(x string) {
		if x != "" && !seen[x] {
			seen[x] = true
			chain = append(chain, x)
		}
	}

	for _, b := range curatedBroader[c] {
		add(Clean(b))
	}

	d := ForSeries(c) // 6 digits
	add(d[:2] + "-" + d[2:6] + ".00") // drop the detail suffix
	add(d[:2] + "-" + d[2:5] + "0.00")
	add(d[:2] + "-" + d[2:4] + "00.00")
	add(d[:2] + "-0000.00")
	return chain
}
