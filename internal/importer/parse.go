package importer

import "strings"

// headerField is the first column name of every import layout. A line whose
// first field matches it, ignoring case, is treated as a header.
const headerField = "area"

// ParseLine splits a raw CSV line on commas and trims each field. Quoting is
// not supported: a comma inside a field shifts every later column. header is
// true when the line is a header row and should be skipped.
func ParseLine(line string) (fields []string, header bool) {
	fields = strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields, strings.EqualFold(fields[0], headerField)
}
