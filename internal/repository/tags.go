package repository

import "strings"

// Tags are persisted in a single TEXT column as a comma-delimited
// string. A literal comma or backslash inside a tag value is escaped
// with a backslash, so any tag value round-trips intact. The empty
// string is the marker for "no tags" and decodes to an empty slice,
// never to [""]. One consequence: a list containing only the empty
// tag shares its encoding with the empty list and decodes as empty.

const tagSeparator = ','
const tagEscape = '\\'

// encodeTags serializes an ordered tag list into its column form.
func encodeTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	var b strings.Builder
	for i, tag := range tags {
		if i > 0 {
			b.WriteByte(tagSeparator)
		}
		for j := 0; j < len(tag); j++ {
			if tag[j] == tagSeparator || tag[j] == tagEscape {
				b.WriteByte(tagEscape)
			}
			b.WriteByte(tag[j])
		}
	}
	return b.String()
}

// decodeTags parses the column form back into an ordered tag list.
// The result is always non-nil so it marshals to [] rather than null.
func decodeTags(s string) []string {
	if s == "" {
		return []string{}
	}
	out := make([]string, 0, strings.Count(s, string(tagSeparator))+1)
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case tagEscape:
			if i+1 < len(s) {
				i++
				cur.WriteByte(s[i])
			}
		case tagSeparator:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(s[i])
		}
	}
	out = append(out, cur.String())
	return out
}
