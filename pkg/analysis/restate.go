package analysis

import "regexp"

// restate replaces the first occurrence of each detected term with its
// functional form, case-insensitively on word boundaries. Terms that do not
// literally appear (detected via an alias pattern) are left alone.
func restate(statement string, detections []*Detection) string {
	out := statement
	for _, d := range detections {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(d.Term) + `\b`)
		if err != nil {
			continue
		}
		replaced := false
		out = re.ReplaceAllStringFunc(out, func(match string) string {
			if replaced {
				return match
			}
			replaced = true
			return d.FunctionalForm
		})
	}
	return out
}
