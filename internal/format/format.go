// Package format holds the input masks applied to public form fields.
// Every function is a pure transform of the raw value: malformed
// characters are dropped, never reported.
package format

import "strings"

func digits(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == max {
			break
		}
	}
	return b.String()
}

// Phone masks Brazilian phone numbers as (DD) NNNNN-NNNN, rendering the
// partial mask while digits accumulate. The output depends only on the
// digits present in the input, so reformatting mid-edit is safe.
func Phone(value string) string {
	n := digits(value, 11)
	switch {
	case len(n) == 0:
		return ""
	case len(n) <= 2:
		return "(" + n
	case len(n) <= 7:
		return "(" + n[:2] + ") " + n[2:]
	}
	return "(" + n[:2] + ") " + n[2:7] + "-" + n[7:]
}

// CPF masks the tax ID as DDD.DDD.DDD-DD.
func CPF(value string) string {
	n := digits(value, 11)
	switch {
	case len(n) == 0:
		return ""
	case len(n) <= 3:
		return n
	case len(n) <= 6:
		return n[:3] + "." + n[3:]
	case len(n) <= 9:
		return n[:3] + "." + n[3:6] + "." + n[6:]
	}
	return n[:3] + "." + n[3:6] + "." + n[6:9] + "-" + n[9:]
}

// CEP masks the postal code as DDDDD-DDD.
func CEP(value string) string {
	n := digits(value, 8)
	if len(n) > 5 {
		return n[:5] + "-" + n[5:]
	}
	return n
}

// CEPDigits extracts the bare postal-code digits; a lookup is only
// triggered once all 8 are present.
func CEPDigits(value string) string {
	return digits(value, 8)
}

var emailDomains = []string{"@gmail.com", "@hotmail.com", "@outlook.com", "@yahoo.com", "@icloud.com", "@live.com"}

// EmailSuggestions completes a partially typed email with common
// providers. Returns nil when the value is too short or already carries
// a full domain.
func EmailSuggestions(value string) []string {
	if strings.Contains(value, "@") {
		if strings.Contains(value, ".com") || strings.Contains(value, ".br") {
			return nil
		}
		parts := strings.SplitN(value, "@", 2)
		local, partial := parts[0], strings.ToLower(parts[1])
		var out []string
		for _, d := range emailDomains {
			if strings.Contains(d, partial) {
				out = append(out, local+d)
			}
		}
		return out
	}
	if len(value) > 3 {
		out := make([]string, 0, 4)
		for _, d := range emailDomains[:4] {
			out = append(out, value+d)
		}
		return out
	}
	return nil
}
