package walink

import (
	"net/url"
	"strings"
)

// Build returns a WhatsApp deep link (wa.me) for the given phone number with
// prefilled text. The phone may contain spaces, dashes or a leading plus;
// wa.me only accepts bare digits.
func Build(phone, text string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	link := "https://wa.me/" + digits.String()
	if text != "" {
		link += "?text=" + url.QueryEscape(text)
	}
	return link
}
