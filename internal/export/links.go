// Package export builds the share-channel deep links around the canonical
// list text. The text itself is rendered by the core projection; this
// package only wraps it for each channel.
package export

import (
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me deep link that opens a chat with the given
// phone number and the list text prefilled. The phone number is reduced to
// digits (wa.me takes international numbers without + or separators).
func WhatsAppLink(phone, text string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + digits.String(),
		RawQuery: url.Values{"text": {text}}.Encode(),
	}
	return u.String()
}

// MailtoLink builds a mailto: URL with subject and body prefilled. Spaces
// are encoded as %20, not +, since mail clients do not decode
// form-encoded queries.
func MailtoLink(email, subject, body string) string {
	q := url.Values{}
	if subject != "" {
		q.Set("subject", subject)
	}
	if body != "" {
		q.Set("body", body)
	}
	query := strings.ReplaceAll(q.Encode(), "+", "%20")

	link := "mailto:" + email
	if query != "" {
		link += "?" + query
	}
	return link
}
