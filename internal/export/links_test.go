package export

import (
	"net/url"
	"strings"
	"testing"
)

func TestWhatsAppLink(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		text  string
		want  string
	}{
		{
			name:  "international number with separators",
			phone: "+33 6 12 34 56 78",
			text:  "Acme\nFL-001 x2",
			want:  "https://wa.me/33612345678?text=Acme%0AFL-001+x2",
		},
		{
			name:  "already bare digits",
			phone: "33612345678",
			text:  "Riz x1",
			want:  "https://wa.me/33612345678?text=Riz+x1",
		},
		{
			name:  "empty text still links",
			phone: "33612345678",
			want:  "https://wa.me/33612345678?text=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WhatsAppLink(tt.phone, tt.text); got != tt.want {
				t.Errorf("WhatsAppLink = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWhatsAppLinkRoundTrip(t *testing.T) {
	text := "Acme\nFL-001 x2\n\nno supplier\nEP-002 x1"
	u, err := url.Parse(WhatsAppLink("+33 6 12 34 56 78", text))
	if err != nil {
		t.Fatal(err)
	}
	if got := u.Query().Get("text"); got != text {
		t.Errorf("decoded text = %q, want original", got)
	}
}

func TestMailtoLink(t *testing.T) {
	got := MailtoLink("ben@example.com", "Liste de courses", "Acme\nFL-001 x2")

	if !strings.HasPrefix(got, "mailto:ben@example.com?") {
		t.Fatalf("MailtoLink = %q, want mailto: prefix", got)
	}
	if strings.Contains(got, "+") {
		t.Errorf("MailtoLink = %q, spaces must be %%20 not +", got)
	}
	if !strings.Contains(got, "subject=Liste%20de%20courses") {
		t.Errorf("MailtoLink = %q, want encoded subject", got)
	}
	if !strings.Contains(got, "body=Acme%0AFL-001%20x2") {
		t.Errorf("MailtoLink = %q, want encoded body", got)
	}
}

func TestMailtoLinkOmitsEmptyParts(t *testing.T) {
	if got := MailtoLink("ben@example.com", "", ""); got != "mailto:ben@example.com" {
		t.Errorf("MailtoLink = %q, want bare address", got)
	}
}
