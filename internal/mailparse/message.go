// Package mailparse turns transport-delivered inbound email into the pieces
// the router needs: the target meet, a subject and the pertinent body.
package mailparse

import (
	"io"
	"regexp"
	"strings"

	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
)

// Message is an inbound email split into the parts used for forwarding.
// Text is the full body; Pertinent has quoted replies and the signature
// removed and may be empty.
type Message struct {
	Subject   string
	Text      string
	Pertinent string
}

// headers that mark the input as an RFC 5322 message rather than bare text
var knownHeaders = []string{"Subject", "From", "To", "Date", "Message-Id", "Content-Type", "Mime-Version"}

var subjectLine = regexp.MustCompile(`(?i)^subject:\s*(.*)$`)

// Parse splits raw into subject and body.
func Parse(raw string) Message {
	var msg Message

	if subject, text, ok := parseRFC5322(raw); ok {
		msg.Subject, msg.Text = subject, text
	} else {
		msg.Subject, msg.Text = parsePlain(raw)
	}

	msg.Text = normalizeNewlines(msg.Text)
	msg.Pertinent = Pertinent(msg.Text)

	return msg
}

func parseRFC5322(raw string) (string, string, bool) {
	mr, err := mail.CreateReader(strings.NewReader(raw))
	if err != nil || mr == nil {
		return "", "", false
	}

	known := false
	for _, h := range knownHeaders {
		if mr.Header.Has(h) {
			known = true
			break
		}
	}
	if !known {
		return "", "", false
	}

	subject, _ := mr.Header.Subject()

	var text, fallback string
	for {
		p, err := mr.NextPart()
		if err != nil {
			// io.EOF or a broken part: keep what was read so far
			break
		}

		h, ok := p.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}
		ct, _, _ := h.ContentType()
		body, err := io.ReadAll(p.Body)
		if err != nil {
			continue
		}

		switch {
		case ct == "" || ct == "text/plain":
			if text == "" {
				text = string(body)
			}
		case strings.HasPrefix(ct, "text/") && fallback == "":
			fallback = string(body)
		}
	}

	if text == "" {
		text = fallback
	}

	return strings.TrimSpace(subject), text, true
}

func parsePlain(raw string) (string, string) {
	lines := strings.Split(normalizeNewlines(raw), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if m := subjectLine.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			return strings.TrimSpace(m[1]), strings.Join(lines[i+1:], "\n")
		}
		break
	}
	return "", raw
}

var (
	wroteHeader = regexp.MustCompile(`(?i)^on\s.*wrote:\s*$`)
	// a wrapped header must carry a time, a year, a numeric date or an
	// <address> before it is trusted
	headerEvidence = regexp.MustCompile(`\b\d{1,2}:\d{2}\b|\b(19|20)\d{2}\b|\b\d{1,4}[/.-]\d{1,2}[/.-]\d{1,4}\b|<[^<>\s]+@[^<>\s]+>`)
)

// Pertinent strips quoted-reply lines, an "On <date> <person> wrote:" header
// and everything after it, and a trailing signature block introduced by a
// "--" line.
func Pertinent(text string) string {
	lines := strings.Split(normalizeNewlines(text), "\n")

	kept := make([]string, 0, len(lines))
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if isWroteHeader(lines, i) {
			break
		}
		if strings.TrimRight(line, " \t") == "--" {
			break
		}
		if strings.HasPrefix(trimmed, ">") {
			continue
		}

		kept = append(kept, line)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// isWroteHeader also accepts a header wrapped onto a second line, which
// several clients do for long sender names.
func isWroteHeader(lines []string, i int) bool {
	line := strings.TrimSpace(lines[i])
	if wroteHeader.MatchString(line) {
		return true
	}
	if i+1 < len(lines) && strings.HasPrefix(strings.ToLower(line), "on ") {
		joined := line + " " + strings.TrimSpace(lines[i+1])
		return wroteHeader.MatchString(joined) && headerEvidence.MatchString(joined)
	}
	return false
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
