package mailparse

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const replyBody = "Hello team,\n\nThanks,\nAlex\n\nOn Tue, 3 Mar 2026 at 09:12, Sam <sam@example.com> wrote:\n> quoted\n\n-- \nSignature"

func TestPertinent_StripsQuotedReplyAndSignature(t *testing.T) {
	assert.Equal(t, "Hello team,\n\nThanks,\nAlex", Pertinent(replyBody))
}

func TestPertinent_WrappedWroteHeader(t *testing.T) {
	body := "See you there\n\nOn Tue, 3 Mar 2026 at 09:12, Samantha Longname-Smith\n<sam@example.com> wrote:\n> earlier"
	assert.Equal(t, "See you there", Pertinent(body))
}

func TestPertinent_WrappedHeaderWithoutDateOrAddressKept(t *testing.T) {
	body := "On Saturday I can drive\nSam wrote:\nsounds good"
	assert.Equal(t, body, Pertinent(body))
}

func TestPertinent_WrappedHeaderWithNumericDate(t *testing.T) {
	body := "Count me in\n\nOn 2026/03/03 14:05, Samantha Longname-Smith\nwrote:\n> earlier"
	assert.Equal(t, "Count me in", Pertinent(body))
}

func TestPertinent_QuotedLinesInline(t *testing.T) {
	body := "> can I bring a friend?\nYes, one guest is fine.\r\n>> older\r\nCheers"
	assert.Equal(t, "Yes, one guest is fine.\nCheers", Pertinent(body))
}

func TestPertinent_SignatureOnly(t *testing.T) {
	assert.Equal(t, "", Pertinent("--\nAlex\nSent from my phone"))
}

func TestPertinent_DoubleDashInsideTextKept(t *testing.T) {
	assert.Equal(t, "a -- b", Pertinent("a -- b"))
}

func TestParse_PlainBodyKeepsFullText(t *testing.T) {
	msg := Parse(replyBody)

	assert.Empty(t, msg.Subject)
	assert.Equal(t, replyBody, msg.Text)
	assert.Contains(t, msg.Text, "> quoted")
	assert.Equal(t, "Hello team,\n\nThanks,\nAlex", msg.Pertinent)
}

func TestParse_SubjectLine(t *testing.T) {
	msg := Parse("\nSubject: Lift share?\nAnyone driving from Claremont?")

	assert.Equal(t, "Lift share?", msg.Subject)
	assert.Equal(t, "Anyone driving from Claremont?", msg.Pertinent)
}

func TestParse_RFC5322(t *testing.T) {
	raw := "From: Alex <alex@example.com>\r\n" +
		"To: meet+abc@mail.example.com\r\n" +
		"Subject: Question about parking\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"Is there parking?\r\n\r\n> old text\r\n"

	msg := Parse(raw)

	assert.Equal(t, "Question about parking", msg.Subject)
	assert.Equal(t, "Is there parking?", msg.Pertinent)
	assert.Contains(t, msg.Text, "> old text")
}

func TestParse_MultipartPrefersPlainText(t *testing.T) {
	raw := "From: alex@example.com\r\n" +
		"Subject: Hi\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: multipart/alternative; boundary=XYZ\r\n" +
		"\r\n" +
		"--XYZ\r\n" +
		"Content-Type: text/html\r\n" +
		"\r\n" +
		"<p>html body</p>\r\n" +
		"--XYZ\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"plain body\r\n" +
		"--XYZ--\r\n"

	msg := Parse(raw)

	assert.Equal(t, "Hi", msg.Subject)
	assert.Equal(t, "plain body", msg.Pertinent)
}

func TestParse_ColonInFirstLineIsNotAHeader(t *testing.T) {
	msg := Parse("Note: bring water\n\nthanks")

	assert.Empty(t, msg.Subject)
	assert.Equal(t, "Note: bring water\n\nthanks", msg.Pertinent)
}

func TestMeetIDFromRecipient(t *testing.T) {
	tests := []struct {
		name      string
		recipient string
		domain    string
		expected  string
		wantErr   bool
	}{
		{name: "plus convention", recipient: "meet+0b8e@mail.example.com", domain: "mail.example.com", expected: "0b8e"},
		{name: "display name", recipient: "Hike <meet+0B8E@Mail.Example.com>", domain: "mail.example.com", expected: "0b8e"},
		{name: "plain fallback", recipient: "0b8e@mail.example.com", domain: "mail.example.com", expected: "0b8e"},
		{name: "list picks matching domain", recipient: "x@other.com, meet+42@mail.example.com", domain: "mail.example.com", expected: "42"},
		{name: "any domain when unset", recipient: "meet+42@anything.org", expected: "42"},
		{
			name:      "list without domain skips non-meet addresses",
			recipient: "info@x.com, meet+6f1c3a52-0d6e-4a43-9d7e-5b0f4c1e2a10@x.com",
			expected:  "6f1c3a52-0d6e-4a43-9d7e-5b0f4c1e2a10",
		},
		{
			name:      "plain fallback address later in list",
			recipient: "Info <info@x.com>, 6f1c3a52-0d6e-4a43-9d7e-5b0f4c1e2a10@x.com",
			expected:  "6f1c3a52-0d6e-4a43-9d7e-5b0f4c1e2a10",
		},
		{name: "no uuid keeps first address", recipient: "info@x.com, sales@x.com", expected: "info"},
		{name: "wrong domain", recipient: "meet+42@other.com", domain: "mail.example.com", wantErr: true},
		{name: "empty id", recipient: "meet+@mail.example.com", domain: "mail.example.com", wantErr: true},
		{name: "garbage", recipient: "not an address", wantErr: true},
		{name: "empty", recipient: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := MeetIDFromRecipient(tt.recipient, tt.domain)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadRecipient)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestMeetAddress(t *testing.T) {
	assert.Equal(t, "meet+42@mail.example.com", MeetAddress("42", "mail.example.com"))
}

func TestAddress(t *testing.T) {
	assert.Equal(t, "alex@example.com", Address("Alex <alex@example.com>"))
	assert.Equal(t, "alex@example.com", Address(" alex@example.com "))
	assert.Equal(t, "not an address", Address("not an address"))
}

func TestNormalizeBody(t *testing.T) {
	assert.Equal(t, "raw", NormalizeBody([]byte("raw")))
	assert.Equal(t, "str", NormalizeBody("str"))
	assert.Equal(t, "", NormalizeBody(nil))
	assert.Equal(t, "quoted", NormalizeBody(json.RawMessage(`"quoted"`)))

	obj := NormalizeBody(json.RawMessage(`{"subject":"Hi","text":"body"}`))
	assert.Equal(t, "Subject: Hi\r\n\r\nbody", obj)

	parsed := Parse(obj)
	assert.Equal(t, "Hi", parsed.Subject)
	assert.Equal(t, "body", parsed.Pertinent)

	textOnly := NormalizeBody(map[string]any{"body": "just text"})
	assert.Equal(t, "just text", textOnly)
}
