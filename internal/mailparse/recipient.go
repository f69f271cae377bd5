package mailparse

import (
	"errors"
	"strings"

	"github.com/emersion/go-message/mail"
	"github.com/google/uuid"
)

// MeetPrefix is the local-part prefix of meet thread addresses:
// meet+<id>@<mail-domain>.
const MeetPrefix = "meet+"

var ErrBadRecipient = errors.New("recipient is not a meet address")

// MeetIDFromRecipient extracts the meet id from an envelope recipient. The
// recipient may carry a display name or be a comma separated list; the
// first address on domain whose id is a uuid wins, then the first address
// on domain at all. An empty domain accepts any host.
func MeetIDFromRecipient(recipient, domain string) (string, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return "", ErrBadRecipient
	}

	var candidates []string
	if list, err := mail.ParseAddressList(recipient); err == nil {
		for _, a := range list {
			candidates = append(candidates, a.Address)
		}
	} else {
		candidates = strings.Split(recipient, ",")
	}

	fallback := ""
	for _, c := range candidates {
		id, ok := meetIDFromAddress(strings.TrimSpace(c), domain)
		if !ok {
			continue
		}
		if _, err := uuid.Parse(id); err == nil {
			return id, nil
		}
		if fallback == "" {
			fallback = id
		}
	}

	if fallback == "" {
		return "", ErrBadRecipient
	}
	return fallback, nil
}

func meetIDFromAddress(addr, domain string) (string, bool) {
	at := strings.LastIndex(addr, "@")
	if at <= 0 || at == len(addr)-1 {
		return "", false
	}

	local, host := addr[:at], addr[at+1:]
	if domain != "" && !strings.EqualFold(host, domain) {
		return "", false
	}

	local = strings.ToLower(local)
	id := strings.TrimPrefix(local, MeetPrefix)
	if id == "" {
		return "", false
	}

	return id, true
}

// MeetAddress is the reply address for a meet thread.
func MeetAddress(meetID, domain string) string {
	return MeetPrefix + meetID + "@" + domain
}

// Address returns the bare address of a header value such as
// "Alex <alex@example.com>". Values that do not parse are returned trimmed.
func Address(value string) string {
	value = strings.TrimSpace(value)
	if addr, err := mail.ParseAddress(value); err == nil {
		return addr.Address
	}
	return value
}
