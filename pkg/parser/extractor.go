package parser

import "strings"

// Extract parses a logical unit into a typed record. A "Sender: body"
// prefix on the unit's head line produces an authored message; otherwise
// the whole remainder is the body of a system notification.
func Extract(u Unit) Message {
	head := u.Rest
	if i := strings.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}

	// The sender separator is the first ": " on the head line. Bodies may
	// themselves contain colons; only the first one can end a sender name.
	if j := strings.Index(head, ": "); j > 0 {
		return Message{
			Timestamp: u.Timestamp,
			Sender:    u.Rest[:j],
			Body:      u.Rest[j+2:],
			Kind:      KindMessage,
		}
	}

	return Message{
		Timestamp: u.Timestamp,
		Body:      u.Rest,
		Kind:      KindNotification,
	}
}
