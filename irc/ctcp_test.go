package irc

import "testing"

func TestIsCTCP(t *testing.T) {
	if !IsCTCP("\x01VERSION\x01") {
		t.Error("Expected a delimited parameter to be CTCP.")
	}
	if IsCTCP("VERSION") {
		t.Error("CTCP cannot be missing delimiter bytes.")
	}
	if IsCTCP("") || IsCTCP("\x01") {
		t.Error("Too short to be CTCP.")
	}
}

func TestCTCPUnpack(t *testing.T) {
	tag, data := CTCPUnpack("\x01DCC SEND file 1024\x01")
	if tag != "DCC" {
		t.Error("Wrong tag:", tag)
	}
	if data != "SEND file 1024" {
		t.Error("Wrong data:", data)
	}

	tag, data = CTCPUnpack("\x01VERSION\x01")
	if tag != "VERSION" {
		t.Error("Wrong tag:", tag)
	}
	if data != "" {
		t.Error("Expected no data, got:", data)
	}
}

func TestCTCPPack(t *testing.T) {
	if got := CTCPPack("PING", "12345"); got != "\x01PING 12345\x01" {
		t.Errorf("Wrong packed form: %q", got)
	}
	if got := CTCPPack("VERSION", ""); got != "\x01VERSION\x01" {
		t.Errorf("Wrong packed form: %q", got)
	}
}

func TestCTCPRoundTrip(t *testing.T) {
	tests := []struct {
		tag, data string
	}{
		{"ACTION", "waves slowly"},
		{"VERSION", ""},
		{"X", "quote me: \x10 \x5C \x01"},
		{"Y", "line\r\nbreaks and \x00 bytes"},
	}

	for _, test := range tests {
		packed := CTCPPack(test.tag, test.data)
		if !IsCTCP(packed) {
			t.Errorf("Packed %q should be delimited.", test.tag)
		}
		tag, data := CTCPUnpack(packed)
		if tag != test.tag || data != test.data {
			t.Errorf("Round trip of (%q, %q) gave (%q, %q)",
				test.tag, test.data, tag, data)
		}
	}
}

func TestMessage_IsCTCP(t *testing.T) {
	msg := &Message{
		Command: Named(PRIVMSG),
		Params:  []string{"user", "\x01DCC SEND\x01"},
	}
	if !msg.IsCTCP() {
		t.Error("Expected a CTCP message.")
	}

	msg.Command = Named(NOTICE)
	if !msg.IsCTCP() {
		t.Error("Expected a CTCP message.")
	}

	msg.Command = Named(JOIN)
	if msg.IsCTCP() {
		t.Error("Only PRIVMSG and NOTICE can be CTCP.")
	}

	msg.Command = Named(PRIVMSG)
	msg.Params = []string{"user", "DCC SEND"}
	if msg.IsCTCP() {
		t.Error("CTCP cannot be missing delimiter bytes.")
	}

	msg.Params = []string{"user"}
	if msg.IsCTCP() {
		t.Error("CTCP needs a text parameter.")
	}

	msg = &Message{Command: Numeric(1), Params: []string{"a", "\x01b\x01"}}
	if msg.IsCTCP() {
		t.Error("Numerics are never CTCP.")
	}
}

func TestMessage_CTCP(t *testing.T) {
	msg := &Message{
		Command: Named(PRIVMSG),
		Params:  []string{"user", "\x01DCC SEND\x01"},
	}
	tag, data := msg.CTCP()
	if tag != "DCC" || data != "SEND" {
		t.Error("Wrong unpack:", tag, data)
	}
}
