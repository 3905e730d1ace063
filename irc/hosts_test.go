package irc

import "testing"

func TestMask_Match(t *testing.T) {
	tests := []struct {
		mask  Mask
		host  string
		match bool
	}{
		{"nick!user@host.com", "nick!user@host.com", true},
		{"*!*@host.com", "nick!user@host.com", true},
		{"n?ck!*@*", "nick!user@host.com", true},
		{"*@*.com", "nick!user@host.com", true},
		{"*", "anything at all", true},
		{"", "", true},
		{"nick!*@*.edu", "nick!user@host.com", false},
		{"other!*@*", "nick!user@host.com", false},
		{"n?ck", "nck", false},
		{"*!*@*", "no separators here", false},
		{"", "x", false},
	}

	for _, test := range tests {
		if got := test.mask.MatchHost(test.host); got != test.match {
			t.Errorf("Mask %q vs %q: expected %v, got %v",
				test.mask, test.host, test.match, got)
		}
	}
}

func TestMask_MatchPrefix(t *testing.T) {
	m := Mask("*!*@*.quakenet.org")
	if !m.Match(UserIdent("n", "u", "port80a.quakenet.org")) {
		t.Error("Expected the user prefix to match.")
	}
	if m.Match(ServerName("port80a.quakenet.org")) {
		t.Error("A server name has no ! or @ to satisfy the mask.")
	}
	if !Mask("*.quakenet.org").Match(ServerName("port80a.quakenet.org")) {
		t.Error("Expected the server prefix to match.")
	}
	if Mask("*").Match(nil) {
		t.Error("A nil prefix should satisfy nothing.")
	}
}

func TestMask_Split(t *testing.T) {
	nick, user, host := Mask("n?ck!*@*.com").Split()
	if nick != "n?ck" || user != "*" || host != "*.com" {
		t.Error("Wrong fragments:", nick, user, host)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		host                 string
		nick, user, hostname string
	}{
		{"nick!user@host.com", "nick", "user", "host.com"},
		{"nick!@host.com", "nick", "", "host.com"},
		{"nick!user", "", "", ""},
		{"server.host.com", "", "", ""},
		{"a@b!c", "", "", ""},
		{"", "", "", ""},
	}

	for _, test := range tests {
		nick, user, hostname := Split(test.host)
		if nick != test.nick || user != test.user || hostname != test.hostname {
			t.Errorf("Split(%q): got %q %q %q", test.host, nick, user, hostname)
		}
	}
}

func TestHostHelpers(t *testing.T) {
	if Nick("nick!user@host.com") != "nick" {
		t.Error("Wrong nick:", Nick("nick!user@host.com"))
	}
	if Nick("server.host.com") != "server.host.com" {
		t.Error("A bare host is its own nick.")
	}
	if Username("nick!user@host.com") != "user" {
		t.Error("Wrong username.")
	}
	if Hostname("nick!user@host.com") != "host.com" {
		t.Error("Wrong hostname.")
	}
	if Username("server.host.com") != "" || Hostname("server.host.com") != "" {
		t.Error("Expected empty fragments for a bare host.")
	}
}
