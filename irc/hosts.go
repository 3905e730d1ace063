package irc

import "strings"

// Mask is an irc hostmask that may contain the wildcards * and ?.
type Mask string

// Match checks whether the mask is satisfied by the given prefix. A
// user prefix is matched against its nick!user@host form, a server
// prefix against the bare server name. A nil prefix satisfies nothing.
func (m Mask) Match(p *Prefix) bool {
	if p == nil {
		return false
	}
	return m.MatchHost(p.String())
}

// MatchHost checks whether the mask is satisfied by a raw fullhost.
func (m Mask) MatchHost(host string) bool {
	return wildMatch(string(m), host)
}

// Split splits the mask into its fragments: nick, user, and host.
// Wildcard characters are kept.
func (m Mask) Split() (nick, user, host string) {
	return Split(string(m))
}

// wildMatch matches s against a pattern in which * spans any run of
// bytes and ? matches exactly one.
func wildMatch(pattern, s string) bool {
	var pi, si int
	star, mark := -1, 0

	for si < len(s) {
		switch {
		case pi < len(pattern) && (pattern[pi] == '?' || pattern[pi] == s[si]):
			pi++
			si++
		case pi < len(pattern) && pattern[pi] == '*':
			star, mark = pi, si
			pi++
		case star >= 0:
			// Retry from the last star, giving it one more byte.
			mark++
			pi, si = star+1, mark
		default:
			return false
		}
	}

	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}

// Nick returns the nick of a fullhost, or the whole string when no
// separator is present.
func Nick(host string) string {
	if i := strings.IndexAny(host, "!@"); i >= 0 {
		return host[:i]
	}
	return host
}

// Username returns the username of a fullhost. Empty string when the
// fullhost is not in nick!user@host form.
func Username(host string) string {
	_, user, _ := Split(host)
	return user
}

// Hostname returns the host of a fullhost. Empty string when the
// fullhost is not in nick!user@host form.
func Hostname(host string) string {
	_, _, hostname := Split(host)
	return hostname
}

// Split splits a fullhost into its fragments: nick, user, and
// hostname. The split points are the first ! and the first @ after it,
// the same rule the decoder uses to classify prefixes. If the format
// is not acceptable empty string is returned for everything.
func Split(host string) (nick, user, hostname string) {
	bang := strings.IndexByte(host, '!')
	if bang < 0 {
		return
	}
	at := strings.IndexByte(host[bang+1:], '@')
	if at < 0 {
		return
	}
	return host[:bang], host[bang+1 : bang+1+at], host[bang+2+at:]
}
