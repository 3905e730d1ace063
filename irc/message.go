/*
Package irc defines the value types produced by decoding irc protocol
lines: prefixes, commands and messages. It also carries textual
renderings of those values and helpers for matching and unpacking
decoded senders.
*/
package irc

import (
	"bytes"
	"strconv"
	"strings"
)

// PrefixKind discriminates the two shapes a message prefix can take.
type PrefixKind uint8

const (
	// ServerPrefix is a bare server name.
	ServerPrefix PrefixKind = iota
	// UserPrefix is a nick!user@host client identity.
	UserPrefix
)

// Prefix is the optional sender of a message: either a server name or
// a client identity broken into nick, user and host.
type Prefix struct {
	// Kind tells which of the two field sets holds.
	Kind PrefixKind
	// Name is the server name. Set only for ServerPrefix.
	Name string
	// Nick, User and Host are the identity fragments. Set only for
	// UserPrefix.
	Nick string
	User string
	Host string
}

// ServerName creates a server prefix.
func ServerName(name string) *Prefix {
	return &Prefix{Kind: ServerPrefix, Name: name}
}

// UserIdent creates a user identity prefix.
func UserIdent(nick, user, host string) *Prefix {
	return &Prefix{Kind: UserPrefix, Nick: nick, User: user, Host: host}
}

// String renders the prefix the way it appeared on the wire, without
// the leading colon marker.
func (p *Prefix) String() string {
	if p.Kind == UserPrefix {
		return p.Nick + "!" + p.User + "@" + p.Host
	}
	return p.Name
}

// Command is the verb of a message: a named command or a numeric reply
// code. Exactly one of the two holds, Numeric tells which.
type Command struct {
	// Name is the original token, case preserved. Empty for numerics.
	Name string
	// Code is the reply code when Numeric is set.
	Code uint16
	// Numeric is true when the command token parsed as a number.
	Numeric bool
}

// Named creates a named command from the literal token.
func Named(name string) Command {
	return Command{Name: name}
}

// Numeric creates a numeric reply command.
func Numeric(code uint16) Command {
	return Command{Code: code, Numeric: true}
}

// String renders the command token. Numeric codes lose their zero
// padding, a line carrying 004 renders as 4.
func (c Command) String() string {
	if c.Numeric {
		return strconv.FormatUint(uint64(c.Code), 10)
	}
	return c.Name
}

// Message is one decoded irc protocol line.
type Message struct {
	// Prefix is the sender. Nil when the line carried none.
	Prefix *Prefix
	// Command is the verb of the line.
	Command Command
	// Params are the positional arguments in order. Only the last one,
	// and only when the line used a trailing marker, may contain
	// spaces.
	Params []string
}

// String renders a near-wire view of the message for logging. It is
// lossy: the trailing-parameter colon is not reinserted and every
// parameter is followed by a space, so the output is not guaranteed to
// reparse to the same message.
func (m *Message) String() string {
	b := &bytes.Buffer{}
	if m.Prefix != nil {
		b.WriteByte(':')
		b.WriteString(m.Prefix.String())
		b.WriteByte(' ')
	}
	b.WriteString(m.Command.String())
	b.WriteByte(' ')
	for _, param := range m.Params {
		b.WriteString(param)
		b.WriteByte(' ')
	}
	return b.String()
}

// Joined renders a compact single line view: the command, the sender
// if any, then the parameters joined by single spaces. Like String it
// is for display only and does not reparse.
func (m *Message) Joined() string {
	b := &bytes.Buffer{}
	b.WriteString(m.Command.String())
	b.WriteByte(' ')
	if m.Prefix != nil {
		b.WriteString(m.Prefix.String())
	}
	b.WriteByte(' ')
	b.WriteString(strings.Join(m.Params, " "))
	return b.String()
}

// Sender returns the wire text of the prefix, or empty when absent.
func (m *Message) Sender() string {
	if m.Prefix == nil {
		return ""
	}
	return m.Prefix.String()
}

// Target retrieves the channel or user this message was sent to.
// Before using this method it would be prudent to check that the
// command is one that carries a target argument.
func (m *Message) Target() string {
	return m.Params[0]
}

// Text retrieves the message text sent to the user or channel. Before
// using this method it would be prudent to check that the command is
// one that carries a text argument.
func (m *Message) Text() string {
	return m.Params[1]
}

// Split splits a comma separated parameter. A convenience method to
// avoid having to call splits and import strings.
func (m *Message) Split(index int) []string {
	return strings.Split(m.Params[index], ",")
}
