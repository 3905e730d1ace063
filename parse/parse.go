/*
Package parse decodes single lines of the irc wire protocol into
irc.Message values. It performs no I/O and keeps no state: a line
framer hands it one carriage-return terminated line at a time and
consumes the decoded result. A trailing linefeed, if the framer left
one, is ignored.
*/
package parse

import (
	"bytes"
	"strconv"

	"github.com/aarondl/ircwire/irc"
)

// Parse decodes one protocol line into a message. It is a pure
// function: identical input yields an identical result, and any input,
// including garbage, comes back as either a message or a ParseError,
// never a panic. Decoded fields are owned string copies, so the caller
// may reuse the line buffer immediately.
func Parse(line []byte) (*irc.Message, error) {
	c := &cursor{buf: line}

	prefix, err := prefixStage(c)
	if err != nil {
		return nil, err
	}
	command, err := commandStage(c)
	if err != nil {
		return nil, err
	}
	params, err := paramStage(c)
	if err != nil {
		return nil, err
	}

	return &irc.Message{Prefix: prefix, Command: command, Params: params}, nil
}

// ParsePrefix runs the prefix stage alone. It returns the decoded
// prefix, nil when the line carries no colon marker, along with the
// unconsumed remainder of the line.
func ParsePrefix(line []byte) (*irc.Prefix, []byte, error) {
	c := &cursor{buf: line}
	prefix, err := prefixStage(c)
	if err != nil {
		return nil, nil, err
	}
	return prefix, c.rest(), nil
}

// prefixStage consumes an optional :prefix token and the single space
// after it.
func prefixStage(c *cursor) (*irc.Prefix, error) {
	b, ok := c.peek()
	if !ok || b != ':' {
		return nil, nil
	}
	start := c.pos
	c.skip()
	word, ok := c.word()
	if !ok {
		return nil, &ParseError{
			Kind:     Malformed,
			Msg:      "parse: prefix not followed by a space separator",
			Offset:   start,
			Fragment: string(c.buf[start:]),
		}
	}
	return classifyPrefix(word), nil
}

// classifyPrefix tries the prefix word as a nick!user@host triple:
// nick before the first !, user before the first @ after it, host the
// rest of the word. The moment either separator is missing it falls
// back to a server name taken verbatim.
func classifyPrefix(word []byte) *irc.Prefix {
	bang := bytes.IndexByte(word, '!')
	if bang < 0 {
		return irc.ServerName(string(word))
	}
	at := bytes.IndexByte(word[bang+1:], '@')
	if at < 0 {
		return irc.ServerName(string(word))
	}
	nick := string(word[:bang])
	user := string(word[bang+1 : bang+1+at])
	host := string(word[bang+2+at:])
	return irc.UserIdent(nick, user, host)
}

// commandStage extracts the command token. The token runs to the next
// space; only when no space occurs before the terminator does the
// trailing marker or the terminator itself bound it, so a colon
// inside a spaced token stays part of the command. An all digit token
// that fits a reply code becomes a numeric, anything else is a named
// command with its case preserved.
func commandStage(c *cursor) (irc.Command, error) {
	rest := c.rest()

	region := rest
	if term := bytes.IndexByte(rest, '\r'); term >= 0 {
		region = rest[:term]
	}

	end := len(region)
	spaced := false
	if sp := bytes.IndexByte(region, ' '); sp >= 0 {
		end = sp
		spaced = true
	} else if marker := bytes.IndexByte(region, ':'); marker >= 0 {
		end = marker
	}

	if end == 0 {
		return irc.Command{}, &ParseError{
			Kind:     Malformed,
			Msg:      "parse: no command token",
			Offset:   c.pos,
			Fragment: string(rest),
		}
	}

	word := string(region[:end])
	c.pos += end
	if spaced {
		c.skip()
	}

	if code, err := strconv.ParseUint(word, 10, 16); err == nil {
		return irc.Numeric(uint16(code)), nil
	}
	return irc.Named(word), nil
}

// paramStage splits everything before the terminator into parameters.
// When a trailing marker occurs before the terminator the text after
// it becomes exactly one final parameter, spaces and all. Without one
// the whole region is whitespace split, so an untagged final argument
// containing spaces fragments into several parameters.
func paramStage(c *cursor) ([]string, error) {
	rest := c.rest()
	term := bytes.IndexByte(rest, '\r')
	if term < 0 {
		return nil, &ParseError{
			Kind:   Incomplete,
			Msg:    "parse: no line terminator",
			Offset: len(c.buf),
		}
	}
	content := rest[:term]
	c.pos += term + 1

	marker := bytes.IndexByte(content, ':')
	if marker < 0 {
		return middles(content), nil
	}
	return append(middles(content[:marker]), string(content[marker+1:])), nil
}

// middles whitespace splits a middle parameter region, dropping the
// empty tokens consecutive spaces would otherwise produce.
func middles(region []byte) []string {
	split := bytes.Fields(region)
	params := make([]string, len(split))
	for i, tok := range split {
		params[i] = string(tok)
	}
	return params
}
