package irc

import "strings"

// CTCPDelim delimits a ctcp tagged message inside a trailing
// parameter.
const CTCPDelim = '\x01'

const ctcpSep = ' '

// The two ctcp quoting layers. Low level quoting (M-QUOTE \020) hides
// the bytes the wire cannot carry, high level quoting (X-QUOTE \134)
// hides the delimiter itself.
var (
	ctcpLowQuote = strings.NewReplacer(
		"\x10", "\x10\x10", "\x00", "\x100", "\n", "\x10n", "\r", "\x10r")
	ctcpLowDequote = strings.NewReplacer(
		"\x10\x10", "\x10", "\x100", "\x00", "\x10n", "\n", "\x10r", "\r")
	ctcpHighQuote = strings.NewReplacer(
		"\x5C", "\x5C\x5C", "\x01", "\x5Ca")
	ctcpHighDequote = strings.NewReplacer(
		"\x5C\x5C", "\x5C", "\x5Ca", "\x01")
)

// IsCTCP reports whether a parameter is a ctcp tagged message.
func IsCTCP(param string) bool {
	return len(param) >= 2 &&
		param[0] == CTCPDelim && param[len(param)-1] == CTCPDelim
}

// CTCPUnpack splits a ctcp parameter into its tag and data, undoing
// both quoting layers. Data is empty when the message carried none.
func CTCPUnpack(param string) (tag, data string) {
	if IsCTCP(param) {
		param = param[1 : len(param)-1]
	}
	body := ctcpLowDequote.Replace(param)
	if i := strings.IndexByte(body, ctcpSep); i >= 0 {
		return ctcpHighDequote.Replace(body[:i]), ctcpHighDequote.Replace(body[i+1:])
	}
	return ctcpHighDequote.Replace(body), ""
}

// CTCPPack quotes a tag and data into a delimited ctcp parameter fit
// for use as a trailing argument.
func CTCPPack(tag, data string) string {
	body := ctcpHighQuote.Replace(tag)
	if len(data) > 0 {
		body += string(ctcpSep) + ctcpHighQuote.Replace(data)
	}
	return string(CTCPDelim) + ctcpLowQuote.Replace(body) + string(CTCPDelim)
}

// IsCTCP checks if this message is a ctcp event. This means its text
// is delimited by CTCPDelim as well as being PRIVMSG or NOTICE only.
func (m *Message) IsCTCP() bool {
	return (m.Command.Name == PRIVMSG || m.Command.Name == NOTICE) &&
		len(m.Params) >= 2 && IsCTCP(m.Text())
}

// CTCP can be called to retrieve the tag and data from a ctcp message.
func (m *Message) CTCP() (tag, data string) {
	return CTCPUnpack(m.Text())
}
