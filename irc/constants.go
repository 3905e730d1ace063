package irc

// IRC commands, these are 1-1 constant to string lookups for ease of
// use when dispatching on decoded messages.
const (
	PRIVMSG = "PRIVMSG"
	NOTICE  = "NOTICE"
	PING    = "PING"
	PONG    = "PONG"
	QUIT    = "QUIT"
	JOIN    = "JOIN"
	PART    = "PART"
	MODE    = "MODE"
	TOPIC   = "TOPIC"
	NICK    = "NICK"
)
