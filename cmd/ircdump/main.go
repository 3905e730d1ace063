// ircdump replays a raw irc transcript through the decoder and prints
// one decoded line per input line. It owns everything the decoder does
// not: opening the input, framing it into lines, and deciding what to
// do with lines that fail to decode.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aarondl/ircwire/irc"
	"github.com/aarondl/ircwire/parse"
	"github.com/pkg/errors"
	"gopkg.in/inconshreveable/log15.v2"
)

var (
	configFile = flag.String("config", defaultConfigFile, "toml config file")
	format     = flag.String("format", "", "rendering: wire, joined or fields")
	input      = flag.String("input", "", "transcript file, - for stdin")
)

func main() {
	flag.Parse()

	logger := log15.New("cmd", "ircdump")

	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	cfg, err := loadConfig(*configFile, explicit)
	if err != nil {
		logger.Crit("could not load config", "err", err)
		os.Exit(1)
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *input != "" {
		cfg.Input = *input
	}

	if lvl, err := log15.LvlFromString(cfg.LogLevel); err == nil {
		logger.SetHandler(log15.LvlFilterHandler(lvl, log15.StderrHandler))
	}

	in, err := openInput(cfg.Input)
	if err != nil {
		logger.Crit("could not open transcript", "err", err)
		os.Exit(1)
	}
	defer in.Close()

	if err := dump(os.Stdout, in, cfg.Format, logger); err != nil {
		logger.Crit("replay failed", "err", err)
		os.Exit(1)
	}
}

// openInput opens the transcript, stdin when path is empty or -.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open transcript")
	}
	return f, nil
}

// dump frames the reader into lines, decodes each one and writes a
// rendering of it to w. Lines that fail to decode are logged and
// skipped.
func dump(w io.Writer, r io.Reader, format string, logger log15.Logger) error {
	scanner := bufio.NewScanner(r)
	decoded, failed := 0, 0

	for scanner.Scan() {
		// The scanner strips the \r\n framing the decoder's contract
		// requires, so restore the terminator on a copy.
		line := make([]byte, 0, len(scanner.Bytes())+1)
		line = append(line, scanner.Bytes()...)
		line = append(line, '\r')

		msg, err := parse.Parse(line)
		if err != nil {
			failed++
			if parse.IsIncomplete(err) {
				logger.Warn("incomplete line", "err", err)
			} else {
				logger.Warn("skipping malformed line", "err", err)
			}
			continue
		}
		decoded++
		fmt.Fprintln(w, render(msg, format))
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed reading transcript")
	}

	logger.Info("transcript replayed", "decoded", decoded, "failed", failed)
	return nil
}

// render picks the requested textual view of a message.
func render(msg *irc.Message, format string) string {
	switch format {
	case "joined":
		return msg.Joined()
	case "fields":
		b := &bytes.Buffer{}
		fmt.Fprintf(b, "command=%s", msg.Command)
		if msg.Prefix != nil {
			fmt.Fprintf(b, " sender=%s", msg.Prefix)
		}
		for i, p := range msg.Params {
			fmt.Fprintf(b, " p%d=%q", i, p)
		}
		return b.String()
	default:
		return msg.String()
	}
}
