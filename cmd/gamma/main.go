// Command gamma is a thin line-oriented driver around the engine
// package: it scans stdin for the initialization line described in
// spec.md §6.2, then — for the "B" (batch) variant — dispatches each
// subsequent line as one of the six commands in §6.3. It exists so the
// library has a runnable, testable entry point, the way
// korjavin-virusgame/backend/cmd/dump-games and backend/cmd/bot-hoster
// give that repo's core packages an exercised binary; it is explicitly
// a consumer of the engine API, not a reimplementation of it.
//
// The interactive ("I") variant's terminal UI (cursor control, raw
// input) is out of scope per spec.md §1; this binary still accepts an
// "I" init line but runs the same command loop without the "OK <line>"
// acknowledgment, since nothing here depends on a real terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"gamma/engine"
)

func main() {
	inputPath := flag.String("input", "-", "path to the input file, or - for stdin")
	verbose := flag.Bool("v", false, "log session lifecycle events to stderr")
	flag.Parse()

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "gamma: ", log.LstdFlags)
	}

	in := os.Stdin
	if *inputPath != "-" {
		f, err := os.Open(*inputPath)
		if err != nil {
			logger.Printf("fatal: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	sessionID := uuid.New().String()
	logger.Printf("session %s starting", sessionID)

	if err := run(in, os.Stdout, os.Stderr, logger); err != nil {
		logger.Printf("fatal: %v", err)
		os.Exit(1)
	}
}

// run scans in for the init line, then — on success — drains the rest
// of in through the batch command loop. It returns a non-nil error
// only when reading in fails. A malformed init line, or one whose
// game cannot be constructed, is reported as "ERROR <line>" on errOut
// and scanning continues; input with no init line at all ends without
// output.
func run(in io.Reader, out io.Writer, errOut io.Writer, logger *log.Logger) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	// unterminated is set when the scanner returns a final line that
	// had no trailing newline before EOF.
	unterminated := false
	scanner.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		advance, token, err := bufio.ScanLines(data, atEOF)
		if atEOF && len(data) > 0 && advance == len(data) && data[len(data)-1] != '\n' {
			unterminated = true
		}
		return advance, token, err
	})

	lineNo := 0
	var g *engine.Game

	for g == nil && scanner.Scan() {
		lineNo++
		line := scanner.Text()

		outcome, mode, w, h, p, a := engine.ParseInitLine(line)
		switch outcome {
		case engine.LineIgnored:
			continue
		case engine.LineMalformed:
			fmt.Fprintf(errOut, "ERROR %d\n", lineNo)
			continue
		case engine.LineOK:
			newGame, err := engine.New(w, h, p, a)
			if err != nil {
				fmt.Fprintf(errOut, "ERROR %d\n", lineNo)
				continue
			}
			newGame.SetLogger(logger)
			g = newGame
			if mode == engine.ModeBatch {
				fmt.Fprintf(out, "OK %d\n", lineNo)
			}
			logger.Printf("game %s initialized %dx%d players=%d area=%d", g.ID(), w, h, p, a)
		}
	}
	if g == nil {
		return scanner.Err()
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if isBlankBatchLine(line) {
			continue
		}
		if unterminated {
			fmt.Fprintf(errOut, "ERROR %d\n", lineNo)
			continue
		}
		if !processBatchLine(g, line, lineNo, out) {
			fmt.Fprintf(errOut, "ERROR %d\n", lineNo)
		}
	}
	return scanner.Err()
}

// isBlankBatchLine mirrors engine.isBlankInitLine's whitespace set and
// the "#"-comment rule, since §6.3 reuses §6.2's framing for blank and
// comment lines.
func isBlankBatchLine(line string) bool {
	trimmed := strings.TrimFunc(line, func(r rune) bool {
		switch r {
		case ' ', '\t', '\v', '\f', '\r':
			return true
		}
		return false
	})
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// processBatchLine dispatches one batch-mode command line. It returns
// false if the line is malformed in any way named by §6.3: an
// unrecognized command letter, a wrong argument count, or an argument
// that isn't a valid unsigned decimal.
func processBatchLine(g *engine.Game, line string, lineNo int, out io.Writer) bool {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ' ', '\t', '\v', '\f', '\r':
			return true
		}
		return false
	})
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "m", "g":
		args, ok := parseArgs(fields[1:], 3)
		if !ok {
			return false
		}
		var result bool
		if fields[0] == "m" {
			result = g.Move(args[0], args[1], args[2])
		} else {
			result = g.GoldenMove(args[0], args[1], args[2])
		}
		fmt.Fprintf(out, "%d\n", boolToInt(result))
	case "b":
		args, ok := parseArgs(fields[1:], 1)
		if !ok {
			return false
		}
		fmt.Fprintf(out, "%d\n", g.BusyFields(args[0]))
	case "f":
		args, ok := parseArgs(fields[1:], 1)
		if !ok {
			return false
		}
		fmt.Fprintf(out, "%d\n", g.FreeFields(args[0]))
	case "q":
		args, ok := parseArgs(fields[1:], 1)
		if !ok {
			return false
		}
		fmt.Fprintf(out, "%d\n", boolToInt(g.GoldenPossible(args[0])))
	case "p":
		if len(fields) != 1 {
			return false
		}
		board, err := g.Board()
		if err != nil {
			return false
		}
		// Board() carries a trailing NUL sentinel for parity with
		// gamma_board's malloc'd buffer (see render.go); the reference
		// driver prints that buffer with fprintf("%s", ...), which
		// stops at the NUL, so trim it before writing to stdout.
		fmt.Fprint(out, strings.TrimSuffix(board, "\x00"))
	default:
		return false
	}
	return true
}

// parseArgs validates that fields has exactly want unsigned-decimal
// arguments and parses them. Values are not bounded to uint32 here
// (unlike the init line's §6.2 rule) since the engine itself rejects
// any out-of-range player or coordinate by returning false/0, and the
// reference batch.c parses these with a plain strtoull.
func parseArgs(fields []string, want int) ([]int, bool) {
	if len(fields) != want {
		return nil, false
	}
	out := make([]int, want)
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, false
		}
		out[i] = int(v)
	}
	return out, true
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
