package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/valveflow/core"
)

// ErrMalformedInput indicates a line that cannot be read as a valve record.
var ErrMalformedInput = errors.New("parse: malformed input")

// maxLineBytes bounds a single record; puzzle lines are far shorter.
const maxLineBytes = 1 << 20

var recordRE = regexp.MustCompile(`^Valve (\S+) has flow rate=(\d+); tunnels? leads? to valves? (.+)$`)

// Network reads every record from r and returns the validated network.
//
// Errors:
//   - ErrMalformedInput with the 1-based line number.
//   - core.ErrUnknownValve when a tunnel leads to an undeclared valve.
//   - I/O errors from r.
func Network(r io.Reader) (*core.Network, error) {
	n := core.NewNetwork()
	seen := make(map[string]int)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		id, rate, tunnels, err := record(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, line, err)
		}
		if prev, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: line %d: valve %q already declared on line %d", ErrMalformedInput, line, id, prev)
		}
		seen[id] = line
		if err = n.AddValve(id, rate, tunnels...); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: read: %w", err)
	}

	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return n, nil
}

// String is Network over an in-memory text.
func String(s string) (*core.Network, error) {
	return Network(strings.NewReader(s))
}

// record splits one trimmed line into its fields.
func record(text string) (id string, rate int, tunnels []string, err error) {
	m := recordRE.FindStringSubmatch(text)
	if m == nil {
		return "", 0, nil, fmt.Errorf("unrecognized record %q", text)
	}
	rate, err = strconv.Atoi(m[2])
	if err != nil {
		return "", 0, nil, fmt.Errorf("flow rate %q: %w", m[2], err)
	}
	for _, t := range strings.Split(m[3], ",") {
		t = strings.TrimSpace(t)
		if t == "" || strings.ContainsAny(t, " \t") {
			return "", 0, nil, fmt.Errorf("bad tunnel list %q", m[3])
		}
		tunnels = append(tunnels, t)
	}

	return m[1], rate, tunnels, nil
}
