package parse_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveflow/builder"
	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/parse"
)

const sampleText = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

type flatValve struct {
	Rate    int
	Tunnels []string
}

func flatten(n *core.Network) map[string]flatValve {
	out := make(map[string]flatValve)
	for _, id := range n.IDs() {
		v, _ := n.Valve(id)
		out[id] = flatValve{Rate: v.Rate, Tunnels: v.Tunnels}
	}
	return out
}

// TestSampleMatchesBuilder parses the puzzle text and compares it with the
// builder's copy of the same network.
func TestSampleMatchesBuilder(t *testing.T) {
	got, err := parse.String(sampleText)
	require.NoError(t, err)

	want, err := builder.BuildNetwork(nil, builder.Sample())
	require.NoError(t, err)

	if diff := cmp.Diff(flatten(want), flatten(got)); diff != "" {
		t.Errorf("parsed network mismatch (-want +got):\n%s", diff)
	}
}

func TestBlankLinesAndCRLF(t *testing.T) {
	text := "\r\nValve AA has flow rate=5; tunnel leads to valve BB\r\n\n  \nValve BB has flow rate=0; tunnel leads to valve AA\r\n"
	n, err := parse.String(text)
	require.NoError(t, err)
	require.Equal(t, []string{"AA", "BB"}, n.IDs())

	r, err := n.Rate("AA")
	require.NoError(t, err)
	require.Equal(t, 5, r)
}

// TestMixedWording accepts every singular/plural combination.
func TestMixedWording(t *testing.T) {
	text := strings.Join([]string{
		"Valve A has flow rate=1; tunnel lead to valves B",
		"Valve B has flow rate=2; tunnels leads to valve A, C",
		"Valve C has flow rate=3; tunnels lead to valves B",
	}, "\n")
	n, err := parse.String(text)
	require.NoError(t, err)

	tun, err := n.Tunnels("B")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C"}, tun)
}

func TestMalformed(t *testing.T) {
	cases := []struct {
		name string
		text string
		line string
	}{
		{"garbage", "hello world", "line 1"},
		{"missing rate", "Valve AA has flow rate=; tunnels lead to valves BB", "line 1"},
		{"negative rate", "Valve AA has flow rate=-3; tunnels lead to valves BB", "line 1"},
		{"empty tunnel", "Valve BB has flow rate=0; tunnel leads to valve AA\nValve AA has flow rate=1; tunnels lead to valves BB, ", "line 2"},
		{"self tunnel", "Valve AA has flow rate=1; tunnel leads to valve AA", "line 1"},
		{"duplicate", "Valve AA has flow rate=1; tunnel leads to valve BB\n\nValve AA has flow rate=2; tunnel leads to valve BB", "line 3"},
		{"huge rate", "Valve AA has flow rate=99999999999999999999999; tunnel leads to valve BB", "line 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse.String(tc.text)
			require.ErrorIs(t, err, parse.ErrMalformedInput)
			require.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestSelfTunnelKeepsCoreError(t *testing.T) {
	_, err := parse.String("Valve AA has flow rate=1; tunnel leads to valve AA")
	require.ErrorIs(t, err, core.ErrSelfTunnel)
}

// TestDanglingTunnel reports a tunnel to a valve that is never declared.
func TestDanglingTunnel(t *testing.T) {
	_, err := parse.String("Valve AA has flow rate=0; tunnels lead to valves BB, CC\nValve BB has flow rate=1; tunnel leads to valve AA")
	require.ErrorIs(t, err, core.ErrUnknownValve)
	require.False(t, errors.Is(err, parse.ErrMalformedInput))
}

func TestEmptyInput(t *testing.T) {
	n, err := parse.String("")
	require.NoError(t, err)
	require.Zero(t, n.ValveCount())
}

func TestReadError(t *testing.T) {
	_, err := parse.Network(iotest.ErrReader(errors.New("boom")))
	require.ErrorContains(t, err, "boom")
}
