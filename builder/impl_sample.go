// SPDX-License-Identifier: MIT
// Package: valveflow/builder
//
// impl_sample.go - the canonical ten-valve puzzle network.
//
//	AA(0) ─ BB(13) ─ CC(2) ─ DD(20) ─ EE(3) ─ FF(0) ─ GG(0) ─ HH(22)
//	 │  └──────────────────────┘
//	II(0) ─ JJ(21)
//
// From AA with 30 minutes a single agent releases 1651; two agents with
// 26 minutes each release 1707.

package builder

import "github.com/katalvlaran/valveflow/core"

const methodSample = "Sample"

// SampleStart is the start valve of the Sample network.
const SampleStart = "AA"

// sampleValves lists the network exactly as the puzzle text declares it.
var sampleValves = []struct {
	id      string
	rate    int
	tunnels []string
}{
	{"AA", 0, []string{"DD", "II", "BB"}},
	{"BB", 13, []string{"CC", "AA"}},
	{"CC", 2, []string{"DD", "BB"}},
	{"DD", 20, []string{"CC", "AA", "EE"}},
	{"EE", 3, []string{"FF", "DD"}},
	{"FF", 0, []string{"EE", "GG"}},
	{"GG", 0, []string{"FF", "HH"}},
	{"HH", 22, []string{"GG"}},
	{"II", 0, []string{"AA", "JJ"}},
	{"JJ", 21, []string{"II"}},
}

// Sample adds the canonical puzzle network. IDs and rates are fixed, so the
// configured IDFn and RateFn are ignored.
func Sample() Constructor {
	return func(net *core.Network, _ builderConfig) error {
		for _, v := range sampleValves {
			if err := net.AddValve(v.id, v.rate, v.tunnels...); err != nil {
				return builderErrorf(methodSample, err, "AddValve(%s)", v.id)
			}
		}

		return nil
	}
}
