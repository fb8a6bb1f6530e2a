package align_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/framealign/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScript_Consumed verifies per-side consumption counts of a mixed script.
func TestScript_Consumed(t *testing.T) {
	s := align.Script{align.Insertion, align.Perfect, align.Deletion, align.Match}

	a, b := s.Consumed()
	assert.Equal(t, 3, a, "Perfect, Deletion and Match consume A")
	assert.Equal(t, 3, b, "Insertion, Perfect and Match consume B")
}

// TestScript_Validate checks both the accepting and the rejecting path.
func TestScript_Validate(t *testing.T) {
	s := align.Script{align.Insertion, align.Perfect, align.Deletion}

	assert.NoError(t, s.Validate(2, 2))

	err := s.Validate(3, 2)
	assert.ErrorIs(t, err, align.ErrScriptMismatch)
	assert.Contains(t, err.Error(), "consumed (2,2), want (3,2)")
}

// TestScript_Pairs verifies diff-viewer rows use -1 for the absent side.
func TestScript_Pairs(t *testing.T) {
	s := align.Script{align.Insertion, align.Perfect, align.Deletion, align.Match}

	want := []align.Pair{
		{A: -1, B: 0, Op: align.Insertion},
		{A: 0, B: 1, Op: align.Perfect},
		{A: 1, B: -1, Op: align.Deletion},
		{A: 2, B: 2, Op: align.Match},
	}
	assert.Equal(t, want, s.Pairs())
	assert.Empty(t, align.Script{}.Pairs())
}

// TestScript_GapOpens counts runs, treating a gap-kind switch as an extension.
func TestScript_GapOpens(t *testing.T) {
	cases := map[string]int{
		"":         0,
		"PPP":      0,
		"IIPPD":    2,
		"IDIDP":    1,
		"PDPDP":    2,
		"DDDPIIMI": 3,
	}
	for text, want := range cases {
		s, err := align.ParseScript(text)
		require.NoError(t, err)
		assert.Equal(t, want, s.GapOpens(), "gap opens of %q", text)
	}
}

// TestScript_StringParse checks the compact form both ways and rejects junk.
func TestScript_StringParse(t *testing.T) {
	s := align.Script{align.Insertion, align.Insertion, align.Perfect, align.Deletion, align.Match}
	assert.Equal(t, "IIPDM", s.String())

	back, err := align.ParseScript("IIPDM")
	require.NoError(t, err)
	assert.Equal(t, s, back)

	_, err = align.ParseScript("IPX")
	assert.ErrorIs(t, err, align.ErrUnknownOp)
}

// TestScript_CountsAndRepeat checks Repeat output feeds Counts correctly.
func TestScript_CountsAndRepeat(t *testing.T) {
	s := append(align.Repeat(align.Deletion, 3), align.Repeat(align.Perfect, 2)...)

	counts := s.Counts()
	assert.Equal(t, 3, counts[align.Deletion])
	assert.Equal(t, 2, counts[align.Perfect])
	assert.Zero(t, counts[align.Insertion])
	assert.Empty(t, align.Repeat(align.Match, 0))
	assert.Empty(t, align.Repeat(align.Match, -4))
}

// TestOp_TextRoundTrip ensures scripts survive JSON encoding through op names.
func TestOp_TextRoundTrip(t *testing.T) {
	pairs := align.Script{align.Perfect, align.Insertion}.Pairs()

	raw, err := json.Marshal(pairs)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"a":0,"b":0,"op":"PERFECT"},{"a":-1,"b":1,"op":"INSERTION"}]`, string(raw))

	var back []align.Pair
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, pairs, back)

	var op align.Op
	assert.ErrorIs(t, op.UnmarshalText([]byte("SWAP")), align.ErrUnknownOp)
	assert.Equal(t, "Op(9)", align.Op(9).String())
}

// TestAdapters checks the function adapters satisfy their interfaces.
func TestAdapters(t *testing.T) {
	var m align.Metric[int] = align.MetricFunc[int](func(x, y int) float64 {
		if x == y {
			return 0
		}
		return 1
	})
	assert.Equal(t, 0.0, m.Distance(4, 4))
	assert.Equal(t, 1.0, m.Distance(4, 5))

	var h align.Hasher[int] = align.HasherFunc[int](func(x int) ([]byte, error) {
		return []byte{byte(x)}, nil
	})
	d, err := h.Hash(7)
	require.NoError(t, err)
	assert.Equal(t, []byte{7}, d)
}
