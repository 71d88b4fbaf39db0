package randomart

import (
	"sync"
	"testing"

	"github.com/signatory-io/randomart/logger"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestRenderer(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)

	r := Renderer{Mode: OpenSSL, Log: logger.NewLogrus(l)}
	out, err := r.Render(mustHex(t, goldenCases[1].fingerprint))
	require.NoError(t, err)
	require.Equal(t, goldenCases[1].expected, out)

	e := hook.LastEntry()
	require.Equal(t, logrus.DebugLevel, e.Level)
	require.Equal(t, "fingerprint rendered", e.Message)
	require.Equal(t, logrus.Fields{"fingerprint_len": 16, "end_row": 1, "end_col": 15}, e.Data)

	titled, err := r.RenderTitled("ED25519 256", mustHex(t, goldenCases[1].fingerprint))
	require.NoError(t, err)
	require.Equal(t, "+--[ED25519 256]--+\n", titled[:20])
	require.Equal(t, goldenCases[1].expected[20:], titled[20:])
}

func TestRendererInvalid(t *testing.T) {
	l, hook := test.NewNullLogger()
	r := Renderer{Mode: Mode{Height: 9, Width: 17, Alphabet: "SE"}, Log: logger.NewLogrus(l)}
	_, err := r.Render([]byte{1})
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	require.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestRendererNoLogger(t *testing.T) {
	var r Renderer
	r.Mode = OpenSSL
	out, err := r.Render(mustHex(t, goldenCases[2].fingerprint))
	require.NoError(t, err)
	require.Equal(t, goldenCases[2].expected, out)
}

func TestRendererConcurrent(t *testing.T) {
	r := Renderer{Mode: OpenSSL}
	fingerprints := make([][]byte, len(goldenCases))
	for i, c := range goldenCases {
		fingerprints[i] = mustHex(t, c.fingerprint)
	}
	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := r.Render(fingerprints[i%len(fingerprints)])
			if err == nil {
				results[i] = out
			}
		}(i)
	}
	wg.Wait()
	for i, out := range results {
		require.Equal(t, goldenCases[i%len(goldenCases)].expected, out)
	}
}
