package host

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScript = `
# a comment
{"at": 5, "id": "mix", "data": {"scaledValue": 0.5}}
{"at": 0, "id": "audioAnalysis", "data": {"wetRms": 0.1}}
{"at": 5, "id": "bypass", "data": {"value": true}}

{"at": -3, "id": "mix", "data": {"scaledValue": 0.2}}
`

func TestParseScript(t *testing.T) {
	events, err := ParseScript(strings.NewReader(testScript))
	require.NoError(t, err)
	require.Len(t, events, 4)

	assert.Equal(t, EventAnalysis, events[0].ID)
	assert.Equal(t, "mix", events[1].ID)
	assert.Equal(t, 0.0, events[1].At)
	assert.Equal(t, "mix", events[2].ID)
	assert.Equal(t, 5.0, events[2].At)
	assert.Equal(t, ParamBypass, events[3].ID)
}

func TestParseScriptErrors(t *testing.T) {
	_, err := ParseScript(strings.NewReader("{\"at\": 1}\n"))
	assert.Error(t, err)

	_, err = ParseScript(strings.NewReader("\n\nnot json\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestScriptRunPublishesInOrder(t *testing.T) {
	s := NewScript(strings.NewReader(testScript))
	require.NoError(t, s.Init())
	require.NoError(t, s.Init())

	var got []string
	record := func(id string) Listener {
		return func(p []byte) { got = append(got, id+" "+string(p)) }
	}

	s.Subscribe(ParamMix, record(ParamMix))
	s.Subscribe(ParamBypass, record(ParamBypass))
	s.Subscribe(EventAnalysis, record(EventAnalysis))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, s.Run(ctx))

	assert.Equal(t, []string{
		`audioAnalysis {"wetRms": 0.1}`,
		`mix {"scaledValue": 0.2}`,
		`mix {"scaledValue": 0.5}`,
		`bypass {"value": true}`,
	}, got)
}

func TestScriptRunCancelled(t *testing.T) {
	s := NewScript(strings.NewReader(`{"at": 60000, "id": "mix", "data": {}}`))
	require.NoError(t, s.Init())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, s.Run(ctx))
}
