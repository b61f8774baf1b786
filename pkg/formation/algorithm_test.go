package formation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input string
		want  Algorithm
	}{
		{"ACET", ACET},
		{"cat", CAT},
		{" oat ", OAT},
		{"Prt", PRT},
		{"COT", COT},
		{"tat", TAT},
		{"CIT", CIT},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAlgorithmUnknown(t *testing.T) {
	for _, input := range []string{"", "XYZ", "ACET2", "team"} {
		_, err := ParseAlgorithm(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, IsValidationError(err))
	}
}

func TestAlgorithmsCatalog(t *testing.T) {
	infos := Algorithms()
	require.Len(t, infos, 7)
	assert.Equal(t, ACET, infos[0].Code)
	assert.Equal(t, CIT, infos[6].Code)
	for _, info := range infos {
		assert.True(t, info.Code.Valid())
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Description)
	}
}

func TestStrategyForCoversAllAlgorithms(t *testing.T) {
	engine := NewEngine(&mockQuerier{}, testLogger())
	opts := DefaultOptions()
	for _, info := range Algorithms() {
		assert.NotNil(t, engine.strategyFor(info.Code, opts, nil), string(info.Code))
	}
}
