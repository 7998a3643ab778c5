package types

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rngtypes "github.com/tkernell/rng/types"
)

func validRequest() RandomnessRequest {
	return RandomnessRequest{
		Id:             1,
		Seed:           InitialSeed([]byte("entropy"), []byte("header")),
		Deadline:       5000,
		SeedReward:     math.NewInt(100),
		Denom:          "stake",
		HashIterations: DefaultHashIterations,
		QueryId:        rngtypes.QueryIDFromData(rngtypes.RandomnessQueryData(1)),
	}
}

func TestRandomnessRequestValidate(t *testing.T) {
	require.NoError(t, validRequest().Validate())

	claimed := validRequest()
	claimed.SeedReward = math.ZeroInt()
	claimed.LastContributor = sdk.AccAddress([]byte("contributor_________")).String()
	require.NoError(t, claimed.Validate())

	tests := []struct {
		name   string
		mutate func(r *RandomnessRequest)
	}{
		{"zero id", func(r *RandomnessRequest) { r.Id = 0 }},
		{"empty seed", func(r *RandomnessRequest) { r.Seed = nil }},
		{"zero deadline", func(r *RandomnessRequest) { r.Deadline = 0 }},
		{"nil reward", func(r *RandomnessRequest) { r.SeedReward = math.Int{} }},
		{"negative reward", func(r *RandomnessRequest) { r.SeedReward = math.NewInt(-1) }},
		{"bad denom", func(r *RandomnessRequest) { r.Denom = "1bad" }},
		{"zero iterations", func(r *RandomnessRequest) { r.HashIterations = 0 }},
		{"bad last contributor", func(r *RandomnessRequest) { r.LastContributor = "not-an-address" }},
		{"short query id", func(r *RandomnessRequest) { r.QueryId = []byte{1, 2, 3} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			request := validRequest()
			tc.mutate(&request)
			assert.Error(t, request.Validate())
		})
	}
}

func TestSeedFolding(t *testing.T) {
	initial := InitialSeed([]byte("entropy"), []byte("header"))
	assert.Len(t, initial, 32)
	assert.Equal(t, initial, InitialSeed([]byte("entropy"), []byte("header")))
	assert.NotEqual(t, initial, InitialSeed([]byte("entropy"), []byte("other")))

	folded := FoldSeed(initial, []byte("a"))
	assert.Len(t, folded, 32)
	assert.NotEqual(t, initial, folded)
	assert.Equal(t, folded, FoldSeed(initial, []byte("a")))

	// order matters
	assert.NotEqual(t, FoldSeed(FoldSeed(initial, []byte("a")), []byte("b")),
		FoldSeed(FoldSeed(initial, []byte("b")), []byte("a")))
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())

	params := DefaultParams()
	params.SeedPeriod = 0
	assert.Error(t, params.Validate())

	params = DefaultParams()
	params.HashIterations = 0
	assert.Error(t, params.Validate())
}
