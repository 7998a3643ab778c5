package rng

import (
	"strconv"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkernell/rng/x/rng/types"
)

type unknownMsg struct{}

func (unknownMsg) Reset()                       {}
func (unknownMsg) String() string               { return "unknown" }
func (unknownMsg) ProtoMessage()                {}
func (unknownMsg) ValidateBasic() error         { return nil }
func (unknownMsg) GetSigners() []sdk.AccAddress { return nil }

func TestNewHandler(t *testing.T) {
	ctx, k, bankKeeper := setupTest(t)
	require.NoError(t, k.SetParams(ctx, types.DefaultParams()))
	handler := NewHandler(&k)

	creator := sdk.AccAddress([]byte("creator_____________"))
	bankKeeper.balances[creator.String()] = sdk.NewCoins(sdk.NewInt64Coin("stake", 1000))

	res, err := handler(ctx, &types.MsgRequestRandomness{
		Creator:    creator.String(),
		Denom:      "stake",
		SeedReward: math.NewInt(100),
		OracleTip:  math.NewInt(50),
		SeedData:   []byte("entropy"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Events)

	request, found := k.GetRequest(ctx, 1)
	require.True(t, found)
	assert.Equal(t, math.NewInt(100), request.SeedReward)

	// the request event carries the claim deadline
	var deadline string
	for _, event := range res.Events {
		if event.Type != types.EventTypeRandomnessRequested {
			continue
		}
		for _, attr := range event.Attributes {
			if string(attr.Key) == types.AttributeKeyDeadline {
				deadline = string(attr.Value)
			}
		}
	}
	assert.Equal(t, strconv.FormatInt(request.Deadline, 10), deadline)

	res, err = handler(ctx, &types.MsgContributeSeed{
		Contributor: creator.String(),
		RequestId:   1,
		Data:        []byte("more entropy"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Events)

	updated, found := k.GetRequest(ctx, 1)
	require.True(t, found)
	assert.Equal(t, creator.String(), updated.LastContributor)
	assert.Equal(t, types.FoldSeed(request.Seed, []byte("more entropy")), updated.Seed)

	// reward window is still open
	_, err = handler(ctx, &types.MsgClaimSeedReward{
		Claimer:   creator.String(),
		RequestId: 1,
	})
	assert.ErrorIs(t, err, types.ErrWindowOpen)

	_, err = handler(ctx, unknownMsg{})
	assert.Error(t, err)
}

func TestHandlerClaimAfterDeadline(t *testing.T) {
	ctx, k, bankKeeper := setupTest(t)
	require.NoError(t, k.SetParams(ctx, types.DefaultParams()))
	handler := NewHandler(&k)

	creator := sdk.AccAddress([]byte("creator_____________"))
	bankKeeper.balances[creator.String()] = sdk.NewCoins(sdk.NewInt64Coin("stake", 1000))

	_, err := handler(ctx, &types.MsgRequestRandomness{
		Creator:    creator.String(),
		Denom:      "stake",
		SeedReward: math.NewInt(100),
		OracleTip:  math.NewInt(50),
		SeedData:   []byte("entropy"),
	})
	require.NoError(t, err)

	_, err = handler(ctx, &types.MsgContributeSeed{
		Contributor: creator.String(),
		RequestId:   1,
		Data:        []byte("more entropy"),
	})
	require.NoError(t, err)

	claimCtx := ctx.WithBlockTime(ctx.BlockTime().AddDate(0, 0, 1))
	res, err := handler(claimCtx, &types.MsgClaimSeedReward{
		Claimer:   creator.String(),
		RequestId: 1,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Events)

	claimed := bankKeeper.GetBalance(claimCtx, creator, "stake")
	assert.Equal(t, int64(950), claimed.Amount.Int64())
}
