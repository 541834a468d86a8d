package hunt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLazyPoolInitialization(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	mustCreate(t, svc, "Alpha")

	view, err := svc.TeamView(ctx, "Alpha")
	require.NoError(t, err)
	require.Len(t, view.Round2.AvailableCodes, SlotCount)
	require.Equal(t, "code1", view.Round2.AvailableCodes[0])
	require.Equal(t, "code12", view.Round2.AvailableCodes[SlotCount-1])
	require.Empty(t, view.Round2.FrozenCodes)
}

func TestSelectCode(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	mustCreate(t, svc, "Alpha")

	require.NoError(t, svc.SelectCode(ctx, "Alpha", "code5"))

	err := svc.SelectCode(ctx, "Alpha", "code99")
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	err = svc.SelectCode(ctx, "Ghost", "code5")
	require.ErrorIs(t, err, ErrTeamNotFound)
}

func TestThreeFailuresFreezeSlotForThatTeamOnly(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	mustCreate(t, svc, "A")
	mustCreate(t, svc, "B")

	require.NoError(t, svc.SelectCode(ctx, "A", "code5"))

	sub, err := svc.SubmitCode(ctx, "A", "bogus", "code5")
	require.NoError(t, err)
	require.Equal(t, SubmitIncorrect, sub.Outcome)
	require.Equal(t, 2, sub.AttemptsLeft)

	sub, err = svc.SubmitCode(ctx, "A", "bogus", "code5")
	require.NoError(t, err)
	require.Equal(t, 1, sub.AttemptsLeft)

	sub, err = svc.SubmitCode(ctx, "A", "bogus", "code5")
	require.NoError(t, err)
	require.Equal(t, SubmitLockout, sub.Outcome)
	require.Equal(t, "code5", sub.FrozenSlot)

	viewA, err := svc.TeamView(ctx, "A")
	require.NoError(t, err)
	require.Contains(t, viewA.Round2.FrozenCodes, "code5")
	require.NotContains(t, viewA.Round2.AvailableCodes, "code5")

	err = svc.SelectCode(ctx, "A", "code5")
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	// Pools are per-team: B's code5 is untouched.
	viewB, err := svc.TeamView(ctx, "B")
	require.NoError(t, err)
	require.Contains(t, viewB.Round2.AvailableCodes, "code5")
	require.Empty(t, viewB.Round2.FrozenCodes)
	require.NoError(t, svc.SelectCode(ctx, "B", "code5"))
}

func TestSuccessfulSubmitResetsSlotAttempts(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	mustCreate(t, svc, "A")

	require.NoError(t, svc.SelectCode(ctx, "A", "code5"))

	for i := 0; i < 2; i++ {
		_, err := svc.SubmitCode(ctx, "A", "bogus", "code5")
		require.NoError(t, err)
	}

	sub, err := svc.SubmitCode(ctx, "A", "code5", "code5")
	require.NoError(t, err)
	require.Equal(t, SubmitAccepted, sub.Outcome)

	view, err := svc.TeamView(ctx, "A")
	require.NoError(t, err)
	require.Equal(t, 0, view.Round2.Attempts["code5"])
	require.Contains(t, view.Round2.AvailableCodes, "code5")
}
