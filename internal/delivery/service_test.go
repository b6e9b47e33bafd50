package delivery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirador/internal/dataset"
	"mirador/internal/testutil"
)

func newService(t *testing.T) Service {
	t.Helper()
	return NewService(dataset.NewStore(testutil.NewSnapshot(t)))
}

func TestService_States_RankedByLatePercentage(t *testing.T) {
	svc := newService(t)

	summaries, err := svc.States(context.Background(), StatesRequest{
		Limit:  10,
		RankBy: RankByLatePercentage,
	})
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	// Only SP has a late order (o2, five days past the estimate).
	sp := summaries[0]
	assert.Equal(t, "SP", sp.State)
	assert.Equal(t, 2, sp.TotalOrders)
	assert.Equal(t, 1, sp.LateOrders)
	require.NotNil(t, sp.LatePercentage)
	assert.InDelta(t, 50.0, *sp.LatePercentage, 1e-9)
	require.NotNil(t, sp.AvgLateDays)
	assert.InDelta(t, 5.38, *sp.AvgLateDays, 1e-9)
}

func TestService_States_FastestDeliveryAscending(t *testing.T) {
	svc := newService(t)

	summaries, err := svc.States(context.Background(), StatesRequest{
		Limit:     10,
		RankBy:    RankByDeliveryDays,
		Ascending: true,
	})
	require.NoError(t, err)

	// MG never received a delivery, so its mean is undefined and it is
	// excluded from the ranking. RJ (3 days) beats SP (9 days).
	require.Len(t, summaries, 2)
	assert.Equal(t, "RJ", summaries[0].State)
	assert.Equal(t, "SP", summaries[1].State)
	require.NotNil(t, summaries[0].EntregaPromDias)
	assert.InDelta(t, 3.0, *summaries[0].EntregaPromDias, 1e-9)
}

func TestService_States_LimitTruncates(t *testing.T) {
	svc := newService(t)

	summaries, err := svc.States(context.Background(), StatesRequest{
		Limit:  1,
		RankBy: RankByLatePercentage,
	})
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}
