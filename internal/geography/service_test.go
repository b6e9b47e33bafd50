package geography

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirador/internal/dataset"
	"mirador/internal/pipeline"
	"mirador/internal/testutil"
)

func newService(t *testing.T) Service {
	t.Helper()
	return NewService(dataset.NewStore(testutil.NewSnapshot(t)))
}

func TestService_TopStates(t *testing.T) {
	svc := newService(t)

	summaries, err := svc.TopStates(context.Background(), 5, pipeline.DateRange{})
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	// SP has two orders from one person (u1 under two customer ids).
	sp := summaries[0]
	assert.Equal(t, "SP", sp.State)
	assert.Equal(t, 1, sp.NumClientes)
	assert.Equal(t, 2, sp.NumPedidos)
	assert.InDelta(t, 50.0, sp.PorcentajePedidos, 1e-9)
}

func TestService_TopStates_LimitAppliesAfterRanking(t *testing.T) {
	svc := newService(t)

	summaries, err := svc.TopStates(context.Background(), 1, pipeline.DateRange{})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "SP", summaries[0].State)
}

func TestService_TopStates_CountConservation(t *testing.T) {
	svc := newService(t)

	summaries, err := svc.TopStates(context.Background(), 100, pipeline.DateRange{})
	require.NoError(t, err)

	total := 0
	porcentaje := 0.0
	for _, s := range summaries {
		total += s.NumPedidos
		porcentaje += s.PorcentajePedidos
	}
	assert.Equal(t, 4, total)
	assert.InDelta(t, 100.0, porcentaje, 0.1)
}

func TestService_TopStates_DateWindow(t *testing.T) {
	svc := newService(t)

	from := testutil.MustTime(t, "2024-03-01")
	summaries, err := svc.TopStates(context.Background(), 5, pipeline.DateRange{From: &from})
	require.NoError(t, err)

	// Only o3 (RJ) and o4 (MG) were purchased from March on.
	require.Len(t, summaries, 2)
	assert.Equal(t, "RJ", summaries[0].State)
	assert.Equal(t, "MG", summaries[1].State)
}

func TestService_Cities_FilteredByState(t *testing.T) {
	svc := newService(t)

	summaries, err := svc.Cities(context.Background(), "SP", pipeline.DateRange{})
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "sao paulo", summaries[0].City)
	assert.Equal(t, "campinas", summaries[1].City)
}

func TestService_Cities_UnknownStateYieldsEmpty(t *testing.T) {
	svc := newService(t)

	summaries, err := svc.Cities(context.Background(), "XX", pipeline.DateRange{})
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestUseCase_TopStates_TableShape(t *testing.T) {
	uc := NewUseCase(newService(t))

	table, err := uc.TopStates(context.Background(), TopStatesRequest{Limit: 5})
	require.NoError(t, err)

	assert.Equal(t, "estado", table.X)
	assert.Equal(t, "num_clientes", table.Y)
	assert.Equal(t, []string{"estado", "num_clientes", "num_pedidos", "porcentaje_pedidos", "ratio_pedidos_cliente", "entrega_prom_dias"}, table.Headers)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "SP", table.Rows[0][0])
}
