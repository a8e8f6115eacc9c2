package mission

import (
	"testing"

	"github.com/stretchr/testify/require"

	"war/game"
)

func registryOf(t *testing.T, colors ...string) *game.Registry {
	t.Helper()
	r := game.NewRegistry(len(colors))
	for i, color := range colors {
		require.NoError(t, r.Add(game.Territory{Name: string(rune('A' + i)), Color: color, Troops: 12}))
	}
	return r
}

func TestCatalog(t *testing.T) {
	t.Run("lists the five missions in order", func(t *testing.T) {
		ids := Catalog()

		require.Len(t, ids, 5)
		require.Equal(t, "Conquistar 3 territorios seguidos", ids[0].String())
		require.Equal(t, "Eliminar todas as tropas vermelhas", ids[1].String())
		require.Equal(t, "Dominar 2 territorios com mais de 10 tropas", ids[2].String())
		require.Equal(t, "Ter o dobro de tropas do inimigo", ids[3].String())
		require.Equal(t, "Vencer 3 batalhas consecutivas", ids[4].String())
	})

	t.Run("looks descriptions back up", func(t *testing.T) {
		id, err := Lookup("Vencer 3 batalhas consecutivas")
		require.NoError(t, err)
		require.Equal(t, WinThreeBattlesInARow, id)

		_, err = Lookup("Conquistar o mundo")
		require.Error(t, err)
	})

	t.Run("describes unknown ids without panicking", func(t *testing.T) {
		require.False(t, ID(7).Valid())
		require.Equal(t, "mission(7)", ID(7).String())
	})
}

func TestAssign(t *testing.T) {
	t.Run("maps draws onto catalog positions", func(t *testing.T) {
		src := game.NewScriptedSource(0, 4, 4)

		require.Equal(t, ConquerThreeTerritories, Assign(src))
		require.Equal(t, WinThreeBattlesInARow, Assign(src))
		require.Equal(t, WinThreeBattlesInARow, Assign(src), "Duplicate draws should be allowed")
	})

	t.Run("seeded draws stay within the catalog", func(t *testing.T) {
		src := game.NewSource(7)
		for i := 0; i < 500; i++ {
			require.True(t, Assign(src).Valid())
		}
	})
}

func TestIsComplete(t *testing.T) {
	t.Run("conquest mission with three blue territories", func(t *testing.T) {
		board := registryOf(t, "azul", "vermelho", "azul", "vermelho", "azul")

		id, err := Lookup("Conquistar 3 territorios seguidos")
		require.NoError(t, err)
		require.True(t, IsComplete(id, board))
		require.True(t, IsComplete(id, board), "Repeated checks should agree")
	})

	t.Run("conquest mission with two blue territories", func(t *testing.T) {
		board := registryOf(t, "azul", "vermelho", "azul", "vermelho", "vermelho")

		require.False(t, IsComplete(ConquerThreeTerritories, board))
	})

	t.Run("conquest mission counts only blue", func(t *testing.T) {
		board := registryOf(t, "vermelho", "vermelho", "vermelho", "vermelho", "vermelho")

		require.False(t, IsComplete(ConquerThreeTerritories, board))
	})

	t.Run("other missions are never fulfilled", func(t *testing.T) {
		boards := []*game.Registry{
			registryOf(t, "azul", "azul", "azul", "azul", "azul"),
			registryOf(t, "vermelho", "vermelho", "vermelho"),
			registryOf(t),
		}
		for _, id := range Catalog()[1:] {
			for _, board := range boards {
				require.False(t, IsComplete(id, board), "%s should report unfulfilled", id)
			}
		}
	})
}
