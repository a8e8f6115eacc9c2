package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("accepts territories up to capacity", func(t *testing.T) {
		r := NewRegistry(2)
		require.NoError(t, r.Add(Territory{Name: "Brasil", Color: "azul", Troops: 3}))
		require.False(t, r.Full())
		require.NoError(t, r.Add(Territory{Name: "Peru", Color: "vermelho", Troops: 2}))
		require.True(t, r.Full())

		err := r.Add(Territory{Name: "Chile"})

		require.ErrorIs(t, err, ErrRegistryFull)
		require.Equal(t, 2, r.Len(), "Registry should not grow past capacity")
	})

	t.Run("positions are 1-based and validated", func(t *testing.T) {
		r := NewRegistry(2)
		require.NoError(t, r.Add(Territory{Name: "Brasil"}))

		got, err := r.At(1)
		require.NoError(t, err)
		require.Equal(t, "Brasil", got.Name)

		_, err = r.At(0)
		require.ErrorIs(t, err, ErrInvalidTarget)
		_, err = r.At(2)
		require.ErrorIs(t, err, ErrInvalidTarget, "Unregistered slots should not be addressable")
	})

	t.Run("snapshots are detached copies", func(t *testing.T) {
		r := NewRegistry(1)
		require.NoError(t, r.Add(Territory{Name: "Brasil", Color: "azul", Troops: 3}))

		snapshot := r.Snapshot()
		snapshot[0].Troops = 99

		got, _ := r.At(1)
		require.Equal(t, 3, got.Troops, "Mutating a snapshot should not reach the registry")
	})

	t.Run("tallies holdings by army", func(t *testing.T) {
		r := NewRegistry(3)
		require.NoError(t, r.Add(Territory{Color: "azul", Troops: 3}))
		require.NoError(t, r.Add(Territory{Color: "vermelho", Troops: 2}))
		require.NoError(t, r.Add(Territory{Color: "azul", Troops: 4}))

		require.Equal(t, 2, r.CountOwnedBy("azul"))
		require.Equal(t, 7, r.TroopsOf("azul"))
		require.Equal(t, 0, r.CountOwnedBy("verde"))
	})
}

func TestScriptedSource(t *testing.T) {
	t.Run("replays draws in order", func(t *testing.T) {
		src := NewScriptedSource(4, 0, 2)

		require.Equal(t, 4, src.Intn(5))
		require.Equal(t, 0, src.Intn(5))
		require.Equal(t, 1, src.Remaining())
	})

	t.Run("loaded dice map faces to draws", func(t *testing.T) {
		src := NewLoadedDice(6, 1)

		require.Equal(t, 6, rollDie(src))
		require.Equal(t, 1, rollDie(src))
	})

	t.Run("panics when exhausted", func(t *testing.T) {
		src := NewScriptedSource()

		require.Panics(t, func() { src.Intn(6) })
	})
}

func TestSeededSourceRollsWithinDieFaces(t *testing.T) {
	src := NewSource(42)
	for i := 0; i < 1000; i++ {
		face := rollDie(src)
		require.GreaterOrEqual(t, face, 1)
		require.LessOrEqual(t, face, 6)
	}
}
