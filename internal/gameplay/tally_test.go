package gameplay

import (
	"errors"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingText struct{ text string }

func (r *recordingText) SetText(text string) { r.text = text }

type fakeSpawner struct {
	live      int
	destroyed int
	spawned   []string
	fail      map[string]error
}

func (s *fakeSpawner) DestroyPickups() int {
	n := s.live
	s.destroyed += n
	s.live = 0
	return n
}

func (s *fakeSpawner) SpawnPickup(prefab string, at SpawnPoint) error {
	if err := s.fail[prefab]; err != nil {
		return err
	}
	s.spawned = append(s.spawned, prefab)
	s.live++
	return nil
}

func threePoints() []SpawnPoint {
	return []SpawnPoint{
		{Position: rl.Vector3{X: 1}},
		{Position: rl.Vector3{X: 2}},
		{Position: rl.Vector3{X: 3}, Yaw: 90},
	}
}

func newTestTally(t *testing.T, prefabs []string, points []SpawnPoint) (*Tally, *recordingText, *fakeSpawner, *int) {
	t.Helper()
	text := &recordingText{}
	spawner := &fakeSpawner{}
	successes := 0
	tally, err := NewTally(3, prefabs, points, TallyDeps{
		Display:   text,
		Spawner:   spawner,
		OnSuccess: func() { successes++ },
	})
	require.NoError(t, err)
	return tally, text, spawner, &successes
}

func TestNewTallyRejectsZeroMax(t *testing.T) {
	_, err := NewTally(0, nil, nil, TallyDeps{})
	assert.ErrorIs(t, err, ErrConfigurationMismatch)
}

func TestTallyStartSpawnsOnePerPoint(t *testing.T) {
	tally, text, spawner, _ := newTestTally(t, []string{"red", "green", "blue"}, threePoints())

	require.NoError(t, tally.Start())
	assert.Equal(t, "0 / 3", text.text)
	assert.Equal(t, []string{"red", "green", "blue"}, spawner.spawned)
	assert.Equal(t, 3, spawner.live)
}

func TestTallyCollectReachesGoalOnce(t *testing.T) {
	tally, text, _, successes := newTestTally(t, []string{"red", "green", "blue"}, threePoints())
	require.NoError(t, tally.Start())

	assert.True(t, tally.Collect())
	assert.Equal(t, "1 / 3", text.text)
	assert.True(t, tally.Collect())
	assert.Equal(t, 0, *successes)

	assert.True(t, tally.Collect())
	assert.Equal(t, "3 / 3", text.text)
	assert.Equal(t, 1, *successes)
	assert.True(t, tally.Succeeded())

	assert.False(t, tally.Collect(), "collect at the goal is a no-op")
	assert.Equal(t, 3, tally.Count())
	assert.Equal(t, "3 / 3", text.text)
	assert.Equal(t, 1, *successes)
}

func TestTallyResetRespawnsEverything(t *testing.T) {
	tally, text, spawner, successes := newTestTally(t, []string{"red", "green", "blue"}, threePoints())
	require.NoError(t, tally.Start())
	tally.Collect()
	spawner.live-- // the collected book destroyed itself

	require.NoError(t, tally.Reset())
	assert.Equal(t, 0, tally.Count())
	assert.Equal(t, "0 / 3", text.text)
	assert.Equal(t, 2, spawner.destroyed)
	assert.Equal(t, 3, spawner.live)
	assert.False(t, tally.Succeeded())

	for range 3 {
		tally.Collect()
	}
	assert.Equal(t, 1, *successes)
}

func TestTallyMismatchAbortsBeforeDestroying(t *testing.T) {
	tally, _, spawner, _ := newTestTally(t, []string{"red", "green"}, threePoints())
	spawner.live = 2

	err := tally.Reset()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigurationMismatch)
	assert.Equal(t, 0, spawner.destroyed)
	assert.Equal(t, 2, spawner.live)
	assert.Empty(t, spawner.spawned)
}

func TestTallyEmptyListsAreAMismatch(t *testing.T) {
	tally, _, _, _ := newTestTally(t, nil, nil)
	assert.ErrorIs(t, tally.Start(), ErrConfigurationMismatch)
}

func TestTallyWithoutSpawner(t *testing.T) {
	tally, err := NewTally(1, []string{"red"}, threePoints()[:1], TallyDeps{})
	require.NoError(t, err)
	assert.ErrorIs(t, tally.RespawnAll(), ErrMissingDependency)
}

func TestTallySpawnFailuresAreJoined(t *testing.T) {
	boom := errors.New("unknown prefab")
	tally, _, spawner, _ := newTestTally(t, []string{"red", "missing", "blue"}, threePoints())
	spawner.fail = map[string]error{"missing": boom}

	err := tally.RespawnAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"red", "blue"}, spawner.spawned)
}

func TestTallySkipsEmptyPrefab(t *testing.T) {
	tally, _, spawner, _ := newTestTally(t, []string{"red", "", "blue"}, threePoints())
	require.NoError(t, tally.RespawnAll())
	assert.Equal(t, []string{"red", "blue"}, spawner.spawned)
}

func TestTallySetMaxClampsCount(t *testing.T) {
	tally, text, _, successes := newTestTally(t, []string{"red", "green", "blue"}, threePoints())
	tally.Collect()
	tally.Collect()

	tally.SetMax(1)
	assert.Equal(t, 1, tally.Count())
	assert.Equal(t, "1 / 1", text.text)
	assert.True(t, tally.Succeeded())
	assert.Equal(t, 1, *successes)

	tally.SetMax(0)
	assert.Equal(t, 1, tally.Max())
	tally.SetMax(1)
	assert.Equal(t, 1, *successes)
}

func TestTallyLoweringGoalToCountSucceedsOnce(t *testing.T) {
	tally, text, _, successes := newTestTally(t, []string{"red", "green", "blue"}, threePoints())
	tally.Collect()
	tally.Collect()

	tally.SetMax(2)
	assert.Equal(t, "2 / 2", text.text)
	assert.True(t, tally.Succeeded())
	assert.Equal(t, 1, *successes)

	assert.False(t, tally.Collect())
	assert.Equal(t, 1, *successes)

	tally.SetMax(3)
	assert.Equal(t, 1, *successes, "raising the goal again does not re-arm success")
}
