package badges

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/budai/internal/ability"
	"github.com/abhisek/budai/internal/store"
)

type mockBadgeRepo struct {
	catalog map[string]store.Badge
	awards  map[string]bool
}

func newMockBadgeRepo() *mockBadgeRepo {
	return &mockBadgeRepo{catalog: map[string]store.Badge{}, awards: map[string]bool{}}
}

func (m *mockBadgeRepo) Ensure(_ context.Context, b store.Badge) error {
	m.catalog[b.Key] = b
	return nil
}
func (m *mockBadgeRepo) ListBadges(_ context.Context) ([]store.Badge, error) {
	var out []store.Badge
	for _, b := range m.catalog {
		out = append(out, b)
	}
	return out, nil
}
func (m *mockBadgeRepo) Award(_ context.Context, childID uuid.UUID, key string, at time.Time) (*store.BadgeAward, error) {
	if m.awards[key] {
		return nil, store.ErrConflict
	}
	m.awards[key] = true
	return &store.BadgeAward{Badge: store.Badge{Key: key}, ChildID: childID, AwardedAt: at}, nil
}
func (m *mockBadgeRepo) ListAwards(_ context.Context, childID uuid.UUID) ([]store.BadgeAward, error) {
	var out []store.BadgeAward
	for k := range m.awards {
		out = append(out, store.BadgeAward{Badge: store.Badge{Key: k}, ChildID: childID})
	}
	return out, nil
}

type mockChildRepo struct {
	store.ChildRepo
	child store.Child
}

func (m *mockChildRepo) Get(_ context.Context, _ uuid.UUID) (*store.Child, error) {
	c := m.child
	return &c, nil
}

type mockCoCreateRepo struct {
	store.CoCreateRepo
	count int
}

func (m *mockCoCreateRepo) CountByChild(_ context.Context, _ uuid.UUID) (int, error) {
	return m.count, nil
}

func TestEligible(t *testing.T) {
	tests := []struct {
		name string
		st   Stats
		want []Key
	}{
		{"neutral child", Stats{Scores: ability.Neutral()}, nil},
		{"streak 7", Stats{Streak: 7, Scores: ability.Neutral()}, []Key{Streak7}},
		{"streak 14", Stats{Streak: 14, Scores: ability.Neutral()}, []Key{Streak7, Streak14}},
		{
			"exploration needs 4.5",
			Stats{Scores: ability.Neutral().Set(ability.Exploration, 4.4)},
			nil,
		},
		{
			"all five at 4",
			Stats{Scores: ability.Scores{Expression: 4, Logic: 4, Exploration: 4, Creativity: 4, Habit: 4}},
			[]Key{ExpressionStar, LogicStar, CreativityStar, AllRounder},
		},
		{"five contributions", Stats{Scores: ability.Neutral(), Contributions: 5}, []Key{CoCreator}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []Key
			for _, d := range Eligible(tt.st) {
				got = append(got, d.Key)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogKeysUnique(t *testing.T) {
	seen := map[Key]bool{}
	for _, d := range Catalog() {
		assert.False(t, seen[d.Key], "duplicate key %s", d.Key)
		seen[d.Key] = true
		_, ok := Lookup(d.Key)
		assert.True(t, ok)
	}
	assert.Len(t, seen, 8)
}

func TestSeed(t *testing.T) {
	repo := newMockBadgeRepo()
	svc := NewService(repo, &mockChildRepo{}, &mockCoCreateRepo{}, nil)

	require.NoError(t, svc.Seed(context.Background()))
	require.NoError(t, svc.Seed(context.Background()))
	assert.Len(t, repo.catalog, len(Catalog()))
}

func TestCheckAndAward_OnlyNewBadges(t *testing.T) {
	repo := newMockBadgeRepo()
	children := &mockChildRepo{child: store.Child{Streak: 7, Scores: ability.Neutral()}}
	cocreate := &mockCoCreateRepo{}
	svc := NewService(repo, children, cocreate, nil)
	ctx := context.Background()
	id := uuid.New()

	got := svc.CheckAndAward(ctx, id)
	require.Len(t, got, 1)
	assert.Equal(t, string(Streak7), got[0].Key)

	// Same state again awards nothing.
	assert.Empty(t, svc.CheckAndAward(ctx, id))

	children.child.Scores = children.child.Scores.Set(ability.Logic, 4.2)
	cocreate.count = 5
	got = svc.CheckAndAward(ctx, id)
	var keys []string
	for _, a := range got {
		keys = append(keys, a.Key)
	}
	assert.ElementsMatch(t, []string{string(LogicStar), string(CoCreator)}, keys)
}
