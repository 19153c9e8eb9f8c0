package match

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"verifier/pkg/domain"
)

func TestLevenshteinRatio(t *testing.T) {
	testCases := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "헬스장", b: "헬스장", want: 1},
		{name: "empty both", a: "", b: "", want: 1},
		{name: "disjoint", a: "ab", b: "cd", want: 0},
		{name: "one edit of four", a: "abcd", b: "abce", want: 0.75},
		{name: "korean one edit", a: "서울헬스", b: "서울헬쓰", want: 0.75},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, levenshteinRatio(tc.a, tc.b), 1e-9)
		})
	}
}

func TestJaccard(t *testing.T) {
	testCases := []struct {
		name string
		a, b []string
		want float64
	}{
		{name: "identical", a: []string{"서울", "강남"}, b: []string{"서울", "강남"}, want: 1},
		{name: "both empty", a: nil, b: nil, want: 0},
		{name: "half overlap", a: []string{"a", "b"}, b: []string{"b", "c"}, want: 1.0 / 3.0},
		{name: "one side empty", a: []string{"a"}, b: nil, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, jaccard(tc.a, tc.b), 1e-9)
		})
	}
}

func TestTfidfCosine(t *testing.T) {
	require.InDelta(t, 1.0, tfidfCosine("바디 짐", "바디 짐"), 1e-9)
	require.InDelta(t, 0.0, tfidfCosine("바디 짐", ""), 1e-9)
	require.Greater(t, tfidfCosine("바디 짐", "바디 짐 강남점"), 0.0)
	require.Less(t, tfidfCosine("바디 짐", "바디 짐 강남점"), 1.0)
}

// fakeGyms serves a fixed candidate list.
type fakeGyms struct {
	gyms []domain.Gym
	err  error
}

func (f *fakeGyms) SearchGyms(_ context.Context, _, _ string) ([]domain.Gym, error) {
	return f.gyms, f.err
}

func (f *fakeGyms) GymByID(_ context.Context, id domain.GymID) (*domain.Gym, error) {
	for i := range f.gyms {
		if f.gyms[i].ID == id {
			return &f.gyms[i], nil
		}
	}

	return nil, nil
}

func TestResolve(t *testing.T) {
	name := "바디 짐"
	address := "서울특별시 강남구 테헤란로 1"

	t.Run("exact candidate wins", func(t *testing.T) {
		r := NewResolver(&fakeGyms{gyms: []domain.Gym{
			{ID: 1, Name: "전혀다른이름", RoadAddress: "부산광역시 해운대구 우동 100"},
			{ID: 2, Name: name, RoadAddress: address},
		}})

		got, err := r.Resolve(context.Background(), name, address)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, domain.GymID(2), got.ID)
	})

	t.Run("no candidate above threshold", func(t *testing.T) {
		r := NewResolver(&fakeGyms{gyms: []domain.Gym{
			{ID: 1, Name: "전혀다른이름", RoadAddress: "부산광역시 해운대구 우동 100"},
		}})

		got, err := r.Resolve(context.Background(), name, address)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("empty candidate list", func(t *testing.T) {
		r := NewResolver(&fakeGyms{})

		got, err := r.Resolve(context.Background(), name, address)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("tie keeps lowest id", func(t *testing.T) {
		// identical rows, ordered by id as the store guarantees
		r := NewResolver(&fakeGyms{gyms: []domain.Gym{
			{ID: 3, Name: name, RoadAddress: address},
			{ID: 9, Name: name, RoadAddress: address},
		}})

		got, err := r.Resolve(context.Background(), name, address)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, domain.GymID(3), got.ID)
	})

	t.Run("storage error propagates", func(t *testing.T) {
		r := NewResolver(&fakeGyms{err: errors.New("connection refused")})

		_, err := r.Resolve(context.Background(), name, address)
		require.Error(t, err)
	})
}

func TestScore(t *testing.T) {
	gym := domain.Gym{ID: 1, Name: "바디 짐", RoadAddress: "서울특별시 강남구 테헤란로 1"}

	c := score(gym, "바디 짐", "서울특별시 강남구 테헤란로 1")
	require.InDelta(t, 1.0, c.NameScore, 1e-9)
	require.InDelta(t, 1.0, c.AddressScore, 1e-9)
	require.InDelta(t, 1.0, c.CombinedScore, 1e-9)
}
