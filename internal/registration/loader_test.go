package registration

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type fakeStore struct {
	seasons    []Season
	periods    []Period
	seasonsErr error
	periodsErr error
}

func (s *fakeStore) ActiveSeasons(ctx context.Context) ([]Season, error) {
	return s.seasons, s.seasonsErr
}

func (s *fakeStore) PeriodsByStartDate(ctx context.Context) ([]Period, error) {
	return s.periods, s.periodsErr
}

func TestLoaderLoad(t *testing.T) {
	store := &fakeStore{
		seasons: []Season{
			{ID: 1, Name: "Verão 2026", Status: "active"},
			{ID: 2, Name: "Inverno 2026", Status: "active"},
		},
		periods: []Period{
			{ID: 10, Label: "10 a 15 de Janeiro", SeasonID: 1},
			{ID: 11, Label: "5 a 10 de Julho", SeasonID: 2},
		},
	}

	rd := NewLoader(store).Load(context.Background())
	if len(rd.Seasons) != 2 || len(rd.Periods) != 2 {
		t.Fatalf("loaded %d seasons, %d periods", len(rd.Seasons), len(rd.Periods))
	}
}

func TestLoaderDegradesToEmpty(t *testing.T) {
	store := &fakeStore{
		seasons:    []Season{{ID: 1, Name: "Verão 2026"}},
		periodsErr: errors.New("table store unavailable"),
	}

	rd := NewLoader(store).Load(context.Background())
	if len(rd.Seasons) != 0 || len(rd.Periods) != 0 {
		t.Errorf("partial failure must yield empty data, got %+v", rd)
	}
}

func TestPeriodsFor(t *testing.T) {
	rd := ReferenceData{
		Seasons: []Season{
			{ID: 1, Name: "Verão 2026"},
			{ID: 2, Name: "Inverno 2026"},
		},
		Periods: []Period{
			{ID: 10, Label: "10 a 15 de Janeiro", SeasonID: 1},
			{ID: 11, Label: "20 a 25 de Janeiro", SeasonID: 1},
			{ID: 12, Label: "5 a 10 de Julho", SeasonID: 2},
		},
	}

	got := rd.PeriodsFor("Verão 2026")
	if len(got) != 2 || got[0].ID != 10 || got[1].ID != 11 {
		t.Errorf("PeriodsFor(Verão 2026) = %+v", got)
	}

	if got := rd.PeriodsFor("Primavera 2026"); got != nil {
		t.Errorf("unknown season should yield nil, got %+v", got)
	}
}

func TestPeriodsForDistinguishesSameLabel(t *testing.T) {
	rd := ReferenceData{
		Seasons: []Season{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		Periods: []Period{
			{ID: 1, Label: "Primeira semana", SeasonID: 1},
			{ID: 2, Label: "Primeira semana", SeasonID: 2},
		},
	}
	got := rd.PeriodsFor("B")
	want := []Period{{ID: 2, Label: "Primeira semana", SeasonID: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PeriodsFor(B) = %+v", got)
	}
}
