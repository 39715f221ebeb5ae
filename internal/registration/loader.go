package registration

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"
)

// Season and Period mirror the reference tables as the form consumes
// them. The form keys periods by the season's name, not its id, because
// the persisted registration is denormalized by name.
type Season struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Period struct {
	ID        uint   `json:"id"`
	Label     string `json:"label"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	SeasonID  uint   `json:"season_id"`
}

// ReferenceStore is the read side of the backing table store the loader
// depends on.
type ReferenceStore interface {
	ActiveSeasons(ctx context.Context) ([]Season, error)
	PeriodsByStartDate(ctx context.Context) ([]Period, error)
}

// ReferenceData is what the season/period selectors render.
type ReferenceData struct {
	Seasons []Season `json:"seasons"`
	Periods []Period `json:"periods"`
}

// PeriodsFor returns the periods belonging to the season with the given
// name, empty when no season matches.
func (rd ReferenceData) PeriodsFor(seasonName string) []Period {
	var season *Season
	for i := range rd.Seasons {
		if rd.Seasons[i].Name == seasonName {
			season = &rd.Seasons[i]
			break
		}
	}
	if season == nil {
		return nil
	}
	var out []Period
	for _, p := range rd.Periods {
		if p.SeasonID == season.ID {
			out = append(out, p)
		}
	}
	return out
}

// Loader fetches the reference data the form needs at mount.
type Loader struct {
	store ReferenceStore
}

func NewLoader(store ReferenceStore) *Loader {
	return &Loader{store: store}
}

// Load runs the two reads in parallel. A failure of either degrades to
// empty selectors rather than an error: the form disables the selects
// and the failure is only logged.
func (l *Loader) Load(ctx context.Context) ReferenceData {
	var rd ReferenceData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		seasons, err := l.store.ActiveSeasons(ctx)
		if err != nil {
			return err
		}
		rd.Seasons = seasons
		return nil
	})
	g.Go(func() error {
		periods, err := l.store.PeriodsByStartDate(ctx)
		if err != nil {
			return err
		}
		rd.Periods = periods
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Printf("Failed to load registration options: %v", err)
		return ReferenceData{}
	}
	return rd
}
