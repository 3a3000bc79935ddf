package api

import (
	"time"

	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/catalog"
	"github.com/yourname/moodjournal/internal/insight"
	"github.com/yourname/moodjournal/internal/mentor"
	"github.com/yourname/moodjournal/internal/reflection"
	"github.com/yourname/moodjournal/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Repos() storage.Repositories
	Catalog() *catalog.Catalog
	InsightEngine() *insight.Engine
	MentorEngine() *mentor.Engine
	Reflector() *reflection.Reflector
	Now() time.Time
}

// Application is the default App used by cmd/server.
type Application struct {
	logger    internal.Logger
	repos     storage.Repositories
	catalog   *catalog.Catalog
	insights  *insight.Engine
	mentor    *mentor.Engine
	reflector *reflection.Reflector
	clock     func() time.Time
}

func NewApplication(logger internal.Logger, repos storage.Repositories, cat *catalog.Catalog, insights *insight.Engine, m *mentor.Engine, reflector *reflection.Reflector) *Application {
	return &Application{
		logger:    logger,
		repos:     repos,
		catalog:   cat,
		insights:  insights,
		mentor:    m,
		reflector: reflector,
		clock:     time.Now,
	}
}

// WithClock replaces the wall clock, mostly for tests.
func (a *Application) WithClock(clock func() time.Time) *Application {
	a.clock = clock
	return a
}

func (a *Application) Logger() internal.Logger          { return a.logger }
func (a *Application) Repos() storage.Repositories      { return a.repos }
func (a *Application) Catalog() *catalog.Catalog        { return a.catalog }
func (a *Application) InsightEngine() *insight.Engine   { return a.insights }
func (a *Application) MentorEngine() *mentor.Engine     { return a.mentor }
func (a *Application) Reflector() *reflection.Reflector { return a.reflector }
func (a *Application) Now() time.Time                   { return a.clock() }

var _ App = (*Application)(nil)
