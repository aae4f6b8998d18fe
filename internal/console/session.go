package console

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	mrand "math/rand"
	"time"

	"github.com/faideww/monkey-menu/internal/monkey"
	"go.uber.org/zap"
)

const (
	topSpecies   = 3
	topPicked    = 3
	maxSuggested = 5
)

// Journal records random picks for the session statistics.
type Journal interface {
	Add(ctx context.Context, p monkey.Pick) error
	TopPicked(ctx context.Context, limit int) ([]monkey.PickCount, error)
}

type Options struct {
	Catalog  *monkey.Catalog
	Journal  Journal // optional
	Renderer Renderer
	Input    io.Reader
	Pauser   Pauser
	Sleeper  Sleeper
	Logger   *zap.Logger
	Rand     *mrand.Rand

	// RollDelay is the pause before a random pick is revealed.
	RollDelay time.Duration
}

// Session is one interactive run of the menu.
type Session struct {
	catalog   *monkey.Catalog
	journal   Journal
	r         Renderer
	in        *LineReader
	pauser    Pauser
	sleep     Sleeper
	log       *zap.Logger
	rng       *mrand.Rand
	opts      []Option
	rollDelay time.Duration
}

func NewSession(o Options) *Session {
	if o.Pauser == nil {
		o.Pauser = NopPauser{}
	}
	if o.Sleeper == nil {
		o.Sleeper = RealSleeper{}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Rand == nil {
		var b [8]byte
		if _, err := rand.Read(b[:]); err != nil {
			o.Rand = mrand.New(mrand.NewSource(time.Now().UnixNano()))
		} else {
			o.Rand = mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
		}
	}

	return &Session{
		catalog:   o.Catalog,
		journal:   o.Journal,
		r:         o.Renderer,
		in:        NewLineReader(o.Input),
		pauser:    o.Pauser,
		sleep:     o.Sleeper,
		log:       o.Logger,
		rng:       o.Rand,
		opts:      optionDefs(),
		rollDelay: o.RollDelay,
	}
}

// Run drives the menu until the user exits, input ends or ctx is cancelled,
// then shows the exit prompt. Failures inside the loop are rendered and
// returned as *UnexpectedError after the prompt.
func (s *Session) Run(ctx context.Context) error {
	uerr := s.loop(ctx)
	if uerr != nil {
		s.log.Error("menu loop failed", zap.Error(uerr))
		s.r.Error(fmt.Sprintf("\n❌ An unexpected error occurred: %v", uerr.Cause))
	}

	s.r.Line("\nPress any key to exit...")
	if ctx.Err() == nil {
		s.pause(ctx)
	}

	if uerr != nil {
		return uerr
	}
	return nil
}

func (s *Session) loop(ctx context.Context) (uerr *UnexpectedError) {
	defer func() {
		if rec := recover(); rec != nil {
			uerr = &UnexpectedError{Cause: fmt.Errorf("%v", rec)}
		}
	}()

	st := StateWelcome
	for st != StateExit {
		if ctx.Err() != nil {
			s.log.Info("menu interrupted", zap.Error(ctx.Err()))
			s.r.Farewell()
			return nil
		}
		s.log.Debug("menu state", zap.Stringer("state", st))
		st = s.step(ctx, st)
	}
	return nil
}

func (s *Session) step(ctx context.Context, st State) State {
	switch st {
	case StateWelcome:
		s.showWelcome()
		return StateMenuDisplay
	case StateMenuDisplay:
		return s.showMenu(ctx)
	case StateActionListAll:
		s.handleListAll()
	case StateActionFindByName:
		s.handleFindByName(ctx)
	case StateActionRandom:
		s.handleRandom(ctx)
	case StateActionStatistics:
		s.handleStatistics(ctx)
	default:
		return StateExit
	}
	return s.continuePrompt(ctx)
}

func (s *Session) showWelcome() {
	s.r.Clear()
	s.r.Banner(asciiArt[s.rng.Intn(len(asciiArt))])
	s.r.Welcome()
}

func (s *Session) showMenu(ctx context.Context) State {
	s.r.Menu(s.opts)
	s.r.Prompt(fmt.Sprintf("\nPlease select an option (1-%d): ", len(s.opts)))

	input, err := s.in.ReadLine(ctx)
	if err != nil {
		if !errors.Is(err, io.EOF) && ctx.Err() == nil {
			s.log.Warn("failed to read menu choice", zap.Error(err))
		}
		s.r.Farewell()
		return StateExit
	}

	opt, ok := lookupOption(s.opts, input)
	if !ok {
		s.log.Debug("invalid menu option", zap.String("input", input))
		s.r.Error("\n❌ Invalid option. Please try again.")
		return s.continuePrompt(ctx)
	}

	if opt.Next == StateExit {
		s.r.Farewell()
	}
	return opt.Next
}

func (s *Session) continuePrompt(ctx context.Context) State {
	s.r.Line("\nPress any key to continue...")
	s.pause(ctx)
	return StateWelcome
}

func (s *Session) pause(ctx context.Context) {
	if err := s.pauser.Pause(ctx); err != nil {
		s.log.Debug("key press skipped", zap.Error(err))
	}
}

func (s *Session) handleListAll() {
	s.r.Clear()
	s.r.Heading("📋 ALL MONKEYS")

	list := s.catalog.All()
	if len(list) == 0 {
		s.r.Notice("No monkeys found in the database.")
		return
	}

	s.r.Line(fmt.Sprintf("\nFound %d monkey species:\n", len(list)))
	s.r.SpeciesTable(list)
}

func (s *Session) handleFindByName(ctx context.Context) {
	s.r.Clear()
	s.r.Heading("🔍 FIND MONKEY BY NAME")
	s.r.Prompt("\nEnter the monkey name: ")

	name, err := s.in.ReadLine(ctx)
	if err != nil && !errors.Is(err, io.EOF) {
		s.log.Warn("failed to read monkey name", zap.Error(err))
	}

	sp, err := s.catalog.FindByName(name)
	switch {
	case errors.Is(err, monkey.ErrInvalidName):
		s.r.Error("❌ Please enter a valid monkey name.")
	case err != nil:
		s.log.Debug("monkey not found", zap.String("name", name))
		s.r.NotFound(name, s.catalog.Suggestions(maxSuggested))
	default:
		s.r.SpeciesDetail(sp)
	}
}

func (s *Session) handleRandom(ctx context.Context) {
	s.r.Clear()
	s.r.Heading("🎲 RANDOM MONKEY SELECTION")
	s.r.Line("🎲 Rolling the dice for a random monkey...\n")

	s.sleep.Sleep(ctx, s.rollDelay)

	sp, err := s.catalog.PickRandom()
	if err != nil {
		s.r.Notice("No monkeys available to pick from.")
		return
	}

	s.r.Success("🎉 You got:")
	s.r.SpeciesDetail(sp)
	s.r.Line(fmt.Sprintf("\n🎲 Random selections made: %d", s.catalog.RandomPickCount()))

	if s.journal != nil {
		if err := s.journal.Add(ctx, monkey.Pick{Species: sp.Name, PickedAt: time.Now()}); err != nil {
			s.log.Warn("failed to journal pick", zap.String("species", sp.Name), zap.Error(err))
		}
	}
}

func (s *Session) handleStatistics(ctx context.Context) {
	s.r.Clear()
	s.r.Heading("📊 MONKEY STATISTICS")

	var picked []monkey.PickCount
	if s.journal != nil {
		var err error
		picked, err = s.journal.TopPicked(ctx, topPicked)
		if err != nil {
			s.log.Warn("failed to load pick journal", zap.Error(err))
		}
	}

	s.r.Statistics(s.catalog.Stats(topSpecies), picked)
}
