// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

const defaultEnrichConcurrency = 8

// LikedQuote is a quote annotated with whether the caller has liked it.
type LikedQuote struct {
	domain.Quote
	IsLiked bool
}

// QuoteListing is one page of quotes for a caller.
type QuoteListing struct {
	Quotes     []LikedQuote
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// SeedQuote is one quote to load into an empty store.
type SeedQuote struct {
	Text   string
	Author string
}

// QuoteService orchestrates quote use cases on top of a QuoteStore.
type QuoteService struct {
	store             ports.QuoteStore
	logger            *slog.Logger
	enrichConcurrency int
}

// QuoteServiceConfig contains the service dependencies.
type QuoteServiceConfig struct {
	Store  ports.QuoteStore
	Logger *slog.Logger

	// EnrichConcurrency bounds the parallel is-liked lookups for a listing.
	EnrichConcurrency int
}

// NewQuoteService creates a quote service. It panics without a store.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: QuoteService requires a Store")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	concurrency := cfg.EnrichConcurrency
	if concurrency <= 0 {
		concurrency = defaultEnrichConcurrency
	}

	return &QuoteService{
		store:             cfg.Store,
		logger:            logger,
		enrichConcurrency: concurrency,
	}
}

// GetRandom returns a random quote for the caller.
func (s *QuoteService) GetRandom(ctx context.Context, userIP string) (*LikedQuote, error) {
	quote, err := s.store.GetRandom(ctx)
	if err != nil {
		s.logFailure(ctx, "get random quote", err)
		return nil, err
	}

	return s.withLiked(ctx, quote, userIP), nil
}

// List returns one page of quotes, newest first, each marked for the caller.
func (s *QuoteService) List(ctx context.Context, params domain.ListParams, userIP string) (*QuoteListing, error) {
	page, err := s.store.List(ctx, params)
	if err != nil {
		s.logFailure(ctx, "list quotes", err, slog.Int("page", params.Page), slog.String("search", params.Search))
		return nil, err
	}

	lookups := make([]func(context.Context) (bool, error), len(page.Quotes))
	for i := range page.Quotes {
		id := page.Quotes[i].ID
		lookups[i] = func(ctx context.Context) (bool, error) {
			return s.store.IsLiked(ctx, id, userIP)
		}
	}

	results := ParallelPartialLimit(ctx, s.enrichConcurrency, lookups...)

	quotes := make([]LikedQuote, len(page.Quotes))
	for i, q := range page.Quotes {
		quotes[i] = LikedQuote{Quote: q, IsLiked: results[i].Value}

		if results[i].Err != nil {
			s.logger.WarnContext(ctx, "is-liked lookup failed, reporting not liked",
				slog.String("quote_id", q.ID),
				slog.Any("error", results[i].Err),
			)

			quotes[i].IsLiked = false
		}
	}

	s.logger.DebugContext(ctx, "listed quotes",
		slog.Int("page", params.Page),
		slog.Int("returned", len(quotes)),
		slog.Int("total", page.Total),
	)

	return &QuoteListing{
		Quotes:     quotes,
		Total:      page.Total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: domain.TotalPages(page.Total, params.PageSize),
	}, nil
}

// Get returns a quote by id for the caller.
func (s *QuoteService) Get(ctx context.Context, id, userIP string) (*LikedQuote, error) {
	quote, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, "get quote", err, slog.String("quote_id", id))
		return nil, err
	}

	return s.withLiked(ctx, quote, userIP), nil
}

// Create validates and stores a new quote.
func (s *QuoteService) Create(ctx context.Context, text, author string) (*domain.Quote, error) {
	quote, err := domain.NewQuote(text, author)
	if err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, &quote); err != nil {
		s.logFailure(ctx, "create quote", err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "quote created",
		slog.String("quote_id", quote.ID),
		slog.String("author", quote.Author),
	)

	return &quote, nil
}

// Update applies a partial edit.
func (s *QuoteService) Update(ctx context.Context, id string, patch domain.QuotePatch, userIP string) (*LikedQuote, error) {
	patch, err := patch.Normalize()
	if err != nil {
		return nil, err
	}

	quote, err := s.store.Update(ctx, id, patch)
	if err != nil {
		s.logFailure(ctx, "update quote", err, slog.String("quote_id", id))
		return nil, err
	}

	s.logger.InfoContext(ctx, "quote updated", slog.String("quote_id", id))

	return s.withLiked(ctx, quote, userIP), nil
}

// Delete removes a quote and its likes.
func (s *QuoteService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		s.logFailure(ctx, "delete quote", err, slog.String("quote_id", id))
		return err
	}

	s.logger.InfoContext(ctx, "quote deleted", slog.String("quote_id", id))

	return nil
}

// Like records the caller's like. The returned quote is always liked.
// An address that cannot be stored is rejected before the store is touched.
func (s *QuoteService) Like(ctx context.Context, id, userIP, userAgent string) (*LikedQuote, error) {
	if err := domain.ValidateUserIP(userIP); err != nil {
		return nil, err
	}

	quote, err := s.store.Like(ctx, id, userIP, userAgent)
	if err != nil {
		s.logFailure(ctx, "like quote", err, slog.String("quote_id", id))
		return nil, err
	}

	s.logger.InfoContext(ctx, "quote liked",
		slog.String("quote_id", id),
		slog.Int64("likes_count", quote.LikesCount),
	)

	return &LikedQuote{Quote: *quote, IsLiked: true}, nil
}

// IsLiked reports whether the caller liked the quote. Errors propagate.
func (s *QuoteService) IsLiked(ctx context.Context, id, userIP string) (bool, error) {
	liked, err := s.store.IsLiked(ctx, id, userIP)
	if err != nil {
		s.logFailure(ctx, "check like", err, slog.String("quote_id", id))
		return false, err
	}

	return liked, nil
}

// TopWeekly returns the most liked quote created in the last seven days.
func (s *QuoteService) TopWeekly(ctx context.Context, userIP string) (*LikedQuote, error) {
	quote, err := s.store.TopWeekly(ctx)
	if err != nil {
		s.logFailure(ctx, "top weekly quote", err)
		return nil, err
	}

	return s.withLiked(ctx, quote, userIP), nil
}

// TopAllTime returns the most liked quote overall.
func (s *QuoteService) TopAllTime(ctx context.Context, userIP string) (*LikedQuote, error) {
	quote, err := s.store.TopAllTime(ctx)
	if err != nil {
		s.logFailure(ctx, "top all-time quote", err)
		return nil, err
	}

	return s.withLiked(ctx, quote, userIP), nil
}

// ResetLikes clears every like.
func (s *QuoteService) ResetLikes(ctx context.Context) error {
	if err := s.store.ResetLikes(ctx); err != nil {
		s.logFailure(ctx, "reset likes", err)
		return err
	}

	s.logger.InfoContext(ctx, "all likes reset")

	return nil
}

// Seed stores entries when the store holds no quotes yet and returns how many
// were written. Invalid entries are skipped with a warning.
func (s *QuoteService) Seed(ctx context.Context, entries []SeedQuote, workers int) (int, error) {
	page, err := s.store.List(ctx, domain.ListParams{Page: 1, PageSize: 1})
	if err != nil {
		return 0, err
	}

	if page.Total > 0 {
		s.logger.InfoContext(ctx, "store already populated, skipping seed", slog.Int("quotes", page.Total))
		return 0, nil
	}

	quotes := make([]domain.Quote, 0, len(entries))

	for i, e := range entries {
		q, err := domain.NewQuote(e.Text, e.Author)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping invalid seed entry", slog.Int("index", i), slog.Any("error", err))
			continue
		}

		quotes = append(quotes, q)
	}

	err = FanOut(ctx, workers, quotes, func(ctx context.Context, q domain.Quote) error {
		return s.store.Create(ctx, &q)
	})
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "seeded quotes", slog.Int("count", len(quotes)))

	return len(quotes), nil
}

// withLiked annotates a quote. A failed lookup degrades to not liked.
func (s *QuoteService) withLiked(ctx context.Context, quote *domain.Quote, userIP string) *LikedQuote {
	liked, err := s.store.IsLiked(ctx, quote.ID, userIP)
	if err != nil {
		s.logger.WarnContext(ctx, "is-liked lookup failed, reporting not liked",
			slog.String("quote_id", quote.ID),
			slog.Any("error", err),
		)

		liked = false
	}

	return &LikedQuote{Quote: *quote, IsLiked: liked}
}

// logFailure logs infrastructure failures at error level and expected
// outcomes such as not found at debug level.
func (s *QuoteService) logFailure(ctx context.Context, action string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	if domain.IsNotFound(err) || domain.IsAlreadyLiked(err) || domain.IsValidation(err) {
		level = slog.LevelDebug
	}

	args := make([]any, 0, len(attrs)+1)
	for _, a := range attrs {
		args = append(args, a)
	}

	args = append(args, slog.Any("error", err))

	s.logger.Log(ctx, level, action+" failed", args...)
}
