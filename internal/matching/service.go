package matching

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/MichalMitros/shelf-analytics/internal/filter"
	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/metrics"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/MichalMitros/shelf-analytics/pkg/v1/commander"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultMinCandidates is minimal number of candidates of a pair to become matching task.
const DefaultMinCandidates = 2

//go:generate mockery --name Storage --filename storage.go

// Storage persists product matchings.
type Storage interface {
	NextTask(ctx context.Context, brandID uuid.UUID, f filter.GlobalFilter, index int64, minCandidates int) (*models.MatchingTaskID, error)
	Task(ctx context.Context, brandID uuid.UUID, id models.MatchingTaskID, f filter.GlobalFilter, minCandidates int) (*models.MatchingTask, error)
	SubmitChoice(ctx context.Context, brandID uuid.UUID, id models.MatchingTaskID, retailerProductID uuid.UUID) error
	SubmitURL(ctx context.Context, brandID uuid.UUID, matching models.ManualURLMatching) (uuid.UUID, error)
	Skip(ctx context.Context, brandID uuid.UUID, id models.MatchingTaskID) error
	Invalidate(ctx context.Context, brandID uuid.UUID, id models.MatchingTaskID) error
}

//go:generate mockery --name Commander --filename commander.go

// Commander sends url resolution commands.
type Commander interface {
	SendResolveURLCommand(ctx context.Context, cmd commander.ResolveURLCommand) error
}

// Option configures Service.
type Option func(*Service)

// WithMinCandidates sets minimal number of candidates of matching task.
func WithMinCandidates(minCandidates int) Option {
	return func(s *Service) {
		if minCandidates > 0 {
			s.minCandidates = minCandidates
		}
	}
}

// WithCommander makes service publish resolution command for every submitted url.
func WithCommander(cmdr Commander) Option {
	return func(s *Service) {
		s.commander = cmdr
	}
}

// Service drives manual product matching.
type Service struct {
	storage       Storage
	commander     Commander
	logger        *zerolog.Logger
	minCandidates int
}

// NewService returns new Service.
func NewService(storage Storage, logger *zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		storage:       storage,
		logger:        logger,
		minCandidates: DefaultMinCandidates,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NextTask returns identifier of task at index of filtered task list.
// Past the last task it returns finished result.
func (s *Service) NextTask(ctx context.Context, user models.User, f filter.GlobalFilter, index int64) (*NextTask, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: negative task index %d", platform.ErrValidation, index)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	id, err := s.storage.NextTask(ctx, user.BrandID, f, index, s.minCandidates)
	if errors.Is(err, platform.ErrNotFound) {
		return &NextTask{Finished: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't get next matching task: %w", err)
	}

	return &NextTask{BrandProductID: &id.BrandProductID, RetailerID: &id.RetailerID}, nil
}

// Task returns full matching task.
func (s *Service) Task(ctx context.Context, user models.User, id models.MatchingTaskID, f filter.GlobalFilter) (*models.MatchingTask, error) {
	if err := validateTaskID(id); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	task, err := s.storage.Task(ctx, user.BrandID, id, f, s.minCandidates)
	if err != nil {
		return nil, fmt.Errorf("can't get matching task: %w", err)
	}

	return task, nil
}

// Submit applies user decision to matching task.
func (s *Service) Submit(ctx context.Context, user models.User, submission Submission) error {
	id := submission.TaskID()
	if err := validateTaskID(id); err != nil {
		return err
	}

	var (
		kind string
		err  error
	)
	switch {
	case submission.Action == ActionSkip:
		kind, err = "skip", s.storage.Skip(ctx, user.BrandID, id)
	case submission.Action != ActionSubmit && submission.Action != "":
		return fmt.Errorf("%w: unknown matching action %q", platform.ErrValidation, submission.Action)
	case submission.RetailerProductID != nil && *submission.RetailerProductID != "":
		kind, err = "choice", s.submitChoice(ctx, user, id, *submission.RetailerProductID)
	case submission.URL != nil && *submission.URL != "":
		kind, err = "url", s.submitURL(ctx, user, id, *submission.URL)
	default:
		kind, err = "invalidate", s.storage.Invalidate(ctx, user.BrandID, id)
	}
	if err != nil {
		return fmt.Errorf("can't apply %s decision to matching task: %w", kind, err)
	}

	metrics.MatchingSubmissionsTotal.WithLabelValues(kind).Inc()

	return nil
}

func (s *Service) submitChoice(ctx context.Context, user models.User, id models.MatchingTaskID, rawID string) error {
	retailerProductID, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("%w: invalid retailer product id %q", platform.ErrValidation, rawID)
	}

	return s.storage.SubmitChoice(ctx, user.BrandID, id, retailerProductID)
}

func (s *Service) submitURL(ctx context.Context, user models.User, id models.MatchingTaskID, rawURL string) error {
	if err := validateURL(rawURL); err != nil {
		return err
	}

	matchingID, err := s.storage.SubmitURL(ctx, user.BrandID, models.ManualURLMatching{
		BrandProductID: id.BrandProductID,
		RetailerID:     id.RetailerID,
		UserID:         user.ID,
		URL:            rawURL,
		Status:         models.ManualURLMatchingPending,
	})
	if err != nil {
		return err
	}

	if s.commander == nil {
		return nil
	}

	err = s.commander.SendResolveURLCommand(ctx, commander.ResolveURLCommand{
		ManualURLMatchingID: matchingID,
		BrandProductID:      id.BrandProductID,
		RetailerID:          id.RetailerID,
		URL:                 rawURL,
	})
	if err != nil {
		// url matching is committed, it stays pending until resolved by other means
		s.logger.Error().
			Err(err).
			Str("manualUrlMatchingId", matchingID.String()).
			Msg("can't send resolve url command")
	}

	return nil
}

func validateTaskID(id models.MatchingTaskID) error {
	if id.BrandProductID == uuid.Nil || id.RetailerID == uuid.Nil {
		return fmt.Errorf("%w: matching task needs brand product and retailer", platform.ErrValidation)
	}
	return nil
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: invalid url: %w", platform.ErrValidation, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: url %q must be absolute http(s) url", platform.ErrValidation, rawURL)
	}
	return nil
}
