package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	deliverycontext "khitma/internal/delivery/context"
	"khitma/internal/domain/entity"
	"khitma/internal/domain/repository"
	"khitma/internal/errors"
	"khitma/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type verseService struct {
	verseRepo      repository.VerseRepository
	assignmentRepo repository.AssignmentRepository
	txManager      repository.TransactionManager
	logger         *slog.Logger
	pick           func(n int) int
}

// VerseServiceParams holds dependencies for VerseService, injected by Fx.
type VerseServiceParams struct {
	fx.In

	VerseRepo      repository.VerseRepository
	AssignmentRepo repository.AssignmentRepository
	TxManager      repository.TransactionManager
	Logger         *slog.Logger
}

// NewVerseService creates the verse assignment engine.
func NewVerseService(params VerseServiceParams) usecase.VerseUsecase {
	return &verseService{
		verseRepo:      params.VerseRepo,
		assignmentRepo: params.AssignmentRepo,
		txManager:      params.TxManager,
		logger:         params.Logger,
		pick:           rand.IntN,
	}
}

func (s *verseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// AssignIfMissing picks a verse the user has not seen yet. When every active verse
// has been seen the user's history is wiped and the cycle starts over.
func (s *verseService) AssignIfMissing(ctx context.Context, userID uuid.UUID, localDate time.Time) (*entity.VerseAssignment, error) {
	existing, err := s.assignmentRepo.FindAssignment(ctx, userID, localDate)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrAssignmentNotFound) {
		return nil, errors.Wrap(err, "failed to find assignment")
	}

	var assignment *entity.VerseAssignment
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var txErr error
		assignment, txErr = s.assignInTx(ctx, factory, userID, localDate)

		return txErr
	})
	if err != nil {
		return nil, err
	}

	return assignment, nil
}

func (s *verseService) assignInTx(
	ctx context.Context,
	factory repository.RepositoryFactory,
	userID uuid.UUID,
	localDate time.Time,
) (*entity.VerseAssignment, error) {
	verses := factory.NewVerseRepository()
	assignments := factory.NewAssignmentRepository()

	active, err := verses.FindActiveVerseIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active verses")
	}
	if len(active) == 0 {
		return nil, usecase.ErrNoActiveVerses
	}

	seen, err := assignments.FindSeenVerseIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find seen verses")
	}

	remaining := unseenVerses(active, seen)
	if len(remaining) == 0 {
		deleted, err := assignments.DeleteAssignmentsByUser(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to reset verse cycle")
		}
		s.log(ctx).Info("Verse cycle completed, history reset",
			slog.String("user_id", userID.String()),
			slog.Int64("deleted", deleted),
		)
		remaining = active
	}

	candidate := &entity.VerseAssignment{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    userID,
		VerseID:   remaining[s.pick(len(remaining))],
		ShownDate: localDate,
		CreatedAt: time.Now(),
	}

	created, err := assignments.CreateAssignment(ctx, candidate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create assignment")
	}
	if created {
		return candidate, nil
	}

	// A concurrent run assigned first; its row wins.
	winner, err := assignments.FindAssignment(ctx, userID, localDate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read concurrent assignment")
	}

	return winner, nil
}

func unseenVerses(active, seen []uuid.UUID) []uuid.UUID {
	seenSet := make(map[uuid.UUID]struct{}, len(seen))
	for _, id := range seen {
		seenSet[id] = struct{}{}
	}

	remaining := make([]uuid.UUID, 0, len(active))
	for _, id := range active {
		if _, ok := seenSet[id]; !ok {
			remaining = append(remaining, id)
		}
	}

	return remaining
}

// AssignedVerse returns the pre-assigned verse. Deactivated verses count as unassigned.
func (s *verseService) AssignedVerse(ctx context.Context, userID uuid.UUID, localDate time.Time) (*entity.Verse, error) {
	assignment, err := s.assignmentRepo.FindAssignment(ctx, userID, localDate)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, usecase.ErrNoVerseAssigned
		}

		return nil, errors.Wrap(err, "failed to find assignment")
	}

	verse, err := s.verseRepo.FindVerseByID(ctx, assignment.VerseID)
	if err != nil {
		if errors.Is(err, repository.ErrVerseNotFound) {
			return nil, usecase.ErrNoVerseAssigned
		}

		return nil, errors.Wrap(err, "failed to find verse")
	}
	if !verse.IsActive {
		return nil, usecase.ErrNoVerseAssigned
	}

	return verse, nil
}

// TodayVerse is the read path of the app: it assigns on demand.
func (s *verseService) TodayVerse(ctx context.Context, userID uuid.UUID, localDate time.Time) (*entity.Verse, error) {
	assignment, err := s.AssignIfMissing(ctx, userID, localDate)
	if err != nil {
		return nil, err
	}

	verse, err := s.verseRepo.FindVerseByID(ctx, assignment.VerseID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find verse")
	}

	return verse, nil
}
