package impl

import (
	"context"
	"testing"

	"khitma/internal/domain/entity"
	"khitma/internal/domain/repository"
	"khitma/internal/errors"
	mockRepo "khitma/internal/mocks/repository"
	"khitma/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type verseServiceFixtures struct {
	service        *verseService
	verseRepo      *mockRepo.MockVerseRepository
	assignmentRepo *mockRepo.MockAssignmentRepository
	txManager      *mockRepo.MockTransactionManager
	txVerses       *mockRepo.MockVerseRepository
	txAssignments  *mockRepo.MockAssignmentRepository
}

func createTestVerseService(t *testing.T) verseServiceFixtures {
	verseRepo := mockRepo.NewMockVerseRepository(t)
	assignmentRepo := mockRepo.NewMockAssignmentRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewVerseService(VerseServiceParams{
		VerseRepo:      verseRepo,
		AssignmentRepo: assignmentRepo,
		TxManager:      txManager,
		Logger:         newDiscardLogger(),
	}).(*verseService)
	service.pick = func(int) int { return 0 }

	return verseServiceFixtures{
		service:        service,
		verseRepo:      verseRepo,
		assignmentRepo: assignmentRepo,
		txManager:      txManager,
		txVerses:       mockRepo.NewMockVerseRepository(t),
		txAssignments:  mockRepo.NewMockAssignmentRepository(t),
	}
}

// expectTransaction runs the transaction body against the fixture's tx repositories.
func (f verseServiceFixtures) expectTransaction(t *testing.T) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewVerseRepository().Return(f.txVerses)
			factory.EXPECT().NewAssignmentRepository().Return(f.txAssignments)

			return fn(factory)
		})
}

func TestVerseService_AssignIfMissing_ExistingAssignment(t *testing.T) {
	fx := createTestVerseService(t)

	ctx := context.Background()
	userID := uuid.New()
	date := utcDate(2024, 3, 10)
	existing := &entity.VerseAssignment{ID: uuid.New(), UserID: userID, VerseID: uuid.New(), ShownDate: date}

	fx.assignmentRepo.EXPECT().FindAssignment(ctx, userID, date).Return(existing, nil)

	got, err := fx.service.AssignIfMissing(ctx, userID, date)

	require.NoError(t, err)
	assert.Same(t, existing, got)
}

func TestVerseService_AssignIfMissing_PicksUnseenVerse(t *testing.T) {
	fx := createTestVerseService(t)

	ctx := context.Background()
	userID := uuid.New()
	date := utcDate(2024, 3, 10)
	seen, unseen := uuid.New(), uuid.New()

	fx.assignmentRepo.EXPECT().FindAssignment(ctx, userID, date).Return(nil, repository.ErrAssignmentNotFound)
	fx.expectTransaction(t)
	fx.txVerses.EXPECT().FindActiveVerseIDs(ctx).Return([]uuid.UUID{seen, unseen}, nil)
	fx.txAssignments.EXPECT().FindSeenVerseIDs(ctx, userID).Return([]uuid.UUID{seen}, nil)
	fx.txAssignments.EXPECT().
		CreateAssignment(ctx, mock.AnythingOfType("*entity.VerseAssignment")).
		Return(true, nil)

	got, err := fx.service.AssignIfMissing(ctx, userID, date)

	require.NoError(t, err)
	assert.Equal(t, unseen, got.VerseID)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, date, got.ShownDate)
}

func TestVerseService_AssignIfMissing_ResetsCompletedCycle(t *testing.T) {
	fx := createTestVerseService(t)
	fx.service.pick = func(n int) int { return n - 1 }

	ctx := context.Background()
	userID := uuid.New()
	date := utcDate(2024, 3, 10)
	first, second := uuid.New(), uuid.New()

	fx.assignmentRepo.EXPECT().FindAssignment(ctx, userID, date).Return(nil, repository.ErrAssignmentNotFound)
	fx.expectTransaction(t)
	fx.txVerses.EXPECT().FindActiveVerseIDs(ctx).Return([]uuid.UUID{first, second}, nil)
	fx.txAssignments.EXPECT().FindSeenVerseIDs(ctx, userID).Return([]uuid.UUID{second, first}, nil)
	fx.txAssignments.EXPECT().DeleteAssignmentsByUser(ctx, userID).Return(int64(2), nil)
	fx.txAssignments.EXPECT().
		CreateAssignment(ctx, mock.AnythingOfType("*entity.VerseAssignment")).
		Return(true, nil)

	got, err := fx.service.AssignIfMissing(ctx, userID, date)

	require.NoError(t, err)
	assert.Equal(t, second, got.VerseID)
}

func TestVerseService_AssignIfMissing_ConcurrentWinnerKept(t *testing.T) {
	fx := createTestVerseService(t)

	ctx := context.Background()
	userID := uuid.New()
	date := utcDate(2024, 3, 10)
	verseID := uuid.New()
	winner := &entity.VerseAssignment{ID: uuid.New(), UserID: userID, VerseID: uuid.New(), ShownDate: date}

	fx.assignmentRepo.EXPECT().FindAssignment(ctx, userID, date).Return(nil, repository.ErrAssignmentNotFound)
	fx.expectTransaction(t)
	fx.txVerses.EXPECT().FindActiveVerseIDs(ctx).Return([]uuid.UUID{verseID}, nil)
	fx.txAssignments.EXPECT().FindSeenVerseIDs(ctx, userID).Return(nil, nil)
	fx.txAssignments.EXPECT().
		CreateAssignment(ctx, mock.AnythingOfType("*entity.VerseAssignment")).
		Return(false, nil)
	fx.txAssignments.EXPECT().FindAssignment(ctx, userID, date).Return(winner, nil)

	got, err := fx.service.AssignIfMissing(ctx, userID, date)

	require.NoError(t, err)
	assert.Same(t, winner, got)
}

func TestVerseService_AssignIfMissing_NoActiveVerses(t *testing.T) {
	fx := createTestVerseService(t)

	ctx := context.Background()
	userID := uuid.New()
	date := utcDate(2024, 3, 10)

	fx.assignmentRepo.EXPECT().FindAssignment(ctx, userID, date).Return(nil, repository.ErrAssignmentNotFound)
	fx.expectTransaction(t)
	fx.txVerses.EXPECT().FindActiveVerseIDs(ctx).Return(nil, nil)

	got, err := fx.service.AssignIfMissing(ctx, userID, date)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, usecase.ErrNoActiveVerses))
}

func TestVerseService_AssignIfMissing_LookupError(t *testing.T) {
	fx := createTestVerseService(t)

	ctx := context.Background()
	userID := uuid.New()
	date := utcDate(2024, 3, 10)

	fx.assignmentRepo.EXPECT().FindAssignment(ctx, userID, date).Return(nil, errors.New("database error"))

	got, err := fx.service.AssignIfMissing(ctx, userID, date)

	assert.Nil(t, got)
	assert.ErrorContains(t, err, "failed to find assignment")
}

func TestVerseService_AssignedVerse(t *testing.T) {
	userID := uuid.New()
	date := utcDate(2024, 3, 10)
	verseID := uuid.New()
	assignment := &entity.VerseAssignment{UserID: userID, VerseID: verseID, ShownDate: date}

	t.Run("returns the active verse", func(t *testing.T) {
		fx := createTestVerseService(t)
		ctx := context.Background()
		verse := &entity.Verse{ID: verseID, IsActive: true}

		fx.assignmentRepo.EXPECT().FindAssignment(ctx, userID, date).Return(assignment, nil)
		fx.verseRepo.EXPECT().FindVerseByID(ctx, verseID).Return(verse, nil)

		got, err := fx.service.AssignedVerse(ctx, userID, date)

		require.NoError(t, err)
		assert.Same(t, verse, got)
	})

	t.Run("missing assignment", func(t *testing.T) {
		fx := createTestVerseService(t)
		ctx := context.Background()

		fx.assignmentRepo.EXPECT().FindAssignment(ctx, userID, date).Return(nil, repository.ErrAssignmentNotFound)

		_, err := fx.service.AssignedVerse(ctx, userID, date)

		assert.ErrorIs(t, err, usecase.ErrNoVerseAssigned)
	})

	t.Run("deactivated verse counts as unassigned", func(t *testing.T) {
		fx := createTestVerseService(t)
		ctx := context.Background()

		fx.assignmentRepo.EXPECT().FindAssignment(ctx, userID, date).Return(assignment, nil)
		fx.verseRepo.EXPECT().FindVerseByID(ctx, verseID).Return(&entity.Verse{ID: verseID}, nil)

		_, err := fx.service.AssignedVerse(ctx, userID, date)

		assert.ErrorIs(t, err, usecase.ErrNoVerseAssigned)
	})
}

func TestVerseService_TodayVerse(t *testing.T) {
	fx := createTestVerseService(t)

	ctx := context.Background()
	userID := uuid.New()
	date := utcDate(2024, 3, 10)
	verse := &entity.Verse{ID: uuid.New(), IsActive: true}
	assignment := &entity.VerseAssignment{UserID: userID, VerseID: verse.ID, ShownDate: date}

	fx.assignmentRepo.EXPECT().FindAssignment(ctx, userID, date).Return(assignment, nil)
	fx.verseRepo.EXPECT().FindVerseByID(ctx, verse.ID).Return(verse, nil)

	got, err := fx.service.TodayVerse(ctx, userID, date)

	require.NoError(t, err)
	assert.Same(t, verse, got)
}

func TestUnseenVerses(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	assert.Equal(t, []uuid.UUID{b}, unseenVerses([]uuid.UUID{a, b, c}, []uuid.UUID{c, a}))
	assert.Empty(t, unseenVerses([]uuid.UUID{a}, []uuid.UUID{a}))
	assert.Equal(t, []uuid.UUID{a, b}, unseenVerses([]uuid.UUID{a, b}, nil))
}
