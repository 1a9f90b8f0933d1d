package postgres

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"khitma/internal/domain/entity"
	domainerrors "khitma/internal/domain/errors"
	"khitma/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder captures the statements GORM renders in dry-run mode.
type sqlRecorder struct {
	mu   sync.Mutex
	stmt []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }
func (r *sqlRecorder) Info(context.Context, string, ...any)     {}
func (r *sqlRecorder) Warn(context.Context, string, ...any)     {}
func (r *sqlRecorder) Error(context.Context, string, ...any)    {}
func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.stmt = append(r.stmt, sql)
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.stmt, "no statement recorded")

	return r.stmt[len(r.stmt)-1]
}

func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	recorder := &sqlRecorder{}
	db, err := gorm.Open(pgdriver.Open("host=localhost user=khitma dbname=khitma sslmode=disable"), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 recorder,
	})
	require.NoError(t, err)

	return db, recorder
}

func TestJobLockRepository_Acquire_ConditionalUpsert(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewJobLockRepository(db)
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := repo.Acquire(context.Background(), &entity.JobLease{
		JobName:    "assign",
		Owner:      "01HRZ",
		AcquiredAt: now,
		ExpiresAt:  now.Add(5 * time.Minute),
	})
	require.NoError(t, err)

	sql := recorder.last(t)
	assert.Contains(t, sql, `INSERT INTO "job_locks"`)
	assert.Contains(t, sql, `ON CONFLICT ("job_name") DO UPDATE SET`)
	assert.Contains(t, sql, "WHERE job_locks.expires_at < EXCLUDED.acquired_at")
}

func TestJobLockRepository_Release_OwnerScoped(t *testing.T) {
	db, recorder := newDryRunDB(t)

	require.NoError(t, NewJobLockRepository(db).Release(context.Background(), "notify", "owner-1"))

	sql := recorder.last(t)
	assert.Contains(t, sql, `DELETE FROM "job_locks"`)
	assert.Contains(t, sql, "job_name = 'notify' AND owner = 'owner-1'")
}

func TestAssignmentRepository_CreateAssignment_DoNothingOnConflict(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewAssignmentRepository(db)

	created, err := repo.CreateAssignment(context.Background(), &entity.VerseAssignment{
		UserID:    uuid.Must(uuid.NewV7()),
		VerseID:   uuid.Must(uuid.NewV7()),
		ShownDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.False(t, created, "dry run affects no rows")

	sql := recorder.last(t)
	assert.Contains(t, sql, `INSERT INTO "verse_assignments"`)
	assert.Contains(t, sql, `ON CONFLICT ("user_id","shown_date") DO NOTHING`)
}

func TestNotificationRepository_CreateDailyNotification_DoNothingOnConflict(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewNotificationRepository(db)

	// A Riyadh-local date must be stored as that civil date.
	riyadh, err := time.LoadLocation("Asia/Riyadh")
	require.NoError(t, err)
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, riyadh)

	created, err := repo.CreateDailyNotification(context.Background(), &entity.AppNotification{
		ID:           uuid.Must(uuid.NewV7()),
		UserID:       uuid.Must(uuid.NewV7()),
		Type:         entity.NotificationTypeMotivational,
		Title:        "Motivational verse today",
		Body:         "body",
		DispatchDate: &date,
	})
	require.NoError(t, err)
	assert.False(t, created, "dry run affects no rows")

	sql := recorder.last(t)
	assert.Contains(t, sql, `INSERT INTO "app_notifications"`)
	assert.Contains(t, sql, `ON CONFLICT ("user_id","type","dispatch_date") DO NOTHING`)
	assert.Contains(t, sql, "2024-03-10")
}

func TestNotificationRepository_CreateDailyNotification_RequiresDate(t *testing.T) {
	db, _ := newDryRunDB(t)

	created, err := NewNotificationRepository(db).CreateDailyNotification(context.Background(), &entity.AppNotification{
		UserID: uuid.Must(uuid.NewV7()),
		Type:   entity.NotificationTypeIndividualReminder,
	})

	assert.False(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAssignmentRepository_FindAssignment_BindsCivilDate(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewAssignmentRepository(db)

	// 2024-03-10 in Riyadh is still 2024-03-09 21:00 in UTC; the date must not shift.
	riyadh, err := time.LoadLocation("Asia/Riyadh")
	require.NoError(t, err)
	local := time.Date(2024, 3, 10, 0, 0, 0, 0, riyadh)

	_, _ = repo.FindAssignment(context.Background(), uuid.Must(uuid.NewV7()), time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC))

	assert.Contains(t, recorder.last(t), "shown_date = '2024-03-10'")
}

func TestActivityRepository_RecordOpen_KeepsFirstOpenedAt(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewActivityRepository(db)

	activity, err := repo.RecordOpen(context.Background(), uuid.Must(uuid.NewV7()),
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 10, 6, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, activity.Opened)

	sql := recorder.last(t)
	assert.Contains(t, sql, `ON CONFLICT ("user_id","activity_date") DO UPDATE SET`)
	assert.Contains(t, sql, "COALESCE(daily_activities.first_opened_at, EXCLUDED.first_opened_at)")
}

func TestActivityRepository_RecordReading(t *testing.T) {
	db, recorder := newDryRunDB(t)

	activity, err := NewActivityRepository(db).RecordReading(context.Background(), uuid.Must(uuid.NewV7()),
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, activity.Reading)

	sql := recorder.last(t)
	assert.Contains(t, sql, `"reading"=true`)
	assert.NotContains(t, sql, "first_opened_at, EXCLUDED")
}

func TestDeviceRepository_UpsertDevice_MovesTokenToCaller(t *testing.T) {
	db, recorder := newDryRunDB(t)

	device := &entity.DeviceRegistration{
		UserID:      uuid.Must(uuid.NewV7()),
		DeviceToken: "ExponentPushToken[abc]",
		Platform:    entity.PlatformIOS,
		Timezone:    "Asia/Karachi",
	}
	require.NoError(t, NewDeviceRepository(db).UpsertDevice(context.Background(), device))

	sql := recorder.last(t)
	assert.Contains(t, sql, `ON CONFLICT ("device_token") DO UPDATE SET "user_id"="excluded"."user_id"`)
	assert.NotNil(t, device.LastSeenAt)
}

func TestDeviceRepository_EmptyInputsSkipQueries(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewDeviceRepository(db)

	removed, err := repo.DeleteDevicesByTokens(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, removed)

	devices, err := repo.FindDevicesByUsers(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, devices)

	assert.Empty(t, recorder.stmt)
}

func TestPreferenceRepository_SavePreference_WritesFalseFlags(t *testing.T) {
	db, recorder := newDryRunDB(t)
	hour := "07"

	preference := &entity.NotificationPreference{
		UserID:                        uuid.Must(uuid.NewV7()),
		AllowGroupNotifications:       true,
		PreferredPersonalReminderHour: &hour,
	}
	require.NoError(t, NewPreferenceRepository(db).SavePreference(context.Background(), preference))

	sql := recorder.last(t)
	assert.Contains(t, sql, `ON CONFLICT ("user_id") DO UPDATE SET`)
	assert.Contains(t, sql, `"allow_personal_reminders"="excluded"."allow_personal_reminders"`)
	insert := sql[:strings.Index(sql, "ON CONFLICT")]
	assert.Contains(t, insert, "allow_motivational_notifications")
}

func TestVerseRepository_UpsertVerses_KeyedBySurahAyah(t *testing.T) {
	db, recorder := newDryRunDB(t)

	_, err := NewVerseRepository(db).UpsertVerses(context.Background(), []*entity.Verse{
		{SurahName: "Al-Baqarah", SurahNumber: 2, AyahNumber: 286, ArabicText: "...", IsActive: false},
	})
	require.NoError(t, err)

	sql := recorder.last(t)
	assert.Contains(t, sql, `ON CONFLICT ("surah_number","ayah_number") DO UPDATE SET`)
	assert.Contains(t, sql, `"is_active"="excluded"."is_active"`)
}

func TestPracticeProgressRepository_JoinsKhitma(t *testing.T) {
	db, recorder := newDryRunDB(t)

	_, err := NewPracticeProgressRepository(db).FindUsersWithProgressOn(context.Background(),
		[]uuid.UUID{uuid.Must(uuid.NewV7())}, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	sql := recorder.last(t)
	assert.Contains(t, sql, progressJoin)
	assert.Contains(t, sql, "reading_date = '2024-03-10'")
}

func TestDateHelpers(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	assert.Equal(t, "2024-03-09", dateParam(time.Date(2024, 3, 10, 1, 0, 0, 0, tokyo)))

	scanned := time.Date(2024, 3, 10, 0, 0, 0, 0, tokyo)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), toLocalDate(scanned))
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "uniq_verse_assignment_user_date" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(assert.AnError))
}
