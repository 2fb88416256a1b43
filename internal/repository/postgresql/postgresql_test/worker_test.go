package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blazecore/payroll-backend-go/internal/domain/attendance"
	"github.com/blazecore/payroll-backend-go/internal/domain/holiday"
	"github.com/blazecore/payroll-backend-go/internal/domain/worker"
	"github.com/blazecore/payroll-backend-go/internal/pkg/database"
	"github.com/blazecore/payroll-backend-go/internal/repository/postgresql"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
)

// testDatabase connects once per run and skips when TEST_DATABASE_URL is
// not set, so the suite stays runnable without a database.
func testDatabase(t *testing.T) *database.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDBOnce.Do(func() {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn, 1, 5)
		if err != nil {
			t.Fatal("Failed to connect to test database: " + err.Error())
		}
		if err := postgresql.Migrate(context.Background(), testDB); err != nil {
			t.Fatal("Failed to migrate test database: " + err.Error())
		}
	})
	return testDB
}

func truncateTables(t *testing.T, db *database.DB) {
	ctx := context.Background()
	for _, table := range []string{"attendance", "advances", "holidays", "workers"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createTestWorker(t *testing.T, repo worker.WorkerRepository, name string) worker.Worker {
	w := worker.Worker{
		Name:      name,
		DailyWage: decimal.NewFromInt(600),
		Phone:     "9876543210",
	}
	created, err := repo.Create(context.Background(), w)
	require.NoError(t, err)
	return created
}

func TestWorkerRepositoryCreateAndGet(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	repo := postgresql.NewWorkerRepository(db)
	ctx := context.Background()

	created := createTestWorker(t, repo, "Ravi")
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", got.Name)
	assert.True(t, decimal.NewFromInt(600).Equal(got.DailyWage))
}

func TestWorkerRepositoryGetByIDNotFound(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	repo := postgresql.NewWorkerRepository(db)

	_, err := repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestWorkerRepositoryExistsByNameCaseInsensitive(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	repo := postgresql.NewWorkerRepository(db)
	ctx := context.Background()

	created := createTestWorker(t, repo, "Ravi")

	exists, err := repo.ExistsByName(ctx, "RAVI", "")
	require.NoError(t, err)
	assert.True(t, exists)

	// The worker's own row is excluded when checking a rename.
	exists, err = repo.ExistsByName(ctx, "ravi", created.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWorkerRepositoryUpdate(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	repo := postgresql.NewWorkerRepository(db)
	ctx := context.Background()

	created := createTestWorker(t, repo, "Ravi")
	created.Name = "Ravi Kumar"
	created.DailyWage = decimal.NewFromInt(700)

	require.NoError(t, repo.Update(ctx, created))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", got.Name)
	assert.True(t, decimal.NewFromInt(700).Equal(got.DailyWage))
}

func TestWorkerRepositoryDeleteCascades(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	workerRepo := postgresql.NewWorkerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	ctx := context.Background()

	created := createTestWorker(t, workerRepo, "Ravi")
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	err := attendanceRepo.Upsert(ctx, created.ID, date, attendance.StatusPresent)
	require.NoError(t, err)

	require.NoError(t, workerRepo.Delete(ctx, created.ID))

	records, err := attendanceRepo.ListMonth(ctx, created.ID, 2025, 6)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAttendanceRepositoryUpsertOverwrites(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	workerRepo := postgresql.NewWorkerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	ctx := context.Background()

	created := createTestWorker(t, workerRepo, "Ravi")
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, attendanceRepo.Upsert(ctx, created.ID, date, attendance.StatusPresent))
	require.NoError(t, attendanceRepo.Upsert(ctx, created.ID, date, attendance.StatusHalfDay))

	records, err := attendanceRepo.ListMonth(ctx, created.ID, 2025, 6)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusHalfDay, records[0].Status)
}

func TestWorkerRepositoryMalformedID(t *testing.T) {
	// The uuid guard fires before any query, so no database is needed.
	repo := postgresql.NewWorkerRepository(nil)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "abc")
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)

	err = repo.Update(ctx, worker.Worker{ID: "abc", Name: "Ravi"})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)

	err = repo.Delete(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestHolidayRepositoryMalformedID(t *testing.T) {
	repo := postgresql.NewHolidayRepository(nil)
	ctx := context.Background()

	err := repo.Delete(ctx, "abc")
	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
}

func TestHolidayRepositoryDuplicateDateNotOverwritten(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	repo := postgresql.NewHolidayRepository(db)
	ctx := context.Background()

	date := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	first, err := repo.Create(ctx, holiday.Holiday{
		Date: date,
		Name: "Independence Day",
		Type: holiday.TypeManual,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, holiday.Holiday{
		Date: date,
		Name: "Factory Shutdown",
		Type: holiday.TypeManual,
	})
	assert.ErrorIs(t, err, holiday.ErrHolidayExists)

	got, err := repo.GetByDate(ctx, date)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Independence Day", got.Name)
}

func TestWorkerRepositoryCreateDuplicateName(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	repo := postgresql.NewWorkerRepository(db)
	ctx := context.Background()

	createTestWorker(t, repo, "Ravi")

	// Straight to the repository, the way a racing request that passed
	// the service name check would arrive.
	_, err := repo.Create(ctx, worker.Worker{
		Name:      "ravi",
		DailyWage: decimal.NewFromInt(500),
	})
	assert.ErrorIs(t, err, worker.ErrWorkerNameExists)
}
