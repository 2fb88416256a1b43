package worker

import (
	"context"
	"strings"
	"time"

	"github.com/blazecore/payroll-backend-go/internal/domain/attendance"
	"github.com/blazecore/payroll-backend-go/internal/domain/worker"
	"github.com/blazecore/payroll-backend-go/internal/pkg/database"
	"github.com/blazecore/payroll-backend-go/internal/pkg/validator"
	"github.com/blazecore/payroll-backend-go/internal/repository/postgresql"
)

type WorkerServiceImpl struct {
	db             *database.DB
	workerRepo     worker.WorkerRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewWorkerService(
	db *database.DB,
	workerRepo worker.WorkerRepository,
	attendanceRepo attendance.AttendanceRepository,
) worker.WorkerService {
	return &WorkerServiceImpl{
		db:             db,
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Create implements worker.WorkerService.
func (s *WorkerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	name := strings.TrimSpace(req.Name)

	var created worker.Worker
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		exists, err := s.workerRepo.ExistsByName(txCtx, name, "")
		if err != nil {
			return err
		}
		if exists {
			return worker.ErrWorkerNameExists
		}

		w := worker.Worker{
			Name:      name,
			DailyWage: req.Wage,
			Phone:     strings.TrimSpace(req.Phone),
		}
		if !validator.IsEmpty(req.StartDate) {
			if d, ok := validator.IsValidDate(req.StartDate); ok {
				w.StartDate = &d
			}
		}

		created, err = s.workerRepo.Create(txCtx, w)
		return err
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return worker.NewWorkerResponse(created), nil
}

// Update implements worker.WorkerService.
func (s *WorkerServiceImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	name := strings.TrimSpace(req.Name)

	var updated worker.Worker
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		current, err := s.workerRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		exists, err := s.workerRepo.ExistsByName(txCtx, name, current.ID)
		if err != nil {
			return err
		}
		if exists {
			return worker.ErrWorkerNameExists
		}

		current.Name = name
		current.DailyWage = req.Wage
		if err := s.workerRepo.Update(txCtx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return worker.NewWorkerResponse(updated), nil
}

// Delete implements worker.WorkerService. Attendance and advance rows go
// with the worker; deleting an unknown id succeeds silently.
func (s *WorkerServiceImpl) Delete(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		return s.workerRepo.Delete(txCtx, id)
	})
}

// Get implements worker.WorkerService.
func (s *WorkerServiceImpl) Get(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.NewWorkerResponse(w), nil
}

// List implements worker.WorkerService.
func (s *WorkerServiceImpl) List(ctx context.Context) ([]worker.WorkerListItem, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	items := make([]worker.WorkerListItem, 0, len(workers))
	for _, w := range workers {
		records, err := s.attendanceRepo.ListMonth(ctx, w.ID, now.Year(), int(now.Month()))
		if err != nil {
			return nil, err
		}

		item := worker.WorkerListItem{WorkerResponse: worker.NewWorkerResponse(w)}
		for _, rec := range records {
			if rec.Status.CountsAsWorked() {
				item.AttendanceCount++
				if rec.Date.Format("2006-01-02") == today {
					item.PresentToday = true
				}
			}
		}
		items = append(items, item)
	}

	return items, nil
}
