package advance

import (
	"context"
	"time"

	"github.com/blazecore/payroll-backend-go/internal/config"
	"github.com/blazecore/payroll-backend-go/internal/domain/advance"
	"github.com/blazecore/payroll-backend-go/internal/domain/worker"
	"github.com/blazecore/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AdvanceServiceImpl struct {
	advanceRepo advance.AdvanceRepository
	workerRepo  worker.WorkerRepository
	cfg         config.AdvanceConfig
}

func NewAdvanceService(
	advanceRepo advance.AdvanceRepository,
	workerRepo worker.WorkerRepository,
	cfg config.AdvanceConfig,
) advance.AdvanceService {
	return &AdvanceServiceImpl{
		advanceRepo: advanceRepo,
		workerRepo:  workerRepo,
		cfg:         cfg,
	}
}

// Give implements advance.AdvanceService.
func (s *AdvanceServiceImpl) Give(ctx context.Context, req advance.GiveAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	if req.Amount.GreaterThan(s.cfg.PerTransactionCeiling) {
		return advance.AdvanceResponse{}, advance.ErrOverTransactionCeiling
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	if err := s.checkMonthlyCeiling(ctx, w, req.Amount, date); err != nil {
		return advance.AdvanceResponse{}, err
	}

	created, err := s.advanceRepo.Create(ctx, advance.Advance{
		WorkerID: w.ID,
		Amount:   req.Amount,
		Date:     date,
		Note:     req.Note,
	})
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return newAdvanceResponse(created), nil
}

// checkMonthlyCeiling applies the configured rolling monthly policy: a flat
// per-month cap, a cap derived from the worker's theoretical full-month
// wage, or no cap at all.
func (s *AdvanceServiceImpl) checkMonthlyCeiling(ctx context.Context, w worker.Worker, amount decimal.Decimal, date time.Time) error {
	if s.cfg.MonthlyPolicy == config.MonthlyPolicyNone {
		return nil
	}

	year, month := date.Year(), int(date.Month())
	current, err := s.advanceRepo.SumMonth(ctx, w.ID, year, month)
	if err != nil {
		return err
	}

	ceiling := s.cfg.MonthlyCeiling
	if s.cfg.MonthlyPolicy == config.MonthlyPolicyWage {
		days := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
		ceiling = w.DailyWage.Mul(decimal.NewFromInt(int64(days)))
	}

	if current.Add(amount).GreaterThan(ceiling) {
		return advance.ErrOverMonthlyCeiling
	}

	return nil
}

// GetMonth implements advance.AdvanceService.
func (s *AdvanceServiceImpl) GetMonth(ctx context.Context, filter advance.MonthFilter) ([]advance.AdvanceResponse, error) {
	if _, err := s.workerRepo.GetByID(ctx, filter.WorkerID); err != nil {
		return nil, err
	}

	advances, err := s.advanceRepo.ListMonth(ctx, filter.WorkerID, filter.Year, filter.Month)
	if err != nil {
		return nil, err
	}

	responses := make([]advance.AdvanceResponse, 0, len(advances))
	for _, a := range advances {
		responses = append(responses, newAdvanceResponse(a))
	}

	return responses, nil
}

func newAdvanceResponse(a advance.Advance) advance.AdvanceResponse {
	return advance.AdvanceResponse{
		ID:     a.ID,
		Amount: a.Amount,
		Date:   a.Date.Format("2006-01-02"),
		Note:   a.Note,
		Reason: a.Note,
	}
}
