package payslip

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go-paie/internal/bonus"
	"go-paie/internal/contract"
	contracterrors "go-paie/internal/contract/errors"
	"go-paie/internal/employee"
	employeeerrors "go-paie/internal/employee/errors"
	"go-paie/internal/events"
	"go-paie/internal/messaging/kafka"
	"go-paie/internal/paycalc"
	"go-paie/internal/payrollparam"
	paysliperrors "go-paie/internal/payslip/errors"
	"go-paie/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ReferenceData groups the read-only sources a calculation draws on.
type ReferenceData struct {
	Employees employee.Repository
	Contracts contract.Repository
	Bonuses   bonus.Repository
	Params    payrollparam.Provider
}

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	GeneratePayslip(ctx context.Context, employeeID string, month, year int) (bool, error)
	GeneratePayslipsForAllEmployees(ctx context.Context, month, year int) (BatchSummary, error)
	GeneratePayslipsByEmail(ctx context.Context, email string, month, year int) (bool, error)
	RequestBatch(ctx context.Context, actorID string, req BatchAsyncRequest) (BatchAcceptedResponse, error)
	Simulate(ctx context.Context, req SimulateRequest) (SimulationResponse, error)
	GetAll(ctx context.Context, month, year int) ([]PayslipResponse, error)
	GetByID(ctx context.Context, id string) (PayslipResponse, error)
	GetBreakdown(ctx context.Context, id string) (BreakdownResponse, error)
	GetBreakdownByPeriod(ctx context.Context, employeeID string, month, year int) (BreakdownResponse, error)
	RenderPDF(ctx context.Context, id string) ([]byte, string, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	refs      ReferenceData
	outbox    kafka.OutboxRepository
	engine    *paycalc.Engine
	simulator *paycalc.Engine
	workers   int
	logger    *zap.Logger
}

// NewService wires the payslip assembler. outbox may be nil, in which case
// no events are written and RequestBatch is unavailable. workers bounds the
// batch fan-out; anything below 1 runs sequentially.
func NewService(
	db *sql.DB,
	repo Repository,
	refs ReferenceData,
	outbox kafka.OutboxRepository,
	engine *paycalc.Engine,
	workers int,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	if engine == nil {
		engine = paycalc.NewEngine(paycalc.StandardDefaults())
	}
	if workers < 1 {
		workers = 1
	}
	return &service{
		db:        db,
		repo:      repo,
		refs:      refs,
		outbox:    outbox,
		engine:    engine,
		simulator: paycalc.NewEngine(paycalc.SimulationDefaults()),
		workers:   workers,
		logger:    l,
	}
}

func (s *service) GeneratePayslip(ctx context.Context, employeeID string, month, year int) (bool, error) {
	period, err := newPeriod(month, year)
	if err != nil {
		return false, err
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return false, paysliperrors.ErrInvalidEmployeeID
	}

	empl, err := s.refs.Employees.FindByID(ctx, employeeID)
	if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
		s.logger.Warn("payslip skipped, employee not found",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("employee_id", employeeID),
			zap.String("period", period.String()),
		)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return s.generate(ctx, *empl, period)
}

func (s *service) GeneratePayslipsByEmail(ctx context.Context, email string, month, year int) (bool, error) {
	period, err := newPeriod(month, year)
	if err != nil {
		return false, err
	}

	empl, err := s.refs.Employees.FindByEmail(ctx, email)
	if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
		s.logger.Warn("payslip skipped, no employee with email",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("email", email),
			zap.String("period", period.String()),
		)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return s.generate(ctx, *empl, period)
}

// GeneratePayslipsForAllEmployees fans out over ACTIVE employees. Skips are
// counted as failed; the first infrastructure error cancels the remaining
// work and is returned with the partial summary.
func (s *service) GeneratePayslipsForAllEmployees(ctx context.Context, month, year int) (BatchSummary, error) {
	period, err := newPeriod(month, year)
	if err != nil {
		return BatchSummary{}, err
	}

	rid := contextutil.GetRequestID(ctx)
	empls, err := s.refs.Employees.FindAllActive(ctx)
	if err != nil {
		s.logger.Error("batch list active employees failed", zap.String("request_id", rid), zap.Error(err))
		return BatchSummary{}, err
	}

	s.logger.Info("payslip batch started",
		zap.String("request_id", rid),
		zap.String("period", period.String()),
		zap.Int("employees", len(empls)),
		zap.Int("workers", s.workers),
	)

	var succeeded, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, empl := range empls {
		empl := empl
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ok, err := s.generate(gctx, empl, period)
			if err != nil {
				return fmt.Errorf("employee %s: %w", empl.ID, err)
			}
			if ok {
				succeeded.Add(1)
			} else {
				failed.Add(1)
			}
			return nil
		})
	}

	werr := g.Wait()
	summary := BatchSummary{
		Total:     len(empls),
		Succeeded: int(succeeded.Load()),
		Failed:    int(failed.Load()),
	}
	if werr != nil {
		s.logger.Error("payslip batch aborted",
			zap.String("request_id", rid),
			zap.String("period", period.String()),
			zap.Int("succeeded", summary.Succeeded),
			zap.Int("failed", summary.Failed),
			zap.Error(werr),
		)
		return summary, werr
	}

	s.logger.Info("payslip batch finished",
		zap.String("request_id", rid),
		zap.String("period", period.String()),
		zap.Int("total", summary.Total),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

func (s *service) RequestBatch(ctx context.Context, actorID string, req BatchAsyncRequest) (BatchAcceptedResponse, error) {
	if s.outbox == nil {
		return BatchAcceptedResponse{}, paysliperrors.ErrAsyncUnavailable
	}
	if req.Month == nil {
		return BatchAcceptedResponse{}, paysliperrors.ErrInvalidPeriod
	}
	period, err := newPeriod(*req.Month, req.Year)
	if err != nil {
		return BatchAcceptedResponse{}, err
	}
	if req.EmployeeID != "" && req.Email != "" {
		return BatchAcceptedResponse{}, paysliperrors.ErrAmbiguousTarget
	}

	rid := contextutil.GetRequestID(ctx)
	if rid == "" {
		rid = uuid.NewString()
	}

	aggregateID := period.String()
	if req.EmployeeID != "" {
		aggregateID = req.EmployeeID
	}

	event, err := kafka.NewOutboxEvent(
		events.PayslipBatchRequestedTopic,
		events.PayslipBatchRequestedType,
		kafka.AggregatePayslipBatch,
		aggregateID,
		rid,
		events.PayslipBatchRequestedEvent{
			EventType:   events.PayslipBatchRequestedType,
			Month:       period.Month,
			Year:        period.Year,
			EmployeeID:  req.EmployeeID,
			Email:       req.Email,
			RequestedBy: actorID,
			RequestID:   rid,
			OccurredAt:  time.Now().UTC(),
		},
	)
	if err != nil {
		return BatchAcceptedResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("request batch begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return BatchAcceptedResponse{}, err
	}
	defer tx.Rollback()

	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("request batch enqueue failed", zap.String("request_id", rid), zap.Error(err))
		return BatchAcceptedResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return BatchAcceptedResponse{}, err
	}

	s.logger.Info("payslip batch queued",
		zap.String("request_id", rid),
		zap.String("event_id", event.ID),
		zap.String("period", period.String()),
		zap.String("requested_by", actorID),
	)

	return BatchAcceptedResponse{
		RequestID: rid,
		EventID:   event.ID,
		Month:     period.Month,
		Year:      period.Year,
		Status:    "QUEUED",
	}, nil
}

// Simulate prices a payslip with the simulation defaults and persists
// nothing.
func (s *service) Simulate(ctx context.Context, req SimulateRequest) (SimulationResponse, error) {
	if req.Month == nil {
		return SimulationResponse{}, paysliperrors.ErrInvalidPeriod
	}
	period, err := newPeriod(*req.Month, req.Year)
	if err != nil {
		return SimulationResponse{}, err
	}

	var (
		result paycalc.Result
		resp   PayslipResponse
	)

	if req.EmployeeID != "" {
		if _, err := uuid.Parse(req.EmployeeID); err != nil {
			return SimulationResponse{}, paysliperrors.ErrInvalidEmployeeID
		}
		empl, err := s.refs.Employees.FindByID(ctx, req.EmployeeID)
		if err != nil {
			return SimulationResponse{}, err
		}
		c, err := s.refs.Contracts.FindActiveByEmployee(ctx, req.EmployeeID)
		if err != nil {
			return SimulationResponse{}, err
		}
		result, err = s.compute(ctx, s.simulator, *empl, *c, period)
		if err != nil {
			return SimulationResponse{}, err
		}
		resp = toResponse(*newPayslip(empl.ID, period, result))
		resp.ID = ""
		resp.EmployeeName = empl.FullName()
	} else {
		in, err := adHocInput(req)
		if err != nil {
			return SimulationResponse{}, err
		}
		snap, err := s.refs.Params.Snapshot(ctx, period.FirstDay())
		if err != nil {
			return SimulationResponse{}, err
		}
		in.Parameters = snap.Parameters
		in.Brackets = snap.Brackets
		result = s.simulator.Compute(in)
		resp = toResponse(*newPayslip(uuid.Nil, period, result))
		resp.ID = ""
		resp.EmployeeID = ""
	}
	resp.Status = "SIMULATION"

	return SimulationResponse{
		Payslip:   resp,
		Breakdown: toBreakdownLines(paycalc.Breakdown(result)),
	}, nil
}

func (s *service) GetAll(ctx context.Context, month, year int) ([]PayslipResponse, error) {
	if _, err := newPeriod(month, year); err != nil {
		return nil, err
	}

	payslips, err := s.repo.FindAllByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(payslips), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayslipResponse, error) {
	p, err := s.findByID(ctx, id)
	if err != nil {
		return PayslipResponse{}, err
	}
	return toResponse(*p), nil
}

func (s *service) GetBreakdown(ctx context.Context, id string) (BreakdownResponse, error) {
	p, err := s.findByID(ctx, id)
	if err != nil {
		return BreakdownResponse{}, err
	}
	return toBreakdown(*p), nil
}

func (s *service) GetBreakdownByPeriod(ctx context.Context, employeeID string, month, year int) (BreakdownResponse, error) {
	if _, err := newPeriod(month, year); err != nil {
		return BreakdownResponse{}, err
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return BreakdownResponse{}, paysliperrors.ErrInvalidEmployeeID
	}

	p, err := s.repo.FindByEmployeeAndPeriod(ctx, employeeID, month, year)
	if err != nil {
		return BreakdownResponse{}, err
	}
	return toBreakdown(*p), nil
}

func (s *service) RenderPDF(ctx context.Context, id string) ([]byte, string, error) {
	p, err := s.findByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	doc, err := renderPayslipPDF(*p)
	if err != nil {
		s.logger.Error("render payslip pdf failed", zap.String("payslip_id", id), zap.Error(err))
		return nil, "", err
	}

	return doc, pdfFilename(*p), nil
}

func (s *service) findByID(ctx context.Context, id string) (*Payslip, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, paysliperrors.ErrInvalidPayslipID
	}
	return s.repo.FindByID(ctx, id)
}

// generate computes and stores one payslip. Business skips return false
// with a nil error; anything else is an infrastructure failure.
func (s *service) generate(ctx context.Context, empl employee.Employee, period paycalc.Period) (bool, error) {
	rid := contextutil.GetRequestID(ctx)
	log := s.logger.With(
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("period", period.String()),
	)

	c, err := s.refs.Contracts.FindActiveByEmployee(ctx, empl.ID.String())
	if errors.Is(err, contracterrors.ErrNoActiveContract) {
		log.Warn("payslip skipped, no running contract")
		return false, nil
	}
	if err != nil {
		log.Error("load contract failed", zap.Error(err))
		return false, err
	}

	result, err := s.compute(ctx, s.engine, empl, *c, period)
	if err != nil {
		log.Error("load reference data failed", zap.Error(err))
		return false, err
	}

	p := newPayslip(empl.ID, period, result)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("generate payslip begin tx failed", zap.Error(err))
		return false, err
	}
	defer tx.Rollback()

	written, err := s.repo.WithTx(tx).Upsert(ctx, p)
	if err != nil {
		log.Error("upsert payslip failed", zap.Error(err))
		return false, err
	}
	if !written {
		log.Warn("payslip skipped, period already past DRAFT")
		return false, nil
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(
			events.PayslipGeneratedTopic,
			events.PayslipGeneratedType,
			kafka.AggregatePayslip,
			p.ID.String(),
			rid,
			events.PayslipGeneratedEvent{
				EventType:   events.PayslipGeneratedType,
				PayslipID:   p.ID.String(),
				EmployeeID:  empl.ID.String(),
				Month:       period.Month,
				Year:        period.Year,
				GrossSalary: p.GrossSalary.StringFixed(2),
				NetSalary:   p.NetSalary.StringFixed(2),
				TotalCost:   p.TotalCost.StringFixed(2),
				OccurredAt:  time.Now().UTC(),
			},
		)
		if err != nil {
			return false, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("enqueue payslip event failed", zap.Error(err))
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("generate payslip commit failed", zap.Error(err))
		return false, err
	}

	log.Info("payslip generated",
		zap.String("payslip_id", p.ID.String()),
		zap.String("gross_salary", p.GrossSalary.String()),
		zap.String("net_salary", p.NetSalary.String()),
	)
	return true, nil
}

func (s *service) compute(
	ctx context.Context,
	engine *paycalc.Engine,
	empl employee.Employee,
	c contract.Contract,
	period paycalc.Period,
) (paycalc.Result, error) {
	on := period.FirstDay()

	snap, err := s.refs.Params.Snapshot(ctx, on)
	if err != nil {
		return paycalc.Result{}, err
	}

	assignments, err := s.refs.Bonuses.FindMonthlyByEmployee(ctx, empl.ID.String(), on)
	if err != nil {
		return paycalc.Result{}, err
	}

	return engine.Compute(paycalc.Input{
		BaseWage:         c.Wage,
		CNASScheme:       c.CNASScheme,
		FiscalScheme:     c.FiscalScheme,
		CNASContribution: empl.CNASContribution,
		Bonuses:          paycalc.ResolveBonuses(bonus.ToCalc(assignments), c.Wage, on),
		Parameters:       snap.Parameters,
		Brackets:         snap.Brackets,
	}), nil
}

func adHocInput(req SimulateRequest) (paycalc.Input, error) {
	if req.Wage == nil || req.Wage.IsNegative() || req.CNASScheme == "" || req.FiscalScheme == "" {
		return paycalc.Input{}, paysliperrors.ErrInvalidSimulation
	}

	subject := true
	if req.CNASContribution != nil {
		subject = *req.CNASContribution
	}

	bonuses := make([]paycalc.ResolvedBonus, 0, len(req.Bonuses))
	for _, b := range req.Bonuses {
		bonuses = append(bonuses, paycalc.ResolvedBonus{Name: b.Name, Amount: b.Amount})
	}

	return paycalc.Input{
		BaseWage:         *req.Wage,
		CNASScheme:       paycalc.CNASScheme(req.CNASScheme),
		FiscalScheme:     paycalc.FiscalScheme(req.FiscalScheme),
		CNASContribution: subject,
		Bonuses:          bonuses,
	}, nil
}

func newPeriod(month, year int) (paycalc.Period, error) {
	period, err := paycalc.NewPeriod(month, year)
	if err != nil {
		return paycalc.Period{}, paysliperrors.ErrInvalidPeriod
	}
	return period, nil
}

func toResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:                         p.ID.String(),
		EmployeeID:                 p.EmployeeID.String(),
		EmployeeName:               p.Employee.FullName(),
		Month:                      p.Month,
		Year:                       p.Year,
		Period:                     p.Period().Label(),
		BaseSalary:                 p.BaseSalary,
		Bonuses:                    p.Bonuses,
		BonusLines:                 p.BonusLines.Data(),
		GrossSalary:                p.GrossSalary,
		AssietteCotisations:        p.AssietteCotisations,
		EmployeeContributions:      p.EmployeeContributions.Data(),
		TotalEmployeeContributions: p.TotalEmployeeContributions,
		TaxableSalary:              p.TaxableSalary,
		IncomeTax:                  p.IncomeTax,
		NetSalary:                  p.NetSalary,
		EmployerContributions:      p.EmployerContributions.Data(),
		TotalEmployerContributions: p.TotalEmployerContributions,
		TotalCost:                  p.TotalCost,
		Status:                     p.Status,
	}
	if resp.BonusLines == nil {
		resp.BonusLines = []BonusLine{}
	}

	if !p.CreatedAt.IsZero() {
		v := p.CreatedAt.Format(time.RFC3339)
		resp.CreatedAt = &v
	}
	if !p.UpdatedAt.IsZero() {
		v := p.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &v
	}

	return resp
}

func mapToListResponse(payslips []Payslip) []PayslipResponse {
	resp := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		resp[i] = toResponse(p)
	}
	return resp
}

func toBreakdown(p Payslip) BreakdownResponse {
	return BreakdownResponse{
		PayslipID:    p.ID.String(),
		EmployeeName: p.Employee.FullName(),
		Period:       p.Period().Label(),
		Lines:        toBreakdownLines(paycalc.Breakdown(p.Result())),
	}
}

func toBreakdownLines(lines []paycalc.Line) []BreakdownLine {
	out := make([]BreakdownLine, len(lines))
	for i, l := range lines {
		out[i] = BreakdownLine{
			Section:   string(l.Section),
			Label:     l.Label,
			Amount:    l.Amount,
			Formatted: l.Formatted(),
		}
	}
	return out
}

// ToLines converts breakdown lines back for console printing.
func ToLines(lines []BreakdownLine) []paycalc.Line {
	out := make([]paycalc.Line, len(lines))
	for i, l := range lines {
		out[i] = paycalc.Line{Section: paycalc.Section(l.Section), Label: l.Label, Amount: l.Amount}
	}
	return out
}
