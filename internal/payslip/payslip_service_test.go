package payslip_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go-paie/internal/bonus"
	bonusMock "go-paie/internal/bonus/mock"
	"go-paie/internal/contract"
	contracterrors "go-paie/internal/contract/errors"
	contractMock "go-paie/internal/contract/mock"
	"go-paie/internal/employee"
	employeeerrors "go-paie/internal/employee/errors"
	employeeMock "go-paie/internal/employee/mock"
	"go-paie/internal/events"
	"go-paie/internal/messaging/kafka"
	"go-paie/internal/paycalc"
	"go-paie/internal/payrollparam"
	paramMock "go-paie/internal/payrollparam/mock"
	"go-paie/internal/payslip"
	paysliperrors "go-paie/internal/payslip/errors"
	"go-paie/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakePayslipRepository struct {
	mu                        sync.Mutex
	upserted                  []*payslip.Payslip
	upsertFn                  func(ctx context.Context, p *payslip.Payslip) (bool, error)
	findAllByPeriodFn         func(ctx context.Context, month, year int) ([]payslip.Payslip, error)
	findByIDFn                func(ctx context.Context, id string) (*payslip.Payslip, error)
	findByEmployeeAndPeriodFn func(ctx context.Context, employeeID string, month, year int) (*payslip.Payslip, error)
}

func (f *fakePayslipRepository) WithTx(tx *sql.Tx) payslip.Repository {
	return f
}

func (f *fakePayslipRepository) Upsert(ctx context.Context, p *payslip.Payslip) (bool, error) {
	f.mu.Lock()
	f.upserted = append(f.upserted, p)
	f.mu.Unlock()
	if f.upsertFn != nil {
		return f.upsertFn(ctx, p)
	}
	return true, nil
}

func (f *fakePayslipRepository) FindAllByPeriod(ctx context.Context, month, year int) ([]payslip.Payslip, error) {
	if f.findAllByPeriodFn != nil {
		return f.findAllByPeriodFn(ctx, month, year)
	}
	return nil, nil
}

func (f *fakePayslipRepository) FindByID(ctx context.Context, id string) (*payslip.Payslip, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, paysliperrors.ErrPayslipNotFound
}

func (f *fakePayslipRepository) FindByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*payslip.Payslip, error) {
	if f.findByEmployeeAndPeriodFn != nil {
		return f.findByEmployeeAndPeriodFn(ctx, employeeID, month, year)
	}
	return nil, paysliperrors.ErrPayslipNotFound
}

type fakeOutboxRepository struct {
	mu       sync.Mutex
	events   []kafka.OutboxEvent
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.mu.Lock()
	f.events = append(f.events, event)
	f.mu.Unlock()
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func intPtr(v int) *int {
	return &v
}

func assertDec(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "%s: want %s, got %s", field, want, got.String())
}

var january2025 = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func scenarioSnapshot() payrollparam.Snapshot {
	return payrollparam.Snapshot{
		Parameters: paycalc.Parameters{
			paycalc.CodePlafondCNAS:          dec("108000"),
			paycalc.CodeSSEmployee:           dec("9"),
			paycalc.CodeRetirementEmployee:   dec("9"),
			paycalc.CodeUnemploymentEmployee: dec("1.5"),
			paycalc.CodeSSEmployer:           dec("26"),
			paycalc.CodeRetirementEmployer:   dec("10"),
		},
		Brackets: []paycalc.TaxBracket{
			{Min: dec("0"), Max: decPtr("30000"), Rate: dec("0"), FixedAmount: dec("0"), Ordre: 1},
			{Min: dec("30000"), Max: decPtr("120000"), Rate: dec("20"), FixedAmount: dec("0"), Ordre: 2},
			{Min: dec("120000"), Max: decPtr("360000"), Rate: dec("30"), FixedAmount: dec("18000"), Ordre: 3},
			{Min: dec("360000"), Rate: dec("35"), FixedAmount: dec("90000"), Ordre: 4},
		},
	}
}

func newEmployee(first string) employee.Employee {
	return employee.Employee{
		ID:               uuid.New(),
		FirstName:        first,
		LastName:         "Benali",
		Email:            first + "@example.dz",
		Status:           employee.StatusActive,
		CNASContribution: true,
	}
}

func runningContract(employeeID uuid.UUID) *contract.Contract {
	return &contract.Contract{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		Wage:         dec("100000"),
		CNASScheme:   paycalc.CNASCadre,
		FiscalScheme: paycalc.FiscalImposable,
		Status:       contract.StatusRunning,
		StartDate:    time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func monthlyBonuses(employeeID uuid.UUID) []bonus.Assignment {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return []bonus.Assignment{
		{EmployeeID: employeeID, Definition: bonus.Definition{Name: "Panier", Amount: decPtr("15000")}, Frequency: paycalc.FrequencyMonthly, StartDate: start},
		{EmployeeID: employeeID, Definition: bonus.Definition{Name: "Transport", Amount: decPtr("25000")}, Frequency: paycalc.FrequencyMonthly, StartDate: start},
	}
}

type fixture struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	employees *employeeMock.MockRepository
	contracts *contractMock.MockRepository
	bonuses   *bonusMock.MockRepository
	params    *paramMock.MockProvider
	repo      *fakePayslipRepository
	outbox    *fakeOutboxRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &fixture{
		db:        db,
		sqlMock:   mock,
		employees: employeeMock.NewMockRepository(ctrl),
		contracts: contractMock.NewMockRepository(ctrl),
		bonuses:   bonusMock.NewMockRepository(ctrl),
		params:    paramMock.NewMockProvider(ctrl),
		repo:      &fakePayslipRepository{},
		outbox:    &fakeOutboxRepository{},
	}
}

func (f *fixture) service(workers int) payslip.Service {
	return payslip.NewService(f.db, f.repo, payslip.ReferenceData{
		Employees: f.employees,
		Contracts: f.contracts,
		Bonuses:   f.bonuses,
		Params:    f.params,
	}, f.outbox, nil, workers, zap.NewNop())
}

func (f *fixture) expectCalculation(empl employee.Employee) {
	f.contracts.EXPECT().FindActiveByEmployee(gomock.Any(), empl.ID.String()).Return(runningContract(empl.ID), nil)
	f.params.EXPECT().Snapshot(gomock.Any(), january2025).Return(scenarioSnapshot(), nil)
	f.bonuses.EXPECT().FindMonthlyByEmployee(gomock.Any(), empl.ID.String(), january2025).Return(monthlyBonuses(empl.ID), nil)
}

func TestGeneratePayslip_StoresDraftAndEnqueuesEvent(t *testing.T) {
	f := newFixture(t)
	empl := newEmployee("Amina")

	f.employees.EXPECT().FindByID(gomock.Any(), empl.ID.String()).Return(&empl, nil)
	f.expectCalculation(empl)
	f.sqlMock.ExpectBegin()
	f.sqlMock.ExpectCommit()

	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ok, err := f.service(1).GeneratePayslip(ctx, empl.ID.String(), 0, 2025)

	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, f.repo.upserted, 1)

	p := f.repo.upserted[0]
	assert.Equal(t, empl.ID, p.EmployeeID)
	assert.Equal(t, 0, p.Month)
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, payslip.StatusDraft, p.Status)
	assertDec(t, "100000", p.BaseSalary, "base")
	assertDec(t, "40000", p.Bonuses, "bonuses")
	assert.Len(t, p.BonusLines.Data(), 2)
	assertDec(t, "140000", p.GrossSalary, "gross")
	assertDec(t, "108000", p.AssietteCotisations, "assiette")
	assertDec(t, "21060", p.TotalEmployeeContributions, "employee contributions")
	assertDec(t, "118940", p.TaxableSalary, "taxable")
	assertDec(t, "17788", p.IncomeTax, "irg")
	assertDec(t, "101152", p.NetSalary, "net")
	assertDec(t, "38880", p.TotalEmployerContributions, "employer contributions")
	assertDec(t, "178880", p.TotalCost, "total cost")

	require.Len(t, f.outbox.events, 1)
	ev := f.outbox.events[0]
	assert.Equal(t, events.PayslipGeneratedTopic, ev.Topic)
	assert.Equal(t, kafka.AggregatePayslip, ev.AggregateType)
	assert.Equal(t, p.ID.String(), ev.AggregateID)
	assert.Equal(t, "rid-1", ev.RequestID)

	var payload events.PayslipGeneratedEvent
	require.NoError(t, json.Unmarshal(ev.Payload, &payload))
	assert.Equal(t, "101152.00", payload.NetSalary)
	assert.Equal(t, "140000.00", payload.GrossSalary)
	assert.Equal(t, empl.ID.String(), payload.EmployeeID)

	assert.NoError(t, f.sqlMock.ExpectationsWereMet())
}

func TestGeneratePayslip_RegenerationKeepsOneRow(t *testing.T) {
	f := newFixture(t)
	empl := newEmployee("Amina")

	type periodKey struct {
		employee    uuid.UUID
		month, year int
	}
	table := map[periodKey]payslip.Payslip{}
	f.repo.upsertFn = func(_ context.Context, p *payslip.Payslip) (bool, error) {
		key := periodKey{p.EmployeeID, p.Month, p.Year}
		if stored, ok := table[key]; ok {
			p.ID = stored.ID
		}
		table[key] = *p
		return true, nil
	}

	for i := 0; i < 2; i++ {
		f.employees.EXPECT().FindByID(gomock.Any(), empl.ID.String()).Return(&empl, nil)
		f.expectCalculation(empl)
		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectCommit()
	}

	svc := f.service(1)
	for i := 0; i < 2; i++ {
		ok, err := svc.GeneratePayslip(context.Background(), empl.ID.String(), 0, 2025)
		require.NoError(t, err)
		require.True(t, ok)
	}

	require.Len(t, table, 1)
	require.Len(t, f.repo.upserted, 2)
	first, second := *f.repo.upserted[0], *f.repo.upserted[1]
	assert.Equal(t, first.ID, second.ID, "second run keeps the stored id")
	first.ID, second.ID = uuid.Nil, uuid.Nil
	assert.Equal(t, first, second)

	require.Len(t, f.outbox.events, 2)
	assert.Equal(t, f.outbox.events[0].AggregateID, f.outbox.events[1].AggregateID)
	assert.NoError(t, f.sqlMock.ExpectationsWereMet())
}

func TestGeneratePayslip_RejectsBadInput(t *testing.T) {
	f := newFixture(t)
	svc := f.service(1)

	_, err := svc.GeneratePayslip(context.Background(), uuid.NewString(), 12, 2025)
	assert.True(t, errors.Is(err, paysliperrors.ErrInvalidPeriod))

	_, err = svc.GeneratePayslip(context.Background(), uuid.NewString(), -1, 2025)
	assert.True(t, errors.Is(err, paysliperrors.ErrInvalidPeriod))

	_, err = svc.GeneratePayslip(context.Background(), "not-a-uuid", 0, 2025)
	assert.True(t, errors.Is(err, paysliperrors.ErrInvalidEmployeeID))
}

func TestGeneratePayslip_Skips(t *testing.T) {
	t.Run("unknown employee", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.NewString()
		f.employees.EXPECT().FindByID(gomock.Any(), id).Return(nil, employeeerrors.ErrEmployeeNotFound)

		ok, err := f.service(1).GeneratePayslip(context.Background(), id, 0, 2025)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, f.repo.upserted)
	})

	t.Run("no running contract", func(t *testing.T) {
		f := newFixture(t)
		empl := newEmployee("Karim")
		f.employees.EXPECT().FindByID(gomock.Any(), empl.ID.String()).Return(&empl, nil)
		f.contracts.EXPECT().FindActiveByEmployee(gomock.Any(), empl.ID.String()).Return(nil, contracterrors.ErrNoActiveContract)

		ok, err := f.service(1).GeneratePayslip(context.Background(), empl.ID.String(), 0, 2025)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, f.repo.upserted)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("stored payslip is no longer a draft", func(t *testing.T) {
		f := newFixture(t)
		empl := newEmployee("Yasmine")
		f.employees.EXPECT().FindByID(gomock.Any(), empl.ID.String()).Return(&empl, nil)
		f.expectCalculation(empl)
		f.repo.upsertFn = func(ctx context.Context, p *payslip.Payslip) (bool, error) { return false, nil }
		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectRollback()

		ok, err := f.service(1).GeneratePayslip(context.Background(), empl.ID.String(), 0, 2025)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, f.outbox.events)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})
}

func TestGeneratePayslip_InfrastructureErrors(t *testing.T) {
	t.Run("reference data", func(t *testing.T) {
		f := newFixture(t)
		empl := newEmployee("Sofiane")
		boom := errors.New("redis and postgres both down")
		f.employees.EXPECT().FindByID(gomock.Any(), empl.ID.String()).Return(&empl, nil)
		f.contracts.EXPECT().FindActiveByEmployee(gomock.Any(), empl.ID.String()).Return(runningContract(empl.ID), nil)
		f.params.EXPECT().Snapshot(gomock.Any(), january2025).Return(payrollparam.Snapshot{}, boom)

		ok, err := f.service(1).GeneratePayslip(context.Background(), empl.ID.String(), 0, 2025)

		assert.ErrorIs(t, err, boom)
		assert.False(t, ok)
	})

	t.Run("outbox write rolls back the payslip", func(t *testing.T) {
		f := newFixture(t)
		empl := newEmployee("Nadia")
		boom := errors.New("outbox insert failed")
		f.employees.EXPECT().FindByID(gomock.Any(), empl.ID.String()).Return(&empl, nil)
		f.expectCalculation(empl)
		f.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error { return boom }
		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectRollback()

		ok, err := f.service(1).GeneratePayslip(context.Background(), empl.ID.String(), 0, 2025)

		assert.ErrorIs(t, err, boom)
		assert.False(t, ok)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})
}

func TestGeneratePayslipsByEmail(t *testing.T) {
	f := newFixture(t)
	empl := newEmployee("Lina")
	f.employees.EXPECT().FindByEmail(gomock.Any(), empl.Email).Return(&empl, nil)
	f.expectCalculation(empl)
	f.sqlMock.ExpectBegin()
	f.sqlMock.ExpectCommit()

	ok, err := f.service(1).GeneratePayslipsByEmail(context.Background(), empl.Email, 0, 2025)

	require.NoError(t, err)
	assert.True(t, ok)

	f.employees.EXPECT().FindByEmail(gomock.Any(), "nobody@example.dz").Return(nil, employeeerrors.ErrEmployeeNotFound)
	ok, err = f.service(1).GeneratePayslipsByEmail(context.Background(), "nobody@example.dz", 0, 2025)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGeneratePayslipsForAllEmployees_Summary(t *testing.T) {
	f := newFixture(t)
	paid := []employee.Employee{newEmployee("Amina"), newEmployee("Karim")}
	idle := newEmployee("Rachid")

	f.employees.EXPECT().FindAllActive(gomock.Any()).Return([]employee.Employee{paid[0], idle, paid[1]}, nil)
	for _, e := range paid {
		f.expectCalculation(e)
	}
	f.contracts.EXPECT().FindActiveByEmployee(gomock.Any(), idle.ID.String()).Return(nil, contracterrors.ErrNoActiveContract)
	f.sqlMock.ExpectBegin()
	f.sqlMock.ExpectCommit()
	f.sqlMock.ExpectBegin()
	f.sqlMock.ExpectCommit()

	summary, err := f.service(1).GeneratePayslipsForAllEmployees(context.Background(), 0, 2025)

	require.NoError(t, err)
	assert.Equal(t, payslip.BatchSummary{Total: 3, Succeeded: 2, Failed: 1}, summary)
	assert.Len(t, f.repo.upserted, 2)
	assert.Len(t, f.outbox.events, 2)
}

func TestGeneratePayslipsForAllEmployees_ConcurrentWorkers(t *testing.T) {
	f := newFixture(t)
	f.sqlMock.MatchExpectationsInOrder(false)

	var empls []employee.Employee
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		empls = append(empls, newEmployee(name))
	}
	f.employees.EXPECT().FindAllActive(gomock.Any()).Return(empls, nil)
	for _, e := range empls {
		f.expectCalculation(e)
		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectCommit()
	}

	summary, err := f.service(3).GeneratePayslipsForAllEmployees(context.Background(), 0, 2025)

	require.NoError(t, err)
	assert.Equal(t, 5, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	for _, p := range f.repo.upserted {
		assertDec(t, "101152", p.NetSalary, "net")
	}
}

func TestGeneratePayslipsForAllEmployees_AbortsOnInfrastructureError(t *testing.T) {
	f := newFixture(t)
	first, second := newEmployee("Amina"), newEmployee("Karim")
	boom := errors.New("connection reset")

	f.employees.EXPECT().FindAllActive(gomock.Any()).Return([]employee.Employee{first, second}, nil)
	f.contracts.EXPECT().FindActiveByEmployee(gomock.Any(), first.ID.String()).Return(nil, boom)

	summary, err := f.service(1).GeneratePayslipsForAllEmployees(context.Background(), 0, 2025)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 0, summary.Succeeded)
	assert.Empty(t, f.repo.upserted)
}

func TestGeneratePayslipsForAllEmployees_ListError(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("db down")
	f.employees.EXPECT().FindAllActive(gomock.Any()).Return(nil, boom)

	_, err := f.service(2).GeneratePayslipsForAllEmployees(context.Background(), 0, 2025)

	assert.ErrorIs(t, err, boom)
}

func TestRequestBatch(t *testing.T) {
	t.Run("queues an event in a transaction", func(t *testing.T) {
		f := newFixture(t)
		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectCommit()
		ctx := contextutil.WithRequestID(context.Background(), "rid-9")

		resp, err := f.service(1).RequestBatch(ctx, "user-1", payslip.BatchAsyncRequest{Month: intPtr(5), Year: 2025})

		require.NoError(t, err)
		assert.Equal(t, "rid-9", resp.RequestID)
		assert.Equal(t, "QUEUED", resp.Status)
		assert.Equal(t, 5, resp.Month)
		require.Len(t, f.outbox.events, 1)

		ev := f.outbox.events[0]
		assert.Equal(t, resp.EventID, ev.ID)
		assert.Equal(t, events.PayslipBatchRequestedTopic, ev.Topic)
		assert.Equal(t, kafka.AggregatePayslipBatch, ev.AggregateType)
		assert.Equal(t, "2025-06", ev.AggregateID)

		var payload events.PayslipBatchRequestedEvent
		require.NoError(t, json.Unmarshal(ev.Payload, &payload))
		assert.Equal(t, "user-1", payload.RequestedBy)
		assert.Equal(t, 5, payload.Month)
		assert.Empty(t, payload.EmployeeID)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("single employee uses it as aggregate", func(t *testing.T) {
		f := newFixture(t)
		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectCommit()
		id := uuid.NewString()

		resp, err := f.service(1).RequestBatch(context.Background(), "user-1", payslip.BatchAsyncRequest{Month: intPtr(0), Year: 2025, EmployeeID: id})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.RequestID)
		assert.Equal(t, id, f.outbox.events[0].AggregateID)
	})

	t.Run("rejects both targets", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service(1).RequestBatch(context.Background(), "user-1", payslip.BatchAsyncRequest{
			Month: intPtr(0), Year: 2025, EmployeeID: uuid.NewString(), Email: "a@example.dz",
		})
		assert.True(t, errors.Is(err, paysliperrors.ErrAmbiguousTarget))
	})

	t.Run("unavailable without outbox", func(t *testing.T) {
		f := newFixture(t)
		svc := payslip.NewService(f.db, f.repo, payslip.ReferenceData{}, nil, nil, 1, zap.NewNop())
		_, err := svc.RequestBatch(context.Background(), "user-1", payslip.BatchAsyncRequest{Month: intPtr(0), Year: 2025})
		assert.True(t, errors.Is(err, paysliperrors.ErrAsyncUnavailable))
	})
}

func TestSimulate_AdHoc(t *testing.T) {
	f := newFixture(t)
	f.params.EXPECT().Snapshot(gomock.Any(), january2025).Return(scenarioSnapshot(), nil)

	resp, err := f.service(1).Simulate(context.Background(), payslip.SimulateRequest{
		Month:        intPtr(0),
		Year:         2025,
		Wage:         decPtr("100000"),
		CNASScheme:   string(paycalc.CNASCadre),
		FiscalScheme: string(paycalc.FiscalImposable),
		Bonuses: []payslip.SimulatedBonus{
			{Name: "Panier", Amount: dec("15000")},
			{Name: "Transport", Amount: dec("25000")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "SIMULATION", resp.Payslip.Status)
	assert.Empty(t, resp.Payslip.ID)
	assert.Empty(t, resp.Payslip.EmployeeID)
	assertDec(t, "101152", resp.Payslip.NetSalary, "net")
	assertDec(t, "178880", resp.Payslip.TotalCost, "total cost")
	assert.NotEmpty(t, resp.Breakdown)
	assert.Empty(t, f.repo.upserted)
}

func TestSimulate_FallsBackToSimulationRates(t *testing.T) {
	f := newFixture(t)
	f.params.EXPECT().Snapshot(gomock.Any(), january2025).Return(payrollparam.Snapshot{}, nil)

	resp, err := f.service(1).Simulate(context.Background(), payslip.SimulateRequest{
		Month:        intPtr(0),
		Year:         2025,
		Wage:         decPtr("100000"),
		CNASScheme:   string(paycalc.CNASGeneral),
		FiscalScheme: string(paycalc.FiscalExonere),
	})

	require.NoError(t, err)
	assertDec(t, "19500", resp.Payslip.TotalEmployeeContributions, "employee contributions")
	assertDec(t, "0", resp.Payslip.IncomeTax, "irg")
	assertDec(t, "80500", resp.Payslip.NetSalary, "net")
}

func TestSimulate_StoredEmployee(t *testing.T) {
	f := newFixture(t)
	empl := newEmployee("Amina")
	f.employees.EXPECT().FindByID(gomock.Any(), empl.ID.String()).Return(&empl, nil)
	f.expectCalculation(empl)

	resp, err := f.service(1).Simulate(context.Background(), payslip.SimulateRequest{
		EmployeeID: empl.ID.String(),
		Month:      intPtr(0),
		Year:       2025,
	})

	require.NoError(t, err)
	assert.Equal(t, "Amina Benali", resp.Payslip.EmployeeName)
	assertDec(t, "101152", resp.Payslip.NetSalary, "net")
	assert.Empty(t, f.repo.upserted)
	assert.Empty(t, f.outbox.events)
}

func TestSimulate_RejectsIncompleteRequest(t *testing.T) {
	f := newFixture(t)

	_, err := f.service(1).Simulate(context.Background(), payslip.SimulateRequest{Month: intPtr(0), Year: 2025})
	assert.True(t, errors.Is(err, paysliperrors.ErrInvalidSimulation))

	_, err = f.service(1).Simulate(context.Background(), payslip.SimulateRequest{
		Month: intPtr(0), Year: 2025, Wage: decPtr("-1"), CNASScheme: "CADRE", FiscalScheme: "IMPOSABLE",
	})
	assert.True(t, errors.Is(err, paysliperrors.ErrInvalidSimulation))
}

func storedPayslip() *payslip.Payslip {
	empl := newEmployee("Amina")
	in := paycalc.Input{
		BaseWage:         dec("100000"),
		CNASScheme:       paycalc.CNASCadre,
		FiscalScheme:     paycalc.FiscalImposable,
		CNASContribution: true,
		Bonuses:          []paycalc.ResolvedBonus{{Name: "Panier", Amount: dec("15000")}, {Name: "Transport", Amount: dec("25000")}},
		Parameters:       scenarioSnapshot().Parameters,
		Brackets:         scenarioSnapshot().Brackets,
	}
	r := paycalc.NewEngine(paycalc.StandardDefaults()).Compute(in)
	p := payslip.NewPayslipForTest(empl.ID, paycalc.Period{Month: 0, Year: 2025}, r)
	p.Employee = &payslip.PayslipEmployee{ID: empl.ID, FirstName: empl.FirstName, LastName: empl.LastName, Email: empl.Email}
	return p
}

func TestGetByIDAndBreakdown(t *testing.T) {
	f := newFixture(t)
	stored := storedPayslip()
	f.repo.findByIDFn = func(ctx context.Context, id string) (*payslip.Payslip, error) {
		if id == stored.ID.String() {
			return stored, nil
		}
		return nil, paysliperrors.ErrPayslipNotFound
	}
	svc := f.service(1)

	resp, err := svc.GetByID(context.Background(), stored.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Amina Benali", resp.EmployeeName)
	assert.Equal(t, "Janvier 2025", resp.Period)
	assert.Len(t, resp.BonusLines, 2)
	assertDec(t, "9720", resp.EmployeeContributions[paycalc.KeySSEmployee], "ss employee")

	breakdown, err := svc.GetBreakdown(context.Background(), stored.ID.String())
	require.NoError(t, err)
	labels := map[string]string{}
	for _, l := range breakdown.Lines {
		labels[l.Label] = l.Amount.String()
	}
	assert.Equal(t, "17788", labels["IRG"])
	assert.Equal(t, "101152", labels["Salaire net"])

	_, err = svc.GetByID(context.Background(), uuid.NewString())
	assert.True(t, errors.Is(err, paysliperrors.ErrPayslipNotFound))

	_, err = svc.GetByID(context.Background(), "nope")
	assert.True(t, errors.Is(err, paysliperrors.ErrInvalidPayslipID))
}

func TestGetBreakdownByPeriod(t *testing.T) {
	f := newFixture(t)
	stored := storedPayslip()
	f.repo.findByEmployeeAndPeriodFn = func(ctx context.Context, employeeID string, month, year int) (*payslip.Payslip, error) {
		assert.Equal(t, stored.EmployeeID.String(), employeeID)
		assert.Equal(t, 0, month)
		assert.Equal(t, 2025, year)
		return stored, nil
	}

	resp, err := f.service(1).GetBreakdownByPeriod(context.Background(), stored.EmployeeID.String(), 0, 2025)

	require.NoError(t, err)
	assert.Equal(t, stored.ID.String(), resp.PayslipID)
	assert.NotEmpty(t, resp.Lines)
}

func TestGetAll_ValidatesPeriod(t *testing.T) {
	f := newFixture(t)
	stored := storedPayslip()
	f.repo.findAllByPeriodFn = func(ctx context.Context, month, year int) ([]payslip.Payslip, error) {
		return []payslip.Payslip{*stored}, nil
	}
	svc := f.service(1)

	list, err := svc.GetAll(context.Background(), 0, 2025)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.GetAll(context.Background(), 13, 2025)
	assert.True(t, errors.Is(err, paysliperrors.ErrInvalidPeriod))
}

func TestRenderPDF(t *testing.T) {
	f := newFixture(t)
	stored := storedPayslip()
	f.repo.findByIDFn = func(ctx context.Context, id string) (*payslip.Payslip, error) { return stored, nil }

	doc, filename, err := f.service(1).RenderPDF(context.Background(), stored.ID.String())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
	assert.Equal(t, "bulletin_"+stored.EmployeeID.String()+"_2025-01.pdf", filename)
}
