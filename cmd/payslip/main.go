package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go-paie/internal/app"
	"go-paie/internal/bootstrap"
	"go-paie/internal/config"
	"go-paie/internal/paycalc"
	"go-paie/internal/payslip"
	"go-paie/internal/shared/apperror"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const usage = `usage: payslip <command> [flags]

commands:
  generate  -employee <id> | -email <address>  -month <0-11> -year <yyyy>
  batch     -month <0-11> -year <yyyy>
  simulate  [-employee <id>] -month <0-11> -year <yyyy> -wage <amount>
            -cnas CADRE|GENERAL|NON_ASSUJETTI -fiscal IMPOSABLE|EXONERE|ABATTEMENT_40
            [-no-cnas] [-bonus Name=Amount ...]
`

var errUsage = errors.New("invalid usage")

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := bootstrap.NewLogger(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	apperror.Init()

	svc, infra, err := app.BuildPayslipService(cfg)
	if err != nil {
		logger.Fatal("build payslip service failed", zap.Error(err))
	}
	defer infra.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, svc, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		logger.Error("payslip command failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, svc payslip.Service, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "generate":
		return runGenerate(ctx, svc, args[1:], out)
	case "batch":
		return runBatch(ctx, svc, args[1:], out)
	case "simulate":
		return runSimulate(ctx, svc, args[1:], out)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

type periodFlags struct {
	month int
	year  int
}

func (p *periodFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&p.month, "month", -1, "month, 0 = January")
	fs.IntVar(&p.year, "year", 0, "year")
}

func (p *periodFlags) check() error {
	if p.month < 0 || p.month > 11 || p.year <= 0 {
		return fmt.Errorf("%w: -month (0-11) and -year are required", errUsage)
	}
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func runGenerate(ctx context.Context, svc payslip.Service, args []string, out io.Writer) error {
	fs := newFlagSet("generate")
	var period periodFlags
	period.register(fs)
	employeeID := fs.String("employee", "", "employee id")
	email := fs.String("email", "", "employee email")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if err := period.check(); err != nil {
		return err
	}
	if (*employeeID == "") == (*email == "") {
		return fmt.Errorf("%w: exactly one of -employee or -email is required", errUsage)
	}

	label := paycalc.Period{Month: period.month, Year: period.year}.Label()

	if *email != "" {
		ok, err := svc.GeneratePayslipsByEmail(ctx, *email, period.month, period.year)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(out, "no payslip generated for %s (%s)\n", *email, label)
			return nil
		}
		fmt.Fprintf(out, "payslip generated for %s (%s)\n", *email, label)
		return nil
	}

	ok, err := svc.GeneratePayslip(ctx, *employeeID, period.month, period.year)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(out, "no payslip generated for %s (%s)\n", *employeeID, label)
		return nil
	}

	breakdown, err := svc.GetBreakdownByPeriod(ctx, *employeeID, period.month, period.year)
	if err != nil {
		return err
	}
	return paycalc.WriteBreakdown(out, title("Bulletin de paie", breakdown.EmployeeName, breakdown.Period), payslip.ToLines(breakdown.Lines))
}

func runBatch(ctx context.Context, svc payslip.Service, args []string, out io.Writer) error {
	fs := newFlagSet("batch")
	var period periodFlags
	period.register(fs)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if err := period.check(); err != nil {
		return err
	}

	summary, err := svc.GeneratePayslipsForAllEmployees(ctx, period.month, period.year)
	fmt.Fprintf(out, "%s: %d employees, %d generated, %d skipped\n",
		paycalc.Period{Month: period.month, Year: period.year}.Label(),
		summary.Total, summary.Succeeded, summary.Failed,
	)
	return err
}

// bonusFlags collects repeated -bonus Name=Amount values.
type bonusFlags []payslip.SimulatedBonus

func (b *bonusFlags) String() string {
	parts := make([]string, len(*b))
	for i, v := range *b {
		parts[i] = v.Name + "=" + v.Amount.String()
	}
	return strings.Join(parts, ",")
}

func (b *bonusFlags) Set(v string) error {
	name, amount, ok := strings.Cut(v, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return fmt.Errorf("bonus must look like Name=Amount, got %q", v)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return fmt.Errorf("bonus %q: %w", name, err)
	}
	*b = append(*b, payslip.SimulatedBonus{Name: strings.TrimSpace(name), Amount: d})
	return nil
}

func runSimulate(ctx context.Context, svc payslip.Service, args []string, out io.Writer) error {
	fs := newFlagSet("simulate")
	var (
		period  periodFlags
		bonuses bonusFlags
	)
	period.register(fs)
	employeeID := fs.String("employee", "", "simulate a stored employee")
	wage := fs.String("wage", "", "base wage")
	cnas := fs.String("cnas", "", "CNAS scheme")
	fiscal := fs.String("fiscal", "", "fiscal scheme")
	noCNAS := fs.Bool("no-cnas", false, "employee does not contribute to CNAS")
	fs.Var(&bonuses, "bonus", "bonus as Name=Amount, repeatable")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if err := period.check(); err != nil {
		return err
	}

	req := payslip.SimulateRequest{
		EmployeeID:   *employeeID,
		Month:        &period.month,
		Year:         period.year,
		CNASScheme:   strings.ToUpper(*cnas),
		FiscalScheme: strings.ToUpper(*fiscal),
		Bonuses:      bonuses,
	}
	if *wage != "" {
		d, err := decimal.NewFromString(*wage)
		if err != nil {
			return fmt.Errorf("%w: -wage: %v", errUsage, err)
		}
		req.Wage = &d
	}
	if *noCNAS {
		subject := false
		req.CNASContribution = &subject
	}

	resp, err := svc.Simulate(ctx, req)
	if err != nil {
		return err
	}
	return paycalc.WriteBreakdown(out, title("Simulation", resp.Payslip.EmployeeName, resp.Payslip.Period), payslip.ToLines(resp.Breakdown))
}

func title(prefix, name, period string) string {
	parts := []string{prefix}
	if name != "" {
		parts = append(parts, name)
	}
	if period != "" {
		parts = append(parts, period)
	}
	return strings.Join(parts, " - ")
}
