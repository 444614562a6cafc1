package payrollparam

import (
	"context"
	"encoding/json"
	"time"

	"go-paie/internal/paycalc"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const SnapshotKeyPrefix = "payroll:refdata:"

func GetSnapshotKey(on time.Time) string {
	return SnapshotKeyPrefix + on.Format("2006-01-02")
}

// Snapshot is the reference data the engine reads for one evaluation date.
type Snapshot struct {
	Parameters paycalc.Parameters   `json:"parameters"`
	Brackets   []paycalc.TaxBracket `json:"brackets"`
}

//go:generate mockgen -source=payrollparam_service.go -destination=mock/payrollparam_service_mock.go -package=mock
type Provider interface {
	Snapshot(ctx context.Context, on time.Time) (Snapshot, error)
}

type provider struct {
	repo   Repository
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewProvider caches snapshots in redis for ttl. A nil rdb or a ttl <= 0
// reads the database every time, singleflight still collapses concurrent
// loads for the same date.
func NewProvider(repo Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Provider {
	l := zap.L().Named("payrollparam.provider")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payrollparam.provider")
	}
	return &provider{
		repo:   repo,
		rdb:    rdb,
		ttl:    ttl,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (p *provider) Snapshot(ctx context.Context, on time.Time) (Snapshot, error) {
	cacheKey := GetSnapshotKey(on)

	if p.cacheEnabled() {
		if cached, err := p.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var snap Snapshot
			if json.Unmarshal([]byte(cached), &snap) == nil {
				return snap, nil
			}
			p.logger.Warn("discarding unreadable refdata snapshot", zap.String("key", cacheKey))
		} else if err != redis.Nil {
			p.logger.Warn("refdata cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	v, err, _ := p.sf.Do(cacheKey, func() (interface{}, error) {
		snap, err := p.load(ctx, on)
		if err != nil {
			return nil, err
		}

		if p.cacheEnabled() {
			if payload, err := json.Marshal(snap); err == nil {
				if err := p.rdb.Set(ctx, cacheKey, payload, p.ttl).Err(); err != nil {
					p.logger.Warn("refdata cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return snap, nil
	})
	if err != nil {
		return Snapshot{}, err
	}

	return v.(Snapshot), nil
}

func (p *provider) load(ctx context.Context, on time.Time) (Snapshot, error) {
	params, err := p.repo.FindActiveParameters(ctx, on)
	if err != nil {
		p.logger.Error("load payroll parameters failed", zap.Time("on", on), zap.Error(err))
		return Snapshot{}, err
	}

	brackets, err := p.repo.FindActiveTaxBrackets(ctx, on)
	if err != nil {
		p.logger.Error("load tax brackets failed", zap.Time("on", on), zap.Error(err))
		return Snapshot{}, err
	}

	calcParams := make([]paycalc.Parameter, len(params))
	for i, param := range params {
		calcParams[i] = param.ToCalc()
	}
	calcBrackets := make([]paycalc.TaxBracket, len(brackets))
	for i, b := range brackets {
		calcBrackets[i] = b.ToCalc()
	}

	snap := Snapshot{
		Parameters: paycalc.ActiveParameters(calcParams, on),
		Brackets:   paycalc.ActiveBrackets(calcBrackets, on),
	}
	p.logger.Debug("refdata snapshot loaded",
		zap.Time("on", on),
		zap.Int("parameters", len(snap.Parameters)),
		zap.Int("brackets", len(snap.Brackets)),
	)
	return snap, nil
}

func (p *provider) cacheEnabled() bool {
	return p.rdb != nil && p.ttl > 0
}
