package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrocredito/agrocredito/internal/application/dto"
	"github.com/agrocredito/agrocredito/internal/domain/model"
	"github.com/agrocredito/agrocredito/internal/domain/port"
	"github.com/agrocredito/agrocredito/internal/domain/service"
	"github.com/agrocredito/agrocredito/internal/domain/valueobject"
)

// SimulationPolicy bounds the raw input accepted by the simulator.
type SimulationPolicy struct {
	MinAmount      decimal.Decimal
	MinTermMonths  int
	MaxRatePercent decimal.Decimal
}

// DefaultSimulationPolicy returns the institution's standard input bounds.
func DefaultSimulationPolicy() SimulationPolicy {
	return SimulationPolicy{
		MinAmount:      decimal.NewFromInt(500_000),
		MinTermMonths:  6,
		MaxRatePercent: decimal.NewFromInt(50),
	}
}

// SimulateCreditUseCase validates raw form input, derives a rate, computes
// the amortization schedule, and selects advisory guidance. The result is a
// quote only; persistence is a separate, explicit action.
type SimulateCreditUseCase struct {
	rateModel *service.RateModel
	advisor   *service.AdvisoryRuleEngine
	cache     port.QuoteCache
	policy    SimulationPolicy
	cacheTTL  time.Duration
}

// NewSimulateCreditUseCase wires dependencies. cache may be nil, in which
// case every quote is computed fresh.
func NewSimulateCreditUseCase(
	rateModel *service.RateModel,
	advisor *service.AdvisoryRuleEngine,
	cache port.QuoteCache,
	policy SimulationPolicy,
	cacheTTL time.Duration,
) *SimulateCreditUseCase {
	return &SimulateCreditUseCase{
		rateModel: rateModel,
		advisor:   advisor,
		cache:     cache,
		policy:    policy,
		cacheTTL:  cacheTTL,
	}
}

// Execute produces a quote or the full list of input failures.
func (uc *SimulateCreditUseCase) Execute(
	ctx context.Context,
	req dto.SimulateCreditRequest,
) (dto.SimulationQuoteResponse, error) {
	// 1. Validate every field, collecting all failures in one pass.
	crop, err := uc.validate(req)
	if err != nil {
		return dto.SimulationQuoteResponse{}, err
	}

	// 2. Serve identical quotes from the cache when one is available.
	key := quoteCacheKey(req)
	if cached, ok := uc.cacheLookup(ctx, key); ok {
		return cached, nil
	}

	// 3. Derive the rate; a caller-supplied rate overrides the suggestion.
	suggested := uc.rateModel.SuggestRate(crop, req.Hectares, req.MonthlyYield)
	applied := suggested
	if req.InterestRate != nil {
		applied = *req.InterestRate
	}

	// 4. Compute the amortization schedule.
	result, err := model.ComputeAmortization(req.Amount, applied, req.TermMonths)
	if err != nil {
		return dto.SimulationQuoteResponse{}, err
	}

	// 5. Select advisory guidance from the simulation figures.
	advice := uc.advisor.SelectAdvice(service.AdvisoryInput{
		Amount:         req.Amount,
		TermMonths:     req.TermMonths,
		InterestRate:   applied,
		MonthlyPayment: result.MonthlyPayment,
		Hectares:       req.Hectares,
		MonthlyYield:   req.MonthlyYield,
	})

	resp := dto.SimulationQuoteResponse{
		Crop:           crop.String(),
		CustomCropName: crop.CustomName(),
		Hectares:       req.Hectares,
		MonthlyYield:   req.MonthlyYield,
		Amount:         req.Amount,
		TermMonths:     req.TermMonths,
		SuggestedRate:  suggested,
		AppliedRate:    applied,
		MonthlyPayment: result.MonthlyPayment,
		TotalInterest:  result.TotalInterest,
		TotalPayment:   result.TotalPayment,
		Schedule:       toScheduleResponse(result.Schedule),
		Advisory: dto.AdvisoryResponse{
			Kind: string(advice.Kind),
			Text: advice.Text,
			Plan: advice.Plan.String(),
		},
	}

	uc.cacheStore(ctx, key, resp)
	return resp, nil
}

// validate checks every input rule and returns the parsed crop type on
// success. All failures are reported together.
func (uc *SimulateCreditUseCase) validate(req dto.SimulateCreditRequest) (valueobject.CropType, error) {
	verrs := &valueobject.ValidationErrors{}

	if req.Amount.LessThan(uc.policy.MinAmount) {
		verrs.Add("amount", fmt.Sprintf("amount below minimum of %s", uc.policy.MinAmount.StringFixed(0)))
	}
	if req.TermMonths < uc.policy.MinTermMonths {
		verrs.Add("term_months", fmt.Sprintf("term below minimum of %d months", uc.policy.MinTermMonths))
	}
	if req.InterestRate != nil {
		if req.InterestRate.LessThanOrEqual(decimal.Zero) || req.InterestRate.GreaterThan(uc.policy.MaxRatePercent) {
			verrs.Add("interest_rate", fmt.Sprintf("rate out of bounds (0, %s]", uc.policy.MaxRatePercent.StringFixed(0)))
		}
	}
	if req.Hectares.LessThanOrEqual(decimal.Zero) {
		verrs.Add("hectares", "hectares must be positive")
	}
	if req.MonthlyYield.LessThan(decimal.Zero) {
		verrs.Add("monthly_yield", "yield cannot be negative")
	}

	crop, err := valueobject.NewCropType(req.Crop, req.CustomCropName)
	if err != nil {
		verrs.Add("crop", err.Error())
	}

	if verrs.HasErrors() {
		return valueobject.CropType{}, verrs
	}
	return crop, nil
}

func (uc *SimulateCreditUseCase) cacheLookup(ctx context.Context, key string) (dto.SimulationQuoteResponse, bool) {
	if uc.cache == nil {
		return dto.SimulationQuoteResponse{}, false
	}
	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "quote cache lookup failed", "key", key, "error", err)
		return dto.SimulationQuoteResponse{}, false
	}
	if raw == nil {
		return dto.SimulationQuoteResponse{}, false
	}
	var resp dto.SimulationQuoteResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		slog.WarnContext(ctx, "quote cache entry corrupt", "key", key, "error", err)
		return dto.SimulationQuoteResponse{}, false
	}
	return resp, true
}

func (uc *SimulateCreditUseCase) cacheStore(ctx context.Context, key string, resp dto.SimulationQuoteResponse) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, raw, uc.cacheTTL); err != nil {
		slog.WarnContext(ctx, "quote cache store failed", "key", key, "error", err)
	}
}

// quoteCacheKey derives a stable key from every quote-relevant input.
func quoteCacheKey(req dto.SimulateCreditRequest) string {
	rate := ""
	if req.InterestRate != nil {
		rate = req.InterestRate.String()
	}
	sum := sha256.Sum256([]byte(fmt.Sprintf(
		"%s|%s|%s|%s|%s|%d|%s",
		req.Crop, req.CustomCropName, req.Hectares.String(), req.MonthlyYield.String(),
		req.Amount.String(), req.TermMonths, rate,
	)))
	return "quote:" + hex.EncodeToString(sum[:])
}

func toScheduleResponse(schedule []model.AmortizationEntry) []dto.AmortizationEntryResponse {
	out := make([]dto.AmortizationEntryResponse, 0, len(schedule))
	for _, e := range schedule {
		out = append(out, dto.AmortizationEntryResponse{
			Month:     e.Month,
			Payment:   e.Payment,
			Principal: e.Principal,
			Interest:  e.Interest,
			Balance:   e.Balance,
		})
	}
	return out
}
