package calculate

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"drapery-golang/internal/service/pricing"
	"drapery-golang/internal/storage"
)

type CalcStorage interface {
	GetTemplateByCode(ctx context.Context, code string) (*storage.TemplateConfig, error)
	GetPriceGrid(ctx context.Context, ref string) (storage.RawPriceGrid, error)
	GetMarkupSettings(ctx context.Context) ([]storage.MarkupSetting, error)
	SaveCalculationResult(ctx context.Context, rec storage.SavedCalculation) (int64, error)
}

// Defaults are account-level pricing settings sourced from configuration.
type Defaults struct {
	LaborRate        float64
	MinBillableHours float64
	MarkupPercent    float64
	LowMargin        float64
	GoodMargin       float64
}

type CalcService struct {
	storage  CalcStorage
	defaults Defaults
}

func NewCalcService(storage CalcStorage, defaults Defaults) *CalcService {
	return &CalcService{storage: storage, defaults: defaults}
}

// Request identifies one item to price: which template, the measurement, the
// chosen fabric and any per-item overrides.
type Request struct {
	ItemKey      string              `json:"item_key"`
	OrderNum     string              `json:"order_num"`
	TemplateCode string              `json:"template"`
	Measure      storage.Measurement `json:"measurement"`
	Fabric       storage.FabricSpec  `json:"fabric"`
	Overrides    pricing.Overrides   `json:"overrides"`
}

// SaveOutcome is the persisted snapshot plus the declared invalidation
// fan-out: every cache key a downstream read path must drop after this write.
type SaveOutcome struct {
	Record     storage.SavedCalculation `json:"record"`
	Invalidate []string                 `json:"invalidate"`
}

// Calculate is the pure preview path: resolve, run the engine, no side
// effects.
func (s *CalcService) Calculate(ctx context.Context, req Request) (storage.CalculationResult, error) {
	in, err := s.resolveInput(ctx, req)
	if err != nil {
		return storage.CalculationResult{}, err
	}
	return pricing.Calculate(in)
}

// Save calculates and then upserts the snapshot for the item key. On a
// storage failure the computed record is still returned so the caller keeps
// the in-memory result; it is just not persisted.
func (s *CalcService) Save(ctx context.Context, req Request) (SaveOutcome, error) {
	const op = "service.calculate.Save"

	if req.ItemKey == "" {
		return SaveOutcome{}, &pricing.ValidationError{Problems: []string{"item key is required"}}
	}

	result, err := s.Calculate(ctx, req)
	if err != nil {
		return SaveOutcome{}, err
	}

	rec := storage.SavedCalculation{
		ItemKey:           req.ItemKey,
		OrderNum:          req.OrderNum,
		Template:          req.TemplateCode,
		UpdatedAT:         time.Now().UTC(),
		CalculationResult: result,
	}

	id, err := s.storage.SaveCalculationResult(ctx, rec)
	if err != nil {
		return SaveOutcome{Record: rec}, fmt.Errorf("%s: %w", op, err)
	}
	rec.ID = id

	return SaveOutcome{
		Record:     rec,
		Invalidate: InvalidationKeys(req.ItemKey, req.OrderNum),
	}, nil
}

// InvalidationKeys declares the fan-out for one item write: the item's own
// cache entry, the parent order aggregate that sums child items, and the
// order's quote view. Consumers treat the list as at-least-once and
// idempotent; re-invalidating a fresh key is harmless.
func InvalidationKeys(itemKey, orderNum string) []string {
	keys := []string{"item:" + itemKey}
	if orderNum != "" {
		keys = append(keys, "order:"+orderNum, "quote:"+orderNum)
	}
	return keys
}

// resolveInput fetches the template, then in parallel everything the
// template's method needs: the referenced price grid, the markup settings and
// the inherited sibling template.
func (s *CalcService) resolveInput(ctx context.Context, req Request) (*pricing.Input, error) {
	const op = "service.calculate.resolveInput"

	tmpl, err := s.storage.GetTemplateByCode(ctx, req.TemplateCode)
	if err != nil {
		return nil, fmt.Errorf("%s: template: %w", op, err)
	}

	method := tmpl.PricingMethod
	if req.Overrides.Method != nil {
		method = *req.Overrides.Method
	}

	var (
		grid     *pricing.CanonicalGrid
		sibling  *pricing.Input
		settings []storage.MarkupSetting
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		settings, err = s.storage.GetMarkupSettings(gCtx)
		if err != nil {
			return fmt.Errorf("markup settings: %w", err)
		}
		return nil
	})
	if method == pricing.MethodGrid && tmpl.GridRef != nil && *tmpl.GridRef != "" {
		g.Go(func() error {
			raw, err := s.storage.GetPriceGrid(gCtx, *tmpl.GridRef)
			if err != nil {
				return fmt.Errorf("price grid: %w", err)
			}
			grid, err = pricing.NormalizeGrid(raw)
			return err
		})
	}
	if method == pricing.MethodInherit && tmpl.InheritFrom != nil && *tmpl.InheritFrom != "" {
		g.Go(func() error {
			var err error
			sibling, err = s.resolveSibling(gCtx, *tmpl.InheritFrom, req)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	set := pricing.Settings{
		LaborRate:        s.defaults.LaborRate,
		MinBillableHours: s.defaults.MinBillableHours,
		LowMargin:        s.defaults.LowMargin,
		GoodMargin:       s.defaults.GoodMargin,
		Grid:             grid,
		Sibling:          sibling,
	}
	set.CategoryMarkup, set.AccountMarkup = resolveMarkupLevels(settings, tmpl.Category)
	if set.AccountMarkup == nil && s.defaults.MarkupPercent > 0 {
		pct := s.defaults.MarkupPercent
		set.AccountMarkup = &pct
	}

	return pricing.Resolve(tmpl, req.Measure, req.Fabric, req.Overrides, set)
}

// resolveSibling loads the inherited template and resolves it against the
// same measurement and fabric. A sibling that itself inherits is refused
// here, which bounds the indirection to exactly one hop.
func (s *CalcService) resolveSibling(ctx context.Context, code string, req Request) (*pricing.Input, error) {
	tmpl, err := s.storage.GetTemplateByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("sibling template: %w", err)
	}
	if tmpl.PricingMethod == pricing.MethodInherit {
		return nil, &pricing.ConfigError{Reason: "pricing inheritance is limited to one indirection"}
	}

	var grid *pricing.CanonicalGrid
	if tmpl.PricingMethod == pricing.MethodGrid && tmpl.GridRef != nil && *tmpl.GridRef != "" {
		raw, err := s.storage.GetPriceGrid(ctx, *tmpl.GridRef)
		if err != nil {
			return nil, fmt.Errorf("sibling price grid: %w", err)
		}
		grid, err = pricing.NormalizeGrid(raw)
		if err != nil {
			return nil, err
		}
	}

	set := pricing.Settings{
		LaborRate:        s.defaults.LaborRate,
		MinBillableHours: s.defaults.MinBillableHours,
		Grid:             grid,
	}

	return pricing.Resolve(tmpl, req.Measure, req.Fabric, pricing.Overrides{}, set)
}

func resolveMarkupLevels(settings []storage.MarkupSetting, category string) (categoryPct, accountPct *float64) {
	for i := range settings {
		row := settings[i]
		if !row.IsActive {
			continue
		}
		switch {
		case row.Category == "":
			if accountPct == nil {
				pct := row.Percent
				accountPct = &pct
			}
		case row.Category == category:
			if categoryPct == nil {
				pct := row.Percent
				categoryPct = &pct
			}
		}
	}
	return categoryPct, accountPct
}
