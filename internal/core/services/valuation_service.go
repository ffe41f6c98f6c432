package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/SscSPs/securities_vault/internal/core/ports"
	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type valuationService struct {
	BaseService
	vault  portssvc.VaultReaderSvc
	oracle ports.PriceOracle
}

var _ portssvc.ValuationSvc = (*valuationService)(nil)

func NewValuationService(vault portssvc.VaultReaderSvc, oracle ports.PriceOracle, opts ...ServiceOption) portssvc.ValuationSvc {
	return &valuationService{
		BaseService: newBaseService(nil, opts),
		vault:       vault,
		oracle:      oracle,
	}
}

// TotalValueLocked prices every asset that is whitelisted for deposits and
// currently holds a non-zero total.
func (s *valuationService) TotalValueLocked(ctx context.Context) (decimal.Decimal, []domain.AssetValuation, error) {
	start := time.Now()
	total := decimal.Zero
	breakdown := make([]domain.AssetValuation, 0)

	for _, pos := range s.vault.Positions() {
		if !pos.Whitelisted || pos.TotalDeposited.IsZero() {
			continue
		}
		price, err := s.oracle.Price(ctx, pos.Asset)
		if err != nil {
			err = fmt.Errorf("pricing %s: %w", pos.Asset, err)
			return decimal.Zero, nil, s.finish(ctx, "total_value_locked", start, err, slog.String("asset", pos.Asset.String()))
		}
		value := pos.TotalDeposited.Mul(price)
		total = total.Add(value)
		breakdown = append(breakdown, domain.AssetValuation{
			Asset:          pos.Asset,
			TotalDeposited: pos.TotalDeposited,
			Price:          price,
			Value:          value,
		})
	}

	s.Metrics.SetTotalValueLocked(total.InexactFloat64())
	s.Metrics.ObserveOperation("total_value_locked", "ok", start)
	return total, breakdown, nil
}
