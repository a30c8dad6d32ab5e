package commission

import (
	"context"
	"errors"

	"github.com/stakeway/backoffice/internal/domain/entity"
	errs "github.com/stakeway/backoffice/internal/domain/error"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/domain/port/persistence"
)

// DefaultMaxChainDepth bounds the sponsor walk. The chain is a string-linked
// list of usernames, so bad data could form a cycle; the walk truncates at
// this depth the same way a dangling sponsor reference does.
const DefaultMaxChainDepth = 64

// Rate tiers in basis points, keyed by relative level in the sponsor chain.
// The direct sponsor (relative level 0) earns 7%, then 3%, 2%, and a flat 1%
// for every remaining ancestor up to the root.
const (
	rateDirectBps    = 700
	rateLevelOneBps  = 300
	rateLevelTwoBps  = 200
	rateRemainingBps = 100
)

// RateBps returns the commission rate in basis points for a relative level
func RateBps(relativeLevel int) int64 {
	switch relativeLevel {
	case 0:
		return rateDirectBps
	case 1:
		return rateLevelOneBps
	case 2:
		return rateLevelTwoBps
	default:
		return rateRemainingBps
	}
}

// Distributor walks a sponsor chain and credits tiered commissions on a
// package purchase. Every hop commits independently: ancestors already paid
// keep their commission even if the walk later truncates.
type Distributor struct {
	userRepo      persistence.UserRepository
	logger        coreport.Logger
	maxChainDepth int
}

// NewDistributor creates a commission distributor with the default depth guard
func NewDistributor(userRepo persistence.UserRepository, logger coreport.Logger) *Distributor {
	return &Distributor{
		userRepo:      userRepo,
		logger:        logger,
		maxChainDepth: DefaultMaxChainDepth,
	}
}

// WithMaxChainDepth overrides the traversal depth guard
func (d *Distributor) WithMaxChainDepth(depth int) *Distributor {
	if depth > 0 {
		d.maxChainDepth = depth
	}
	return d
}

// Distribute credits a tiered commission to every ancestor in the sponsor
// chain, starting from the direct sponsor. A missing ancestor at any hop ends
// the walk silently; that is a normal chain termination, not an error. The
// walk also stops after paying a chain root (level 0 or no sponsor).
func (d *Distributor) Distribute(ctx context.Context, sponsorUsername string, amountCents int64) error {
	username := sponsorUsername
	for relativeLevel := 0; relativeLevel < d.maxChainDepth; relativeLevel++ {
		if username == "" {
			return nil
		}

		sponsor, err := d.userRepo.GetByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, errs.ErrUserNotFound) {
				d.logger.Debug("Sponsor chain truncated at missing user", map[string]any{
					"username":       username,
					"relative_level": relativeLevel,
				})
				return nil
			}
			return err
		}

		commission := entity.CommissionCents(amountCents, RateBps(relativeLevel))
		if _, err := d.userRepo.CreditCommission(ctx, sponsor.ID, commission); err != nil {
			return err
		}

		d.logger.Info("Commission credited", map[string]any{
			"username":       sponsor.Username,
			"relative_level": relativeLevel,
			"commission":     entity.CentsToAmount(commission),
			"purchase":       entity.CentsToAmount(amountCents),
		})

		if sponsor.IsRoot() {
			return nil
		}
		username = sponsor.Sponsor
	}

	d.logger.Warn("Sponsor chain exceeded max depth, truncating walk", map[string]any{
		"start_username": sponsorUsername,
		"max_depth":      d.maxChainDepth,
	})
	return nil
}
