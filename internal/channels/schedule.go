package channels

import (
	"github.com/ricardoalmeida/vendaflow-backend/pkg/enums"
	pkgerrors "github.com/ricardoalmeida/vendaflow-backend/pkg/errors"
)

// FeeTerm is one declarative fee applied to a sale: how it is charged and
// which channel configuration field supplies the number.
type FeeTerm struct {
	Kind  enums.FeeTermKind
	Field enums.FeeField
}

// FeeSchedule is the ordered fee-term list for one channel type. Adding a
// channel means adding a schedule here, not new arithmetic.
type FeeSchedule struct {
	Channel enums.ChannelType
	Terms   []FeeTerm
}

var (
	commissionTerm = FeeTerm{Kind: enums.FeeTermPercentOfPrice, Field: enums.FeeFieldCommissionPercent}
	fixedFeeTerm   = FeeTerm{Kind: enums.FeeTermFixed, Field: enums.FeeFieldFixedFee}
	shippingTerm   = FeeTerm{Kind: enums.FeeTermCostValue, Field: enums.FeeFieldShippingCost}
	packagingTerm  = FeeTerm{Kind: enums.FeeTermCostValue, Field: enums.FeeFieldPackagingCost}
	otherPctTerm   = FeeTerm{Kind: enums.FeeTermPercentOfPrice, Field: enums.FeeFieldOtherPercent}
	otherValueTerm = FeeTerm{Kind: enums.FeeTermFixed, Field: enums.FeeFieldOtherValue}
	adsTerm        = FeeTerm{Kind: enums.FeeTermPercentOfPrice, Field: enums.FeeFieldAdsPercent}
	financialTerm  = FeeTerm{Kind: enums.FeeTermPercentOfPrice, Field: enums.FeeFieldFinancialCostPercent}
	marketingTerm  = FeeTerm{Kind: enums.FeeTermPercentOfPrice, Field: enums.FeeFieldMarketingCostPercent}
)

// overheadTerms apply to every channel regardless of who fulfills.
var overheadTerms = []FeeTerm{
	otherPctTerm,
	otherValueTerm,
	adsTerm,
	financialTerm,
	marketingTerm,
}

var schedulesByChannel = map[enums.ChannelType][]FeeTerm{
	// Own site: no marketplace commission, seller ships and packs.
	enums.ChannelOwnSite: join([]FeeTerm{shippingTerm, packagingTerm}, overheadTerms),

	// Marketplace, seller-fulfilled.
	enums.ChannelMercadoLivre: join([]FeeTerm{commissionTerm, shippingTerm, packagingTerm}, overheadTerms),
	enums.ChannelAmazon:       join([]FeeTerm{commissionTerm, shippingTerm, packagingTerm}, overheadTerms),
	enums.ChannelMagalu:       join([]FeeTerm{commissionTerm, shippingTerm, packagingTerm}, overheadTerms),

	// Marketplace, seller-fulfilled, with a per-order listing fee.
	enums.ChannelMercadoLivrePremium: join([]FeeTerm{commissionTerm, fixedFeeTerm, shippingTerm, packagingTerm}, overheadTerms),
	enums.ChannelShopee:              join([]FeeTerm{commissionTerm, fixedFeeTerm, shippingTerm, packagingTerm}, overheadTerms),

	// Marketplace warehouse fulfills; outbound shipping is not a seller cost,
	// fulfillment is charged through the fixed fee.
	enums.ChannelMercadoLivreFull: join([]FeeTerm{commissionTerm, fixedFeeTerm, packagingTerm}, overheadTerms),
	enums.ChannelAmazonFBA:        join([]FeeTerm{commissionTerm, fixedFeeTerm, packagingTerm}, overheadTerms),
}

// ScheduleFor returns the fee schedule for a channel type.
func ScheduleFor(channel enums.ChannelType) (FeeSchedule, error) {
	terms, ok := schedulesByChannel[channel]
	if !ok {
		return FeeSchedule{}, pkgerrors.New(pkgerrors.CodeUnsupportedChannel, "no fee schedule for channel").
			WithDetails(map[string]string{"channel_type": channel.String()})
	}
	out := make([]FeeTerm, len(terms))
	copy(out, terms)
	return FeeSchedule{Channel: channel, Terms: out}, nil
}

func join(lead, tail []FeeTerm) []FeeTerm {
	terms := make([]FeeTerm, 0, len(lead)+len(tail))
	terms = append(terms, lead...)
	terms = append(terms, tail...)
	return terms
}
