package enums

import (
	"fmt"
	"strings"
)

// ChannelType identifies a sales channel a product can be listed on.
type ChannelType string

const (
	ChannelOwnSite             ChannelType = "own_site"
	ChannelMercadoLivre        ChannelType = "mercado_livre"
	ChannelMercadoLivrePremium ChannelType = "mercado_livre_premium"
	ChannelMercadoLivreFull    ChannelType = "mercado_livre_full"
	ChannelShopee              ChannelType = "shopee"
	ChannelAmazon              ChannelType = "amazon"
	ChannelAmazonFBA           ChannelType = "amazon_fba"
	ChannelMagalu              ChannelType = "magalu"
)

var validChannelTypes = []ChannelType{
	ChannelOwnSite,
	ChannelMercadoLivre,
	ChannelMercadoLivrePremium,
	ChannelMercadoLivreFull,
	ChannelShopee,
	ChannelAmazon,
	ChannelAmazonFBA,
	ChannelMagalu,
}

// String implements fmt.Stringer.
func (c ChannelType) String() string {
	return string(c)
}

// IsValid reports whether the channel type is recognized.
func (c ChannelType) IsValid() bool {
	for _, candidate := range validChannelTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ChannelTypes returns every supported channel type in declaration order.
func ChannelTypes() []ChannelType {
	out := make([]ChannelType, len(validChannelTypes))
	copy(out, validChannelTypes)
	return out
}

// ParseChannelType converts raw input into a ChannelType.
func ParseChannelType(value string) (ChannelType, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validChannelTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid channel type %q", value)
}
