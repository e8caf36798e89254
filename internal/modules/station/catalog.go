package station

import (
	"fmt"

	"netzone/internal/types"
)

// DefaultCatalog builds the venue's standard floor plan: ten VIP
// machines, ten standard, ten streaming.
func DefaultCatalog() []Station {
	vipSpecs := Specs{CPU: "Intel i7-12700K", GPU: "RTX 3070", RAM: "32GB", Monitor: "27\" 144Hz"}
	baseSpecs := Specs{CPU: "Intel i5-10400F", GPU: "GTX 1660", RAM: "16GB", Monitor: "24\" 75Hz"}

	out := make([]Station, 0, 30)
	for i := 1; i <= 30; i++ {
		zone := ZoneVIP
		specs := vipSpecs
		switch {
		case i > 20:
			zone = ZoneStream
			specs = baseSpecs
		case i > 10:
			zone = ZoneStandard
			specs = baseSpecs
		}
		out = append(out, Station{
			ID:    types.ID(fmt.Sprintf("pc-%02d", i)),
			Name:  fmt.Sprintf("Máy %d", i),
			Zone:  zone,
			Specs: specs,
		})
	}
	return out
}
