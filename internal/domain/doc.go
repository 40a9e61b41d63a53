// Package domain generates synthetic daily farm-operation records.
//
// # Generation Pipeline
//
// A record is composed leaf-first from five generators, each drawing bounded
// randomness from an injected [Random] source:
//
//	Weather     season          → temperature, humidity, rainfall, sunshine
//	Production  crop, season    → harvest, cultivated area, quality
//	Financials  production, ... → costs, revenue, profit margin
//	Resources   area            → water, fuel, labor
//	KPIs        production, ... → productivity efficiency, sustainability
//
// [BuildCompleteRecord] merges the five outputs into one [FarmRecord] and a
// [Builder] repeats it to produce a [FarmDataset].
//
// # Parameter Tables
//
// Seasonal and crop constants live in exhaustive switches (see params.go),
// so a new season or crop type is a single-point change:
//
//	Season  base temp  sunshine  yield mod  price mult
//	winter   5 °C       6–12 h    ×0.8       ×1.25
//	spring  15 °C       6–12 h    ×0.8       ×1.15
//	summer  28 °C      10–14 h    ×1.2       ×0.90
//	autumn  18 °C       6–12 h    ×1.2       ×1.05
//
//	Crop        base yield  cost/ha  price/kg
//	cereals      3000 kg    1200     0.45
//	vegetables  15000 kg    2800     1.80
//	fruits       8000 kg    3500     2.20
//
// # Randomness and Reproducibility
//
// The draw order inside [BuildCompleteRecord] is fixed, so two builders fed
// identically seeded sources produce identical datasets. Sources are not
// safe for concurrent use; give each goroutine its own or wrap one with
// [NewLockedRandom].
//
// # Profit Margin Sentinel
//
// When revenue rounds to zero the margin is the fixed value -100 (total
// loss) rather than a computed ratio. See [ProfitMarginSentinel].
package domain
