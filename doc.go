// Package cardfolio catalogues a trading-card collection. It is designed to be
// local-first: the whole collection lives in memory and is mirrored to a single
// key-value blob after every change.
//
// The core functionalities include:
//   - Price Estimation: a deterministic pseudo-price derived from a card's name
//     (see [EstimatePrice]). It is a simulated value, not a market price.
//   - History Synthesis: six monthly samples trending around the simulated
//     value, drawn from an injectable random source (see [SynthesizeHistory]).
//   - Collection Management: an ordered, newest-first store of entries owned by
//     a [Binder] which persists it through any [Storage].
//   - Data Persistence: encoding and decoding of the collection in the same JSON
//     layout as the browser blob, plus YAML export and JSONPath
//     queries.
//
// This package serves as the foundational logic for the `pok` command-line
// tool. Charts are drawn by the plot package, markdown and HTML views by the
// renderer package.
package cardfolio
