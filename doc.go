// Package assetflow compares a personal asset allocation with a model
// portfolio and suggests how to rebalance it.
//
// The core functionalities include:
//   - Allocation Normalizer: converting the amounts held per asset class
//     (cash, savings, stocks, ETFs, crypto, ...) into percentages of the
//     total, see [Normalize].
//   - Model Catalog: a static set of named target allocations, like
//     "Income", "Growth" or "Balanced", see [DefaultCatalog].
//   - Rebalance Calculator: the gap between the current and the target
//     percentage of each asset class, and the amount to buy or sell to close
//     it, see [Compare].
//   - Allocation files: reading and writing allocations in JSON or CSV, and
//     importing them from any JSON export with JSONPath queries.
//
// Every function is pure: the whole pipeline ([Simulate]) is meant to be run
// again from scratch on every change of its inputs.
//
// This package serves as the foundational logic for the `afc` command-line
// tool, the HTTP API in package server, and the report layout in package
// renderer.
package assetflow
