// Package powerpca computes Principal Component Analysis bases with the
// power-iteration method and deflation, then projects data onto them.
//
// 🚀 What is powerpca?
//
//	A small, deterministic PCA toolkit:
//		• Sample covariance with column re-centering
//		• Dominant eigenvector by repeated matrix-vector products
//		• Deflation, one component per pass, zero-padding when covariance runs out
//		• Projection of any dataset onto a full or truncated basis
//		• Plain-text basis persistence (optionally zstd/gzip/lz4 compressed)
//
// ✨ Why power iteration?
//
//   - Easy to audit: every step is a mat-vec, a norm and a subtraction
//   - Reproducible: fixed seed vector, fixed loop order, no randomness
//   - Explicit failure: a component that does not converge stops the build
//
// Under the hood, everything is organized under these packages:
//
//	matrix/             - Dense row-major matrix, kernels, covariance, validators
//	pca/                - Solver (Dominant, Deflate, BuildBasis), Basis, Project, Model
//	tableio/            - CSV tables and persisted matrices, compression codecs, fingerprints
//	internal/config/    - YAML run configuration → solver options
//	internal/telemetry/ - zerolog and Prometheus observers
//	cmd/powerpca/       - the command-line entry point
//
// Quick start:
//
//	go install github.com/katalvlaran/powerpca/cmd/powerpca@latest
//	powerpca --basis-out basis.csv --projected-out projected.csv data.csv
package powerpca
