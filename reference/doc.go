// Package reference holds the brute-force montrealer evaluators: direct
// sums of walk weights over the families enumerated by walks. They are
// the ground truth the fast evaluators are validated against, with
// O(walk count · n) cost — (2n-2)!! walks for Mtl, (n+1)·(2n-2)!! for
// Lmtl — so they are meant for cross-checks on small n, never for
// production-scale inputs.
package reference
