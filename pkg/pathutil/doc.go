// Package pathutil provides filesystem-aware path helpers.
//
// This package implements rooted resolution, which guarantees a resolved
// path stays inside a given root even across symlinks, and scratch-path
// allocation, which hands out memoized unique temporary paths per key.
package pathutil
