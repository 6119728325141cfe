// Package ffsroot searches for an integer square root of a value congruent
// to an observed residue modulo a public ring size.
//
// In the Feige-Fiat-Shamir identification protocol the prover's response y
// satisfies y² ≡ x·∏vᵢ^eᵢ (mod n). An adversary who only knows n and the
// expected right-hand side can try to express it as a plain square by
// scanning the residue family expected + k·n for k = 0, 1, 2, ... up to a
// cap and testing each member for being a perfect square.
//
// The test is exact: it uses the arbitrary-precision integer square root of
// math/big and squares back, so candidates far beyond 2^53 are classified
// correctly.
//
// WARNING: This package is for security research and teaching purposes only.
//
// # Quick Start
//
//	client := ffsroot.NewClient()
//
//	result, err := client.Search(ctx, big.NewInt(84436625), big.NewInt(39778375), ffsroot.DefaultMaxAttempts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Found {
//	    fmt.Printf("k = %d, y = %s\n", result.K, result.Y)
//	}
//
// # Parallel Search
//
// The parallel strategy splits the offset range into batches handled by a
// worker pool and still reports the smallest matching offset:
//
//	strategy := ffsroot.NewParallelStrategy().
//	    WithConfig(ffsroot.ParallelConfig{Workers: 8, BatchSize: 4096})
//
//	client := ffsroot.NewClient().WithStrategy(strategy)
//
// # Custom Strategies
//
// Implement the SearchStrategy interface to plug in another search:
//
//	type MyStrategy struct{}
//
//	func (s *MyStrategy) Search(ctx context.Context, p ffsroot.Problem) (*ffsroot.SearchResult, error) {
//	    // Your custom search logic
//	}
//
//	func (s *MyStrategy) Name() string {
//	    return "MyStrategy"
//	}
package ffsroot
