// Package network models and generates synthetic telecommunication networks.
//
// # Model
//
// A [Network] is a list of [Station] values, each owning the [Client]
// records generated for it, plus a list of undirected [Link] values between
// station codes. Networks are built once by a [Generator] and not mutated
// afterwards.
//
// # Link Count
//
// The number of links is not a parameter. For N stations the generator
// always emits exactly
//
//	M = ((N-1)*(N-2))/2 + 1
//
// links (integer division), one more than a complete graph on N-1 vertices
// has. [MinLinks] computes M and rejects N < 3. The count is a floor that
// makes a connected result likely; it does not guarantee connectivity, and
// [ComputeStats] reports the actual number of components.
//
// # Strategies
//
// Two sampling strategies produce the links:
//
//   - [StrategyRejection] draws two codes with replacement and redraws on a
//     self-pair or an already chosen pair. Links keep the order in which
//     their endpoints were drawn. Draws are capped at [MaxAttempts].
//   - [StrategyShuffle] shuffles the list of all N*(N-1)/2 pairs and takes
//     the first M, choosing each link's orientation at random.
//
// Both emit exactly M distinct, non-self links whose endpoints are all
// catalog codes.
//
// # Randomness
//
// All randomness comes from the *rand.Rand handed to [NewGenerator]. Use
// [NewRand] with a fixed seed for reproducible output.
//
// # Checking
//
// [Check] verifies every structural invariant of a network and reports all
// violations at once, which makes it suitable both as a post-generation
// assertion and for auditing documents produced elsewhere.
package network
