// Package generators builds well-known graphs for tests, benchmarks, and
// demos.
//
// Classic parametric families:
//
//   - PathGraph(n)      – the line P_n.
//   - CycleGraph(n)     – the ring C_n.
//   - CompleteGraph(n)  – K_n, every pair joined.
//   - StarGraph(n)      – hub "0" with n leaves.
//
// All classic generators name nodes "0", "1", ... and accept core
// GraphOptions, so any of the four graph variants can be requested:
//
//	dipath, err := generators.PathGraph(10, core.WithDirected(true))
//
// Famous social networks:
//
//   - KarateClubGraph          – Zachary's 34-member karate club, with the
//     post-split faction recorded in the "club" node attribute.
//   - FlorentineFamiliesGraph  – marriage ties among 15 Renaissance
//     Florentine families.
//
// Errors
//
//   - ErrNegativeSize if a classic generator is asked for n < 0.
package generators
