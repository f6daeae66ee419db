// Package control is the operational surface: metrics snapshots, debug
// probes and the bounded trace journal of pool policy events. Nothing in
// this package sits on the allocation hot path; pools report into it only
// when a policy hook trips or when a caller explicitly snapshots stats.
package control
