// Package domain contains the core model for combomatic: the cyclic
// digit ring, combinations, and the guess enumeration/ranking logic.
//
// The domain is pure: it does not parse flags, read files, or print.
// The CLI and infra adapters map into/from these types.
package domain
