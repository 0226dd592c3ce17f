// Package badger provides BadgerDB-backed implementations of the storage
// interfaces. A single Backend owns the database; the vector and assessment
// stores share it, so both can live in one database file.
package badger
