// Package mock provides test doubles for the ai package interfaces.
// The mocks generate deterministic embeddings and canned narratives so
// tests can run without network access or model inference.
package mock
