// Package mocks provides mock implementations for testing campusgate services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// port interfaces. Hand-written in-memory doubles live in internal/mocks/auth;
// the generated mocks here are for tests that need strict call expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

// Generate mock for CredentialStore interface from internal/ports.
// This creates MockCredentialStore with FindByEmailAndRole.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=credential_store_mock.go github.com/campusgate/campusgate/internal/ports CredentialStore
