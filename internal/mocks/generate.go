// Package mocks contains generated gomock doubles for the interfaces in
// internal/ports. Regenerate with `go generate ./internal/mocks/...` after
// changing a port; the generated files are checked in so tests run without
// codegen tooling installed.
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=content_client_mock.go github.com/genzet/journal-ui/internal/ports ContentClient

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=auth_provider_mock.go github.com/genzet/journal-ui/internal/ports AuthProvider

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=session_store_mock.go github.com/genzet/journal-ui/internal/ports SessionStore

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=cache_repository_mock.go github.com/genzet/journal-ui/internal/ports CacheRepository
