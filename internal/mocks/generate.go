// Package mocks provides mock implementations for testing the client core.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the port interfaces. The mocks are generated using go:generate
// directives.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	mockAPI := mocks.NewMockSessionAPI(ctrl)
//	mockAPI.EXPECT().FetchSession(gomock.Any()).Return(sess, nil)
package mocks

// Generate mock for SessionAPI: FetchSession, Logout
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_api_mock.go github.com/imaginarybank/webcore/internal/ports SessionAPI

// Generate mock for OnboardingAPI: StartIntent, ConfirmKyc, Activate
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=onboarding_api_mock.go github.com/imaginarybank/webcore/internal/ports OnboardingAPI

// Generate mock for BankingAPI: Overview, Statement, SubmitPayment
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=banking_api_mock.go github.com/imaginarybank/webcore/internal/ports BankingAPI

// Generate mock for DocumentUploader: Upload
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=uploader_mock.go github.com/imaginarybank/webcore/internal/ports DocumentUploader

// Generate mock for RegistrationStore: Save, Load, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=registration_store_mock.go github.com/imaginarybank/webcore/internal/ports RegistrationStore

// Generate mock for AuthProvider: Begin, Exchange
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_provider_mock.go github.com/imaginarybank/webcore/internal/ports AuthProvider
