package contract

import (
	"context"

	"github.com/huangsam/trajectory/schema"
	"github.com/stretchr/testify/mock"
)

// MockDataSource is a mock implementation of DataSource for testing.
type MockDataSource struct {
	mock.Mock
}

var _ DataSource = &MockDataSource{} // Compile-time check

// ListSummary implements the DataSource interface.
func (m *MockDataSource) ListSummary(ctx context.Context) ([]schema.CountryRecord, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]schema.CountryRecord)
	return records, args.Error(1)
}

// DailyHistory implements the DataSource interface.
func (m *MockDataSource) DailyHistory(ctx context.Context, identifier string) ([]schema.DailyRecord, error) {
	args := m.Called(ctx, identifier)
	records, _ := args.Get(0).([]schema.DailyRecord)
	return records, args.Error(1)
}
