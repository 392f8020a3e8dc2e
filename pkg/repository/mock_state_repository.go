package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/orbiswatch/state-mirror/pkg/domain"
)

// MockStateRepository is a mock implementation of StateRepository for
// testing. It uses testify/mock to allow test assertions on method calls.
type MockStateRepository struct {
	mock.Mock
}

// NewMockStateRepository creates a new mock state repository.
func NewMockStateRepository() *MockStateRepository {
	return &MockStateRepository{}
}

func listResult[T any](args mock.Arguments) ([]*T, error) {
	if v := args.Get(0); v != nil {
		return v.([]*T), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStateRepository) Accounts(ctx context.Context) ([]*domain.Account, error) {
	return listResult[domain.Account](m.Called(ctx))
}

func (m *MockStateRepository) Alliances(ctx context.Context) ([]*domain.Alliance, error) {
	return listResult[domain.Alliance](m.Called(ctx))
}

func (m *MockStateRepository) AllianceAutoRoles(ctx context.Context) ([]*domain.AllianceAutoRole, error) {
	return listResult[domain.AllianceAutoRole](m.Called(ctx))
}

func (m *MockStateRepository) AllianceSettings(ctx context.Context) ([]*domain.AllianceSettings, error) {
	return listResult[domain.AllianceSettings](m.Called(ctx))
}

func (m *MockStateRepository) Cities(ctx context.Context) ([]*domain.City, error) {
	return listResult[domain.City](m.Called(ctx))
}

func (m *MockStateRepository) Colors(ctx context.Context) ([]*domain.Color, error) {
	return listResult[domain.Color](m.Called(ctx))
}

func (m *MockStateRepository) Conditions(ctx context.Context) ([]*domain.Condition, error) {
	return listResult[domain.Condition](m.Called(ctx))
}

func (m *MockStateRepository) Credentials(ctx context.Context) ([]*domain.Credentials, error) {
	return listResult[domain.Credentials](m.Called(ctx))
}

func (m *MockStateRepository) Embassies(ctx context.Context) ([]*domain.Embassy, error) {
	return listResult[domain.Embassy](m.Called(ctx))
}

func (m *MockStateRepository) EmbassyConfigs(ctx context.Context) ([]*domain.EmbassyConfig, error) {
	return listResult[domain.EmbassyConfig](m.Called(ctx))
}

func (m *MockStateRepository) Forums(ctx context.Context) ([]*domain.Forum, error) {
	return listResult[domain.Forum](m.Called(ctx))
}

func (m *MockStateRepository) Grants(ctx context.Context) ([]*domain.Grant, error) {
	return listResult[domain.Grant](m.Called(ctx))
}

func (m *MockStateRepository) GuildSettings(ctx context.Context) ([]*domain.GuildSettings, error) {
	return listResult[domain.GuildSettings](m.Called(ctx))
}

func (m *MockStateRepository) GuildWelcomeSettings(ctx context.Context) ([]*domain.GuildWelcomeSettings, error) {
	return listResult[domain.GuildWelcomeSettings](m.Called(ctx))
}

func (m *MockStateRepository) MenuInterfaces(ctx context.Context) ([]*domain.MenuInterface, error) {
	return listResult[domain.MenuInterface](m.Called(ctx))
}

func (m *MockStateRepository) MenuItems(ctx context.Context) ([]*domain.MenuItem, error) {
	return listResult[domain.MenuItem](m.Called(ctx))
}

func (m *MockStateRepository) Menus(ctx context.Context) ([]*domain.Menu, error) {
	return listResult[domain.Menu](m.Called(ctx))
}

func (m *MockStateRepository) Nations(ctx context.Context) ([]*domain.Nation, error) {
	return listResult[domain.Nation](m.Called(ctx))
}

func (m *MockStateRepository) Prices(ctx context.Context) (*domain.Prices, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*domain.Prices), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStateRepository) Roles(ctx context.Context) ([]*domain.Role, error) {
	return listResult[domain.Role](m.Called(ctx))
}

func (m *MockStateRepository) Subscriptions(ctx context.Context) ([]*domain.Subscription, error) {
	return listResult[domain.Subscription](m.Called(ctx))
}

func (m *MockStateRepository) Targets(ctx context.Context) ([]*domain.Target, error) {
	return listResult[domain.Target](m.Called(ctx))
}

func (m *MockStateRepository) TargetReminders(ctx context.Context) ([]*domain.TargetReminder, error) {
	return listResult[domain.TargetReminder](m.Called(ctx))
}

func (m *MockStateRepository) TicketConfigs(ctx context.Context) ([]*domain.TicketConfig, error) {
	return listResult[domain.TicketConfig](m.Called(ctx))
}

func (m *MockStateRepository) Tickets(ctx context.Context) ([]*domain.Ticket, error) {
	return listResult[domain.Ticket](m.Called(ctx))
}

func (m *MockStateRepository) Transactions(ctx context.Context) ([]*domain.Transaction, error) {
	return listResult[domain.Transaction](m.Called(ctx))
}

func (m *MockStateRepository) TransactionRequests(ctx context.Context) ([]*domain.TransactionRequest, error) {
	return listResult[domain.TransactionRequest](m.Called(ctx))
}

func (m *MockStateRepository) Treasures(ctx context.Context) ([]*domain.Treasure, error) {
	return listResult[domain.Treasure](m.Called(ctx))
}

func (m *MockStateRepository) Treaties(ctx context.Context) ([]*domain.Treaty, error) {
	return listResult[domain.Treaty](m.Called(ctx))
}

func (m *MockStateRepository) Users(ctx context.Context) ([]*domain.User, error) {
	return listResult[domain.User](m.Called(ctx))
}
