package repository

import (
	"context"

	"github.com/orbiswatch/state-mirror/pkg/domain"
)

// StateRepository defines the bulk reads the cache bootstrap issues, one
// per entity kind. Implementations return every persisted row of a kind;
// filtering (for example dropping stopped treaties) belongs to the cache.
//
// Three kinds break the one-row-one-entity pattern: Colors and Treasures
// read only the most recent snapshot row and fan its nested payload out
// into one entity per element, and Prices reads the most recent snapshot
// row into the single live price entity.
type StateRepository interface {
	Accounts(ctx context.Context) ([]*domain.Account, error)
	Alliances(ctx context.Context) ([]*domain.Alliance, error)
	AllianceAutoRoles(ctx context.Context) ([]*domain.AllianceAutoRole, error)
	AllianceSettings(ctx context.Context) ([]*domain.AllianceSettings, error)
	Cities(ctx context.Context) ([]*domain.City, error)
	Colors(ctx context.Context) ([]*domain.Color, error)
	Conditions(ctx context.Context) ([]*domain.Condition, error)
	Credentials(ctx context.Context) ([]*domain.Credentials, error)
	Embassies(ctx context.Context) ([]*domain.Embassy, error)
	EmbassyConfigs(ctx context.Context) ([]*domain.EmbassyConfig, error)
	Forums(ctx context.Context) ([]*domain.Forum, error)
	Grants(ctx context.Context) ([]*domain.Grant, error)
	GuildSettings(ctx context.Context) ([]*domain.GuildSettings, error)
	GuildWelcomeSettings(ctx context.Context) ([]*domain.GuildWelcomeSettings, error)
	MenuInterfaces(ctx context.Context) ([]*domain.MenuInterface, error)
	MenuItems(ctx context.Context) ([]*domain.MenuItem, error)
	Menus(ctx context.Context) ([]*domain.Menu, error)
	Nations(ctx context.Context) ([]*domain.Nation, error)
	Prices(ctx context.Context) (*domain.Prices, error)
	Roles(ctx context.Context) ([]*domain.Role, error)
	Subscriptions(ctx context.Context) ([]*domain.Subscription, error)
	Targets(ctx context.Context) ([]*domain.Target, error)
	TargetReminders(ctx context.Context) ([]*domain.TargetReminder, error)
	TicketConfigs(ctx context.Context) ([]*domain.TicketConfig, error)
	Tickets(ctx context.Context) ([]*domain.Ticket, error)
	Transactions(ctx context.Context) ([]*domain.Transaction, error)
	TransactionRequests(ctx context.Context) ([]*domain.TransactionRequest, error)
	Treasures(ctx context.Context) ([]*domain.Treasure, error)
	Treaties(ctx context.Context) ([]*domain.Treaty, error)
	Users(ctx context.Context) ([]*domain.User, error)
}
