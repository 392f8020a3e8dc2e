package cache

import (
	"log/slog"
	"sync"

	"github.com/orbiswatch/state-mirror/pkg/domain"
)

// StateCache is the live in-memory mirror of the backing store. It holds
// one container per entity kind and is the only sanctioned way to read or
// mutate cached state. Construct one at process start with New, hydrate it
// with Bootstrap, and inject it everywhere; there is no package-level
// instance.
//
// A mutex guards each individual operation, so single calls are safe from
// any goroutine. Sequences of calls are not atomic: the usual
// persist-then-update pattern leaves a window in which other goroutines
// observe the cache before it has absorbed the pending write. The mirror
// is eventually, not immediately, consistent with an in-flight mutation.
type StateCache struct {
	mu sync.RWMutex

	accounts             map[int]*domain.Account
	alliances            map[int]*domain.Alliance
	allianceAutoRoles    []*domain.AllianceAutoRole
	allianceSettings     map[int]*domain.AllianceSettings
	cities               map[int]*domain.City
	colors               map[string]*domain.Color
	conditions           map[int]*domain.Condition
	credentials          map[int]*domain.Credentials
	embassies            map[int]*domain.Embassy
	embassyConfigs       map[int]*domain.EmbassyConfig
	forums               map[int]*domain.Forum
	grants               map[int]*domain.Grant
	guildSettings        map[int64]*domain.GuildSettings
	guildWelcomeSettings map[int64]*domain.GuildWelcomeSettings
	menuInterfaces       []*domain.MenuInterface
	menuItems            map[int]*domain.MenuItem
	menus                map[int]*domain.Menu
	nations              map[int]*domain.Nation
	prices               *domain.Prices
	roles                map[int]*domain.Role
	subscriptions        map[int]*domain.Subscription
	targets              map[int]*domain.Target
	targetReminders      map[int]*domain.TargetReminder
	ticketConfigs        map[int]*domain.TicketConfig
	tickets              map[int]*domain.Ticket
	transactions         map[int]*domain.Transaction
	transactionRequests  map[int]*domain.TransactionRequest
	treasures            []*domain.Treasure
	treaties             []*domain.Treaty
	users                []*domain.User

	ready  bool
	logger *slog.Logger
}

// New creates an empty, not-ready cache. It becomes ready only after a
// successful Bootstrap.
func New(logger *slog.Logger) *StateCache {
	return &StateCache{
		accounts:             make(map[int]*domain.Account),
		alliances:            make(map[int]*domain.Alliance),
		allianceSettings:     make(map[int]*domain.AllianceSettings),
		cities:               make(map[int]*domain.City),
		colors:               make(map[string]*domain.Color),
		conditions:           make(map[int]*domain.Condition),
		credentials:          make(map[int]*domain.Credentials),
		embassies:            make(map[int]*domain.Embassy),
		embassyConfigs:       make(map[int]*domain.EmbassyConfig),
		forums:               make(map[int]*domain.Forum),
		grants:               make(map[int]*domain.Grant),
		guildSettings:        make(map[int64]*domain.GuildSettings),
		guildWelcomeSettings: make(map[int64]*domain.GuildWelcomeSettings),
		menuItems:            make(map[int]*domain.MenuItem),
		menus:                make(map[int]*domain.Menu),
		nations:              make(map[int]*domain.Nation),
		roles:                make(map[int]*domain.Role),
		subscriptions:        make(map[int]*domain.Subscription),
		targets:              make(map[int]*domain.Target),
		targetReminders:      make(map[int]*domain.TargetReminder),
		ticketConfigs:        make(map[int]*domain.TicketConfig),
		tickets:              make(map[int]*domain.Ticket),
		transactions:         make(map[int]*domain.Transaction),
		transactionRequests:  make(map[int]*domain.TransactionRequest),
		logger:               logger,
	}
}

// Ready reports whether bootstrap has completed successfully. Subsystems
// must gate cache-backed reads on this flag.
func (c *StateCache) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// mapValues materializes a fresh snapshot slice of a map container.
func mapValues[K comparable, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

// Collection snapshots. Every call materializes a new slice: mutating the
// cache after taking a snapshot never changes entries already taken, and
// two successive snapshots may differ if mutations interleave.

func (c *StateCache) Accounts() []*domain.Account {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.accounts)
}

func (c *StateCache) Alliances() []*domain.Alliance {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.alliances)
}

func (c *StateCache) AllianceAutoRoles() []*domain.AllianceAutoRole {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*domain.AllianceAutoRole(nil), c.allianceAutoRoles...)
}

func (c *StateCache) AllianceSettingsList() []*domain.AllianceSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.allianceSettings)
}

func (c *StateCache) Cities() []*domain.City {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.cities)
}

func (c *StateCache) Colors() []*domain.Color {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.colors)
}

func (c *StateCache) Conditions() []*domain.Condition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.conditions)
}

func (c *StateCache) CredentialsList() []*domain.Credentials {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.credentials)
}

func (c *StateCache) Embassies() []*domain.Embassy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.embassies)
}

func (c *StateCache) EmbassyConfigs() []*domain.EmbassyConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.embassyConfigs)
}

func (c *StateCache) Forums() []*domain.Forum {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.forums)
}

func (c *StateCache) Grants() []*domain.Grant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.grants)
}

func (c *StateCache) GuildSettingsList() []*domain.GuildSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.guildSettings)
}

func (c *StateCache) GuildWelcomeSettingsList() []*domain.GuildWelcomeSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.guildWelcomeSettings)
}

func (c *StateCache) MenuInterfaces() []*domain.MenuInterface {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*domain.MenuInterface(nil), c.menuInterfaces...)
}

func (c *StateCache) MenuItems() []*domain.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.menuItems)
}

func (c *StateCache) Menus() []*domain.Menu {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.menus)
}

func (c *StateCache) Nations() []*domain.Nation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.nations)
}

func (c *StateCache) Roles() []*domain.Role {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.roles)
}

func (c *StateCache) Subscriptions() []*domain.Subscription {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.subscriptions)
}

func (c *StateCache) Targets() []*domain.Target {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.targets)
}

func (c *StateCache) TargetReminders() []*domain.TargetReminder {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.targetReminders)
}

func (c *StateCache) TicketConfigs() []*domain.TicketConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.ticketConfigs)
}

func (c *StateCache) Tickets() []*domain.Ticket {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.tickets)
}

func (c *StateCache) Transactions() []*domain.Transaction {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.transactions)
}

func (c *StateCache) TransactionRequests() []*domain.TransactionRequest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapValues(c.transactionRequests)
}

func (c *StateCache) Treasures() []*domain.Treasure {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*domain.Treasure(nil), c.treasures...)
}

func (c *StateCache) Treaties() []*domain.Treaty {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*domain.Treaty(nil), c.treaties...)
}

func (c *StateCache) Users() []*domain.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*domain.User(nil), c.users...)
}
