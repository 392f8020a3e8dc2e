package cache

import "github.com/orbiswatch/state-mirror/pkg/domain"

// Lookups return nil when the entity is absent; absence is a normal,
// expected outcome, never an error. Composite lookups are linear scans
// with first-match-wins semantics: the cache does not enforce that at
// most one entry matches, callers maintain that as a precondition.

func (c *StateCache) GetAccount(id int) *domain.Account {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accounts[id]
}

func (c *StateCache) GetAlliance(id int) *domain.Alliance {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.alliances[id]
}

func (c *StateCache) GetAllianceSettings(allianceID int) *domain.AllianceSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.allianceSettings[allianceID]
}

func (c *StateCache) GetCity(id int) *domain.City {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cities[id]
}

func (c *StateCache) GetColor(name string) *domain.Color {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.colors[name]
}

func (c *StateCache) GetCondition(id int) *domain.Condition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conditions[id]
}

func (c *StateCache) GetCredentials(nationID int) *domain.Credentials {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.credentials[nationID]
}

func (c *StateCache) GetEmbassy(id int) *domain.Embassy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.embassies[id]
}

func (c *StateCache) GetEmbassyConfig(id int) *domain.EmbassyConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.embassyConfigs[id]
}

func (c *StateCache) GetForum(id int) *domain.Forum {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.forums[id]
}

func (c *StateCache) GetGrant(id int) *domain.Grant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.grants[id]
}

func (c *StateCache) GetGuildSettings(guildID int64) *domain.GuildSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.guildSettings[guildID]
}

func (c *StateCache) GetGuildWelcomeSettings(guildID int64) *domain.GuildWelcomeSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.guildWelcomeSettings[guildID]
}

// GetMenuInterface finds a posted menu instance by its (menu, message)
// pair.
func (c *StateCache) GetMenuInterface(menuID int, messageID int64) *domain.MenuInterface {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, i := range c.menuInterfaces {
		if i.MenuID == menuID && i.MessageID == messageID {
			return i
		}
	}
	return nil
}

func (c *StateCache) GetMenuItem(id int) *domain.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.menuItems[id]
}

func (c *StateCache) GetMenu(id int) *domain.Menu {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.menus[id]
}

func (c *StateCache) GetNation(id int) *domain.Nation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nations[id]
}

// GetPrices returns the live market price snapshot, nil before the first
// bootstrap has hydrated it.
func (c *StateCache) GetPrices() *domain.Prices {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.prices
}

func (c *StateCache) GetRole(id int) *domain.Role {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.roles[id]
}

func (c *StateCache) GetSubscription(id int) *domain.Subscription {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.subscriptions[id]
}

func (c *StateCache) GetTarget(id int) *domain.Target {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.targets[id]
}

func (c *StateCache) GetTargetReminder(id int) *domain.TargetReminder {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.targetReminders[id]
}

func (c *StateCache) GetTicketConfig(id int) *domain.TicketConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ticketConfigs[id]
}

func (c *StateCache) GetTicket(id int) *domain.Ticket {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickets[id]
}

func (c *StateCache) GetTransaction(id int) *domain.Transaction {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.transactions[id]
}

func (c *StateCache) GetTransactionRequest(id int) *domain.TransactionRequest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.transactionRequests[id]
}

// GetTreasure finds a treasure by name; names are unique among live
// treasures.
func (c *StateCache) GetTreasure(name string) *domain.Treasure {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.treasures {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// GetTreaty finds a treaty by its (from, to, type) triple.
func (c *StateCache) GetTreaty(fromID, toID int, treatyType string) *domain.Treaty {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.treaties {
		if t.FromID == fromID && t.ToID == toID && t.Type == treatyType {
			return t
		}
	}
	return nil
}

// GetUser finds a user by either identity: the given id may be a Discord
// user ID or a nation ID.
func (c *StateCache) GetUser(id int64) *domain.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, u := range c.users {
		if u.MatchesID(id) {
			return u
		}
	}
	return nil
}
