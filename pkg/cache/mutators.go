package cache

import (
	"github.com/orbiswatch/state-mirror/pkg/domain"
	"github.com/orbiswatch/state-mirror/pkg/errors"
)

// Adds insert or overwrite by identity. They never validate foreign
// consistency; callers invoke them immediately after a successful
// persist, and the hook path shares the same semantics.

func (c *StateCache) AddAccount(a *domain.Account) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts[a.ID] = a
}

func (c *StateCache) AddAllianceAutoRole(r *domain.AllianceAutoRole) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.allianceAutoRoles = append(c.allianceAutoRoles, r)
}

func (c *StateCache) AddAllianceSettings(s *domain.AllianceSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.allianceSettings[s.AllianceID] = s
}

func (c *StateCache) AddCondition(cond *domain.Condition) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conditions[cond.ID] = cond
}

func (c *StateCache) AddCredentials(cr *domain.Credentials) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.credentials[cr.NationID] = cr
}

func (c *StateCache) AddEmbassy(e *domain.Embassy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.embassies[e.ID] = e
}

func (c *StateCache) AddEmbassyConfig(cfg *domain.EmbassyConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.embassyConfigs[cfg.ID] = cfg
}

func (c *StateCache) AddGrant(g *domain.Grant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grants[g.ID] = g
}

func (c *StateCache) AddGuildSettings(s *domain.GuildSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guildSettings[s.GuildID] = s
}

func (c *StateCache) AddGuildWelcomeSettings(s *domain.GuildWelcomeSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guildWelcomeSettings[s.GuildID] = s
}

func (c *StateCache) AddMenu(m *domain.Menu) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.menus[m.ID] = m
}

func (c *StateCache) AddMenuInterface(i *domain.MenuInterface) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.menuInterfaces = append(c.menuInterfaces, i)
}

func (c *StateCache) AddMenuItem(i *domain.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.menuItems[i.ID] = i
}

func (c *StateCache) AddRole(r *domain.Role) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roles[r.ID] = r
}

func (c *StateCache) AddSubscription(s *domain.Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscriptions[s.ID] = s
}

func (c *StateCache) AddTarget(t *domain.Target) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.targets[t.ID] = t
}

func (c *StateCache) AddTargetReminder(r *domain.TargetReminder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.targetReminders[r.ID] = r
}

func (c *StateCache) AddTicket(t *domain.Ticket) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tickets[t.ID] = t
}

func (c *StateCache) AddTicketConfig(cfg *domain.TicketConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticketConfigs[cfg.ID] = cfg
}

func (c *StateCache) AddTransaction(t *domain.Transaction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transactions[t.ID] = t
}

func (c *StateCache) AddTransactionRequest(r *domain.TransactionRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transactionRequests[r.ID] = r
}

func (c *StateCache) AddUser(u *domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users = append(c.users, u)
}

// Removes are strict: removing an entity that is not cached is a caller
// bug and returns ErrCodeRemoveMissing. The hook delete path is the
// tolerant one; the asymmetry is deliberate and preserved.

func (c *StateCache) RemoveAccount(a *domain.Account) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.accounts[a.ID]; !ok {
		return errors.ErrRemoveMissing("account", a.ID)
	}
	delete(c.accounts, a.ID)
	return nil
}

func (c *StateCache) RemoveAllianceAutoRole(r *domain.AllianceAutoRole) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for n, existing := range c.allianceAutoRoles {
		if existing.Matches(r) {
			c.allianceAutoRoles = append(c.allianceAutoRoles[:n], c.allianceAutoRoles[n+1:]...)
			return nil
		}
	}
	return errors.ErrRemoveMissing("alliance auto role", r.RoleID)
}

func (c *StateCache) RemoveCondition(cond *domain.Condition) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.conditions[cond.ID]; !ok {
		return errors.ErrRemoveMissing("condition", cond.ID)
	}
	delete(c.conditions, cond.ID)
	return nil
}

func (c *StateCache) RemoveCredentials(cr *domain.Credentials) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.credentials[cr.NationID]; !ok {
		return errors.ErrRemoveMissing("credentials", cr.NationID)
	}
	delete(c.credentials, cr.NationID)
	return nil
}

func (c *StateCache) RemoveEmbassy(e *domain.Embassy) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.embassies[e.ID]; !ok {
		return errors.ErrRemoveMissing("embassy", e.ID)
	}
	delete(c.embassies, e.ID)
	return nil
}

// RemoveMenuInterface deletes the first interface posted with the given
// message. Unlike the other removers it is a silent no-op when nothing
// matches, preserved from the source surface.
func (c *StateCache) RemoveMenuInterface(messageID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for n, i := range c.menuInterfaces {
		if i.MessageID == messageID {
			c.menuInterfaces = append(c.menuInterfaces[:n], c.menuInterfaces[n+1:]...)
			return
		}
	}
}

func (c *StateCache) RemoveRole(r *domain.Role) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.roles[r.ID]; !ok {
		return errors.ErrRemoveMissing("role", r.ID)
	}
	delete(c.roles, r.ID)
	return nil
}

func (c *StateCache) RemoveSubscription(s *domain.Subscription) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.subscriptions[s.ID]; !ok {
		return errors.ErrRemoveMissing("subscription", s.ID)
	}
	delete(c.subscriptions, s.ID)
	return nil
}

func (c *StateCache) RemoveTargetReminder(r *domain.TargetReminder) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.targetReminders[r.ID]; !ok {
		return errors.ErrRemoveMissing("target reminder", r.ID)
	}
	delete(c.targetReminders, r.ID)
	return nil
}

func (c *StateCache) RemoveTransaction(t *domain.Transaction) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.transactions[t.ID]; !ok {
		return errors.ErrRemoveMissing("transaction", t.ID)
	}
	delete(c.transactions, t.ID)
	return nil
}

func (c *StateCache) RemoveTransactionRequest(r *domain.TransactionRequest) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.transactionRequests[r.ID]; !ok {
		return errors.ErrRemoveMissing("transaction request", r.ID)
	}
	delete(c.transactionRequests, r.ID)
	return nil
}

func (c *StateCache) RemoveUser(u *domain.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for n, existing := range c.users {
		if existing.UserID == u.UserID {
			c.users = append(c.users[:n], c.users[n+1:]...)
			return nil
		}
	}
	return errors.ErrRemoveMissing("user", u.UserID)
}
