package cache

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/orbiswatch/state-mirror/pkg/domain"
	"github.com/orbiswatch/state-mirror/pkg/errors"
	"github.com/orbiswatch/state-mirror/pkg/repository"
)

// Bootstrap hydrates every container from the backing store. One bulk
// read is issued per entity kind, all reads run concurrently, and the
// cache waits for the full set before populating anything. If any single
// read fails the whole bootstrap fails and the cache stays not-ready: a
// partially populated mirror must never be served from. No timeout is
// imposed here; the caller owns deadline policy through ctx.
func (c *StateCache) Bootstrap(ctx context.Context, repo repository.StateRepository) error {
	var (
		accounts             []*domain.Account
		alliances            []*domain.Alliance
		allianceAutoRoles    []*domain.AllianceAutoRole
		allianceSettings     []*domain.AllianceSettings
		cities               []*domain.City
		colors               []*domain.Color
		conditions           []*domain.Condition
		credentials          []*domain.Credentials
		embassies            []*domain.Embassy
		embassyConfigs       []*domain.EmbassyConfig
		forums               []*domain.Forum
		grants               []*domain.Grant
		guildSettings        []*domain.GuildSettings
		guildWelcomeSettings []*domain.GuildWelcomeSettings
		menuInterfaces       []*domain.MenuInterface
		menuItems            []*domain.MenuItem
		menus                []*domain.Menu
		nations              []*domain.Nation
		prices               *domain.Prices
		roles                []*domain.Role
		subscriptions        []*domain.Subscription
		targets              []*domain.Target
		targetReminders      []*domain.TargetReminder
		ticketConfigs        []*domain.TicketConfig
		tickets              []*domain.Ticket
		transactions         []*domain.Transaction
		transactionRequests  []*domain.TransactionRequest
		treasures            []*domain.Treasure
		treaties             []*domain.Treaty
		users                []*domain.User
	)

	g, gctx := errgroup.WithContext(ctx)
	read := func(kind string, fn func(context.Context) error) {
		g.Go(func() error {
			if err := fn(gctx); err != nil {
				return errors.ErrBootstrapFailed(kind, err)
			}
			return nil
		})
	}

	read("accounts", func(ctx context.Context) (err error) {
		accounts, err = repo.Accounts(ctx)
		return
	})
	read("alliances", func(ctx context.Context) (err error) {
		alliances, err = repo.Alliances(ctx)
		return
	})
	read("alliance auto roles", func(ctx context.Context) (err error) {
		allianceAutoRoles, err = repo.AllianceAutoRoles(ctx)
		return
	})
	read("alliance settings", func(ctx context.Context) (err error) {
		allianceSettings, err = repo.AllianceSettings(ctx)
		return
	})
	read("cities", func(ctx context.Context) (err error) {
		cities, err = repo.Cities(ctx)
		return
	})
	read("colors", func(ctx context.Context) (err error) {
		colors, err = repo.Colors(ctx)
		return
	})
	read("conditions", func(ctx context.Context) (err error) {
		conditions, err = repo.Conditions(ctx)
		return
	})
	read("credentials", func(ctx context.Context) (err error) {
		credentials, err = repo.Credentials(ctx)
		return
	})
	read("embassies", func(ctx context.Context) (err error) {
		embassies, err = repo.Embassies(ctx)
		return
	})
	read("embassy configs", func(ctx context.Context) (err error) {
		embassyConfigs, err = repo.EmbassyConfigs(ctx)
		return
	})
	read("forums", func(ctx context.Context) (err error) {
		forums, err = repo.Forums(ctx)
		return
	})
	read("grants", func(ctx context.Context) (err error) {
		grants, err = repo.Grants(ctx)
		return
	})
	read("guild settings", func(ctx context.Context) (err error) {
		guildSettings, err = repo.GuildSettings(ctx)
		return
	})
	read("guild welcome settings", func(ctx context.Context) (err error) {
		guildWelcomeSettings, err = repo.GuildWelcomeSettings(ctx)
		return
	})
	read("menu interfaces", func(ctx context.Context) (err error) {
		menuInterfaces, err = repo.MenuInterfaces(ctx)
		return
	})
	read("menu items", func(ctx context.Context) (err error) {
		menuItems, err = repo.MenuItems(ctx)
		return
	})
	read("menus", func(ctx context.Context) (err error) {
		menus, err = repo.Menus(ctx)
		return
	})
	read("nations", func(ctx context.Context) (err error) {
		nations, err = repo.Nations(ctx)
		return
	})
	read("prices", func(ctx context.Context) (err error) {
		prices, err = repo.Prices(ctx)
		return
	})
	read("roles", func(ctx context.Context) (err error) {
		roles, err = repo.Roles(ctx)
		return
	})
	read("subscriptions", func(ctx context.Context) (err error) {
		subscriptions, err = repo.Subscriptions(ctx)
		return
	})
	read("targets", func(ctx context.Context) (err error) {
		targets, err = repo.Targets(ctx)
		return
	})
	read("target reminders", func(ctx context.Context) (err error) {
		targetReminders, err = repo.TargetReminders(ctx)
		return
	})
	read("ticket configs", func(ctx context.Context) (err error) {
		ticketConfigs, err = repo.TicketConfigs(ctx)
		return
	})
	read("tickets", func(ctx context.Context) (err error) {
		tickets, err = repo.Tickets(ctx)
		return
	})
	read("transactions", func(ctx context.Context) (err error) {
		transactions, err = repo.Transactions(ctx)
		return
	})
	read("transaction requests", func(ctx context.Context) (err error) {
		transactionRequests, err = repo.TransactionRequests(ctx)
		return
	})
	read("treasures", func(ctx context.Context) (err error) {
		treasures, err = repo.Treasures(ctx)
		return
	})
	read("treaties", func(ctx context.Context) (err error) {
		treaties, err = repo.Treaties(ctx)
		return
	})
	read("users", func(ctx context.Context) (err error) {
		users, err = repo.Users(ctx)
		return
	})

	if err := g.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, a := range accounts {
		c.accounts[a.ID] = a
	}
	for _, a := range alliances {
		c.alliances[a.ID] = a
	}
	c.allianceAutoRoles = allianceAutoRoles
	for _, s := range allianceSettings {
		c.allianceSettings[s.AllianceID] = s
	}
	for _, ct := range cities {
		c.cities[ct.ID] = ct
	}
	for _, cl := range colors {
		c.colors[cl.Name] = cl
	}
	for _, cond := range conditions {
		c.conditions[cond.ID] = cond
	}
	for _, cr := range credentials {
		c.credentials[cr.NationID] = cr
	}
	for _, e := range embassies {
		c.embassies[e.ID] = e
	}
	for _, cfg := range embassyConfigs {
		c.embassyConfigs[cfg.ID] = cfg
	}
	for _, f := range forums {
		c.forums[f.ID] = f
	}
	for _, gr := range grants {
		c.grants[gr.ID] = gr
	}
	for _, s := range guildSettings {
		c.guildSettings[s.GuildID] = s
	}
	for _, s := range guildWelcomeSettings {
		c.guildWelcomeSettings[s.GuildID] = s
	}
	c.menuInterfaces = menuInterfaces
	for _, i := range menuItems {
		c.menuItems[i.ID] = i
	}
	for _, m := range menus {
		c.menus[m.ID] = m
	}
	for _, n := range nations {
		c.nations[n.ID] = n
	}
	c.prices = prices
	for _, r := range roles {
		c.roles[r.ID] = r
	}
	for _, s := range subscriptions {
		c.subscriptions[s.ID] = s
	}
	for _, t := range targets {
		c.targets[t.ID] = t
	}
	for _, r := range targetReminders {
		c.targetReminders[r.ID] = r
	}
	for _, cfg := range ticketConfigs {
		c.ticketConfigs[cfg.ID] = cfg
	}
	for _, t := range tickets {
		c.tickets[t.ID] = t
	}
	for _, t := range transactions {
		c.transactions[t.ID] = t
	}
	for _, r := range transactionRequests {
		c.transactionRequests[r.ID] = r
	}
	c.treasures = treasures

	// Treaties resolve after the alliance container is in place. Rows
	// already marked stopped never enter the live set.
	c.treaties = c.treaties[:0]
	for _, t := range treaties {
		if !t.Active() {
			continue
		}
		t.Resolve(c.alliances[t.FromID], c.alliances[t.ToID])
		c.treaties = append(c.treaties, t)
	}
	c.users = users

	c.ready = true
	c.logger.Info("cache hydrated",
		"alliances", len(c.alliances),
		"nations", len(c.nations),
		"cities", len(c.cities),
		"treaties", len(c.treaties),
		"users", len(c.users),
		"treasures", len(c.treasures),
		"colors", len(c.colors),
	)

	return nil
}
