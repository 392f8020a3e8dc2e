package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/lib/pq" // PostgreSQL driver and array support

	"github.com/orbiswatch/state-mirror/pkg/domain"
	"github.com/orbiswatch/state-mirror/pkg/errors"
)

// PostgresStateRepository implements StateRepository using PostgreSQL.
type PostgresStateRepository struct {
	db *sql.DB
}

// NewPostgresStateRepository creates a new PostgreSQL-backed state repository.
func NewPostgresStateRepository(db *sql.DB) *PostgresStateRepository {
	return &PostgresStateRepository{
		db: db,
	}
}

// queryAll runs a bulk read and scans every row with the given scan
// function. All read errors are wrapped as database errors under the
// given operation name.
func queryAll[T any](ctx context.Context, db *sql.DB, op, query string, scan func(*sql.Rows) (*T, error)) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.ErrDatabaseError(op, err)
	}
	defer func() { _ = rows.Close() }()

	var out []*T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, errors.ErrDatabaseError(op, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError(op, err)
	}
	return out, nil
}

func (r *PostgresStateRepository) Accounts(ctx context.Context) ([]*domain.Account, error) {
	query := `SELECT id, owner_id, alliance_id, name, balance, "primary" FROM accounts`
	return queryAll(ctx, r.db, "read accounts", query, func(rows *sql.Rows) (*domain.Account, error) {
		var (
			a       domain.Account
			balance []byte
		)
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.AllianceID, &a.Name, &balance, &a.Primary); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(balance, &a.Balance); err != nil {
			return nil, err
		}
		return &a, nil
	})
}

func (r *PostgresStateRepository) Alliances(ctx context.Context) ([]*domain.Alliance, error) {
	query := `
		SELECT id, name, acronym, score, color, founded, accepts_members,
		       flag, forum_link, discord_link
		FROM alliances
	`
	return queryAll(ctx, r.db, "read alliances", query, func(rows *sql.Rows) (*domain.Alliance, error) {
		var a domain.Alliance
		err := rows.Scan(&a.ID, &a.Name, &a.Acronym, &a.Score, &a.Color, &a.Founded,
			&a.AcceptsMembers, &a.Flag, &a.ForumLink, &a.DiscordLink)
		return &a, err
	})
}

func (r *PostgresStateRepository) AllianceAutoRoles(ctx context.Context) ([]*domain.AllianceAutoRole, error) {
	query := `SELECT role_id, guild_id, alliance_id FROM alliance_auto_roles`
	return queryAll(ctx, r.db, "read alliance auto roles", query, func(rows *sql.Rows) (*domain.AllianceAutoRole, error) {
		var role domain.AllianceAutoRole
		err := rows.Scan(&role.RoleID, &role.GuildID, &role.AllianceID)
		return &role, err
	})
}

func (r *PostgresStateRepository) AllianceSettings(ctx context.Context) ([]*domain.AllianceSettings, error) {
	query := `
		SELECT alliance_id, default_raid_condition, withdraw_channel_ids,
		       require_withdraw_approval, offshore_id
		FROM alliance_settings
	`
	return queryAll(ctx, r.db, "read alliance settings", query, func(rows *sql.Rows) (*domain.AllianceSettings, error) {
		var (
			s        domain.AllianceSettings
			channels pq.Int64Array
		)
		err := rows.Scan(&s.AllianceID, &s.DefaultRaidCondition, &channels,
			&s.RequireWithdrawApproval, &s.OffshoreID)
		s.WithdrawChannelIDs = channels
		return &s, err
	})
}

func (r *PostgresStateRepository) Cities(ctx context.Context) ([]*domain.City, error) {
	query := `SELECT id, nation_id, name, capital, infrastructure, land, powered, founded FROM cities`
	return queryAll(ctx, r.db, "read cities", query, func(rows *sql.Rows) (*domain.City, error) {
		var c domain.City
		err := rows.Scan(&c.ID, &c.NationID, &c.Name, &c.Capital, &c.Infrastructure,
			&c.Land, &c.Powered, &c.Founded)
		return &c, err
	})
}

// Colors reads the most recent color snapshot row and fans its nested
// color list out into one entity per element.
func (r *PostgresStateRepository) Colors(ctx context.Context) ([]*domain.Color, error) {
	query := `SELECT colors FROM colors ORDER BY datetime DESC LIMIT 1`

	var payload []byte
	if err := r.db.QueryRowContext(ctx, query).Scan(&payload); err != nil {
		return nil, errors.ErrDatabaseError("read colors", err)
	}

	var colors []*domain.Color
	if err := json.Unmarshal(payload, &colors); err != nil {
		return nil, errors.ErrDatabaseError("decode color snapshot", err)
	}
	return colors, nil
}

func (r *PostgresStateRepository) Conditions(ctx context.Context) ([]*domain.Condition, error) {
	query := `SELECT id, owner_id, name, value FROM conditions`
	return queryAll(ctx, r.db, "read conditions", query, func(rows *sql.Rows) (*domain.Condition, error) {
		var c domain.Condition
		err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Value)
		return &c, err
	})
}

func (r *PostgresStateRepository) Credentials(ctx context.Context) ([]*domain.Credentials, error) {
	query := `SELECT nation_id, api_key FROM credentials`
	return queryAll(ctx, r.db, "read credentials", query, func(rows *sql.Rows) (*domain.Credentials, error) {
		var c domain.Credentials
		err := rows.Scan(&c.NationID, &c.APIKey)
		return &c, err
	})
}

func (r *PostgresStateRepository) Embassies(ctx context.Context) ([]*domain.Embassy, error) {
	query := `SELECT id, alliance_id, guild_id, channel_id, config_id, archived FROM embassies`
	return queryAll(ctx, r.db, "read embassies", query, func(rows *sql.Rows) (*domain.Embassy, error) {
		var e domain.Embassy
		err := rows.Scan(&e.ID, &e.AllianceID, &e.GuildID, &e.ChannelID, &e.ConfigID, &e.Archived)
		return &e, err
	})
}

func (r *PostgresStateRepository) EmbassyConfigs(ctx context.Context) ([]*domain.EmbassyConfig, error) {
	query := `SELECT id, guild_id, category_id, start_message FROM embassy_configs`
	return queryAll(ctx, r.db, "read embassy configs", query, func(rows *sql.Rows) (*domain.EmbassyConfig, error) {
		var cfg domain.EmbassyConfig
		err := rows.Scan(&cfg.ID, &cfg.GuildID, &cfg.CategoryID, &cfg.StartMessage)
		return &cfg, err
	})
}

func (r *PostgresStateRepository) Forums(ctx context.Context) ([]*domain.Forum, error) {
	query := `SELECT id, name, link FROM forums`
	return queryAll(ctx, r.db, "read forums", query, func(rows *sql.Rows) (*domain.Forum, error) {
		var f domain.Forum
		err := rows.Scan(&f.ID, &f.Name, &f.Link)
		return &f, err
	})
}

func (r *PostgresStateRepository) Grants(ctx context.Context) ([]*domain.Grant, error) {
	query := `SELECT id, recipient_id, alliance_id, resources, note, status FROM grants`
	return queryAll(ctx, r.db, "read grants", query, func(rows *sql.Rows) (*domain.Grant, error) {
		var (
			g         domain.Grant
			resources []byte
		)
		if err := rows.Scan(&g.ID, &g.RecipientID, &g.AllianceID, &resources, &g.Note, &g.Status); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(resources, &g.Resources); err != nil {
			return nil, err
		}
		return &g, nil
	})
}

func (r *PostgresStateRepository) GuildSettings(ctx context.Context) ([]*domain.GuildSettings, error) {
	query := `SELECT guild_id, purpose, purpose_argument, manager_role_ids FROM guild_settings`
	return queryAll(ctx, r.db, "read guild settings", query, func(rows *sql.Rows) (*domain.GuildSettings, error) {
		var (
			s     domain.GuildSettings
			roles pq.Int64Array
		)
		err := rows.Scan(&s.GuildID, &s.Purpose, &s.PurposeArgument, &roles)
		s.ManagerRoleIDs = roles
		return &s, err
	})
}

func (r *PostgresStateRepository) GuildWelcomeSettings(ctx context.Context) ([]*domain.GuildWelcomeSettings, error) {
	query := `
		SELECT guild_id, welcome_message, welcome_channel_ids, join_role_ids,
		       verified_role_ids, member_role_ids, diplomat_role_ids, verified_nickname
		FROM guild_welcome_settings
	`
	return queryAll(ctx, r.db, "read guild welcome settings", query, func(rows *sql.Rows) (*domain.GuildWelcomeSettings, error) {
		var (
			s                                              domain.GuildWelcomeSettings
			channels, joinRoles, verified, member, diplomat pq.Int64Array
		)
		err := rows.Scan(&s.GuildID, &s.WelcomeMessage, &channels, &joinRoles,
			&verified, &member, &diplomat, &s.VerifiedNickname)
		s.WelcomeChannelIDs = channels
		s.JoinRoleIDs = joinRoles
		s.VerifiedRoleIDs = verified
		s.MemberRoleIDs = member
		s.DiplomatRoleIDs = diplomat
		return &s, err
	})
}

func (r *PostgresStateRepository) MenuInterfaces(ctx context.Context) ([]*domain.MenuInterface, error) {
	query := `SELECT menu_id, guild_id, channel_id, message_id FROM menu_interfaces`
	return queryAll(ctx, r.db, "read menu interfaces", query, func(rows *sql.Rows) (*domain.MenuInterface, error) {
		var i domain.MenuInterface
		err := rows.Scan(&i.MenuID, &i.GuildID, &i.ChannelID, &i.MessageID)
		return &i, err
	})
}

func (r *PostgresStateRepository) MenuItems(ctx context.Context) ([]*domain.MenuItem, error) {
	query := `SELECT id, guild_id, type, data FROM menu_items`
	return queryAll(ctx, r.db, "read menu items", query, func(rows *sql.Rows) (*domain.MenuItem, error) {
		var (
			i    domain.MenuItem
			data []byte
		)
		err := rows.Scan(&i.ID, &i.GuildID, &i.Type, &data)
		i.Data = data
		return &i, err
	})
}

func (r *PostgresStateRepository) Menus(ctx context.Context) ([]*domain.Menu, error) {
	query := `SELECT id, guild_id, name, description, layout FROM menus`
	return queryAll(ctx, r.db, "read menus", query, func(rows *sql.Rows) (*domain.Menu, error) {
		var (
			m      domain.Menu
			layout []byte
		)
		if err := rows.Scan(&m.ID, &m.GuildID, &m.Name, &m.Description, &layout); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(layout, &m.Layout); err != nil {
			return nil, err
		}
		return &m, nil
	})
}

func (r *PostgresStateRepository) Nations(ctx context.Context) ([]*domain.Nation, error) {
	query := `
		SELECT id, name, leader, alliance_id, alliance_position, continent,
		       war_policy, domestic_policy, color, num_cities, score, flag,
		       vacation_mode_turns, beige_turns, founded
		FROM nations
	`
	return queryAll(ctx, r.db, "read nations", query, func(rows *sql.Rows) (*domain.Nation, error) {
		var n domain.Nation
		err := rows.Scan(&n.ID, &n.Name, &n.Leader, &n.AllianceID, &n.AlliancePosition,
			&n.Continent, &n.WarPolicy, &n.DomesticPolicy, &n.Color, &n.NumCities,
			&n.Score, &n.Flag, &n.VacationModeTurns, &n.BeigeTurns, &n.Founded)
		return &n, err
	})
}

// Prices reads the most recent market price snapshot row. Each resource
// column holds one serialized ResourcePrice.
func (r *PostgresStateRepository) Prices(ctx context.Context) (*domain.Prices, error) {
	query := `
		SELECT datetime, coal, oil, uranium, iron, bauxite, lead,
		       gasoline, munitions, steel, aluminum, food, credits
		FROM prices ORDER BY datetime DESC LIMIT 1
	`

	var (
		p    domain.Prices
		cols [12][]byte
	)
	err := r.db.QueryRowContext(ctx, query).Scan(&p.Timestamp,
		&cols[0], &cols[1], &cols[2], &cols[3], &cols[4], &cols[5],
		&cols[6], &cols[7], &cols[8], &cols[9], &cols[10], &cols[11])
	if err != nil {
		return nil, errors.ErrDatabaseError("read prices", err)
	}

	targets := []*domain.ResourcePrice{
		&p.Coal, &p.Oil, &p.Uranium, &p.Iron, &p.Bauxite, &p.Lead,
		&p.Gasoline, &p.Munitions, &p.Steel, &p.Aluminum, &p.Food, &p.Credits,
	}
	for n, raw := range cols {
		if err := json.Unmarshal(raw, targets[n]); err != nil {
			return nil, errors.ErrDatabaseError("decode price snapshot", err)
		}
	}
	return &p, nil
}

func (r *PostgresStateRepository) Roles(ctx context.Context) ([]*domain.Role, error) {
	query := `SELECT id, name, alliance_id, rank, permissions, member_ids FROM roles`
	return queryAll(ctx, r.db, "read roles", query, func(rows *sql.Rows) (*domain.Role, error) {
		var (
			role    domain.Role
			members pq.Int64Array
		)
		err := rows.Scan(&role.ID, &role.Name, &role.AllianceID, &role.Rank,
			&role.Permissions, &members)
		role.MemberIDs = members
		return &role, err
	})
}

func (r *PostgresStateRepository) Subscriptions(ctx context.Context) ([]*domain.Subscription, error) {
	query := `SELECT id, token, guild_id, channel_id, category, type, sub_types, arguments FROM subscriptions`
	return queryAll(ctx, r.db, "read subscriptions", query, func(rows *sql.Rows) (*domain.Subscription, error) {
		var (
			s         domain.Subscription
			subTypes  pq.StringArray
			arguments pq.Int64Array
		)
		err := rows.Scan(&s.ID, &s.Token, &s.GuildID, &s.ChannelID, &s.Category,
			&s.Type, &subTypes, &arguments)
		s.SubTypes = subTypes
		s.Arguments = arguments
		return &s, err
	})
}

func (r *PostgresStateRepository) Targets(ctx context.Context) ([]*domain.Target, error) {
	query := `SELECT id, owner_id, nation_id, note FROM targets`
	return queryAll(ctx, r.db, "read targets", query, func(rows *sql.Rows) (*domain.Target, error) {
		var t domain.Target
		err := rows.Scan(&t.ID, &t.OwnerID, &t.NationID, &t.Note)
		return &t, err
	})
}

func (r *PostgresStateRepository) TargetReminders(ctx context.Context) ([]*domain.TargetReminder, error) {
	query := `
		SELECT id, nation_id, owner_id, channel_ids, role_ids, user_ids, direct_message
		FROM target_reminders
	`
	return queryAll(ctx, r.db, "read target reminders", query, func(rows *sql.Rows) (*domain.TargetReminder, error) {
		var (
			t                      domain.TargetReminder
			channels, roles, users pq.Int64Array
		)
		err := rows.Scan(&t.ID, &t.NationID, &t.OwnerID, &channels, &roles, &users, &t.DirectMessage)
		t.ChannelIDs = channels
		t.RoleIDs = roles
		t.UserIDs = users
		return &t, err
	})
}

func (r *PostgresStateRepository) TicketConfigs(ctx context.Context) ([]*domain.TicketConfig, error) {
	query := `SELECT id, guild_id, category_id, start_message, archive_category_id FROM ticket_configs`
	return queryAll(ctx, r.db, "read ticket configs", query, func(rows *sql.Rows) (*domain.TicketConfig, error) {
		var cfg domain.TicketConfig
		err := rows.Scan(&cfg.ID, &cfg.GuildID, &cfg.CategoryID, &cfg.StartMessage, &cfg.ArchiveCategoryID)
		return &cfg, err
	})
}

func (r *PostgresStateRepository) Tickets(ctx context.Context) ([]*domain.Ticket, error) {
	query := `SELECT id, ticket_number, guild_id, channel_id, owner_id, config_id, open FROM tickets`
	return queryAll(ctx, r.db, "read tickets", query, func(rows *sql.Rows) (*domain.Ticket, error) {
		var t domain.Ticket
		err := rows.Scan(&t.ID, &t.TicketNumber, &t.GuildID, &t.ChannelID, &t.OwnerID, &t.ConfigID, &t.Open)
		return &t, err
	})
}

func (r *PostgresStateRepository) Transactions(ctx context.Context) ([]*domain.Transaction, error) {
	query := `SELECT id, time, status, type, creator_id, from_id, to_id, resources, note FROM transactions`
	return queryAll(ctx, r.db, "read transactions", query, func(rows *sql.Rows) (*domain.Transaction, error) {
		var (
			t         domain.Transaction
			resources []byte
		)
		if err := rows.Scan(&t.ID, &t.Time, &t.Status, &t.Type, &t.CreatorID,
			&t.FromID, &t.ToID, &resources, &t.Note); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(resources, &t.Resources); err != nil {
			return nil, err
		}
		return &t, nil
	})
}

func (r *PostgresStateRepository) TransactionRequests(ctx context.Context) ([]*domain.TransactionRequest, error) {
	query := `SELECT id, transaction_id, channel_id, message_id FROM transaction_requests`
	return queryAll(ctx, r.db, "read transaction requests", query, func(rows *sql.Rows) (*domain.TransactionRequest, error) {
		var t domain.TransactionRequest
		err := rows.Scan(&t.ID, &t.TransactionID, &t.ChannelID, &t.MessageID)
		return &t, err
	})
}

// Treasures reads the most recent treasure snapshot row and fans its
// nested treasure list out into one entity per element.
func (r *PostgresStateRepository) Treasures(ctx context.Context) ([]*domain.Treasure, error) {
	query := `SELECT treasures FROM treasures ORDER BY datetime DESC LIMIT 1`

	var payload []byte
	if err := r.db.QueryRowContext(ctx, query).Scan(&payload); err != nil {
		return nil, errors.ErrDatabaseError("read treasures", err)
	}

	var treasures []*domain.Treasure
	if err := json.Unmarshal(payload, &treasures); err != nil {
		return nil, errors.ErrDatabaseError("decode treasure snapshot", err)
	}
	return treasures, nil
}

func (r *PostgresStateRepository) Treaties(ctx context.Context) ([]*domain.Treaty, error) {
	query := `SELECT from_id, to_id, treaty_type, started, stopped FROM treaties`
	return queryAll(ctx, r.db, "read treaties", query, func(rows *sql.Rows) (*domain.Treaty, error) {
		var (
			t       domain.Treaty
			stopped sql.NullTime
		)
		if err := rows.Scan(&t.FromID, &t.ToID, &t.Type, &t.Started, &stopped); err != nil {
			return nil, err
		}
		if stopped.Valid {
			t.Stopped = &stopped.Time
		}
		return &t, nil
	})
}

func (r *PostgresStateRepository) Users(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT user_id, nation_id, uuid FROM users`
	return queryAll(ctx, r.db, "read users", query, func(rows *sql.Rows) (*domain.User, error) {
		var u domain.User
		err := rows.Scan(&u.UserID, &u.NationID, &u.UUID)
		return &u, err
	})
}
