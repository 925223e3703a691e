package postgres

import (
	"context"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/eventure/chat-service/internal/config"
	"github.com/eventure/chat-service/internal/model"
	"github.com/eventure/chat-service/internal/pkg/tx"
)

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

type executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Chk returns the active transaction when one is carried in ctx, the pool otherwise.
func (r *Repository) Chk(ctx context.Context) executor {
	if t, ok := tx.From(ctx); ok {
		return t
	}
	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	if _, ok := tx.From(ctx); ok {
		return cb(ctx)
	}

	t, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer func() {
		_ = t.Rollback()
	}()

	if err := cb(tx.With(ctx, t)); err != nil {
		return err
	}

	if err := t.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *Repository) CreateConversation(ctx context.Context, eventID string) (string, error) {
	query, args, err := sq.Insert("conversations").
		Columns("event_id").
		Values(eventID).
		Suffix("ON CONFLICT (event_id) DO NOTHING RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversationID string
	err = r.Chk(ctx).GetContext(ctx, &conversationID, query, args...)
	if err != nil {
		return "", err
	}

	return conversationID, nil
}

func (r *Repository) GetConversationByEvent(ctx context.Context, eventID string) (*model.Conversation, error) {
	query, args, err := sq.Select("id", "event_id", "created_at").
		From("conversations").
		Where(sq.Eq{"event_id": eventID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.Chk(ctx).GetContext(ctx, &conversation, query, args...)
	if err != nil {
		return nil, err
	}

	return &conversation, nil
}

func (r *Repository) GetConversationForIdentity(ctx context.Context, conversationID, identityID string) (*model.Conversation, error) {
	query, args, err := sq.Select("c.id", "c.event_id", "c.created_at").
		From("conversations c").
		Join("participants p ON p.conversation_id = c.id").
		Where(sq.And{
			sq.Eq{"c.id": conversationID},
			sq.Or{
				sq.Eq{"p.user_id": identityID},
				sq.Eq{"p.team_member_id": identityID},
			},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.Chk(ctx).GetContext(ctx, &conversation, query, args...)
	if err != nil {
		return nil, err
	}

	return &conversation, nil
}

func (r *Repository) FindParticipant(ctx context.Context, conversationID, identityID string) (*model.Participant, error) {
	query, args, err := sq.Select(
		"p.id",
		"p.conversation_id",
		"p.user_id",
		"p.team_member_id",
		"p.created_at",
		"COALESCE(u.nickname, tm.full_name) AS display_name",
		"u.avatar_url",
	).
		From("participants p").
		LeftJoin("users u ON p.user_id = u.id").
		LeftJoin("team_members tm ON p.team_member_id = tm.id").
		Where(sq.And{
			sq.Eq{"p.conversation_id": conversationID},
			sq.Or{
				sq.Eq{"p.user_id": identityID},
				sq.Eq{"p.team_member_id": identityID},
			},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var participant model.Participant
	err = r.Chk(ctx).GetContext(ctx, &participant, query, args...)
	if err != nil {
		return nil, err
	}

	return &participant, nil
}

func (r *Repository) AddTeamMemberParticipants(ctx context.Context, conversationID string, members []model.TeamMember) error {
	if len(members) == 0 {
		return nil
	}

	query := sq.Insert("participants").
		Columns("conversation_id", "team_member_id").
		Suffix("ON CONFLICT (conversation_id, team_member_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	for _, member := range members {
		query = query.Values(conversationID, member.ID)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, sql, args...)
	return err
}

// AddUserParticipant enrolls a user into a conversation. sql.ErrNoRows means
// the participant already existed; callers treat that as success.
func (r *Repository) AddUserParticipant(ctx context.Context, conversationID, userID string) (string, error) {
	query, args, err := sq.Insert("participants").
		Columns("conversation_id", "user_id").
		Values(conversationID, userID).
		Suffix("ON CONFLICT (conversation_id, user_id) DO NOTHING RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var participantID string
	err = r.Chk(ctx).GetContext(ctx, &participantID, query, args...)
	if err != nil {
		return "", err
	}

	return participantID, nil
}

func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query := sq.Insert("messages").
		Columns("id", "conversation_id", "sender_id", "content", "is_ai", "created_at").
		Values(message.ID, message.ConversationID, message.SenderID, message.Content, message.IsAi, message.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

func (r *Repository) GetMessages(ctx context.Context, conversationID string, offset, limit uint64) (*model.MessageList, int64, error) {
	if limit == 0 {
		limit = 50 // default page size
	}

	query, args, err := sq.Select(
		"m.id",
		"m.conversation_id",
		"m.sender_id",
		"m.content",
		"m.is_ai",
		"COALESCE(u.nickname, tm.full_name) AS sender_name",
		"u.avatar_url AS sender_avatar",
		"m.created_at",
	).
		From("messages m").
		LeftJoin("participants p ON m.sender_id = p.id").
		LeftJoin("users u ON p.user_id = u.id").
		LeftJoin("team_members tm ON p.team_member_id = tm.id").
		Where(sq.Eq{"m.conversation_id": conversationID}).
		OrderBy("m.created_at ASC", "m.id ASC").
		Offset(offset).
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var total int64
	err = r.Chk(ctx).GetContext(ctx, &total, countQuery, countArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %v", err)
	}

	return &messages, total, nil
}

func (r *Repository) GetConversationPreviews(ctx context.Context, identityID string, offset, limit uint64) (*model.ConversationPreviewList, int64, error) {
	if limit == 0 {
		limit = 10
	}

	query := sq.Select(
		"c.id AS conversation_id",
		"c.event_id",
		"e.title AS event_title",
		"e.organizer_name",
		"("+func() string {
			sql, _, _ := sq.Select("content").
				From("messages m2").
				Where("m2.conversation_id = c.id").
				OrderBy("m2.created_at DESC").
				Limit(1).ToSql()
			return sql
		}()+") AS last_message_content",
		"("+func() string {
			sql, _, _ := sq.Select("created_at").
				From("messages m2").
				Where("m2.conversation_id = c.id").
				OrderBy("m2.created_at DESC").
				Limit(1).ToSql()
			return sql
		}()+") AS last_message_timestamp",
	).
		From("conversations c").
		Join("events e ON e.id = c.event_id").
		Join("participants p ON p.conversation_id = c.id").
		Where(sq.Or{
			sq.Eq{"p.user_id": identityID},
			sq.Eq{"p.team_member_id": identityID},
		}).
		OrderBy("c.created_at DESC").
		Offset(offset).
		Limit(limit).
		PlaceholderFormat(sq.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var previews model.ConversationPreviewList
	err = r.Chk(ctx).SelectContext(ctx, &previews, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get conversations: %v", err)
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").
		From("conversations c").
		Join("participants p ON p.conversation_id = c.id").
		Where(sq.Or{
			sq.Eq{"p.user_id": identityID},
			sq.Eq{"p.team_member_id": identityID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var total int64
	err = r.Chk(ctx).GetContext(ctx, &total, countQuery, countArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count conversations: %v", err)
	}

	return &previews, total, nil
}

func (r *Repository) UpsertEvent(ctx context.Context, event *model.Event) error {
	query, args, err := sq.Insert("events").
		Columns("id", "organizer_id", "organizer_name", "title", "description", "venue", "starts_at", "ends_at").
		Values(event.ID, event.OrganizerID, event.OrganizerName, event.Title, event.Description, event.Venue, event.StartsAt, event.EndsAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			organizer_name = EXCLUDED.organizer_name,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			venue = EXCLUDED.venue,
			starts_at = EXCLUDED.starts_at,
			ends_at = EXCLUDED.ends_at`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) GetEvent(ctx context.Context, eventID string) (*model.Event, error) {
	query, args, err := sq.Select("id", "organizer_id", "organizer_name", "title", "description", "venue", "starts_at", "ends_at").
		From("events").
		Where(sq.Eq{"id": eventID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var event model.Event
	err = r.Chk(ctx).GetContext(ctx, &event, query, args...)
	if err != nil {
		return nil, err
	}

	return &event, nil
}

func (r *Repository) UpsertTeamMembers(ctx context.Context, members []model.TeamMember) error {
	if len(members) == 0 {
		return nil
	}

	query := sq.Insert("team_members").
		Columns("id", "full_name").
		Suffix("ON CONFLICT (id) DO UPDATE SET full_name = EXCLUDED.full_name").
		PlaceholderFormat(sq.Dollar)

	for _, member := range members {
		query = query.Values(member.ID, member.FullName)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, sql, args...)
	return err
}

func (r *Repository) UpsertUser(ctx context.Context, userInfo *model.UserParams) error {
	query, args, err := sq.Insert("users").
		Columns("id", "nickname", "avatar_url").
		Values(userInfo.UserID, userInfo.Nickname, userInfo.AvatarURL).
		Suffix("ON CONFLICT (id) DO UPDATE SET nickname = EXCLUDED.nickname, avatar_url = EXCLUDED.avatar_url").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}
