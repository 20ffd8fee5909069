package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/MdialloC19/backend-IPDL/internal/pkg/chat/domain"
)

type PgConversationRepository struct {
	pool *pgxpool.Pool
}

func NewPgConversationRepository(pool *pgxpool.Pool) *PgConversationRepository {
	return &PgConversationRepository{pool: pool}
}

// EnsureRoom relies on the unique index on rooms.name: the insert is a no-op
// when a concurrent caller won the race, and the follow-up select observes
// whichever record exists.
func (r *PgConversationRepository) EnsureRoom(ctx context.Context, name string) (chat.Room, error) {
	if r == nil || r.pool == nil {
		return chat.Room{}, errors.New("PgConversationRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx,
		"INSERT INTO rooms (name) VALUES ($1) ON CONFLICT (name) DO NOTHING",
		name,
	)
	if err != nil {
		return chat.Room{}, err
	}
	return r.GetRoomByName(ctx, name)
}

func (r *PgConversationRepository) GetRoomByName(ctx context.Context, name string) (chat.Room, error) {
	if r == nil || r.pool == nil {
		return chat.Room{}, errors.New("PgConversationRepository: nil pool")
	}
	var room chat.Room
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, name, COALESCE(participants, '{}')
		FROM rooms
		WHERE name = $1
	`, name).Scan(&room.ID, &room.Name, &room.Participants)
	if errors.Is(err, pgx.ErrNoRows) {
		return chat.Room{}, chat.ErrRoomNotFound
	}
	if err != nil {
		return chat.Room{}, err
	}
	return room, nil
}

func (r *PgConversationRepository) SaveMessage(ctx context.Context, m chat.Message) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgConversationRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO conversations (room_name, user_id, message, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text
	`, m.Room, m.SenderID, m.Text, m.Timestamp).Scan(&id)
	return id, err
}

func (r *PgConversationRepository) ListMessagesByRoom(ctx context.Context, room string) ([]chat.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT m.id::text, m.room_name, m.user_id, m.message, m.created_at,
		       u.firstname, u.lastname, u.phone
		FROM conversations m
		LEFT JOIN users u ON u.id::text = m.user_id AND u.is_deleted = false
		WHERE m.room_name = $1
		ORDER BY m.created_at ASC
	`, room)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := make([]chat.Message, 0)
	for rows.Next() {
		var (
			msg       chat.Message
			firstname *string
			lastname  *string
			phone     *string
		)
		if err := rows.Scan(&msg.ID, &msg.Room, &msg.SenderID, &msg.Text, &msg.Timestamp,
			&firstname, &lastname, &phone); err != nil {
			return nil, err
		}
		if firstname != nil || lastname != nil || phone != nil {
			msg.Sender = &chat.Sender{ID: msg.SenderID}
			if firstname != nil {
				msg.Sender.Firstname = *firstname
			}
			if lastname != nil {
				msg.Sender.Lastname = *lastname
			}
			if phone != nil {
				msg.Sender.Phone = *phone
			}
		}
		msgs = append(msgs, msg)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return msgs, nil
}
