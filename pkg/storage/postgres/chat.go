package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"clovable/pkg/domain"
)

const (
	chatSessionsTable = "chat_sessions"
	chatMessagesTable = "chat_messages"
)

func (p *PgSQL) StoreSession(ctx context.Context, session domain.ChatSession) (*domain.ChatSession, error) {
	row := PgChatSession{
		ProjectID: uuid.UUID(session.ProjectID),
		Title:     session.Title,
	}

	var stored PgChatSession
	if _, err := p.Builder.Insert(chatSessionsTable).
		Rows(row).
		Returning(&PgChatSession{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store chat session into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) SessionByID(ctx context.Context, id domain.SessionID) (*domain.ChatSession, error) {
	var row PgChatSession
	found, err := p.Builder.From(chatSessionsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch chat session by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) SessionsByProject(ctx context.Context, id domain.ProjectID) ([]domain.ChatSession, error) {
	var rows []PgChatSession
	if err := p.Builder.From(chatSessionsTable).
		Where(goqu.I("project_id").Eq(uuid.UUID(id))).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch chat sessions from pg: %w", err)
	}

	out := make([]domain.ChatSession, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) StoreMessage(ctx context.Context, msg domain.ChatMessage) (*domain.ChatMessage, error) {
	row := PgChatMessage{
		SessionID: uuid.UUID(msg.SessionID),
		Role:      string(msg.Role),
		Content:   msg.Content,
	}

	var stored PgChatMessage
	if _, err := p.Builder.Insert(chatMessagesTable).
		Rows(row).
		Returning(&PgChatMessage{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store chat message into pg: %w", err)
	}

	// touch the parent session so listings sort by activity
	if _, err := p.Builder.Update(chatSessionsTable).
		Set(goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(goqu.I("id").Eq(uuid.UUID(msg.SessionID))).
		Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not touch chat session in pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) MessagesBySession(ctx context.Context,
	id domain.SessionID,
	limit uint) ([]domain.ChatMessage, error) {
	ds := p.Builder.From(chatMessagesTable).
		Where(goqu.I("session_id").Eq(uuid.UUID(id))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgChatMessage
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch chat messages from pg: %w", err)
	}

	out := make([]domain.ChatMessage, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}
