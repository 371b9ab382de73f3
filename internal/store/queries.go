// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/elikiamedia/elikia/internal/model"
)

// DBTX abstracts *sql.DB and *sql.Tx so queries can run inside or
// outside a transaction.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// Queries wraps a database handle and exposes typed query methods.
type Queries struct {
	db DBTX
}

// New creates a Queries instance bound to the given database handle.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns a Queries instance bound to the given transaction.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

const articleColumns = `id, title, slug, category, author, content,
	media_type, media_url, media_filename, featured, date`

func scanArticle(row interface{ Scan(...any) error }) (model.Article, error) {
	var a model.Article
	err := row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Category, &a.Author, &a.Content,
		&a.Media.Type, &a.Media.URL, &a.Media.Filename, &a.Featured, &a.Date,
	)
	return a, err
}

// ListArticlesByDateDesc returns all articles, newest first.
func (q *Queries) ListArticlesByDateDesc(ctx context.Context) ([]model.Article, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+articleColumns+`
		FROM articles ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// GetArticleByID returns a single article by its primary key.
func (q *Queries) GetArticleByID(ctx context.Context, id int64) (model.Article, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+articleColumns+`
		FROM articles WHERE id = ?`, id)
	return scanArticle(row)
}

// GetArticleBySlug returns the first article matching the slug.
// Slugs are derived from titles and may collide; ordering by date
// keeps lookups deterministic.
func (q *Queries) GetArticleBySlug(ctx context.Context, slug string) (model.Article, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+articleColumns+`
		FROM articles WHERE slug = ? ORDER BY date DESC, id DESC LIMIT 1`, slug)
	return scanArticle(row)
}

// CountArticles returns the number of stored articles.
func (q *Queries) CountArticles(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&n)
	return n, err
}

// CreateArticleParams holds the fields for a new article.
type CreateArticleParams struct {
	Title         string
	Slug          string
	Category      string
	Author        string
	Content       string
	MediaType     model.MediaType
	MediaURL      string
	MediaFilename string
	Featured      bool
	Date          time.Time
}

// CreateArticle inserts a new article and returns it with its assigned ID.
func (q *Queries) CreateArticle(ctx context.Context, arg CreateArticleParams) (model.Article, error) {
	res, err := q.db.ExecContext(ctx, `INSERT INTO articles
		(title, slug, category, author, content, media_type, media_url, media_filename, featured, date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Title, arg.Slug, arg.Category, arg.Author, arg.Content,
		arg.MediaType, arg.MediaURL, arg.MediaFilename, arg.Featured, arg.Date)
	if err != nil {
		return model.Article{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Article{}, err
	}
	return q.GetArticleByID(ctx, id)
}

// UpdateArticleParams holds the fields for an article update.
type UpdateArticleParams struct {
	ID            int64
	Title         string
	Slug          string
	Category      string
	Author        string
	Content       string
	MediaType     model.MediaType
	MediaURL      string
	MediaFilename string
	Featured      bool
	Date          time.Time
}

// UpdateArticle replaces all editable fields of an article.
func (q *Queries) UpdateArticle(ctx context.Context, arg UpdateArticleParams) (model.Article, error) {
	res, err := q.db.ExecContext(ctx, `UPDATE articles SET
		title = ?, slug = ?, category = ?, author = ?, content = ?,
		media_type = ?, media_url = ?, media_filename = ?, featured = ?, date = ?
		WHERE id = ?`,
		arg.Title, arg.Slug, arg.Category, arg.Author, arg.Content,
		arg.MediaType, arg.MediaURL, arg.MediaFilename, arg.Featured, arg.Date,
		arg.ID)
	if err != nil {
		return model.Article{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Article{}, err
	}
	if n == 0 {
		return model.Article{}, sql.ErrNoRows
	}
	return q.GetArticleByID(ctx, arg.ID)
}

// DeleteArticle removes an article by ID.
func (q *Queries) DeleteArticle(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetSettings returns the singleton site settings row.
func (q *Queries) GetSettings(ctx context.Context) (model.Settings, error) {
	var s model.Settings
	err := q.db.QueryRowContext(ctx, `SELECT id, facebook, whatsapp, youtube,
		twitter, instagram, linkedin, email, phone, address, map_url, hours
		FROM settings WHERE id = 1`).Scan(
		&s.ID, &s.FacebookURL, &s.WhatsappURL, &s.YoutubeURL, &s.TwitterURL,
		&s.InstagramURL, &s.LinkedinURL, &s.Email, &s.Phone, &s.Address,
		&s.MapURL, &s.Hours)
	return s, err
}

// SaveSettings upserts the singleton settings row.
func (q *Queries) SaveSettings(ctx context.Context, s model.Settings) error {
	_, err := q.db.ExecContext(ctx, `INSERT INTO settings
		(id, facebook, whatsapp, youtube, twitter, instagram, linkedin,
		 email, phone, address, map_url, hours)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			facebook = excluded.facebook,
			whatsapp = excluded.whatsapp,
			youtube = excluded.youtube,
			twitter = excluded.twitter,
			instagram = excluded.instagram,
			linkedin = excluded.linkedin,
			email = excluded.email,
			phone = excluded.phone,
			address = excluded.address,
			map_url = excluded.map_url,
			hours = excluded.hours`,
		s.FacebookURL, s.WhatsappURL, s.YoutubeURL, s.TwitterURL,
		s.InstagramURL, s.LinkedinURL, s.Email, s.Phone, s.Address,
		s.MapURL, s.Hours)
	return err
}

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name,
		&u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt)
	return u, err
}

// GetUserByEmail returns a user by email address.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	row := q.db.QueryRowContext(ctx, `SELECT id, email, password_hash, name,
		created_at, updated_at, last_login_at FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// GetUserByID returns a user by primary key.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	row := q.db.QueryRowContext(ctx, `SELECT id, email, password_hash, name,
		created_at, updated_at, last_login_at FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// CountUsers returns the number of registered users.
func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

// CreateUserParams holds the fields for a new user.
type CreateUserParams struct {
	Email        string
	PasswordHash string
	Name         string
}

// CreateUser inserts a new user and returns its assigned ID.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, `INSERT INTO users (email, password_hash, name)
		VALUES (?, ?, ?)`, arg.Email, arg.PasswordHash, arg.Name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateUserPassword replaces a user's password hash.
func (q *Queries) UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := q.db.ExecContext(ctx, `UPDATE users SET password_hash = ?,
		updated_at = CURRENT_TIMESTAMP WHERE id = ?`, passwordHash, id)
	return err
}

// UpdateUserLastLogin records the time of a successful login.
func (q *Queries) UpdateUserLastLogin(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `UPDATE users SET last_login_at = CURRENT_TIMESTAMP
		WHERE id = ?`, id)
	return err
}

// CreateEventParams holds the fields for a new event log entry.
type CreateEventParams struct {
	Level    string
	Category string
	Message  string
	UserID   *int64
	Metadata string
}

// CreateEvent inserts an event log entry.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) error {
	var userID sql.NullInt64
	if arg.UserID != nil {
		userID = sql.NullInt64{Int64: *arg.UserID, Valid: true}
	}
	_, err := q.db.ExecContext(ctx, `INSERT INTO events
		(level, category, message, user_id, metadata)
		VALUES (?, ?, ?, ?, ?)`,
		arg.Level, arg.Category, arg.Message, userID, arg.Metadata)
	return err
}

// ListRecentEvents returns the most recent event log entries.
func (q *Queries) ListRecentEvents(ctx context.Context, limit int64) ([]model.Event, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT id, level, category, message,
		user_id, metadata, created_at
		FROM events ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		var userID sql.NullInt64
		if err := rows.Scan(&e.ID, &e.Level, &e.Category, &e.Message,
			&userID, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		if userID.Valid {
			id := userID.Int64
			e.UserID = &id
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
