package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/quizdeck/internal/questions"
)

// topicRepo implements TopicRepo with SQL built by ent's dialect builder.
type topicRepo struct {
	db *sql.DB
}

func (r *topicRepo) Import(ctx context.Context, topic Topic, bank *questions.Bank) error {
	if topic.ImportedAt.IsZero() {
		topic.ImportedAt = time.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	b := builder()
	if err := deleteTopic(ctx, tx, topic.Name); err != nil {
		return fmt.Errorf("clear topic %s: %w", topic.Name, err)
	}

	query, args := b.Insert(topicsTable).
		Columns("name", "label", "source", "imported_at").
		Values(topic.Name, topic.Label, topic.Source, topic.ImportedAt.Unix()).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert topic %s: %w", topic.Name, err)
	}

	for i, q := range bank.Questions() {
		data, err := json.Marshal(q)
		if err != nil {
			return fmt.Errorf("marshal question %s: %w", q.ID, err)
		}
		query, args = b.Insert(questionsTable).
			Columns("topic", "position", "qid", "data").
			Values(topic.Name, i, string(q.ID), string(data)).
			Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert question %s: %w", q.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func (r *topicRepo) List(ctx context.Context) ([]Topic, error) {
	b := builder()

	counts := make(map[string]int)
	query, args := b.Select("topic", entsql.Count("*")).
		From(b.Table(questionsTable)).
		GroupBy("topic").
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[name] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}

	query, args = b.Select("name", "label", "source", "imported_at").
		From(b.Table(topicsTable)).
		OrderBy("name").
		Query()
	rows, err = r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}
	defer rows.Close()

	var topics []Topic
	for rows.Next() {
		var t Topic
		var ts int64
		if err := rows.Scan(&t.Name, &t.Label, &t.Source, &ts); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		t.ImportedAt = time.Unix(ts, 0)
		t.Count = counts[t.Name]
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

func (r *topicRepo) Load(ctx context.Context, name string) (*questions.Bank, error) {
	b := builder()

	query, args := b.Select("name").
		From(b.Table(topicsTable)).
		Where(entsql.EQ("name", name)).
		Query()
	var found string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrTopicNotFound, name)
		}
		return nil, fmt.Errorf("query topic %s: %w", name, err)
	}

	query, args = b.Select("data").
		From(b.Table(questionsTable)).
		Where(entsql.EQ("topic", name)).
		OrderBy("position").
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions of %s: %w", name, err)
	}
	defer rows.Close()

	var list []questions.Question
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		var q questions.Question
		if err := json.Unmarshal([]byte(data), &q); err != nil {
			return nil, fmt.Errorf("decode question: %w", err)
		}
		list = append(list, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return questions.NewBank(list)
}

func (r *topicRepo) Delete(ctx context.Context, name string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	if err := deleteTopic(ctx, tx, name); err != nil {
		return fmt.Errorf("delete topic %s: %w", name, err)
	}
	return tx.Commit()
}

// deleteTopic removes a topic and its questions. Foreign key enforcement is a
// per-connection pragma, so questions are removed explicitly.
func deleteTopic(ctx context.Context, tx *sql.Tx, name string) error {
	b := builder()
	query, args := b.Delete(questionsTable).Where(entsql.EQ("topic", name)).Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	query, args = b.Delete(topicsTable).Where(entsql.EQ("name", name)).Query()
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}
