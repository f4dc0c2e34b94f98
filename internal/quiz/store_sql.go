package quiz

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutQuiz(q Quiz) error {
	qj, err := json.Marshal(q.Questions)
	if err != nil {
		return err
	}
	wj, err := json.Marshal(q.ParseWarnings)
	if err != nil {
		return err
	}
	created := q.CreatedAt
	if created == 0 {
		created = time.Now().Unix()
	}
	_, err = s.db.Exec(`INSERT INTO quizzes (id,owner_id,title,difficulty,feedback_mode,questions_json,warnings_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, difficulty=EXCLUDED.difficulty,
			feedback_mode=EXCLUDED.feedback_mode, questions_json=EXCLUDED.questions_json, warnings_json=EXCLUDED.warnings_json`,
		q.ID, q.OwnerID, q.Title, q.Difficulty, q.FeedbackMode, string(qj), string(wj), created)
	return err
}

func (s *SQLStore) GetQuiz(id string) (Quiz, error) {
	row := s.db.QueryRow(`SELECT id,owner_id,title,difficulty,feedback_mode,questions_json,warnings_json,created_at
		FROM quizzes WHERE id=$1`, id)
	return scanQuiz(row)
}

func (s *SQLStore) ListQuizzesByOwner(ownerID string) ([]Quiz, error) {
	rows, err := s.db.Query(`SELECT id,owner_id,title,difficulty,feedback_mode,questions_json,warnings_json,created_at
		FROM quizzes WHERE owner_id=$1 ORDER BY created_at DESC, id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Quiz{}
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) DeleteQuiz(id, ownerID string) error {
	res, err := s.db.Exec(`DELETE FROM quizzes WHERE id=$1 AND owner_id=$2`, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuiz(row rowScanner) (Quiz, error) {
	var q Quiz
	var qjson, wjson string
	err := row.Scan(&q.ID, &q.OwnerID, &q.Title, &q.Difficulty, &q.FeedbackMode, &qjson, &wjson, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Quiz{}, ErrNotFound
		}
		return Quiz{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &q.Questions); err != nil {
		return Quiz{}, err
	}
	if wjson != "" {
		if err := json.Unmarshal([]byte(wjson), &q.ParseWarnings); err != nil {
			return Quiz{}, err
		}
	}
	q.QuestionCount = len(q.Questions)
	return q, nil
}
