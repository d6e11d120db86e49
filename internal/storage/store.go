package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

var ErrNotFound = errors.New("storage: session not found")

const (
	sessionsDir = "sessions"
	sessionFile = "session.json"
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(filepath.Join(s.baseDir, sessionsDir), 0755)
}

// Session summarises one mounted countdown, written when it finishes or
// is torn down.
type Session struct {
	ID          string    `json:"id"`
	Started     time.Time `json:"started"`
	Ended       time.Time `json:"ended"`
	Initial     int       `json:"initial"`
	Remaining   int       `json:"remaining"`
	Ticks       int       `json:"ticks"`
	Completed   bool      `json:"completed"`
	ResetOnStop bool      `json:"reset_on_stop"`
}

// Elapsed is the counted-down time in seconds.
func (s Session) Elapsed() int { return s.Initial - s.Remaining }

func (s *Store) Save(sess Session) (string, error) {
	if sess.Ended.IsZero() {
		sess.Ended = s.now()
	}
	if sess.ID == "" {
		sess.ID = fmt.Sprintf("session_%d", sess.Ended.UnixNano())
	}
	dir := filepath.Join(s.baseDir, sessionsDir, sess.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(dir, sessionFile))
	if err != nil {
		return "", err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sess); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return sess.ID, nil
}

// List returns all readable sessions ordered by start time.
func (s *Store) List() ([]Session, error) {
	root := filepath.Join(s.baseDir, sessionsDir)
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return []Session{}, nil
		}
		return nil, err
	}

	sessions := make([]Session, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		sess, err := readSession(filepath.Join(root, entry.Name(), sessionFile))
		if err != nil {
			continue
		}
		sessions = append(sessions, *sess)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Started.Before(sessions[j].Started)
	})
	return sessions, nil
}

func (s *Store) Load(id string) (*Session, error) {
	sess, err := readSession(filepath.Join(s.baseDir, sessionsDir, id, sessionFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return sess, err
}

func readSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}
