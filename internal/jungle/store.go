package jungle

import "sync"

// RecordStore persists encoded boards keyed by (user, mode).
// LoadBoard returns nil data and a nil error when no board exists.
type RecordStore interface {
	LoadBoard(userID, mode string) ([]byte, error)
	SaveBoard(userID, mode string, data []byte) error
	DeleteBoard(userID, mode string) error
}

// ScoreRecorder is implemented by stores that keep a leaderboard.
type ScoreRecorder interface {
	RecordScore(userID, mode string, score, elapsedSeconds int) error
}

type boardKey struct {
	user, mode string
}

// MemoryStore is a RecordStore kept in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	boards map[boardKey][]byte
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{boards: make(map[boardKey][]byte)}
}

func (m *MemoryStore) LoadBoard(userID, mode string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.boards[boardKey{userID, mode}]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryStore) SaveBoard(userID, mode string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.boards[boardKey{userID, mode}] = append([]byte(nil), data...)
	return nil
}

func (m *MemoryStore) DeleteBoard(userID, mode string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.boards, boardKey{userID, mode})
	return nil
}

var _ RecordStore = (*MemoryStore)(nil)
