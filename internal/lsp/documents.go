package lsp

import "sync"

type document struct {
	version int32
	content string
}

// DocumentStore holds open document contents keyed by URI. Each change
// carries the client's version number; changes older than the stored
// version are dropped.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]document)}
}

func (s *DocumentStore) Open(uri string, version int32, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = document{version: version, content: content}
}

// Update replaces the content of uri. It reports false when version is
// older than the one already stored.
func (s *DocumentStore) Update(uri string, version int32, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.docs[uri]; ok && version < cur.version {
		return false
	}
	s.docs[uri] = document{version: version, content: content}
	return true
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	return doc.content, ok
}
