package main

import (
	"strings"
	"sync"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (ds *documentStore) uris() []string {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	res := make([]string, 0, len(ds.docs))
	for uri := range ds.docs {
		res = append(res, uri)
	}
	return res
}

// uriPath recovers the filesystem path behind a document URI so the
// resolver can run its path rules. Non-file URIs pass through and
// simply match no rules.
func uriPath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}
