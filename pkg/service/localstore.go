package service

import (
	"context"
	"sync"
	"time"
)

// LocalCache is an in-process Cache for single-node development and tests.
type LocalCache struct {
	lock       sync.RWMutex
	namespaces map[string]map[string]string
	expiries   map[string]time.Time
}

func NewLocalCache() *LocalCache {
	return &LocalCache{
		namespaces: make(map[string]map[string]string),
		expiries:   make(map[string]time.Time),
	}
}

// namespace returns the live map of ns, dropping it if expired. Callers hold the lock.
func (c *LocalCache) namespace(ns string) map[string]string {
	if exp, ok := c.expiries[ns]; ok && time.Now().After(exp) {
		delete(c.namespaces, ns)
		delete(c.expiries, ns)
		return nil
	}
	return c.namespaces[ns]
}

func (c *LocalCache) Select(_ context.Context, namespace string, key string) (string, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	value, ok := c.namespace(namespace)[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return value, nil
}

func (c *LocalCache) SelectKeys(_ context.Context, namespace string, keys []string) (map[string]string, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	ns := c.namespace(namespace)
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := ns[k]; ok {
			values[k] = v
		}
	}
	return values, nil
}

func (c *LocalCache) Insert(_ context.Context, records ...Record) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	for _, r := range records {
		ns := c.namespace(r.Namespace)
		if ns == nil {
			ns = make(map[string]string)
			c.namespaces[r.Namespace] = ns
		}
		ns[r.Key] = r.Value
		if r.TTL > 0 {
			c.expiries[r.Namespace] = time.Now().Add(r.TTL)
		}
	}
	return nil
}

func (c *LocalCache) Update(_ context.Context, namespace string, key string, value string) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	ns := c.namespace(namespace)
	if _, ok := ns[key]; !ok {
		return ErrCacheMiss
	}
	ns[key] = value
	return nil
}

func (c *LocalCache) DeleteKey(_ context.Context, namespace string, keys ...string) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	ns := c.namespace(namespace)
	for _, k := range keys {
		delete(ns, k)
	}
	if ns != nil && len(ns) == 0 {
		delete(c.namespaces, namespace)
		delete(c.expiries, namespace)
	}
	return nil
}

func (c *LocalCache) DeleteNamespace(_ context.Context, namespace string) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	delete(c.namespaces, namespace)
	delete(c.expiries, namespace)
	return nil
}
