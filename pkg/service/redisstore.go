// Copyright 2023 LiveKit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"crypto/tls"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/roomcast/roomcast-server/pkg/config"
	"github.com/roomcast/roomcast-server/pkg/logger"
)

const (
	maxRetries = 5
)

// RedisCache stores each namespace as a redis hash.
type RedisCache struct {
	rc redis.UniversalClient
}

func NewRedisCache(rc redis.UniversalClient) *RedisCache {
	return &RedisCache{
		rc: rc,
	}
}

func NewRedisClient(conf *config.RedisConfig) (redis.UniversalClient, error) {
	if !conf.IsConfigured() {
		return nil, nil
	}

	logger.Infow("using redis", "address", conf.Address, "db", conf.DB)
	opts := &redis.Options{
		Addr:     conf.Address,
		Username: conf.Username,
		Password: conf.Password,
		DB:       conf.DB,
	}
	if conf.UseTLS {
		opts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}
	rc := redis.NewClient(opts)
	if err := rc.Ping(context.Background()).Err(); err != nil {
		return nil, errors.Wrap(err, "unable to connect to redis")
	}
	return rc, nil
}

func (c *RedisCache) Select(ctx context.Context, namespace string, key string) (string, error) {
	value, err := c.rc.HGet(ctx, namespace, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrCacheMiss
		}
		return "", err
	}
	return value, nil
}

func (c *RedisCache) SelectKeys(ctx context.Context, namespace string, keys []string) (map[string]string, error) {
	values := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return values, nil
	}

	items, err := c.rc.HMGet(ctx, namespace, keys...).Result()
	if err != nil {
		if err == redis.Nil {
			return values, nil
		}
		return nil, err
	}
	for i, item := range items {
		// missing fields come back as nil
		if s, ok := item.(string); ok {
			values[keys[i]] = s
		}
	}
	return values, nil
}

func (c *RedisCache) Insert(ctx context.Context, records ...Record) error {
	if len(records) == 0 {
		return nil
	}

	_, err := c.rc.TxPipelined(ctx, func(pp redis.Pipeliner) error {
		for _, r := range records {
			pp.HSet(ctx, r.Namespace, r.Key, r.Value)
			if r.TTL > 0 {
				pp.Expire(ctx, r.Namespace, r.TTL)
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "could not insert records")
	}
	return nil
}

func (c *RedisCache) Update(ctx context.Context, namespace string, key string, value string) error {
	txf := func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, namespace, key).Result()
		if err != nil {
			return err
		}
		if !exists {
			return ErrCacheMiss
		}

		_, err = tx.TxPipelined(ctx, func(pp redis.Pipeliner) error {
			pp.HSet(ctx, namespace, key, value)
			return nil
		})
		return err
	}

	for i := 0; i < maxRetries; i++ {
		err := c.rc.Watch(ctx, txf, namespace)
		if err == redis.TxFailedErr {
			// namespace changed underneath, retry
			continue
		}
		return err
	}
	return errors.Errorf("could not update %s after %d attempts", namespace, maxRetries)
}

func (c *RedisCache) DeleteKey(ctx context.Context, namespace string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rc.HDel(ctx, namespace, keys...).Err()
}

func (c *RedisCache) DeleteNamespace(ctx context.Context, namespace string) error {
	return c.rc.Del(ctx, namespace).Err()
}
