package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

// SetReader is the subset of the go-redis client used to read sets.
// *redis.Client, *redis.ClusterClient and redis.UniversalClient satisfy it.
type SetReader interface {
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
}

// Members returns the members of the set stored at key. A missing key
// yields ErrNoMembers.
func Members(ctx context.Context, client SetReader, key string) ([]string, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	members, err := client.SMembers(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, errors.Join(ErrLoadingMembers, fmt.Errorf("key %q: %w", key, err))
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMembers, key)
	}
	return members, nil
}

// UniqueRule builds a unique rule whose existing values are the members
// of the set stored at key, e.g. taken usernames.
func UniqueRule(ctx context.Context, client SetReader, key string, opts ...validator.RuleOption) (validator.RuleSpec, error) {
	return setRule(ctx, client, key, validator.RuleUnique, opts)
}

// OptionsRule builds an options rule whose allowed values are the members
// of the set stored at key.
func OptionsRule(ctx context.Context, client SetReader, key string, opts ...validator.RuleOption) (validator.RuleSpec, error) {
	return setRule(ctx, client, key, validator.RuleOptions, opts)
}

func setRule(ctx context.Context, client SetReader, key string, name validator.RuleName, opts []validator.RuleOption) (validator.RuleSpec, error) {
	members, err := Members(ctx, client, key)
	if err != nil {
		return validator.RuleSpec{}, err
	}
	return validator.NewRule(name, members, opts...)
}
