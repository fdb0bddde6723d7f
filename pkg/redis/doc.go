// Package redis connects to Redis and turns Redis sets into rule
// parameters.
//
// Connect retries the initial ping according to Config, whose fields are
// read from the environment:
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	client, err := redis.Connect(ctx, cfg)
//
// UniqueRule and OptionsRule load the members of a set once and build a
// ready validator.RuleSpec from them:
//
//	rule, err := redis.UniqueRule(ctx, client, "users:names")
//	if err != nil {
//		return err
//	}
//	v.AddRule("username", rule)
//
// Rules are snapshots; rebuild them to pick up later changes to the set.
package redis
