package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webhook-dispatcher/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// Every transition touches several keys, so each one runs as a single script.
// Scores are unix milliseconds computed by the caller.
var (
	// KEYS: jobs, wait, dead. ARGV: id, readyAt.
	enqueueScript = goredis.NewScript(`
if redis.call("HEXISTS", KEYS[1], ARGV[1]) == 1 then
	return 0
end
redis.call("HSET", KEYS[1], ARGV[1], 0)
redis.call("HDEL", KEYS[3], ARGV[1])
redis.call("ZADD", KEYS[2], ARGV[2], ARGV[1])
return 1
`)

	// KEYS: jobs, wait, active. ARGV: now, leaseDeadline.
	dequeueScript = goredis.NewScript(`
local expired = redis.call("ZRANGEBYSCORE", KEYS[3], "-inf", ARGV[1])
for _, id in ipairs(expired) do
	redis.call("ZREM", KEYS[3], id)
	redis.call("ZADD", KEYS[2], ARGV[1], id)
end
local ready = redis.call("ZRANGEBYSCORE", KEYS[2], "-inf", ARGV[1], "LIMIT", 0, 1)
if #ready == 0 then
	return false
end
local id = ready[1]
redis.call("ZREM", KEYS[2], id)
redis.call("ZADD", KEYS[3], ARGV[2], id)
local attempts = redis.call("HGET", KEYS[1], id)
if not attempts then
	attempts = "0"
	redis.call("HSET", KEYS[1], id, 0)
end
return {id, tonumber(attempts)}
`)

	// KEYS: jobs, wait, active. ARGV: id.
	ackScript = goredis.NewScript(`
redis.call("ZREM", KEYS[3], ARGV[1])
redis.call("ZREM", KEYS[2], ARGV[1])
return redis.call("HDEL", KEYS[1], ARGV[1])
`)

	// KEYS: jobs, wait, active, dead. ARGV: id, maxAttempts, readyAt, reason.
	// Returns -1 for an unknown job, 1 when dead-lettered, 0 when rescheduled.
	failScript = goredis.NewScript(`
if redis.call("HEXISTS", KEYS[1], ARGV[1]) == 0 then
	return -1
end
redis.call("ZREM", KEYS[3], ARGV[1])
local attempts = redis.call("HINCRBY", KEYS[1], ARGV[1], 1)
if attempts >= tonumber(ARGV[2]) then
	redis.call("HDEL", KEYS[1], ARGV[1])
	redis.call("ZREM", KEYS[2], ARGV[1])
	redis.call("HSET", KEYS[4], ARGV[1], ARGV[4])
	return 1
end
redis.call("ZADD", KEYS[2], ARGV[3], ARGV[1])
return 0
`)

	// KEYS: jobs, wait, active. ARGV: id, readyAt.
	requeueScript = goredis.NewScript(`
if redis.call("HEXISTS", KEYS[1], ARGV[1]) == 0 then
	return 0
end
redis.call("ZREM", KEYS[3], ARGV[1])
redis.call("ZADD", KEYS[2], ARGV[2], ARGV[1])
return 1
`)
)

// JobQueueOptions tunes retry scheduling and leasing.
type JobQueueOptions struct {
	MaxAttempts int
	BackoffBase time.Duration
	// Lease is how long a dequeued job stays invisible before another
	// worker may reclaim it.
	Lease time.Duration
}

// JobQueue implements ports.JobQueue on Redis.
//
// Layout under webhook:queue:<name>:
//
//	jobs   hash  id -> attempts made
//	wait   zset  id -> ready at (ms)
//	active zset  id -> lease deadline (ms)
//	dead   hash  id -> last failure reason
type JobQueue struct {
	client goredis.UniversalClient
	opts   JobQueueOptions

	jobsKey   string
	waitKey   string
	activeKey string
	deadKey   string

	now func() time.Time
}

// NewJobQueue creates a Redis-backed delivery queue named name.
func NewJobQueue(client goredis.UniversalClient, name string, opts JobQueueOptions) *JobQueue {
	prefix := "webhook:queue:" + name + ":"
	return &JobQueue{
		client:    client,
		opts:      opts,
		jobsKey:   prefix + "jobs",
		waitKey:   prefix + "wait",
		activeKey: prefix + "active",
		deadKey:   prefix + "dead",
		now:       time.Now,
	}
}

// Enqueue schedules jobID for immediate delivery. A dead-lettered id is
// revived with a fresh attempt budget; a live id is left untouched.
func (q *JobQueue) Enqueue(ctx context.Context, jobID string) (bool, error) {
	n, err := enqueueScript.Run(ctx, q.client,
		[]string{q.jobsKey, q.waitKey, q.deadKey},
		jobID, q.now().UnixMilli(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("redis queue enqueue: %w", err)
	}
	return n == 1, nil
}

// Dequeue leases the earliest ready job. Jobs whose lease ran out are made
// ready again first. Returns nil, nil when nothing is ready.
func (q *JobQueue) Dequeue(ctx context.Context) (*ports.Job, error) {
	now := q.now()
	res, err := dequeueScript.Run(ctx, q.client,
		[]string{q.jobsKey, q.waitKey, q.activeKey},
		now.UnixMilli(), now.Add(q.opts.Lease).UnixMilli(),
	).Slice()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis queue dequeue: %w", err)
	}
	if len(res) != 2 {
		return nil, fmt.Errorf("redis queue dequeue: unexpected reply %v", res)
	}

	id, ok := res[0].(string)
	if !ok {
		return nil, fmt.Errorf("redis queue dequeue: unexpected job id %v", res[0])
	}
	attempts, ok := res[1].(int64)
	if !ok {
		return nil, fmt.Errorf("redis queue dequeue: unexpected attempt count %v", res[1])
	}
	return &ports.Job{ID: id, AttemptsMade: int(attempts)}, nil
}

// Ack removes a finished job.
func (q *JobQueue) Ack(ctx context.Context, job *ports.Job) error {
	err := ackScript.Run(ctx, q.client,
		[]string{q.jobsKey, q.waitKey, q.activeKey},
		job.ID,
	).Err()
	if err != nil {
		return fmt.Errorf("redis queue ack: %w", err)
	}
	return nil
}

// Fail consumes an attempt. The job is dead-lettered once it made
// MaxAttempts attempts, otherwise it becomes ready again after
// BackoffBase * 2^(attempts-1).
func (q *JobQueue) Fail(ctx context.Context, job *ports.Job, reason string) (bool, error) {
	attempts := job.AttemptsMade + 1
	readyAt := q.now().Add(q.backoff(attempts)).UnixMilli()

	n, err := failScript.Run(ctx, q.client,
		[]string{q.jobsKey, q.waitKey, q.activeKey, q.deadKey},
		job.ID, q.opts.MaxAttempts, readyAt, reason,
	).Int()
	if err != nil {
		return false, fmt.Errorf("redis queue fail: %w", err)
	}
	return n == 1, nil
}

// Requeue makes the job ready again after delay without consuming an attempt.
func (q *JobQueue) Requeue(ctx context.Context, job *ports.Job, delay time.Duration) error {
	err := requeueScript.Run(ctx, q.client,
		[]string{q.jobsKey, q.waitKey, q.activeKey},
		job.ID, q.now().Add(delay).UnixMilli(),
	).Err()
	if err != nil {
		return fmt.Errorf("redis queue requeue: %w", err)
	}
	return nil
}

func (q *JobQueue) backoff(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	return q.opts.BackoffBase * time.Duration(1<<(attempts-1))
}
