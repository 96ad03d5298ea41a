package hub

import (
	"context"
	"encoding/json"

	"deviantdare/backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

const eventChannel = "deviantdare:game-events"

// envelope carries an Event across the Redis channel together with the game
// it belongs to.
type envelope struct {
	GameID uint  `json:"game_id"`
	Event  Event `json:"event"`
}

var redisClient *redis.Client

// UseRedis switches Publish to fan out through Redis pub/sub so events reach
// clients connected to other server processes. Every process, this one
// included, receives them back through the subscription.
func UseRedis(ctx context.Context, rdb *redis.Client) {
	redisClient = rdb

	go func() {
		pubsub := rdb.Subscribe(ctx, eventChannel)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for msg := range ch {
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				logger.Log.Warnf("Error unmarshalling Redis event: %v", err)
				continue
			}
			GlobalHub.Broadcast(env.GameID, env.Event)
		}
	}()
}

// Publish delivers a game event to every watching client. With Redis
// configured it goes through the shared channel; otherwise it stays local.
func Publish(gameID uint, event Event) {
	if redisClient == nil {
		GlobalHub.Broadcast(gameID, event)
		return
	}

	payload, err := json.Marshal(envelope{GameID: gameID, Event: event})
	if err != nil {
		logger.Log.Warnf("Error marshalling game event: %v", err)
		return
	}
	if err := redisClient.Publish(context.Background(), eventChannel, payload).Err(); err != nil {
		logger.Log.Warnf("Error publishing game event: %v", err)
		// Fall back to local delivery so in-process watchers still see it.
		GlobalHub.Broadcast(gameID, event)
	}
}
