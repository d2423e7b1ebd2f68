package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const bookingSeqPrefix = "bookingSeq:"

// RedisNumberSource issues booking numbers of the form HR-YYYYMMDD-NNNN
// from a per-day Redis counter, so numbers stay unique across instances.
type RedisNumberSource struct {
	Client *redis.Client
}

// Next returns the next booking number for today.
func (s *RedisNumberSource) Next() (string, error) {
	day := time.Now().Format("20060102")
	key := bookingSeqPrefix + day

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	n, err := s.Client.Incr(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("failed to reserve booking number: %w", err)
	}
	if n == 1 {
		// First booking of the day owns setting the key's expiry.
		s.Client.Expire(ctx, key, 48*time.Hour)
	}
	return FormatBookingNumber(day, n), nil
}

// FormatBookingNumber renders a booking number from its day and sequence.
func FormatBookingNumber(day string, seq int64) string {
	return fmt.Sprintf("HR-%s-%04d", day, seq)
}
