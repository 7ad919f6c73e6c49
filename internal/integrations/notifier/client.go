package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
	"github.com/m04kA/SMC-RoomAvailabilityService/pkg/ptr"
)

const pingTimeout = 2 * time.Second

// Publisher часть *redis.Client, нужная для публикации
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Client публикует события о записях в канал Redis
type Client struct {
	publisher Publisher
	channel   string
	log       Logger
	now       func() time.Time
}

// NewRedisClient подключается к Redis и проверяет соединение
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: addr=%s: %v", ErrConnect, addr, err)
	}

	return client, nil
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(publisher Publisher, channel string, log Logger) *Client {
	return &Client{
		publisher: publisher,
		channel:   channel,
		log:       log,
		now:       time.Now,
	}
}

// BookingConfirmed публикует событие о подтверждении записи
func (c *Client) BookingConfirmed(ctx context.Context, entry *domain.EntryWithRoomAndArea) error {
	return c.publish(ctx, Event{
		Type:        EventBookingConfirmed,
		EntryID:     entry.ID,
		RoomID:      entry.RoomID,
		RoomName:    entry.RoomName,
		AreaID:      entry.AreaID,
		DefaultView: entry.DefaultView.String(),
		StartTime:   entry.StartTime,
		EndTime:     entry.EndTime,
		Name:        entry.Name,
		CreatedBy:   entry.CreatedBy,
		Lang:        entry.Lang,
	})
}

// BookingReminder публикует напоминание с кодом подтверждения
func (c *Client) BookingReminder(ctx context.Context, entry *domain.ReminderEntry, code string) error {
	mailText := entry.MailText
	if ptr.Value(entry.Lang) == "en" && entry.MailTextEnglish != nil {
		mailText = entry.MailTextEnglish
	}

	return c.publish(ctx, Event{
		Type:             EventBookingReminder,
		EntryID:          entry.ID,
		RoomID:           entry.RoomID,
		RoomName:         entry.RoomName,
		StartTime:        entry.StartTime,
		EndTime:          entry.EndTime,
		Name:             entry.Name,
		CreatedBy:        entry.CreatedBy,
		ConfirmationCode: code,
		Lang:             entry.Lang,
		MailText:         mailText,
	})
}

func (c *Client) publish(ctx context.Context, event Event) error {
	event.OccurredAt = c.now().Unix()

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	receivers, err := c.publisher.Publish(ctx, c.channel, payload).Result()
	if err != nil {
		return fmt.Errorf("%w: type=%s entry_id=%d: %v", ErrPublish, event.Type, event.EntryID, err)
	}

	if receivers == 0 {
		c.log.Warn("Notifier: no subscribers on channel=%s for %s entry_id=%d", c.channel, event.Type, event.EntryID)
	} else {
		c.log.Info("Notifier: published %s entry_id=%d to %d subscribers", event.Type, event.EntryID, receivers)
	}

	return nil
}

// Nop уведомления отключены
type Nop struct{}

// BookingConfirmed ничего не делает
func (Nop) BookingConfirmed(context.Context, *domain.EntryWithRoomAndArea) error {
	return nil
}

// BookingReminder ничего не делает
func (Nop) BookingReminder(context.Context, *domain.ReminderEntry, string) error {
	return nil
}
