// Package events publishes the outbound signals other collaborators
// (notifier, reporting) consume. Delivery is redis pub/sub; a publish
// failure is logged by the caller, never fatal to the request.
package events

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	ChannelPayslipReady      = "payroll.payslip_ready"
	ChannelAttendanceFlagged = "attendance.flagged"
)

type Publisher struct {
	redis *redis.Client
}

func NewPublisher(redisDB *redis.Client) *Publisher {
	return &Publisher{redis: redisDB}
}

// PayslipReady is emitted once per employee when period generation
// persists their payroll item.
type PayslipReady struct {
	PayrollPeriodID int    `json:"payroll_period_id"`
	UserID          int    `json:"user_id"`
	NetPay          string `json:"net_pay"`
}

// AttendanceFlagged is emitted when a clock-in lands outside the geofence.
type AttendanceFlagged struct {
	AttendanceLogID int     `json:"attendance_log_id"`
	ScheduleID      int     `json:"schedule_id"`
	UserID          int     `json:"user_id"`
	DistanceMeters  float64 `json:"distance_meters"`
}

func (p *Publisher) PublishPayslipReady(ctx context.Context, event PayslipReady) error {
	return p.publish(ctx, ChannelPayslipReady, event)
}

func (p *Publisher) PublishAttendanceFlagged(ctx context.Context, event AttendanceFlagged) error {
	return p.publish(ctx, ChannelAttendanceFlagged, event)
}

func (p *Publisher) publish(ctx context.Context, channel string, event interface{}) error {
	if p == nil || p.redis == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshaling event")
	}

	if err := p.redis.Publish(ctx, channel, payload).Err(); err != nil {
		return errors.Wrapf(err, "publishing to %s", channel)
	}

	return nil
}
