package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	qport "github.com/MdialloC19/backend-IPDL/internal/infrastructure/queue/port"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/notification/application/task"
	notification "github.com/MdialloC19/backend-IPDL/internal/pkg/notification/domain"
	repository "github.com/MdialloC19/backend-IPDL/internal/pkg/notification/persistence/repository/port"
)

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = fmt.Errorf("notification use case persistence error")

// SendSMSInput carries one SMS campaign request.
type SendSMSInput struct {
	Title   string
	Content string
	Msisdns []string
}

// SendSMSUseCase records the campaign and enqueues its delivery. Delivery runs
// in the worker with retries; the record is written first so an aggregator
// outage never loses the audit trail.
type SendSMSUseCase struct {
	Repo  repository.SMSRepository
	Queue qport.Client
}

func NewSendSMSUseCase(repo repository.SMSRepository, queue qport.Client) *SendSMSUseCase {
	return &SendSMSUseCase{Repo: repo, Queue: queue}
}

func (uc *SendSMSUseCase) Execute(ctx context.Context, in SendSMSInput) (*notification.SMS, error) {
	s, err := notification.NewSMS(in.Title, in.Content, in.Msisdns)
	if err != nil {
		return nil, err
	}

	id, err := uc.Repo.Save(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	s.ID = id

	payload, err := json.Marshal(task.SendSMSTaskPayload{Content: s.Content, Msisdns: s.Receivers})
	if err != nil {
		return nil, fmt.Errorf("encode sms task: %w", err)
	}
	_, err = uc.Queue.Enqueue(ctx,
		qport.Task{Type: task.SendSMSTaskType, Payload: payload},
		qport.EnqueueOption{Queue: "notifications", MaxRetry: 10},
	)
	if err != nil {
		return nil, fmt.Errorf("enqueue sms delivery: %w", err)
	}

	return &s, nil
}
