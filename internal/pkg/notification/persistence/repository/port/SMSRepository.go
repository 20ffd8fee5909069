package repository

import (
	"context"

	notification "github.com/MdialloC19/backend-IPDL/internal/pkg/notification/domain"
)

// SMSRepository persists the record of every SMS campaign that was sent.
type SMSRepository interface {
	Save(ctx context.Context, s notification.SMS) (string, error)
	List(ctx context.Context) ([]notification.SMS, error)
}
