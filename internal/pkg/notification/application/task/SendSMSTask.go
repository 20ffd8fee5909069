package task

import (
	"context"
	"encoding/json"

	qport "github.com/MdialloC19/backend-IPDL/internal/infrastructure/queue/port"
	gateway "github.com/MdialloC19/backend-IPDL/internal/pkg/notification/gateway/port"
)

// SendSMSTaskType is the queue task name for outbound SMS delivery.
const SendSMSTaskType = "notification:send_sms"

// SendSMSTaskPayload is the JSON payload transported via the queue.
type SendSMSTaskPayload struct {
	Content string   `json:"content"`
	Msisdns []string `json:"msisdns"`
}

// RegisterSendSMSTask binds the SMS delivery handler to the worker.
func RegisterSendSMSTask(srv qport.Server, sms gateway.SMSGateway) {
	srv.Register(SendSMSTaskType, func(ctx context.Context, t qport.Task) error {
		var p SendSMSTaskPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// malformed payload: retrying will not help
			return nil
		}
		return sms.Send(ctx, p.Content, p.Msisdns)
	})
}
